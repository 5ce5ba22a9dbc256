package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSnapshot is wrapped by every Snapshot.Validate failure.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Validate checks that s describes a state the engine could have produced.
func (s Snapshot) Validate() error {
	if !isAlpha(s.SecretWord) {
		return fmt.Errorf("%w: secret_word %q must be lowercase letters", ErrInvalidSnapshot, s.SecretWord)
	}
	if s.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalidSnapshot, s.MaxAttempts)
	}
	if len(s.WrongGuesses) > s.MaxAttempts {
		return fmt.Errorf("%w: %d wrong guesses exceed max_attempts %d", ErrInvalidSnapshot, len(s.WrongGuesses), s.MaxAttempts)
	}

	for i, l := range s.GuessedLetters {
		switch {
		case len(l) != 1 || !isAlpha(l):
			return fmt.Errorf("%w: guessed_letters[%d] %q is not a single letter", ErrInvalidSnapshot, i, l)
		case !strings.Contains(s.SecretWord, l):
			return fmt.Errorf("%w: guessed letter %q is not in the secret word", ErrInvalidSnapshot, l)
		case slices.Index(s.GuessedLetters, l) != i:
			return fmt.Errorf("%w: guessed letter %q is repeated", ErrInvalidSnapshot, l)
		}
	}

	for i, w := range s.WrongGuesses {
		switch {
		case !isAlpha(w):
			return fmt.Errorf("%w: wrong_guesses[%d] %q must be lowercase letters", ErrInvalidSnapshot, i, w)
		case len(w) != 1 && len(w) != len(s.SecretWord):
			return fmt.Errorf("%w: wrong guess %q is neither a letter nor a %d letter word", ErrInvalidSnapshot, w, len(s.SecretWord))
		case len(w) == 1 && strings.Contains(s.SecretWord, w):
			return fmt.Errorf("%w: wrong letter %q is in the secret word", ErrInvalidSnapshot, w)
		case w == s.SecretWord:
			return fmt.Errorf("%w: wrong guess %q is the secret word", ErrInvalidSnapshot, w)
		case slices.Index(s.WrongGuesses, w) != i:
			return fmt.Errorf("%w: wrong guess %q is repeated", ErrInvalidSnapshot, w)
		}
	}
	return nil
}
