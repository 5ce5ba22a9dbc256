// internal/game/engine.go
//
// Core game engine for a single hangman game.
// Responsibilities:
//   - Create new games and restore saved ones from a Snapshot.
//   - Classify and apply guesses (single letter or whole word).
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - The secret word is supplied by the caller (see the words package);
//     its length policy is not re-checked here.
//   - Input is trimmed and lowercased before any comparison.

package game

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// New constructs a fresh game for secret.
// A non-positive maxAttempts falls back to DefaultMaxAttempts.
func New(secret string, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		ID:          uuid.NewString(),
		Secret:      strings.ToLower(secret),
		Guessed:     []string{},
		Wrong:       []string{},
		MaxAttempts: maxAttempts,
	}
}

// Restore rebuilds a game from a snapshot, copying all four fields verbatim.
// The snapshot must pass Validate; a partially valid snapshot is never restored.
func Restore(s Snapshot) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		ID:          uuid.NewString(),
		Secret:      s.SecretWord,
		Guessed:     append([]string{}, s.GuessedLetters...),
		Wrong:       append([]string{}, s.WrongGuesses...),
		MaxAttempts: s.MaxAttempts,
	}, nil
}

// Snapshot returns a copy of the persistent part of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SecretWord:     g.Secret,
		GuessedLetters: append([]string{}, g.Guessed...),
		WrongGuesses:   append([]string{}, g.Wrong...),
		MaxAttempts:    g.MaxAttempts,
	}
}

// SubmitGuess classifies raw and applies it to the game.
//
// Classification (after trimming and lowercasing):
//   - one character: letter guess; must be a–z.
//   - len(Secret) characters: whole-word guess; must be all a–z.
//   - anything else: OutcomeInvalid.
//
// Invalid and already-guessed inputs leave the game untouched. Submitting to a
// finished game returns ErrGameOver.
func (g *Game) SubmitGuess(raw string) (Outcome, error) {
	if g.Status().Terminal() {
		return OutcomeInvalid, ErrGameOver
	}
	guess := strings.ToLower(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(guess)
	if n == 1 {
		return g.guessLetter(guess), nil
	}
	if n > 1 && n == utf8.RuneCountInString(g.Secret) {
		return g.guessWord(guess), nil
	}
	return OutcomeInvalid, nil
}

func (g *Game) guessLetter(letter string) Outcome {
	if !isAlpha(letter) {
		return OutcomeInvalid
	}
	if slices.Contains(g.Guessed, letter) || slices.Contains(g.Wrong, letter) {
		return OutcomeAlreadyGuessed
	}
	if strings.Contains(g.Secret, letter) {
		g.Guessed = append(g.Guessed, letter)
		return OutcomeCorrectLetter
	}
	g.Wrong = append(g.Wrong, letter)
	return OutcomeWrongLetter
}

func (g *Game) guessWord(word string) Outcome {
	if !isAlpha(word) {
		return OutcomeInvalid
	}
	if slices.Contains(g.Wrong, word) {
		return OutcomeAlreadyGuessed
	}
	if word != g.Secret {
		g.Wrong = append(g.Wrong, word)
		return OutcomeWrongWord
	}
	for _, r := range g.Secret {
		letter := string(r)
		if !slices.Contains(g.Guessed, letter) {
			g.Guessed = append(g.Guessed, letter)
		}
	}
	return OutcomeCorrectWord
}

// IsWinner reports whether every distinct letter of the secret has been guessed.
func (g *Game) IsWinner() bool {
	for _, r := range g.Secret {
		if !slices.Contains(g.Guessed, string(r)) {
			return false
		}
	}
	return true
}

// IsLoser reports whether the wrong-guess budget is used up.
func (g *Game) IsLoser() bool {
	return len(g.Wrong) >= g.MaxAttempts
}

// Status reports the game state. Won is checked before Lost.
func (g *Game) Status() Status {
	switch {
	case g.IsWinner():
		return StatusWon
	case g.IsLoser():
		return StatusLost
	default:
		return StatusInProgress
	}
}

// Remaining returns the number of wrong guesses still allowed.
func (g *Game) Remaining() int {
	if r := g.MaxAttempts - len(g.Wrong); r > 0 {
		return r
	}
	return 0
}

// Mask returns the secret with unrevealed letters replaced by '_'.
func (g *Game) Mask() string {
	var b strings.Builder
	for _, r := range g.Secret {
		if slices.Contains(g.Guessed, string(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// isAlpha checks that a string is non-empty and consists only of lowercase a–z.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
