package store

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/hangman/internal/game"
)

// snapshotDoc mirrors game.Snapshot with pointer fields so missing keys can
// be told apart from empty values.
type snapshotDoc struct {
	SecretWord     *string   `yaml:"secret_word"`
	GuessedLetters *[]string `yaml:"guessed_letters"`
	WrongGuesses   *[]string `yaml:"wrong_guesses"`
	MaxAttempts    *int      `yaml:"max_attempts"`
}

func encodeSnapshot(w io.Writer, snap game.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}

// decodeSnapshot strictly parses a YAML save document. Every failure wraps ErrParse.
func decodeSnapshot(r io.Reader) (game.Snapshot, error) {
	var doc snapshotDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return game.Snapshot{}, fmt.Errorf("%w: empty document", ErrParse)
		}
		return game.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	// a save file holds exactly one document
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return game.Snapshot{}, fmt.Errorf("%w: trailing content", ErrParse)
	}

	switch {
	case doc.SecretWord == nil:
		return game.Snapshot{}, fmt.Errorf("%w: missing secret_word", ErrParse)
	case doc.GuessedLetters == nil:
		return game.Snapshot{}, fmt.Errorf("%w: missing guessed_letters", ErrParse)
	case doc.WrongGuesses == nil:
		return game.Snapshot{}, fmt.Errorf("%w: missing wrong_guesses", ErrParse)
	case doc.MaxAttempts == nil:
		return game.Snapshot{}, fmt.Errorf("%w: missing max_attempts", ErrParse)
	}

	snap := game.Snapshot{
		SecretWord:     *doc.SecretWord,
		GuessedLetters: append([]string{}, (*doc.GuessedLetters)...),
		WrongGuesses:   append([]string{}, (*doc.WrongGuesses)...),
		MaxAttempts:    *doc.MaxAttempts,
	}
	if err := snap.Validate(); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return snap, nil
}

// encodeList and decodeList store a string slice in a single text column.
func encodeList(list []string) (string, error) {
	b, err := yaml.Marshal(append([]string{}, list...))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	var out []string
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return append([]string{}, out...), nil
}
