// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Outcome: classification of a single submitted guess.
//   - Status: in-progress / won / lost.
//   - Game: state for a single in-progress or finished game.
//   - Snapshot: the four-field transfer record used by the stores.

package game

import "errors"

// DefaultMaxAttempts is the wrong-guess budget used when none is configured.
const DefaultMaxAttempts = 6

// ErrGameOver is returned when a guess is submitted to a finished game.
var ErrGameOver = errors.New("game finished")

// Outcome is the result of submitting one guess.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeAlreadyGuessed
	OutcomeCorrectLetter
	OutcomeWrongLetter
	OutcomeCorrectWord
	OutcomeWrongWord
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAlreadyGuessed:
		return "already_guessed"
	case OutcomeCorrectLetter:
		return "correct_letter"
	case OutcomeWrongLetter:
		return "wrong_letter"
	case OutcomeCorrectWord:
		return "correct_word"
	case OutcomeWrongWord:
		return "wrong_word"
	default:
		return "unknown"
	}
}

// Accepted reports whether the guess changed the game state.
func (o Outcome) Accepted() bool {
	return o >= OutcomeCorrectLetter
}

// Status is the coarse state of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Game holds the state of a single hangman game.
type Game struct {
	ID          string   // Random identifier, not persisted in snapshots.
	Secret      string   // The word to uncover (always lowercase).
	Guessed     []string // Correct letters, in the order they were revealed.
	Wrong       []string // Wrong letters and whole-word attempts, in attempt order.
	MaxAttempts int      // Wrong-guess budget.
}

// Snapshot is the persisted form of a Game.
type Snapshot struct {
	SecretWord     string   `yaml:"secret_word"`
	GuessedLetters []string `yaml:"guessed_letters"`
	WrongGuesses   []string `yaml:"wrong_guesses"`
	MaxAttempts    int      `yaml:"max_attempts"`
}
