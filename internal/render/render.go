// internal/render/render.go
//
// Console presentation of a hangman game.
// Responsibilities:
//   - Word mask with spaced letters ("a _ _ l e").
//   - Guessed / wrong lists, remaining attempts and the gallows figure.
//   - One feedback line per guess outcome, and the final win/loss message.
//
// Output is plain text; long lines are word-wrapped to Width columns.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/robalobadob/hangman/internal/game"
)

const Width = 80

// Mask returns the secret with unrevealed letters as '_', separated by spaces.
func Mask(g *game.Game) string {
	return strings.Join(strings.Split(g.Mask(), ""), " ")
}

// Status writes the current game state.
func Status(w io.Writer, g *game.Game) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nWord: %s\n", Mask(g))
	fmt.Fprintf(&b, "Guessed letters: %s\n", strings.Join(g.Guessed, ", "))
	fmt.Fprintf(&b, "Wrong guesses: %s\n", strings.Join(g.Wrong, ", "))
	fmt.Fprintf(&b, "Remaining attempts: %d\n", g.Remaining())
	_, err := io.WriteString(w, Wrap(b.String())+Figure(len(g.Wrong), g.MaxAttempts))
	return err
}

// Outcome returns the feedback line for a submitted guess.
func Outcome(o game.Outcome, guess string) string {
	guess = strings.ToLower(strings.TrimSpace(guess))
	switch o {
	case game.OutcomeCorrectLetter:
		return fmt.Sprintf("Good job! '%s' is correct!", guess)
	case game.OutcomeWrongLetter:
		return fmt.Sprintf("Sorry! '%s' is incorrect.", guess)
	case game.OutcomeCorrectWord:
		return fmt.Sprintf("Amazing! '%s' is the word!", guess)
	case game.OutcomeWrongWord:
		return fmt.Sprintf("Sorry! '%s' is not the word.", guess)
	case game.OutcomeAlreadyGuessed:
		return fmt.Sprintf("You already guessed '%s'. Try something different.", guess)
	default:
		return "Invalid input. Please enter a single letter or a word of the right length."
	}
}

// Final returns the end-of-game message, or "" while the game is in progress.
func Final(g *game.Game) string {
	switch g.Status() {
	case game.StatusWon:
		return fmt.Sprintf("Congratulations, you won! The word was '%s'.", g.Secret)
	case game.StatusLost:
		return fmt.Sprintf("No attempts left. You lost! The secret word was '%s'.", g.Secret)
	default:
		return ""
	}
}

// Wrap word-wraps text to Width.
func Wrap(text string) string {
	return wordwrap.String(text, Width)
}
