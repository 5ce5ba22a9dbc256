package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitAll(t *testing.T, g *Game, guesses ...string) []Outcome {
	t.Helper()
	out := make([]Outcome, 0, len(guesses))
	for _, guess := range guesses {
		o, err := g.SubmitGuess(guess)
		require.NoError(t, err, "guess %q", guess)
		out = append(out, o)
	}
	return out
}

func TestNew(t *testing.T) {
	g := New("Apple", 0)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "apple", g.Secret)
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
	assert.Empty(t, g.Guessed)
	assert.Empty(t, g.Wrong)
	assert.Equal(t, StatusInProgress, g.Status())
	assert.Equal(t, "_____", g.Mask())
}

func TestSubmitGuess_AppleScenario(t *testing.T) {
	g := New("apple", 6)

	o, err := g.SubmitGuess("x")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWrongLetter, o)
	assert.Equal(t, []string{"x"}, g.Wrong)

	outcomes := submitAll(t, g, "a", "p", "l", "e")
	for i, o := range outcomes {
		assert.Equal(t, OutcomeCorrectLetter, o, "guess %d", i)
	}
	assert.Equal(t, []string{"a", "p", "l", "e"}, g.Guessed)
	assert.Equal(t, StatusWon, g.Status())
	assert.Equal(t, "apple", g.Mask())
}

func TestSubmitGuess_KiwiLoses(t *testing.T) {
	g := New("kiwi", 2)

	outcomes := submitAll(t, g, "z", "q")
	assert.Equal(t, []Outcome{OutcomeWrongLetter, OutcomeWrongLetter}, outcomes)
	assert.Len(t, g.Wrong, 2)
	assert.True(t, g.IsLoser())
	assert.Equal(t, StatusLost, g.Status())
	assert.Equal(t, 0, g.Remaining())

	before := g.Snapshot()
	o, err := g.SubmitGuess("k")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, OutcomeInvalid, o)
	assert.Equal(t, before, g.Snapshot())
}

func TestSubmitGuess_WholeWord(t *testing.T) {
	g := New("mango", 6)

	o, err := g.SubmitGuess("mango")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrectWord, o)
	assert.Equal(t, []string{"m", "a", "n", "g", "o"}, g.Guessed)
	assert.Equal(t, StatusWon, g.Status())
}

func TestSubmitGuess_WholeWordDedupsLetters(t *testing.T) {
	g := New("banana", 6)
	submitAll(t, g, "n")

	o, err := g.SubmitGuess("BANANA")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrectWord, o)
	assert.Equal(t, []string{"n", "b", "a"}, g.Guessed)
	assert.True(t, g.IsWinner())
}

func TestSubmitGuess_Classification(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		setup     []string
		guess     string
		want      Outcome
		wantWrong []string
		wantGuess []string
	}{
		{
			name:      "length mismatch",
			secret:    "grape",
			guess:     "grapefruit",
			want:      OutcomeInvalid,
			wantWrong: []string{},
			wantGuess: []string{},
		},
		{
			name:      "empty input",
			secret:    "grape",
			guess:     "   ",
			want:      OutcomeInvalid,
			wantWrong: []string{},
			wantGuess: []string{},
		},
		{
			name:      "digit",
			secret:    "grape",
			guess:     "7",
			want:      OutcomeInvalid,
			wantWrong: []string{},
			wantGuess: []string{},
		},
		{
			name:      "non ascii letter",
			secret:    "grape",
			guess:     "é",
			want:      OutcomeInvalid,
			wantWrong: []string{},
			wantGuess: []string{},
		},
		{
			name:      "word with punctuation",
			secret:    "grape",
			guess:     "gr-pe",
			want:      OutcomeInvalid,
			wantWrong: []string{},
			wantGuess: []string{},
		},
		{
			name:      "uppercase letter is normalized",
			secret:    "grape",
			guess:     " G ",
			want:      OutcomeCorrectLetter,
			wantWrong: []string{},
			wantGuess: []string{"g"},
		},
		{
			name:      "wrong whole word",
			secret:    "grape",
			guess:     "lemon",
			want:      OutcomeWrongWord,
			wantWrong: []string{"lemon"},
			wantGuess: []string{},
		},
		{
			name:      "repeated correct letter",
			secret:    "grape",
			setup:     []string{"r"},
			guess:     "R",
			want:      OutcomeAlreadyGuessed,
			wantWrong: []string{},
			wantGuess: []string{"r"},
		},
		{
			name:      "repeated wrong letter",
			secret:    "grape",
			setup:     []string{"z"},
			guess:     "z",
			want:      OutcomeAlreadyGuessed,
			wantWrong: []string{"z"},
			wantGuess: []string{},
		},
		{
			name:      "repeated wrong word",
			secret:    "grape",
			setup:     []string{"lemon"},
			guess:     "Lemon",
			want:      OutcomeAlreadyGuessed,
			wantWrong: []string{"lemon"},
			wantGuess: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.secret, 6)
			submitAll(t, g, tt.setup...)
			before := g.Snapshot()

			o, err := g.SubmitGuess(tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, o)
			assert.Equal(t, tt.wantWrong, g.Wrong)
			assert.Equal(t, tt.wantGuess, g.Guessed)
			if !o.Accepted() {
				assert.Equal(t, before, g.Snapshot())
			}
		})
	}
}

func TestIsWinner_CoversDistinctLetters(t *testing.T) {
	words := []string{"apple", "letter", "mississippi", "rhythm", "abcdefghijkl"}
	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			g := New(w, 26)
			seen := map[rune]bool{}
			for _, r := range w {
				if seen[r] {
					continue
				}
				assert.False(t, g.IsWinner(), "won before %q", r)
				seen[r] = true
				o, err := g.SubmitGuess(string(r))
				require.NoError(t, err)
				assert.Equal(t, OutcomeCorrectLetter, o)
			}
			assert.True(t, g.IsWinner())
			assert.Len(t, g.Guessed, len(seen))
		})
	}
}

func TestWrongNeverExceedsMax(t *testing.T) {
	g := New("python", 3)
	for _, guess := range []string{"a", "b", "c", "d", "e"} {
		_, err := g.SubmitGuess(guess)
		if err != nil {
			assert.ErrorIs(t, err, ErrGameOver)
		}
		assert.LessOrEqual(t, len(g.Wrong), g.MaxAttempts)
	}
	assert.Equal(t, StatusLost, g.Status())
}

func TestStatus_WonBeatsLost(t *testing.T) {
	g := &Game{Secret: "abcde", Guessed: []string{"a", "b", "c", "d", "e"}, Wrong: []string{"x"}, MaxAttempts: 1}
	assert.Equal(t, StatusWon, g.Status())
}

func TestMaskAndRemaining(t *testing.T) {
	g := New("cherry", 4)
	submitAll(t, g, "r", "z")

	assert.Equal(t, "___rr_", g.Mask())
	assert.Equal(t, 3, g.Remaining())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "correct_word", OutcomeCorrectWord.String())
	assert.Equal(t, "unknown", Outcome(42).String())
	assert.False(t, OutcomeAlreadyGuessed.Accepted())
	assert.True(t, OutcomeWrongWord.Accepted())
}
