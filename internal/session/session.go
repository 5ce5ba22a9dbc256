// internal/session/session.go
//
// Interactive game loop over a line-oriented text interface.
//
// Protocol:
//   1. Banner and rules.
//   2. "Do you want to load a saved game? (yes/no)" (only when a store is configured).
//   3. Repeat: render status, read one guess line, apply it, print feedback,
//      until the game is won or lost. "/quit" or closed input leaves early.
//   4. Finished game: final message, history, clear a resumed save.
//      Unfinished game: "Do you want to save the game? (yes/no)".
//   5. A cancelled context (SIGINT, SIGTERM) stops any pending prompt and
//      ends the session without further prompts.
//
// Save/load problems are reported to the player and never end the session.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/render"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/store"
)

// QuitCommand ends the guess loop without finishing the game.
const QuitCommand = "/quit"

// WordSource supplies secret words.
type WordSource interface {
	Pick() string
	Daily(date time.Time, salt string) string
}

// History records finished games.
type History interface {
	Record(ctx context.Context, r results.Result) error
	Stats(ctx context.Context) (results.Stats, error)
}

type Session struct {
	in    *bufio.Reader
	lines chan inputLine
	out   io.Writer
	words WordSource

	store       store.Store
	history     History
	maxAttempts int
	daily       bool
	dailySalt   string
	now         func() time.Time
}

type Opt func(*Session)

// WithStore enables the load and save prompts.
func WithStore(st store.Store) Opt {
	return func(s *Session) {
		s.store = st
	}
}

// WithHistory records finished games and prints stats.
func WithHistory(h History) Opt {
	return func(s *Session) {
		s.history = h
	}
}

func WithMaxAttempts(n int) Opt {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// WithDaily plays the word of the day instead of a random word.
func WithDaily(salt string) Opt {
	return func(s *Session) {
		s.daily = true
		s.dailySalt = salt
	}
}

func WithClock(now func() time.Time) Opt {
	return func(s *Session) {
		s.now = now
	}
}

func New(in io.Reader, out io.Writer, words WordSource, opts ...Opt) *Session {
	s := &Session{
		in:          bufio.NewReader(in),
		out:         out,
		words:       words,
		maxAttempts: game.DefaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays one game to completion or until the player leaves.
func (s *Session) Run(ctx context.Context) error {
	s.printf("Welcome to Hangman!\n")
	s.printf("%s\n", render.Wrap(fmt.Sprintf(
		"Rules: Guess the secret word one letter at a time, or type the whole word. "+
			"You can make %d wrong guesses. Type %s to stop.", s.maxAttempts, QuitCommand)))

	g, resumed, err := s.start(ctx)
	if err != nil {
		if ctx.Err() != nil {
			s.interrupted()
			return nil
		}
		return err
	}
	logger := log.With().Str("game_id", g.ID).Logger()
	logger.Info().Bool("resumed", resumed).Int("max_attempts", g.MaxAttempts).Msg("game started")

	if err := s.play(ctx, g); err != nil && ctx.Err() == nil {
		return err
	}

	if g.Status().Terminal() {
		logger.Info().Str("status", string(g.Status())).Int("wrong", len(g.Wrong)).Msg("game finished")
		s.finish(ctx, g, resumed)
		return nil
	}

	if ctx.Err() != nil {
		logger.Info().Msg("game interrupted")
		s.interrupted()
		return nil
	}
	logger.Info().Msg("game left unfinished")
	s.offerSave(ctx, g)
	return nil
}

func (s *Session) start(ctx context.Context) (*game.Game, bool, error) {
	if s.store != nil {
		load, err := s.askYesNo(ctx, "Do you want to load a saved game? (yes/no): ")
		if err != nil {
			return nil, false, err
		}
		if load {
			if g := s.resume(ctx); g != nil {
				return g, true, nil
			}
		}
	}
	return s.newGame(), false, nil
}

// resume loads the saved game, or reports why it could not and returns nil.
func (s *Session) resume(ctx context.Context) *game.Game {
	snap, err := s.store.Load(ctx)
	if err == nil {
		var g *game.Game
		if g, err = game.Restore(snap); err == nil {
			s.printf("Game loaded successfully.\n")
			return g
		}
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		s.printf("No saved game found. Starting a new game.\n")
	case errors.Is(err, store.ErrParse), errors.Is(err, game.ErrInvalidSnapshot):
		log.Warn().Err(err).Msg("saved game is unreadable")
		s.printf("The saved game could not be read (%v). Starting a new game.\n", err)
	default:
		log.Error().Err(err).Msg("loading saved game")
		s.printf("The saved game could not be loaded (%v). Starting a new game.\n", err)
	}
	return nil
}

func (s *Session) newGame() *game.Game {
	var word string
	if s.daily {
		word = s.words.Daily(s.now(), s.dailySalt)
	} else {
		word = s.words.Pick()
	}
	return game.New(word, s.maxAttempts)
}

// play runs the guess loop until the game ends or the player leaves.
func (s *Session) play(ctx context.Context, g *game.Game) error {
	for !g.Status().Terminal() {
		if err := render.Status(s.out, g); err != nil {
			return err
		}

		line, err := s.prompt(ctx, "\nEnter a letter or the whole word: ")
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(line), QuitCommand) {
			return nil
		}

		o, err := g.SubmitGuess(line)
		if err != nil {
			return err
		}
		log.Debug().Str("game_id", g.ID).Str("outcome", o.String()).Msg("guess")
		s.printf("%s\n", render.Outcome(o, line))
	}
	return nil
}

func (s *Session) finish(ctx context.Context, g *game.Game, resumed bool) {
	s.printf("%s\n", render.Final(g))
	if g.Status() == game.StatusLost {
		s.printf("%s", render.Figure(len(g.Wrong), g.MaxAttempts))
	}

	// a finished game must not be offered for resume again
	if resumed && s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("clearing finished save")
		}
	}

	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, results.FromGame(g, s.now())); err != nil {
		log.Error().Err(err).Str("game_id", g.ID).Msg("recording result")
		return
	}
	st, err := s.history.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reading stats")
		return
	}
	s.printf("Played: %d  Won: %d  Lost: %d  Current streak: %d\n", st.Played, st.Won, st.Lost, st.Streak)
}

func (s *Session) offerSave(ctx context.Context, g *game.Game) {
	if s.store == nil {
		return
	}
	save, err := s.askYesNo(ctx, "Do you want to save the game? (yes/no): ")
	if err != nil || !save {
		return
	}
	if err := s.store.Save(ctx, g.Snapshot()); err != nil {
		log.Error().Err(err).Str("game_id", g.ID).Msg("saving game")
		s.printf("Could not save the game: %v\n", err)
		return
	}
	s.printf("Game saved successfully.\n")
}

func (s *Session) interrupted() {
	s.printf("\nInterrupted. Goodbye!\n")
}

// printf writes to the player. Write errors on the terminal are not actionable.
func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
