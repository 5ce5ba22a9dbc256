// internal/results/store.go
//
// History of finished games, backed by the game_results table.
// Responsibilities:
//   - Record one row per finished game (keyed by game ID, duplicates ignored).
//   - Aggregate played / won / lost counts and the current win streak.

package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// Result is a single finished game.
type Result struct {
	GameID       string
	SecretWord   string
	Won          bool
	WrongGuesses int
	MaxAttempts  int
	FinishedAt   time.Time
}

// FromGame builds a Result from a finished game.
func FromGame(g *game.Game, at time.Time) Result {
	return Result{
		GameID:       g.ID,
		SecretWord:   g.Secret,
		Won:          g.Status() == game.StatusWon,
		WrongGuesses: len(g.Wrong),
		MaxAttempts:  g.MaxAttempts,
		FinishedAt:   at.UTC(),
	}
}

// Stats summarizes the history.
type Stats struct {
	Played int
	Won    int
	Lost   int
	Streak int // consecutive wins ending with the most recent game
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts r. A result already recorded for the same game is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO game_results
            (game_id, secret_word, won, wrong_guesses, max_attempts, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.SecretWord, r.Won, r.WrongGuesses, r.MaxAttempts, r.FinishedAt,
	)
	return err
}

// Stats aggregates all recorded results.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1), COALESCE(SUM(won), 0)
        FROM game_results`,
	).Scan(&st.Played, &st.Won)
	if err != nil {
		return Stats{}, err
	}
	st.Lost = st.Played - st.Won

	rows, err := s.db.QueryContext(ctx, `
        SELECT won FROM game_results
        ORDER BY finished_at DESC, rowid DESC`,
	)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var won bool
		if err := rows.Scan(&won); err != nil {
			return Stats{}, err
		}
		if !won {
			break
		}
		st.Streak++
	}
	return st, rows.Err()
}
