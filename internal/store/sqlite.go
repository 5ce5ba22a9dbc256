package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// SQLiteStore keeps the saved game in the single-row saved_game table.
// The schema is created by the database package migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, snap game.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	guessed, err := encodeList(snap.GuessedLetters)
	if err != nil {
		return fmt.Errorf("encoding guessed_letters: %w", err)
	}
	wrong, err := encodeList(snap.WrongGuesses)
	if err != nil {
		return fmt.Errorf("encoding wrong_guesses: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO saved_game (id, secret_word, guessed_letters, wrong_guesses, max_attempts, saved_at)
        VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(id) DO UPDATE SET
            secret_word     = excluded.secret_word,
            guessed_letters = excluded.guessed_letters,
            wrong_guesses   = excluded.wrong_guesses,
            max_attempts    = excluded.max_attempts,
            saved_at        = excluded.saved_at`,
		snap.SecretWord, guessed, wrong, snap.MaxAttempts,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	log.Debug().Msg("game saved to database")
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (game.Snapshot, error) {
	var (
		snap           game.Snapshot
		guessed, wrong string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT secret_word, guessed_letters, wrong_guesses, max_attempts FROM saved_game WHERE id = 1`,
	).Scan(&snap.SecretWord, &guessed, &wrong, &snap.MaxAttempts)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if snap.GuessedLetters, err = decodeList(guessed); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: guessed_letters: %w", ErrParse, err)
	}
	if snap.WrongGuesses, err = decodeList(wrong); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: wrong_guesses: %w", ErrParse, err)
	}
	if err := snap.Validate(); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return snap, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_game WHERE id = 1`); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
