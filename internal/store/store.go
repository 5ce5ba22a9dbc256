// internal/store/store.go
//
// Persistence for the single saved-game slot.
// A Store holds at most one snapshot; Save overwrites whatever was there.
//
// Implementations:
//   - FileStore:   YAML document at a fixed path (default game_save.yaml).
//   - SQLiteStore: single-row saved_game table.
//   - memory:      in-process slot, used by tests and when saving is disabled.
//
// Error contract:
//   - Load returns ErrNotFound when nothing is saved. This is not a failure.
//   - Present but unreadable content is reported as ErrParse.
//   - Storage that cannot be read or written is reported as ErrIO.

package store

import (
	"context"
	"errors"

	"github.com/robalobadob/hangman/internal/game"
)

var (
	ErrNotFound = errors.New("no saved game")
	ErrParse    = errors.New("saved game is corrupt")
	ErrIO       = errors.New("saved game storage unavailable")
)

// Store defines the persistence interface for the saved game.
type Store interface {
	// Save persists snap, replacing any previous save.
	Save(ctx context.Context, snap game.Snapshot) error

	// Load returns the saved snapshot or ErrNotFound.
	Load(ctx context.Context) (game.Snapshot, error)

	// Clear removes the saved snapshot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
