package store

import (
	"context"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// memory is an in-process Store. State is lost when the process exits.
type memory struct {
	mu   sync.RWMutex   // guards snap
	snap *game.Snapshot // nil when empty
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Save(ctx context.Context, snap game.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := clone(snap)
	m.snap = &cp
	return nil
}

func (m *memory) Load(ctx context.Context) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return game.Snapshot{}, ErrNotFound
	}
	return clone(*m.snap), nil
}

func (m *memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}

func clone(s game.Snapshot) game.Snapshot {
	return game.Snapshot{
		SecretWord:     s.SecretWord,
		GuessedLetters: append([]string{}, s.GuessedLetters...),
		WrongGuesses:   append([]string{}, s.WrongGuesses...),
		MaxAttempts:    s.MaxAttempts,
	}
}
