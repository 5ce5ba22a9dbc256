package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// DefaultSavePath is the well-known save location, relative to the working directory.
const DefaultSavePath = "game_save.yaml"

// FileStore keeps the saved game in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path, or DefaultSavePath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultSavePath
	}
	return &FileStore{path: path}
}

// Path returns the save file location.
func (s *FileStore) Path() string { return s.path }

// Save writes snap atomically: the target is either the old save or the new one,
// never a partial file.
func (s *FileStore) Save(ctx context.Context, snap game.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	err := atomicWrite(s.path, 0o644, func(w io.Writer) error {
		return encodeSnapshot(w, snap)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	log.Debug().Str("path", s.path).Msg("game saved")
	return nil
}

// Load reads and strictly parses the save file.
func (s *FileStore) Load(ctx context.Context) (game.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.Snapshot{}, ErrNotFound
		}
		return game.Snapshot{}, fmt.Errorf("%w: opening save file: %w", ErrIO, err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = f.Close() }()

	snap, err := decodeSnapshot(f)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("%s: %w", s.path, err)
	}
	log.Debug().Str("path", s.path).Msg("game loaded")
	return snap, nil
}

// Clear deletes the save file.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing save file: %w", ErrIO, err)
	}
	return nil
}

// atomicWrite streams into a temp file next to path, then renames it over path.
// The temp file is always closed, and removed unless the rename succeeded.
func atomicWrite(path string, perm os.FileMode, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		_ = tmp.Close()
		if renamed {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", tmpName).Msg("failed to remove temp file")
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	renamed = true
	return nil
}
