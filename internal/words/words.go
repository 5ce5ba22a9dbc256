// internal/words/words.go
//
// Word list loading and secret word selection.
//
// Responsibilities:
//   - Load a word list file (one word per line) or fall back to the embedded default.
//   - Keep only lowercase alphabetic words of MinLength..MaxLength letters.
//   - Pick a secret word uniformly at random (crypto/rand).
//
// A missing file or a list with no eligible word is reported as ErrNotFound;
// the caller decides whether that is fatal.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

const (
	MinLength = 5
	MaxLength = 12
)

// ErrNotFound means there is no word to choose from.
var ErrNotFound = errors.New("word list not found")

// Source holds the filtered candidate words.
type Source struct {
	words []string
}

// Load reads the word list at path. An empty path selects the embedded list.
func Load(path string) (*Source, error) {
	var list []string
	if path == "" {
		raw, err := assets.Words()
		if err != nil {
			return nil, fmt.Errorf("reading embedded word list: %w", err)
		}
		list = raw
	} else {
		raw, err := readWordFile(path)
		if err != nil {
			return nil, err
		}
		list = raw
	}
	return NewSource(list)
}

// NewSource filters list down to eligible words.
func NewSource(list []string) (*Source, error) {
	s := &Source{}
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if eligible(w) {
			s.words = append(s.words, w)
		}
	}
	if len(s.words) == 0 {
		return nil, fmt.Errorf("%w: no words of %d-%d letters", ErrNotFound, MinLength, MaxLength)
	}
	return s, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return readWords(f)
}

func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return out, nil
}

// eligible reports whether w has an allowed length and only a–z letters.
func eligible(w string) bool {
	if len(w) < MinLength || len(w) > MaxLength {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Pick returns a uniformly random word.
func (s *Source) Pick() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.words))))
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		return s.words[0]
	}
	return s.words[n.Int64()]
}

// Len returns the number of eligible words.
func (s *Source) Len() int { return len(s.words) }
