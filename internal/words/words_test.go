package words

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "word_list.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FiltersByLength(t *testing.T) {
	path := writeList(t, "kiwi\napple\n  Banana \nabcdefghijkl\nabcdefghijklm\nice-cream\nfig\n\n")

	src, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "abcdefghijkl"}, src.words)
	assert.Equal(t, 3, src.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_NoEligibleWords(t *testing.T) {
	path := writeList(t, "cat\ndog\nextraordinarily\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Embedded(t *testing.T) {
	src, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, src.Len(), 100)
	for _, w := range src.words {
		assert.True(t, eligible(w), "embedded word %q", w)
	}
}

func TestPick(t *testing.T) {
	src, err := NewSource([]string{"apple", "grape", "mango"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w := src.Pick()
		assert.Contains(t, src.words, w)
		seen[w] = true
	}
	assert.Len(t, seen, 3)
}

func TestDaily(t *testing.T) {
	src, err := NewSource([]string{"apple", "grape", "mango", "melon", "lemon"})
	require.NoError(t, err)

	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sameDay := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, src.Daily(day, "salt"), src.Daily(sameDay, "salt"))
	assert.Equal(t, "2026-03-14", DateKey(day))
	assert.Equal(t, 0, DailyIndex(day, "salt", 0))

	idx := DailyIndex(day, "salt", 5)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 5)
}
