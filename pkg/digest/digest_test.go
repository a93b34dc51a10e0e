package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMD5(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clip.mp4")
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

		sum, err := FileMD5(path)
		require.NoError(t, err)
		assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", sum)
		assert.Len(t, sum, 32)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.bin")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		sum, err := FileMD5(path)
		require.NoError(t, err)
		assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", sum)
	})

	t.Run("deterministic across reads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.bin")
		// larger than one chunk so the read loop actually iterates
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), chunkSize*3+17), 0o644))

		first, err := FileMD5(path)
		require.NoError(t, err)
		second, err := FileMD5(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("single byte change flips digest", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "mut.bin")
		data := bytes.Repeat([]byte("y"), chunkSize+1)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		before, err := FileMD5(path)
		require.NoError(t, err)

		data[chunkSize] = 'z'
		require.NoError(t, os.WriteFile(path, data, 0o644))

		after, err := FileMD5(path)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileMD5(filepath.Join(t.TempDir(), "gone.mp4"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open")
	})
}
