package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
}

func TestList(t *testing.T) {
	exts := map[string]bool{".mp4": true, ".jpg": true}

	t.Run("filters and sorts", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "zebra.mp4")
		writeFile(t, dir, "alpha.jpg")
		writeFile(t, dir, "notes.txt")      // unrecognized extension
		writeFile(t, dir, ".hidden.mp4")    // hidden
		writeFile(t, dir, "UPPER.MP4")      // extension matching is case-insensitive
		require.NoError(t, os.Mkdir(filepath.Join(dir, "clips.mp4"), 0o755)) // directory, not a file

		names, err := List(dir, exts)
		require.NoError(t, err)
		assert.Equal(t, []string{"UPPER.MP4", "alpha.jpg", "zebra.mp4"}, names)
	})

	t.Run("empty folder", func(t *testing.T) {
		names, err := List(t.TempDir(), exts)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("empty extension set filters everything", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "clip.mp4")

		names, err := List(dir, map[string]bool{})
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("symlink to file included, symlink to dir excluded", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "real.mp4")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
		require.NoError(t, os.Symlink(filepath.Join(dir, "real.mp4"), filepath.Join(dir, "link.mp4")))
		require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "dirlink.mp4")))

		names, err := List(dir, exts)
		require.NoError(t, err)
		assert.Equal(t, []string{"link.mp4", "real.mp4"}, names)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := List(filepath.Join(t.TempDir(), "nope"), exts)
		require.Error(t, err)
	})
}

func TestSubdirs(t *testing.T) {
	t.Run("sorted non-hidden directories only", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "shows"), 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "ads"), 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		writeFile(t, dir, "clip.mp4")

		subs, err := Subdirs(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"ads", "shows"}, subs)
	})

	t.Run("symlinked directory counts", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0o755))
		require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "alias")))

		subs, err := Subdirs(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"alias", "real"}, subs)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := Subdirs(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}
