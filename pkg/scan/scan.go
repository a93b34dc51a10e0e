package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the names of media files directly inside dir, sorted
// lexicographically for deterministic feed ordering. Filtered out, in
// order: hidden entries (leading dot), anything that is not a regular
// file (stat follows symlinks, so a link to a regular file still
// counts), and files whose lowercased extension is not in exts. The
// listing is not recursive; subfolders are surfaced via Subdirs.
func List(dir string, exts map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			// an entry that vanished between listing and stat is treated
			// the same as a non-file: not a candidate
			continue
		}
		if !exts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Subdirs returns the names of immediate, non-hidden subdirectories of
// dir, sorted alphabetically. Symlinked directories count as
// subdirectories, matching the file side of the scan.
func Subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
