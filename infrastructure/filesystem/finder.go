package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Finder lists candidate video files in a directory
type Finder struct{}

// NewFinder creates a new filesystem finder
func NewFinder() *Finder {
	return &Finder{}
}

// ListVideos returns the full paths of the immediate entries of dir whose
// extension matches ext (case-insensitive). Subdirectories are never
// recursed into. os.ReadDir returns entries sorted by name, which keeps
// batch order reproducible across runs.
func (f *Finder) ListVideos(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}
