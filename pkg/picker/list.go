package picker

import (
	"os"
	"path/filepath"

	"pickd/internal/errors"
)

// Entry is one filesystem path offered by the picker. Entries are produced
// fresh on every listing and never mutated.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// listDir enumerates the immediate children of dir and applies the filter
// predicate. Entries are returned in os.ReadDir order, which is sorted by
// filename. Children that cannot be inspected are skipped; only a failure
// to open the directory itself fails the listing.
func listDir(dir string, match func(name string, isDir bool) bool) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewDirectoryError("cannot read directory", dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if name == "" {
			continue
		}
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			// Follow links so descent works through symlinked directories.
			fi, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			isDir = fi.IsDir()
		}
		if !match(name, isDir) {
			continue
		}
		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: isDir,
		})
	}
	return entries, nil
}
