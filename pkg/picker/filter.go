package picker

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"pickd/internal/errors"
)

// Filter decides which directory entries the picker offers. Construct one
// with Any, Folders, WithExtension or WithPattern; the zero value behaves
// like Any.
type Filter struct {
	kind    filterKind
	ext     string
	pattern string
}

type filterKind int

const (
	filterAny filterKind = iota
	filterFolders
	filterExtension
	filterPattern
)

// Any keeps every entry with a retrievable name.
func Any() Filter {
	return Filter{kind: filterAny}
}

// Folders keeps directories only.
func Folders() Filter {
	return Filter{kind: filterFolders}
}

// WithExtension keeps directories unconditionally, plus files whose
// extension equals ext. The comparison is case-insensitive; ext is given
// without the leading dot.
func WithExtension(ext string) Filter {
	return Filter{kind: filterExtension, ext: ext}
}

// WithPattern keeps directories unconditionally, plus files whose name
// matches the glob pattern. A malformed pattern surfaces as an error from
// the picker's entry points.
func WithPattern(pattern string) Filter {
	return Filter{kind: filterPattern, pattern: pattern}
}

// matcher compiles the filter into an entry predicate. Compilation can fail
// only for WithPattern.
func (f Filter) matcher() (func(name string, isDir bool) bool, error) {
	switch f.kind {
	case filterFolders:
		return func(name string, isDir bool) bool {
			return isDir
		}, nil
	case filterExtension:
		want := strings.ToLower(f.ext)
		return func(name string, isDir bool) bool {
			if isDir {
				return true
			}
			ext := strings.TrimPrefix(filepath.Ext(name), ".")
			return strings.ToLower(ext) == want
		}, nil
	case filterPattern:
		g, err := glob.Compile(f.pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "bad glob pattern %q", f.pattern)
		}
		return func(name string, isDir bool) bool {
			return isDir || g.Match(name)
		}, nil
	default:
		return func(name string, isDir bool) bool {
			return true
		}, nil
	}
}
