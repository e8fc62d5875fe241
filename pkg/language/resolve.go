package language

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoLanguagesSpecified is returned when Resolve receives no identifiers.
	ErrNoLanguagesSpecified = errors.New("no languages specified")
	// ErrNoValidExtensions is returned when none of the identifiers is known.
	ErrNoValidExtensions = errors.New("no valid extensions found for selected languages")
)

// ExtensionSet is a deduplicated set of lower-case extensions, each
// including the leading dot.
type ExtensionSet map[string]struct{}

// Contains reports whether ext is in the set, ignoring case.
func (s ExtensionSet) Contains(ext string) bool {
	if ext == "" {
		return false
	}
	_, ok := s[strings.ToLower(ext)]
	return ok
}

// Matches reports whether the extension of the file name is in the set.
func (s ExtensionSet) Matches(name string) bool {
	return s.Contains(filepath.Ext(name))
}

// Sorted returns the extensions in lexical order, mostly for logging.
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func (s ExtensionSet) add(exts ...string) {
	for _, ext := range exts {
		s[strings.ToLower(ext)] = struct{}{}
	}
}

// Resolve turns the requested identifiers into the set of extensions to
// collect. If any identifier is "all" every registered extension is
// returned and the rest of the list is ignored. Unknown identifiers are
// returned in unknown, in input order, and do not contribute.
func Resolve(ids []string) (exts ExtensionSet, unknown []string, err error) {
	if len(ids) == 0 {
		return nil, nil, ErrNoLanguagesSpecified
	}

	exts = make(ExtensionSet)
	for _, id := range ids {
		if normalizeID(id) == All {
			for _, e := range registry {
				exts.add(e...)
			}
			return exts, nil, nil
		}
	}

	for _, id := range ids {
		e, ok := registry[normalizeID(id)]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		exts.add(e...)
	}

	if len(exts) == 0 {
		return nil, unknown, ErrNoValidExtensions
	}
	return exts, unknown, nil
}
