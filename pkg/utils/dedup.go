package utils

import (
	"path/filepath"
	"strings"
)

// DedupNested drops every directory that is an ancestor of another entry,
// since recursively creating the deeper one creates it too, and every exact
// duplicate of an earlier entry. Survivors keep their relative order. The
// input slice is not modified.
func DedupNested(dirs []string) []string {
	kept := make([]string, 0, len(dirs))
	for i, dir := range dirs {
		if coveredBy(dir, dirs, i) {
			continue
		}
		kept = append(kept, dir)
	}
	return kept
}

// coveredBy reports whether creating some other entry of dirs also creates
// dir.
func coveredBy(dir string, dirs []string, self int) bool {
	dir = filepath.Clean(dir)
	for j, other := range dirs {
		if j == self {
			continue
		}
		other = filepath.Clean(other)
		if other == dir {
			if j < self {
				return true
			}
			continue
		}
		if isAncestor(dir, other) {
			return true
		}
	}
	return false
}

func isAncestor(ancestor, dir string) bool {
	prefix := ancestor
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(dir, prefix)
}
