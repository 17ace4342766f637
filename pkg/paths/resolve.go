package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/types"
)

// Canonicalize makes path absolute and resolves every symlink in it.
// The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolutionFailed, "failed to make %q absolute", path).
			WithDetail("path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrResolutionFailed, "failed to resolve %q", path).
			WithDetail("path", path)
	}

	return resolved, nil
}

// CanonicalizeExisting canonicalizes the longest existing prefix of path and
// re-appends the missing tail. Useful for directories that may not exist yet.
func CanonicalizeExisting(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	var tail []string
	current := abs
	for {
		if resolved, err := filepath.EvalSymlinks(current); err == nil {
			parts := append([]string{resolved}, reverse(tail)...)
			return filepath.Join(parts...)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs
		}
		tail = append(tail, filepath.Base(current))
		current = parent
	}
}

func reverse(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Within reports whether target is base or lies below it, comparing whole
// path components, and returns target relative to base ("." when equal).
// Both paths are cleaned; neither is resolved.
func Within(base, target string) (string, bool) {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}

// IsSymlink reports whether the entry at path is itself a symlink.
// Any lstat failure counts as "not a symlink".
func IsSymlink(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
