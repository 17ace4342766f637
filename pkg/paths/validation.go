package paths

import (
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
)

// maxPathLen is PATH_MAX on Linux.
const maxPathLen = 4096

// ValidatePath rejects a file argument before any resolution is attempted:
// an empty path, one holding a NUL byte, or one longer than maxPathLen
// cannot name a file to import.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "file path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return errors.Newf(errors.ErrInvalidInput, "file path %q contains a NUL byte", path).
			WithDetail("path", path)
	}

	if len(path) > maxPathLen {
		return errors.Newf(errors.ErrInvalidInput, "file path is longer than %d bytes", maxPathLen).
			WithDetail("length", len(path))
	}

	return nil
}

// ValidateGroupName ensures a group name is valid for use in paths.
// Group names must:
// - Not be empty
// - Not contain path separators
// - Not contain special characters that could cause issues
// - Not be reserved names (. or ..)
func ValidateGroupName(name string) error {
	if name == "" {
		return errors.New(errors.ErrGroupInvalid, "group name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrGroupInvalid, "group name cannot contain path separators").
			WithDetail("group", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrGroupInvalid, "group name cannot be '.' or '..'")
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(name, invalidChars) {
		return errors.Newf(errors.ErrGroupInvalid,
			"group name contains invalid characters: %s", invalidChars).
			WithDetail("group", name)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrGroupInvalid,
				"group name contains control characters")
		}
	}

	return nil
}
