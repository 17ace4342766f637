//go:build !unix

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
)

// AreInTheSameFilesystem reports whether a and b are on the same volume.
// Without device ids, the volume name is the best available signal.
func AreInTheSameFilesystem(a, b string) (bool, error) {
	volA, err := volumeOf(a)
	if err != nil {
		return false, err
	}
	volB, err := volumeOf(b)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(volA, volB), nil
}

func volumeOf(path string) (string, error) {
	if _, err := os.Lstat(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
			WithDetail("path", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.VolumeName(abs), nil
}
