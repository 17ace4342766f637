//go:build unix

package utils

import (
	"golang.org/x/sys/unix"

	"github.com/arthur-debert/dotin/pkg/errors"
)

// AreInTheSameFilesystem reports whether a and b live on the same device.
// Neither path is followed if it is a symlink.
func AreInTheSameFilesystem(a, b string) (bool, error) {
	devA, err := deviceOf(a)
	if err != nil {
		return false, err
	}
	devB, err := deviceOf(b)
	if err != nil {
		return false, err
	}
	return devA == devB, nil
}

func deviceOf(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
			WithDetail("path", path)
	}
	// Dev is int32 on darwin and uint64 on linux.
	return uint64(st.Dev), nil
}
