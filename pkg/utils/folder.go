package utils

import (
	"io/fs"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/types"
)

// DefaultDirMode is used when CreateFolderAt is given a zero mode.
const DefaultDirMode fs.FileMode = 0755

// CreateFolderAt creates path and any missing ancestors. It succeeds when
// path is already a directory and fails when something else occupies it.
func CreateFolderAt(fsys types.FS, path string, perm fs.FileMode) error {
	if perm == 0 {
		perm = DefaultDirMode
	}

	if info, err := fsys.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return errors.Newf(errors.ErrObstructedDir, "cannot create folder at %s, there's a file there", path).
			WithDetail("path", path)
	}

	if err := fsys.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create folder %s", path).
			WithDetail("path", path)
	}
	return nil
}
