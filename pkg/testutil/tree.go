package testutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"
)

// FileTree represents a directory structure for testing.
// Values are string (file content), FileTree (directory) or Symlink.
type FileTree map[string]interface{}

// Symlink is a FileTree entry for a symbolic link.
type Symlink struct {
	Target string
}

// WriteTree recursively creates tree under basePath.
func WriteTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			CreateFile(t, basePath, name, v)
		case FileTree:
			CreateDir(t, basePath, name)
			WriteTree(t, fullPath, v)
		case Symlink:
			CreateSymlink(t, v.Target, fullPath)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// Snapshot walks root and returns every entry keyed by its slash-separated
// path relative to root. Directories map to "dir/", symlinks to "-> target"
// and files to their content. Symlinks are not followed.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(current string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if current == root {
			return nil
		}
		rel, err := filepath.Rel(root, current)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(current)
			if err != nil {
				return err
			}
			snap[rel] = "-> " + target
		case d.IsDir():
			snap[rel] = "dir/"
		default:
			content, err := os.ReadFile(current)
			if err != nil {
				return err
			}
			snap[rel] = string(content)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}

	return snap
}

// Flatten returns the Snapshot a tree would produce once written.
func Flatten(tree FileTree) map[string]string {
	flat := make(map[string]string)
	flattenInto(flat, "", tree)
	return flat
}

func flattenInto(flat map[string]string, prefix string, tree FileTree) {
	for name, content := range tree {
		rel := path.Join(prefix, name)
		switch v := content.(type) {
		case string:
			flat[rel] = v
		case FileTree:
			flat[rel] = "dir/"
			flattenInto(flat, rel, v)
		case Symlink:
			flat[rel] = "-> " + v.Target
		}
	}
}
