// Package testutil provides utilities for testing dotin components.
//
// Key components:
//   - TestEnvironment: an isolated home directory and dotfiles root under
//     t.TempDir(), with FileTree helpers to populate both
//   - Snapshot: a flat view of a directory tree used to assert that an
//     operation left unrelated entries untouched
//   - file, directory and symlink helpers that fail the test on error
//
// All test data should be defined inline, not in external files.
package testutil
