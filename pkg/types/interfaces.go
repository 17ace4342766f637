package types

import (
	"io/fs"
)

// FS defines the filesystem operations the importer needs.
// This allows for easy mocking and failure injection in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks. Implementations without symlink
	// support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Rename(oldpath, newpath string) error
}

// Reporter receives human-readable progress events from an import.
// Events arrive in phase order; Finish is called once by the caller that
// owns the output, after the import returned.
type Reporter interface {
	Skipped(skip SkippedFile)
	Warning(warning Warning)
	NothingToDo()
	PlannedDirectories(dirs []string)
	DirectoriesCreated(dirs []string)
	PlannedMoves(moves []PlannedMove)
	MovesDone(moves []PlannedMove)
	Finish(result *ImportResult, err error) error
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Skipped(SkippedFile)               {}
func (NopReporter) Warning(Warning)                   {}
func (NopReporter) NothingToDo()                      {}
func (NopReporter) PlannedDirectories([]string)       {}
func (NopReporter) DirectoriesCreated([]string)       {}
func (NopReporter) PlannedMoves([]PlannedMove)        {}
func (NopReporter) MovesDone([]PlannedMove)           {}
func (NopReporter) Finish(*ImportResult, error) error { return nil }
