// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotin/pkg/types"
)

// Reporter writes one plain line per event, with indented listings.
type Reporter struct {
	output io.Writer
}

// New creates a new text reporter
func New(w io.Writer) *Reporter {
	return &Reporter{output: w}
}

func (r *Reporter) Skipped(skip types.SkippedFile) {
	r.println(SkipMessage(skip))
}

func (r *Reporter) Warning(warning types.Warning) {
	r.println("Warning: " + WarningMessage(warning))
}

func (r *Reporter) NothingToDo() {
	r.println(NothingToDoMessage)
}

func (r *Reporter) PlannedDirectories(dirs []string) {
	r.println(PlannedDirectoriesHeader(len(dirs)))
	for _, dir := range dirs {
		r.println("  - " + dir)
	}
}

func (r *Reporter) DirectoriesCreated([]string) {
	r.println(DoneMessage)
	r.println("")
}

func (r *Reporter) PlannedMoves(moves []types.PlannedMove) {
	r.println(PlannedMovesHeader(len(moves)))
	for _, move := range moves {
		r.println("  - " + move.Source + " -> " + move.Destination)
	}
}

func (r *Reporter) MovesDone([]types.PlannedMove) {
	r.println(DoneMessage)
}

// Finish notes a dry run. Errors are left to the caller.
func (r *Reporter) Finish(result *types.ImportResult, err error) error {
	if err == nil && result != nil && result.DryRun {
		r.println(DryRunMessage)
	}
	return nil
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.output, line)
}

// Messages shared with the terminal reporter.
const (
	NothingToDoMessage = "No files to move."
	DoneMessage        = "Done."
	DryRunMessage      = "Dry run, nothing was changed."
)

// SkipMessage explains why a file was left alone.
func SkipMessage(skip types.SkippedFile) string {
	if skip.Reason == types.SkipSymlinkIntoDotfiles {
		return fmt.Sprintf("Skipping %s, it's already a symlink, and it points to %s, which is inside of the dotfiles directory.",
			skip.Path, skip.Target)
	}
	return fmt.Sprintf("Skipping %s because it lives inside of the dotfiles directory.", skip.Path)
}

// WarningMessage describes a warning about a file.
func WarningMessage(warning types.Warning) string {
	return warning.Path + " " + warning.Message
}

// PlannedDirectoriesHeader introduces the directory listing.
func PlannedDirectoriesHeader(n int) string {
	return fmt.Sprintf("Will create %d intermediate %s:", n, plural(n, "directory", "directories"))
}

// PlannedMovesHeader introduces the move listing.
func PlannedMovesHeader(n int) string {
	return fmt.Sprintf("Will move %d %s:", n, plural(n, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
