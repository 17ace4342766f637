// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/ui/styles"
	"github.com/arthur-debert/dotin/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Reporter renders events with pterm prefixes and bullet lists, styled by
// the lipgloss registry.
type Reporter struct {
	output io.Writer
}

// New creates a new terminal reporter
func New(w io.Writer) *Reporter {
	return &Reporter{output: w}
}

func (r *Reporter) Skipped(skip types.SkippedFile) {
	msg := fmt.Sprintf("Skipping %s, it lives inside of the dotfiles directory", styles.Render("FilePath", skip.Path))
	if skip.Reason == types.SkipSymlinkIntoDotfiles {
		msg = fmt.Sprintf("Skipping %s, it's already a symlink to %s inside of the dotfiles directory",
			styles.Render("FilePath", skip.Path), styles.Render("FilePath", skip.Target))
	}
	r.line(pterm.Info, msg)
}

func (r *Reporter) Warning(warning types.Warning) {
	r.line(pterm.Warning, styles.Render("FilePath", warning.Path)+" "+styles.Render("Warning", warning.Message))
}

func (r *Reporter) NothingToDo() {
	r.line(pterm.Info, styles.Render("MutedItalic", text.NothingToDoMessage))
}

func (r *Reporter) PlannedDirectories(dirs []string) {
	r.header(text.PlannedDirectoriesHeader(len(dirs)))
	items := make([]pterm.BulletListItem, 0, len(dirs))
	for _, dir := range dirs {
		items = append(items, pterm.BulletListItem{Level: 1, Text: styles.Render("FilePath", dir)})
	}
	r.list(items)
}

func (r *Reporter) DirectoriesCreated(dirs []string) {
	r.line(pterm.Success, fmt.Sprintf("Created %s", styles.Render("Count", fmt.Sprint(len(dirs)))))
}

func (r *Reporter) PlannedMoves(moves []types.PlannedMove) {
	r.header(text.PlannedMovesHeader(len(moves)))
	items := make([]pterm.BulletListItem, 0, len(moves))
	for _, move := range moves {
		items = append(items, pterm.BulletListItem{
			Level: 1,
			Text:  styles.Render("FilePath", move.Source) + styles.Render("Arrow", "->") + styles.Render("FilePath", move.Destination),
		})
	}
	r.list(items)
}

func (r *Reporter) MovesDone(moves []types.PlannedMove) {
	r.line(pterm.Success, fmt.Sprintf("Moved %s", styles.Render("Count", fmt.Sprint(len(moves)))))
}

// Finish shows the dry-run banner. Errors are rendered by the caller.
func (r *Reporter) Finish(result *types.ImportResult, err error) error {
	if err == nil && result != nil && result.DryRun {
		_, werr := fmt.Fprintln(r.output, styles.Render("DryRunBanner", text.DryRunMessage))
		return werr
	}
	return nil
}

func (r *Reporter) header(s string) {
	_, _ = fmt.Fprintln(r.output, styles.Render("Header", s))
}

func (r *Reporter) line(p pterm.PrefixPrinter, msg string) {
	_, _ = fmt.Fprintln(r.output, prefix(p)+" "+msg)
}

func (r *Reporter) list(items []pterm.BulletListItem) {
	out, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		for _, item := range items {
			out += "  - " + item.Text + "\n"
		}
	}
	_, _ = fmt.Fprint(r.output, out)
}

func prefix(p pterm.PrefixPrinter) string {
	if p.Prefix.Style == nil {
		return p.Prefix.Text
	}
	return p.Prefix.Style.Sprint(" " + p.Prefix.Text + " ")
}
