package importer

import (
	"io/fs"

	"github.com/arthur-debert/dotin/pkg/filesystem"
	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/utils"
)

// Options holds the inputs of an import.
type Options struct {
	// HomeDir is the absolute directory files must live under.
	HomeDir string
	// GroupDir is the absolute target group; its parent is the dotfiles root.
	GroupDir string
	// Files are absolute or relative to the working directory.
	Files []string

	DryRun  bool
	DirMode fs.FileMode // 0 means utils.DefaultDirMode

	FileSystem types.FS       // Allow injecting a filesystem for testing
	Reporter   types.Reporter // nil discards progress events

	// SameFilesystem defaults to utils.AreInTheSameFilesystem.
	SameFilesystem func(a, b string) (bool, error)
}

func (o Options) fs() types.FS {
	if o.FileSystem == nil {
		return filesystem.NewOS()
	}
	return o.FileSystem
}

func (o Options) reporter() types.Reporter {
	if o.Reporter == nil {
		return types.NopReporter{}
	}
	return o.Reporter
}

func (o Options) sameFilesystem() func(a, b string) (bool, error) {
	if o.SameFilesystem == nil {
		return utils.AreInTheSameFilesystem
	}
	return o.SameFilesystem
}

// Import plans and executes an import. On failure during execution the
// partial result is returned along with the error.
func Import(opts Options) (*types.ImportResult, error) {
	plan, err := Plan(opts)
	if err != nil {
		return nil, err
	}
	return Execute(plan, opts)
}
