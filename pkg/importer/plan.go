package importer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/logging"
	"github.com/arthur-debert/dotin/pkg/paths"
	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/utils"
	"github.com/rs/zerolog"
)

// Plan validates an import without touching the filesystem. Skips and
// warnings are reported as they are found; the first violation aborts.
func Plan(opts Options) (*types.ImportPlan, error) {
	logger := logging.GetLogger("importer")
	done := logging.LogOperationStart(logger, "plan")
	defer done()

	fsys := opts.fs()
	reporter := opts.reporter()

	plan, err := newPlan(fsys, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("home", plan.HomeDir).
		Str("group", plan.GroupDir).
		Str("dotfiles_root", plan.DotfilesRoot).
		Strs("files", opts.Files).
		Msg("Planning import")

	if err := resolveFiles(plan, opts.Files); err != nil {
		return nil, err
	}

	if err := classifyFiles(fsys, reporter, logger, plan); err != nil {
		return nil, err
	}

	if err := checkDestinations(fsys, plan); err != nil {
		return nil, err
	}

	if err := findIntermediateDirs(fsys, plan); err != nil {
		return nil, err
	}

	logger.Info().
		Int("moves", len(plan.Moves)).
		Int("skipped", len(plan.Skipped)).
		Int("warnings", len(plan.Warnings)).
		Int("intermediate_dirs", len(plan.IntermediateDirs)).
		Msg("Import planned")

	return plan, nil
}

// newPlan checks the caller contract and canonicalizes the home directory and
// the dotfiles root.
func newPlan(fsys types.FS, opts Options) (*types.ImportPlan, error) {
	if len(opts.Files) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no files to import")
	}
	if !filepath.IsAbs(opts.HomeDir) {
		return nil, errors.Newf(errors.ErrInvalidInput, "home directory must be absolute, got %q", opts.HomeDir).
			WithDetail("path", opts.HomeDir)
	}
	if !filepath.IsAbs(opts.GroupDir) {
		return nil, errors.Newf(errors.ErrInvalidInput, "group directory must be absolute, got %q", opts.GroupDir).
			WithDetail("path", opts.GroupDir)
	}

	groupDir := filepath.Clean(opts.GroupDir)
	parent := filepath.Dir(groupDir)
	if parent == groupDir {
		return nil, errors.Newf(errors.ErrInvalidInput, "group directory %s has no parent to act as dotfiles root", groupDir).
			WithDetail("path", groupDir)
	}

	home, err := paths.Canonicalize(opts.HomeDir)
	if err != nil {
		return nil, err
	}
	root := paths.CanonicalizeExisting(parent)
	groupDir = filepath.Join(root, filepath.Base(groupDir))

	if info, err := fsys.Stat(groupDir); err == nil && !info.IsDir() {
		return nil, errors.Newf(errors.ErrObstructedDir, "cannot use %s as group directory, there's a file there", groupDir).
			WithDetail("path", groupDir)
	}

	return &types.ImportPlan{
		HomeDir:          home,
		GroupDir:         groupDir,
		DotfilesRoot:     root,
		Resolved:         []types.ResolvedFile{},
		Skipped:          []types.SkippedFile{},
		Warnings:         []types.Warning{},
		Moves:            []types.PlannedMove{},
		IntermediateDirs: []string{},
	}, nil
}

// resolveFiles canonicalizes every input. One failure fails them all.
func resolveFiles(plan *types.ImportPlan, files []string) error {
	for _, file := range files {
		canonical, err := paths.Canonicalize(file)
		if err != nil {
			return err
		}
		plan.Resolved = append(plan.Resolved, types.ResolvedFile{
			OriginalPath:  file,
			CanonicalPath: canonical,
		})
	}
	return nil
}

// classifyFiles decides, in input order, whether each file is skipped or
// moved. A file outside home aborts the whole batch.
func classifyFiles(fsys types.FS, reporter types.Reporter, logger zerolog.Logger, plan *types.ImportPlan) error {
	for i := range plan.Resolved {
		file := &plan.Resolved[i]
		file.IsSymlink = paths.IsSymlink(fsys, file.OriginalPath)

		if rel, inside := paths.Within(plan.DotfilesRoot, file.CanonicalPath); inside {
			skip := types.SkippedFile{Path: file.OriginalPath, Reason: types.SkipInsideDotfiles}
			if file.IsSymlink {
				skip.Reason = types.SkipSymlinkIntoDotfiles
				skip.Target = rel
			}
			logger.Debug().
				Str("path", file.OriginalPath).
				Str("reason", string(skip.Reason)).
				Msg("Skipping file")
			plan.Skipped = append(plan.Skipped, skip)
			reporter.Skipped(skip)
			continue
		}

		if file.IsSymlink {
			warning := types.Warning{
				Path:    file.OriginalPath,
				Message: "is a symlink itself and will be moved as-is; check it is really what belongs in the group",
			}
			logger.Warn().Str("path", file.OriginalPath).Msg("Importing a symlink")
			plan.Warnings = append(plan.Warnings, warning)
			reporter.Warning(warning)
		}

		rel, inside := paths.Within(plan.HomeDir, file.CanonicalPath)
		if !inside || rel == "." {
			return errors.Newf(errors.ErrOutOfScope,
				"can only import files inside of home directory %s, but %s seems to be outside of it",
				plan.HomeDir, file.OriginalPath).
				WithDetail("path", file.OriginalPath).
				WithDetail("home", plan.HomeDir)
		}

		move := types.PlannedMove{
			Source:      file.OriginalPath,
			Destination: filepath.Join(plan.GroupDir, rel),
		}
		logger.Debug().
			Str("source", move.Source).
			Str("destination", move.Destination).
			Msg("Planned move")
		plan.Moves = append(plan.Moves, move)
	}
	return nil
}

// checkDestinations rejects any planned move that would overwrite something,
// including another move of the same batch. It also rejects moves that
// would carry the dotfiles root or another move's source along.
func checkDestinations(fsys types.FS, plan *types.ImportPlan) error {
	canonical := make(map[string]string, len(plan.Resolved))
	symlink := make(map[string]bool, len(plan.Resolved))
	for _, file := range plan.Resolved {
		canonical[file.OriginalPath] = file.CanonicalPath
		symlink[file.OriginalPath] = file.IsSymlink
	}

	seen := make(map[string]bool, len(plan.Moves))
	for _, move := range plan.Moves {
		// Lstat failures are left to the directory checks that follow.
		if _, err := fsys.Lstat(move.Destination); err == nil {
			return errors.Newf(errors.ErrDestinationExists, "file at %s already exists, and cannot be imported", move.Destination).
				WithDetail("path", move.Destination).
				WithDetail("source", move.Source)
		}
		if seen[move.Destination] {
			return errors.Newf(errors.ErrDestinationExists, "more than one file would be imported to %s", move.Destination).
				WithDetail("path", move.Destination).
				WithDetail("source", move.Source)
		}
		seen[move.Destination] = true
	}

	// A symlink is renamed as-is and carries nothing along.
	for _, move := range plan.Moves {
		if symlink[move.Source] {
			continue
		}
		if _, inside := paths.Within(canonical[move.Source], plan.DotfilesRoot); inside {
			return errors.Newf(errors.ErrInvalidInput, "cannot import %s, it contains the dotfiles root %s", move.Source, plan.DotfilesRoot).
				WithDetail("path", move.Source).
				WithDetail("dotfiles_root", plan.DotfilesRoot)
		}
	}

	for _, outer := range plan.Moves {
		for _, inner := range plan.Moves {
			if outer == inner {
				continue
			}
			if rel, inside := paths.Within(canonical[outer.Source], canonical[inner.Source]); inside && rel != "." {
				return errors.Newf(errors.ErrInvalidInput, "%s is inside %s, which is imported too", inner.Source, outer.Source).
					WithDetail("path", inner.Source).
					WithDetail("parent", outer.Source)
			}
		}
	}
	return nil
}

// findIntermediateDirs collects the missing destination parents below the
// group directory, failing when a non-directory sits where one is needed.
func findIntermediateDirs(fsys types.FS, plan *types.ImportPlan) error {
	var missing []string
	for _, move := range plan.Moves {
		parent := filepath.Dir(move.Destination)

		create, err := missingDir(fsys, plan.GroupDir, parent)
		if err != nil {
			return err
		}
		if create {
			missing = append(missing, parent)
		}
	}

	dirs := utils.DedupNested(missing)
	sort.Strings(dirs)
	plan.IntermediateDirs = dirs
	return nil
}

// missingDir walks from groupDir down to dir and reports whether dir has to
// be created. The group directory itself never counts.
func missingDir(fsys types.FS, groupDir, dir string) (bool, error) {
	rel, inside := paths.Within(groupDir, dir)
	if !inside || rel == "." {
		return false, nil
	}

	current := groupDir
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, part)
		exists, err := checkDirSlot(fsys, current)
		if err != nil {
			return false, err
		}
		if !exists {
			return true, nil
		}
	}
	return false, nil
}

// checkDirSlot reports whether a directory exists at path. A non-directory
// or a dangling symlink there is an obstruction.
func checkDirSlot(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// A dangling symlink still occupies the slot.
			if _, lerr := fsys.Lstat(path); lerr == nil {
				return false, errors.Newf(errors.ErrObstructedDir, "cannot create directory at %s, there's a broken symlink there", path).
					WithDetail("path", path)
			}
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return false, errors.Newf(errors.ErrObstructedDir, "cannot create file at %s, there's a file there", path).
			WithDetail("path", path)
	}
	return true, nil
}
