package importer

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/logging"
	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/utils"
)

// Execute creates the planned directories and performs the planned moves.
// With opts.DryRun only the filesystem check runs. The returned result lists
// what was done even when an error stops the batch half-way.
func Execute(plan *types.ImportPlan, opts Options) (*types.ImportResult, error) {
	if plan == nil {
		return nil, errors.New(errors.ErrInvalidInput, "nothing planned")
	}

	logger := logging.GetLogger("importer")
	done := logging.LogOperationStart(logger, "execute")
	defer done()

	fsys := opts.fs()
	reporter := opts.reporter()

	result := &types.ImportResult{
		Plan:        plan,
		Moved:       []types.PlannedMove{},
		CreatedDirs: []string{},
		DryRun:      opts.DryRun,
	}

	if !plan.HasWork() {
		reporter.NothingToDo()
		if opts.DryRun {
			return result, nil
		}
		if err := createGroupDir(fsys, plan.GroupDir, opts, result); err != nil {
			return result, err
		}
		logger.Info().Str("group", plan.GroupDir).Msg("No files to move")
		return result, nil
	}

	if len(plan.IntermediateDirs) > 0 {
		reporter.PlannedDirectories(plan.IntermediateDirs)
	}

	if opts.DryRun {
		if err := checkFilesystems(fsys, plan, opts, true); err != nil {
			return result, err
		}
		reporter.PlannedMoves(plan.Moves)
		logger.Info().Int("moves", len(plan.Moves)).Msg("Dry run, nothing changed")
		return result, nil
	}

	if err := createGroupDir(fsys, plan.GroupDir, opts, result); err != nil {
		return result, err
	}
	if err := createIntermediateDirs(fsys, plan.IntermediateDirs, opts, result); err != nil {
		return result, err
	}
	if len(plan.IntermediateDirs) > 0 {
		reporter.DirectoriesCreated(plan.IntermediateDirs)
	}

	if err := checkFilesystems(fsys, plan, opts, false); err != nil {
		return result, err
	}

	reporter.PlannedMoves(plan.Moves)
	if err := moveFiles(fsys, plan.Moves, result); err != nil {
		logger.Error().
			Err(err).
			Int("moved", len(result.Moved)).
			Int("planned", len(plan.Moves)).
			Msg("Import stopped, completed moves are kept")
		return result, err
	}
	reporter.MovesDone(result.Moved)

	logger.Info().
		Str("group", plan.GroupDir).
		Int("moved", len(result.Moved)).
		Int("created_dirs", len(result.CreatedDirs)).
		Msg("Import completed")
	return result, nil
}

func createGroupDir(fsys types.FS, groupDir string, opts Options, result *types.ImportResult) error {
	_, statErr := fsys.Stat(groupDir)
	if err := utils.CreateFolderAt(fsys, groupDir, opts.DirMode); err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		result.CreatedDirs = append(result.CreatedDirs, groupDir)
	}
	return nil
}

func createIntermediateDirs(fsys types.FS, dirs []string, opts Options, result *types.ImportResult) error {
	logger := logging.GetLogger("importer")
	for _, dir := range dirs {
		if err := utils.CreateFolderAt(fsys, dir, opts.DirMode); err != nil {
			return err
		}
		logger.Debug().Str("dir", dir).Msg("Created intermediate directory")
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// checkFilesystems fails before any move when a source and its destination
// directory live on different filesystems. In a dry run the destination
// directory may not exist yet, so its nearest existing ancestor stands in.
func checkFilesystems(fsys types.FS, plan *types.ImportPlan, opts Options, dryRun bool) error {
	sameFilesystem := opts.sameFilesystem()
	for _, move := range plan.Moves {
		destDir := filepath.Dir(move.Destination)
		if dryRun {
			destDir = nearestExisting(fsys, destDir)
		}

		same, err := sameFilesystem(move.Source, destDir)
		if err != nil {
			if errors.GetErrorCode(err) != errors.ErrUnknown {
				return err
			}
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to compare filesystems of %s and %s", move.Source, destDir).
				WithDetail("path", move.Source)
		}
		if !same {
			return errors.Newf(errors.ErrCrossFilesystem,
				"cannot move file %s to folder %s because they're not in the same filesystem",
				move.Source, destDir).
				WithDetail("source", move.Source).
				WithDetail("destination", destDir)
		}
	}
	return nil
}

func nearestExisting(fsys types.FS, path string) string {
	for {
		if _, err := fsys.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// moveFiles renames in planned order and stops at the first failure.
func moveFiles(fsys types.FS, moves []types.PlannedMove, result *types.ImportResult) error {
	logger := logging.GetLogger("importer")
	for _, move := range moves {
		if err := fsys.Rename(move.Source, move.Destination); err != nil {
			completed := append([]types.PlannedMove(nil), result.Moved...)
			return errors.Wrapf(err, errors.ErrMoveFailed, "failed to move %s to %s", move.Source, move.Destination).
				WithDetail("source", move.Source).
				WithDetail("destination", move.Destination).
				WithDetail("completed", completed)
		}
		logger.Debug().
			Str("source", move.Source).
			Str("destination", move.Destination).
			Msg("Moved")
		result.Moved = append(result.Moved, move)
	}
	return nil
}
