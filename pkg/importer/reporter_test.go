package importer_test

import (
	"github.com/arthur-debert/dotin/pkg/types"
)

// recordingReporter keeps the names of the events it received.
type recordingReporter struct {
	events []string
}

func (r *recordingReporter) Skipped(types.SkippedFile)               { r.events = append(r.events, "Skipped") }
func (r *recordingReporter) Warning(types.Warning)                   { r.events = append(r.events, "Warning") }
func (r *recordingReporter) NothingToDo()                            { r.events = append(r.events, "NothingToDo") }
func (r *recordingReporter) PlannedDirectories([]string)             { r.events = append(r.events, "PlannedDirectories") }
func (r *recordingReporter) DirectoriesCreated([]string)             { r.events = append(r.events, "DirectoriesCreated") }
func (r *recordingReporter) PlannedMoves([]types.PlannedMove)        { r.events = append(r.events, "PlannedMoves") }
func (r *recordingReporter) MovesDone([]types.PlannedMove)           { r.events = append(r.events, "MovesDone") }
func (r *recordingReporter) Finish(*types.ImportResult, error) error { return nil }
