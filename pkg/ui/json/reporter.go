// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/types"
)

// Event is one progress event, in the order it happened.
type Event struct {
	Type    string              `json:"type"`
	Skip    *types.SkippedFile  `json:"skip,omitempty"`
	Warning *types.Warning      `json:"warning,omitempty"`
	Dirs    []string            `json:"dirs,omitempty"`
	Moves   []types.PlannedMove `json:"moves,omitempty"`
}

// Error is the JSON form of a failed import.
type Error struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Document is everything written on Finish.
type Document struct {
	Events []Event             `json:"events"`
	Result *types.ImportResult `json:"result,omitempty"`
	Error  *Error              `json:"error,omitempty"`
}

// Reporter buffers events and writes a single JSON document on Finish.
type Reporter struct {
	encoder *json.Encoder
	events  []Event
}

// New creates a new JSON reporter
func New(output io.Writer) *Reporter {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Reporter{
		encoder: encoder,
		events:  []Event{},
	}
}

func (r *Reporter) Skipped(skip types.SkippedFile) {
	r.events = append(r.events, Event{Type: "skipped", Skip: &skip})
}

func (r *Reporter) Warning(warning types.Warning) {
	r.events = append(r.events, Event{Type: "warning", Warning: &warning})
}

func (r *Reporter) NothingToDo() {
	r.events = append(r.events, Event{Type: "nothing_to_do"})
}

func (r *Reporter) PlannedDirectories(dirs []string) {
	r.events = append(r.events, Event{Type: "planned_directories", Dirs: dirs})
}

func (r *Reporter) DirectoriesCreated(dirs []string) {
	r.events = append(r.events, Event{Type: "directories_created", Dirs: dirs})
}

func (r *Reporter) PlannedMoves(moves []types.PlannedMove) {
	r.events = append(r.events, Event{Type: "planned_moves", Moves: moves})
}

func (r *Reporter) MovesDone(moves []types.PlannedMove) {
	r.events = append(r.events, Event{Type: "moves_done", Moves: moves})
}

// Finish writes the document, including the error when there is one.
func (r *Reporter) Finish(result *types.ImportResult, err error) error {
	doc := Document{Events: r.events, Result: result}
	if err != nil {
		doc.Error = &Error{
			Code:    errors.GetErrorCode(err),
			Message: err.Error(),
			Details: errors.GetErrorDetails(err),
		}
	}
	return r.encoder.Encode(doc)
}
