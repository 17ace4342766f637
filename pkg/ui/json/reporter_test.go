package json_test

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/ui/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_WritesOneDocument(t *testing.T) {
	var buf bytes.Buffer
	r := json.New(&buf)

	move := types.PlannedMove{Source: "/h/.a", Destination: "/h/dotfiles/g/.a"}
	r.Skipped(types.SkippedFile{Path: "/h/dotfiles/x", Reason: types.SkipInsideDotfiles})
	r.PlannedMoves([]types.PlannedMove{move})
	r.MovesDone([]types.PlannedMove{move})
	assert.Empty(t, buf.String(), "nothing is written before Finish")

	result := &types.ImportResult{
		Plan:  &types.ImportPlan{GroupDir: "/h/dotfiles/g", Moves: []types.PlannedMove{move}},
		Moved: []types.PlannedMove{move},
	}
	require.NoError(t, r.Finish(result, nil))

	var doc json.Document
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Events, 3)
	assert.Equal(t, "skipped", doc.Events[0].Type)
	assert.Equal(t, types.SkipInsideDotfiles, doc.Events[0].Skip.Reason)
	assert.Equal(t, "planned_moves", doc.Events[1].Type)
	assert.Equal(t, "moves_done", doc.Events[2].Type)
	assert.Equal(t, []types.PlannedMove{move}, doc.Result.Moved)
	assert.Nil(t, doc.Error)
}

func TestReporter_Error(t *testing.T) {
	var buf bytes.Buffer
	r := json.New(&buf)

	err := errors.New(errors.ErrOutOfScope, "outside of home").
		WithDetail("path", "/etc/hosts")
	require.NoError(t, r.Finish(nil, err))

	var raw map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &raw))
	assert.NotContains(t, raw, "result")
	assert.Equal(t, []interface{}{}, raw["events"])

	errObj := raw["error"].(map[string]interface{})
	assert.Equal(t, "OUT_OF_SCOPE", errObj["code"])
	assert.Contains(t, errObj["message"], "outside of home")
	assert.Equal(t, map[string]interface{}{"path": "/etc/hosts"}, errObj["details"])
}
