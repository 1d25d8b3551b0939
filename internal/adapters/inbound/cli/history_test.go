package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No score history found.")
}

func TestHistoryCommand_Last(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stydev/history.json", `[
  {"timestamp": "t1", "title": "first", "overall_score": 4.0},
  {"timestamp": "t2", "title": "second", "overall_score": 6.0},
  {"timestamp": "t3", "title": "third", "overall_score": 8.0}
]`)

	out, err := run(t, dir, "history", "--json", "--last", "2")
	require.NoError(t, err)

	var entries []domain.ScoreEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Title)
	assert.Equal(t, "third", entries[1].Title)
}

func TestHistoryCommand_Table(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stydev/history.json", `[
  {"timestamp": "t1", "title": "first", "overall_score": 4.0},
  {"timestamp": "t2", "title": "second", "overall_score": 6.0}
]`)

	out, err := run(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Score History")
	assert.Contains(t, out, "second")
}

func TestHistoryCommand_Corrupt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".stydev/history.json", "not json")

	_, err := run(t, dir, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading history")
}
