package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const principlesJSON = `[
  {"principles": [
    {"principle_id": "P_VNECK", "name": "V-neck elongation", "confidence": 0.82},
    {"principle_id": "P_HEM"}
  ]}
]`

func TestRulesSummary_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rules/principles.json", principlesJSON)

	out, err := run(t, dir, "rules", "summary", "--json")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, float64(2), summary["items"])
	assert.Equal(t, "dir:"+filepath.Join(dir, "rules"), summary["source"])
	assert.NotEmpty(t, summary["revision"])
}

func TestRulesSummary_NoCorpus(t *testing.T) {
	out, err := run(t, t.TempDir(), "rules", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "0 indexed items")
}

func TestRulesImport_ThenSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "corpus")
	writeFile(t, src, "principles.json", principlesJSON)
	writeFile(t, dir, ".stydev.yaml", "registry:\n  source: sqlite\n  sqlite_path: .stydev/rules.db\n")

	out, err := run(t, dir, "rules", "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 items")

	_, err = os.Stat(filepath.Join(dir, ".stydev", "rules.db"))
	require.NoError(t, err)

	out, err = run(t, dir, "rules", "summary", "--json")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, float64(2), summary["items"])
}

func TestRulesImport_InvalidCorpus(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "corpus")
	writeFile(t, src, "principles.json", "{not json")

	_, err := run(t, dir, "rules", "import", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading")
}
