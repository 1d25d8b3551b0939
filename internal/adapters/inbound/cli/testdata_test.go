package cli_test

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "../../../../testdata"

// fixtureProject returns a project dir whose registry reads testdata/rules.
func fixtureProject(t *testing.T) string {
	t.Helper()
	rules, err := filepath.Abs(filepath.Join(testdataDir, "rules"))
	require.NoError(t, err)
	dir := t.TempDir()
	writeFile(t, dir, ".stydev.yaml", fmt.Sprintf("registry:\n  source: dir\n  dir: %s\ncache:\n  enabled: false\n", rules))
	return dir
}

func fixtureRequest(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join(testdataDir, "requests", name))
	require.NoError(t, err)
	return p
}

func TestFixtures_ScoreEveryRequest(t *testing.T) {
	dir := fixtureProject(t)

	out, err := run(t, dir, "score", "--json",
		fixtureRequest(t, "wrap_dress.yaml"),
		fixtureRequest(t, "denim_jacket.json"),
		fixtureRequest(t, "wide_leg_trousers.yaml"),
	)
	require.NoError(t, err)

	var results []domain.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	assert.Equal(t, domain.CategoryDress, results[0].Category)
	assert.Equal(t, domain.CategoryJacket, results[1].Category)
	assert.NotNil(t, results[1].LayerModifications)
	assert.Equal(t, domain.CategoryBottomPants, results[2].Category)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.OverallScore, 0.0)
		assert.LessOrEqual(t, r.OverallScore, 10.0)
	}
}

func TestFixtures_RulesSummary(t *testing.T) {
	out, err := run(t, fixtureProject(t), "rules", "summary", "--json")
	require.NoError(t, err)

	var summary struct {
		Items      int            `json:"items"`
		Types      map[string]int `json:"types"`
		Confidence int            `json:"confidence"`
		Fabrics    int            `json:"fabrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 5, summary.Items)
	assert.Equal(t, 4, summary.Types["principles"])
	assert.Equal(t, 1, summary.Types["exceptions"])
	assert.Equal(t, 2, summary.Confidence)
	assert.Greater(t, summary.Fabrics, 2, "overrides extend the built-in table")
}

func TestFixtures_CorpusFabric(t *testing.T) {
	out, err := run(t, fixtureProject(t), "fabric", "scuba", "--json")
	require.NoError(t, err)

	var report struct {
		Name string            `json:"name"`
		Spec domain.FabricSpec `json:"spec"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "scuba", report.Name)
	assert.Equal(t, 320.0, report.Spec.BaseGSM)
	assert.Equal(t, domain.ConstructionKnitDouble, report.Spec.Construction)
}
