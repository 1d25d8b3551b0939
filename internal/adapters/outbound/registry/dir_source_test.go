package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/registry"
	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

type fixedRevision string

func (f fixedRevision) Revision(string) (string, error) { return string(f), nil }

const principlesJSON = `[
  {"principles": [
    {"principle_id": "P_VNECK", "name": "V-neck elongation", "confidence": 0.82},
    {"principle_id": "P_HEM"}
  ]},
  {"principle_id": "P_FLAT", "name": "flat entry"}
]`

func TestDirSource_FlattensWrapperBlocks(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{
		"principles.json": principlesJSON,
		"rules.json":      `{"rule_id": "R_SINGLE"}`,
	})

	corpus, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, corpus.Items["principles"], 3)
	assert.Equal(t, "P_VNECK", corpus.Items["principles"][0].ID())
	assert.Equal(t, "P_FLAT", corpus.Items["principles"][2].ID())
	require.Len(t, corpus.Items["rules"], 1)
	assert.Empty(t, corpus.Items["exceptions"])
	assert.Equal(t, "dir:"+dir, corpus.Source)

	rs := domain.NewRuleSet(corpus)
	assert.Equal(t, 4, rs.TotalItems())
	assert.Equal(t, 0.82, rs.Confidence("P_VNECK"))
	assert.Equal(t, domain.DefaultRuleConfidence, rs.Confidence("P_HEM"))
}

func TestDirSource_ConfidenceOverlay(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{
		"principles.json":      principlesJSON,
		"rule_confidence.json": `{"P_VNECK": {"avg_confidence": 0.6, "n": 12}, "P_HEM": 0.55, "P_NONE": {"n": 3}}`,
	})

	corpus, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"P_VNECK": 0.6, "P_HEM": 0.55}, corpus.Confidence)

	rs := domain.NewRuleSet(corpus)
	assert.Equal(t, 0.6, rs.Confidence("P_VNECK"), "overlay wins over inline confidence")
}

func TestDirSource_FabricTable(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{
		"fabric_lookup.json": `{
		  "ponte": {"base_gsm": 320, "fiber": "rayon", "construction": "Knit-Double", "surface": "matte", "drape": 4, "typical_stretch": 25},
		  "scuba": {"base_gsm": 350, "construction": "knit_double"}
		}`,
	})

	corpus, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.NoError(t, err)

	rs := domain.NewRuleSet(corpus)
	ponte, ok := rs.Fabric("ponte")
	require.True(t, ok)
	assert.Equal(t, 320.0, ponte.BaseGSM)
	assert.Equal(t, domain.ConstructionKnitDouble, ponte.Construction)
	_, ok = rs.Fabric("scuba")
	assert.True(t, ok)
	_, ok = rs.Fabric("silk_chiffon")
	assert.True(t, ok, "built-in fabrics remain")
}

func TestDirSource_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{
		"principles.json": `[{"principle_id": 42}, {"principle_id": "P_OK", "confidence": 1.7}]`,
	})

	_, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.Error(t, err)

	var se *registry.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "principles.json", se.Document)
	assert.NotEmpty(t, se.Violations)
	assert.Contains(t, err.Error(), "/0/principle_id")
}

func TestDirSource_InvalidFabric(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{
		"fabric_lookup.json": `{"ponte": {"fiber": "rayon"}}`,
	})

	_, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fabric_lookup.json")
}

func TestDirSource_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{"rules.json": `[{`})

	_, err := registry.NewDirSource(dir, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rules.json")
}

func TestDirSource_EmptyDir(t *testing.T) {
	_, err := registry.NewDirSource(t.TempDir(), nil).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestDirSource_MissingDir(t *testing.T) {
	_, err := registry.NewDirSource(filepath.Join(t.TempDir(), "nope"), nil).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDirSource_ContentRevision(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{"rules.json": `{"rule_id": "R_1"}`})
	src := registry.NewDirSource(dir, nil)

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Revision, again.Revision)
	assert.Contains(t, first.Revision, "sha256:")

	writeRules(t, dir, map[string]string{"rules.json": `{"rule_id": "R_2"}`})
	changed, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Revision, changed.Revision)
}

func TestDirSource_VCSRevision(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{"rules.json": `{"rule_id": "R_1"}`})

	corpus, err := registry.NewDirSource(dir, fixedRevision("abc123def456")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123def456", corpus.Revision)
}

func TestDirSource_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, map[string]string{"rules.json": `{"rule_id": "R_1"}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.NewDirSource(dir, nil).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
