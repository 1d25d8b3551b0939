package fabric_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateIDs(exs []domain.ExceptionTriggered) []string {
	ids := make([]string, len(exs))
	for i, e := range exs {
		ids[i] = e.ExceptionID
	}
	return ids
}

func TestRunGates_MultipleFireInOrder(t *testing.T) {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Underbust, b.Hip, b.BellyZone = 44, 36, 46, 0.6

	g := domain.DefaultGarmentProfile()
	g.ColorLightness = 0.1
	g.Surface = domain.SurfaceHighShine
	g.Silhouette = domain.SilhouetteALine
	g.Drape = 7
	g.Neckline = domain.NecklineWrap
	g.SurfaceFriction = 0.2
	g.IsStructured = true

	exs := fabric.RunGates(&g, &b, fabric.Resolve(&g, nil), domain.DefaultEngineConfig())

	assert.Equal(t, []string{
		domain.GateDarkShiny, domain.GateALineShelf, domain.GateWrapGapping,
		domain.GateStructured, domain.GateFluidAppleBelly,
	}, gateIDs(exs))
	assert.Equal(t, "Dark (L=0.10) + high sheen (SI=0.75): sheen amplifies body contours, partially negating dark slimming benefit", exs[0].Reason)
	assert.Equal(t, "A-line + stiff fabric (DC=70%): fabric won't drape, creates shelf effect at hips", exs[1].Reason)
	assert.Equal(t, "Wrap neckline + large bust (BD=8.0\") + slippery fabric (friction=0.20): high gaping risk", exs[2].Reason)
	assert.Contains(t, exs[3].Reason, "reduced ~70%")
	assert.InDelta(t, 0.80, exs[0].Confidence, 1e-9)
	assert.InDelta(t, 0.85, exs[3].Confidence, 1e-9)
	assert.InDelta(t, 0.72, exs[4].Confidence, 1e-9)
}

func TestRunGates_ClingTrap(t *testing.T) {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Underbust, b.Hip, b.BellyZone = 44, 36, 46, 0.6

	g := domain.DefaultGarmentProfile()
	g.ElastanePct = 5
	g.Construction = domain.ConstructionKnit
	g.GSMEstimated = 120
	g.SurfaceFriction = 0.3

	exs := fabric.RunGates(&g, &b, fabric.Resolve(&g, nil), domain.DefaultEngineConfig())

	require.Len(t, exs, 1)
	assert.Equal(t, domain.GateClingTrap, exs[0].ExceptionID)
	assert.Equal(t, "matte_zone", exs[0].RuleOverridden)
	assert.Equal(t, "Matte (SI=0.10) but clingy (cling=0.77): creates second-skin effect on curves, overriding matte benefit", exs[0].Reason)
}

func TestRunGates_PlainGarmentFiresNothing(t *testing.T) {
	b := domain.DefaultBodyProfile()
	g := domain.DefaultGarmentProfile()
	assert.Empty(t, fabric.RunGates(&g, &b, fabric.Resolve(&g, nil), domain.DefaultEngineConfig()))
}

func TestRunGates_ConfiguredConfidence(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	cfg.GateConfidence = map[string]float64{domain.GateStructured: 0.5}

	b := domain.DefaultBodyProfile()
	g := domain.DefaultGarmentProfile()
	g.IsStructured = true

	exs := fabric.RunGates(&g, &b, fabric.Resolve(&g, nil), cfg)
	require.Len(t, exs, 1)
	assert.InDelta(t, 0.5, exs[0].Confidence, 1e-9)
}

func TestPenaltyReduction(t *testing.T) {
	assert.InDelta(t, 1.0, fabric.PenaltyReduction(nil, 0.3), 1e-9)
	exs := []domain.ExceptionTriggered{{ExceptionID: domain.GateDarkShiny}, {ExceptionID: domain.GateStructured}}
	assert.InDelta(t, 0.3, fabric.PenaltyReduction(exs, 0.3), 1e-9)
}
