package scoring_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func keys(adj []domain.ContextAdjustment) []string {
	out := make([]string, 0, len(adj))
	for _, a := range adj {
		out = append(out, a.Key)
	}
	return out
}

func TestContextAdjustments_CulturalColor(t *testing.T) {
	g := domain.DefaultGarmentProfile()

	bride := scoring.ContextAdjustments(domain.ScoringContext{Culture: "India", GarmentColor: "Red", EventType: "wedding_bride"}, nil, &g)
	general := scoring.ContextAdjustments(domain.ScoringContext{Culture: "india", GarmentColor: "gold"}, nil, &g)
	neutral := scoring.ContextAdjustments(domain.ScoringContext{Culture: "us", GarmentColor: "red"}, nil, &g)

	assert.Equal(t, []domain.ContextAdjustment{{Key: scoring.AdjCulturalColor, Delta: 0.95}}, bride)
	assert.Equal(t, []domain.ContextAdjustment{{Key: scoring.AdjCulturalColor, Delta: 0.20}}, general)
	assert.Empty(t, neutral)
}

func TestContextAdjustments_OccasionViolations(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.HemPosition = "mini"
	g.VDepthCM = 15

	adj := scoring.ContextAdjustments(domain.ScoringContext{Occasion: "interview"}, nil, &g)

	assert.Equal(t, []string{scoring.AdjOccasionHem, scoring.AdjOccasionNeckline}, keys(adj))
	assert.InDelta(t, -0.35, scoring.SumAdjustments(adj), 1e-9)
}

func TestContextAdjustments_UnknownHemIsNotViolation(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.HemPosition = "asymmetric"

	adj := scoring.ContextAdjustments(domain.ScoringContext{Occasion: "formal"}, nil, &g)

	assert.Empty(t, adj)
}

func TestContextAdjustments_Climate(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.GSMEstimated = 300

	hot := scoring.ContextAdjustments(domain.ScoringContext{Climate: "hot_humid"}, nil, &g)
	assert.Equal(t, []string{scoring.AdjClimateHeavyFabric, scoring.AdjClimateNonBreathable}, keys(hot))

	g.GSMEstimated = 100
	g.FabricName = "chiffon"
	cold := scoring.ContextAdjustments(domain.ScoringContext{Climate: "COLD"}, nil, &g)
	assert.Equal(t, []string{scoring.AdjClimateLightFabric}, keys(cold))
}

func TestContextAdjustments_Age(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	results := []domain.PrincipleResult{
		result(scoring.BodyconMapping, 0.30),
		result(scoring.TentConcealment, -0.25),
	}

	older := scoring.ContextAdjustments(domain.ScoringContext{AgeRange: "50+"}, results, &g)
	younger := scoring.ContextAdjustments(domain.ScoringContext{AgeRange: "18-25"}, results, &g)

	assert.Equal(t, []domain.ContextAdjustment{{Key: scoring.AdjAgeBodyconComfort, Delta: -0.05}}, older)
	assert.Equal(t, []domain.ContextAdjustment{{Key: scoring.AdjAgeOversizedTrend, Delta: 0.05}}, younger)
}
