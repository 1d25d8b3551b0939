package scoring_test

import (
	"errors"
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures_Shapes(t *testing.T) {
	shapes := map[domain.BodyShape]domain.BodyProfile{
		domain.ShapeHourglass:        hourglassBody(),
		domain.ShapePear:             pearBody(),
		domain.ShapeApple:            appleBody(),
		domain.ShapeRectangle:        rectangleBody(),
		domain.ShapeInvertedTriangle: invtBody(),
	}
	for want, b := range shapes {
		assert.Equal(t, want, b.Shape())
	}
}

func TestScorerRun_RecoversPanic(t *testing.T) {
	s := scoring.Scorer{Name: "Exploding", Weight: 0.1, Fn: func(scoring.Input) domain.Outcome {
		panic("boom")
	}}

	out, err := s.Run(input(domain.DefaultGarmentProfile(), domain.DefaultBodyProfile()))

	require.Error(t, err)
	var se *scoring.ScorerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Exploding", se.Principle)
	assert.True(t, out.IsApplicable())
	assert.Equal(t, 0.0, out.Score)
	assert.Equal(t, "ERROR: boom", out.Reasoning)
}

func TestScorerRun_PassesThrough(t *testing.T) {
	s := scoring.Scorer{Name: "Fixed", Fn: func(scoring.Input) domain.Outcome {
		return domain.Applicable(0.4, "ok")
	}}

	out, err := s.Run(input(domain.DefaultGarmentProfile(), domain.DefaultBodyProfile()))

	require.NoError(t, err)
	assert.Equal(t, 0.4, out.Score)
}

func TestBaseScorers_SixteenUniqueNames(t *testing.T) {
	scorers := scoring.BaseScorers()
	require.Len(t, scorers, 16)

	seen := map[string]bool{}
	for _, s := range scorers {
		assert.False(t, seen[s.Name], "duplicate %s", s.Name)
		seen[s.Name] = true
		assert.Greater(t, s.Weight, 0.0)
	}
}

func TestScorers_StayInRange(t *testing.T) {
	bodies := []domain.BodyProfile{hourglassBody(), pearBody(), appleBody(), rectangleBody(), invtBody()}
	garments := []domain.GarmentProfile{domain.DefaultGarmentProfile()}

	g := domain.DefaultGarmentProfile()
	g.HasHorizontalStripes, g.ExpansionRate, g.ColorLightness = true, 0.0, 0.1
	g.HasContrastingBelt, g.IsMonochromeOutfit = true, true
	garments = append(garments, g)

	g = domain.DefaultGarmentProfile()
	g.ExpansionRate, g.Surface, g.Neckline = 0.25, domain.SurfaceHighShine, domain.NecklineDeepV
	g.SleeveType = domain.SleeveCap
	garments = append(garments, g)

	for _, b := range bodies {
		for _, g := range garments {
			in := input(g, b)
			for _, s := range scoring.BaseScorers() {
				out, err := s.Run(in)
				require.NoError(t, err, s.Name)
				assert.GreaterOrEqual(t, out.Score, -1.0, s.Name)
				assert.LessOrEqual(t, out.Score, 1.0, s.Name)
			}
		}
	}
}

func TestEvaluate_PantsSkipAndAdd(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.Category = domain.CategoryBottomPants
	g.Rise, g.LegShape = "high", "wide_leg"

	results, errs := scoring.Evaluate(input(g, pearBody()), domain.CategoryBottomPants, domain.EmptyRuleSet(), 1.0)

	require.Empty(t, errs)
	require.Len(t, results, 18)

	byName := map[string]domain.PrincipleResult{}
	for _, r := range results {
		byName[r.Name] = r
	}
	for _, skipped := range []string{scoring.VNeckElongation, scoring.NecklineCompound, scoring.Sleeve, scoring.RiseElongation, scoring.Hemline} {
		r := byName[skipped]
		assert.False(t, r.Applicable, skipped)
		assert.Equal(t, 0.0, r.Weight, skipped)
		assert.Equal(t, "N/A for bottom_pants", r.Reasoning)
	}

	rise := byName[scoring.PantRise]
	assert.True(t, rise.Applicable)
	assert.InDelta(t, 0.25, rise.Score, 1e-9)
	assert.InDelta(t, 0.18, rise.Weight, 1e-9)
	assert.InDelta(t, 0.70, rise.Confidence, 1e-9)

	leg := byName[scoring.LegShape]
	assert.InDelta(t, 0.50, leg.Score, 1e-9)
}

func TestEvaluate_PenaltyReductionDampensNegatives(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.HasHorizontalStripes = false
	g.HasContrastingBelt = true

	full, _ := scoring.Evaluate(input(g, appleBody()), domain.CategoryDress, domain.EmptyRuleSet(), 1.0)
	damped, _ := scoring.Evaluate(input(g, appleBody()), domain.CategoryDress, domain.EmptyRuleSet(), 0.30)

	for i := range full {
		if full[i].Name != scoring.ColorBreak {
			continue
		}
		assert.InDelta(t, -0.25, full[i].Score, 1e-9)
		assert.InDelta(t, -0.075, damped[i].Score, 1e-9)
	}
}

func TestEvaluate_NotApplicableZeroesWeight(t *testing.T) {
	g := domain.DefaultGarmentProfile()

	results, _ := scoring.Evaluate(input(g, rectangleBody()), domain.CategoryDress, domain.EmptyRuleSet(), 1.0)

	for _, r := range results {
		if r.Name == scoring.HStripeThinning {
			assert.False(t, r.Applicable)
			assert.Equal(t, 0.0, r.Weight)
			assert.Contains(t, r.Reasoning, "N/A")
		}
	}
}

func TestConfidenceKey(t *testing.T) {
	assert.Equal(t, "dark_black_slimming", scoring.ConfidenceKey(scoring.DarkSlimming))
	assert.Equal(t, "v-neck_elongation", scoring.ConfidenceKey(scoring.VNeckElongation))
}
