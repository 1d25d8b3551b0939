package scoring_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreALineBalance_Branches(t *testing.T) {
	petite := rectangleBody()
	petite.Height = 60

	tests := []struct {
		name  string
		er    float64
		drape float64
		hem   string
		body  domain.BodyProfile
		want  float64
	}{
		{"pear drapey at knee", 0.08, 3, "knee", pearBody(), 0.35},
		{"pear stiff shelf inversion", 0.08, 7, "knee", pearBody(), -0.025},
		{"pear medium drape", 0.08, 5, "knee", pearBody(), 0.275},
		{"pear drapey mid thigh", 0.08, 3, "mid_thigh", pearBody(), 0.20},
		{"inverted triangle max benefit", 0.08, 3, "knee", invtBody(), 0.40},
		{"plus stiff shelf amplified", 0.08, 7, "knee", plusBody(), -0.1875},
		{"slight flare ramps up", 0.045, 3, "knee", rectangleBody(), 0.175},
		{"petite overwhelmed by full flare", 0.15, 3, "knee", petite, 0.025},
		{"petite scale appropriate", 0.08, 3, "knee", petite, 0.30},
		{"tall carries volume", 0.08, 3, "knee", tallBody(), 0.35},
		{"extreme flare flattens out", 0.30, 3, "knee", rectangleBody(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.DefaultGarmentProfile()
			g.ExpansionRate = tt.er
			g.Drape = tt.drape
			g.HemPosition = tt.hem

			out := scoring.ScoreALineBalance(input(g, tt.body))

			assert.True(t, out.IsApplicable())
			assert.InDelta(t, tt.want, out.Score, 1e-9)
		})
	}
}

func TestScoreALineBalance_StiffReasoning(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.08
	g.Drape = 7

	out := scoring.ScoreALineBalance(input(g, pearBody()))

	assert.Negative(t, out.Score)
	assert.Contains(t, out.Reasoning, "shelf effect INVERSION")
}

func TestScoreALineBalance_FittedNotApplicable(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.02

	out := scoring.ScoreALineBalance(input(g, pearBody()))

	assert.False(t, out.IsApplicable())
}
