package scoring_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreColorBreak_HourglassVersusPetite(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.HasContrastingBelt = true

	hourglass := scoring.ScoreColorBreak(input(g, hourglassBody()))
	petite := invtBody()
	petite.Height = 60
	small := scoring.ScoreColorBreak(input(g, petite))

	assert.InDelta(t, 0.20, hourglass.Score, 1e-9)
	assert.Contains(t, hourglass.Reasoning, "HOURGLASS REVERSAL")
	assert.InDelta(t, -0.15, small.Score, 1e-9)
}

func TestScoreColorBreak_WideBeltOnHourglass(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.HasContrastingBelt = true
	g.BeltWidthCM = 6

	out := scoring.ScoreColorBreak(input(g, hourglassBody()))

	assert.InDelta(t, 0.25, out.Score, 1e-9)
}

func TestScoreTentConcealment_HourglassVersusTall(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.15

	hourglass := scoring.ScoreTentConcealment(input(g, hourglassBody()))
	tall := rectangleBody()
	tall.Height = 70
	tallOut := scoring.ScoreTentConcealment(input(g, tall))

	assert.InDelta(t, -0.265, hourglass.Score, 1e-9)
	assert.InDelta(t, 0.035, tallOut.Score, 1e-9)
}

func TestScoreTentConcealment_SemiFittedIsApplicable(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.05

	out := scoring.ScoreTentConcealment(input(g, rectangleBody()))

	assert.True(t, out.IsApplicable())
	assert.InDelta(t, 0.15, out.Score, 1e-9)
}

func TestScoreBodyconMapping_ThinFabricAcrossShapes(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.0
	g.GSMEstimated = 150

	athletic := appleBody()
	athletic.IsAthletic = true

	tests := []struct {
		name string
		body domain.BodyProfile
		want float64
	}{
		{"hourglass", hourglassBody(), 0.30},
		{"pear", pearBody(), -0.30},
		{"apple", appleBody(), -0.40},
		{"athletic apple", athletic, 0.20},
		{"rectangle", rectangleBody(), 0},
		{"inverted triangle", invtBody(), -0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := scoring.ScoreBodyconMapping(input(g, tt.body))
			assert.True(t, out.IsApplicable())
			assert.InDelta(t, tt.want, out.Score, 1e-9)
		})
	}
}

func TestScoreBodyconMapping_LooseFitNotApplicable(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.ExpansionRate = 0.10

	out := scoring.ScoreBodyconMapping(input(g, pearBody()))

	assert.False(t, out.IsApplicable())
}
