package scoring_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(name string, score float64) domain.PrincipleResult {
	return domain.PrincipleResult{Name: name, Score: score, Weight: 0.10, Applicable: true, Confidence: 0.70}
}

func TestScoreGoals_LookTallerPass(t *testing.T) {
	results := []domain.PrincipleResult{
		result(scoring.MonochromeColumn, 0.40),
		result(scoring.ColorBreak, -0.10),
		result(scoring.Hemline, 0.02),
	}

	verdicts := scoring.ScoreGoals(results, []domain.StylingGoal{domain.GoalLookTaller}, 0.15)

	require.Len(t, verdicts, 1)
	v := verdicts[0]
	// (0.40*1.5 + 0.10*1.3 + 0.02*1.3) / (1.5 + 1.3 + 1.3)
	assert.InDelta(t, 0.184, v.Score, 1e-9)
	assert.Equal(t, domain.VerdictPass, v.Verdict)
	assert.Equal(t, []string{"+Monochrome Column (+0.40)", "-Color Break avoided (-0.10)"}, v.SupportingPrinciples)
	assert.Equal(t, "Weighted score: +0.184 (pass)", v.Reasoning)
}

func TestScoreGoals_Fail(t *testing.T) {
	results := []domain.PrincipleResult{result(scoring.BodyconMapping, -0.40)}

	verdicts := scoring.ScoreGoals(results, []domain.StylingGoal{domain.GoalEmphasis}, 0.15)

	assert.Equal(t, domain.VerdictFail, verdicts[0].Verdict)
	assert.InDelta(t, -0.40, verdicts[0].Score, 1e-9)
}

func TestScoreGoals_NoApplicablePrinciples(t *testing.T) {
	na := result(scoring.Sleeve, 0)
	na.Applicable = false

	verdicts := scoring.ScoreGoals([]domain.PrincipleResult{na}, []domain.StylingGoal{domain.GoalMinimizeArms}, 0.15)

	v := verdicts[0]
	assert.Equal(t, domain.VerdictCaution, v.Verdict)
	assert.Equal(t, 0.0, v.Score)
	assert.Empty(t, v.SupportingPrinciples)
	assert.Equal(t, "No applicable principles for this goal", v.Reasoning)
}

func TestScoreGoals_OnePerGoalInOrder(t *testing.T) {
	goals := []domain.StylingGoal{domain.GoalBalance, domain.GoalSlimHips, domain.GoalHighlightWaist}

	verdicts := scoring.ScoreGoals([]domain.PrincipleResult{result(scoring.WaistPlacement, 0.1)}, goals, 0.15)

	require.Len(t, verdicts, 3)
	for i, g := range goals {
		assert.Equal(t, g, verdicts[i].Goal)
	}
}
