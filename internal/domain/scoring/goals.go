package scoring

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

// goalMapping lists the principles that help (positive) or hurt (negative)
// a goal. A negative principle scoring below zero counts in the goal's
// favour. Weights default to 1.0.
type goalMapping struct {
	positive []string
	negative []string
	weights  map[string]float64
}

var goalPrinciples = map[domain.StylingGoal]goalMapping{
	domain.GoalLookTaller: {
		positive: []string{MonochromeColumn, RiseElongation, VNeckElongation, Hemline, WaistPlacement, PantRise},
		negative: []string{ColorBreak, HStripeThinning, TopHemline},
		weights: map[string]float64{
			MonochromeColumn: 1.5, RiseElongation: 1.3, VNeckElongation: 1.2, Hemline: 1.3,
			WaistPlacement: 1.2, ColorBreak: 1.3, PantRise: 1.5, TopHemline: 1.2,
		},
	},
	domain.GoalHighlightWaist: {
		positive: []string{ColorBreak, BodyconMapping, WaistPlacement, PantRise, JacketScoring},
		negative: []string{TentConcealment},
		weights: map[string]float64{
			ColorBreak: 1.5, BodyconMapping: 1.2, WaistPlacement: 1.5, TentConcealment: 1.3,
			PantRise: 1.3, JacketScoring: 1.2,
		},
	},
	domain.GoalHideMidsection: {
		positive: []string{TentConcealment, DarkSlimming, MatteZone, FabricZone, TopHemline, JacketScoring},
		negative: []string{BodyconMapping, ColorBreak, PantRise},
		weights: map[string]float64{
			TentConcealment: 1.5, DarkSlimming: 1.3, MatteZone: 1.2, BodyconMapping: 1.5,
			ColorBreak: 1.2, TopHemline: 1.3, JacketScoring: 1.2, PantRise: 1.2,
		},
	},
	domain.GoalSlimHips: {
		positive: []string{DarkSlimming, ALineBalance, MatteZone, Hemline, LegShape},
		negative: []string{HStripeThinning, BodyconMapping, TopHemline},
		weights: map[string]float64{
			DarkSlimming: 1.5, ALineBalance: 1.3, MatteZone: 1.2, Hemline: 1.2,
			HStripeThinning: 1.3, BodyconMapping: 1.3, LegShape: 1.5, TopHemline: 1.3,
		},
	},
	domain.GoalLookProportional: {
		positive: []string{WaistPlacement, Hemline, RiseElongation, MonochromeColumn, PantRise, JacketScoring},
		negative: []string{TentConcealment},
		weights: map[string]float64{
			WaistPlacement: 1.5, Hemline: 1.3, RiseElongation: 1.2, TentConcealment: 1.2,
			PantRise: 1.3, JacketScoring: 1.1,
		},
	},
	domain.GoalMinimizeArms: {
		positive: []string{Sleeve, MatteZone, JacketScoring},
		weights:  map[string]float64{Sleeve: 1.5, MatteZone: 1.2, JacketScoring: 1.2},
	},
	domain.GoalSlimming: {
		positive: []string{DarkSlimming, MatteZone, HStripeThinning, ColorValue},
		negative: []string{TentConcealment, BodyconMapping},
		weights:  map[string]float64{DarkSlimming: 1.5, MatteZone: 1.3, TentConcealment: 1.5},
	},
	domain.GoalConcealment: {
		positive: []string{TentConcealment, MatteZone, DarkSlimming},
		negative: []string{BodyconMapping},
		weights:  map[string]float64{TentConcealment: 1.5, MatteZone: 1.3},
	},
	domain.GoalEmphasis: {
		positive: []string{BodyconMapping, ColorBreak, VNeckElongation},
		negative: []string{TentConcealment},
		weights:  map[string]float64{BodyconMapping: 1.5, ColorBreak: 1.3, VNeckElongation: 1.3},
	},
	domain.GoalBalance: {
		positive: []string{WaistPlacement, ALineBalance, Hemline},
	},
}

// goalWeightBoosts multiplies principle weights during calibration for each
// stated goal.
var goalWeightBoosts = map[domain.StylingGoal]map[string]float64{
	domain.GoalLookTaller: {
		MonochromeColumn: 1.5, RiseElongation: 1.3, VNeckElongation: 1.3, Hemline: 1.3,
		PantRise: 1.5, TopHemline: 1.2,
	},
	domain.GoalHighlightWaist: {
		ColorBreak: 1.5, BodyconMapping: 1.3, WaistPlacement: 1.5, PantRise: 1.3, JacketScoring: 1.2,
	},
	domain.GoalHideMidsection: {
		TentConcealment: 1.5, DarkSlimming: 1.3, MatteZone: 1.3, FabricZone: 1.2,
		TopHemline: 1.3, JacketScoring: 1.2,
	},
	domain.GoalSlimHips: {
		DarkSlimming: 1.5, ALineBalance: 1.3, MatteZone: 1.3, Hemline: 1.2,
		LegShape: 1.5, TopHemline: 1.3,
	},
	domain.GoalLookProportional: {
		WaistPlacement: 1.5, Hemline: 1.3, RiseElongation: 1.3, PantRise: 1.3,
	},
	domain.GoalMinimizeArms: {Sleeve: 1.5, MatteZone: 1.3, JacketScoring: 1.2},
	domain.GoalSlimming: {
		DarkSlimming: 1.5, MatteZone: 1.5, HStripeThinning: 1.3, TentConcealment: 1.5,
	},
	domain.GoalConcealment: {TentConcealment: 1.5, MatteZone: 1.3},
	domain.GoalEmphasis:    {BodyconMapping: 1.5, ColorBreak: 1.5, VNeckElongation: 1.5},
}

// ScoreGoals returns one verdict per stated goal, in the order given. A goal
// passes above threshold and fails below -threshold.
func ScoreGoals(results []domain.PrincipleResult, goals []domain.StylingGoal, threshold float64) []domain.GoalVerdict {
	byName := make(map[string]domain.PrincipleResult, len(results))
	for _, r := range results {
		if r.Applicable {
			byName[r.Name] = r
		}
	}

	verdicts := make([]domain.GoalVerdict, 0, len(goals))
	for _, goal := range goals {
		verdicts = append(verdicts, scoreGoal(goal, byName, threshold))
	}
	return verdicts
}

func scoreGoal(goal domain.StylingGoal, byName map[string]domain.PrincipleResult, threshold float64) domain.GoalVerdict {
	m := goalPrinciples[goal]
	weight := func(name string) float64 {
		if w, ok := m.weights[name]; ok {
			return w
		}
		return 1.0
	}

	var sum, total float64
	supporting := []string{}
	for _, name := range m.positive {
		p, ok := byName[name]
		if !ok {
			continue
		}
		w := weight(name)
		sum += p.Score * w
		total += w
		if p.Score > 0.05 {
			supporting = append(supporting, fmt.Sprintf("+%s (%+.2f)", name, p.Score))
		}
	}
	for _, name := range m.negative {
		p, ok := byName[name]
		if !ok {
			continue
		}
		w := weight(name)
		sum -= p.Score * w
		total += w
		if p.Score < -0.05 {
			supporting = append(supporting, fmt.Sprintf("-%s avoided (%+.2f)", name, p.Score))
		}
	}

	if total == 0 {
		return domain.GoalVerdict{
			Goal:                 goal,
			Verdict:              domain.VerdictCaution,
			SupportingPrinciples: []string{},
			Reasoning:            "No applicable principles for this goal",
		}
	}

	score := sum / total
	verdict := domain.VerdictCaution
	switch {
	case score > threshold:
		verdict = domain.VerdictPass
	case score < -threshold:
		verdict = domain.VerdictFail
	}
	return domain.GoalVerdict{
		Goal:                 goal,
		Verdict:              verdict,
		Score:                domain.Round(score, 3),
		SupportingPrinciples: supporting,
		Reasoning:            fmt.Sprintf("Weighted score: %+.3f (%s)", score, verdict),
	}
}
