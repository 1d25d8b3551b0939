package scoring

import (
	"sort"

	"github.com/kridha-admin/stydev/internal/domain"
)

type fixSuggestion struct {
	what        string
	improvement float64
}

var fixSuggestions = map[string]fixSuggestion{
	TentConcealment: {"Try semi-fitted silhouette (ER 0.03-0.08)", 0.20},
	BodyconMapping:  {"Add structured layer or choose heavier fabric (GSM 250+)", 0.25},
	ColorBreak:      {"Remove contrasting belt or switch to tonal belt", 0.10},
	ALineBalance:    {"Choose fabric with lower drape coefficient (<40%)", 0.15},
	RiseElongation:  {"Choose wider elastic waistband (5cm+, 8%+ stretch)", 0.15},
	VNeckElongation: {"Choose V-neck instead of boat/turtleneck", 0.12},
	Hemline:         {"Adjust hem to avoid knee/calf danger zones", 0.20},
	Sleeve:          {"Choose 3/4 sleeve for optimal arm slimming", 0.25},
	HStripeThinning: {"Replace horizontal stripes with solid or vertical lines", 0.10},
	DarkSlimming:    {"Choose dark chocolate/burgundy for warm skin tones", 0.08},
	TopHemline:      {"Try tucking in or choosing a cropped/waist-length top", 0.20},
	PantRise:        {"Choose high-rise pants to elongate your leg line", 0.25},
	LegShape:        {"Try wide-leg or straight-leg pants for your body type", 0.20},
	JacketScoring:   {"Try a cropped or waist-length jacket with natural shoulders", 0.15},
}

// SuggestFixes picks the worst applicable principles scoring below
// cfg.FixThreshold and maps each to a canned fix. Only the first
// cfg.MaxFixes of the worst are considered; principles without a canned
// fix use up a slot without producing one.
func SuggestFixes(results []domain.PrincipleResult, cfg domain.EngineConfig) []domain.Fix {
	var worst []domain.PrincipleResult
	for _, p := range results {
		if p.Applicable && p.Score < cfg.FixThreshold {
			worst = append(worst, p)
		}
	}
	sort.SliceStable(worst, func(i, j int) bool { return worst[i].Score < worst[j].Score })
	if len(worst) > cfg.MaxFixes {
		worst = worst[:cfg.MaxFixes]
	}

	fixes := []domain.Fix{}
	for _, p := range worst {
		s, ok := fixSuggestions[p.Name]
		if !ok {
			continue
		}
		priority := 2
		if p.Score < -0.30 {
			priority = 1
		}
		fixes = append(fixes, domain.Fix{WhatToChange: s.what, ExpectedImprovement: s.improvement, Priority: priority})
	}
	return fixes
}
