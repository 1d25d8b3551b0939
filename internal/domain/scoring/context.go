package scoring

import (
	"slices"
	"strings"

	"github.com/kridha-admin/stydev/internal/domain"
)

// colorSymbolism gives culture → color → event → delta. "general" is the
// fallback event.
var colorSymbolism = map[string]map[string]map[string]float64{
	"india": {
		"red":   {"wedding_bride": 0.95, "wedding_guest": -0.30, "general": 0.0},
		"white": {"celebration": -0.90, "funeral": 0.50, "general": 0.0},
		"black": {"wedding_ceremony": -0.70, "sangeet": -0.20, "general": 0.0},
		"gold":  {"wedding": 0.80, "general": 0.20},
	},
	"us": {
		"red":   {"general": 0.0},
		"white": {"wedding_bride": 0.90, "wedding_guest": -0.50, "general": 0.0},
		"black": {"evening": 0.90, "funeral": 0.50, "general": 0.0},
	},
}

type coverage struct {
	minHem           string
	maxNecklineDepth float64
}

var occasionCoverage = map[string]coverage{
	"formal":          {"knee", 4.0},
	"business":        {"above_knee", 5.0},
	"business_casual": {"above_knee", 6.0},
	"casual":          {"mini", 8.0},
	"date_night":      {"above_knee", 7.0},
	"wedding_guest":   {"knee", 5.0},
	"interview":       {"knee", 5.0},
	"athletic":        {"mini", 6.0},
	"brunch":          {"above_knee", 7.0},
	"evening":         {"above_knee", 8.0},
}

// hemOrder runs from longest to shortest.
var hemOrder = []string{"floor", "ankle", "below_calf", "midi", "below_knee", "knee", "above_knee", "mini"}

// hemIsAbove reports whether actual is shorter than minimum. Unknown
// positions never count as a violation.
func hemIsAbove(actual, minimum string) bool {
	a, m := slices.Index(hemOrder, actual), slices.Index(hemOrder, minimum)
	if a < 0 || m < 0 {
		return false
	}
	return a > m
}

// Context adjustment keys.
const (
	AdjCulturalColor        = "cultural_color"
	AdjOccasionHem          = "occasion_hem_violation"
	AdjOccasionNeckline     = "occasion_neckline_violation"
	AdjClimateHeavyFabric   = "climate_heavy_fabric"
	AdjClimateNonBreathable = "climate_non_breathable"
	AdjClimateLightFabric   = "climate_light_fabric"
	AdjAgeBodyconComfort    = "age_bodycon_comfort"
	AdjAgeOversizedTrend    = "age_oversized_trend"
)

// ContextAdjustments returns the cultural, occasion, climate and age deltas
// for a wearing context, in a fixed key order.
func ContextAdjustments(ctx domain.ScoringContext, results []domain.PrincipleResult, g *domain.GarmentProfile) []domain.ContextAdjustment {
	adj := []domain.ContextAdjustment{}
	add := func(key string, delta float64) {
		adj = append(adj, domain.ContextAdjustment{Key: key, Delta: delta})
	}

	culture := strings.ToLower(ctx.Culture)
	color := strings.ToLower(ctx.GarmentColor)
	event := ctx.EventType
	if event == "" {
		event = "general"
	}
	if rules, ok := colorSymbolism[culture][color]; ok && color != "" {
		v, ok := rules[event]
		if !ok {
			v = rules["general"]
		}
		if v != 0 {
			add(AdjCulturalColor, v)
		}
	}

	if req, ok := occasionCoverage[strings.ToLower(ctx.Occasion)]; ok {
		if hemIsAbove(g.HemPosition, req.minHem) {
			add(AdjOccasionHem, -0.20)
		}
		if statedNecklineDepth(g, 0) > req.maxNecklineDepth {
			add(AdjOccasionNeckline, -0.15)
		}
	}

	switch strings.ToLower(ctx.Climate) {
	case "hot_humid":
		if g.GSMEstimated > 250 {
			add(AdjClimateHeavyFabric, -0.10)
		}
		if (g.PrimaryFiber == "polyester" || g.PrimaryFiber == "nylon") && g.FabricName == "" {
			add(AdjClimateNonBreathable, -0.05)
		}
	case "cold":
		if g.GSMEstimated < 120 {
			add(AdjClimateLightFabric, -0.10)
		}
	}

	switch ctx.AgeRange {
	case "50+":
		if p, ok := findResult(results, BodyconMapping); ok && p.Score > 0.20 {
			add(AdjAgeBodyconComfort, -0.05)
		}
	case "18-25":
		if p, ok := findResult(results, TentConcealment); ok && p.Score < -0.20 {
			add(AdjAgeOversizedTrend, 0.05)
		}
	}
	return adj
}

// SumAdjustments totals the deltas.
func SumAdjustments(adj []domain.ContextAdjustment) float64 {
	var total float64
	for _, a := range adj {
		total += a.Delta
	}
	return total
}

func findResult(results []domain.PrincipleResult, name string) (domain.PrincipleResult, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return domain.PrincipleResult{}, false
}
