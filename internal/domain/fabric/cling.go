package fabric

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// ClingResult is the per-zone cling assessment.
type ClingResult struct {
	StretchDemandPct float64 `json:"stretch_demand_pct"`
	BaseThreshold    float64 `json:"base_threshold"`
	ExceedsThreshold bool    `json:"exceeds_threshold"`
	Severity         float64 `json:"severity"`
}

// ComputeClingRisk compares how much of the fabric's stretch range a body
// zone consumes against a curvature-dependent threshold.
func ComputeClingRisk(r Resolved, zoneCirc, garmentRestCirc, curvatureRate float64) ClingResult {
	stretchRange := garmentRestCirc * (r.TotalStretchPct / 100.0)
	if stretchRange <= 0 {
		stretchRange = 0.01
	}
	demand := math.Max(0, (zoneCirc-garmentRestCirc)/stretchRange*100.0)
	threshold := math.Max(10, 62-26*curvatureRate)
	exceeds := demand > threshold

	severity := 0.0
	if exceeds && threshold > 0 {
		severity = math.Min(1.0, (demand-threshold)/threshold)
	}
	return ClingResult{
		StretchDemandPct: demand,
		BaseThreshold:    threshold,
		ExceedsThreshold: exceeds,
		Severity:         severity,
	}
}

// Reference photo-model circumferences and how strongly each zone's gap
// from the user changes the garment's look.
var photoZones = []struct {
	model, coeff float64
	user         func(b *domain.BodyProfile) float64
}{
	{34.0, 0.08, func(b *domain.BodyProfile) float64 { return b.Bust }},
	{25.0, 0.06, func(b *domain.BodyProfile) float64 { return b.Waist }},
	{35.0, 0.10, func(b *domain.BodyProfile) float64 { return b.Hip }},
	{10.0, 0.04, func(b *domain.BodyProfile) float64 { return b.CUpperArmMax }},
	{20.0, 0.07, func(b *domain.BodyProfile) float64 { return b.CThighMax }},
}

var brandPhotoMultiplier = map[domain.BrandTier]float64{
	domain.TierLuxury:      0.85,
	domain.TierPremium:     0.90,
	domain.TierMidMarket:   1.00,
	domain.TierMassMarket:  1.10,
	domain.TierFastFashion: 1.20,
}

// PhotoRealityDiscount estimates how differently the garment will look on
// the user than on the product photo model, from 0 (identical) to 0.55.
func PhotoRealityDiscount(g *domain.GarmentProfile, b *domain.BodyProfile) float64 {
	gap := 0.0
	for _, z := range photoZones {
		gap += math.Abs(z.user(b)-z.model) * z.coeff
	}
	mult, ok := brandPhotoMultiplier[g.BrandTier]
	if !ok {
		mult = 1.0
	}
	return math.Min(0.55, gap*mult)
}

// clingZones maps each body zone to its circumference and a 0..1 curvature
// rate; sharper curves cling at lower stretch demand.
var clingZones = map[string]struct {
	circ      func(b *domain.BodyProfile) float64
	curvature func(b *domain.BodyProfile) float64
}{
	"bust": {
		func(b *domain.BodyProfile) float64 { return b.Bust },
		func(b *domain.BodyProfile) float64 { return b.BustDifferential() / 10 },
	},
	"waist": {
		func(b *domain.BodyProfile) float64 { return b.Waist },
		func(b *domain.BodyProfile) float64 { return b.BellyProjection / 3 },
	},
	"hip": {
		func(b *domain.BodyProfile) float64 { return b.Hip },
		func(b *domain.BodyProfile) float64 { return (b.Hip - b.Waist) / 12 },
	},
	"thigh": {
		func(b *domain.BodyProfile) float64 { return b.CThighMax },
		func(b *domain.BodyProfile) float64 { return b.HipProjection / 3 },
	},
	"upper_arm": {
		func(b *domain.BodyProfile) float64 { return b.CUpperArmMax },
		func(b *domain.BodyProfile) float64 { return (b.CUpperArmMax - b.CElbow) / 4 },
	},
}

// ZoneCling assesses cling at every body zone for a garment cut with the
// given ease in inches. Negative ease means the garment is smaller than the
// body at rest and must stretch to fit.
func ZoneCling(r Resolved, b *domain.BodyProfile, ease float64) map[string]ClingResult {
	out := make(map[string]ClingResult, len(clingZones))
	for zone, z := range clingZones {
		circ := z.circ(b)
		if circ <= 0 {
			continue
		}
		rest := math.Max(0.01, circ+ease)
		out[zone] = ComputeClingRisk(r, circ, rest, domain.ClampRange(z.curvature(b), 0, 1))
	}
	return out
}
