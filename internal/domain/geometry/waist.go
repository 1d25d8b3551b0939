package geometry

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Fraction of the torso, measured from the shoulder, at which each waist
// position sits. Positions not listed use the natural waist.
var waistPositionMultiplier = map[string]float64{
	"empire":  0.35,
	"high":    0.65,
	"natural": 1.0,
	"drop":    1.15,
}

// WaistlineResult is where the garment puts the visual waist.
type WaistlineResult struct {
	VisualWaistHeight     float64
	VisualLegRatio        float64
	ProportionImprovement float64
	ProportionScore       float64
	Position              string
}

// TranslateWaistline computes the visual waist and how much closer it moves
// the leg ratio to the golden ratio.
func TranslateWaistline(g *domain.GarmentProfile, b *domain.BodyProfile) WaistlineResult {
	fromShoulder := b.TorsoLength
	if m, ok := waistPositionMultiplier[g.WaistPosition]; ok {
		fromShoulder = b.TorsoLength * m
	}

	// Only a quarter of the physical shift registers visually.
	perceptual := (b.TorsoLength - fromShoulder) * 0.25
	visualLeg := b.LegLengthVisual + perceptual
	visualWaist := b.Height - b.TorsoLength + perceptual

	ratio := domain.GoldenRatio
	if b.Height > 0 {
		ratio = visualLeg / b.Height
	}

	improvement := math.Abs(b.LegRatio()-domain.GoldenRatio) - math.Abs(ratio-domain.GoldenRatio)

	return WaistlineResult{
		VisualWaistHeight:     visualWaist,
		VisualLegRatio:        ratio,
		ProportionImprovement: improvement,
		ProportionScore:       domain.ClampRange(improvement*8.0, -0.80, 0.80),
		Position:              g.WaistPosition,
	}
}
