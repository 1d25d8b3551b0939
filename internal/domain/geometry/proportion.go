package geometry

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Shoes describes footwear for a proportion calculation.
type Shoes struct {
	HeelInches float64
	Nude       bool
	Contrast   bool
}

// ProportionResult is the visual leg after footwear.
type ProportionResult struct {
	VisualLegLength   float64
	HeelExtension     float64
	ShoeModifier      float64
	TotalVisualHeight float64
}

// ProportionShift computes how shoes extend or cut the visual leg line.
func ProportionShift(b *domain.BodyProfile, s Shoes) ProportionResult {
	ext := s.HeelInches * domain.HeelEfficiency(s.HeelInches)

	mod := 0.0
	if s.Nude {
		mod = math.Min(2.0, s.HeelInches*0.3)
	}
	if s.Contrast {
		mod -= 1.0
	}

	return ProportionResult{
		VisualLegLength:   b.LegLengthVisual + ext + mod,
		HeelExtension:     ext,
		ShoeModifier:      mod,
		TotalVisualHeight: b.Height + ext,
	}
}
