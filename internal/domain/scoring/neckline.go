package scoring

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

func isVNeck(n domain.NecklineType) bool {
	return n == domain.NecklineVNeck || n == domain.NecklineDeepV
}

// ScoreVNeckElongation scores the vertical channel a neckline opens. On a
// petite short-torso body a V plus a high rise fight each other.
func ScoreVNeckElongation(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	neck := g.Neckline

	if !isVNeck(neck) {
		switch neck {
		case domain.NecklineCrew:
			return domain.Applicable(0, "Crew neck: neutral")
		case domain.NecklineBoat, domain.NecklineOffShoulder:
			switch in.Shape {
			case domain.ShapeInvertedTriangle:
				return domain.Applicable(-0.15, "Boat/off-shoulder on INVT: widens shoulders (-0.15)")
			case domain.ShapeRectangle:
				return domain.Applicable(0.08, "Boat on rectangle: adds width (+0.08)")
			case domain.ShapePear:
				return domain.Applicable(0.05, "Boat on pear: shoulder balance (+0.05)")
			}
			return domain.Applicable(0, fmt.Sprintf("Neckline '%s': neutral", neck))
		case domain.NecklineScoop:
			base := 0.05
			if in.Shape == domain.ShapeInvertedTriangle {
				base = 0.08
			}
			return domain.Applicable(base, fmt.Sprintf("Scoop: mild elongation (%+.2f)", base))
		case domain.NecklineTurtleneck:
			if in.Shape == domain.ShapeInvertedTriangle {
				return domain.Applicable(-0.05, "Turtleneck on INVT: upper mass (-0.05)")
			}
			if b.IsPetite() && b.TorsoScore() <= -1.0 {
				return domain.Applicable(0.10, "Turtleneck petite short-torso: keeps eye UP (+0.10)")
			}
			return domain.Applicable(0, "Turtleneck: neutral")
		case domain.NecklineWrap:
			r.add("Wrap neckline: mild V-effect (+0.08)")
			return r.applicable(0.08)
		}
		return domain.Applicable(0, fmt.Sprintf("Neckline '%s': not scored", neck))
	}

	base := 0.10
	r.add("V-neck: base elongation +0.10")

	switch {
	case in.Shape == domain.ShapeInvertedTriangle:
		base = 0.18
		r.add("INVT: narrows shoulder line (+0.18)")
	case in.Shape == domain.ShapeHourglass:
		base = 0.12
		r.add("Hourglass: frames bust to waist (+0.12)")
	case b.IsPetite():
		if b.TorsoScore() <= -1.0 {
			if g.RiseCM != nil && *g.RiseCM > 26 {
				base = -0.05
				r.add("Petite short-torso + V + high rise: CONFLICT (-0.05)")
			} else {
				base = 0.15
				r.add("Petite short-torso + V + mid rise: harmonious (+0.15)")
			}
		} else {
			base = 0.12
			r.add("Petite: vertical channel (+0.12)")
		}
	case in.Shape == domain.ShapeApple:
		base = 0.10
		r.add("Apple: eye to face, away from belly (+0.10)")
	case b.IsTall():
		base = 0.05
		r.add("Tall: diminishing returns (+0.05)")
	case in.Shape == domain.ShapePear:
		base = 0.10
		r.add("Pear: attention upward (+0.10)")
	}

	return r.applicable(base)
}

// statedNecklineDepth returns the neckline depth in inches, falling back to
// the V depth and then to fallback. A zero depth counts as unset.
func statedNecklineDepth(g *domain.GarmentProfile, fallback float64) float64 {
	if g.NecklineDepth != nil && *g.NecklineDepth != 0 {
		return *g.NecklineDepth
	}
	if g.VDepthCM > 0 {
		return g.VDepthCM / 2.54
	}
	return fallback
}

// ScoreNecklineCompound blends bust dividing (40%), torso slimming by V
// angle (30%) and upper-body balance (30%).
func ScoreNecklineCompound(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	switch g.Neckline {
	case domain.NecklineVNeck, domain.NecklineDeepV, domain.NecklineWrap, domain.NecklineScoop:
	default:
		return domain.NotApplicable(fmt.Sprintf("Neckline '%s': no compound scoring (N/A)", g.Neckline))
	}

	depth := statedNecklineDepth(g, 4.0)
	bd := b.BustDifferential()
	threshold := domain.BustDividingThreshold(bd)

	effective := depth + g.ElastanePct*0.01
	if in.Shape == domain.ShapeHourglass && bd >= 6 {
		effective += 0.75
	}
	if b.IsPlusSize() && bd >= 8 {
		effective += 1.0
	}

	ratio := 1.0
	if threshold > 0 {
		ratio = effective / threshold
	}

	goal := b.ZoneGoals.Bust
	pick := func(enhance, minimize, neutral float64) float64 {
		switch goal {
		case "enhance":
			return enhance
		case "minimize":
			return minimize
		default:
			return neutral
		}
	}

	var bust float64
	switch {
	case ratio < 0.60:
		bust = 0.30
	case ratio < 0.85:
		bust = 0.50
	case ratio < 1.0:
		bust = pick(0.70, -0.20, 0.30)
	case ratio < 1.15:
		bust = pick(0.30, -0.60, -0.15)
	default:
		bust = pick(0.10, -0.85, -0.35)
	}
	r.add("Bust: depth=%.1f\", threshold=%.1f\", ratio=%.2f, score=%+.2f", depth, threshold, ratio, bust)

	angle := 1.0
	if depth > 0 {
		angle = g.VDepthCM * 0.8 / depth
	}
	var torso float64
	switch {
	case angle < 0.5:
		torso = 0.25
	case angle < 1.0:
		torso = 0.18
	case angle < 1.5:
		torso = 0.10
	default:
		torso = 0.05
	}
	switch in.Shape {
	case domain.ShapeApple:
		torso *= 1.30
	case domain.ShapeRectangle:
		torso *= 1.15
	}

	balance := 0.15
	switch in.Shape {
	case domain.ShapeInvertedTriangle:
		balance = 0.45
	case domain.ShapePear:
		balance = 0.30
	case domain.ShapeRectangle:
		balance = 0.20
	case domain.ShapeHourglass:
		balance = 0.10
	}

	compound := bust*0.40 + torso*0.30 + balance*0.30
	r.add("Compound: bust=%+.2f*0.4 + torso=%+.2f*0.3 + balance=%+.2f*0.3 = %+.2f", bust, torso, balance, compound)
	return r.applicable(compound)
}
