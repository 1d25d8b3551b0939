package scoring

import (
	"fmt"
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// ScoreALineBalance scores A-line flare. Stiff fabric turns the flare into
// a shelf and inverts the benefit.
func ScoreALineBalance(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	er := g.ExpansionRate
	if er < 0.03 {
		return domain.NotApplicable("ER < 0.03: not A-line (N/A)")
	}

	var base float64
	switch {
	case er <= 0.06:
		base = 0.10 + (er-0.03)*(0.15/0.03)
	case er <= 0.12:
		base = 0.25
	case er <= 0.18:
		base = 0.25 - (er-0.12)*(0.15/0.06)
	default:
		base = math.Max(-0.10, 0.10-(er-0.18)*(0.10/0.12))
	}
	r.add("ER=%.2f: base A-line = %+.2f", er, base)

	dc := g.DrapeCoefficient()
	drapeMult := 1.0
	switch {
	case dc < 40:
		r.add("DC=%.0f%% (drapey): full benefit", dc)
	case dc < 65:
		drapeMult = 0.7
		r.add("DC=%.0f%% (medium): x0.7", dc)
	default:
		drapeMult = -0.5
		r.add("DC=%.0f%% (stiff): shelf effect INVERSION", dc)
	}

	shapeMod := 0.0
	switch {
	case in.Shape == domain.ShapeInvertedTriangle:
		shapeMod = 0.15
		r.add("INVT: max A-line benefit (+0.15)")
	case b.IsTall():
		shapeMod = 0.10
		r.add("Tall: carries volume (+0.10)")
	case b.IsPetite():
		if er > 0.12 {
			shapeMod = -0.15
			r.add("Petite: overwhelms frame")
		} else {
			shapeMod = 0.05
			r.add("Petite: scale-appropriate")
		}
	case in.Shape == domain.ShapeHourglass, in.Shape == domain.ShapePear:
		shapeMod = 0.05
	case in.Shape == domain.ShapeApple:
		shapeMod = 0.03
	}

	if b.IsPlusSize() && drapeMult < 0 {
		drapeMult *= 1.5
		r.add("Plus + stiff A-line: shelf amplified")
	}

	hemMod := 0.0
	if in.Shape == domain.ShapePear {
		switch g.HemPosition {
		case "mid_thigh":
			hemMod = -0.10
		case "knee":
			hemMod = 0.05
		}
	}

	return r.applicable(base*math.Max(drapeMult, -1.0) + shapeMod + hemMod)
}

// ScoreTentConcealment scores oversized and tent silhouettes. Concealment
// and slimming goals pull in opposite directions: a tent hides contours
// but reads as a bigger body.
func ScoreTentConcealment(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	er := g.ExpansionRate

	if er >= 0.03 && er <= 0.08 {
		score := 0.15
		r.add("ER=%.2f: semi-fitted optimal", er)
		if in.Shape == domain.ShapeHourglass {
			score = 0.05
			r.add("Hourglass: semi-fitted slightly masks curves")
		}
		if b.IsPlusSize() && g.IsStructured {
			score = 0.20
			r.add("Plus + structured semi-fitted: smooth containment")
		}
		return r.applicable(score)
	}

	if er < 0.12 {
		return domain.NotApplicable(fmt.Sprintf("ER=%.2f: not tent (N/A)", er))
	}

	concealment := b.HasGoal(domain.GoalConcealment, domain.GoalHideMidsection)
	slimming := b.HasGoal(domain.GoalSlimming, domain.GoalSlimHips)

	hide, shrink := 0.25, -0.20
	if er > 0.20 {
		hide, shrink = 0.35, -0.40
	}

	var base float64
	switch {
	case concealment && !slimming:
		base = hide
		r.add("Goal=concealment: excellent hiding (%+.2f)", base)
	case slimming && !concealment:
		base = shrink
		r.add("Goal=slimming: perceived bigger (%+.2f)", base)
		r.add("CONCEALMENT PARADOX: hides contours but amplifies size")
	default:
		base = hide*0.3 + shrink*0.7
		r.add("Goal=balance: weighted toward slimming (%+.2f)", base)
	}

	shapeMod := 0.0
	switch {
	case in.Shape == domain.ShapeHourglass:
		shapeMod = -0.20
		r.add("HOURGLASS REVERSAL: tent destroys WHR (-0.20)")
	case b.IsPetite():
		shapeMod = -0.15
		r.add("PETITE REVERSAL: fabric overwhelms frame (-0.15)")
	case b.IsPlusSize():
		shapeMod = -0.10
		r.add("PLUS REVERSAL: max size overestimate (-0.10)")
	case in.Shape == domain.ShapeInvertedTriangle:
		shapeMod = -0.10
		r.add("INVT: lampshade from shoulders (-0.10)")
	case b.IsTall():
		shapeMod = 0.10
		r.add("Tall: carries volume (+0.10)")
	case in.Shape == domain.ShapeRectangle:
		shapeMod = 0.05
		r.add("Rectangle: less curve to hide (+0.05)")
	}

	return r.applicable(base + shapeMod)
}

// ScoreBodyconMapping scores skin-tight fits, which map the body's
// contours. Thin fabric maps everything; structured fabric sculpts.
func ScoreBodyconMapping(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if g.ExpansionRate > 0.03 {
		return domain.NotApplicable(fmt.Sprintf("ER=%.2f: not bodycon (N/A)", g.ExpansionRate))
	}

	thin := g.GSMEstimated < 200 && !g.IsStructured
	structured := g.GSMEstimated >= 250 || g.IsStructured
	kind := "structured"
	if thin {
		kind = "thin"
	}

	switch {
	case in.Shape == domain.ShapeHourglass:
		score := 0.30
		if structured {
			score = 0.35
		}
		r.add("HOURGLASS REVERSAL: bodycon maps best feature (%+.2f)", score)
		if b.BellyZone > 0.5 {
			score -= 0.15
			r.add("Belly concern offset (-0.15)")
		}
		return r.applicable(score)

	case in.Shape == domain.ShapeApple:
		if b.IsAthletic {
			return domain.Applicable(0.20, "Athletic apple: showcases tone (+0.20)")
		}
		score := -0.12
		if thin {
			score = -0.40
		}
		r.add("Apple + %s bodycon: %+.2f", kind, score)
		return r.applicable(score)

	case in.Shape == domain.ShapePear:
		score := -0.09
		if thin {
			score = -0.30
		}
		r.add("Pear + %s: %+.2f", kind, score)
		return r.applicable(score)

	case b.IsPlusSize():
		score := -0.05
		label := "structured (sculpts)"
		if thin {
			score, label = -0.40, "thin"
		}
		r.add("Plus + %s: %+.2f", label, score)
		return r.applicable(score)

	case in.Shape == domain.ShapeInvertedTriangle:
		score := -0.10
		switch g.Zone {
		case "full_body":
			score = -0.15
		case "lower_body":
			score = -0.05
		}
		r.add("INVT bodycon %s: %+.2f", g.Zone, score)
		return r.applicable(score)

	case in.Shape == domain.ShapeRectangle:
		return domain.Applicable(0, "Rectangle + bodycon: neutral")
	}

	return domain.Applicable(-0.10, "Default bodycon: mild penalty")
}
