package scoring

import "github.com/kridha-admin/stydev/internal/domain"

// ScoreMatteZone scores surface sheen. Matte finishes recede, but matte
// combined with high cling maps every contour on curve-concern bodies.
func ScoreMatteZone(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	si := g.SheenIndex()

	var base float64
	switch {
	case si < 0.15:
		base = 0.08
		r.add("Deeply matte (SI=%.2f): +0.08", si)
	case si < 0.35:
		base = 0.08 * (1 - (si-0.15)/0.20)
		r.add("Low sheen (SI=%.2f): %+.3f", si, base)
	case si <= 0.50:
		r.add("Neutral sheen (SI=%.2f)", si)
	default:
		base = -0.10 * ((si - 0.50) / 0.50)
		r.add("High sheen (SI=%.2f): %+.3f", si, base)
	}

	mult := 1.0
	switch {
	case in.Shape == domain.ShapeApple, b.IsPlusSize():
		mult = 1.5
	case in.Shape == domain.ShapePear && (g.Zone == "lower_body" || g.Zone == "full_body"):
		mult = 1.3
	case in.Shape == domain.ShapeHourglass:
		mult = 0.5
		if si > 0.35 && si < 0.55 {
			base = 0.05
			r.add("Hourglass + moderate sheen: curves enhanced")
		}
	case in.Shape == domain.ShapeInvertedTriangle && g.Zone == "torso":
		mult = 1.2
	}

	if g.ClingRisk() > 0.6 && si < 0.30 {
		switch {
		case b.IsPlusSize():
			return domain.Applicable(-0.15, "CLING TRAP: matte+clingy on plus (-0.15)")
		case in.Shape == domain.ShapePear:
			return domain.Applicable(-0.10, "CLING TRAP: matte+clingy on pear (-0.10)")
		case in.Shape == domain.ShapeApple:
			return domain.Applicable(-0.12, "CLING TRAP: matte+clingy on apple (-0.12)")
		}
	}

	return r.applicable(base * mult)
}

type weighted struct {
	score, weight float64
}

// ScoreFabricZone blends fabric sub-scores: cling 30%, structure 20%,
// sheen 15%, drape 10%, and 25% of factors held neutral.
func ScoreFabricZone(in Input) domain.Outcome {
	b := in.Body
	f := in.Fabric

	cling := 0.10
	switch {
	case f.ClingRiskBase > 0.6:
		cling = -0.20
		if b.IsPlusSize() || b.BellyZone > 0.5 {
			cling = -0.40
		}
	case f.ClingRiskBase > 0.3:
		cling = -0.05
	}

	structure := 0.0
	switch {
	case f.IsStructured:
		structure = 0.15
	case f.EffectiveGSM > 250:
		structure = 0.08
	case f.EffectiveGSM < 100:
		structure = -0.10
	}

	drape := 0.0
	switch dc := f.DrapeCoefficient; {
	case dc < 30:
		drape = 0.10
	case dc < 50:
		drape = 0.05
	case dc >= 70:
		drape = -0.10
	}

	parts := []weighted{
		{cling, 0.30},
		{structure, 0.20},
		{ScoreMatteZone(in).Score, 0.15},
		{drape, 0.10},
		{0, 0.08}, // color
		{0, 0.05}, // texture
		{0, 0.05}, // pattern
		{0, 0.04}, // silhouette
		{0, 0.03}, // construction
	}
	var total, totalW float64
	for _, p := range parts {
		total += p.score * p.weight
		totalW += p.weight
	}

	var r reasons
	r.add("Fabric zone: stretch=%.1f%%, GSM=%.0f, sheen=%.2f", f.TotalStretchPct, f.EffectiveGSM, f.SheenScore)
	return r.applicable(total / totalW)
}
