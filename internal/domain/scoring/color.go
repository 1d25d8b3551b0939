package scoring

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// ScoreDarkSlimming scores the irradiation illusion of dark colours, gated
// by skin undertone near the face and inverted by high sheen.
func ScoreDarkSlimming(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	l := g.ColorLightness

	if l > 0.65 {
		r.add("Light color (L=%.2f): slight expansion", l)
		return r.applicable(-0.05 * ((l - 0.65) / 0.35))
	}

	if l >= 0.25 {
		benefit := math.Max(0, 0.15*(1-(l-0.10)/0.55))
		r.add("Mid color (L=%.2f): proportional benefit %+.2f", l, benefit)
		return r.applicable(benefit)
	}

	base := 0.15
	r.add("Dark color (L=%.2f): base slimming +0.15", l)

	shapeMult := 1.0
	switch {
	case b.IsPetite() && g.Zone == "full_body":
		shapeMult = 0.6
		r.add("Petite all-dark: height collapse (x0.6)")
	case b.IsPetite():
		shapeMult = 0.9
		r.add("Petite zone-dark: mild reduction (x0.9)")
	case b.IsTall():
		shapeMult = 1.2
		r.add("Tall: amplified lean silhouette (x1.2)")
	case in.Shape == domain.ShapeInvertedTriangle && g.Zone == "torso":
		shapeMult = 1.4
		r.add("INVT upper body: maximum shoulder reduction (x1.4)")
	case in.Shape == domain.ShapeHourglass:
		shapeMult = 0.7
		r.add("Hourglass: dark flattens curves (x0.7)")
	}

	skinMult := 1.0
	if g.Zone == "torso" || g.Zone == "full_body" {
		if b.SkinUndertone == domain.UndertoneWarm {
			sallow := math.Max(0, 1.0-l/0.22)
			skinMult = 1.0 - sallow
			r.add("Warm undertone near face: sallow x%.2f", sallow)
			if skinMult < 0.3 {
				r.add("RECOMMEND: dark chocolate brown or burgundy")
			}
		} else if b.SkinDarkness > 0.7 {
			skinMult = 0.5
			r.add("Dark skin + dark: low contrast (x0.5)")
		}
	}

	sheenPenalty := 0.0
	if si := g.SheenIndex(); si > 0.5 {
		sheenPenalty = -0.15 * ((si - 0.5) / 0.5)
		if in.Shape == domain.ShapeApple || b.IsPlusSize() {
			sheenPenalty *= 1.5
			r.add("Apple/Plus + high sheen: amplified specular penalty")
		}
		r.add("High sheen (SI=%.2f): specular invert", si)
	}

	return r.applicable(base*shapeMult*math.Max(skinMult, 0) + sheenPenalty)
}

// ScoreColorBreak scores belts and colour breaks at the waist. A
// contrasting belt normally shortens the figure but highlights a defined
// waist on an hourglass.
func ScoreColorBreak(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if !g.HasContrastingBelt && !g.HasTonalBelt {
		return domain.NotApplicable("No belt/break (N/A)")
	}
	if g.HasTonalBelt && !g.HasContrastingBelt {
		return domain.Applicable(-0.03, "Tonal belt: mild break (-0.03)")
	}

	base := -0.10
	r.add("Contrasting belt: base leg shortening -0.10")

	if in.Shape == domain.ShapeHourglass {
		score := 0.20
		if g.BeltWidthCM >= 5 {
			score = 0.25
		}
		r.add("HOURGLASS REVERSAL: belt highlights waist (%+.2f)", score)
		return r.applicable(score)
	}

	switch {
	case b.IsPetite():
		base *= 1.5
		r.add("Petite: can't afford shortening (x1.5)")
	case in.Shape == domain.ShapeApple:
		base = -0.25
		r.add("Apple: belt spotlights widest zone (-0.25)")
	case b.IsTall():
		base *= 0.3
		r.add("Tall: can afford shortening (x0.3)")
	case in.Shape == domain.ShapeInvertedTriangle:
		base = 0.08
		r.add("INVT: draws eye to waist (+0.08)")
	case in.Shape == domain.ShapeRectangle:
		base = 0.05
		r.add("Rectangle: creates waist definition (+0.05)")
	case in.Shape == domain.ShapePear:
		if whr := b.WHR(); whr < 0.75 {
			base = 0.05
			r.add("Pear + narrow waist (WHR=%.2f): +0.05", whr)
		} else {
			base = -0.10
			r.add("Pear + moderate waist: -0.10")
		}
	}

	if b.IsPlusSize() {
		if b.BellyZone > 0.5 {
			base = math.Min(base, -0.20)
			r.add("Plus + belly: belt at widest (-0.20)")
		} else if b.BellyZone < 0.2 {
			base = math.Max(base, 0.05)
			r.add("Plus + no belly: belt creates waist (+0.05)")
		}
	}

	return r.applicable(base)
}

// ScoreMonochromeColumn scores an unbroken single-colour outfit.
func ScoreMonochromeColumn(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if !g.IsMonochromeOutfit {
		return domain.NotApplicable("Not monochrome (N/A)")
	}

	base := 0.08
	darkBonus := 0.0
	if g.IsDark() {
		darkBonus = 0.07
	}

	switch {
	case b.IsPetite():
		base = 0.15
		r.add("Petite: AMPLIFIED monochrome (+0.15)")
	case b.IsTall():
		base = 0.03
		r.add("Tall: doesn't need height (+0.03)")
	case in.Shape == domain.ShapeHourglass:
		base = 0.03
		if g.HasContrastingBelt || g.HasTonalBelt {
			base = 0.12
			r.add("Hourglass + mono + belt: best of both (+0.12)")
		}
	case in.Shape == domain.ShapeInvertedTriangle:
		base = 0.05
	case in.Shape == domain.ShapeApple:
		base = 0.08
	case in.Shape == domain.ShapePear:
		base = 0.05
		if g.ColorLightness < 0.30 {
			base = 0.12
		}
	case b.IsPlusSize():
		base = 0.10
	}

	if b.IsPlusSize() && g.IsDark() {
		darkBonus = math.Max(darkBonus, 0.08)
		r.add("Plus + dark mono: most reliable combo")
	}

	return r.applicable(base + darkBonus)
}

// ScoreColorValue scores lightness-driven slimming on a 0-100 L scale, with
// a shape-loss penalty when dark colour flattens an hourglass.
func ScoreColorValue(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	l := g.ColorLightness * 100

	var slimPct float64
	switch {
	case l <= 10:
		slimPct = 0.04
	case l <= 25:
		slimPct = 0.03
	case l <= 40:
		slimPct = 0.02
	case l <= 60:
		slimPct = 0.005
	case l <= 80:
		slimPct = -0.005
	default:
		slimPct = -0.01
	}
	slim := slimPct * 6.25
	r.add("Color L=%.0f: slim_pct=%+.3f, score=%+.3f", l, slimPct, slim)

	shapeLoss := 0.0
	if l <= 25 && in.Shape == domain.ShapeHourglass {
		depth := 1.0 - l/25
		switch diff := b.Bust - b.Waist; {
		case diff >= 8:
			shapeLoss = -0.30 * depth
		case diff >= 6:
			shapeLoss = -0.20 * depth
		default:
			shapeLoss = -0.10 * depth
		}
		r.add("Hourglass dark shape loss: %+.2f", shapeLoss)
	} else if l <= 25 && in.Shape == domain.ShapeRectangle {
		shapeLoss = 0.05
		r.add("Rectangle dark: clean column bonus (+0.05)")
	}

	contrastMod := 0.0
	if l <= 15 && (g.Zone == "torso" || g.Zone == "full_body") {
		contrast := math.Abs(b.SkinToneL/100 - l/100)
		if contrast > 0.70 {
			contrastMod = -0.05
		} else if contrast < 0.30 {
			contrastMod = 0.05
		}
	}

	return r.applicable(slim + shapeLoss + contrastMod)
}
