package scoring

import "github.com/kridha-admin/stydev/internal/domain"

// ScoreHorizontalStripes scores stripe illusions: horizontal stripes read
// slightly slimmer than solids on most frames but the effect reverses on
// plus sizes and splits by zone and body shape.
func ScoreHorizontalStripes(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if !g.HasHorizontalStripes && !g.HasVerticalStripes {
		return domain.NotApplicable("No stripes (N/A)")
	}

	if g.HasVerticalStripes && !g.HasHorizontalStripes {
		base := -0.05
		r.add("V stripes vs solid: ~5%% wider (Thompson 2011)")
		switch {
		case in.Shape == domain.ShapeRectangle && g.Zone == "torso":
			base = 0.03
			r.add("Rectangle torso: V adds desired shoulder width")
		case in.Shape == domain.ShapeInvertedTriangle && g.Zone == "lower_body":
			base = -0.08
			r.add("INVT lower: V thins already-narrow hips")
		}
		return r.applicable(base)
	}

	base := 0.03
	r.add("H stripe base vs solid: +0.03 (Koutsoumpis 2021)")

	sizeMod := 0.0
	switch {
	case b.IsPlusSize():
		sizeMod = -0.10
		r.add("Plus-size: Helmholtz nullifies/reverses (Ashida)")
	case b.IsPetite():
		sizeMod = 0.05
		r.add("Petite: Helmholtz amplified on small frames")
	}

	zoneMod := 0.0
	switch in.Shape {
	case domain.ShapePear:
		if g.Zone == "torso" {
			zoneMod = 0.08
			r.add("Pear top: H adds shoulder width (+)")
		} else if g.Zone == "lower_body" {
			zoneMod = -0.05
			r.add("Pear bottom: attention to hip zone (-)")
		}
	case domain.ShapeInvertedTriangle:
		if g.Zone == "torso" {
			zoneMod = -0.12
			r.add("INVT top: attention to broad shoulders (-)")
		} else if g.Zone == "lower_body" {
			zoneMod = 0.10
			r.add("INVT bottom: adds hip volume (+)")
		}
	case domain.ShapeApple:
		if g.CoversWaist {
			zoneMod = -0.05
			r.add("Apple midsection: H width emphasis (-)")
		}
	case domain.ShapeRectangle:
		zoneMod = 0.05
		r.add("Rectangle: H adds visual interest (+)")
	case domain.ShapeHourglass:
		zoneMod = 0.03
		r.add("Hourglass: standard effect")
	}

	widthMod := 0.0
	if g.StripeWidthCM > 0 {
		if g.StripeWidthCM < 1.0 {
			widthMod = 0.03
			r.add("Fine stripes: stronger illusion")
		} else if g.StripeWidthCM > 2.0 && b.IsPlusSize() {
			widthMod = -0.05
			r.add("Wide stripes + plus: measurement markers")
		}
	}

	lumMod := 0.0
	if g.IsDark() {
		lumMod = 0.04
		r.add("Dark H stripes: luminance bonus (Koutsoumpis)")
	}

	return r.applicable(base + sizeMod + zoneMod + widthMod + lumMod)
}
