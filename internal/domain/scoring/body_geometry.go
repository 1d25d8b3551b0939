package scoring

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/geometry"
)

// ScoreRiseElongation scores trouser rise in centimetres against a 20cm
// mid rise. A high rise on a petite short torso inverts.
func ScoreRiseElongation(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if g.RiseCM == nil {
		return domain.NotApplicable("No rise data (N/A)")
	}
	rise := *g.RiseCM

	const midRise = 20.0
	base := domain.ClampRange((rise-midRise)*0.015, -0.20, 0.20)
	r.add("Rise %.0fcm: base %+.3f", rise, base)

	if b.IsPetite() {
		switch ts := b.TorsoScore(); {
		case ts <= -1.0 && rise > 26:
			r.add("Petite + short torso + high rise: INVERTED")
			return r.applicable(-0.30)
		case ts >= 1.0:
			base *= 1.5
			r.add("Petite + long torso: amplified (x1.5)")
		default:
			base *= 1.3
			r.add("Petite + proportional: amplified (x1.3)")
		}
	}

	if b.IsTall() {
		base *= 0.5
		r.add("Tall: diminishing returns (x0.5)")
	}

	if (in.Shape == domain.ShapeApple || b.IsPlusSize()) && b.BellyZone > 0.3 {
		if g.WaistbandWidthCM >= 5.0 && g.WaistbandStretchPct >= 8.0 {
			base += 0.10
			r.add("Wide elastic waistband: smooth containment (+0.10)")
		} else if g.WaistbandWidthCM < 3.0 && g.WaistbandStretchPct < 5.0 {
			r.add("Narrow rigid waistband: muffin top -> -0.25")
			return r.applicable(-0.25)
		}
	}

	if in.Shape == domain.ShapeHourglass && rise > 24 {
		base += 0.03
		r.add("Hourglass + high rise: smooth waist-to-hip (+0.03)")
	}

	if in.Shape == domain.ShapeInvertedTriangle && rise > 26 && g.ExpansionRate < 0.03 {
		base *= 0.6
		r.add("INVT + high rise + slim leg (x0.6)")
	}

	return r.applicable(base)
}

// ScoreHemline scores where the hem lands on the leg: above the knee
// elongates, the knee and widest calf are danger zones, and the band
// between them is safe.
func ScoreHemline(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	hem := geometry.TranslateHemline(g, b)
	r.add("Hem %.1f\" from floor -> %s", hem.HemFromFloor, hem.HemZone)

	switch hem.HemZone {
	case geometry.ZoneAboveKnee, geometry.ZoneAboveKneeNear:
		elongation := math.Min((hem.HemFromFloor-b.HKnee)*0.20, 0.60)
		if b.IsPetite() {
			elongation = math.Min(elongation+(63-b.Height)/50, 0.80)
			r.add("Petite above-knee: elongation %+.2f", elongation)
		}
		if b.IsTall() && b.LegRatio() > 0.62 {
			elongation *= 0.65
			r.add("Tall + long legs: diminished above-knee benefit")
		}

		thigh := 0.0
		switch {
		case b.CThighMax > 27:
			thigh = -0.35
		case b.CThighMax > 24:
			thigh = -0.20
		case b.CThighMax > 22:
			thigh = -0.10
		}
		if b.ZoneGoals.Legs == "showcase" {
			thigh *= 0.5
		} else if b.ZoneGoals.Hip == "narrower" {
			thigh *= 1.2
		}

		appleBonus := 0.0
		if in.Shape == domain.ShapeApple {
			if b.CThighMax < 22 {
				appleBonus = 0.15
			} else if b.CThighMax < 24 {
				appleBonus = 0.08
			}
		}
		return r.applicable(elongation + thigh + appleBonus)

	case geometry.ZoneKneeDanger:
		score := -0.30
		if b.IsPetite() {
			score = -0.40
		}
		r.add("Knee danger zone: %+.2f", score)
		return r.applicable(score)

	case geometry.ZoneSafe:
		score := 0.15
		if sz := hem.SafeZone; sz != nil {
			pos := (sz.High - hem.HemFromFloor) / hem.SafeZoneSize
			if pos >= 0.25 && pos <= 0.75 {
				score = 0.30
			}
		}
		if b.IsTall() {
			score += 0.10
		}
		r.add("Safe zone: %+.2f", score)
		return r.applicable(score)

	case geometry.ZoneCollapsed:
		r.add("Collapsed safe zone: -0.20")
		return r.applicable(-0.20)

	case geometry.ZoneCalfDanger:
		base := -0.35
		switch prom := b.CalfProminence(); {
		case prom > 1.3:
			base = -0.50
		case prom > 1.2:
			base = -0.42
		}
		if b.IsPetite() {
			base *= 1.15
		}
		r.add("Calf danger zone: %+.2f", base)
		return r.applicable(base)

	case geometry.ZoneBelowCalf:
		return domain.Applicable(0.15, "Below calf: safe (+0.15)")

	case geometry.ZoneAnkle:
		var score float64
		switch {
		case b.IsPetite():
			switch {
			case g.Silhouette == domain.SilhouetteOversized || g.Silhouette == domain.SilhouetteShift:
				score = -0.15
			case g.Silhouette == domain.SilhouetteFitted && g.HasWaistDefinition:
				score = 0.40
			case g.Silhouette == domain.SilhouetteFitted:
				score = 0.15
			default:
				score = 0.10
			}
		case b.IsTall():
			score = 0.45
		default:
			score = 0.25
		}
		if in.Shape == domain.ShapeHourglass && !g.HasWaistDefinition {
			score -= 0.15
		}
		r.add("Ankle: %+.2f", score)
		return r.applicable(score)

	case geometry.ZoneFloor:
		score := 0.05
		if b.IsTall() {
			score = 0.15
		} else if b.IsPetite() {
			score = -0.10
		}
		r.add("Floor: %+.2f", score)
		return r.applicable(score)
	}

	return domain.NotApplicable("Unknown zone: " + hem.HemZone + " (N/A)")
}

// ScoreSleeve normalizes the perceived-arm-width model onto -1..+1.
// Flutter sleeves earn a bonus for the visual ambiguity they create.
func ScoreSleeve(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if g.SleeveType == domain.SleeveSleeveless {
		return domain.NotApplicable("Sleeveless: baseline (N/A)")
	}

	s := geometry.TranslateSleeve(g, b)
	r.add("Sleeve endpoint %.1f\", delta=%+.2f\", severity=%.1f", s.EndpointPosition, s.DeltaVsActual, s.ArmProminenceSeverity)

	score := s.ScoreFromDelta
	if g.SleeveType == domain.SleeveFlutter {
		score += 2.0
		r.add("Flutter: +2 qualitative bonus (visual ambiguity)")
	}

	normalized := domain.Clamp(score / 5.0)
	r.add("Raw score %+.1f -> normalized %+.2f", score, normalized)
	return domain.Applicable(normalized, r.String())
}

// ScoreWaistPlacement scores how the waist position moves the leg ratio
// toward the golden ratio, with empire, large-bust and drop-waist
// penalties.
func ScoreWaistPlacement(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	if g.WaistPosition == "no_waist" {
		return domain.NotApplicable("No waist definition (N/A)")
	}

	w := geometry.TranslateWaistline(g, b)
	score := w.ProportionScore
	r.add("Waist=%s: visual leg ratio %.3f (golden=%v), improvement=%+.3f",
		g.WaistPosition, w.VisualLegRatio, domain.GoldenRatio, w.ProportionImprovement)

	if g.WaistPosition == "empire" && in.Shape == domain.ShapeHourglass {
		switch {
		case g.ElastanePct*1.6 > 10:
			score -= 0.10
			r.add("Empire + hourglass + stretch: mild shape loss (-0.10)")
		case g.Drape > 7:
			score -= 0.15
			r.add("Empire + hourglass + drapey: shape loss (-0.15)")
		default:
			score -= 0.30
			r.add("Empire + hourglass + stiff: significant shape loss (-0.30)")
		}
	}

	if g.WaistPosition == "empire" && b.BustDifferential() >= 6 && g.Drape < 4 {
		tent := b.BustDifferential() * 0.4 * (1.0 - g.Drape/10.0)
		switch {
		case tent > 2.0:
			score -= 0.45
			r.add("Empire + large bust + stiff: tent effect (-0.45)")
		case tent > 1.0:
			score -= 0.25
		default:
			score -= 0.10
		}
	}

	if g.WaistPosition == "drop" {
		if lr := b.LegRatio(); lr < 0.55 {
			score -= 0.30
			r.add("Drop waist + short legs: proportion penalty (-0.30)")
		} else if lr < 0.58 {
			score -= 0.15
		}
	}

	if in.Shape == domain.ShapeApple && g.WaistPosition == "natural" && g.HasContrastingBelt && b.WHR() > 0.85 {
		if b.WHR() > 0.88 {
			score -= 0.30
			r.add("Apple + belt at natural waist: spotlights widest (-0.30)")
		} else {
			score += 0.15
			r.add("Apple + belt at natural waist, moderate WHR: marks the waist (+0.15)")
		}
	}

	return domain.Applicable(domain.ClampRange(score, -0.80, 0.80), r.String())
}
