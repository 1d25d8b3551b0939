package scoring

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

func isLoose(fit string) bool { return fit == "relaxed" || fit == "loose" }

func isHighRise(rise string) bool { return rise == "high" || rise == "ultra_high" }

// ScoreTopHemline scores where a top's hem breaks the torso. Unlike a
// dress hem it interacts with the waist and hip, not the legs.
func ScoreTopHemline(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	hemPos := g.TopHemLength
	if hemPos == "" {
		hemPos = "at_hip"
	}
	fit := g.FitCategory
	if fit == "" {
		fit = g.SilhouetteLabel
	}

	switch g.TopHemBehavior {
	case domain.HemTucked:
		score := 0.15
		r.add("Tucked: hem invisible, waist definition +0.15")
		if g.GSMEstimated > 250 {
			score -= 0.20
			r.add("Heavy fabric tucked: bulk at waist (-0.20)")
		}
		return r.applicable(score)

	case domain.HemHalfTucked:
		score := 0.20
		r.add("Half-tucked: partial waist definition, asymmetric break +0.20")
		switch in.Shape {
		case domain.ShapePear:
			score += 0.10
			r.add("Pear: asymmetric break disrupts hip-level line (+0.10)")
		case domain.ShapeApple:
			score += 0.05
			r.add("Apple: partial tuck draws eye to waist area (+0.05)")
		}
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.10
			r.add("highlight_waist: partial definition (+0.10)")
		}
		if g.GSMEstimated > 250 {
			score -= 0.15
			r.add("Heavy fabric: bunching at tuck point (-0.15)")
		}
		return r.applicable(score)

	case domain.HemBodysuit:
		return domain.Applicable(0.10, "Bodysuit: no visible hem, smooth line +0.10")
	}

	if g.TopHemBehavior == domain.HemCropped || hemPos == "cropped" {
		r.add("Cropped top: break above waist")
		score := 0.15
		switch {
		case b.IsPetite() && b.TorsoLegRatio() < 0.48:
			score = -0.35
			r.add("Petite + short torso: further shortening (-0.35)")
		case b.IsPetite():
			score = 0.30
			r.add("Petite + proportional torso: lengthens legs (+0.30)")
		}
		if in.Shape == domain.ShapeApple && b.HasGoal(domain.GoalHideMidsection) {
			score = -0.70
			r.add("Apple + hide_midsection: crop exposes midsection (-0.70)")
		}
		return r.applicable(score)
	}

	switch hemPos {
	case "at_waist":
		score := 0.20
		r.add("At waist: defines waist (+0.20)")
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.15
		}
		return r.applicable(score)

	case "just_below_waist":
		return domain.Applicable(0.15, "Just below waist: slight torso lengthening (+0.15)")

	case "at_hip":
		r.add("At hip: critical zone")
		var score float64
		switch in.Shape {
		case domain.ShapePear:
			score = -0.45
			if isLoose(fit) {
				score = -0.30
			}
			r.add("Pear: line at widest hip point (%+.2f)", score)
			if b.HasGoal(domain.GoalSlimHips) {
				score -= 0.10
				r.add("+ slim_hips goal: amplified")
			}
		case domain.ShapeInvertedTriangle:
			score = 0.35
			r.add("INVT: hip-level hem adds visual weight below (+0.35)")
		case domain.ShapeApple:
			if isLoose(fit) {
				score = 0.20
				r.add("Apple + relaxed: skims past midsection (+0.20)")
			} else {
				score = -0.15
				r.add("Apple + fitted: pulls at midsection (-0.15)")
			}
		default:
			r.add("Neutral body type: hip-level is default")
		}
		return r.applicable(score)

	case "below_hip", "tunic_length":
		r.add("%s: covers hips, shortens leg line", hemPos)
		score := 0.0
		if b.HasGoal(domain.GoalSlimHips, domain.GoalHideMidsection) {
			score += 0.35
			r.add("Coverage goal met: good for hip/midsection hiding (+0.35)")
		}
		if b.HasGoal(domain.GoalLookTaller) {
			penalty := -0.20
			if hemPos == "tunic_length" {
				penalty = -0.35
			}
			score += penalty
			r.add("Shortens leg line (%+.2f)", penalty)
		}
		if b.IsPetite() && hemPos == "tunic_length" {
			score -= 0.20
			r.add("Petite + tunic: overwhelms frame (-0.20)")
		}
		return r.applicable(score)
	}

	return domain.NotApplicable(fmt.Sprintf("Top hemline '%s' (N/A)", hemPos))
}

// PantRiseLabel returns the garment's rise label, inferring it from the
// rise in centimetres when unset. It returns "" when neither is known.
func PantRiseLabel(g *domain.GarmentProfile) string {
	if g.Rise != "" {
		return g.Rise
	}
	if g.RiseCM == nil {
		return ""
	}
	switch cm := *g.RiseCM; {
	case cm > 26:
		return "high"
	case cm > 22:
		return "mid"
	default:
		return "low"
	}
}

// ScorePantRise scores where a waistband sits: high rise lengthens the
// leg line, low rise shortens it.
func ScorePantRise(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	rise := PantRiseLabel(g)
	if rise == "" {
		return domain.NotApplicable("No rise data (N/A)")
	}

	switch rise {
	case "high", "ultra_high":
		score := 0.25
		r.add("High rise: leg elongation base +0.25")
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.25
			r.add("look_taller goal: amplified (+0.25)")
		}
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.15
			r.add("highlight_waist: waistband cinches (+0.15)")
		}
		if in.Shape == domain.ShapeApple && b.WHR() > 0.85 {
			if g.WaistbandStretchPct >= 8.0 {
				score -= 0.10
				r.add("Apple: stretch waistband mitigates muffin risk (-0.10)")
			} else {
				score -= 0.25
				r.add("Apple: muffin-top risk at midsection (-0.25)")
			}
		}
		if b.IsPetite() {
			score += 0.10
			r.add("Petite: high rise strongly benefits (+0.10)")
		}
		return r.applicable(score)

	case "mid":
		return domain.Applicable(0.05, "Mid rise: neutral-positive +0.05")

	case "low":
		score := -0.15
		r.add("Low rise: shortens leg line -0.15")
		if b.HasGoal(domain.GoalLookTaller) {
			score -= 0.25
			r.add("look_taller goal: strongly fights (-0.25)")
		}
		if b.IsPetite() {
			score -= 0.15
			r.add("Petite: low rise significantly shortens leg (-0.15)")
		}
		if b.HasGoal(domain.GoalHideMidsection) {
			score -= 0.15
			r.add("hide_midsection: low rise exposes gap (-0.15)")
		}
		return r.applicable(score)
	}

	return domain.NotApplicable(fmt.Sprintf("Rise '%s' (N/A)", rise))
}

// ScoreLegShape scores the pant leg against hip and leg shape. Low-stretch
// skinny legs on a large thigh carry an extra cling penalty.
func ScoreLegShape(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons

	leg := g.LegShape
	if leg == "" {
		return domain.NotApplicable("No leg shape data (N/A)")
	}

	switch leg {
	case "skinny", "slim":
		cling := 0.0
		mult, ok := domain.ConstructionStretchMultiplier[g.Construction]
		if !ok {
			mult = 2.0
		}
		if stretch := g.ElastanePct * mult; stretch < 8 {
			if b.CThighMax > 24 {
				cling = -0.10
				r.add("Low-stretch skinny + large thigh (%.0f\"): cling risk (-0.10)", b.CThighMax)
			} else if b.CThighMax > 22 {
				cling = -0.05
				r.add("Low-stretch %s + moderate thigh: mild cling risk (-0.05)", leg)
			}
		}

		r.add("%s: follows body contour", leg)
		var score float64
		switch in.Shape {
		case domain.ShapePear:
			if b.HasGoal(domain.GoalSlimHips) {
				score = -0.35
				r.add("Pear + slim_hips: emphasizes hip-to-ankle taper (-0.35)")
			} else {
				score = -0.10
				r.add("Pear: shows hip curve (-0.10)")
			}
			if isHighRise(g.Rise) {
				score += 0.10
				r.add("+ high rise: elongation partially offsets (+0.10)")
			}
		case domain.ShapeInvertedTriangle:
			score = -0.25
			r.add("INVT: narrow bottom emphasizes shoulder width (-0.25)")
		case domain.ShapeRectangle:
			score = 0.15
			r.add("Rectangle: clean line (+0.15)")
		case domain.ShapeHourglass:
			score = 0.15
			r.add("Hourglass: follows natural curve (+0.15)")
		}
		return r.applicable(score + cling)

	case "wide_leg", "palazzo":
		r.add("%s: adds volume at leg", leg)
		var score float64
		switch {
		case b.IsPetite():
			if isHighRise(g.Rise) {
				score = 0.15
				r.add("Petite + high rise: volume manageable (+0.15)")
			} else {
				score = -0.30
				r.add("Petite without high rise: overwhelms frame (-0.30)")
			}
		case in.Shape == domain.ShapePear:
			score = 0.40
			r.add("Pear: skims over hips and thighs (+0.40)")
			if isHighRise(g.Rise) {
				score += 0.10
				r.add("+ high rise: defines waist before volume starts (+0.10)")
			} else if g.Rise == "low" {
				score -= 0.20
				r.add("+ low rise: volume starts too early, no waist anchor (-0.20)")
			}
		case in.Shape == domain.ShapeInvertedTriangle:
			score = 0.40
			r.add("INVT: leg volume balances shoulders (+0.40)")
			if isHighRise(g.Rise) {
				score += 0.05
				r.add("+ high rise: clean proportion line (+0.05)")
			}
		case in.Shape == domain.ShapeApple:
			score = 0.25
			r.add("Apple: volume below balances midsection (+0.25)")
			if isHighRise(g.Rise) && g.WaistbandStretchPct >= 8.0 {
				score += 0.10
				r.add("+ stretch high rise: smooth waist transition (+0.10)")
			} else if g.Rise == "low" {
				score -= 0.15
				r.add("+ low rise: gap at midsection (-0.15)")
			}
		default:
			score = 0.15
		}
		return r.applicable(score)

	case "straight":
		return domain.Applicable(0.15, "Straight: clean, balanced line (+0.15)")

	case "bootcut", "flare":
		r.add("%s: volume at hem", leg)
		score := 0.15
		if in.Shape == domain.ShapePear {
			score = 0.30
			r.add("Pear: flare balances hip width (+0.30)")
		}
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.15
			r.add("look_taller: flare + heel creates long line (+0.15)")
		}
		return r.applicable(score)

	case "tapered":
		r.add("Tapered: relaxed through thigh, narrow at ankle")
		score := 0.10
		if in.Shape == domain.ShapePear {
			score = -0.15
			r.add("Pear: taper emphasizes hip-ankle contrast (-0.15)")
		}
		return r.applicable(score)

	case "jogger":
		r.add("Jogger: elastic cuff at ankle")
		score := 0.0
		if b.IsPetite() {
			score = -0.15
			r.add("Petite: elastic cuff shortens leg line (-0.15)")
		}
		return r.applicable(score)
	}

	return domain.NotApplicable(fmt.Sprintf("Leg shape '%s' (N/A)", leg))
}

// ScoreJacket scores a jacket on its own merits: shoulder structure,
// length and closure against body shape and goals.
func ScoreJacket(in Input) domain.Outcome {
	g, b := in.Garment, in.Body
	var r reasons
	score := 0.0

	structure := g.ShoulderStructure
	if structure == "" {
		structure = "natural"
	}
	switch structure {
	case "padded", "structured":
		switch in.Shape {
		case domain.ShapePear:
			score += 0.50
			r.add("Structured shoulders balance pear hips (+0.50)")
		case domain.ShapeInvertedTriangle:
			score -= 0.40
			r.add("Padded shoulders widen already-broad shoulders (-0.40)")
		case domain.ShapeRectangle:
			score += 0.25
			r.add("Structure creates shape on straight frame (+0.25)")
		default:
			score += 0.10
			r.add("Structured shoulders: mild positive")
		}
	case "dropped", "oversized":
		switch {
		case in.Shape == domain.ShapeInvertedTriangle:
			score += 0.20
			r.add("Dropped shoulders soften broad shoulder line (+0.20)")
		case b.IsPetite():
			score -= 0.30
			r.add("Oversized shoulders overwhelm petite frame (-0.30)")
		default:
			score += 0.05
		}
	}

	length := g.JacketLength
	if length == "" {
		length = "hip"
	}
	switch length {
	case "cropped":
		score += 0.30
		r.add("Cropped jacket defines waist (+0.30)")
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.15
			r.add("look_taller: short jacket = longer leg line (+0.15)")
		}
	case "hip":
		switch in.Shape {
		case domain.ShapePear:
			score -= 0.30
			r.add("Hip-length ends at pear's widest point (-0.30)")
		case domain.ShapeInvertedTriangle:
			score += 0.20
			r.add("Hip-length adds visual weight below (+0.20)")
		}
	case "mid_thigh", "knee", "below_knee", "full_length":
		if b.HasGoal(domain.GoalLookTaller) {
			score -= 0.20
			r.add("Long jacket shortens visible leg line (-0.20)")
		}
		if b.HasGoal(domain.GoalHideMidsection, domain.GoalSlimHips) {
			score += 0.30
			r.add("Long jacket provides midsection/hip coverage (+0.30)")
		}
	}

	switch g.JacketClosure {
	case "open_front":
		score += 0.20
		r.add("Open front: vertical line elongates torso (+0.20)")
	case "double_breasted":
		switch in.Shape {
		case domain.ShapeApple:
			score -= 0.15
			r.add("Double-breasted adds midsection bulk (-0.15)")
		case domain.ShapeRectangle:
			score += 0.10
			r.add("Double-breasted adds dimension (+0.10)")
		}
	}

	return r.applicable(score)
}
