package domain

// GoldenRatio is the target visual leg-to-height ratio.
const GoldenRatio = 0.618

// ConstructionStretchMultiplier converts elastane percentage into total
// mechanical stretch for each construction.
var ConstructionStretchMultiplier = map[FabricConstruction]float64{
	ConstructionWoven:      1.6,
	ConstructionKnit:       4.0,
	ConstructionKnitRib:    5.5,
	ConstructionKnitDouble: 3.5,
	ConstructionKnitJersey: 4.0,
}

// FiberGSMMultiplier adjusts nominal GSM for how heavy a fiber hangs.
var FiberGSMMultiplier = map[string]float64{
	"cotton":    1.15,
	"polyester": 1.00,
	"silk":      0.85,
	"wool":      1.10,
	"rayon":     0.90,
	"linen":     1.25,
	"nylon":     0.95,
	"tencel":    0.92,
	"modal":     0.90,
	"viscose":   0.90,
}

// SurfaceSheen maps a surface finish to a 0..1 sheen score.
var SurfaceSheen = map[SurfaceFinish]float64{
	SurfaceDeepMatte:     0.00,
	SurfaceMatte:         0.10,
	SurfaceSubtleSheen:   0.25,
	SurfaceModerateSheen: 0.50,
	SurfaceHighShine:     0.75,
	SurfaceMaximumShine:  1.00,
	SurfaceCrushed:       0.35,
}

// HeelEfficiency returns the fraction of heel height that reads as leg length.
func HeelEfficiency(heelInches float64) float64 {
	switch {
	case heelInches < 3:
		return 0.70
	case heelInches < 5:
		return 0.60
	default:
		return 0.50
	}
}

// BustDividingThreshold returns the V depth (inches) beyond which a neckline
// visibly divides the bust, keyed on bust differential.
func BustDividingThreshold(bustDifferential float64) float64 {
	steps := []struct{ maxDiff, depth float64 }{
		{4, 7.0}, {5, 6.0}, {6, 5.0}, {7, 4.5}, {8, 4.0}, {9, 3.5},
	}
	for _, s := range steps {
		if bustDifferential <= s.maxDiff {
			return s.depth
		}
	}
	return 3.5
}

// PrincipleConfidence is the built-in evidence confidence per principle key.
// Keys are principle names lowercased with spaces and slashes as underscores.
var PrincipleConfidence = map[string]float64{
	"v_neck_dividing_threshold":     0.85,
	"boat_neck_inverted_triangle":   0.92,
	"puff_inverted_triangle":        0.92,
	"three_quarter_arm_slimming":    0.85,
	"cap_sleeve_danger_zone":        0.80,
	"hemline_zone_collision_petite": 0.82,
	"hemline_sleeve_anatomical":     0.90,
	"dark_color_slimming":           0.70,
	"wrap_waist_apple":              0.72,
	"turtleneck_column":             0.68,
	"waist_placement_golden_ratio":  0.75,
	"empire_tent_thresholds":        0.65,
	"skin_tone_contrast":            0.60,
	"stripe_effect_ashida":          0.55,
	"pattern_scale_effect":          0.40,
	"fit_flare_pear_origin":         0.50,
	"cowl_bust_volume":              0.50,
	"contour_smoothness":            0.45,
}

// FabricSpec is one named fabric's typical properties.
type FabricSpec struct {
	BaseGSM        float64            `json:"base_gsm"`
	Fiber          string             `json:"fiber"`
	Construction   FabricConstruction `json:"construction"`
	Surface        SurfaceFinish      `json:"surface"`
	Drape          float64            `json:"drape"`
	TypicalStretch float64            `json:"typical_stretch"`
}

func fabric(gsm float64, fiber string, c FabricConstruction, s SurfaceFinish, drape, stretch float64) FabricSpec {
	return FabricSpec{BaseGSM: gsm, Fiber: fiber, Construction: c, Surface: s, Drape: drape, TypicalStretch: stretch}
}

// DefaultFabrics returns a fresh copy of the built-in fabric table.
func DefaultFabrics() map[string]FabricSpec {
	const (
		woven  = ConstructionWoven
		knit   = ConstructionKnit
		rib    = ConstructionKnitRib
		double = ConstructionKnitDouble
		jersey = ConstructionKnitJersey

		deepMatte = SurfaceDeepMatte
		matte     = SurfaceMatte
		subtle    = SurfaceSubtleSheen
		moderate  = SurfaceModerateSheen
	)
	return map[string]FabricSpec{
		"cotton_poplin":       fabric(120, "cotton", woven, matte, 4, 0),
		"cotton_jersey":       fabric(180, "cotton", jersey, matte, 6, 15),
		"silk_charmeuse":      fabric(90, "silk", woven, moderate, 9, 0),
		"silk_chiffon":        fabric(40, "silk", woven, subtle, 10, 0),
		"wool_flannel":        fabric(280, "wool", woven, deepMatte, 3, 0),
		"wool_crepe":          fabric(200, "wool", woven, matte, 6, 2),
		"ponte":               fabric(300, "polyester", double, subtle, 4, 20),
		"denim":               fabric(350, "cotton", woven, matte, 2, 0),
		"stretch_denim":       fabric(320, "cotton", woven, matte, 3, 8),
		"satin":               fabric(130, "polyester", woven, moderate, 8, 0),
		"linen":               fabric(180, "linen", woven, matte, 3, 0),
		"rayon_challis":       fabric(110, "rayon", woven, subtle, 8, 0),
		"polyester_crepe":     fabric(150, "polyester", woven, subtle, 7, 0),
		"modal_jersey":        fabric(170, "modal", jersey, subtle, 7, 20),
		"tencel_twill":        fabric(200, "tencel", woven, subtle, 6, 0),
		"velvet":              fabric(280, "polyester", woven, deepMatte, 5, 0),
		"crushed_velvet":      fabric(250, "polyester", woven, SurfaceCrushed, 6, 5),
		"neoprene":            fabric(350, "polyester", double, matte, 2, 15),
		"organza":             fabric(50, "polyester", woven, subtle, 2, 0),
		"tulle":               fabric(30, "nylon", knit, subtle, 3, 5),
		"rib_knit":            fabric(220, "cotton", rib, matte, 5, 30),
		"french_terry":        fabric(280, "cotton", knit, matte, 4, 10),
		"scuba":               fabric(320, "polyester", double, matte, 3, 12),
		"leather":             fabric(500, "leather", woven, moderate, 2, 0),
		"faux_leather":        fabric(350, "polyester", woven, SurfaceHighShine, 3, 5),
		"viscose_twill":       fabric(160, "viscose", woven, subtle, 7, 0),
		"cotton_sateen":       fabric(150, "cotton", woven, subtle, 5, 0),
		"silk_crepe_de_chine": fabric(80, "silk", woven, subtle, 8, 0),
		"wool_gabardine":      fabric(260, "wool", woven, matte, 3, 0),
		"chambray":            fabric(140, "cotton", woven, matte, 5, 0),
		"tweed":               fabric(320, "wool", woven, deepMatte, 2, 0),
		"sequin_mesh":         fabric(200, "polyester", knit, SurfaceMaximumShine, 5, 10),
		"spandex_blend":       fabric(200, "nylon", knit, subtle, 6, 40),
		"poplin_stretch":      fabric(130, "cotton", woven, matte, 4, 5),
		"chiffon_poly":        fabric(50, "polyester", woven, subtle, 9, 0),
		"double_crepe":        fabric(220, "polyester", woven, matte, 5, 2),
		"power_mesh":          fabric(100, "nylon", knit, subtle, 7, 50),
		"bengaline":           fabric(250, "polyester", woven, subtle, 3, 8),
		"jacquard":            fabric(250, "polyester", woven, moderate, 4, 0),
		"brocade":             fabric(300, "polyester", woven, moderate, 3, 0),
		"interlock_knit":      fabric(200, "cotton", double, matte, 5, 18),
		"bamboo_jersey":       fabric(160, "viscose", jersey, subtle, 7, 15),
		"wool_jersey":         fabric(220, "wool", jersey, matte, 5, 12),
		"terry_cloth":         fabric(400, "cotton", woven, deepMatte, 3, 0),
		"crepe_back_satin":    fabric(150, "polyester", woven, moderate, 7, 0),
		"lyocell_twill":       fabric(190, "tencel", woven, subtle, 6, 0),
		"cupro":               fabric(100, "viscose", woven, subtle, 9, 0),
		"taffeta":             fabric(100, "polyester", woven, moderate, 2, 0),
		"mesh":                fabric(80, "polyester", knit, subtle, 6, 20),
		"corduroy":            fabric(300, "cotton", woven, deepMatte, 3, 0),
		"stretch_crepe":       fabric(200, "polyester", woven, matte, 6, 5),
		"scuba_knit":          fabric(300, "polyester", double, subtle, 3, 15),
		"performance_knit":    fabric(160, "polyester", knit, subtle, 5, 25),
		"double_georgette":    fabric(100, "polyester", woven, subtle, 8, 0),
		"stretch_poplin":      fabric(130, "cotton", woven, matte, 4, 5),
	}
}
