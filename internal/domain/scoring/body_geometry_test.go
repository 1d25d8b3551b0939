package scoring_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/geometry"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRiseElongation_Branches(t *testing.T) {
	petiteProportional := petiteBody()
	petiteProportional.TorsoLength = 15
	petiteLongTorso := petiteBody()
	petiteLongTorso.TorsoLength = 17
	apple := appleBody()
	apple.BellyZone = 0.7
	plus := plusBody()
	plus.BellyZone = 0.5

	tests := []struct {
		name      string
		rise      float64
		body      domain.BodyProfile
		bandWidth float64
		bandPct   float64
		er        float64
		want      float64
	}{
		{"high rise", 28, rectangleBody(), 3, 5, 0.05, 0.12},
		{"very high rise capped", 40, rectangleBody(), 3, 5, 0.05, 0.20},
		{"low rise", 10, rectangleBody(), 3, 5, 0.05, -0.15},
		{"petite short torso high rise inverts", 28, petiteBody(), 3, 5, 0.05, -0.30},
		{"petite short torso moderate rise", 24, petiteBody(), 3, 5, 0.05, 0.078},
		{"petite proportional amplified", 28, petiteProportional, 3, 5, 0.05, 0.156},
		{"petite long torso amplified", 28, petiteLongTorso, 3, 5, 0.05, 0.18},
		{"tall diminishing returns", 28, tallBody(), 3, 5, 0.05, 0.06},
		{"apple narrow rigid waistband muffin top", 28, apple, 2, 3, 0.05, -0.25},
		{"apple wide elastic waistband", 28, apple, 6, 10, 0.05, 0.22},
		{"apple ordinary waistband", 28, apple, 3, 5, 0.05, 0.12},
		{"apple without belly ignores waistband", 28, appleBody(), 2, 3, 0.05, 0.12},
		{"plus belly narrow rigid waistband", 28, plus, 2, 3, 0.05, -0.25},
		{"hourglass smooth waist to hip", 28, hourglassBody(), 3, 5, 0.05, 0.15},
		{"inverted triangle with slim leg", 28, invtBody(), 3, 5, 0.01, 0.072},
		{"inverted triangle with relaxed leg", 28, invtBody(), 3, 5, 0.05, 0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.DefaultGarmentProfile()
			g.RiseCM = domain.Float(tt.rise)
			g.WaistbandWidthCM = tt.bandWidth
			g.WaistbandStretchPct = tt.bandPct
			g.ExpansionRate = tt.er

			out := scoring.ScoreRiseElongation(input(g, tt.body))

			assert.True(t, out.IsApplicable())
			assert.InDelta(t, tt.want, out.Score, 1e-9)
		})
	}
}

func TestScoreRiseElongation_Reasoning(t *testing.T) {
	apple := appleBody()
	apple.BellyZone = 0.7

	g := domain.DefaultGarmentProfile()
	g.RiseCM = domain.Float(28)
	inverted := scoring.ScoreRiseElongation(input(g, petiteBody()))
	g.WaistbandWidthCM, g.WaistbandStretchPct = 2, 3
	muffin := scoring.ScoreRiseElongation(input(g, apple))

	assert.Contains(t, inverted.Reasoning, "INVERTED")
	assert.Contains(t, muffin.Reasoning, "muffin top")
}

func TestScoreRiseElongation_NoRiseNotApplicable(t *testing.T) {
	out := scoring.ScoreRiseElongation(input(domain.DefaultGarmentProfile(), rectangleBody()))

	assert.False(t, out.IsApplicable())
}

func TestScoreHemline_Zones(t *testing.T) {
	thick := rectangleBody()
	thick.CThighMax = 25
	showcase := thick
	showcase.ZoneGoals.Legs = "showcase"
	narrower := thick
	narrower.ZoneGoals.Hip = "narrower"
	heavy := rectangleBody()
	heavy.CThighMax = 28
	slimApple := appleBody()
	slimApple.CThighMax = 20
	longLegs := tallBody()
	longLegs.LegLengthVisual = 45

	// Calf band 10.7-13.3 leaves a 3.7" safe zone below the knee band.
	slimCalf := rectangleBody()
	slimCalf.HCalfMax, slimCalf.CCalfMax, slimCalf.CCalfMin = 12, 10, 9
	tallSlimCalf := slimCalf
	tallSlimCalf.Height = 70
	fullCalf := rectangleBody()
	fullCalf.CCalfMax = 11.25

	tests := []struct {
		name       string
		hem        string
		length     *float64
		silhouette domain.Silhouette
		waistDef   bool
		body       domain.BodyProfile
		want       float64
	}{
		{"above knee", "above_knee", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), 0.60},
		{"above knee petite", "above_knee", nil, domain.SilhouetteSemiFitted, false, petiteBody(), 0.64},
		{"above knee tall long legs", "above_knee", nil, domain.SilhouetteSemiFitted, false, longLegs, 0.39},
		{"above knee full thigh", "above_knee", nil, domain.SilhouetteSemiFitted, false, thick, 0.40},
		{"above knee full thigh showcased", "above_knee", nil, domain.SilhouetteSemiFitted, false, showcase, 0.50},
		{"above knee full thigh narrowing hips", "above_knee", nil, domain.SilhouetteSemiFitted, false, narrower, 0.36},
		{"above knee heavy thigh", "above_knee", nil, domain.SilhouetteSemiFitted, false, heavy, 0.25},
		{"above knee apple", "above_knee", nil, domain.SilhouetteSemiFitted, false, appleBody(), 0.68},
		{"above knee slim apple", "above_knee", nil, domain.SilhouetteSemiFitted, false, slimApple, 0.75},
		{"knee danger", "knee", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), -0.30},
		{"knee danger petite", "knee", nil, domain.SilhouetteSemiFitted, false, petiteBody(), -0.40},
		{"safe zone middle", "below_knee", nil, domain.SilhouetteSemiFitted, false, slimCalf, 0.30},
		{"safe zone middle tall", "below_knee", nil, domain.SilhouetteSemiFitted, false, tallSlimCalf, 0.40},
		{"safe zone edge", "", domain.Float(49.5), domain.SilhouetteSemiFitted, false, slimCalf, 0.15},
		{"calf danger prominent", "midi", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), -0.50},
		{"calf danger prominent petite", "midi", nil, domain.SilhouetteSemiFitted, false, petiteBody(), -0.575},
		{"calf danger moderate", "midi", nil, domain.SilhouetteSemiFitted, false, fullCalf, -0.42},
		{"calf danger slim", "midi", nil, domain.SilhouetteSemiFitted, false, slimCalf, -0.35},
		{"below calf", "below_calf", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), 0.15},
		{"ankle", "ankle", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), 0.25},
		{"ankle tall", "ankle", nil, domain.SilhouetteSemiFitted, false, tallBody(), 0.45},
		{"ankle petite oversized", "ankle", nil, domain.SilhouetteOversized, false, petiteBody(), -0.15},
		{"ankle petite shift", "ankle", nil, domain.SilhouetteShift, false, petiteBody(), -0.15},
		{"ankle petite semi fitted", "ankle", nil, domain.SilhouetteSemiFitted, false, petiteBody(), 0.10},
		{"ankle hourglass without waist", "ankle", nil, domain.SilhouetteSemiFitted, false, hourglassBody(), 0.10},
		{"ankle hourglass with waist", "ankle", nil, domain.SilhouetteSemiFitted, true, hourglassBody(), 0.25},
		{"floor", "floor", nil, domain.SilhouetteSemiFitted, false, rectangleBody(), 0.05},
		{"floor tall", "floor", nil, domain.SilhouetteSemiFitted, false, tallBody(), 0.15},
		{"floor petite", "floor", nil, domain.SilhouetteSemiFitted, false, petiteBody(), -0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.DefaultGarmentProfile()
			g.HemPosition = tt.hem
			g.GarmentLengthInches = tt.length
			g.Silhouette = tt.silhouette
			g.HasWaistDefinition = tt.waistDef

			out := scoring.ScoreHemline(input(g, tt.body))

			assert.True(t, out.IsApplicable())
			assert.InDelta(t, tt.want, out.Score, 1e-9)
		})
	}
}

func TestScoreSleeve_Types(t *testing.T) {
	fullArm := domain.DefaultBodyProfile()
	fullArm.CUpperArmMax = 14

	tests := []struct {
		name   string
		sleeve domain.SleeveType
		body   domain.BodyProfile
		want   float64
	}{
		// slimming +1 scaled by 1 + (0.75-1)/2
		{"three quarter slims", domain.SleeveThreeQuarter, domain.DefaultBodyProfile(), 0.175},
		{"short slims", domain.SleeveShort, domain.DefaultBodyProfile(), 0.175},
		// cap frames the widest point: -2 x severity 1.3
		{"cap widens full arm", domain.SleeveCap, fullArm, -0.52},
		// full length with ease reads wider: -4 x severity 0.75
		{"set in full length", domain.SleeveSetIn, domain.DefaultBodyProfile(), -0.60},
		// -4 x 0.75 plus the +2 flutter bonus
		{"flutter", domain.SleeveFlutter, domain.DefaultBodyProfile(), -0.20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.DefaultGarmentProfile()
			g.SleeveType = tt.sleeve

			out := scoring.ScoreSleeve(input(g, tt.body))

			assert.True(t, out.IsApplicable())
			assert.InDelta(t, tt.want, out.Score, 1e-9)
		})
	}
}

func TestScoreSleeve_SleevelessNotApplicable(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.SleeveType = domain.SleeveSleeveless

	out := scoring.ScoreSleeve(input(g, rectangleBody()))

	assert.False(t, out.IsApplicable())
}

func TestScoreWaistPlacement_Penalties(t *testing.T) {
	largeBust := rectangleBody()
	largeBust.Underbust = 28
	moderateBust := rectangleBody()
	moderateBust.Underbust = 30
	shortLegs := rectangleBody()
	shortLegs.LegLengthVisual = 35
	shorterLegs := rectangleBody()
	shorterLegs.LegLengthVisual = 37.5
	// WHR 0.8775: apple, but under the 0.88 cutoff.
	softApple := appleBody()
	softApple.Waist, softApple.Hip = 35.1, 40

	tests := []struct {
		name     string
		position string
		elastane float64
		drape    float64
		belt     bool
		body     domain.BodyProfile
		penalty  float64
	}{
		{"empire hourglass stretch", "empire", 8, 5, false, hourglassBody(), -0.10},
		{"empire hourglass drapey", "empire", 0, 8, false, hourglassBody(), -0.15},
		{"empire hourglass stiff", "empire", 0, 5, false, hourglassBody(), -0.30},
		{"empire large bust stiff tents", "empire", 0, 2, false, largeBust, -0.45},
		{"empire moderate bust stiff", "empire", 0, 3, false, moderateBust, -0.25},
		{"empire small bust", "empire", 0, 2, false, rectangleBody(), 0},
		{"drop waist short legs", "drop", 0, 5, false, shortLegs, -0.30},
		{"drop waist shorter legs", "drop", 0, 5, false, shorterLegs, -0.15},
		{"drop waist proportional legs", "drop", 0, 5, false, rectangleBody(), 0},
		{"apple belted at natural waist", "natural", 0, 5, true, appleBody(), -0.30},
		{"apple moderate WHR belted at natural waist", "natural", 0, 5, true, softApple, 0.15},
		{"apple unbelted", "natural", 0, 5, false, appleBody(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.DefaultGarmentProfile()
			g.WaistPosition = tt.position
			g.ElastanePct = tt.elastane
			g.Drape = tt.drape
			g.HasContrastingBelt = tt.belt

			out := scoring.ScoreWaistPlacement(input(g, tt.body))

			base := geometry.TranslateWaistline(&g, &tt.body).ProportionScore
			assert.True(t, out.IsApplicable())
			assert.InDelta(t, domain.ClampRange(base+tt.penalty, -0.80, 0.80), out.Score, 1e-9)
		})
	}
}

func TestScoreWaistPlacement_EmpireLengthensShortLegs(t *testing.T) {
	b := domain.DefaultBodyProfile()
	b.Height, b.Bust, b.Underbust, b.Waist, b.Hip = 64, 35, 31, 28, 37
	b.TorsoLength, b.LegLengthVisual = 16, 38
	g := domain.DefaultGarmentProfile()
	g.WaistPosition = "empire"

	out := scoring.ScoreWaistPlacement(input(g, b))

	// leg ratio 0.594 moves to 0.634, 0.0079 closer to golden, x8
	require.True(t, out.IsApplicable())
	assert.InDelta(t, 0.063, out.Score, 1e-9)
}

func TestScoreWaistPlacement_NoWaistNotApplicable(t *testing.T) {
	g := domain.DefaultGarmentProfile()
	g.WaistPosition = "no_waist"

	out := scoring.ScoreWaistPlacement(input(g, rectangleBody()))

	assert.False(t, out.IsApplicable())
}
