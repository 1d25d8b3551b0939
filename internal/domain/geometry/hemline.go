package geometry

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Hem zones, ordered from highest on the leg to lowest.
const (
	ZoneAboveKnee     = "above_knee"
	ZoneAboveKneeNear = "above_knee_near"
	ZoneKneeDanger    = "knee_danger"
	ZoneSafe          = "safe_zone"
	ZoneCollapsed     = "collapsed_zone"
	ZoneCalfDanger    = "calf_danger"
	ZoneBelowCalf     = "below_calf"
	ZoneAnkle         = "ankle"
	ZoneFloor         = "floor"
)

// ReferenceModelHeight is the height garment lengths are quoted against.
const ReferenceModelHeight = 66.0

// HemlineResult is where a hem lands on the user's leg.
type HemlineResult struct {
	HemFromFloor        float64
	HemZone             string
	ThighDanger         domain.Band
	KneeDanger          domain.Band
	CalfDanger          domain.Band
	SafeZone            *domain.Band
	SafeZoneSize        float64
	FabricRise          float64
	ProportionCutRatio  float64
	NarrowestPointBonus float64
}

// DangerZones returns the thigh, knee and calf bands in that order.
func (h HemlineResult) DangerZones() []domain.Band {
	return []domain.Band{h.ThighDanger, h.KneeDanger, h.CalfDanger}
}

// HemLabelHeight converts a hem label to a height from the floor. Unknown
// labels land at the knee.
func HemLabelHeight(label string, b *domain.BodyProfile) float64 {
	switch label {
	case "mini":
		return b.HKnee + 6
	case "above_knee":
		return b.HKnee + 3
	case "knee":
		return b.HKnee
	case "below_knee":
		return b.HKnee - 3
	case "midi":
		return b.HCalfMax
	case "below_calf":
		return b.HCalfMin
	case "ankle":
		return b.HAnkle + 2
	case "floor":
		return 1.0
	default:
		return b.HKnee
	}
}

// FabricWeightClass buckets GSM into light, medium and heavy.
func FabricWeightClass(gsm float64) string {
	switch {
	case gsm < 120:
		return "light"
	case gsm > 280:
		return "heavy"
	default:
		return "medium"
	}
}

// FabricDrapeRise is how many inches a hem rides up from its stated
// position as fabric moves over hips and belly.
func FabricDrapeRise(sil domain.Silhouette, weightClass string, hipCirc, bellyProjection float64) float64 {
	rise := 0.0
	if sil == domain.SilhouetteALine || sil == domain.SilhouetteFitAndFlare {
		if hipCirc > 40 {
			rise += 1.0
		}
		if bellyProjection > 2 {
			rise += 0.5
		}
	}
	if sil == domain.SilhouetteFitted {
		rise += 0.5
	}
	switch weightClass {
	case "light":
		rise *= 1.3
	case "heavy":
		rise *= 0.7
	}
	return rise
}

// TranslateHemline projects the garment's hem onto the body and classifies
// it against the thigh, knee and calf danger bands.
func TranslateHemline(g *domain.GarmentProfile, b *domain.BodyProfile) HemlineResult {
	var hem float64
	if g.GarmentLengthInches != nil {
		scale := b.Height / ReferenceModelHeight
		hem = b.Height - *g.GarmentLengthInches*scale
	} else {
		hem = HemLabelHeight(g.HemPosition, b)
	}

	rise := FabricDrapeRise(g.Silhouette, FabricWeightClass(g.GSMEstimated), b.Hip, b.BellyProjection)
	hem += rise

	knee := domain.Band{Low: b.HKnee - 1.0, High: b.HKnee + 1.5}
	calfRadius := 1.0 + (b.CalfProminence()-1.0)*3.0
	calf := domain.Band{Low: b.HCalfMax - calfRadius, High: b.HCalfMax + calfRadius}
	thighCenter := b.HKnee + 6
	thigh := domain.Band{Low: thighCenter - 1.0, High: thighCenter + 1.0}

	safeSize := knee.Low - calf.High
	var safe *domain.Band
	if safeSize > 0 {
		safe = &domain.Band{Low: calf.High, High: knee.Low}
	}

	var zone string
	switch {
	case hem > b.HKnee+2.5:
		zone = ZoneAboveKnee
	case hem > knee.High:
		zone = ZoneAboveKneeNear
	case hem >= knee.Low:
		zone = ZoneKneeDanger
	case safeSize > 0 && hem > calf.High:
		zone = ZoneSafe
	case safeSize <= 0 && hem > calf.High:
		zone = ZoneCollapsed
	case hem >= calf.Low:
		zone = ZoneCalfDanger
	case hem > b.HAnkle+2:
		zone = ZoneBelowCalf
	case hem > b.HAnkle-1:
		zone = ZoneAnkle
	default:
		zone = ZoneFloor
	}

	cut := 0.3
	if b.Height > 0 {
		cut = hem / b.Height
	}

	bonus := 0.0
	if math.Abs(hem-(b.HAnkle+2)) <= 1.5 {
		bonus = 2
	}
	if math.Abs(hem-b.HCalfMin) <= 1.5 {
		bonus = math.Max(bonus, 1)
	}

	return HemlineResult{
		HemFromFloor:        hem,
		HemZone:             zone,
		ThighDanger:         thigh,
		KneeDanger:          knee,
		CalfDanger:          calf,
		SafeZone:            safe,
		SafeZoneSize:        safeSize,
		FabricRise:          rise,
		ProportionCutRatio:  cut,
		NarrowestPointBonus: bonus,
	}
}
