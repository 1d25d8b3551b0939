package geometry

import (
	"math"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Sleeve hem finishes.
const (
	HemClean    = "clean_hem"
	HemElastic  = "elastic"
	HemSoftEdge = "soft_edge"
	HemFlutter  = "flutter"
	HemRolled   = "rolled"
)

var hemTypeWidth = map[string]float64{
	HemClean:    0.0,
	HemElastic:  0.15,
	HemSoftEdge: -0.10,
	HemFlutter:  -0.20,
	HemRolled:   0.10,
}

// Inches added to each shoulder by sleeve construction.
var shoulderWidthEffect = map[string]float64{
	"set_in":       0.0,
	"raglan":       -0.5,
	"dropped":      -0.75,
	"puff":         1.5,
	"structured":   0.5,
	"cap":          0.25,
	"dolman":       -0.5,
	"off_shoulder": 0.0,
}

// SleeveResult is how a sleeve frames the user's arm.
type SleeveResult struct {
	EndpointPosition      float64
	PerceivedWidth        float64
	ActualWidth           float64
	DeltaVsActual         float64
	ArmProminenceSeverity float64
	ArmProminenceRadius   float64
	ScoreFromDelta        float64
	ShoulderWidthEffect   float64
}

// ArmCircumferenceAt interpolates arm circumference at a distance from the
// shoulder, clamping outside the shoulder-to-wrist range.
func ArmCircumferenceAt(b *domain.BodyProfile, position float64) float64 {
	landmarks := [][2]float64{
		{0.0, b.ShoulderWidth / 2 * math.Pi / 2},
		{b.CUpperArmMaxPosition, b.CUpperArmMax},
		{b.ArmLength * 0.52, b.CElbow},
		{b.ArmLength * 0.65, b.CForearmMax},
		{b.CForearmMinPosition, b.CForearmMin},
		{b.ArmLength, b.CWrist},
	}
	if position <= landmarks[0][0] {
		return landmarks[0][1]
	}
	last := landmarks[len(landmarks)-1]
	if position >= last[0] {
		return last[1]
	}
	for i := 0; i < len(landmarks)-1; i++ {
		p0, c0 := landmarks[i][0], landmarks[i][1]
		p1, c1 := landmarks[i+1][0], landmarks[i+1][1]
		if p0 <= position && position <= p1 {
			if p1 == p0 {
				return c0
			}
			t := (position - p0) / (p1 - p0)
			return c0 + t*(c1-c0)
		}
	}
	return b.CUpperArmMax
}

// ArmProminenceSeverity returns the severity multiplier and danger radius
// for the body's combined arm prominence.
func ArmProminenceSeverity(b *domain.BodyProfile) (severity, radius float64) {
	combined := b.ArmProminenceCombined()
	switch {
	case combined < 1.35:
		return 0.3, 0.5
	case combined < 1.50:
		return 0.5, 0.75
	case combined < 1.65:
		return 0.75, 1.0
	case combined < 1.80:
		return 1.0, 1.5
	case combined < 2.00:
		return 1.3, 2.0
	case combined < 2.20:
		return 1.6, 2.5
	default:
		return 2.0, 3.0
	}
}

// SleeveGeometry returns the endpoint (inches from shoulder), ease and hem
// finish implied by a sleeve type.
func SleeveGeometry(t domain.SleeveType, b *domain.BodyProfile) (endpoint, ease float64, hem string) {
	switch t {
	case domain.SleeveSleeveless:
		return 0.0, 0.0, HemClean
	case domain.SleeveCap:
		return 2.5, -0.5, HemClean
	case domain.SleeveShort:
		return 6.0, 1.0, HemClean
	case domain.SleeveThreeQuarter:
		return 17.0, 0.5, HemClean
	case domain.SleeveLong:
		return b.ArmLength, 0.0, HemClean
	case domain.SleeveRaglan:
		return b.ArmLength, 1.0, HemClean
	case domain.SleeveDolman:
		return b.ArmLength, 12.0, HemClean
	case domain.SleevePuff:
		return 4.0, 6.0, HemElastic
	case domain.SleeveFlutter:
		return 3.0, 3.0, HemFlutter
	case domain.SleeveBell:
		return b.ArmLength * 0.7, 8.0, HemClean
	default:
		return b.ArmLength, 1.0, HemClean
	}
}

// TranslateSleeve computes where the sleeve ends, how wide the arm reads
// there, and the resulting score on the -4..+5 sleeve scale.
func TranslateSleeve(g *domain.GarmentProfile, b *domain.BodyProfile) SleeveResult {
	var endpoint, ease float64
	hem := HemClean
	if g.SleeveLengthInches != nil {
		endpoint = *g.SleeveLengthInches
		ease = g.SleeveEaseInches
	} else {
		endpoint, ease, hem = SleeveGeometry(g.SleeveType, b)
	}

	actual := ArmCircumferenceAt(b, endpoint) / math.Pi

	var frame float64
	switch {
	case ease >= 0:
		frame = actual + ease/math.Pi
	case ease > -1.0:
		frame = actual + math.Abs(ease)*0.3
	default:
		frame = actual + math.Abs(ease)*0.5
	}
	frame += hemTypeWidth[hem]

	// The visible arm below the sleeve contributes 40% of the impression.
	taper := 0.0
	if endpoint < b.ArmLength {
		mid := (endpoint + b.ArmLength) / 2
		taper = (ArmCircumferenceAt(b, mid)/math.Pi - frame) * 0.4
	}
	perceived := frame + taper

	// Short sleeves ending near the widest point frame it.
	delta := perceived - actual
	if endpoint <= b.CUpperArmMaxPosition+1.5 {
		capFrame := frame - b.CUpperArmMax/math.Pi + 0.20
		delta = math.Max(delta, capFrame)
	}

	severity, radius := ArmProminenceSeverity(b)

	var score float64
	switch {
	case delta > 0.30:
		score = -4.0
	case delta > 0.15:
		score = -2.0
	case delta > 0:
		score = -1.0
	case delta > -0.30:
		score = 1.0
	case delta > -0.60:
		score = 3.0
	default:
		score = 5.0
	}
	if score < 0 {
		score *= severity
	} else {
		score *= 1 + (severity-1)*0.5
	}

	key := string(g.SleeveType)
	if key == "" {
		key = string(domain.SleeveSetIn)
	}

	return SleeveResult{
		EndpointPosition:      endpoint,
		PerceivedWidth:        perceived,
		ActualWidth:           actual,
		DeltaVsActual:         delta,
		ArmProminenceSeverity: severity,
		ArmProminenceRadius:   radius,
		ScoreFromDelta:        score,
		ShoulderWidthEffect:   shoulderWidthEffect[key],
	}
}
