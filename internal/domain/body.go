package domain

import (
	"math"
	"slices"
)

// BodyProfile is one user's measurements for a single scoring request.
// Lengths and circumferences are in inches.
type BodyProfile struct {
	Height    float64 `json:"height" yaml:"height" validate:"min=48,max=90"`
	Bust      float64 `json:"bust" yaml:"bust" validate:"gt=0"`
	Underbust float64 `json:"underbust" yaml:"underbust" validate:"gte=0"`
	Waist     float64 `json:"waist" yaml:"waist" validate:"gt=0"`
	Hip       float64 `json:"hip" yaml:"hip" validate:"gt=0"`

	ShoulderWidth     float64 `json:"shoulder_width" yaml:"shoulder_width"`
	NeckLength        float64 `json:"neck_length" yaml:"neck_length"`
	NeckCircumference float64 `json:"neck_circumference" yaml:"neck_circumference"`

	TorsoLength     float64 `json:"torso_length" yaml:"torso_length"`
	LegLengthVisual float64 `json:"leg_length_visual" yaml:"leg_length_visual"`
	Inseam          float64 `json:"inseam" yaml:"inseam"`

	ArmLength            float64 `json:"arm_length" yaml:"arm_length"`
	CUpperArmMax         float64 `json:"c_upper_arm_max" yaml:"c_upper_arm_max"`
	CUpperArmMaxPosition float64 `json:"c_upper_arm_max_position" yaml:"c_upper_arm_max_position"`
	CElbow               float64 `json:"c_elbow" yaml:"c_elbow"`
	CForearmMax          float64 `json:"c_forearm_max" yaml:"c_forearm_max"`
	CForearmMin          float64 `json:"c_forearm_min" yaml:"c_forearm_min"`
	CForearmMinPosition  float64 `json:"c_forearm_min_position" yaml:"c_forearm_min_position"`
	CWrist               float64 `json:"c_wrist" yaml:"c_wrist"`

	HKnee     float64 `json:"h_knee" yaml:"h_knee"`
	HCalfMax  float64 `json:"h_calf_max" yaml:"h_calf_max"`
	HCalfMin  float64 `json:"h_calf_min" yaml:"h_calf_min"`
	HAnkle    float64 `json:"h_ankle" yaml:"h_ankle"`
	CThighMax float64 `json:"c_thigh_max" yaml:"c_thigh_max"`
	CCalfMax  float64 `json:"c_calf_max" yaml:"c_calf_max"`
	CCalfMin  float64 `json:"c_calf_min" yaml:"c_calf_min"`
	CAnkle    float64 `json:"c_ankle" yaml:"c_ankle"`

	BustProjection  float64 `json:"bust_projection" yaml:"bust_projection"`
	BellyProjection float64 `json:"belly_projection" yaml:"belly_projection"`
	HipProjection   float64 `json:"hip_projection" yaml:"hip_projection"`

	BodyComposition   string        `json:"body_composition" yaml:"body_composition"`
	TissueFirmness    float64       `json:"tissue_firmness" yaml:"tissue_firmness" validate:"min=0,max=1"`
	SkinToneL         float64       `json:"skin_tone_l" yaml:"skin_tone_l" validate:"min=0,max=100"`
	ContourSmoothness float64       `json:"contour_smoothness" yaml:"contour_smoothness" validate:"min=0,max=1"`
	SkinUndertone     SkinUndertone `json:"skin_undertone" yaml:"skin_undertone"`
	SkinDarkness      float64       `json:"skin_darkness" yaml:"skin_darkness" validate:"min=0,max=1"`

	// Zone concern levels, 0 = none, 1 = primary concern.
	BellyZone    float64 `json:"belly_zone" yaml:"belly_zone" validate:"min=0,max=1"`
	HipZone      float64 `json:"hip_zone" yaml:"hip_zone" validate:"min=0,max=1"`
	UpperArmZone float64 `json:"upper_arm_zone" yaml:"upper_arm_zone" validate:"min=0,max=1"`
	BustZone     float64 `json:"bust_zone" yaml:"bust_zone" validate:"min=0,max=1"`

	IsAthletic bool `json:"is_athletic" yaml:"is_athletic"`

	StylingGoals    []StylingGoal `json:"styling_goals" yaml:"styling_goals"`
	StylePhilosophy string        `json:"style_philosophy" yaml:"style_philosophy"`

	Climate     Climate     `json:"climate" yaml:"climate"`
	WearContext WearContext `json:"wear_context" yaml:"wear_context"`

	ZoneGoals ZoneGoals `json:"zone_goals" yaml:"zone_goals"`
}

// ZoneGoals holds optional directional goals per body zone ("minimize", "enhance", ...).
type ZoneGoals struct {
	Bust      string `json:"bust,omitempty" yaml:"bust,omitempty"`
	Waist     string `json:"waist,omitempty" yaml:"waist,omitempty"`
	Belly     string `json:"belly,omitempty" yaml:"belly,omitempty"`
	Hip       string `json:"hip,omitempty" yaml:"hip,omitempty"`
	Arm       string `json:"arm,omitempty" yaml:"arm,omitempty"`
	Neck      string `json:"neck,omitempty" yaml:"neck,omitempty"`
	Legs      string `json:"legs,omitempty" yaml:"legs,omitempty"`
	Shoulders string `json:"shoulders,omitempty" yaml:"shoulders,omitempty"`
}

// DefaultBodyProfile returns the reference body every request starts from.
func DefaultBodyProfile() BodyProfile {
	return BodyProfile{
		Height: 66.0, Bust: 36.0, Underbust: 32.0, Waist: 30.0, Hip: 38.0,
		ShoulderWidth: 15.5, NeckLength: 3.5, NeckCircumference: 13.0,
		TorsoLength: 15.0, LegLengthVisual: 41.0, Inseam: 30.0,
		ArmLength: 23.0, CUpperArmMax: 12.0, CUpperArmMaxPosition: 3.0,
		CElbow: 10.0, CForearmMax: 9.5, CForearmMin: 8.5, CForearmMinPosition: 17.0,
		CWrist: 6.5,
		HKnee:  18.0, HCalfMax: 14.0, HCalfMin: 10.0, HAnkle: 4.0,
		CThighMax: 22.0, CCalfMax: 14.5, CCalfMin: 9.0, CAnkle: 8.5,
		BustProjection: 2.0, BellyProjection: 1.0, HipProjection: 1.5,
		BodyComposition: "average", TissueFirmness: 0.5, SkinToneL: 50.0,
		ContourSmoothness: 0.5, SkinUndertone: UndertoneNeutral, SkinDarkness: 0.5,
		StylePhilosophy: "balance",
		Climate:         ClimateTemperate,
		WearContext:     WearGeneral,
	}
}

// WHR is the waist-to-hip ratio.
func (b *BodyProfile) WHR() float64 {
	if b.Hip > 0 {
		return b.Waist / b.Hip
	}
	return 0.80
}

// BustDifferential approximates cup size as bust minus underbust.
func (b *BodyProfile) BustDifferential() float64 { return b.Bust - b.Underbust }

func (b *BodyProfile) ShoulderHipDiff() float64 { return b.ShoulderWidth - b.Hip/math.Pi }

// LegRatio is visual leg length over height; the golden target is 0.618.
func (b *BodyProfile) LegRatio() float64 {
	if b.Height > 0 {
		return b.LegLengthVisual / b.Height
	}
	return 0.62
}

func (b *BodyProfile) TorsoLegRatio() float64 {
	if b.LegLengthVisual > 0 {
		return b.TorsoLength / b.LegLengthVisual
	}
	return 0.37
}

func (b *BodyProfile) IsPetite() bool   { return b.Height < 63.0 }
func (b *BodyProfile) IsTall() bool     { return b.Height > 68.0 }
func (b *BodyProfile) IsPlusSize() bool { return b.Bust > 42 || b.Hip > 44 }

// Shape classifies the body from bust/hip waist differentials and the
// shoulder-to-hip ratio, using hip/π as the hip width proxy.
func (b *BodyProfile) Shape() BodyShape {
	bwd := b.Bust - b.Waist
	hwd := b.Hip - b.Waist
	shr := 1.0
	if b.Hip > 0 {
		shr = b.ShoulderWidth / (b.Hip / math.Pi)
	}

	switch {
	case bwd >= 7 && hwd >= 7 && shr >= 0.85 && shr <= 1.15:
		return ShapeHourglass
	case hwd >= 7 && hwd > bwd+2 && shr < 1.05:
		return ShapePear
	case bwd < 5 && hwd < 5 && b.WHR() > 0.85:
		return ShapeApple
	case b.ShoulderHipDiff() > 3:
		return ShapeInvertedTriangle
	default:
		return ShapeRectangle
	}
}

// Tags returns every classification label the body qualifies for; unlike
// Shape, several may apply at once.
func (b *BodyProfile) Tags() []string {
	var tags []string
	if b.Height < 63 {
		tags = append(tags, "petite")
	}
	if b.Height > 68 {
		tags = append(tags, "tall")
	}
	if b.Hip-b.Bust >= 3 && b.WHR() < 0.78 {
		tags = append(tags, "pear")
	}
	if b.WHR() > 0.85 {
		tags = append(tags, "apple")
	}
	if math.Abs(b.Bust-b.Hip) <= 2 && b.BustDifferential() >= 6 && b.WHR() <= 0.75 {
		tags = append(tags, "hourglass")
	}
	if math.Abs(b.Bust-b.Waist) <= 4 && math.Abs(b.Waist-b.Hip) <= 4 {
		tags = append(tags, "rectangle")
	}
	if b.ShoulderHipDiff() > 3 {
		tags = append(tags, "inverted_triangle")
	}
	if b.IsPlusSize() {
		tags = append(tags, "plus_size")
	}
	return tags
}

// TorsoScore ranges roughly -2 (very short) to +2 (very long); each 0.02 of
// torso/height ratio away from 0.23 is one point.
func (b *BodyProfile) TorsoScore() float64 {
	ratio := 0.23
	if b.Height > 0 {
		ratio = b.TorsoLength / b.Height
	}
	return (ratio - 0.23) / 0.02
}

func (b *BodyProfile) CalfProminence() float64 {
	if b.CCalfMin > 0 {
		return b.CCalfMax / b.CCalfMin
	}
	return 1.0
}

// ArmProminenceCombined averages upper-arm/wrist and upper-arm/forearm ratios.
func (b *BodyProfile) ArmProminenceCombined() float64 {
	if b.CWrist <= 0 || b.CForearmMin <= 0 {
		return 1.5
	}
	return (b.CUpperArmMax/b.CWrist + b.CUpperArmMax/b.CForearmMin) / 2
}

// HasGoal reports whether any of goals is among the body's styling goals.
func (b *BodyProfile) HasGoal(goals ...StylingGoal) bool {
	for _, g := range goals {
		if slices.Contains(b.StylingGoals, g) {
			return true
		}
	}
	return false
}
