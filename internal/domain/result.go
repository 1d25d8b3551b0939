package domain

// Outcome is what a principle scorer decides: either an applicable signed
// score with its reasoning, or a not-applicable verdict that is excluded
// from aggregation.
type Outcome struct {
	Score      float64
	Reasoning  string
	applicable bool
}

// Applicable builds an outcome that takes part in aggregation.
func Applicable(score float64, reasoning string) Outcome {
	return Outcome{Score: score, Reasoning: reasoning, applicable: true}
}

// NotApplicable builds an outcome for a scorer whose governing condition
// does not hold.
func NotApplicable(reasoning string) Outcome {
	return Outcome{Reasoning: reasoning}
}

func (o Outcome) IsApplicable() bool { return o.applicable }

// PrincipleResult is one principle scorer's contribution to a ScoreResult.
type PrincipleResult struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Reasoning  string  `json:"reasoning"`
	Weight     float64 `json:"weight"`
	Applicable bool    `json:"applicable"`
	Confidence float64 `json:"confidence"`
}

// Goal verdict labels.
const (
	VerdictPass    = "pass"
	VerdictFail    = "fail"
	VerdictCaution = "caution"
)

// GoalVerdict reports whether the garment helps or hurts one styling goal.
type GoalVerdict struct {
	Goal                 StylingGoal `json:"goal"`
	Verdict              string      `json:"verdict"`
	Score                float64     `json:"score"`
	SupportingPrinciples []string    `json:"supporting_principles"`
	Reasoning            string      `json:"reasoning"`
}

// ZoneScore averages the applicable principles touching one body zone.
type ZoneScore struct {
	Zone  string   `json:"zone"`
	Score float64  `json:"score"`
	Flags []string `json:"flags"`
}

// ExceptionTriggered is a fired fabric gate rule.
type ExceptionTriggered struct {
	ExceptionID    string  `json:"exception_id"`
	RuleOverridden string  `json:"rule_overridden"`
	Reason         string  `json:"reason"`
	Confidence     float64 `json:"confidence"`
}

// Fix is a suggested change that would improve the score.
type Fix struct {
	WhatToChange        string  `json:"what_to_change"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Priority            int     `json:"priority"`
}

// Band is an inclusive [Low, High] range of heights from the floor.
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// BodyAdjustedGarment is the garment's geometry projected onto the body.
type BodyAdjustedGarment struct {
	HemFromFloor         float64 `json:"hem_from_floor"`
	HemZone              string  `json:"hem_zone"`
	HemlineDangerZones   []Band  `json:"hemline_danger_zones"`
	HemlineSafeZone      *Band   `json:"hemline_safe_zone"`
	FabricRiseAdjustment float64 `json:"fabric_rise_adjustment"`

	SleeveEndpointPosition float64 `json:"sleeve_endpoint_position"`
	PerceivedArmWidth      float64 `json:"perceived_arm_width"`
	ArmWidthDelta          float64 `json:"arm_width_delta"`
	ArmProminenceSeverity  float64 `json:"arm_prominence_severity"`

	VisualWaistHeight     float64 `json:"visual_waist_height"`
	VisualLegRatio        float64 `json:"visual_leg_ratio"`
	ProportionImprovement float64 `json:"proportion_improvement"`

	TotalStretchPct      float64 `json:"total_stretch_pct"`
	EffectiveGSM         float64 `json:"effective_gsm"`
	SheenScore           float64 `json:"sheen_score"`
	PhotoRealityDiscount float64 `json:"photo_reality_discount"`
}

// NewBodyAdjustedGarment returns the neutral geometry snapshot.
func NewBodyAdjustedGarment() BodyAdjustedGarment {
	return BodyAdjustedGarment{
		ArmProminenceSeverity: 0.5,
		VisualLegRatio:        GoldenRatio,
		EffectiveGSM:          150.0,
		SheenScore:            0.10,
	}
}

// LayerModification describes how an outer layer changes the outfit beneath it.
type LayerModification struct {
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	ZonesAffected     []string `json:"zones_affected"`
	ScoreModification string   `json:"score_modification"`
}

// LayerInfo is the advisory output for jackets, coats, cardigans and vests.
type LayerInfo struct {
	Modifications []LayerModification `json:"layer_modifications"`
	StylingNotes  []string            `json:"styling_notes"`
}

// ContextAdjustment is one cultural, occasion, climate or age delta.
type ContextAdjustment struct {
	Key   string  `json:"key"`
	Delta float64 `json:"delta"`
}

// Verdict labels for the display score.
const (
	LabelThisIsIt   = "this_is_it"
	LabelSmartPick  = "smart_pick"
	LabelNotThisOne = "not_this_one"
)

// ScoreResult is the complete output of one scoring call.
type ScoreResult struct {
	OverallScore float64         `json:"overall_score"`
	CompositeRaw float64         `json:"composite_raw"`
	Confidence   float64         `json:"confidence"`
	Verdict      string          `json:"verdict"`
	BodyShape    BodyShape       `json:"body_shape"`
	Category     GarmentCategory `json:"category"`

	PrincipleScores []PrincipleResult    `json:"principle_scores"`
	GoalVerdicts    []GoalVerdict        `json:"goal_verdicts"`
	ZoneScores      map[string]ZoneScore `json:"zone_scores"`

	Exceptions         []ExceptionTriggered `json:"exceptions"`
	Fixes              []Fix                `json:"fixes"`
	ContextAdjustments []ContextAdjustment  `json:"context_adjustments"`

	BodyAdjusted *BodyAdjustedGarment `json:"body_adjusted"`

	ReasoningChain []string `json:"reasoning_chain"`

	LayerModifications *LayerInfo `json:"layer_modifications,omitempty"`
	StylingNotes       []string   `json:"styling_notes"`
}

// Principle returns the named principle result, if present.
func (r *ScoreResult) Principle(name string) (PrincipleResult, bool) {
	for _, p := range r.PrincipleScores {
		if p.Name == name {
			return p, true
		}
	}
	return PrincipleResult{}, false
}
