package scoring

import (
	"fmt"
	"strings"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
)

// Principle names. These double as keys for weights, goal maps, zone
// mapping and fix suggestions.
const (
	HStripeThinning  = "H-Stripe Thinning"
	DarkSlimming     = "Dark/Black Slimming"
	RiseElongation   = "Rise Elongation"
	ALineBalance     = "A-Line Balance"
	TentConcealment  = "Tent Concealment"
	ColorBreak       = "Color Break"
	BodyconMapping   = "Bodycon Mapping"
	MatteZone        = "Matte Zone"
	VNeckElongation  = "V-Neck Elongation"
	MonochromeColumn = "Monochrome Column"
	Hemline          = "Hemline"
	Sleeve           = "Sleeve"
	WaistPlacement   = "Waist Placement"
	ColorValue       = "Color Value"
	FabricZone       = "Fabric Zone"
	NecklineCompound = "Neckline Compound"
	TopHemline       = "Top Hemline"
	PantRise         = "Pant Rise"
	LegShape         = "Leg Shape"
	JacketScoring    = "Jacket Scoring"
)

// Input is everything a principle scorer may look at. Shape and Fabric are
// computed once per request.
type Input struct {
	Garment *domain.GarmentProfile
	Body    *domain.BodyProfile
	Shape   domain.BodyShape
	Fabric  fabric.Resolved
}

// NewInput resolves the body shape and fabric for a garment/body pair.
func NewInput(g *domain.GarmentProfile, b *domain.BodyProfile, lookup fabric.Lookup) Input {
	return Input{Garment: g, Body: b, Shape: b.Shape(), Fabric: fabric.Resolve(g, lookup)}
}

// Func scores one principle.
type Func func(in Input) domain.Outcome

// Scorer is a named principle with its base weight.
type Scorer struct {
	Name   string
	Weight float64
	Fn     Func
}

// ScorerError reports a scorer that panicked.
type ScorerError struct {
	Principle string
	Cause     any
}

func (e *ScorerError) Error() string {
	return fmt.Sprintf("scorer %q failed: %v", e.Principle, e.Cause)
}

// Run executes the scorer. A panic is recovered into a *ScorerError and an
// applicable zero outcome whose reasoning starts with "ERROR:".
func (s Scorer) Run(in Input) (out domain.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ScorerError{Principle: s.Name, Cause: r}
			out = domain.Applicable(0, fmt.Sprintf("ERROR: %v", r))
		}
	}()
	return s.Fn(in), nil
}

// BaseScorers returns the sixteen principle scorers in evaluation order.
func BaseScorers() []Scorer {
	return []Scorer{
		{HStripeThinning, 0.10, ScoreHorizontalStripes},
		{DarkSlimming, 0.08, ScoreDarkSlimming},
		{RiseElongation, 0.08, ScoreRiseElongation},
		{ALineBalance, 0.10, ScoreALineBalance},
		{TentConcealment, 0.12, ScoreTentConcealment},
		{ColorBreak, 0.08, ScoreColorBreak},
		{BodyconMapping, 0.12, ScoreBodyconMapping},
		{MatteZone, 0.06, ScoreMatteZone},
		{VNeckElongation, 0.10, ScoreVNeckElongation},
		{MonochromeColumn, 0.06, ScoreMonochromeColumn},
		{Hemline, 0.18, ScoreHemline},
		{Sleeve, 0.15, ScoreSleeve},
		{WaistPlacement, 0.15, ScoreWaistPlacement},
		{ColorValue, 0.08, ScoreColorValue},
		{FabricZone, 0.10, ScoreFabricZone},
		{NecklineCompound, 0.12, ScoreNecklineCompound},
	}
}

// TypeScorers returns the category-specific scorers, keyed by name.
func TypeScorers() map[string]Scorer {
	return map[string]Scorer{
		TopHemline:    {TopHemline, 0.15, ScoreTopHemline},
		PantRise:      {PantRise, 0.18, ScorePantRise},
		LegShape:      {LegShape, 0.15, ScoreLegShape},
		JacketScoring: {JacketScoring, 0.18, ScoreJacket},
	}
}

// reasons accumulates a pipe-delimited audit trail.
type reasons []string

func (r *reasons) add(format string, args ...any) {
	*r = append(*r, fmt.Sprintf(format, args...))
}

func (r reasons) String() string { return strings.Join(r, " | ") }

func (r reasons) applicable(score float64) domain.Outcome {
	return domain.Applicable(domain.Clamp(score), r.String())
}
