package scoring

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

var principleZones = map[string][]string{
	HStripeThinning:  {"torso"},
	DarkSlimming:     {"torso"},
	RiseElongation:   {"waist"},
	ALineBalance:     {"hip"},
	TentConcealment:  {"torso", "hip"},
	ColorBreak:       {"waist"},
	BodyconMapping:   {"torso", "hip", "thigh"},
	MatteZone:        {"torso", "hip"},
	VNeckElongation:  {"bust", "shoulder"},
	MonochromeColumn: {"torso"},
	Hemline:          {"knee", "calf", "ankle"},
	Sleeve:           {"upper_arm", "shoulder"},
	WaistPlacement:   {"waist"},
	ColorValue:       {"torso"},
	FabricZone:       {"torso", "hip"},
	NecklineCompound: {"bust"},
	TopHemline:       {"hip", "torso"},
	PantRise:         {"waist"},
	LegShape:         {"hip", "thigh"},
	JacketScoring:    {"shoulder", "waist", "hip", "torso"},
}

// zoneFlagThreshold marks principles that pull a zone down noticeably.
const zoneFlagThreshold = -0.20

// ZoneScores averages applicable principle scores per body zone and flags
// principles scoring below -0.20.
func ZoneScores(results []domain.PrincipleResult) map[string]domain.ZoneScore {
	type acc struct {
		sum   float64
		n     int
		flags []string
	}
	zones := map[string]*acc{}
	for _, p := range results {
		if !p.Applicable {
			continue
		}
		for _, z := range principleZones[p.Name] {
			a, ok := zones[z]
			if !ok {
				a = &acc{flags: []string{}}
				zones[z] = a
			}
			a.sum += p.Score
			a.n++
			if p.Score < zoneFlagThreshold {
				a.flags = append(a.flags, fmt.Sprintf("%s: %+.2f", p.Name, p.Score))
			}
		}
	}

	out := make(map[string]domain.ZoneScore, len(zones))
	for z, a := range zones {
		out[z] = domain.ZoneScore{Zone: z, Score: domain.Round(a.sum/float64(a.n), 3), Flags: a.flags}
	}
	return out
}
