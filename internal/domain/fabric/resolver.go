package fabric

import "github.com/kridha-admin/stydev/internal/domain"

// Lookup finds a named fabric's typical properties.
type Lookup interface {
	Fabric(name string) (domain.FabricSpec, bool)
}

// Resolved is the behavioral view of a garment's fabric.
type Resolved struct {
	TotalStretchPct      float64 `json:"total_stretch_pct"`
	EffectiveGSM         float64 `json:"effective_gsm"`
	SheenScore           float64 `json:"sheen_score"`
	DrapeCoefficient     float64 `json:"drape_coefficient"`
	ClingRiskBase        float64 `json:"cling_risk_base"`
	IsStructured         bool    `json:"is_structured"`
	PhotoRealityDiscount float64 `json:"photo_reality_discount"`
	SurfaceFriction      float64 `json:"surface_friction"`
}

// Resolve converts raw fabric attributes into stretch, weight, sheen, drape
// and cling. Unknown constructions, fibers and finishes fall back to
// defaults. lookup may be nil.
func Resolve(g *domain.GarmentProfile, lookup Lookup) Resolved {
	var spec domain.FabricSpec
	var found bool
	if g.FabricName != "" && lookup != nil {
		spec, found = lookup.Fabric(g.FabricName)
	}

	mult, ok := domain.ConstructionStretchMultiplier[g.Construction]
	if !ok {
		mult = 2.0
	}
	stretch := g.ElastanePct * mult
	if found && g.ElastanePct == 0 && spec.TypicalStretch > 0 {
		stretch = spec.TypicalStretch
	}

	fiberMult, ok := domain.FiberGSMMultiplier[g.PrimaryFiber]
	if !ok {
		fiberMult = 1.0
	}
	gsm := g.GSMEstimated * fiberMult

	sheen, ok := domain.SurfaceSheen[g.Surface]
	if !ok {
		sheen = 0.10
	}

	gsmFactor := max(0, 1.0-gsm/300.0)
	frictionFactor := max(0, 1.0-g.SurfaceFriction)
	cling := min(1.0, (stretch/20.0+gsmFactor+frictionFactor)/3.0)

	return Resolved{
		TotalStretchPct:  stretch,
		EffectiveGSM:     gsm,
		SheenScore:       sheen,
		DrapeCoefficient: g.Drape * 10.0,
		ClingRiskBase:    cling,
		IsStructured:     g.IsStructured || g.HasLining,
		SurfaceFriction:  g.SurfaceFriction,
	}
}
