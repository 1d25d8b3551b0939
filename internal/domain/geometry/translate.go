package geometry

import (
	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
)

var hemCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:    true,
	domain.CategorySkirt:    true,
	domain.CategoryJumpsuit: true,
	domain.CategoryRomper:   true,
	domain.CategoryCoat:     true,
}

var sleeveCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:        true,
	domain.CategoryTop:          true,
	domain.CategoryJumpsuit:     true,
	domain.CategoryRomper:       true,
	domain.CategoryJacket:       true,
	domain.CategoryCoat:         true,
	domain.CategorySweatshirt:   true,
	domain.CategoryCardigan:     true,
	domain.CategoryBodysuit:     true,
	domain.CategoryLoungewear:   true,
	domain.CategoryActivewear:   true,
	domain.CategorySaree:        true,
	domain.CategorySalwarKameez: true,
	domain.CategoryLehenga:      true,
}

var waistCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:        true,
	domain.CategoryJumpsuit:     true,
	domain.CategoryRomper:       true,
	domain.CategoryCoat:         true,
	domain.CategoryBottomPants:  true,
	domain.CategoryBottomShorts: true,
	domain.CategorySkirt:        true,
}

// Translate projects the garment onto the body. Hem, sleeve and waist
// geometry run only for categories where they interact with the body;
// fabric resolution always runs. lookup may be nil.
func Translate(g *domain.GarmentProfile, b *domain.BodyProfile, lookup fabric.Lookup) domain.BodyAdjustedGarment {
	out := domain.NewBodyAdjustedGarment()
	out.HemlineDangerZones = []domain.Band{}

	if hemCategories[g.Category] {
		hem := TranslateHemline(g, b)
		out.HemFromFloor = hem.HemFromFloor
		out.HemZone = hem.HemZone
		out.HemlineDangerZones = hem.DangerZones()
		out.HemlineSafeZone = hem.SafeZone
		out.FabricRiseAdjustment = hem.FabricRise
	}

	if sleeveCategories[g.Category] {
		sl := TranslateSleeve(g, b)
		out.SleeveEndpointPosition = sl.EndpointPosition
		out.PerceivedArmWidth = sl.PerceivedWidth
		out.ArmWidthDelta = sl.DeltaVsActual
		out.ArmProminenceSeverity = sl.ArmProminenceSeverity
	}

	if waistCategories[g.Category] {
		w := TranslateWaistline(g, b)
		out.VisualWaistHeight = w.VisualWaistHeight
		out.VisualLegRatio = w.VisualLegRatio
		out.ProportionImprovement = w.ProportionImprovement
	}

	r := fabric.Resolve(g, lookup)
	out.TotalStretchPct = r.TotalStretchPct
	out.EffectiveGSM = r.EffectiveGSM
	out.SheenScore = r.SheenScore
	out.PhotoRealityDiscount = fabric.PhotoRealityDiscount(g, b)
	return out
}
