package fabric

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

// RunGates evaluates every fabric gate rule. Rules are independent and any
// number may fire; the result is in rule order.
func RunGates(g *domain.GarmentProfile, b *domain.BodyProfile, r Resolved, cfg domain.EngineConfig) []domain.ExceptionTriggered {
	var out []domain.ExceptionTriggered
	fire := func(id, overridden, reason string) {
		out = append(out, domain.ExceptionTriggered{
			ExceptionID:    id,
			RuleOverridden: overridden,
			Reason:         reason,
			Confidence:     cfg.GateConfidenceFor(id),
		})
	}

	if g.IsDark() && r.SheenScore > 0.50 {
		fire(domain.GateDarkShiny, "dark_slimming", fmt.Sprintf(
			"Dark (L=%.2f) + high sheen (SI=%.2f): sheen amplifies body contours, "+
				"partially negating dark slimming benefit",
			g.ColorLightness, r.SheenScore))
	}

	if g.Silhouette == domain.SilhouetteALine && r.DrapeCoefficient >= 65 {
		fire(domain.GateALineShelf, "aline_balance", fmt.Sprintf(
			"A-line + stiff fabric (DC=%.0f%%): fabric won't drape, creates shelf effect at hips",
			r.DrapeCoefficient))
	}

	if g.Neckline == domain.NecklineWrap && b.BustDifferential() >= 6 && r.SurfaceFriction < 0.3 {
		fire(domain.GateWrapGapping, "wrap_neckline", fmt.Sprintf(
			"Wrap neckline + large bust (BD=%.1f\") + slippery fabric (friction=%.2f): high gaping risk",
			b.BustDifferential(), r.SurfaceFriction))
	}

	if r.IsStructured {
		fire(domain.GateStructured, "negative_penalties", fmt.Sprintf(
			"Structured garment (boning/lining): negative penalties reduced ~%.0f%%; "+
				"construction provides body sculpting",
			(1-cfg.StructuredPenaltyReduction)*100))
	}

	if r.DrapeCoefficient > 60 && b.BellyZone > 0.3 &&
		g.Silhouette != domain.SilhouetteFitted && g.Silhouette != domain.SilhouetteSemiFitted {
		fire(domain.GateFluidAppleBelly, "tent_concealment", fmt.Sprintf(
			"Fluid/drapey fabric (DC=%.0f%%) on belly concern zone (%.2f): "+
				"fabric clings to belly contour instead of skimming",
			r.DrapeCoefficient, b.BellyZone))
	}

	if r.SheenScore < 0.30 && r.ClingRiskBase > 0.6 &&
		(b.IsPlusSize() || b.HipZone > 0.5 || b.BellyZone > 0.5) {
		fire(domain.GateClingTrap, "matte_zone", fmt.Sprintf(
			"Matte (SI=%.2f) but clingy (cling=%.2f): creates second-skin effect on curves, "+
				"overriding matte benefit",
			r.SheenScore, r.ClingRiskBase))
	}

	return out
}

// PenaltyReduction returns the fraction of every negative principle score
// that survives: reduction when the structured gate fired, 1 otherwise.
func PenaltyReduction(exceptions []domain.ExceptionTriggered, reduction float64) float64 {
	for _, ex := range exceptions {
		if ex.ExceptionID == domain.GateStructured {
			return reduction
		}
	}
	return 1.0
}
