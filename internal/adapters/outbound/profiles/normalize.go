package profiles

import (
	"log/slog"
	"strings"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Normalize folds every enum and token field to its canonical form.
// Unknown enum values are replaced by the profile default and logged;
// unknown styling goals are dropped.
func (l *Loader) Normalize(req *domain.ScoreRequest) {
	b, g := &req.Body, &req.Garment
	bd, gd := domain.DefaultBodyProfile(), domain.DefaultGarmentProfile()

	enum(l.logger, "body.skin_undertone", &b.SkinUndertone, domain.ParseSkinUndertone, bd.SkinUndertone)
	enum(l.logger, "body.climate", &b.Climate, domain.ParseClimate, bd.Climate)
	enum(l.logger, "body.wear_context", &b.WearContext, domain.ParseWearContext, bd.WearContext)
	b.StylingGoals = l.goals(b.StylingGoals)

	enum(l.logger, "garment.construction", &g.Construction, domain.ParseFabricConstruction, gd.Construction)
	enum(l.logger, "garment.surface", &g.Surface, domain.ParseSurfaceFinish, gd.Surface)
	enum(l.logger, "garment.silhouette", &g.Silhouette, domain.ParseSilhouette, gd.Silhouette)
	enum(l.logger, "garment.sleeve_type", &g.SleeveType, domain.ParseSleeveType, gd.SleeveType)
	enum(l.logger, "garment.neckline", &g.Neckline, domain.ParseNecklineType, gd.Neckline)
	enum(l.logger, "garment.category", &g.Category, domain.ParseGarmentCategory, gd.Category)
	enum(l.logger, "garment.garment_layer", &g.GarmentLayer, domain.ParseGarmentLayer, gd.GarmentLayer)
	enum(l.logger, "garment.top_hem_behavior", &g.TopHemBehavior, domain.ParseTopHemBehavior, "")
	enum(l.logger, "garment.brand_tier", &g.BrandTier, domain.ParseBrandTier, domain.TierMidMarket)

	for _, s := range []*string{
		&g.FabricName, &g.WaistPosition, &g.HemPosition, &g.ColorTemperature,
		&g.PatternType, &g.PatternScale, &g.SilhouetteLabel, &g.Zone,
		&g.TopHemLength, &g.Rise, &g.LegShape, &g.LegOpeningWidth, &g.BottomLength,
		&g.JacketClosure, &g.JacketLength, &g.ShoulderStructure, &g.SkirtConstruction,
		&b.BodyComposition, &b.StylePhilosophy,
	} {
		*s = domain.NormalizeToken(*s)
	}
	g.PrimaryFiber = strings.ToLower(strings.TrimSpace(g.PrimaryFiber))
	g.SecondaryFiber = strings.ToLower(strings.TrimSpace(g.SecondaryFiber))
}

func enum[T ~string](logger *slog.Logger, field string, v *T, parse func(string) (T, bool), def T) {
	if *v == "" {
		return
	}
	if p, ok := parse(string(*v)); ok {
		*v = p
		return
	}
	logger.Warn("unknown enum value, using default", "field", field, "value", string(*v), "default", string(def))
	*v = def
}

func (l *Loader) goals(in []domain.StylingGoal) []domain.StylingGoal {
	var out []domain.StylingGoal
	seen := make(map[domain.StylingGoal]bool, len(in))
	for _, raw := range in {
		g, ok := domain.ParseStylingGoal(string(raw))
		if !ok {
			l.logger.Warn("unknown styling goal, ignoring", "value", string(raw))
			continue
		}
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
