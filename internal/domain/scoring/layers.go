package scoring

import (
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
)

// LayerModifications describes how a layer garment (jacket, coat, cardigan
// or vest) changes the outfit worn beneath it, with pairing notes for the
// body. The garment's category must already be classified.
func LayerModifications(g *domain.GarmentProfile, b *domain.BodyProfile) domain.LayerInfo {
	mods := []domain.LayerModification{}

	if g.ShoulderStructure == "padded" || g.ShoulderStructure == "structured" {
		mods = append(mods, domain.LayerModification{
			Type:              "cling_neutralization",
			Description:       "Structured layer reduces cling of underneath garment",
			ZonesAffected:     []string{"bust", "midsection", "upper_arm"},
			ScoreModification: "reduce_negative_by_70%",
		})
	}
	if g.JacketClosure == "open_front" {
		mods = append(mods, domain.LayerModification{
			Type:              "vertical_line_creation",
			Description:       "Open front creates elongating vertical line",
			ZonesAffected:     []string{"torso"},
			ScoreModification: "+0.3 to torso elongation",
		})
	}

	fit := g.FitCategory
	if fit == "" {
		fit = g.SilhouetteLabel
	}
	if isLoose(fit) || fit == "oversized" {
		mods = append(mods, domain.LayerModification{
			Type:              "volume_addition",
			Description:       "Loose layer adds visual volume",
			ZonesAffected:     []string{"shoulder", "bust", "torso"},
			ScoreModification: "body_type_dependent",
		})
	}
	if g.JacketLength != "" {
		mods = append(mods, domain.LayerModification{
			Type:              "proportion_break_override",
			Description:       fmt.Sprintf("Jacket hem at %s becomes the visual break point", g.JacketLength),
			ZonesAffected:     []string{"proportion"},
			ScoreModification: "replaces_base_proportion_break",
		})
	}

	return domain.LayerInfo{Modifications: mods, StylingNotes: layerStylingNotes(g, b)}
}

func layerStylingNotes(g *domain.GarmentProfile, b *domain.BodyProfile) []string {
	notes := []string{}

	switch g.Category {
	case domain.CategoryJacket, domain.CategoryCoat:
		switch b.Shape() {
		case domain.ShapePear:
			notes = append(notes, "Pair with wide-leg or straight pants to balance your silhouette")
			if g.JacketLength == "hip" {
				notes = append(notes, "Consider wearing open to create a vertical line past your hips")
			}
		case domain.ShapeApple:
			notes = append(notes, "Pair with a V-neck underneath for maximum elongation")
			if g.JacketClosure != "open_front" {
				notes = append(notes, "Wear unbuttoned to create a slimming vertical line")
			}
		case domain.ShapeInvertedTriangle:
			notes = append(notes, "Balance with wide-leg or flare pants")
		}
	case domain.CategoryCardigan:
		if b.HasGoal(domain.GoalLookTaller) {
			notes = append(notes, "Wear open with same-color base for an unbroken vertical line")
		}
		if b.HasGoal(domain.GoalHideMidsection) {
			notes = append(notes, "Longer cardigan provides coverage without structure")
		}
	}
	return notes
}
