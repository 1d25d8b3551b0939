package scoring

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Generic scorers that do not apply to a category. Categories not listed
// run all sixteen.
var scorersToSkip = map[domain.GarmentCategory][]string{
	domain.CategoryTop:          {Hemline},
	domain.CategorySweatshirt:   {Hemline},
	domain.CategoryBodysuit:     {Hemline},
	domain.CategoryBottomPants:  {VNeckElongation, NecklineCompound, Sleeve, RiseElongation, Hemline},
	domain.CategoryBottomShorts: {VNeckElongation, NecklineCompound, Sleeve, RiseElongation, Hemline},
	domain.CategorySkirt:        {VNeckElongation, NecklineCompound, Sleeve, RiseElongation},
	domain.CategoryJacket:       {Hemline},
	domain.CategoryCardigan:     {Hemline},
	domain.CategoryVest:         {Hemline, Sleeve},
}

var extraScorers = map[domain.GarmentCategory][]string{
	domain.CategoryTop:          {TopHemline},
	domain.CategorySweatshirt:   {TopHemline},
	domain.CategoryBodysuit:     {TopHemline},
	domain.CategoryCardigan:     {TopHemline},
	domain.CategoryBottomPants:  {PantRise, LegShape},
	domain.CategoryBottomShorts: {PantRise, LegShape},
	domain.CategoryJacket:       {JacketScoring},
	domain.CategoryCoat:         {JacketScoring},
}

// SkippedScorers returns the generic scorer names skipped for a category.
func SkippedScorers(c domain.GarmentCategory) []string { return scorersToSkip[c] }

// ExtraScorers returns the category-specific scorer names for a category.
func ExtraScorers(c domain.GarmentCategory) []string { return extraScorers[c] }

// IsSkipped reports whether a generic scorer is skipped for a category.
func IsSkipped(c domain.GarmentCategory, name string) bool {
	for _, n := range scorersToSkip[c] {
		if n == name {
			return true
		}
	}
	return false
}

// IsLayerGarment reports whether a category is worn over other garments.
func IsLayerGarment(c domain.GarmentCategory) bool {
	switch c {
	case domain.CategoryJacket, domain.CategoryCoat, domain.CategoryCardigan, domain.CategoryVest:
		return true
	}
	return false
}

var titleKeywords = map[domain.GarmentCategory][]string{
	domain.CategoryDress: {
		"maxi dress", "mini dress", "midi dress", "shift dress",
		"wrap dress", "dress", "gown", "frock",
	},
	domain.CategoryTop: {
		"crop top", "halter top", "t-shirt", "blouse", "shirt", "tee",
		"cami", "camisole", "tank", "tunic", "henley", "polo", "top",
		"bustier", "corset top", "bralette",
	},
	domain.CategoryBottomPants: {
		"wide-leg", "straight-leg", "slim pant", "pants", "trouser",
		"jeans", "denim", "chino", "legging", "jogger", "cargo", "palazzo",
		"culottes", "sweatpant",
	},
	domain.CategoryBottomShorts: {"shorts", "bermuda", "hot pants"},
	domain.CategorySkirt: {
		"denim skirt", "mini skirt", "midi skirt", "maxi skirt", "pencil skirt",
		"a-line skirt", "pleated skirt", "skirt", "skort",
	},
	domain.CategoryJumpsuit: {"jumpsuit"},
	domain.CategoryRomper:   {"romper", "playsuit"},
	domain.CategoryJacket: {
		"denim jacket", "leather jacket", "cropped jacket",
		"jacket", "blazer", "bomber", "moto", "shacket",
	},
	domain.CategoryCoat: {
		"overcoat", "trench", "parka", "peacoat", "puffer",
		"down jacket", "rain jacket", "coat",
		"anorak", "cape", "poncho",
	},
	domain.CategorySweatshirt: {"sweatshirt", "hoodie", "pullover", "fleece"},
	domain.CategoryCardigan:   {"cardigan", "kimono", "duster"},
	domain.CategoryVest:       {"vest", "gilet", "waistcoat"},
	domain.CategoryBodysuit:   {"bodysuit"},
	domain.CategoryActivewear: {"sports bra", "yoga pants", "workout top", "athletic"},
	domain.CategoryLoungewear: {"pajama", "robe", "loungewear", "nightgown", "sleepwear"},
	domain.CategorySaree:      {"saree", "sari"},
	domain.CategorySalwarKameez: {
		"salwar", "kameez", "kurta", "kurti", "anarkali", "churidar",
	},
	domain.CategoryLehenga: {"lehenga", "lehnga", "chaniya choli"},
}

// titleHaystack lowercases the title and appends a CamelCase-split copy so
// "WrapDress" matches "wrap dress".
func titleHaystack(title string) string {
	var split []string
	for _, word := range strings.Fields(title) {
		split = append(split, camelcase.Split(word)...)
	}
	return strings.ToLower(title) + " | " + strings.ToLower(strings.Join(split, " "))
}

// Classify infers the garment category. The longest title keyword wins
// across all categories; without a title match, rise plus leg shape means
// pants, a skirt construction means skirt, and a jacket closure means
// jacket. Otherwise the profile's own category stands.
func Classify(g *domain.GarmentProfile) domain.GarmentCategory {
	if strings.TrimSpace(g.Title) != "" {
		hay := titleHaystack(g.Title)
		var best string
		var bestCat domain.GarmentCategory
		for cat, keywords := range titleKeywords {
			for _, kw := range keywords {
				if !strings.Contains(hay, kw) {
					continue
				}
				if len(kw) > len(best) || (len(kw) == len(best) && kw > best) {
					best, bestCat = kw, cat
				}
			}
		}
		if best != "" {
			return bestCat
		}
	}

	switch {
	case g.Rise != "" && g.LegShape != "":
		return domain.CategoryBottomPants
	case g.SkirtConstruction != "":
		return domain.CategorySkirt
	case g.JacketClosure != "":
		return domain.CategoryJacket
	}
	return g.Category
}
