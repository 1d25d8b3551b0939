package profiles

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/kridha-admin/stydev/internal/domain"
)

var (
	fastFashionBrands = []string{
		"h&m", "zara", "shein", "forever 21", "primark", "boohoo",
		"fashion nova", "romwe", "asos",
	}
	luxuryBrands = []string{
		"gucci", "prada", "chanel", "louis vuitton", "dior", "versace",
		"balenciaga", "valentino", "saint laurent", "burberry",
	}
	premiumBrands = []string{
		"coach", "michael kors", "kate spade", "tory burch", "ted baker",
		"reiss", "sandro", "maje", "allsaints",
	}
)

var priceRe = regexp.MustCompile(`[\d,.]+`)

// InferBrandTier places a garment in a market tier by known brand name,
// then by price bracket. With neither, the tier is mid-market.
func InferBrandTier(brand, price string) domain.BrandTier {
	name := strings.ToLower(strings.TrimSpace(brand))
	switch {
	case name == "":
	case slices.Contains(fastFashionBrands, name):
		return domain.TierFastFashion
	case slices.Contains(luxuryBrands, name):
		return domain.TierLuxury
	case slices.Contains(premiumBrands, name):
		return domain.TierPremium
	}

	m := priceRe.FindString(price)
	if m == "" {
		return domain.TierMidMarket
	}
	p, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return domain.TierMidMarket
	}
	switch {
	case p < 30:
		return domain.TierFastFashion
	case p < 80:
		return domain.TierMassMarket
	case p < 200:
		return domain.TierMidMarket
	case p < 500:
		return domain.TierPremium
	default:
		return domain.TierLuxury
	}
}

var sizeLabels = map[string]int{
	"XXS": 0, "XS": 0, "S": 4, "M": 8, "L": 12,
	"XL": 16, "XXL": 18, "XXXL": 20,
}

// ModelSize converts a letter or numeric US size label to a numeric size.
// Unreadable labels read as size 2.
func ModelSize(label string) int {
	s := strings.ToUpper(strings.TrimSpace(label))
	if n, ok := sizeLabels[s]; ok {
		return n
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return 2
}
