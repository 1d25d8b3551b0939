package domain

import "strings"

// BodyShape is the silhouette class derived from body measurements.
type BodyShape string

const (
	ShapePear             BodyShape = "pear"
	ShapeApple            BodyShape = "apple"
	ShapeHourglass        BodyShape = "hourglass"
	ShapeRectangle        BodyShape = "rectangle"
	ShapeInvertedTriangle BodyShape = "inverted_triangle"
)

// StylingGoal is a user-stated outcome the garment is judged against.
type StylingGoal string

const (
	GoalLookTaller       StylingGoal = "look_taller"
	GoalHighlightWaist   StylingGoal = "highlight_waist"
	GoalHideMidsection   StylingGoal = "hide_midsection"
	GoalSlimHips         StylingGoal = "slim_hips"
	GoalLookProportional StylingGoal = "look_proportional"
	GoalMinimizeArms     StylingGoal = "minimize_arms"
	GoalSlimming         StylingGoal = "slimming"
	GoalConcealment      StylingGoal = "concealment"
	GoalEmphasis         StylingGoal = "emphasis"
	GoalBalance          StylingGoal = "balance"
)

// ValidStylingGoals enumerates all recognized goals.
var ValidStylingGoals = []StylingGoal{
	GoalLookTaller, GoalHighlightWaist, GoalHideMidsection, GoalSlimHips,
	GoalLookProportional, GoalMinimizeArms, GoalSlimming, GoalConcealment,
	GoalEmphasis, GoalBalance,
}

type SkinUndertone string

const (
	UndertoneWarm    SkinUndertone = "warm"
	UndertoneCool    SkinUndertone = "cool"
	UndertoneNeutral SkinUndertone = "neutral"
)

type FabricConstruction string

const (
	ConstructionWoven      FabricConstruction = "woven"
	ConstructionKnit       FabricConstruction = "knit"
	ConstructionKnitRib    FabricConstruction = "knit_rib"
	ConstructionKnitDouble FabricConstruction = "knit_double"
	ConstructionKnitJersey FabricConstruction = "knit_jersey"
)

type SurfaceFinish string

const (
	SurfaceDeepMatte     SurfaceFinish = "deep_matte"
	SurfaceMatte         SurfaceFinish = "matte"
	SurfaceSubtleSheen   SurfaceFinish = "subtle_sheen"
	SurfaceModerateSheen SurfaceFinish = "moderate_sheen"
	SurfaceHighShine     SurfaceFinish = "high_shine"
	SurfaceMaximumShine  SurfaceFinish = "maximum_shine"
	SurfaceCrushed       SurfaceFinish = "crushed"
)

type Silhouette string

const (
	SilhouetteFitted        Silhouette = "fitted"
	SilhouetteSemiFitted    Silhouette = "semi_fitted"
	SilhouetteALine         Silhouette = "a_line"
	SilhouetteEmpire        Silhouette = "empire"
	SilhouetteWrap          Silhouette = "wrap"
	SilhouetteShift         Silhouette = "shift"
	SilhouettePeplum        Silhouette = "peplum"
	SilhouetteFitAndFlare   Silhouette = "fit_and_flare"
	SilhouetteOversized     Silhouette = "oversized"
	SilhouetteArchitectural Silhouette = "architectural"
)

type SleeveType string

const (
	SleeveSleeveless   SleeveType = "sleeveless"
	SleeveCap          SleeveType = "cap"
	SleeveShort        SleeveType = "short"
	SleeveThreeQuarter SleeveType = "three_quarter"
	SleeveLong         SleeveType = "long"
	SleeveRaglan       SleeveType = "raglan"
	SleeveDolman       SleeveType = "dolman"
	SleevePuff         SleeveType = "puff"
	SleeveFlutter      SleeveType = "flutter"
	SleeveBell         SleeveType = "bell"
	SleeveSetIn        SleeveType = "set_in"
)

type NecklineType string

const (
	NecklineVNeck       NecklineType = "v_neck"
	NecklineDeepV       NecklineType = "deep_v"
	NecklineScoop       NecklineType = "scoop"
	NecklineCrew        NecklineType = "crew"
	NecklineBoat        NecklineType = "boat"
	NecklineSquare      NecklineType = "square"
	NecklineOffShoulder NecklineType = "off_shoulder"
	NecklineHalter      NecklineType = "halter"
	NecklineCowl        NecklineType = "cowl"
	NecklineTurtleneck  NecklineType = "turtleneck"
	NecklineWrap        NecklineType = "wrap"
)

// GarmentCategory determines which scorers apply to a garment.
type GarmentCategory string

const (
	CategoryDress        GarmentCategory = "dress"
	CategoryTop          GarmentCategory = "top"
	CategoryBottomPants  GarmentCategory = "bottom_pants"
	CategoryBottomShorts GarmentCategory = "bottom_shorts"
	CategorySkirt        GarmentCategory = "skirt"
	CategoryJumpsuit     GarmentCategory = "jumpsuit"
	CategoryRomper       GarmentCategory = "romper"
	CategoryJacket       GarmentCategory = "jacket"
	CategoryCoat         GarmentCategory = "coat"
	CategorySweatshirt   GarmentCategory = "sweatshirt"
	CategoryCardigan     GarmentCategory = "cardigan"
	CategoryVest         GarmentCategory = "vest"
	CategoryBodysuit     GarmentCategory = "bodysuit"
	CategoryLoungewear   GarmentCategory = "loungewear"
	CategoryActivewear   GarmentCategory = "activewear"
	CategorySaree        GarmentCategory = "saree"
	CategorySalwarKameez GarmentCategory = "salwar_kameez"
	CategoryLehenga      GarmentCategory = "lehenga"
)

type GarmentLayer string

const (
	LayerBase  GarmentLayer = "base"
	LayerMid   GarmentLayer = "mid"
	LayerOuter GarmentLayer = "outer"
)

type TopHemBehavior string

const (
	HemTucked           TopHemBehavior = "tucked"
	HemHalfTucked       TopHemBehavior = "half_tucked"
	HemUntuckedAtHip    TopHemBehavior = "untucked_at_hip"
	HemUntuckedBelowHip TopHemBehavior = "untucked_below_hip"
	HemCropped          TopHemBehavior = "cropped"
	HemBodysuit         TopHemBehavior = "bodysuit"
)

type BrandTier string

const (
	TierLuxury      BrandTier = "luxury"
	TierPremium     BrandTier = "premium"
	TierMidMarket   BrandTier = "mid_market"
	TierMassMarket  BrandTier = "mass_market"
	TierFastFashion BrandTier = "fast_fashion"
)

type WearContext string

const (
	WearOfficeSeated   WearContext = "office_seated"
	WearCasualActive   WearContext = "casual_active"
	WearFormalStanding WearContext = "formal_standing"
	WearGeneral        WearContext = "general"
)

type Climate string

const (
	ClimateHotHumid  Climate = "hot_humid"
	ClimateHotDry    Climate = "hot_dry"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
)

// NormalizeToken lowercases s and folds spaces and hyphens to underscores,
// so "Fit-and-Flare" and "fit and flare" both read as "fit_and_flare".
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func parseEnum[T ~string](s string, valid []T) (T, bool) {
	n := NormalizeToken(s)
	for _, v := range valid {
		if string(v) == n {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func ParseStylingGoal(s string) (StylingGoal, bool) { return parseEnum(s, ValidStylingGoals) }

func ParseSkinUndertone(s string) (SkinUndertone, bool) {
	return parseEnum(s, []SkinUndertone{UndertoneWarm, UndertoneCool, UndertoneNeutral})
}

func ParseFabricConstruction(s string) (FabricConstruction, bool) {
	return parseEnum(s, []FabricConstruction{
		ConstructionWoven, ConstructionKnit, ConstructionKnitRib,
		ConstructionKnitDouble, ConstructionKnitJersey,
	})
}

func ParseSurfaceFinish(s string) (SurfaceFinish, bool) {
	return parseEnum(s, []SurfaceFinish{
		SurfaceDeepMatte, SurfaceMatte, SurfaceSubtleSheen, SurfaceModerateSheen,
		SurfaceHighShine, SurfaceMaximumShine, SurfaceCrushed,
	})
}

func ParseSilhouette(s string) (Silhouette, bool) {
	return parseEnum(s, []Silhouette{
		SilhouetteFitted, SilhouetteSemiFitted, SilhouetteALine, SilhouetteEmpire,
		SilhouetteWrap, SilhouetteShift, SilhouettePeplum, SilhouetteFitAndFlare,
		SilhouetteOversized, SilhouetteArchitectural,
	})
}

func ParseSleeveType(s string) (SleeveType, bool) {
	return parseEnum(s, []SleeveType{
		SleeveSleeveless, SleeveCap, SleeveShort, SleeveThreeQuarter, SleeveLong,
		SleeveRaglan, SleeveDolman, SleevePuff, SleeveFlutter, SleeveBell, SleeveSetIn,
	})
}

func ParseNecklineType(s string) (NecklineType, bool) {
	return parseEnum(s, []NecklineType{
		NecklineVNeck, NecklineDeepV, NecklineScoop, NecklineCrew, NecklineBoat,
		NecklineSquare, NecklineOffShoulder, NecklineHalter, NecklineCowl,
		NecklineTurtleneck, NecklineWrap,
	})
}

// ValidCategories enumerates all garment categories.
var ValidCategories = []GarmentCategory{
	CategoryDress, CategoryTop, CategoryBottomPants, CategoryBottomShorts,
	CategorySkirt, CategoryJumpsuit, CategoryRomper, CategoryJacket, CategoryCoat,
	CategorySweatshirt, CategoryCardigan, CategoryVest, CategoryBodysuit,
	CategoryLoungewear, CategoryActivewear, CategorySaree, CategorySalwarKameez,
	CategoryLehenga,
}

func ParseGarmentCategory(s string) (GarmentCategory, bool) {
	switch NormalizeToken(s) {
	case "pants", "trousers", "jeans":
		return CategoryBottomPants, true
	case "shorts":
		return CategoryBottomShorts, true
	}
	return parseEnum(s, ValidCategories)
}

func ParseGarmentLayer(s string) (GarmentLayer, bool) {
	return parseEnum(s, []GarmentLayer{LayerBase, LayerMid, LayerOuter})
}

func ParseTopHemBehavior(s string) (TopHemBehavior, bool) {
	return parseEnum(s, []TopHemBehavior{
		HemTucked, HemHalfTucked, HemUntuckedAtHip, HemUntuckedBelowHip,
		HemCropped, HemBodysuit,
	})
}

func ParseBrandTier(s string) (BrandTier, bool) {
	return parseEnum(s, []BrandTier{
		TierLuxury, TierPremium, TierMidMarket, TierMassMarket, TierFastFashion,
	})
}

func ParseWearContext(s string) (WearContext, bool) {
	return parseEnum(s, []WearContext{
		WearOfficeSeated, WearCasualActive, WearFormalStanding, WearGeneral,
	})
}

func ParseClimate(s string) (Climate, bool) {
	return parseEnum(s, []Climate{ClimateHotHumid, ClimateHotDry, ClimateTemperate, ClimateCold})
}
