package domain

// GarmentProfile describes the garment being evaluated. Category-specific
// fields (top hem, rise, leg shape, jacket and skirt details) are empty
// unless the category uses them.
type GarmentProfile struct {
	// Fabric composition
	PrimaryFiber      string             `json:"primary_fiber" yaml:"primary_fiber"`
	PrimaryFiberPct   float64            `json:"primary_fiber_pct" yaml:"primary_fiber_pct" validate:"min=0,max=100"`
	SecondaryFiber    string             `json:"secondary_fiber,omitempty" yaml:"secondary_fiber"`
	SecondaryFiberPct float64            `json:"secondary_fiber_pct" yaml:"secondary_fiber_pct" validate:"min=0,max=100"`
	ElastanePct       float64            `json:"elastane_pct" yaml:"elastane_pct" validate:"min=0,max=100"`
	FabricName        string             `json:"fabric_name,omitempty" yaml:"fabric_name"`
	Construction      FabricConstruction `json:"construction" yaml:"construction"`
	GSMEstimated      float64            `json:"gsm_estimated" yaml:"gsm_estimated" validate:"gte=0"`
	Surface           SurfaceFinish      `json:"surface" yaml:"surface"`
	SurfaceFriction   float64            `json:"surface_friction" yaml:"surface_friction" validate:"min=0,max=1"`
	Drape             float64            `json:"drape" yaml:"drape" validate:"min=0,max=10"`

	// Silhouette
	Category        GarmentCategory `json:"category" yaml:"category"`
	Silhouette      Silhouette      `json:"silhouette" yaml:"silhouette"`
	ExpansionRate   float64         `json:"expansion_rate" yaml:"expansion_rate"`
	SilhouetteLabel string          `json:"silhouette_label" yaml:"silhouette_label"`

	Neckline      NecklineType `json:"neckline" yaml:"neckline"`
	VDepthCM      float64      `json:"v_depth_cm" yaml:"v_depth_cm"`
	NecklineDepth *float64     `json:"neckline_depth,omitempty" yaml:"neckline_depth"`

	SleeveType         SleeveType `json:"sleeve_type" yaml:"sleeve_type"`
	SleeveLengthInches *float64   `json:"sleeve_length_inches,omitempty" yaml:"sleeve_length_inches"`
	SleeveEaseInches   float64    `json:"sleeve_ease_inches" yaml:"sleeve_ease_inches"`

	RiseCM              *float64 `json:"rise_cm,omitempty" yaml:"rise_cm"`
	WaistbandWidthCM    float64  `json:"waistband_width_cm" yaml:"waistband_width_cm"`
	WaistbandStretchPct float64  `json:"waistband_stretch_pct" yaml:"waistband_stretch_pct"`
	WaistPosition       string   `json:"waist_position" yaml:"waist_position"`
	HasWaistDefinition  bool     `json:"has_waist_definition" yaml:"has_waist_definition"`

	HemPosition         string   `json:"hem_position" yaml:"hem_position"`
	GarmentLengthInches *float64 `json:"garment_length_inches,omitempty" yaml:"garment_length_inches"`

	CoversWaist bool   `json:"covers_waist" yaml:"covers_waist"`
	CoversHips  bool   `json:"covers_hips" yaml:"covers_hips"`
	Zone        string `json:"zone" yaml:"zone"`

	ColorLightness     float64 `json:"color_lightness" yaml:"color_lightness" validate:"min=0,max=1"`
	ColorSaturation    float64 `json:"color_saturation" yaml:"color_saturation" validate:"min=0,max=1"`
	ColorTemperature   string  `json:"color_temperature" yaml:"color_temperature"`
	IsMonochromeOutfit bool    `json:"is_monochrome_outfit" yaml:"is_monochrome_outfit"`

	HasPattern           bool    `json:"has_pattern" yaml:"has_pattern"`
	PatternType          string  `json:"pattern_type,omitempty" yaml:"pattern_type"`
	HasHorizontalStripes bool    `json:"has_horizontal_stripes" yaml:"has_horizontal_stripes"`
	HasVerticalStripes   bool    `json:"has_vertical_stripes" yaml:"has_vertical_stripes"`
	StripeWidthCM        float64 `json:"stripe_width_cm" yaml:"stripe_width_cm"`
	StripeSpacingCM      float64 `json:"stripe_spacing_cm" yaml:"stripe_spacing_cm"`
	PatternScale         string  `json:"pattern_scale" yaml:"pattern_scale"`
	PatternScaleInches   float64 `json:"pattern_scale_inches" yaml:"pattern_scale_inches"`
	PatternContrast      float64 `json:"pattern_contrast" yaml:"pattern_contrast" validate:"min=0,max=1"`

	HasContrastingBelt bool    `json:"has_contrasting_belt" yaml:"has_contrasting_belt"`
	HasTonalBelt       bool    `json:"has_tonal_belt" yaml:"has_tonal_belt"`
	BeltWidthCM        float64 `json:"belt_width_cm" yaml:"belt_width_cm"`

	IsStructured      bool    `json:"is_structured" yaml:"is_structured"`
	HasDarts          bool    `json:"has_darts" yaml:"has_darts"`
	HasLining         bool    `json:"has_lining" yaml:"has_lining"`
	IsFauxWrap        bool    `json:"is_faux_wrap" yaml:"is_faux_wrap"`
	GarmentEaseInches float64 `json:"garment_ease_inches" yaml:"garment_ease_inches"`

	BrandTier          BrandTier `json:"brand_tier" yaml:"brand_tier"`
	UsesDiverseModel   bool      `json:"uses_diverse_model" yaml:"uses_diverse_model"`
	ModelEstimatedSize int       `json:"model_estimated_size" yaml:"model_estimated_size" validate:"min=0,max=30"`

	GarmentLayer GarmentLayer `json:"garment_layer" yaml:"garment_layer"`
	Title        string       `json:"title,omitempty" yaml:"title"`
	FitCategory  string       `json:"fit_category,omitempty" yaml:"fit_category"`

	// Tops
	TopHemLength   string         `json:"top_hem_length,omitempty" yaml:"top_hem_length"`
	TopHemBehavior TopHemBehavior `json:"top_hem_behavior,omitempty" yaml:"top_hem_behavior"`

	// Bottoms
	Rise            string `json:"rise,omitempty" yaml:"rise"`
	LegShape        string `json:"leg_shape,omitempty" yaml:"leg_shape"`
	LegOpeningWidth string `json:"leg_opening_width,omitempty" yaml:"leg_opening_width"`
	BottomLength    string `json:"bottom_length,omitempty" yaml:"bottom_length"`

	// Jackets and outerwear
	JacketClosure     string `json:"jacket_closure,omitempty" yaml:"jacket_closure"`
	JacketLength      string `json:"jacket_length,omitempty" yaml:"jacket_length"`
	ShoulderStructure string `json:"shoulder_structure,omitempty" yaml:"shoulder_structure"`

	SkirtConstruction string `json:"skirt_construction,omitempty" yaml:"skirt_construction"`
}

// DefaultGarmentProfile returns a plain mid-weight woven dress with no
// pattern or belt.
func DefaultGarmentProfile() GarmentProfile {
	return GarmentProfile{
		PrimaryFiber:        "polyester",
		PrimaryFiberPct:     100.0,
		Construction:        ConstructionWoven,
		GSMEstimated:        150.0,
		Surface:             SurfaceMatte,
		SurfaceFriction:     0.5,
		Drape:               5.0,
		Category:            CategoryDress,
		Silhouette:          SilhouetteSemiFitted,
		ExpansionRate:       0.05,
		SilhouetteLabel:     "fitted",
		Neckline:            NecklineCrew,
		SleeveType:          SleeveSetIn,
		SleeveEaseInches:    1.0,
		WaistbandWidthCM:    3.0,
		WaistbandStretchPct: 5.0,
		WaistPosition:       "natural",
		HemPosition:         "knee",
		CoversWaist:         true,
		CoversHips:          true,
		Zone:                "torso",
		ColorLightness:      0.5,
		ColorSaturation:     0.5,
		ColorTemperature:    "neutral",
		PatternScale:        "none",
		PatternContrast:     0.5,
		GarmentEaseInches:   3.0,
		BrandTier:           TierMidMarket,
		ModelEstimatedSize:  2,
		GarmentLayer:        LayerBase,
	}
}

// IsDark reports a lightness below 0.25.
func (g *GarmentProfile) IsDark() bool { return g.ColorLightness < 0.25 }

// SheenIndex maps the surface finish onto a 0..1 sheen score.
func (g *GarmentProfile) SheenIndex() float64 {
	if v, ok := SurfaceSheen[g.Surface]; ok {
		return v
	}
	return 0.10
}

// DrapeCoefficient converts the 1-10 drape scale to a percentage.
func (g *GarmentProfile) DrapeCoefficient() float64 { return g.Drape * 10.0 }

// ClingRisk estimates cling from stretch, weight and friction alone, without
// the named-fabric lookup the resolver applies.
func (g *GarmentProfile) ClingRisk() float64 {
	mult, ok := ConstructionStretchMultiplier[g.Construction]
	if !ok {
		mult = 2.0
	}
	stretch := g.ElastanePct * mult
	gsmFactor := max(0, 1.0-g.GSMEstimated/300.0)
	frictionFactor := max(0, 1.0-g.SurfaceFriction)
	return min(1.0, (stretch/20.0+gsmFactor+frictionFactor)/3.0)
}

// EffectiveNecklineDepth returns the neckline depth in inches, falling back
// to the V depth converted from centimetres.
func (g *GarmentProfile) EffectiveNecklineDepth() float64 {
	if g.NecklineDepth != nil {
		return *g.NecklineDepth
	}
	return g.VDepthCM / 2.54
}

// Float returns a pointer to v, for populating optional garment fields.
func Float(v float64) *float64 { return &v }
