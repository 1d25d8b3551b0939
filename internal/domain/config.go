package domain

import (
	"fmt"
	"time"
)

// RescaleSegment linearly maps [RawLow, RawHigh] on the 0-10 engine scale
// onto [DisplayLow, DisplayHigh] on the display scale.
type RescaleSegment struct {
	RawLow      float64 `yaml:"raw_low"      json:"raw_low"`
	RawHigh     float64 `yaml:"raw_high"     json:"raw_high"`
	DisplayLow  float64 `yaml:"display_low"  json:"display_low"`
	DisplayHigh float64 `yaml:"display_high" json:"display_high"`
}

// EngineConfig holds the empirically fitted constants of the scoring pipeline.
type EngineConfig struct {
	WeightCapFraction              float64            `json:"weight_cap_fraction"`
	NegativeAmplificationThreshold float64            `json:"negative_amplification_threshold"`
	NegativeAmplificationFactor    float64            `json:"negative_amplification_factor"`
	StructuredPenaltyReduction     float64            `json:"structured_penalty_reduction"`
	DominanceThreshold             float64            `json:"dominance_threshold"`
	DominanceFactor                float64            `json:"dominance_factor"`
	DefaultConfidence              float64            `json:"default_confidence"`
	NeutralScore                   float64            `json:"neutral_score"`
	NeutralConfidence              float64            `json:"neutral_confidence"`
	GoalPassThreshold              float64            `json:"goal_pass_threshold"`
	FixThreshold                   float64            `json:"fix_threshold"`
	MaxFixes                       int                `json:"max_fixes"`
	GateConfidence                 map[string]float64 `json:"gate_confidence"`
	Rescale                        []RescaleSegment   `json:"rescale"`
	ApplyContextAdjustments        bool               `json:"apply_context_adjustments"`
}

// Fabric gate identifiers.
const (
	GateDarkShiny       = "GATE_DARK_SHINY"
	GateALineShelf      = "GATE_ALINE_SHELF"
	GateWrapGapping     = "GATE_WRAP_GAPPING"
	GateStructured      = "GATE_STRUCTURED"
	GateFluidAppleBelly = "GATE_FLUID_APPLE_BELLY"
	GateClingTrap       = "GATE_CLING_TRAP"
)

// DefaultEngineConfig returns the calibrated production constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		WeightCapFraction:              0.35,
		NegativeAmplificationThreshold: -0.15,
		NegativeAmplificationFactor:    1.2,
		StructuredPenaltyReduction:     0.30,
		DominanceThreshold:             -0.20,
		DominanceFactor:                0.3,
		DefaultConfidence:              0.70,
		NeutralScore:                   5.0,
		NeutralConfidence:              0.50,
		GoalPassThreshold:              0.15,
		FixThreshold:                   -0.15,
		MaxFixes:                       3,
		GateConfidence: map[string]float64{
			GateDarkShiny:       0.80,
			GateALineShelf:      0.82,
			GateWrapGapping:     0.75,
			GateStructured:      0.85,
			GateFluidAppleBelly: 0.72,
			GateClingTrap:       0.78,
		},
		Rescale: []RescaleSegment{
			{0.0, 3.5, 0.0, 0.5},
			{3.5, 4.0, 0.5, 1.0},
			{4.0, 4.4, 1.0, 4.0},
			{4.4, 5.0, 4.0, 5.5},
			{5.0, 5.5, 5.5, 7.0},
			{5.5, 5.8, 7.0, 8.0},
			{5.8, 6.3, 8.0, 9.5},
			{6.3, 10.0, 9.5, 10.0},
		},
	}
}

// GateConfidenceFor returns the configured confidence for a gate id.
func (c EngineConfig) GateConfidenceFor(id string) float64 {
	if v, ok := c.GateConfidence[id]; ok {
		return v
	}
	return c.DefaultConfidence
}

// Validate checks the engine constants for values that would break aggregation.
func (c EngineConfig) Validate() error {
	// 1. fractions must lie in (0, 1]
	if c.WeightCapFraction <= 0 || c.WeightCapFraction > 1 {
		return fmt.Errorf("weight_cap_fraction %.2f must be in (0, 1]", c.WeightCapFraction)
	}
	if c.StructuredPenaltyReduction < 0 || c.StructuredPenaltyReduction > 1 {
		return fmt.Errorf("structured_penalty_reduction %.2f must be in [0, 1]", c.StructuredPenaltyReduction)
	}
	if c.DefaultConfidence < 0 || c.DefaultConfidence > 1 {
		return fmt.Errorf("default_confidence %.2f must be in [0, 1]", c.DefaultConfidence)
	}

	// 2. thresholds are negative scores
	if c.NegativeAmplificationThreshold > 0 {
		return fmt.Errorf("negative_amplification_threshold %.2f must not be positive", c.NegativeAmplificationThreshold)
	}
	if c.DominanceThreshold > 0 {
		return fmt.Errorf("dominance_threshold %.2f must not be positive", c.DominanceThreshold)
	}
	if c.GoalPassThreshold < 0 {
		return fmt.Errorf("goal_pass_threshold %.2f must not be negative", c.GoalPassThreshold)
	}

	// 3. gate confidences in [0, 1]
	for id, v := range c.GateConfidence {
		if v < 0 || v > 1 {
			return fmt.Errorf("gate_confidence %s=%.2f must be in [0, 1]", id, v)
		}
	}

	// 4. rescale segments must be contiguous and non-decreasing
	if len(c.Rescale) == 0 {
		return fmt.Errorf("rescale must have at least one segment")
	}
	for i, s := range c.Rescale {
		if s.RawHigh < s.RawLow || s.DisplayHigh < s.DisplayLow {
			return fmt.Errorf("rescale segment %d is decreasing", i)
		}
		if i > 0 {
			prev := c.Rescale[i-1]
			if s.RawLow != prev.RawHigh {
				return fmt.Errorf("rescale segment %d starts at %.2f, previous ends at %.2f", i, s.RawLow, prev.RawHigh)
			}
			if s.DisplayLow < prev.DisplayHigh {
				return fmt.Errorf("rescale segment %d display %.2f below previous %.2f", i, s.DisplayLow, prev.DisplayHigh)
			}
		}
	}
	return nil
}

// Registry source kinds.
const (
	RegistrySourceDir    = "dir"
	RegistrySourceSQLite = "sqlite"
)

// Config is the project-level configuration loaded from .stydev.yaml.
type Config struct {
	Engine   *EngineOverrides `yaml:"engine,omitempty"  json:"engine,omitempty"`
	Registry RegistryConfig   `yaml:"registry"          json:"registry"`
	Cache    CacheConfig      `yaml:"cache"             json:"cache"`
	History  HistoryConfig    `yaml:"history"           json:"history"`
}

// EngineOverrides lets users override individual engine constants.
// Pointer types distinguish "not specified" from zero values.
type EngineOverrides struct {
	WeightCapFraction              *float64           `yaml:"weight_cap_fraction,omitempty"              json:"weight_cap_fraction,omitempty"`
	NegativeAmplificationThreshold *float64           `yaml:"negative_amplification_threshold,omitempty" json:"negative_amplification_threshold,omitempty"`
	NegativeAmplificationFactor    *float64           `yaml:"negative_amplification_factor,omitempty"    json:"negative_amplification_factor,omitempty"`
	StructuredPenaltyReduction     *float64           `yaml:"structured_penalty_reduction,omitempty"     json:"structured_penalty_reduction,omitempty"`
	DominanceThreshold             *float64           `yaml:"dominance_threshold,omitempty"              json:"dominance_threshold,omitempty"`
	DominanceFactor                *float64           `yaml:"dominance_factor,omitempty"                 json:"dominance_factor,omitempty"`
	DefaultConfidence              *float64           `yaml:"default_confidence,omitempty"               json:"default_confidence,omitempty"`
	GoalPassThreshold              *float64           `yaml:"goal_pass_threshold,omitempty"              json:"goal_pass_threshold,omitempty"`
	MaxFixes                       *int               `yaml:"max_fixes,omitempty"                        json:"max_fixes,omitempty"`
	GateConfidence                 map[string]float64 `yaml:"gate_confidence,omitempty"                  json:"gate_confidence,omitempty"`
	Rescale                        []RescaleSegment   `yaml:"rescale,omitempty"                          json:"rescale,omitempty"`
	ApplyContextAdjustments        *bool              `yaml:"apply_context_adjustments,omitempty"        json:"apply_context_adjustments,omitempty"`
}

// RegistryConfig selects where the rule corpus is loaded from.
type RegistryConfig struct {
	Source     string `yaml:"source"      json:"source,omitempty"`
	Dir        string `yaml:"dir"         json:"dir,omitempty"`
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path,omitempty"`
}

// CacheConfig tunes the in-memory result cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"  json:"enabled"`
	MaxCost int64         `yaml:"max_cost" json:"max_cost,omitempty"`
	TTL     time.Duration `yaml:"ttl"      json:"ttl,omitempty"`
}

// HistoryConfig sets where score history is kept.
type HistoryConfig struct {
	Path string `yaml:"path" json:"path,omitempty"`
}

// DefaultConfig returns the configuration used when no .stydev.yaml exists.
func DefaultConfig() Config {
	return Config{
		Registry: RegistryConfig{Source: RegistrySourceDir, Dir: "rules"},
		Cache:    CacheConfig{Enabled: true, MaxCost: 1 << 24, TTL: 10 * time.Minute},
		History:  HistoryConfig{Path: ".stydev/history.json"},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. registry source must be known or empty
	switch c.Registry.Source {
	case "", RegistrySourceDir, RegistrySourceSQLite:
	default:
		return fmt.Errorf("unknown registry.source %q (valid: dir, sqlite)", c.Registry.Source)
	}
	if c.Registry.Source == RegistrySourceSQLite && c.Registry.SQLitePath == "" {
		return fmt.Errorf("registry.sqlite_path is required when registry.source is sqlite")
	}

	// 2. cache bounds
	if c.Cache.MaxCost < 0 {
		return fmt.Errorf("cache.max_cost must not be negative")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}

	// 3. engine overrides must produce a valid engine config
	if c.Engine != nil {
		if err := c.Engine.Apply(DefaultEngineConfig()).Validate(); err != nil {
			return fmt.Errorf("engine: %w", err)
		}
	}
	return nil
}

// Apply returns base with every specified override applied.
func (o *EngineOverrides) Apply(base EngineConfig) EngineConfig {
	if o == nil {
		return base
	}
	if o.WeightCapFraction != nil {
		base.WeightCapFraction = *o.WeightCapFraction
	}
	if o.NegativeAmplificationThreshold != nil {
		base.NegativeAmplificationThreshold = *o.NegativeAmplificationThreshold
	}
	if o.NegativeAmplificationFactor != nil {
		base.NegativeAmplificationFactor = *o.NegativeAmplificationFactor
	}
	if o.StructuredPenaltyReduction != nil {
		base.StructuredPenaltyReduction = *o.StructuredPenaltyReduction
	}
	if o.DominanceThreshold != nil {
		base.DominanceThreshold = *o.DominanceThreshold
	}
	if o.DominanceFactor != nil {
		base.DominanceFactor = *o.DominanceFactor
	}
	if o.DefaultConfidence != nil {
		base.DefaultConfidence = *o.DefaultConfidence
	}
	if o.GoalPassThreshold != nil {
		base.GoalPassThreshold = *o.GoalPassThreshold
	}
	if o.MaxFixes != nil {
		base.MaxFixes = *o.MaxFixes
	}
	if len(o.GateConfidence) > 0 {
		merged := make(map[string]float64, len(base.GateConfidence))
		for k, v := range base.GateConfidence {
			merged[k] = v
		}
		for k, v := range o.GateConfidence {
			merged[k] = v
		}
		base.GateConfidence = merged
	}
	if len(o.Rescale) > 0 {
		base.Rescale = o.Rescale
	}
	if o.ApplyContextAdjustments != nil {
		base.ApplyContextAdjustments = *o.ApplyContextAdjustments
	}
	return base
}
