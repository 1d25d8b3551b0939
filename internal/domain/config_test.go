package domain_test

import (
	"testing"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig_Valid(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 0.35, cfg.WeightCapFraction, 0.001)
	assert.InDelta(t, 0.30, cfg.StructuredPenaltyReduction, 0.001)
	assert.Len(t, cfg.Rescale, 8)
	assert.False(t, cfg.ApplyContextAdjustments)
}

func TestEngineConfig_GateConfidenceFor(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	assert.InDelta(t, 0.85, cfg.GateConfidenceFor(domain.GateStructured), 0.001)
	assert.InDelta(t, cfg.DefaultConfidence, cfg.GateConfidenceFor("GATE_UNKNOWN"), 0.001)
}

func TestEngineConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.EngineConfig)
		errMsg string
	}{
		{"cap zero", func(c *domain.EngineConfig) { c.WeightCapFraction = 0 }, "weight_cap_fraction"},
		{"positive dominance", func(c *domain.EngineConfig) { c.DominanceThreshold = 0.1 }, "dominance_threshold"},
		{"gate above one", func(c *domain.EngineConfig) { c.GateConfidence = map[string]float64{"X": 1.5} }, "gate_confidence"},
		{"empty rescale", func(c *domain.EngineConfig) { c.Rescale = nil }, "at least one segment"},
		{"gap in rescale", func(c *domain.EngineConfig) { c.Rescale[1].RawLow = 3.6 }, "starts at 3.60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultEngineConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Nil(t, cfg.Engine)
	assert.Equal(t, domain.RegistrySourceDir, cfg.Registry.Source)
	assert.True(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_SQLiteNeedsPath(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Registry.Source = domain.RegistrySourceSQLite
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite_path")
}

func TestConfigValidate_UnknownSource(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Registry.Source = "postgres"
	require.Error(t, cfg.Validate())
}

func TestConfigValidate_BadEngineOverride(t *testing.T) {
	bad := 1.5
	cfg := domain.DefaultConfig()
	cfg.Engine = &domain.EngineOverrides{WeightCapFraction: &bad}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine:")
}

func TestEngineOverrides_Apply(t *testing.T) {
	capFraction := 0.5
	apply := true
	o := &domain.EngineOverrides{
		WeightCapFraction:       &capFraction,
		GateConfidence:          map[string]float64{domain.GateClingTrap: 0.9},
		ApplyContextAdjustments: &apply,
	}

	cfg := o.Apply(domain.DefaultEngineConfig())

	assert.InDelta(t, 0.5, cfg.WeightCapFraction, 0.001)
	assert.InDelta(t, 0.9, cfg.GateConfidence[domain.GateClingTrap], 0.001)
	assert.InDelta(t, 0.85, cfg.GateConfidence[domain.GateStructured], 0.001)
	assert.True(t, cfg.ApplyContextAdjustments)
	assert.InDelta(t, 0.78, domain.DefaultEngineConfig().GateConfidence[domain.GateClingTrap], 0.001)
}

func TestEngineOverrides_NilApplyIsIdentity(t *testing.T) {
	var o *domain.EngineOverrides
	assert.Equal(t, domain.DefaultEngineConfig(), o.Apply(domain.DefaultEngineConfig()))
}
