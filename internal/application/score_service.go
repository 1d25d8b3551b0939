package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
	"github.com/kridha-admin/stydev/internal/domain/geometry"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
)

// ScoreService orchestrates the seven-layer scoring pipeline:
// fabric gates → element scoring → calibration → goals → body geometry →
// context → composite.
type ScoreService struct {
	registry domain.RuleRegistry
	cfg      domain.EngineConfig
	cache    domain.ResultCache
	logger   *slog.Logger
}

// NewScoreService wires the pipeline. cache may be nil to disable result
// caching; a nil logger falls back to slog.Default().
func NewScoreService(
	registry domain.RuleRegistry,
	cfg domain.EngineConfig,
	cache domain.ResultCache,
	logger *slog.Logger,
) *ScoreService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreService{
		registry: registry,
		cfg:      cfg,
		cache:    cache,
		logger:   logger,
	}
}

// Config returns the engine constants the service scores with.
func (s *ScoreService) Config() domain.EngineConfig { return s.cfg }

// Score runs one request against the registry's current snapshot.
func (s *ScoreService) Score(ctx context.Context, req domain.ScoreRequest) (*domain.ScoreResult, error) {
	return s.scoreWith(ctx, s.registry.Snapshot(), req)
}

func (s *ScoreService) scoreWith(ctx context.Context, rs *domain.RuleSet, req domain.ScoreRequest) (*domain.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 0. Decode context before anything touches the cache
	var sc domain.ScoringContext
	if len(req.Context) > 0 {
		if err := mapstructure.Decode(req.Context, &sc); err != nil {
			return nil, fmt.Errorf("decoding context: %w", err)
		}
	}

	var key string
	if s.cache != nil {
		k, err := domain.RequestKey(req, rs.Revision())
		if err != nil {
			return nil, fmt.Errorf("computing cache key: %w", err)
		}
		key = k
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
		s.logger.Debug("cache miss", "key", key[:12])
	}

	result := s.run(req.Garment, req.Body, sc, len(req.Context) > 0, rs)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn("caching result failed", "key", key[:12], "error", err)
		}
	}
	return result, nil
}

// run executes the pipeline on private copies of the profiles.
func (s *ScoreService) run(garment domain.GarmentProfile, body domain.BodyProfile, sc domain.ScoringContext, hasContext bool, rs *domain.RuleSet) *domain.ScoreResult {
	g, b := &garment, &body
	var chain []string

	// 1. Fabric gate
	resolved := fabric.Resolve(g, rs)
	exceptions := fabric.RunGates(g, b, resolved, s.cfg)
	reduction := fabric.PenaltyReduction(exceptions, s.cfg.StructuredPenaltyReduction)
	chain = append(chain, fmt.Sprintf("L1 Fabric: stretch=%.1f%%, GSM=%.0f, sheen=%.2f, gates=%d",
		resolved.TotalStretchPct, resolved.EffectiveGSM, resolved.SheenScore, len(exceptions)))

	// 2. Element scoring on the classified garment
	category := scoring.Classify(g)
	g.Category = category
	chain = append(chain, fmt.Sprintf("Classification: %s", category))

	results, errs := scoring.Evaluate(scoring.NewInput(g, b, rs), category, rs, reduction)
	for _, err := range errs {
		var se *scoring.ScorerError
		if errors.As(err, &se) {
			s.logger.Warn("scorer failed", "principle", se.Principle, "error", se.Cause)
			continue
		}
		s.logger.Warn("scorer failed", "error", err)
	}
	chain = append(chain, fmt.Sprintf("L2 Element: %d/%d active", scoring.ActiveCount(results), len(results)))

	// 3. Perceptual calibration
	scoring.Calibrate(results, b.StylingGoals, s.cfg)
	chain = append(chain, "L3 Calibration: goal weights + negative amplification applied")

	// 4. Goal verdicts
	verdicts := scoring.ScoreGoals(results, b.StylingGoals, s.cfg.GoalPassThreshold)
	var pass, fail int
	for _, v := range verdicts {
		switch v.Verdict {
		case domain.VerdictPass:
			pass++
		case domain.VerdictFail:
			fail++
		}
	}
	chain = append(chain, fmt.Sprintf("L4 Goals: %d pass, %d fail", pass, fail))

	// 5. Body-type parameterization
	adjusted := geometry.Translate(g, b, rs)
	chain = append(chain, fmt.Sprintf(`L5 BodyAdj: hem=%.1f", sleeve_delta=%+.2f", leg_ratio=%.3f`,
		adjusted.HemFromFloor, adjusted.ArmWidthDelta, adjusted.VisualLegRatio))

	// 6. Context modifiers
	var adjustments []domain.ContextAdjustment
	if hasContext {
		adjustments = scoring.ContextAdjustments(sc, results, g)
		chain = append(chain, fmt.Sprintf("L6 Context: %d adjustments", len(adjustments)))
	} else {
		chain = append(chain, "L6 Context: none")
	}

	result := &domain.ScoreResult{
		Category:           category,
		BodyShape:          b.Shape(),
		PrincipleScores:    results,
		GoalVerdicts:       verdicts,
		Exceptions:         exceptions,
		ContextAdjustments: adjustments,
		BodyAdjusted:       &adjusted,
		ReasoningChain:     chain,
	}

	// 7. Composite
	if scoring.ActiveCount(results) == 0 {
		result.OverallScore = s.cfg.NeutralScore
		result.Confidence = s.cfg.NeutralConfidence
		result.Verdict = domain.VerdictLabel(result.OverallScore)
		return result
	}

	comp := scoring.Aggregate(results, b, s.cfg)
	if comp.Dominated {
		chain = append(chain, fmt.Sprintf("L7 Silhouette dominance: worst_sil=%+.2f overrides positive composite", comp.WorstSilhouette))
	}
	raw := comp.Raw
	if s.cfg.ApplyContextAdjustments && len(adjustments) > 0 {
		raw = domain.Clamp(raw + scoring.SumAdjustments(adjustments))
	}
	overall := scoring.DisplayScore(raw, s.cfg)

	result.ZoneScores = scoring.ZoneScores(results)
	result.Fixes = scoring.SuggestFixes(results, s.cfg)
	chain = append(chain, fmt.Sprintf("L7 Composite: raw=%+.3f, overall=%.1f/10, confidence=%.2f", raw, overall, comp.Confidence))

	if scoring.IsLayerGarment(category) {
		info := scoring.LayerModifications(g, b)
		result.LayerModifications = &info
		result.StylingNotes = info.StylingNotes
		chain = append(chain, fmt.Sprintf("Layer: %d modifications", len(info.Modifications)))
	}

	result.OverallScore = domain.Round(overall, 1)
	result.CompositeRaw = domain.Round(raw, 4)
	result.Confidence = domain.Round(comp.Confidence, 2)
	result.Verdict = domain.VerdictLabel(result.OverallScore)
	result.ReasoningChain = chain
	return result
}

// BuildEngineConfig constructs the engine constants from defaults plus the
// project's overrides.
func BuildEngineConfig(cfg domain.Config) domain.EngineConfig {
	return cfg.Engine.Apply(domain.DefaultEngineConfig())
}
