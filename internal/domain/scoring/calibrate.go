package scoring

import (
	"github.com/kridha-admin/stydev/internal/domain"
)

// Calibrate adjusts applicable weights in place, one result at a time:
// goal boosts multiply, strongly negative scores are amplified, and the
// weight is capped at a fraction of the running applicable total.
func Calibrate(results []domain.PrincipleResult, goals []domain.StylingGoal, cfg domain.EngineConfig) {
	for i := range results {
		r := &results[i]
		if !r.Applicable {
			continue
		}
		for _, g := range goals {
			if boost, ok := goalWeightBoosts[g][r.Name]; ok {
				r.Weight *= boost
			}
		}
		if r.Score < cfg.NegativeAmplificationThreshold {
			r.Weight *= cfg.NegativeAmplificationFactor
		}

		var total float64
		for _, o := range results {
			if o.Applicable {
				total += o.Weight
			}
		}
		r.Weight = min(r.Weight, cfg.WeightCapFraction*total)
	}
}

// Composite is the aggregated raw score before display rescaling.
type Composite struct {
	Raw             float64
	Confidence      float64
	Dominated       bool
	WorstSilhouette float64
}

// Aggregate computes the confidence-weighted mean of applicable scores.
// When the body has a slimming goal and a silhouette principle scores
// below cfg.DominanceThreshold, a positive mean is replaced by that
// silhouette score scaled by cfg.DominanceFactor. Raw is clamped to [-1, 1].
func Aggregate(results []domain.PrincipleResult, b *domain.BodyProfile, cfg domain.EngineConfig) Composite {
	var (
		num, den, confSum float64
		n                 int
		worstSil          float64
		sawSil            bool
	)
	for _, r := range results {
		if !r.Applicable {
			continue
		}
		n++
		num += r.Score * r.Weight * r.Confidence
		den += r.Weight * r.Confidence
		confSum += r.Confidence
		if r.Name == TentConcealment || r.Name == BodyconMapping {
			if !sawSil || r.Score < worstSil {
				worstSil = r.Score
			}
			sawSil = true
		}
	}
	if n == 0 {
		return Composite{Confidence: cfg.NeutralConfidence}
	}

	c := Composite{Confidence: confSum / float64(n), WorstSilhouette: worstSil}
	if den != 0 {
		c.Raw = num / den
	}

	slimming := b.HasGoal(domain.GoalSlimming, domain.GoalSlimHips, domain.GoalHideMidsection)
	if worstSil < cfg.DominanceThreshold && slimming && c.Raw > 0 {
		c.Raw = worstSil * cfg.DominanceFactor
		c.Dominated = true
	}
	c.Raw = domain.Clamp(c.Raw)
	return c
}

// DisplayScore maps a raw composite onto the 0-10 display scale.
func DisplayScore(raw float64, cfg domain.EngineConfig) float64 {
	return domain.RescaleDisplay(domain.ScoreToTen(raw), cfg.Rescale)
}
