package scoring

import (
	"fmt"
	"strings"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Confidences resolves a principle's confidence by key.
type Confidences interface {
	Confidence(id string) float64
}

// ConfidenceKey converts a principle name to its confidence table key:
// "Dark/Black Slimming" → "dark_black_slimming".
func ConfidenceKey(name string) string {
	return strings.NewReplacer(" ", "_", "/", "_").Replace(strings.ToLower(name))
}

// Evaluate runs every base scorer not skipped for the category, followed
// by the category's extra scorers. Negative scores are multiplied by
// reduction when it is below 1. Scorer panics are returned as errors
// alongside the results; the failed scorer still yields an ERROR result.
func Evaluate(in Input, category domain.GarmentCategory, conf Confidences, reduction float64) ([]domain.PrincipleResult, []error) {
	var (
		results []domain.PrincipleResult
		errs    []error
	)

	run := func(s Scorer) {
		out, err := s.Run(in)
		if err != nil {
			errs = append(errs, err)
		}
		score := out.Score
		if score < 0 && reduction < 1.0 {
			score *= reduction
		}
		r := domain.PrincipleResult{
			Name:       s.Name,
			Score:      score,
			Reasoning:  out.Reasoning,
			Weight:     s.Weight,
			Applicable: out.IsApplicable(),
			Confidence: conf.Confidence(ConfidenceKey(s.Name)),
		}
		if !r.Applicable {
			r.Score, r.Weight = 0, 0
		}
		results = append(results, r)
	}

	for _, s := range BaseScorers() {
		if IsSkipped(category, s.Name) {
			results = append(results, domain.PrincipleResult{
				Name:      s.Name,
				Reasoning: fmt.Sprintf("N/A for %s", category),
			})
			continue
		}
		run(s)
	}

	typed := TypeScorers()
	for _, name := range ExtraScorers(category) {
		if s, ok := typed[name]; ok {
			run(s)
		}
	}
	return results, errs
}

// ActiveCount returns the number of applicable results.
func ActiveCount(results []domain.PrincipleResult) int {
	n := 0
	for _, r := range results {
		if r.Applicable {
			n++
		}
	}
	return n
}
