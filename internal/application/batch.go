package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kridha-admin/stydev/internal/domain"
)

// ScoreBatch scores requests in parallel against a single registry
// snapshot, so a concurrent reload never splits a batch across revisions.
// Results keep the order of requests. limit bounds the number of requests
// in flight; zero or less means unbounded. The first failure cancels the
// remaining work.
func (s *ScoreService) ScoreBatch(ctx context.Context, requests []domain.ScoreRequest, limit int) ([]*domain.ScoreResult, error) {
	rs := s.registry.Snapshot()
	results := make([]*domain.ScoreResult, len(requests))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, req := range requests {
		eg.Go(func() error {
			r, err := s.scoreWith(egCtx, rs, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
