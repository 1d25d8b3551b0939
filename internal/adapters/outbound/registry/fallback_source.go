package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kridha-admin/stydev/internal/domain"
)

// FallbackSource loads from primary and falls back to secondary when the
// primary fails or holds no items.
type FallbackSource struct {
	primary   domain.RuleSource
	secondary domain.RuleSource
	logger    *slog.Logger
}

func NewFallbackSource(primary, secondary domain.RuleSource, logger *slog.Logger) *FallbackSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackSource{primary: primary, secondary: secondary, logger: logger}
}

func (s *FallbackSource) Name() string {
	return s.primary.Name() + " > " + s.secondary.Name()
}

func (s *FallbackSource) Load(ctx context.Context) (*domain.RuleCorpus, error) {
	corpus, err := s.primary.Load(ctx)
	if err == nil && countItems(corpus) > 0 {
		return corpus, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err == nil {
		err = domain.ErrEmptyCorpus
	}
	s.logger.Warn("primary rule source unavailable, using fallback",
		"primary", s.primary.Name(), "fallback", s.secondary.Name(), "error", err)

	corpus, ferr := s.secondary.Load(ctx)
	if ferr != nil {
		return nil, fmt.Errorf("fallback %s: %w (primary: %v)", s.secondary.Name(), ferr, err)
	}
	return corpus, nil
}
