package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Registry implements domain.RuleRegistry. Readers take an immutable
// snapshot; Reload swaps in a new one atomically, so a scoring call never
// observes a half-loaded corpus.
type Registry struct {
	source  domain.RuleSource
	current atomic.Pointer[domain.RuleSet]
	logger  *slog.Logger
}

// New returns a registry serving the built-in tables until the first
// successful Reload.
func New(source domain.RuleSource, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{source: source, logger: logger}
	r.current.Store(domain.EmptyRuleSet())
	return r
}

// Snapshot returns the current rule set.
func (r *Registry) Snapshot() *domain.RuleSet {
	return r.current.Load()
}

// Source returns the backing source.
func (r *Registry) Source() domain.RuleSource { return r.source }

// Reload loads the corpus again. On failure the previous snapshot stays
// in place.
func (r *Registry) Reload(ctx context.Context) error {
	corpus, err := r.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading rules from %s: %w", r.source.Name(), err)
	}
	if corpus.Source == "" {
		corpus.Source = r.source.Name()
	}

	rs := domain.NewRuleSet(corpus)
	r.current.Store(rs)
	r.logger.Info("registry reloaded",
		"source", rs.Source(),
		"items", rs.TotalItems(),
		"types", len(rs.TypeCounts()),
		"revision", rs.Revision())
	return nil
}

// SourceFor builds the rule source a registry config describes. A sqlite
// store falls back to the rules directory when one is configured.
func SourceFor(cfg domain.RegistryConfig, vcs Revisioner, logger *slog.Logger) domain.RuleSource {
	dir := NewDirSource(cfg.Dir, vcs)
	if cfg.Source != domain.RegistrySourceSQLite {
		return dir
	}
	store := NewSQLiteSource(cfg.SQLitePath)
	if cfg.Dir == "" {
		return store
	}
	return NewFallbackSource(store, dir, logger)
}
