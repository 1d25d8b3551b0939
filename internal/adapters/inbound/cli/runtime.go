package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kridha-admin/stydev/internal/adapters/outbound/cache"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/config"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/gitinfo"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/history"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/profiles"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/registry"
	"github.com/kridha-admin/stydev/internal/application"
	"github.com/kridha-admin/stydev/internal/domain"
)

// runtime is the wired engine for one command invocation.
type runtime struct {
	cfg      domain.Config
	registry *registry.Registry
	cache    *cache.ResultCache
	scores   *application.ScoreService
	profiles *profiles.Loader
	history  *history.FileHistory
	logger   *slog.Logger
}

// newRuntime loads the project config and rules and wires the score
// service. A corpus that fails to load is logged; scoring then runs on the
// built-in tables.
func newRuntime(ctx context.Context, opts *rootOptions, logger *slog.Logger) (*runtime, error) {
	absPath, err := filepath.Abs(opts.projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	// 1. Config
	cfg, err := config.New().Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// 2. Rules
	reg := registry.New(registry.SourceFor(cfg.Registry, gitinfo.New(), logger), logger)
	if err := reg.Reload(ctx); err != nil {
		logger.Warn("rule corpus unavailable, using built-in tables", "error", err)
	}

	// 3. Result cache
	rt := &runtime{
		cfg:      cfg,
		registry: reg,
		profiles: profiles.New(logger),
		history:  history.New(cfg.History.Path),
		logger:   logger,
	}
	var rc domain.ResultCache
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache, logger)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
		rt.cache = c
		rc = c
	}

	// 4. Engine
	rt.scores = application.NewScoreService(reg, application.BuildEngineConfig(cfg), rc, logger)
	return rt, nil
}

func (rt *runtime) Close() {
	if rt.cache != nil {
		rt.cache.Close()
	}
}

// withRuntime builds a runtime for cmd, runs fn and releases it.
func withRuntime(cmd *cobra.Command, opts *rootOptions, fn func(rt *runtime) error) error {
	logger := opts.logger(cmd.ErrOrStderr())
	rt, err := newRuntime(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(rt)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
