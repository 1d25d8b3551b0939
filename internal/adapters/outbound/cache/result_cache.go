package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/ristretto"
	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"

	"github.com/kridha-admin/stydev/internal/domain"
)

// ResultCache implements domain.ResultCache on an in-memory ristretto store.
type ResultCache struct {
	client *ristretto.Cache
	cache  *gocache.Cache[*domain.ScoreResult]
	cfg    domain.CacheConfig
	logger *slog.Logger
}

// New builds a cache bounded by cfg.MaxCost bytes of encoded results.
func New(cfg domain.CacheConfig, logger *slog.Logger) (*ResultCache, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// 1. Initialize the ristretto client; counters track ~10x the items
	// that fit, assuming ~4KB per result.
	counters := max(cfg.MaxCost/4096*10, 1000)
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: counters,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ristretto cache: %w", err)
	}

	// 2. Wrap it in a typed gocache
	return &ResultCache{
		client: client,
		cache:  gocache.New[*domain.ScoreResult](ristretto_store.NewRistretto(client)),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Get returns the cached result for key.
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.ScoreResult, bool) {
	r, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Debug("cache lookup", "result", err)
		return nil, false
	}
	return r, r != nil
}

// Set stores result under key. The write is visible to Get once Set
// returns.
func (c *ResultCache) Set(ctx context.Context, key string, result *domain.ScoreResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("sizing result: %w", err)
	}

	opts := []store.Option{store.WithCost(int64(len(data)))}
	if c.cfg.TTL > 0 {
		opts = append(opts, store.WithExpiration(c.cfg.TTL))
	}
	if err := c.cache.Set(ctx, key, result, opts...); err != nil {
		return fmt.Errorf("caching result: %w", err)
	}
	c.client.Wait()
	return nil
}

// Clear drops every entry, for use after a registry reload.
func (c *ResultCache) Clear(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Close releases the ristretto goroutines.
func (c *ResultCache) Close() {
	c.client.Close()
}
