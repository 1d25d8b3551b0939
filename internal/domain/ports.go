package domain

import "context"

//go:generate mockgen -destination=mocks/rule_source.go -package=mocks . RuleSource

// RuleRegistry hands out the current immutable rule snapshot.
type RuleRegistry interface {
	Snapshot() *RuleSet
}

// RuleSource loads the rule corpus from a backing store.
type RuleSource interface {
	Name() string
	Load(ctx context.Context) (*RuleCorpus, error)
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// ScoreHistory persists past scoring runs.
type ScoreHistory interface {
	Save(entry ScoreEntry) error
	Load() ([]ScoreEntry, error)
}

// ResultCache memoizes scoring results by request key.
type ResultCache interface {
	Get(ctx context.Context, key string) (*ScoreResult, bool)
	Set(ctx context.Context, key string, result *ScoreResult) error
}
