package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/kridha-admin/stydev/internal/domain"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS styling_rules (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	rule_type TEXT NOT NULL,
	items     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_styling_rules_type ON styling_rules(rule_type);
CREATE TABLE IF NOT EXISTS rule_confidence (
	item_id        TEXT PRIMARY KEY,
	avg_confidence REAL NOT NULL
);`

// SQLiteSource loads the corpus from a document store with one
// styling_rules row per (type, item batch) and a rule_confidence table.
type SQLiteSource struct {
	path string
}

func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

func (s *SQLiteSource) Name() string { return "sqlite:" + s.path }

// Load reads every styling_rules row in insertion order. Rows of the same
// type are concatenated.
func (s *SQLiteSource) Load(ctx context.Context) (*domain.RuleCorpus, error) {
	// sqlite creates missing files on open; a typo must not yield an empty store
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("opening rule store: %w", err)
	}
	db, err := open(s.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	corpus := &domain.RuleCorpus{
		Items:      make(map[string][]domain.RuleItem),
		Confidence: make(map[string]float64),
		Source:     s.Name(),
	}
	rev := newContentRevision()

	// 1. Rule rows
	rows, err := db.QueryContext(ctx, `SELECT rule_type, items FROM styling_rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying styling_rules: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ruleType, raw string
		if err := rows.Scan(&ruleType, &raw); err != nil {
			return nil, fmt.Errorf("scanning styling_rules: %w", err)
		}
		items, err := decodeRuleFile("styling_rules["+ruleType+"]", []byte(raw))
		if err != nil {
			return nil, err
		}
		corpus.Items[ruleType] = append(corpus.Items[ruleType], items...)
		rev.add(ruleType, []byte(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading styling_rules: %w", err)
	}

	// 2. Confidence rows
	crows, err := db.QueryContext(ctx, `SELECT item_id, avg_confidence FROM rule_confidence ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("querying rule_confidence: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var id string
		var avg float64
		if err := crows.Scan(&id, &avg); err != nil {
			return nil, fmt.Errorf("scanning rule_confidence: %w", err)
		}
		corpus.Confidence[id] = avg
		rev.add(id, []byte(fmt.Sprintf("%g", avg)))
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("reading rule_confidence: %w", err)
	}

	if countItems(corpus) == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, domain.ErrEmptyCorpus)
	}
	corpus.Revision = rev.String()
	return corpus, nil
}

// Import replaces the store's contents with corpus inside one transaction,
// creating the file and tables as needed. Each type becomes a single row.
func Import(ctx context.Context, path string, corpus *domain.RuleCorpus) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM styling_rules`); err != nil {
		return fmt.Errorf("clearing styling_rules: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rule_confidence`); err != nil {
		return fmt.Errorf("clearing rule_confidence: %w", err)
	}

	for _, rt := range domain.RuleTypes {
		items := corpus.Items[rt.Name]
		if len(items) == 0 {
			continue
		}
		raw, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", rt.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO styling_rules (rule_type, items) VALUES (?, ?)`, rt.Name, string(raw)); err != nil {
			return fmt.Errorf("inserting %s: %w", rt.Name, err)
		}
	}
	for id, avg := range corpus.Confidence {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rule_confidence (item_id, avg_confidence) VALUES (?, ?)`, id, avg); err != nil {
			return fmt.Errorf("inserting confidence %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func open(path string) (*sql.DB, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening rule store: %w", err)
	}
	for _, p := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode = WAL"} {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating rule store schema: %w", err)
	}
	return db, nil
}
