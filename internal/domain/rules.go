package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrRuleNotFound is returned when a rule id is not in the registry.
	ErrRuleNotFound = errors.New("rule not found")
	// ErrEmptyCorpus is returned by sources that hold no rule documents.
	ErrEmptyCorpus = errors.New("rule corpus is empty")
)

// DefaultRuleConfidence applies to rules with no confidence data.
const DefaultRuleConfidence = 0.70

// RuleTypes lists the corpus document types, each with the id field its
// wrapper blocks use.
var RuleTypes = []struct {
	Name    string
	IDField string
}{
	{"principles", "principle_id"},
	{"rules", "rule_id"},
	{"exceptions", "exception_id"},
	{"thresholds", "threshold_id"},
	{"body_type_modifiers", "modifier_id"},
	{"contradictions", "contradiction_id"},
	{"fabric_rules", "fabric_rule_id"},
	{"context_rules", "context_rule_id"},
	{"scoring_functions", "function_id"},
}

var idFields = []string{
	"principle_id", "rule_id", "exception_id", "threshold_id",
	"modifier_id", "contradiction_id", "fabric_rule_id",
	"context_rule_id", "function_id", "scoring_function_id",
}

// RuleItem is one free-form rule document from the corpus.
type RuleItem map[string]any

// ID returns the item's identifier from the first id field present.
func (r RuleItem) ID() string {
	for _, f := range idFields {
		if v, ok := r[f]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// RuleCorpus is the raw material a RuleSource produces.
type RuleCorpus struct {
	Items      map[string][]RuleItem `json:"items"`
	Confidence map[string]float64    `json:"confidence"`
	Fabrics    map[string]FabricSpec `json:"fabrics,omitempty"`
	Revision   string                `json:"revision,omitempty"`
	Source     string                `json:"source,omitempty"`
}

// RuleSet is an immutable, indexed snapshot of the rule corpus together
// with the fabric table. It is safe for concurrent readers.
type RuleSet struct {
	byType     map[string][]RuleItem
	byID       map[string]RuleItem
	confidence map[string]float64
	fabrics    map[string]FabricSpec
	revision   string
	source     string
}

// NewRuleSet indexes a corpus. Corpus fabrics override or extend the
// built-in fabric table.
func NewRuleSet(c *RuleCorpus) *RuleSet {
	rs := &RuleSet{
		byType:     make(map[string][]RuleItem),
		byID:       make(map[string]RuleItem),
		confidence: make(map[string]float64),
		fabrics:    DefaultFabrics(),
	}
	if c == nil {
		return rs
	}
	rs.revision = c.Revision
	rs.source = c.Source
	for t, items := range c.Items {
		rs.byType[t] = items
		for _, item := range items {
			if id := item.ID(); id != "" {
				rs.byID[id] = item
			}
		}
	}
	for id, v := range c.Confidence {
		rs.confidence[id] = v
	}
	for name, f := range c.Fabrics {
		rs.fabrics[name] = f
	}
	return rs
}

// EmptyRuleSet returns a rule set holding only the built-in tables.
func EmptyRuleSet() *RuleSet { return NewRuleSet(nil) }

// GetByID returns a rule by id.
func (rs *RuleSet) GetByID(id string) (RuleItem, error) {
	item, ok := rs.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	return item, nil
}

// GetByType returns every item of the given corpus type.
func (rs *RuleSet) GetByType(ruleType string) []RuleItem {
	return rs.byType[ruleType]
}

// LookupConfidence resolves an item's confidence from the overlay, then the
// item's own "confidence" field, then the built-in principle table.
func (rs *RuleSet) LookupConfidence(id string) (float64, bool) {
	if v, ok := rs.confidence[id]; ok {
		return v, true
	}
	if item, ok := rs.byID[id]; ok {
		switch c := item["confidence"].(type) {
		case float64:
			return c, true
		case int:
			return float64(c), true
		}
	}
	if v, ok := PrincipleConfidence[id]; ok {
		return v, true
	}
	return 0, false
}

// Confidence returns LookupConfidence or DefaultRuleConfidence.
func (rs *RuleSet) Confidence(id string) float64 {
	if v, ok := rs.LookupConfidence(id); ok {
		return v
	}
	return DefaultRuleConfidence
}

// Fabric looks up a named fabric.
func (rs *RuleSet) Fabric(name string) (FabricSpec, bool) {
	f, ok := rs.fabrics[name]
	return f, ok
}

// FabricNames returns all known fabric names, sorted.
func (rs *RuleSet) FabricNames() []string {
	names := make([]string, 0, len(rs.fabrics))
	for n := range rs.fabrics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (rs *RuleSet) TotalItems() int      { return len(rs.byID) }
func (rs *RuleSet) ConfidenceCount() int { return len(rs.confidence) }
func (rs *RuleSet) Revision() string     { return rs.revision }
func (rs *RuleSet) Source() string       { return rs.source }

// TypeCounts returns the number of items per corpus type.
func (rs *RuleSet) TypeCounts() map[string]int {
	counts := make(map[string]int, len(rs.byType))
	for t, items := range rs.byType {
		counts[t] = len(items)
	}
	return counts
}

// Summary renders a human-readable description of the snapshot.
func (rs *RuleSet) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Golden Registry: %d indexed items\n", rs.TotalItems())
	counts := rs.TypeCounts()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(&b, "  %s: %d\n", t, counts[t])
	}
	fmt.Fprintf(&b, "  confidence entries: %d", rs.ConfidenceCount())
	if rs.revision != "" {
		fmt.Fprintf(&b, "\n  revision: %s", rs.revision)
	}
	return b.String()
}
