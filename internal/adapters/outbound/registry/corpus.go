package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"

	"github.com/kridha-admin/stydev/internal/domain"
)

const (
	confidenceFile = "rule_confidence.json"
	fabricFile     = "fabric_lookup.json"
)

// decodeRuleFile validates one rule document and flattens it into items.
// A top-level array may mix plain items with wrapper blocks such as
// {"principles": [...]}; a top-level object is a single item.
func decodeRuleFile(name string, data []byte) ([]domain.RuleItem, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := validate(ruleFileSchema, name, doc); err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case map[string]any:
		return []domain.RuleItem{v}, nil
	case []any:
		var items []domain.RuleItem
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, unwrap(m)...)
		}
		return items, nil
	}
	return nil, nil
}

// unwrap returns the nested items of a wrapper block, or the entry itself.
func unwrap(entry map[string]any) []domain.RuleItem {
	for _, rt := range domain.RuleTypes {
		nested, ok := entry[rt.Name].([]any)
		if !ok {
			continue
		}
		items := make([]domain.RuleItem, 0, len(nested))
		for _, n := range nested {
			if m, ok := n.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	}
	return []domain.RuleItem{entry}
}

// decodeConfidence reads the overlay. Values are either a bare score or an
// object carrying avg_confidence; entries without a score are skipped.
func decodeConfidence(data []byte) (map[string]float64, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", confidenceFile, err)
	}
	if err := validate(confidenceSchema, confidenceFile, doc); err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for id, v := range doc.(map[string]any) {
		switch c := v.(type) {
		case float64:
			out[id] = c
		case map[string]any:
			if avg, ok := c["avg_confidence"].(float64); ok {
				out[id] = avg
			}
		}
	}
	return out, nil
}

func decodeFabrics(data []byte) (map[string]domain.FabricSpec, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fabricFile, err)
	}
	if err := validate(fabricSchema, fabricFile, doc); err != nil {
		return nil, err
	}

	var fabrics map[string]domain.FabricSpec
	if err := json.Unmarshal(data, &fabrics); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fabricFile, err)
	}
	for name, f := range fabrics {
		if c, ok := domain.ParseFabricConstruction(string(f.Construction)); ok {
			f.Construction = c
		}
		if s, ok := domain.ParseSurfaceFinish(string(f.Surface)); ok {
			f.Surface = s
		}
		fabrics[name] = f
	}
	return fabrics, nil
}

// contentRevision fingerprints raw documents for corpora outside git.
type contentRevision struct {
	h hash.Hash
}

func newContentRevision() *contentRevision {
	return &contentRevision{h: sha256.New()}
}

func (c *contentRevision) add(name string, data []byte) {
	c.h.Write([]byte(name))
	c.h.Write([]byte{0})
	c.h.Write(data)
	c.h.Write([]byte{0})
}

func (c *contentRevision) String() string {
	return "sha256:" + hex.EncodeToString(c.h.Sum(nil))[:12]
}

func countItems(c *domain.RuleCorpus) int {
	n := 0
	for _, items := range c.Items {
		n += len(items)
	}
	return n
}
