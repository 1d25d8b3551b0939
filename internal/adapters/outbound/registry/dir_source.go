package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Revisioner reports the version-control revision of a directory.
type Revisioner interface {
	Revision(path string) (string, error)
}

// DirSource loads the corpus from a directory holding one <type>.json file
// per rule type, plus the optional rule_confidence.json overlay and
// fabric_lookup.json table.
type DirSource struct {
	dir string
	vcs Revisioner
}

// NewDirSource reads dir. vcs may be nil; without it, or outside a
// repository, the revision is a hash of the file contents.
func NewDirSource(dir string, vcs Revisioner) *DirSource {
	return &DirSource{dir: dir, vcs: vcs}
}

func (s *DirSource) Name() string { return "dir:" + s.dir }

// Load reads and validates every corpus document. Missing rule files leave
// their type empty; a directory with no documents at all yields
// domain.ErrEmptyCorpus.
func (s *DirSource) Load(ctx context.Context) (*domain.RuleCorpus, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading rules dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules path %s is not a directory", s.dir)
	}

	corpus := &domain.RuleCorpus{
		Items:  make(map[string][]domain.RuleItem, len(domain.RuleTypes)),
		Source: s.Name(),
	}
	rev := newContentRevision()
	found := 0

	// 1. Rule documents, one file per type
	for _, rt := range domain.RuleTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := rt.Name + ".json"
		data, ok, err := s.read(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			corpus.Items[rt.Name] = nil
			continue
		}
		items, err := decodeRuleFile(name, data)
		if err != nil {
			return nil, err
		}
		corpus.Items[rt.Name] = items
		rev.add(name, data)
		found++
	}

	// 2. Confidence overlay
	if data, ok, err := s.read(confidenceFile); err != nil {
		return nil, err
	} else if ok {
		conf, err := decodeConfidence(data)
		if err != nil {
			return nil, err
		}
		corpus.Confidence = conf
		rev.add(confidenceFile, data)
		found++
	}

	// 3. Fabric table overrides
	if data, ok, err := s.read(fabricFile); err != nil {
		return nil, err
	} else if ok {
		fabrics, err := decodeFabrics(data)
		if err != nil {
			return nil, err
		}
		corpus.Fabrics = fabrics
		rev.add(fabricFile, data)
		found++
	}

	if found == 0 {
		return nil, fmt.Errorf("%s: %w", s.dir, domain.ErrEmptyCorpus)
	}

	// 4. Stamp the revision
	corpus.Revision = rev.String()
	if s.vcs != nil {
		if r, err := s.vcs.Revision(s.dir); err == nil {
			corpus.Revision = r
		}
	}
	return corpus, nil
}

func (s *DirSource) read(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}
