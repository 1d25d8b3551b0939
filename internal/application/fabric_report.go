package application

import (
	"errors"
	"fmt"

	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/fabric"
)

// ErrUnknownFabric is returned for fabric names missing from the table.
var ErrUnknownFabric = errors.New("unknown fabric")

// FabricReport is the resolved behaviour of a named fabric on one body.
type FabricReport struct {
	Name     string                        `json:"name"`
	Spec     domain.FabricSpec             `json:"spec"`
	Resolved fabric.Resolved               `json:"resolved"`
	Ease     float64                       `json:"ease"`
	Cling    map[string]fabric.ClingResult `json:"cling"`
}

// AssessFabric resolves a named fabric against the current rules and
// assesses its cling on body for a garment cut with the given ease.
func (s *ScoreService) AssessFabric(name string, body domain.BodyProfile, ease float64) (*FabricReport, error) {
	rs := s.registry.Snapshot()
	key := domain.NormalizeToken(name)
	spec, ok := rs.Fabric(key)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFabric, name)
	}

	g := domain.DefaultGarmentProfile()
	g.FabricName = key
	g.GSMEstimated = spec.BaseGSM
	g.Drape = spec.Drape
	if spec.Fiber != "" {
		g.PrimaryFiber = spec.Fiber
	}
	if spec.Construction != "" {
		g.Construction = spec.Construction
	}
	if spec.Surface != "" {
		g.Surface = spec.Surface
	}

	resolved := fabric.Resolve(&g, rs)
	return &FabricReport{
		Name:     key,
		Spec:     spec,
		Resolved: resolved,
		Ease:     ease,
		Cling:    fabric.ZoneCling(resolved, &body, ease),
	}, nil
}
