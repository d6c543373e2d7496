package engine

import (
	"fmt"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/vocab"
)

// FromProfile maps an exporter profile onto the engine configuration.
func FromProfile(p *config.Profile) Config {
	return Config{
		VersionStrategy: p.VersionStrategy,
		Preceders:       p.Preceders,
		RatingVariant:   p.RatingVariant,
		Vocabulary: vocab.Config{
			Name:      p.TermSetName,
			SetKey:    p.TermSetKey,
			TermKind:  p.TermKind,
			Filtered:  p.FilterLabels,
			AllowList: p.Labels,
		},
	}
}

// TransformProfile builds the graph of b with the engine configured by p. A
// graph id set on the profile replaces the one derived from the batch name.
func TransformProfile(p *config.Profile, b Batch) (*graph.Graph, error) {
	e, err := New(FromProfile(p))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	g := e.Transform(b)
	if p.GraphID != "" {
		g.ID = p.GraphID
	}
	return g, nil
}
