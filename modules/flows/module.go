// Package flows exports Node-RED flow exports as the flow-library graph.
package flows

import (
	"context"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/flowlib"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Export is the source handler for flows profiles.
func Export(ctx context.Context, doc any, in registry.ExportInput) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx).With("source", config.SourceFlows, "batch", in.BatchName)

	nodes, err := flowlib.Nodes(doc)
	if err != nil {
		return nil, err
	}

	graphID := in.Profile.GraphID
	if graphID == "" {
		graphID = flowlib.DefaultGraphID
	}
	g := flowlib.Build(graphID, in.Profile.FlowsURL, nodes)
	logger.Debug("Read flow export.", "nodes", len(nodes), "flows", g.Len())
	return g, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(config.SourceFlows, &registry.RegisteredSource{Export: Export})
}
