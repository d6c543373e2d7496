// Package github exports GitHub issue and pull request listings (the REST
// API's bare array shape) as issue graphs.
package github

import (
	"context"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/engine"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/record"
	"github.com/specialistvlad/ldgraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Issue maps one issue object onto a record. The key is the issue number,
// else the numeric id. Engagement is thumbs-up minus thumbs-down.
func Issue(obj map[string]any) record.Record {
	id := record.ID(obj, "number")
	if id == "" {
		id = record.ID(obj, "id")
	}
	reactions := record.Object(obj, "reactions")

	return record.Record{
		ID:         id,
		Title:      record.String(obj, "title"),
		Engagement: record.Int(reactions, "+1") - record.Int(reactions, "-1"),
		Categories: record.Names(obj, "labels"),
		Date:       record.String(obj, "updated_at"),
		URL:        record.String(obj, "html_url"),
	}
}

// Export is the source handler for github profiles.
func Export(ctx context.Context, doc any, in registry.ExportInput) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx).With("source", config.SourceGitHub, "batch", in.BatchName)

	items, err := record.Array(doc)
	if err != nil {
		return nil, err
	}

	issues := record.Objects(items)
	if skipped := len(items) - len(issues); skipped > 0 {
		logger.Warn("Skipping malformed issues.", "count", skipped)
	}

	records := make([]record.Record, 0, len(issues))
	for _, obj := range issues {
		records = append(records, Issue(obj))
	}
	logger.Debug("Read issues.", "count", len(records))

	return engine.TransformProfile(in.Profile, engine.Batch{Name: in.BatchName, Records: records})
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(config.SourceGitHub, &registry.RegisteredSource{Export: Export})
}
