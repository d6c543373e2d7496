// Package discourse exports Discourse topic listings (the /latest.json shape)
// as forum graphs.
package discourse

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/engine"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/record"
	"github.com/specialistvlad/ldgraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// TopicsPath is where a listing keeps its topics.
var TopicsPath = []string{"topic_list", "topics"}

// Topic maps one topic object onto a record. The topic URL is only built when
// the topic has both a slug and an id.
func Topic(obj map[string]any, baseURL string) record.Record {
	id := record.ID(obj, "id")
	slug := record.String(obj, "slug")

	r := record.Record{
		ID:         id,
		Title:      record.String(obj, "title"),
		Engagement: record.Int(obj, "like_count"),
		Categories: record.Names(obj, "tags"),
		Date:       record.String(obj, "last_posted_at"),
	}
	if baseURL != "" && slug != "" && id != "" {
		r.URL = fmt.Sprintf("%s/t/%s/%s", strings.TrimRight(baseURL, "/"), slug, id)
	}
	return r
}

// Export is the source handler for discourse profiles.
func Export(ctx context.Context, doc any, in registry.ExportInput) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx).With("source", config.SourceDiscourse, "batch", in.BatchName)

	items, err := record.AtPath(doc, TopicsPath...)
	if err != nil {
		return nil, err
	}

	topics := record.Objects(items)
	if skipped := len(items) - len(topics); skipped > 0 {
		logger.Warn("Skipping malformed topics.", "count", skipped)
	}

	records := make([]record.Record, 0, len(topics))
	for _, obj := range topics {
		records = append(records, Topic(obj, in.Profile.BaseURL))
	}
	logger.Debug("Read topics.", "count", len(records))

	return engine.TransformProfile(in.Profile, engine.Batch{Name: in.BatchName, Records: records})
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(config.SourceDiscourse, &registry.RegisteredSource{Export: Export})
}
