package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/graph"
	"github.com/specialistvlad/ldgraph/internal/sink"
)

// ExportInput carries what a source needs besides the document.
type ExportInput struct {
	// BatchName is the input stem; sources derive identifiers from it.
	BatchName string
	Profile   *config.Profile
}

// RegisteredSource holds the Go function that turns one decoded input
// document into a graph. Export must wrap record.ErrBatchShape when the
// document does not have the expected layout.
type RegisteredSource struct {
	Export func(ctx context.Context, doc any, in ExportInput) (*graph.Graph, error)
}

// RegisterSource registers the handler of a profile source.
func (r *Registry) RegisterSource(name string, handler *RegisteredSource) {
	if _, exists := r.Sources[name]; exists {
		panic(fmt.Sprintf("source with name '%s' already registered", name))
	}
	slog.Debug("Registering source.", "name", name)
	r.Sources[name] = handler
}

// RegisteredSink holds the factory of an optional delivery sink. New returns
// a nil sink when opts leave the sink disabled.
type RegisteredSink struct {
	New func(ctx context.Context, opts sink.Options) (sink.Sink, error)
}

// RegisterSink registers a sink factory.
func (r *Registry) RegisterSink(name string, handler *RegisteredSink) {
	if _, exists := r.Sinks[name]; exists {
		panic(fmt.Sprintf("sink with name '%s' already registered", name))
	}
	slog.Debug("Registering sink.", "name", name)
	r.Sinks[name] = handler
}
