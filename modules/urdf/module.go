// Package urdf registers the sink that loads datasets into a Node-RED URDF
// runtime.
package urdf

import (
	"context"

	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/internal/sink"
	"github.com/specialistvlad/ldgraph/internal/urdf"
)

// Name of the sink.
const Name = "urdf"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink uploads every dataset through the runtime client.
type Sink struct {
	client *urdf.Client
}

// New returns the sink, or nil when uploads are off or no runtime is set.
func New(ctx context.Context, opts sink.Options) (sink.Sink, error) {
	logger := ctxlog.FromContext(ctx)
	switch {
	case opts.NoUpload:
		logger.Info("Upload disabled.")
		return nil, nil
	case opts.URDF == nil || !opts.URDF.Enabled():
		logger.Info("No URDF runtime configured, skipping upload.")
		return nil, nil
	}
	return &Sink{client: opts.URDF}, nil
}

func (s *Sink) Name() string { return Name }

// Deliver uploads the dataset.
func (s *Sink) Deliver(ctx context.Context, d sink.Delivery) error {
	body, err := s.client.Upload(ctx, d.Dataset)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Uploaded dataset.", "batch", d.Batch, "url", s.client.BaseURL(), "response_bytes", len(body))
	return nil
}

func (s *Sink) Close() error { return nil }

// Register registers the sink with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, &registry.RegisteredSink{New: New})
}
