// Package print registers the sink that writes datasets to standard output.
package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/internal/sink"
)

// Name of the sink.
const Name = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Sink writes whole datasets one after another.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns the sink when printing is requested.
func New(ctx context.Context, opts sink.Options) (sink.Sink, error) {
	if !opts.Print {
		return nil, nil
	}
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	return &Sink{w: w}, nil
}

func (s *Sink) Name() string { return Name }

// Deliver prints the dataset.
func (s *Sink) Deliver(ctx context.Context, d sink.Delivery) error {
	ctxlog.FromContext(ctx).Debug("Printing dataset.", "batch", d.Batch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(d.Dataset); err != nil {
		return fmt.Errorf("failed to print %s: %w", d.Batch, err)
	}
	return nil
}

func (s *Sink) Close() error { return nil }

// Register registers the sink with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, &registry.RegisteredSink{New: New})
}
