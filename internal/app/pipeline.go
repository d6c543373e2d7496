package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/specialistvlad/ldgraph/internal/compact"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/fsutil"
	"github.com/specialistvlad/ldgraph/internal/jsonld"
	"github.com/specialistvlad/ldgraph/internal/record"
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/internal/sink"
)

// pipeline is the per-run state shared by all batches. Everything in it is
// read-only once the run has started.
type pipeline struct {
	app   *App
	table *compact.Table
	sinks []sink.Sink
}

// process exports one input file: decode, transform, encode, deliver.
func (p *pipeline) process(ctx context.Context, path string) (err error) {
	start := time.Now()
	batch := fsutil.Stem(path)
	ctx = ctxlog.With(ctx, "batch", batch)
	logger := ctxlog.FromContext(ctx)

	defer func() {
		p.app.metrics.ObserveBatch(err, time.Since(start))
		if err != nil {
			logger.Error("Batch failed.", "path", path, "error", err)
			err = fmt.Errorf("%s: %w", path, err)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := record.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %w", record.ErrBatchShape, err)
	}

	g, err := p.app.source.Export(ctx, doc, registry.ExportInput{
		BatchName: batch,
		Profile:   p.app.profile,
	})
	if err != nil {
		return err
	}
	p.app.metrics.ObserveGraph(g)
	if g.Merged > 0 {
		logger.Warn("Records shared identifiers; their nodes were merged.", "merged", g.Merged)
	}

	dataset, err := jsonld.MarshalIndent(g, p.table)
	if err != nil {
		return err
	}

	var deliverErrs []error
	for _, s := range p.sinks {
		derr := s.Deliver(ctx, sink.Delivery{Batch: batch, Dataset: dataset})
		p.app.metrics.ObserveDelivery(s.Name(), derr)
		if derr != nil {
			deliverErrs = append(deliverErrs, fmt.Errorf("sink %s: %w", s.Name(), derr))
		}
	}
	if err := errors.Join(deliverErrs...); err != nil {
		return err
	}

	logger.Info("Batch exported.", "path", path, "graph", g.ID, "nodes", g.Len(), "bytes", len(dataset))
	return nil
}
