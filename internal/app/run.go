package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/ldgraph/internal/compact"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/fsutil"
	"github.com/specialistvlad/ldgraph/internal/sink"
	"github.com/specialistvlad/ldgraph/internal/urdf"
)

// InputExtension selects the files of the input directory that are exported.
const InputExtension = ".json"

// Run exports every input file once and, in watch mode, keeps exporting
// changed files until ctx is done. Batch failures do not stop other batches;
// they are joined into the returned error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "profile", a.profile.Name, "input", a.config.InputDir, "output", a.config.OutputDir)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer()
	}

	table, err := a.compactionTable(ctx)
	if err != nil {
		return err
	}

	sinks, err := a.openSinks(ctx)
	if err != nil {
		return err
	}
	defer a.closeSinks(sinks)

	files, err := fsutil.ListFiles(a.config.InputDir, InputExtension)
	if err != nil {
		return fmt.Errorf("failed to list input files: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No input files found.", "path", a.config.InputDir, "extension", InputExtension)
	}

	p := &pipeline{app: a, table: table, sinks: sinks}

	a.logger.Info("🚀 Starting export...", "files", len(files), "workers", a.config.WorkerCount)
	runErr := p.processAll(ctx, files)
	a.logger.Info("🏁 Export finished.", "files", len(files), "failed", countErrors(runErr))

	if a.config.Watch {
		if err := a.watch(ctx, p); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return runErr
}

// compactionTable fetches the runtime's compaction list when the profile asks
// for compaction. Without a runtime, output is left uncompacted.
func (a *App) compactionTable(ctx context.Context) (*compact.Table, error) {
	if !a.profile.Compact {
		a.logger.Debug("Compaction disabled by profile.")
		return nil, nil
	}
	if !a.urdf.Enabled() {
		a.logger.Warn("No URDF runtime configured, identifiers are not compacted.")
		return nil, nil
	}

	iris, err := a.urdf.FetchZURL(ctx)
	if err != nil {
		if errors.Is(err, urdf.ErrNoBaseURL) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch compaction table: %w", err)
	}
	table := compact.NewTable(iris)
	a.logger.Info("Compaction table loaded.", "entries", table.Len(), "url", a.urdf.BaseURL())
	return table, nil
}

// openSinks builds the file sink and every enabled registered sink.
func (a *App) openSinks(ctx context.Context) ([]sink.Sink, error) {
	file, err := sink.NewFile(a.config.OutputDir)
	if err != nil {
		return nil, err
	}
	sinks := []sink.Sink{file}

	opts := sink.Options{
		URDF:     a.urdf,
		NoUpload: a.config.NoUpload,
		SocketIO: sink.SocketIOOptions{
			URL:        a.config.SocketIOURL,
			Path:       a.config.SocketIOPath,
			Event:      a.config.SocketIOEvent,
			ReplyEvent: a.config.SocketIOReply,
		},
		Print:  a.config.Print,
		Stdout: a.outW,
	}
	for _, name := range a.registry.SinkNames() {
		s, err := a.registry.Sinks[name].New(ctx, opts)
		if err != nil {
			a.closeSinks(sinks)
			return nil, fmt.Errorf("failed to open sink %s: %w", name, err)
		}
		if s == nil {
			continue
		}
		a.logger.Debug("Sink enabled.", "sink", name)
		sinks = append(sinks, s)
	}
	return sinks, nil
}

func (a *App) closeSinks(sinks []sink.Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			a.logger.Warn("Failed to close sink.", "sink", s.Name(), "error", err)
		}
	}
}

// processAll exports files on a bounded pool of workers.
func (p *pipeline) processAll(ctx context.Context, files []string) error {
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(p.app.config.WorkerCount)
	for i, path := range files {
		g.Go(func() error {
			errs[i] = p.process(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
