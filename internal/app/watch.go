package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch re-exports input files that are created or written until ctx is
// done. Bursts of events for one file are collapsed into a single export.
func (a *App) watch(ctx context.Context, p *pipeline) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(a.config.InputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", a.config.InputDir, err)
	}
	a.logger.Info("👀 Watching for input changes.", "path", a.config.InputDir, "debounce", a.config.WatchDebounce)

	debounce := a.config.WatchDebounce
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.config.WorkerCount)
	export := func(path string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			// Failures are logged and counted per batch and do not end the watch.
			_ = p.process(ctx, path)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			a.logger.Info("Watch stopped.")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				wg.Wait()
				return errors.New("watcher closed unexpectedly")
			}
			if filepath.Ext(event.Name) != InputExtension {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			for path, t := range pending {
				if now.Sub(t) >= debounce {
					delete(pending, path)
					a.logger.Debug("Input changed.", "path", path)
					export(path)
				}
			}

		case err, ok := <-fw.Errors:
			if !ok {
				wg.Wait()
				return errors.New("watcher closed unexpectedly")
			}
			a.logger.Warn("Watch error.", "error", err)
		}
	}
}
