package build

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce batches the burst of events an editor save produces into one rebuild.
const debounce = 200 * time.Millisecond

// Watch rebuilds the site whenever a Markdown draft in dir changes and
// blocks until ctx is cancelled. Rebuild failures are logged and watching
// continues.
func (b *Builder) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("build: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("build: watch %s: %w", dir, err)
	}

	b.logger.Info("watcher: started", slog.String("dir", dir))

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(debounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			b.logger.Info("watcher: stopped")
			return nil

		case <-rebuildCh:
			if _, err := b.Run(ctx); err != nil {
				b.logger.Error("watcher: rebuild failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			b.logger.Debug("watcher: draft changed",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
