// Package watch reloads the recipe store when its backing entries are
// edited outside the process, keeping a long-running session honest in a
// local-first setup where the store files are plain JSON on disk.
package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/mise/internal/kvstore"
	"github.com/starford/mise/internal/recipestore"
	"github.com/starford/mise/internal/storage"
)

const reloadDebounce = 200 * time.Millisecond

// Watch starts an fsnotify watcher on the file backend's root directory and
// reloads the store whenever the recipes or categories entry changes on
// disk. Reloads are debounced because editors typically emit several events
// per save. Only the file backend is watchable; callers skip this for the
// sqlite backend.
//
// The store's own saves land in the same files; the reload that follows
// re-reads state that already matches memory, so it settles immediately.
func Watch(ctx context.Context, store *recipestore.Store, kv *kvstore.File, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(kv.Root()); err != nil {
		return err
	}

	watched := make(map[string]bool, 2)
	for _, key := range []string{storage.KeyRecipes, storage.KeyCategories} {
		p, pathErr := kv.EntryPath(key)
		if pathErr != nil {
			return pathErr
		}
		watched[p] = true
	}

	logger.Info("watcher: started", slog.String("root", kv.Root()))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(reloadDebounce)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(reloadDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			logger.Debug("watcher: reloading store")
			store.Reload(ctx)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[ev.Name] {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				logger.Debug("watcher: entry changed",
					slog.String("path", ev.Name),
					slog.String("op", ev.Op.String()))
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
