package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a content file into a Store whenever it changes on disk.
// A file that fails to load is logged and the previous snapshot is kept.
type Watcher struct {
	loader   *Loader
	store    *Store
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*Site)
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors that replace the file by rename are picked up too.
func NewWatcher(loader *Loader, store *Store, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file system watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{loader: loader, store: store, path: abs, watcher: fw}, nil
}

// OnReload registers a callback invoked after every successful reload.
// It must be called before Run.
func (w *Watcher) OnReload(fn func(*Site)) {
	w.onReload = fn
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	site, err := w.loader.Load(w.path)
	if err != nil {
		slog.Error("Content reload failed, keeping previous content", "path", w.path, "error", err)
		return
	}
	w.store.Replace(site)
	slog.Info("Content reloaded", "path", w.path, "testimonials", len(site.Testimonials.Items))
	if w.onReload != nil {
		w.onReload(site)
	}
}
