package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce absorbs the burst of events editors emit per save.
const debounce = 100 * time.Millisecond

// watchCatalog blocks until ctx is done, re-running fn whenever the
// catalog file at path changes. Regeneration failures are logged and
// watching continues, so a half-saved catalog does not kill the loop.
func watchCatalog(ctx context.Context, path string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	// Watch the directory rather than the file: editors replace files
	// on save, which silently drops a watch on the file itself.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)
	log.Infow("watching catalog", "path", path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			log.Infow("watch stopped")
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", "error", err)
		case <-pending:
			pending = nil
			log.Infow("catalog changed, regenerating", "path", path)
			if err := fn(); err != nil {
				log.Errorw("regeneration failed", "error", err)
			}
		}
	}
}
