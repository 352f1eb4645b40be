package livereload

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of file events into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher runs a rebuild function after source files change.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	rebuild  func(ctx context.Context) error
	// OnRebuild is called after every successful rebuild.
	OnRebuild func()
}

// NewWatcher watches dirs recursively. Directories that do not exist are
// skipped.
func NewWatcher(dirs []string, rebuild func(ctx context.Context) error) *Watcher {
	return &Watcher{
		dirs:     dirs,
		debounce: DefaultDebounce,
		rebuild:  rebuild,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, root := range w.dirs {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			log.Printf("livereload: %s not found, not watching", root)
			continue
		}
		if err := addTree(fw, root); err != nil {
			return err
		}
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fw, event.Name); err != nil {
						log.Printf("livereload: watching %s: %v", event.Name, err)
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			log.Printf("livereload: change detected, rebuilding")
			if err := w.rebuild(ctx); err != nil {
				log.Printf("livereload: rebuild failed: %v", err)
				continue
			}
			if w.OnRebuild != nil {
				w.OnRebuild()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("livereload: watcher error: %v", err)
		}
	}
}

// addTree watches root and every directory below it.
func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				log.Printf("livereload: failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
}
