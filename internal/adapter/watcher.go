package adapter

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

// DefaultWatchDebounce is the quiet period after the last file event before
// the watcher checks the file.
const DefaultWatchDebounce = 100 * time.Millisecond

// ChangeDetector reports whether a file differs from what the editor holds.
type ChangeDetector interface {
	Changed() (bool, error)
}

// FileWatcher notifies when the file behind a document is modified by
// another program. Writes made through Save do not fire the callback.
type FileWatcher struct {
	path     m.Path
	detector ChangeDetector
	callback func()
	debounce time.Duration
	log      *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewFileWatcher creates a watcher for path. A non-positive debounce falls
// back to DefaultWatchDebounce.
func NewFileWatcher(path m.Path, detector ChangeDetector, debounce time.Duration, log *slog.Logger, callback func()) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	if log == nil {
		log = slog.Default()
	}

	return &FileWatcher{
		path:     path,
		detector: detector,
		callback: callback,
		debounce: debounce,
		log:      log,
	}
}

// Run watches the file until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so atomic saves that replace the file are seen.
	dir := filepath.Dir(string(w.path))
	if err := watcher.Add(dir); err != nil {
		return err
	}

	w.log.Debug("watching file", "path", w.path)

	defer w.stopTimer()

	target := filepath.Clean(string(w.path))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			observability.WatcherEventsTotal.Inc()

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.log.Warn("file watcher error", "path", w.path, "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *FileWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, w.check)
}

func (w *FileWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *FileWatcher) check() {
	changed, err := w.detector.Changed()
	if err != nil {
		w.log.Warn("failed to check file", "path", w.path, "error", err)
		return
	}

	if !changed {
		return
	}

	w.log.Info("file changed on disk", "path", w.path)

	if w.callback != nil {
		w.callback()
	}
}
