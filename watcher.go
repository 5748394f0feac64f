package shader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// SourceWatcher signals when any of a set of shader files changes on disk.
//
// It never touches the graphics context: the render thread polls Changed
// once per frame and rebuilds there.
type SourceWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan struct{}
	done    chan struct{}
	logger  *slog.Logger

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewSourceWatcher watches the given files. Their parent directories are
// watched so editors that save by renaming a temp file are still seen.
func NewSourceWatcher(logger *slog.Logger, paths ...string) (*SourceWatcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &SourceWatcher{
		watcher: fw,
		files:   make(map[string]bool, len(paths)),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Changed receives a value after one or more watched files changed.
// Bursts of events collapse into a single pending signal.
func (w *SourceWatcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops watching. It is safe to call more than once.
func (w *SourceWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *SourceWatcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			w.logger.Debug("shader source changed", "file", name, "op", event.Op.String())
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "err", err)
		}
	}
}
