package leaderboard

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
)

// DefaultDebounce collapses editor save bursts into one reload.
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher re-imports a highscore file whenever it changes and hands
// the records to a callback.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onLoad   func([]Record)
	logger   *zap.SugaredLogger

	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	inflight sync.WaitGroup
}

// NewFileWatcher watches path. The directory is watched rather than the
// file so that atomic rename-on-save is still seen.
func NewFileWatcher(path string, onLoad func([]Record), log *zap.SugaredLogger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}
	return &FileWatcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		onLoad:   onLoad,
		logger:   logger.OrNop(log),
		watcher:  w,
	}, nil
}

// Run loads the file once, then reloads on every change until ctx is done.
// Once Run returns, onLoad is not called again.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	defer fw.stop()
	fw.reload()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.logger.Debugw("Highscore file changed", logger.FieldFile, event.Name, "op", event.Op.String())
				fw.schedule()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warnw("Highscore watcher error", logger.FieldError, err)
		}
	}
}

func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.scheduledReload)
}

// scheduledReload runs from the debounce timer. A reload that already
// started when Run stops is waited for; one that has not started is dropped.
func (fw *FileWatcher) scheduledReload() {
	fw.mu.Lock()
	if fw.stopped {
		fw.mu.Unlock()
		return
	}
	fw.inflight.Add(1)
	fw.mu.Unlock()
	defer fw.inflight.Done()
	fw.reload()
}

func (fw *FileWatcher) stop() {
	fw.mu.Lock()
	fw.stopped = true
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	fw.inflight.Wait()
}

func (fw *FileWatcher) reload() {
	recs, err := ImportFile(fw.path)
	if err != nil {
		// keep the previous standings
		fw.logger.Errorw("Highscore reload failed", logger.FieldFile, fw.path, logger.FieldError, err)
		return
	}
	fw.logger.Infow("Highscores reloaded", logger.FieldFile, fw.path, logger.FieldCount, len(recs))
	fw.onLoad(recs)
}
