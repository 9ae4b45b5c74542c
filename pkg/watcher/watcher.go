// Package watcher re-triggers model imports when the source file changes.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/philipparndt/meshimport/internal/logger"
)

// FileWatcher watches a single model file and triggers a callback on change
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	path     string
	callback func(string)
	timer    *time.Timer
}

// New creates a file watcher. Change events within the debounce window are
// coalesced into a single callback, since editors and slicers often write a
// file in several bursts.
func New(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// Watch starts watching the given file. callback is called with the absolute
// path after every (debounced) write or create.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw.mu.Lock()
	fw.path = absPath
	fw.callback = callback
	fw.mu.Unlock()

	go fw.run()
	return nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.handleChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}

// handleChange restarts the debounce timer for the watched file.
func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if path != fw.path {
		return
	}

	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback := fw.callback
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
