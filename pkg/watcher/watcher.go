package watcher

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls back when a watched file is written, coalescing bursts
// of events that arrive within the debounce window.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
	dirs      map[string]bool
}

// New creates a file watcher
func New(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		dirs:      make(map[string]bool),
	}, nil
}

// Watch registers callback for every file. The callback receives the
// absolute path of the file that changed. The parent directory is watched
// rather than the file, so saves that replace the file through a rename keep
// being reported.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if _, err := os.Stat(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		dir := filepath.Dir(absPath)
		if !fw.dirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = true
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches file events until ctx is cancelled or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			fw.stopTimers()
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			// a rename onto the path arrives as Create
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// handleFileChange restarts the debounce timer for filePath
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for path, timer := range fw.timers {
		timer.Stop()
		delete(fw.timers, path)
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.stopTimers()
	return fw.watcher.Close()
}
