// Package watcher provides debounced file watching for pool and project files.
//
// It backs `vtp watch`, re-running validation whenever the watched file is
// rewritten by an external tool.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single file for changes, coalescing rapid write bursts.
//
// The parent directory is watched rather than the file itself: editors and
// vtp's own atomic saves replace the file via rename, which would otherwise
// detach the watch after the first change.
type Watcher struct {
	path string
	dir  string
	base string

	debounceDelay time.Duration
	debug         bool

	fsWatcher *fsnotify.Watcher
	pending   map[string]time.Time
	mu        sync.Mutex

	onChange func(path string)
	onRemove func(path string)
}

// Config holds configuration options for the Watcher.
type Config struct {
	Path          string        // file to watch
	DebounceDelay time.Duration // Default: 100ms
	Debug         bool
	OnChange      func(path string) // called after the file settles
	OnRemove      func(path string) // optional, called when the file disappears
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch path is required")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("change callback is required")
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		path:          abs,
		dir:           filepath.Dir(abs),
		base:          filepath.Base(abs),
		debounceDelay: debounce,
		debug:         cfg.Debug,
		pending:       make(map[string]time.Time),
		onChange:      cfg.OnChange,
		onRemove:      cfg.OnRemove,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logDebug("Watching: %s", w.path)

	// Start debounce processor
	go w.processDebounced(ctx)

	// Event loop
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logDebug("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.base {
		return
	}

	w.logDebug("Event: %s %s", event.Op, event.Name)

	switch {
	case event.Op&fsnotify.Write != 0, event.Op&fsnotify.Create != 0:
		w.scheduleChange()
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		// Atomic saves rename over the target, which arrives as Rename
		// followed by Create. Only report removal if the file stays gone.
		if _, err := os.Stat(w.path); os.IsNotExist(err) {
			if w.onRemove != nil {
				w.onRemove(w.path)
			}
		} else {
			w.scheduleChange()
		}
	}
}

// scheduleChange records the change time, restarting the debounce window.
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[w.path] = time.Now()
}

// processDebounced fires callbacks for changes past the debounce delay.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending()
		}
	}
}

// processPending checks for changes ready to report (past debounce delay).
func (w *Watcher) processPending() {
	w.mu.Lock()
	now := time.Now()
	ready := make([]string, 0, len(w.pending))

	for path, changedAt := range w.pending {
		if now.Sub(changedAt) >= w.debounceDelay {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		w.logDebug("Changed: %s", path)
		w.onChange(path)
	}
}

// logDebug logs a debug message if debug mode is enabled.
func (w *Watcher) logDebug(format string, args ...interface{}) {
	if w.debug {
		fmt.Fprintf(os.Stderr, "[vtp-watch] "+format+"\n", args...)
	}
}
