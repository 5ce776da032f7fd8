// Package watcher reloads the config file while the TUI is running. Editors
// tend to emit bursts of write/rename events for a single save, so changes
// are debounced before the reload callback fires.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the debounce window applied to file events.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback. Only the most
// recently scheduled callback runs once the window elapses.
type Debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

// NewDebouncer creates a debouncer; a zero window means DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules callback after the window. Triggering again before it
// elapses cancels the previous schedule.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Stop() can return false after the timer already fired; the
		// sequence number keeps a stale callback from running.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// ConfigWatcher watches one file and invokes a callback, debounced, when it
// changes. The parent directory is watched rather than the file itself so
// atomic save-via-rename still delivers events.
type ConfigWatcher struct {
	fw   *fsnotify.Watcher
	deb  *Debouncer
	done chan struct{}
}

// Watch starts watching path. onChange runs on the watcher goroutine after
// the debounce window; it must not block for long.
func Watch(path string, onChange func()) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &ConfigWatcher{
		fw:   fw,
		deb:  NewDebouncer(0),
		done: make(chan struct{}),
	}
	go w.loop(abs, onChange)
	return w, nil
}

func (w *ConfigWatcher) loop(path string, onChange func()) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.deb.Trigger(onChange)
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the user just loses live reload.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and drops any pending reload.
func (w *ConfigWatcher) Close() error {
	close(w.done)
	w.deb.Cancel()
	return w.fw.Close()
}
