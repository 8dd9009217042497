package store

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce window for coalescing bursts of filesystem events (a single
// copy can produce several writes).
const watchDebounce = 250 * time.Millisecond

// Watcher reports external changes to the animation roots so the UI can
// rebuild its menus and recover when the active file disappears. onChange
// is invoked from the watcher goroutine; callers must hop onto the UI
// thread themselves.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewWatcher watches both roots of the given Store.
func NewWatcher(s *Store, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	if err := fsw.Add(s.builtinRoot); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch built-in root: %w", err)
	}
	// Dev setups may point both roots at the same directory.
	if s.userRoot != s.builtinRoot {
		if err := fsw.Add(s.userRoot); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch user root: %w", err)
		}
	}

	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run coalesces animation file events and fires the change callback once
// per burst.
func (w *Watcher) run() {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isAnimationEvent(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				pending = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-pending:
			timer = nil
			pending = nil
			if w.onChange != nil {
				w.onChange()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Animation watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// isAnimationEvent reports whether the event concerns an animation file
// appearing, changing or disappearing.
func isAnimationEvent(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), AnimationExt) {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) ||
		ev.Op.Has(fsnotify.Rename) || ev.Op.Has(fsnotify.Write)
}

// Close stops the watcher goroutine and releases the OS watch handles.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
