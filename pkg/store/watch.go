package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a backing file change notification.
type EventType int

const (
	// EventFileChanged indicates the backing file was written, created or
	// replaced.
	EventFileChanged EventType = iota

	// EventFileRemoved indicates the backing file disappeared.
	EventFileRemoved
)

// Event is emitted by Watch when the backing file changes on disk.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events for the OS file at path until ctx is
// cancelled. The parent directory is watched so replace-by-rename writes are
// seen. Callers should drain the returned channel; events are dropped while
// the consumer is busy and the channel is closed once ctx is done.
func Watch(ctx context.Context, path string, log *zap.Logger) (<-chan Event, error) {
	if path == "" {
		return nil, errors.New("store: watch path unknown")
	}
	if log == nil {
		log = zap.NewNop()
	}
	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("watcher close", zap.Error(err))
			}
		})
	}
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads the whole file anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", zap.Error(err))
				throttle.Enqueue(Event{Type: EventFileChanged, Path: target}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				switch {
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					if _, err := os.Stat(target); err == nil {
						throttle.Enqueue(Event{Type: EventFileChanged, Path: target}, send)
						continue
					}
					throttle.Enqueue(Event{Type: EventFileRemoved, Path: target}, send)
				case evt.Op&(fsnotify.Write|fsnotify.Create) != 0:
					throttle.Enqueue(Event{Type: EventFileChanged, Path: target}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so the UI reloads once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]string
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]string),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev.Path
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding the lock so nothing is sent after Stop returns;
// send never blocks.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[EventType]string)
	t.timer = nil
	if t.stopped {
		return
	}

	// A removal followed by a rewrite within one burst is just a change.
	if p, ok := pending[EventFileChanged]; ok {
		send(Event{Type: EventFileChanged, Path: p})
		return
	}
	if p, ok := pending[EventFileRemoved]; ok {
		send(Event{Type: EventFileRemoved, Path: p})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
