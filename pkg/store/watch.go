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
)

// Event is emitted by Watch when the slot changes on disk.
type Event struct {
	Slot string
}

type watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams change events for the slot file until ctx is cancelled.
// Callers should drain the channel; bursts are coalesced and events are
// dropped when the consumer lags.
func (s *DiskvSlot) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("store: slot base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := fw.Add(s.basePath); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	target := filepath.Clean(s.Path())
	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer func() { _ = fw.Close() }()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-fw.Errors:
				if !ok {
					return
				}
				// Unclassifiable; ask for a reload anyway.
				throttle.Enqueue(Event{Slot: s.key}, send)
			case evt, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(Event{Slot: s.key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces a burst of writes into one event per slot.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Slot] = struct{}{}
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends under the lock so no event escapes after Stop returns; send
// must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	if t.stopped {
		return
	}
	for slot := range pending {
		send(Event{Slot: slot})
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
