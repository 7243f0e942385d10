package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/tmux"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindWindows Kind = iota
	KindPanes
)

func (k Kind) String() string {
	switch k {
	case KindWindows:
		return "windows"
	case KindPanes:
		return "panes"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

const throttleInterval = 100 * time.Millisecond

var (
	fetchWindows = tmux.FetchWindows
	fetchPanes   = tmux.FetchPanes
)

// Watcher polls tmux at a fixed interval and publishes events.
type Watcher struct {
	socketPath string
	session    string
	interval   time.Duration
	throttle   *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls the windows and panes of
// session every interval. An empty session follows the calling pane.
func NewWatcher(socketPath, session string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		socketPath: socketPath,
		session:    session,
		interval:   interval,
		throttle:   newThrottle(throttleInterval),
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
	}

	w.startWindowPoller()
	w.startPanePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startWindowPoller() {
	w.wg.Add(1)
	go w.poll(KindWindows, func(ctx context.Context) (interface{}, error) {
		if !w.throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return fetchWindows(w.socketPath, w.session)
	})
}

func (w *Watcher) startPanePoller() {
	w.wg.Add(1)
	go w.poll(KindPanes, func(ctx context.Context) (interface{}, error) {
		if !w.throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return fetchPanes(w.socketPath, w.session)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
