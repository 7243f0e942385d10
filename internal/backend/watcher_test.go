package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/tmux"
)

func stubFetchers(t *testing.T, windows func(string, string) (tmux.WindowSnapshot, error), panes func(string, string) (tmux.PaneSnapshot, error)) {
	t.Helper()
	prevWindows, prevPanes := fetchWindows, fetchPanes
	fetchWindows, fetchPanes = windows, panes
	t.Cleanup(func() {
		fetchWindows, fetchPanes = prevWindows, prevPanes
	})
}

func TestWatcherEmitsBothKinds(t *testing.T) {
	var sessions atomic.Value
	stubFetchers(t,
		func(socket, session string) (tmux.WindowSnapshot, error) {
			sessions.Store(socket + "|" + session)
			return tmux.WindowSnapshot{Session: session, Windows: []tmux.Window{{Name: "build"}}}, nil
		},
		func(string, string) (tmux.PaneSnapshot, error) {
			return tmux.PaneSnapshot{}, errors.New("boom")
		},
	)
	w := NewWatcher("/tmp/sock", "dev", time.Hour)
	seen := map[Kind]Event{}
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case evt := <-w.Events():
			seen[evt.Kind] = evt
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", seen)
		}
	}
	w.Stop()
	w.Wait()

	snap, ok := seen[KindWindows].Data.(tmux.WindowSnapshot)
	if !ok || snap.Session != "dev" || len(snap.Windows) != 1 {
		t.Fatalf("unexpected window event %#v", seen[KindWindows])
	}
	if seen[KindPanes].Err == nil {
		t.Fatalf("expected pane error to be forwarded")
	}
	if got := sessions.Load(); got != "/tmp/sock|dev" {
		t.Fatalf("unexpected fetch arguments %v", got)
	}
}

func TestWatcherClosesEventsAfterStop(t *testing.T) {
	stubFetchers(t,
		func(string, string) (tmux.WindowSnapshot, error) { return tmux.WindowSnapshot{}, nil },
		func(string, string) (tmux.PaneSnapshot, error) { return tmux.PaneSnapshot{}, nil },
	)
	w := NewWatcher("", "", 10*time.Millisecond)
	w.Stop()
	w.Wait()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("events channel not closed")
		}
	}
}

func TestKindString(t *testing.T) {
	if KindWindows.String() != "windows" || KindPanes.String() != "panes" || Kind(9).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	if !th.wait(ctx) || !th.wait(ctx) {
		t.Fatalf("expected both waits to succeed")
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %v", elapsed)
	}
	var nilThrottle *throttle
	if !nilThrottle.wait(ctx) || !newThrottle(0).wait(ctx) {
		t.Fatalf("expected disabled throttles not to block")
	}
}

func TestThrottleWaitHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !th.wait(ctx) {
		t.Fatalf("expected first slot to be free")
	}
	cancel()
	start := time.Now()
	if th.wait(ctx) {
		t.Fatalf("expected cancelled wait to fail")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancelled wait blocked")
	}
}
