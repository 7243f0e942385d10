package tmux

import (
	"path/filepath"
	"testing"
	"time"

	testutil "github.com/atomicstack/tmux-popup-pathfinder/internal/testutil"
)

func TestSnapshotsAndFocusIntegration(t *testing.T) {
	srv := testutil.StartServer(t)
	socket := srv.Socket
	t.Setenv("TMUX_TMPDIR", filepath.Dir(socket))
	t.Setenv("TMUX_POPUP_PATHFINDER_WINDOW_FORMAT", "")
	t.Setenv("TMUX_POPUP_PATHFINDER_PANE_FORMAT", "")
	Shutdown()
	defer Shutdown()

	session := testutil.SessionName
	srv.NewWindow(session, "logs")
	srv.MustRun("split-window", "-d", "-t", session+":1", "sleep", "300")
	time.Sleep(100 * time.Millisecond)

	windows, err := FetchWindows(socket, session)
	if err != nil {
		t.Fatalf("FetchWindows failed: %v", err)
	}
	for _, w := range windows.Windows {
		t.Logf("window: id=%q index=%d label=%q active=%v", w.ID, w.Index, w.Label, w.Active)
	}
	if len(windows.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %#v", windows.Windows)
	}
	if windows.Windows[1].Name != "logs" {
		t.Fatalf("expected second window logs, got %#v", windows.Windows[1])
	}

	panes, err := FetchPanes(socket, session)
	if err != nil {
		t.Fatalf("FetchPanes failed: %v", err)
	}
	var logsPanes []Pane
	for _, p := range panes.Panes {
		if p.WindowIndex == windows.Windows[1].Index {
			logsPanes = append(logsPanes, p)
		}
	}
	if len(logsPanes) != 2 {
		t.Fatalf("expected 2 panes in logs, got %#v", panes.Panes)
	}

	if err := SelectWindow(socket, windows.Windows[0].ID); err != nil {
		t.Fatalf("SelectWindow failed: %v", err)
	}
	target := logsPanes[0].ID
	if err := FocusPane(socket, windows.Windows[1].ID, target); err != nil {
		t.Fatalf("FocusPane failed: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	got, err := srv.ActivePane(session)
	if err != nil {
		t.Fatalf("display-message failed: %v", err)
	}
	if got != target {
		t.Fatalf("expected active pane %s, got %s", target, got)
	}
}
