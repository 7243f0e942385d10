package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
	"github.com/charmbracelet/x/ansi"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// SessionName is the session StartServer creates.
const SessionName = "tmux-popup-pathfinder-test"

// Server is a throwaway tmux server bound to its own socket. Its server log
// is written to LogDir so crashes can be detected on cleanup.
type Server struct {
	Socket string
	LogDir string

	t *testing.T
}

// RequireTmux aborts the calling test when tmux is not present on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartServer boots a server holding SessionName. The server is killed and
// its log scanned for crashes when the test finishes.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "tmux-popup-pathfinder-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	s := &Server{Socket: filepath.Join(baseDir, "tmux-test.sock"), LogDir: baseDir, t: t}

	cmd := s.command("-f", "/dev/null", "-vv", "new-session", "-d", "-x", "80", "-y", "24", "-s", SessionName, "sleep", "600")
	cmd.Dir = baseDir
	if err := cmd.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	if pid, err := s.Output("display-message", "-p", "#{pid}"); err == nil && pid != "" {
		t.Logf("started tmux test server pid=%s socket=%s", pid, s.Socket)
	}
	t.Cleanup(func() {
		s.stop()
		s.assertNoCrash()
	})
	return s
}

// Run executes a tmux command against the server.
func (s *Server) Run(args ...string) error {
	return s.command(args...).Run()
}

// Output executes a tmux command and returns its trimmed stdout.
func (s *Server) Output(args ...string) (string, error) {
	out, err := s.command(args...).Output()
	return strings.TrimSpace(string(out)), err
}

// MustRun executes a tmux command and fails the test on error.
func (s *Server) MustRun(args ...string) {
	s.t.Helper()
	if err := s.Run(args...); err != nil {
		s.t.Fatalf("tmux %s: %v", strings.Join(args, " "), err)
	}
}

// NewWindow adds a detached window running a long sleep to session.
func (s *Server) NewWindow(session, name string) {
	s.t.Helper()
	s.MustRun("new-window", "-d", "-t", session, "-n", name, "sleep", "300")
}

// ActivePane returns the id of the active pane of session.
func (s *Server) ActivePane(session string) (string, error) {
	return s.Output("display-message", "-t", session, "-p", "#{pane_id}")
}

// Capture returns the rendered contents of a pane, escapes included.
func (s *Server) Capture(target string) (string, error) {
	args := []string{"capture-pane", "-e", "-p"}
	if target != "" {
		args = append(args, "-t", target)
	}
	output, err := s.command(args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(output), nil
}

// CapturePlain is Capture with escape sequences stripped, so styled spans
// compare as plain text.
func (s *Server) CapturePlain(target string) (string, error) {
	out, err := s.Capture(target)
	if err != nil {
		return "", err
	}
	return ansi.Strip(out), nil
}

func (s *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := killServerControl(ctx, s.Socket); err != nil {
		s.t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", s.Socket, err)
		_ = s.Run("kill-server")
	}
}

// assertNoCrash scans the server logs for an unexpected exit.
func (s *Server) assertNoCrash() {
	files, err := filepath.Glob(filepath.Join(s.LogDir, "tmux-server-*.log"))
	if err != nil {
		s.t.Errorf("failed to glob tmux logs: %v", err)
		return
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			s.t.Errorf("failed to read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			s.t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

// command builds a tmux invocation isolated from any surrounding session.
func (s *Server) command(extra ...string) *exec.Cmd {
	args := append([]string{"-S", s.Socket}, extra...)
	cmd := exec.Command("tmux", args...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+filepath.Dir(s.Socket))
	return cmd
}

func killServerControl(ctx context.Context, socket string) error {
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
