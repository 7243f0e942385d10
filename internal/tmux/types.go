package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Window is one window of the session the popup belongs to.
type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Label   string
	Active  bool
}

// Pane is one pane of the session the popup belongs to.
type Pane struct {
	ID          string
	Session     string
	WindowIndex int
	Index       int
	Title       string
	Label       string
	Command     string
	Active      bool
}

type WindowSnapshot struct {
	Session string
	Windows []Window
}

type PaneSnapshot struct {
	Session string
	Panes   []Pane
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

type tmuxClient interface {
	ListAllWindows() ([]*gotmux.Window, error)
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	ListWindowsFormat(target, filter, format string) ([]string, error)
	ListPanesFormat(target, filter, format string) ([]string, error)
	SelectWindow(target string) error
	Command(parts ...string) (string, error)
	Close() error
}
