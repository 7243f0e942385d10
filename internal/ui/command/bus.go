package command

import (
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes one tmux side effect requested by the selector.
type Request struct {
	Kind  string
	Label string
	Run   func() error
}

// Result is delivered back to the model once a request has run.
type Result struct {
	Kind  string
	Label string
	Err   error
}

// Bus runs selector actions off the update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps req into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Kind, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.Kind, req.Label)
			return nil
		}
		err := req.Run()
		events.Command.Result(req.Kind, req.Label, err)
		return Result{Kind: req.Kind, Label: req.Label, Err: err}
	}
}
