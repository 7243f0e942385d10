package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/backend"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/tmux"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const pollInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Session    string // empty follows the calling pane
	Width      int
	Height     int
	ShowFooter bool
	Options    map[string]string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()
	watcher := backend.NewWatcher(socketPath, cfg.Session, pollInterval)
	defer watcher.Stop()
	model := ui.NewModel(socketPath, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Options, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
