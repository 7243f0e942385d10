package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/tmux"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	selectWindowFn = tmux.SelectWindow
	focusPaneFn    = tmux.FocusPane
)

// perform turns a selector action into its tmux side effect. Switching and
// focusing run through the command bus and close the popup once they
// succeed; a failure keeps it open with the error shown.
func (m *Model) perform(action uistate.Action) tea.Cmd {
	switch action.Kind {
	case uistate.ActionClose:
		events.Action.Close("cancel")
		return tea.Quit
	case uistate.ActionSwitchTab:
		tab, ok := m.tabs.At(action.Position - 1)
		if !ok {
			m.errMsg = fmt.Sprintf("tab %d is no longer available", action.Position)
			return nil
		}
		target := tab.Target()
		m.pending = true
		return m.bus.Execute(command.Request{
			Kind:  action.Kind.String(),
			Label: tab.Name,
			Run: func() error {
				events.Tab.Switch(action.Position, target)
				return selectWindowFn(m.socketPath, target)
			},
		})
	case uistate.ActionFocusPane:
		pane, ok := m.panes.Find(action.PaneID)
		if !ok {
			m.errMsg = fmt.Sprintf("pane %%%d is no longer available", action.PaneID)
			return nil
		}
		window, target := pane.WindowTarget(), pane.Target()
		m.pending = true
		return m.bus.Execute(command.Request{
			Kind:  action.Kind.String(),
			Label: pane.Title,
			Run: func() error {
				events.Pane.Focus(pane.ID, window, target)
				return focusPaneFn(m.socketPath, window, target)
			},
		})
	}
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.pending = false
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	events.Action.Success(fmt.Sprintf("%s %s", result.Kind, result.Label))
	return tea.Quit
}
