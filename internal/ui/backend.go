package ui

import (
	"github.com/atomicstack/tmux-popup-pathfinder/internal/backend"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent stores a snapshot and hands it to the selector. Panes
// are regrouped on every update since grouping depends on both snapshots.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		events.Backend.Error(evt.Kind.String(), evt.Err)
		return
	}

	res := m.dispatcher.Handle(evt)
	if res.TabsUpdated {
		tabs := m.tabs.Entries()
		m.selector.SetTabs(tabs)
		focused := -1
		if pos, ok := m.selector.Tabs().Focused(); ok {
			focused = pos
		}
		events.Tab.Snapshot(m.tabs.Session(), len(tabs), focused)
	}
	if res.TabsUpdated || res.PanesUpdated {
		m.selector.SetPanes(m.dispatcher.Grouped())
	}
	if res.PanesUpdated {
		panes := m.panes.Entries()
		helpers := 0
		for _, p := range panes {
			if p.IsPlugin {
				helpers++
			}
		}
		events.Pane.Snapshot(len(panes), helpers)
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
