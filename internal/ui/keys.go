package ui

import (
	"strings"

	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Toggle    key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	Escape    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tabs/panes")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "current tab")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// translate maps a terminal key press onto selector events. A pasted run of
// characters yields one event per rune; unbound keys yield nothing.
func (k keyMap) translate(msg tea.KeyMsg) []uistate.KeyEvent {
	switch {
	case key.Matches(msg, k.Cancel):
		return []uistate.KeyEvent{{Key: uistate.KeyChar, Rune: 'c', Mods: uistate.ModCtrl}}
	case key.Matches(msg, k.Toggle):
		return press(uistate.KeyTab)
	case key.Matches(msg, k.Confirm):
		return press(uistate.KeyEnter)
	case key.Matches(msg, k.Backspace):
		return press(uistate.KeyBackspace)
	case key.Matches(msg, k.Up):
		return press(uistate.KeyUp)
	case key.Matches(msg, k.Down):
		return press(uistate.KeyDown)
	case key.Matches(msg, k.Left):
		return press(uistate.KeyLeft)
	case key.Matches(msg, k.Right):
		return press(uistate.KeyRight)
	case key.Matches(msg, k.Home):
		return press(uistate.KeyPageUp)
	case key.Matches(msg, k.Escape):
		return press(uistate.KeyEscape)
	}
	switch msg.Type {
	case tea.KeySpace:
		return []uistate.KeyEvent{uistate.Char(' ')}
	case tea.KeyRunes:
		var mods uistate.Modifiers
		if msg.Alt {
			mods |= uistate.ModAlt
		}
		out := make([]uistate.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, uistate.KeyEvent{Key: uistate.KeyChar, Rune: r, Mods: mods})
		}
		return out
	}
	return nil
}

func press(k uistate.Key) []uistate.KeyEvent {
	return []uistate.KeyEvent{uistate.Press(k)}
}

// helpLine renders the bindings that carry help text.
func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Toggle, k.Up, k.Confirm, k.Home, k.Escape}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
