package ui

import (
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptText        = " > "
	promptPlaceholder = "search pattern"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleKeyMsg feeds a key press through the selector and turns the
// resulting action into a command. While a tmux action is in flight only
// Escape and Ctrl+C get through.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	for _, ev := range m.keys.translate(keyMsg) {
		if m.pending && !ev.Closes() {
			continue
		}
		if cmd := m.applyKey(ev); cmd != nil {
			return cmd
		}
	}
	return nil
}

func (m *Model) applyKey(ev uistate.KeyEvent) tea.Cmd {
	sel := m.selector
	mode, query, cursorPos := sel.Mode(), sel.Query(), sel.InputCursor()
	events.UI.Key(ev.Key.String(), mode.String())

	res := sel.HandleKey(ev)
	if !res.Render {
		return nil
	}
	if sel.Mode() != mode {
		events.Selector.Mode(sel.Mode().String())
	}
	if sel.Query() != query {
		events.Selector.Query(sel.Mode().String(), sel.Query())
		m.traceMatch()
	}
	if sel.Query() != query || sel.InputCursor() != cursorPos {
		m.filterCursorDirty = true
	}
	if res.Action.Kind != uistate.ActionNone {
		return m.perform(res.Action)
	}
	m.errMsg = ""
	return nil
}

func (m *Model) traceMatch() {
	f := m.selector.Frame(0)
	if f.Mode == uistate.ModePanes {
		events.Selector.Match(f.Mode.String(), f.Pane, f.HasPane)
		return
	}
	events.Selector.Match(f.Mode.String(), f.Tab, f.HasTab)
}

const caretMarker = "┃"

// filterPrompt renders the query line with the caret marker spliced in at
// the input cursor.
func (m *Model) filterPrompt(f uistate.Frame) string {
	prompt := promptText
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	caret := m.renderFilterCursor(caretMarker)
	runes := []rune(f.Query)
	if len(runes) == 0 {
		placeholder := promptPlaceholder
		if styles.FilterPlaceholder != nil {
			placeholder = styles.FilterPlaceholder.Render(placeholder)
		}
		return prompt + caret + placeholder
	}
	pos := min(max(f.Cursor, 0), len(runes))
	before := string(runes[:pos])
	after := string(runes[pos:])
	if styles.Filter != nil {
		if before != "" {
			before = styles.Filter.Render(before)
		}
		if after != "" {
			after = styles.Filter.Render(after)
		}
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
