package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/format/table"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	tabsRibbon     = "Tabs Selector"
	panesRibbon    = "Panes Selector"
	selectedTab    = "Selected Tab -> "
	selectedPane   = "Selected Pane -> "
	ellipsisRow    = "..."
	unlimitedRows  = 1 << 30
	rowIndicator   = "▌"
	backendErrHead = "tmux: "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	f := m.selector.Frame(m.maxVisibleRows())

	lines := make([]styledLine, 0, len(f.Rows)+8)
	lines = append(lines, styledLine{text: m.ribbons(f.Mode), raw: true})
	lines = append(lines, styledLine{text: m.filterPrompt(f), raw: true})
	for _, row := range f.Rows {
		lines = append(lines, m.buildRowLine(row))
	}
	if f.Truncated {
		lines = append(lines, styledLine{text: ellipsisRow, style: styles.Ellipsis})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, selectionLine(selectedTab, f.TabLabel(), f.HasTab))
	if f.Mode == uistate.ModePanes {
		lines = append(lines, selectionLine(selectedPane, f.PaneLabel(), f.HasPane))
	}
	lines = append(lines, debugLines(f.Debug)...)
	if status, ok := m.statusLine(); ok {
		lines = append(lines, status)
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.helpLine(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) ribbons(mode uistate.Mode) string {
	tabs, panes := styles.Ribbon, styles.ActiveRibbon
	if mode == uistate.ModeTabs {
		tabs, panes = styles.ActiveRibbon, styles.Ribbon
	}
	return renderStyled(tabs, tabsRibbon) + " " + renderStyled(panes, panesRibbon)
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) buildRowLine(row uistate.Row) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if row.Selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedIndicator
	}
	fullText := rowIndicator + " " + row.Label
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func selectionLine(head, label string, ok bool) styledLine {
	value := styles.SelectionValue
	if !ok {
		value = styles.NoMatch
	}
	return styledLine{
		text:          head + label,
		style:         value,
		prefixStyle:   styles.SelectionLabel,
		highlightFrom: len([]rune(head)),
	}
}

func debugLines(fields []uistate.Field) []styledLine {
	if len(fields) == 0 {
		return nil
	}
	pairs := make([][2]string, len(fields))
	keyWidth := 0
	for i, field := range fields {
		pairs[i] = [2]string{field.Key, field.Value}
		keyWidth = max(keyWidth, len([]rune(field.Key)))
	}
	rows := table.KeyValues(pairs)
	out := make([]styledLine, 0, len(rows)+1)
	out = append(out, styledLine{})
	for _, row := range rows {
		out = append(out, styledLine{
			text:          row,
			style:         styles.DebugValue,
			prefixStyle:   styles.DebugKey,
			highlightFrom: keyWidth,
		})
	}
	return out
}

// statusLine reports the last action error, or a failing backend poll.
func (m *Model) statusLine() (styledLine, bool) {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}, true
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return styledLine{text: backendErrHead + msg, style: styles.Error}, true
	}
	return styledLine{}, false
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// maxVisibleRows is the row budget handed to the selector: whatever the
// viewport leaves after the fixed chrome. The budget includes the ellipsis
// row.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return unlimitedRows
	}
	used := 4 // ribbons, prompt, blank, selected tab
	if m.selector.Mode() == uistate.ModePanes {
		used++
	}
	if m.selector.Debug() {
		used += 1 + len(m.selector.Frame(0).Debug)
	}
	if _, ok := m.statusLine(); ok {
		used++
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
