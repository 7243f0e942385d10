package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestViewShowsRibbonsAndPlaceholder(t *testing.T) {
	h := newTestHarness(t, nil)
	view := h.View()
	lines := strings.Split(view, "\n")
	require.Contains(t, lines[0], "Tabs Selector")
	require.Contains(t, lines[0], "Panes Selector")
	require.Contains(t, lines[1], " > ┃search pattern")
	require.Contains(t, view, "Selected Tab -> No matches found")
	require.NotContains(t, view, "Selected Pane ->")
}

func TestPromptShowsCaretAtCursor(t *testing.T) {
	h := newTestHarness(t, nil)
	typeText(h, "abc")
	h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	require.Contains(t, h.View(), " > ab┃c")

	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, h.View(), " > abc┃")
}

func TestViewMarksTruncatedList(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("win-%02d", i)
	}
	h := NewHarness(NewModel("", 40, 9, false, map[string]string{}, nil))
	h.Send(windowsEvent(0, names...))

	view := h.View()
	lines := strings.Split(view, "\n")
	if len(lines) > 9 {
		t.Fatalf("expected at most 9 lines, got %d:\n%s", len(lines), view)
	}
	// 9 rows minus ribbons, prompt, blank and the selection line leaves
	// four result rows plus the ellipsis.
	require.Contains(t, view, "▌ win-03")
	require.NotContains(t, view, "▌ win-04")
	require.Contains(t, lines[6], "...")
}

func TestViewScrollsToSelection(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("win-%02d", i)
	}
	h := NewHarness(NewModel("", 40, 9, false, map[string]string{}, nil))
	h.Send(windowsEvent(8, names...))

	view := h.View()
	require.Contains(t, view, "▌ win-08")
	require.NotContains(t, view, "▌ win-00")
	require.Contains(t, view, "Selected Tab -> win-08")
}

func TestViewRespectsWidth(t *testing.T) {
	h := NewHarness(NewModel("", 12, 0, false, map[string]string{}, nil))
	h.Send(windowsEvent(0, "a-very-long-window-name"))
	for _, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 12 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestViewDebugDump(t *testing.T) {
	h := newTestHarness(t, map[string]string{"debug": "true", optionMatcher: "sahilm"})
	h.Send(windowsEvent(0, "editor"))
	typeText(h, "ed")

	view := h.View()
	require.Contains(t, view, "mode")
	require.Contains(t, view, `"ed"`)
	require.Contains(t, view, "pane.match")
	require.Contains(t, view, "config.debug")
	require.Contains(t, view, "config.matcher")
	require.Contains(t, view, "sahilm")
}

func TestViewOmitsDebugByDefault(t *testing.T) {
	h := newTestHarness(t, nil)
	require.NotContains(t, h.View(), "config.")
}

func TestViewFooter(t *testing.T) {
	h := NewHarness(NewModel("", 0, 0, true, nil, nil))
	view := h.View()
	require.Contains(t, view, "tab tabs/panes")
	require.Contains(t, view, "esc close")
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 0)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected trimmed lines %#v", got)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"abcdef", 0, "abcdef"},
		{"abcdef", 10, "abcdef"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "a"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.text, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
