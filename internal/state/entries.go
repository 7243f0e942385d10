package state

import (
	"strconv"
	"strings"
)

// Tab is one tmux window of the session the popup was opened from.
// Position is the ordinal of the window in the snapshot and doubles as its
// identity inside the selector.
type Tab struct {
	Name     string
	Active   bool
	Position int

	Session  string
	Index    int
	WindowID string
}

// Label implements the selector item contract.
func (t Tab) Label() string { return t.Name }

// Key implements the selector item contract.
func (t Tab) Key() int { return t.Position }

// Target returns the tmux target for the window.
func (t Tab) Target() string {
	if t.WindowID != "" {
		return t.WindowID
	}
	return t.Session + ":" + strconv.Itoa(t.Index)
}

// Pane is a tmux pane belonging to the tab at position Tab.
type Pane struct {
	ID       uint32
	Title    string
	IsPlugin bool
	Tab      int

	PaneID      string
	Session     string
	WindowIndex int
	Command     string
	Active      bool
}

// Label implements the selector item contract.
func (p Pane) Label() string { return p.Title }

// Key implements the selector item contract.
func (p Pane) Key() uint32 { return p.ID }

// Target returns the tmux target for the pane.
func (p Pane) Target() string {
	if p.PaneID != "" {
		return p.PaneID
	}
	return "%" + strconv.Itoa(int(p.ID))
}

// WindowTarget returns the tmux target for the window owning the pane.
func (p Pane) WindowTarget() string {
	return p.Session + ":" + strconv.Itoa(p.WindowIndex)
}

// HelperRule decides which panes are helpers (popups, pickers, status
// widgets) rather than content panes.
type HelperRule struct {
	Commands    []string
	TitlePrefix string
}

// ParseHelperRule builds a rule from the comma separated command list and
// title prefix options.
func ParseHelperRule(commands, titlePrefix string) HelperRule {
	var rule HelperRule
	for _, part := range strings.Split(commands, ",") {
		if part = strings.TrimSpace(part); part != "" {
			rule.Commands = append(rule.Commands, part)
		}
	}
	rule.TitlePrefix = strings.TrimSpace(titlePrefix)
	return rule
}

// IsHelper reports whether a pane running command with title is a helper.
func (r HelperRule) IsHelper(command, title string) bool {
	command = strings.TrimSpace(command)
	for _, c := range r.Commands {
		if strings.EqualFold(c, command) {
			return true
		}
	}
	if r.TitlePrefix != "" && strings.HasPrefix(title, r.TitlePrefix) {
		return true
	}
	return false
}

// GroupPanes buckets panes by the position of the tab owning them. Panes
// whose window is not part of tabs are dropped.
func GroupPanes(tabs []Tab, panes []Pane) map[int][]Pane {
	positions := make(map[string]int, len(tabs))
	for _, t := range tabs {
		positions[t.Session+":"+strconv.Itoa(t.Index)] = t.Position
	}
	grouped := make(map[int][]Pane, len(tabs))
	for _, p := range panes {
		pos, ok := positions[p.WindowTarget()]
		if !ok {
			continue
		}
		p.Tab = pos
		grouped[pos] = append(grouped[pos], p)
	}
	return grouped
}
