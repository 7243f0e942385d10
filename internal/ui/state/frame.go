package state

import (
	"sort"
	"strconv"
)

// NoMatch is shown in place of a selection label when nothing is selected.
const NoMatch = "No matches found"

// Row is one line of the result list.
type Row struct {
	Pos      int
	Label    string
	Selected bool
}

// Field is a labelled value of the debug dump.
type Field struct {
	Key   string
	Value string
}

// Frame is everything the host needs to draw one screen.
type Frame struct {
	Mode   Mode
	Query  string
	Cursor int

	// Rows is the window of visible results; Offset counts the results
	// scrolled off above it and Truncated marks results cut off below.
	Rows      []Row
	Offset    int
	Total     int
	Truncated bool

	Tab     string
	HasTab  bool
	Pane    string
	HasPane bool

	Debug []Field
}

// TabLabel returns the selected tab label or NoMatch.
func (f Frame) TabLabel() string {
	if !f.HasTab {
		return NoMatch
	}
	return f.Tab
}

// PaneLabel returns the selected pane label or NoMatch.
func (f Frame) PaneLabel() string {
	if !f.HasPane {
		return NoMatch
	}
	return f.Pane
}

// Frame builds the render request. maxRows bounds the list including the
// trailing ellipsis row; the window scrolls to keep the selection visible.
func (s *Selector) Frame(maxRows int) Frame {
	f := Frame{
		Mode:   s.mode,
		Query:  s.input.Text(),
		Cursor: s.input.Cursor(),
	}
	var rows []Row
	if s.mode == ModePanes {
		for _, e := range s.panes.Visible() {
			rows = append(rows, Row{Pos: e.Pos, Label: e.Item.Label(), Selected: e.Selected})
		}
	} else {
		for _, e := range s.tabs.Visible() {
			rows = append(rows, Row{Pos: e.Pos, Label: e.Item.Label(), Selected: e.Selected})
		}
	}
	f.Total = len(rows)
	f.Rows, f.Offset, f.Truncated = window(rows, maxRows)

	if tab, ok := s.tabs.MatchTab(); ok {
		f.Tab, f.HasTab = tab.Label(), true
	}
	if s.mode == ModePanes {
		if pane, ok := s.panes.MatchPane(); ok {
			f.Pane, f.HasPane = pane.Label(), true
		}
	}
	if s.Debug() {
		f.Debug = s.debugFields()
	}
	return f
}

// window picks the slice of rows to show. When rows do not fit, one line
// of the budget is reserved for the ellipsis.
func window(rows []Row, maxRows int) ([]Row, int, bool) {
	if maxRows <= 0 {
		return nil, 0, len(rows) > 0
	}
	if len(rows) <= maxRows {
		return rows, 0, false
	}
	visible := maxRows - 1
	if visible == 0 {
		return nil, 0, true
	}
	selected := -1
	for i, r := range rows {
		if r.Selected {
			selected = i
			break
		}
	}
	offset := 0
	if selected >= visible {
		offset = selected - visible + 1
	}
	end := offset + visible
	return rows[offset:end], offset, end < len(rows)
}

func (s *Selector) debugFields() []Field {
	fields := []Field{
		{Key: "mode", Value: s.mode.String()},
		{Key: "query", Value: strconv.Quote(s.input.Text())},
		{Key: "cursor", Value: strconv.Itoa(s.input.Cursor())},
		{Key: "tab.index", Value: strconv.Itoa(s.tabs.Index())},
		{Key: "tab.match", Value: optionalInt(s.tabs.Match())},
		{Key: "pane.index", Value: strconv.Itoa(s.panes.Index())},
	}
	if id, ok := s.panes.Match(); ok {
		fields = append(fields, Field{Key: "pane.match", Value: strconv.FormatUint(uint64(id), 10)})
	} else {
		fields = append(fields, Field{Key: "pane.match", Value: "none"})
	}
	keys := make([]string, 0, len(s.options))
	for k := range s.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, Field{Key: "config." + k, Value: s.options[k]})
	}
	return fields
}

func optionalInt(v int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(v)
}
