package state

import appstate "github.com/atomicstack/tmux-popup-pathfinder/internal/state"

// TabNavigator filters the window list. When nothing wins a recompute the
// window the host reported as active is selected instead.
type TabNavigator struct {
	cursor   *Cursor[int, appstate.Tab]
	focused  int
	hasFocus bool
}

func newTabNavigator(ranker Ranker) *TabNavigator {
	return &TabNavigator{cursor: NewCursor[int, appstate.Tab](ranker, nil)}
}

// SetTabs replaces the snapshot, records the active window and brings the
// selection in line with the new entries.
func (t *TabNavigator) SetTabs(tabs []appstate.Tab) {
	t.cursor.SetItems(tabs)
	t.hasFocus = false
	t.focused = 0
	for i, tab := range tabs {
		if tab.Active {
			t.focused = i
			t.hasFocus = true
		}
	}
	if !t.cursor.Valid() {
		t.Recompute()
		return
	}
	t.cursor.Reconcile()
}

// Focused returns the position of the active window.
func (t *TabNavigator) Focused() (int, bool) {
	return t.focused, t.hasFocus
}

// Recompute picks the best match for the query, falling back to the
// active window. With an empty query the active window wins outright.
func (t *TabNavigator) Recompute() bool {
	if t.cursor.Query() == "" && t.hasFocus {
		t.cursor.Clear()
		return t.cursor.Select(t.focused)
	}
	if t.cursor.Recompute() {
		return true
	}
	if t.hasFocus {
		return t.cursor.Select(t.focused)
	}
	return false
}

// JumpHome selects the first window when it matches the query.
func (t *TabNavigator) JumpHome() bool {
	return t.cursor.Seek(0)
}

func (t *TabNavigator) Next() bool { return t.cursor.Next() }

func (t *TabNavigator) Prev() bool { return t.cursor.Prev() }

// Match returns the selected window position.
func (t *TabNavigator) Match() (int, bool) {
	return t.cursor.MatchIndex()
}

// MatchTab returns the selected window.
func (t *TabNavigator) MatchTab() (appstate.Tab, bool) {
	return t.cursor.MatchItem()
}

// RestoreIndex points the result index back at the selection.
func (t *TabNavigator) RestoreIndex() {
	if pos, ok := t.cursor.MatchIndex(); ok {
		t.cursor.SetIndex(pos)
	}
}

func (t *TabNavigator) setQuery(query string) { t.cursor.SetQuery(query) }

func (t *TabNavigator) Index() int { return t.cursor.Index() }

func (t *TabNavigator) Visible() []Entry[appstate.Tab] { return t.cursor.Visible() }
