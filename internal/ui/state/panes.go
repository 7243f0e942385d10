package state

import appstate "github.com/atomicstack/tmux-popup-pathfinder/internal/state"

func isHelperPane(p appstate.Pane) bool { return p.IsPlugin }

// PaneNavigator filters the content panes of a single window. Helper panes
// are never listed or selected.
type PaneNavigator struct {
	cursor *Cursor[uint32, appstate.Pane]
	all    map[int][]appstate.Pane
	tab    int
	scoped bool
}

func newPaneNavigator(ranker Ranker) *PaneNavigator {
	return &PaneNavigator{
		cursor: NewCursor[uint32, appstate.Pane](ranker, isHelperPane),
		all:    map[int][]appstate.Pane{},
	}
}

// SetPanes replaces the per-window pane snapshot and refreshes the scoped
// list. Selection state is left for the caller to reconcile.
func (p *PaneNavigator) SetPanes(panes map[int][]appstate.Pane) {
	p.all = make(map[int][]appstate.Pane, len(panes))
	for pos, list := range panes {
		p.all[pos] = cloneItems(list)
	}
	p.rescope()
}

// Scope restricts the navigator to the panes of the window at tab. An
// unscoped navigator has nothing to offer.
func (p *PaneNavigator) Scope(tab int, ok bool) {
	p.tab = tab
	p.scoped = ok
	p.rescope()
}

func (p *PaneNavigator) rescope() {
	if !p.scoped {
		p.cursor.SetItems(nil)
		return
	}
	p.cursor.SetItems(p.all[p.tab])
}

// Reset drops the selection.
func (p *PaneNavigator) Reset() { p.cursor.Clear() }

// Recompute picks the best match for the query. No match leaves nothing
// selected.
func (p *PaneNavigator) Recompute() bool { return p.cursor.Recompute() }

// Reconcile keeps the selection when still valid, recomputing otherwise.
func (p *PaneNavigator) Reconcile() bool { return p.cursor.Reconcile() }

// Seek selects the pane at position target when it qualifies.
func (p *PaneNavigator) Seek(target int) bool { return p.cursor.Seek(target) }

func (p *PaneNavigator) Next() bool { return p.cursor.Next() }

func (p *PaneNavigator) Prev() bool { return p.cursor.Prev() }

// Match returns the selected pane id.
func (p *PaneNavigator) Match() (uint32, bool) { return p.cursor.Match() }

// MatchPane returns the selected pane.
func (p *PaneNavigator) MatchPane() (appstate.Pane, bool) { return p.cursor.MatchItem() }

func (p *PaneNavigator) setQuery(query string) { p.cursor.SetQuery(query) }

func (p *PaneNavigator) Index() int { return p.cursor.Index() }

func (p *PaneNavigator) Visible() []Entry[appstate.Pane] { return p.cursor.Visible() }
