package dispatcher

import (
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/backend"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/state"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/tmux"
)

type Result struct {
	TabsUpdated  bool
	PanesUpdated bool
}

// Dispatcher routes backend snapshots into the stores, translating tmux
// records into selector entries.
type Dispatcher struct {
	tabs    state.TabStore
	panes   state.PaneStore
	helpers state.HelperRule
}

func New(t state.TabStore, p state.PaneStore, helpers state.HelperRule) *Dispatcher {
	return &Dispatcher{tabs: t, panes: p, helpers: helpers}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindWindows:
		if snapshot, ok := evt.Data.(tmux.WindowSnapshot); ok {
			d.tabs.SetEntries(TabsFromTmux(snapshot.Windows))
			d.tabs.SetSession(snapshot.Session)
			res.TabsUpdated = true
		}
	case backend.KindPanes:
		if snapshot, ok := evt.Data.(tmux.PaneSnapshot); ok {
			d.panes.SetEntries(PanesFromTmux(snapshot.Panes, d.helpers))
			res.PanesUpdated = true
		}
	}
	return res
}

// Grouped returns the stored panes keyed by the position of their tab.
func (d *Dispatcher) Grouped() map[int][]state.Pane {
	return state.GroupPanes(d.tabs.Entries(), d.panes.Entries())
}

// TabsFromTmux converts windows to tabs in snapshot order.
func TabsFromTmux(windows []tmux.Window) []state.Tab {
	out := make([]state.Tab, 0, len(windows))
	for i, w := range windows {
		name := w.Label
		if name == "" {
			name = w.Name
		}
		out = append(out, state.Tab{
			Name:     name,
			Active:   w.Active,
			Position: i,
			Session:  w.Session,
			Index:    w.Index,
			WindowID: w.ID,
		})
	}
	return out
}

// PanesFromTmux converts panes, flagging helpers with rule. Panes whose id
// cannot be parsed are dropped.
func PanesFromTmux(panes []tmux.Pane, rule state.HelperRule) []state.Pane {
	out := make([]state.Pane, 0, len(panes))
	for _, p := range panes {
		id, ok := ParsePaneID(p.ID)
		if !ok {
			continue
		}
		title := p.Label
		if title == "" {
			title = p.Title
		}
		out = append(out, state.Pane{
			ID:          id,
			Title:       title,
			IsPlugin:    rule.IsHelper(p.Command, p.Title),
			PaneID:      p.ID,
			Session:     p.Session,
			WindowIndex: p.WindowIndex,
			Command:     p.Command,
			Active:      p.Active,
		})
	}
	return out
}

// ParsePaneID turns a tmux pane id such as "%12" into 12.
func ParsePaneID(raw string) (uint32, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "%")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}
