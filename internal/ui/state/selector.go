package state

import appstate "github.com/atomicstack/tmux-popup-pathfinder/internal/state"

// Mode is the navigator the selector currently drives.
type Mode int

const (
	ModeTabs Mode = iota
	ModePanes
)

func (m Mode) String() string {
	if m == ModePanes {
		return "panes"
	}
	return "tabs"
}

// Selector is the two-mode incremental search engine. It owns the query,
// both navigators and the runtime options, and is driven one event at a
// time by the host loop.
type Selector struct {
	input   Input
	mode    Mode
	tabs    *TabNavigator
	panes   *PaneNavigator
	options map[string]string
}

// NewSelector constructs a selector in tab mode. A nil ranker selects the
// default.
func NewSelector(ranker Ranker, options map[string]string) *Selector {
	opts := make(map[string]string, len(options))
	for k, v := range options {
		opts[k] = v
	}
	return &Selector{
		mode:    ModeTabs,
		tabs:    newTabNavigator(ranker),
		panes:   newPaneNavigator(ranker),
		options: opts,
	}
}

func (s *Selector) Mode() Mode { return s.mode }

func (s *Selector) Query() string { return s.input.Text() }

func (s *Selector) InputCursor() int { return s.input.Cursor() }

// Option returns the runtime option stored under key.
func (s *Selector) Option(key string) (string, bool) {
	v, ok := s.options[key]
	return v, ok
}

// Debug reports whether the debug dump is enabled.
func (s *Selector) Debug() bool { return s.options["debug"] == "true" }

// Tabs exposes the tab navigator.
func (s *Selector) Tabs() *TabNavigator { return s.tabs }

// Panes exposes the pane navigator.
func (s *Selector) Panes() *PaneNavigator { return s.panes }

// SetTabs applies a window snapshot. In pane mode the pane list follows the
// (possibly new) tab selection.
func (s *Selector) SetTabs(tabs []appstate.Tab) {
	s.tabs.SetTabs(tabs)
	if s.mode == ModePanes {
		s.panes.Scope(s.tabs.Match())
		s.panes.Reconcile()
	}
}

// SetPanes applies a pane snapshot keyed by tab position.
func (s *Selector) SetPanes(panes map[int][]appstate.Pane) {
	s.panes.SetPanes(panes)
	if s.mode == ModePanes {
		s.panes.Reconcile()
	}
}

// HandleKey advances the state machine by one key press. Every recognised
// key requests a render; only Enter, Escape and the cancel combination
// produce an action.
func (s *Selector) HandleKey(ev KeyEvent) Result {
	if ev.cancels() {
		return s.close()
	}
	switch ev.Key {
	case KeyChar:
		s.edit(s.input.Insert(ev.Rune))
	case KeyBackspace:
		s.edit(s.input.Delete())
	case KeyTab:
		s.toggleMode()
	case KeyUp:
		s.prev()
	case KeyDown:
		s.next()
	case KeyPageUp:
		if s.mode == ModeTabs {
			s.tabs.JumpHome()
		}
	case KeyLeft:
		s.input.MoveLeft()
	case KeyRight:
		s.input.MoveRight()
	case KeyEnter:
		return Result{Render: true, Action: s.confirm()}
	case KeyEscape:
		return s.close()
	default:
		return Result{}
	}
	return Result{Render: true}
}

func (s *Selector) close() Result {
	return Result{Render: true, Action: Action{Kind: ActionClose}}
}

// edit pushes the query into the active navigator and re-filters only when
// the buffer reported a change.
func (s *Selector) edit(changed bool) {
	query := s.input.Text()
	if s.mode == ModePanes {
		s.panes.setQuery(query)
		if changed {
			s.panes.Recompute()
		}
		return
	}
	s.tabs.setQuery(query)
	if changed {
		s.tabs.Recompute()
	}
}

func (s *Selector) toggleMode() {
	s.input.Reset()
	if s.mode == ModeTabs {
		s.mode = ModePanes
		s.tabs.setQuery("")
		s.panes.setQuery("")
		s.panes.Scope(s.tabs.Match())
		s.panes.Reset()
		s.panes.Recompute()
		return
	}
	s.mode = ModeTabs
	s.tabs.setQuery("")
	s.tabs.RestoreIndex()
}

func (s *Selector) next() {
	if s.mode == ModePanes {
		s.panes.Next()
		return
	}
	s.tabs.Next()
}

func (s *Selector) prev() {
	if s.mode == ModePanes {
		s.panes.Prev()
		return
	}
	s.tabs.Prev()
}

func (s *Selector) confirm() Action {
	if s.mode == ModePanes {
		if id, ok := s.panes.Match(); ok {
			return Action{Kind: ActionFocusPane, PaneID: id}
		}
		return Action{}
	}
	if pos, ok := s.tabs.Match(); ok {
		return Action{Kind: ActionSwitchTab, Position: pos + 1}
	}
	return Action{}
}
