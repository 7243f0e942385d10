package state

// ActionKind identifies what the host should do after a key press.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionSwitchTab
	ActionFocusPane
)

func (k ActionKind) String() string {
	switch k {
	case ActionClose:
		return "close"
	case ActionSwitchTab:
		return "switch-tab"
	case ActionFocusPane:
		return "focus-pane"
	default:
		return "none"
	}
}

// Action is a confirmation emitted by the selector. Position is the 1-based
// tab position for ActionSwitchTab; PaneID is set for ActionFocusPane. Both
// imply closing the popup.
type Action struct {
	Kind     ActionKind
	Position int
	PaneID   uint32
}

// Result reports the outcome of a key press.
type Result struct {
	Render bool
	Action Action
}
