package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/backend"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/state"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/theme"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	optionMatcher           = "matcher"
	optionHelperCommands    = "helper_commands"
	optionHelperTitlePrefix = "helper_title_prefix"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the tab and pane finder.
type Model struct {
	selector   *uistate.Selector
	keys       keyMap
	tabs       state.TabStore
	panes      state.PaneStore
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	socketPath string

	pending        bool
	errMsg         string
	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	showFooter     bool
	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the finder. options is the flat runtime configuration map;
// watcher may be nil when snapshots are fed in by hand.
func NewModel(socketPath string, width, height int, showFooter bool, options map[string]string, watcher *backend.Watcher) *Model {
	ranker, ok := uistate.RankerByName(options[optionMatcher])
	if !ok {
		logging.Trace("ui.matcher.unknown", map[string]interface{}{"matcher": options[optionMatcher]})
		ranker = uistate.FuzzysearchRanker{}
	}
	rule := state.ParseHelperRule(options[optionHelperCommands], options[optionHelperTitlePrefix])
	tabs := state.NewTabStore()
	panes := state.NewPaneStore()
	m := &Model{
		selector:     uistate.NewSelector(ranker, options),
		keys:         defaultKeyMap(),
		tabs:         tabs,
		panes:        panes,
		dispatcher:   dispatcher.New(tabs, panes, rule),
		bus:          command.New(),
		socketPath:   socketPath,
		showFooter:   showFooter,
		backend:      watcher,
		backendState: map[backend.Kind]error{},
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Selector exposes the search engine driven by the model.
func (m *Model) Selector() *uistate.Selector {
	return m.selector
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
