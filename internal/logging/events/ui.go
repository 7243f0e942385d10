package events

import "github.com/atomicstack/tmux-popup-pathfinder/internal/logging"

type UITracer struct{}

type SelectorTracer struct{}

type ActionTracer struct{}

type BackendTracer struct{}

var (
	UI       = UITracer{}
	Selector = SelectorTracer{}
	Action   = ActionTracer{}
	Backend  = BackendTracer{}
)

func (UITracer) Key(key, mode string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "mode": mode})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (SelectorTracer) Mode(mode string) {
	logging.Trace("selector.mode", map[string]interface{}{"mode": mode})
}

func (SelectorTracer) Query(mode, query string) {
	logging.Trace("selector.query", map[string]interface{}{"mode": mode, "query": query})
}

func (SelectorTracer) Match(mode, label string, ok bool) {
	logging.Trace("selector.match", map[string]interface{}{"mode": mode, "label": label, "ok": ok})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (ActionTracer) Close(reason string) {
	logging.Trace("action.close", map[string]interface{}{"reason": reason})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
