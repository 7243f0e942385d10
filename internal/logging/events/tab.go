package events

import "github.com/atomicstack/tmux-popup-pathfinder/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Switch(position int, target string) {
	logging.Trace("tab.switch", map[string]interface{}{"position": position, "target": target})
}

func (TabTracer) Snapshot(session string, count int, focused int) {
	logging.Trace("tab.snapshot", map[string]interface{}{"session": session, "count": count, "focused": focused})
}
