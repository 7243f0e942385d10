package events

import "github.com/atomicstack/tmux-popup-pathfinder/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) Focus(id uint32, window, target string) {
	logging.Trace("pane.focus", map[string]interface{}{"id": id, "window": window, "target": target})
}

func (PaneTracer) Snapshot(count, helpers int) {
	logging.Trace("pane.snapshot", map[string]interface{}{"count": count, "helpers": helpers})
}
