package events

import "github.com/atomicstack/tmux-popup-pathfinder/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(kind, label string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "label": label})
}

func (CommandTracer) Skip(kind, label string) {
	logging.Trace("command.skip", map[string]interface{}{"kind": kind, "label": label})
}

func (CommandTracer) Result(kind, label string, err error) {
	payload := map[string]interface{}{"kind": kind, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
