package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/app"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/config"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging"
	"github.com/atomicstack/tmux-popup-pathfinder/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	optionKeys := make([]string, 0, len(cfg.App.Options))
	for k := range cfg.App.Options {
		optionKeys = append(optionKeys, k)
	}
	sort.Strings(optionKeys)

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"options": optionKeys,
		"config":  cfg,
		"tty":     probeTerminals(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	if pane := os.Getenv("TMUX_PANE"); pane != "" {
		payload["tmuxPane"] = pane
	}
	return payload
}

// terminalReport records which standard descriptors are terminals and the
// first size that could be read. Popups launched by tmux usually get a
// terminal on all three; when they don't, width and height flags matter.
type terminalReport struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func probeTerminals() terminalReport {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	report := terminalReport{Probes: make([]terminalProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		report.Probes = append(report.Probes, probeTerminal(d.name, int(d.file.Fd())))
	}
	for _, p := range report.Probes {
		if p.IsTerminal && p.Error == "" {
			report.Size = &terminalSize{Source: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	return report
}

func probeTerminal(name string, fd int) terminalProbe {
	probe := terminalProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
