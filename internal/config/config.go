package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/tmux-popup-pathfinder/internal/app"
	uistate "github.com/atomicstack/tmux-popup-pathfinder/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Option keys understood by the selector and the snapshot pipeline.
const (
	OptionDebug             = "debug"
	OptionMatcher           = "matcher"
	OptionHelperCommands    = "helper_commands"
	OptionHelperTitlePrefix = "helper_title_prefix"
)

const (
	envPrefix      = "TMUX_POPUP_PATHFINDER_"
	envSocketPath  = envPrefix + "SOCKET"
	envSession     = envPrefix + "SESSION"
	envWidth       = envPrefix + "WIDTH"
	envHeight      = envPrefix + "HEIGHT"
	envShowFooter  = envPrefix + "FOOTER"
	envTrace       = envPrefix + "TRACE"
	envLogFile     = envPrefix + "LOG_FILE"
	envOptionsFile = envPrefix + "OPTIONS_FILE"

	binaryName = "tmux-popup-pathfinder"
)

var optionKeys = []string{OptionDebug, OptionMatcher, OptionHelperCommands, OptionHelperTitlePrefix}

// DefaultOptions returns the options every run starts from.
func DefaultOptions() map[string]string {
	return map[string]string{
		OptionHelperCommands: binaryName,
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Options are
// layered: defaults, the options file, environment, then -option flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet(binaryName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	session := fs.String("session", envOrDefault(env, envSession, ""), "session whose windows are listed (defaults to the calling pane's session)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, ""), "path to a TOML file of selector options")
	overrides := map[string]string{}
	fs.Func("option", "selector option as key=value (repeatable)", func(raw string) error {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("option %q must be key=value", raw)
		}
		overrides[key] = value
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	options := DefaultOptions()
	path, explicit := *optionsFile, *optionsFile != ""
	if !explicit {
		path = defaultOptionsPath(env)
	}
	if path != "" {
		fileOptions, err := LoadOptionsFile(path)
		switch {
		case err == nil:
			for k, v := range fileOptions {
				options[k] = v
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, err
		}
	}
	for _, key := range optionKeys {
		if v, ok := env[envPrefix+strings.ToUpper(key)]; ok {
			options[key] = v
		}
	}
	for k, v := range overrides {
		options[k] = v
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Session:    *session,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Options:    options,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":      *socket,
			"session":     *session,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"optionsFile": *optionsFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultOptionsPath(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if base == "" {
		home := strings.TrimSpace(env["HOME"])
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, binaryName, "options.toml")
}

// LoadOptionsFile reads a flat TOML document of scalar options.
func LoadOptionsFile(path string) (map[string]string, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("read options file %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case bool:
			out[key] = strconv.FormatBool(v)
		case int64:
			out[key] = strconv.FormatInt(v, 10)
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case []interface{}:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}
			out[key] = strings.Join(parts, ",")
		default:
			return nil, fmt.Errorf("options file %s: %q must be a scalar or list", path, key)
		}
	}
	return out, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option values the selector cannot honour.
func Validate(cfg Config) error {
	matcher := cfg.App.Options[OptionMatcher]
	if _, ok := uistate.RankerByName(matcher); !ok {
		return fmt.Errorf("unknown matcher %q (expected one of %s)", matcher, strings.Join(uistate.Matchers(), ", "))
	}
	return nil
}
