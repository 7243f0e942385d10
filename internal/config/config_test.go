package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeOptions(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=" + t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, "", cfg.App.SocketPath)
	require.Equal(t, 0, cfg.App.Width)
	require.False(t, cfg.App.ShowFooter)
	require.Equal(t, map[string]string{OptionHelperCommands: "tmux-popup-pathfinder"}, cfg.App.Options)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"HOME=" + t.TempDir(),
		envSocketPath + "=/tmp/env.sock",
		envSession + "=env",
		envWidth + "=100",
		envTrace + "=true",
	}
	cfg, err := LoadArgs([]string{"-socket", "/tmp/flag.sock", "-height", "30"}, env)
	require.NoError(t, err)
	require.Equal(t, "/tmp/flag.sock", cfg.App.SocketPath)
	require.Equal(t, "env", cfg.App.Session)
	require.Equal(t, 100, cfg.App.Width)
	require.Equal(t, 30, cfg.App.Height)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "30", cfg.Flags["height"])
	require.Equal(t, []string{"-socket", "/tmp/flag.sock", "-height", "30"}, cfg.Args)
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	require.Error(t, err)
	_, err = LoadArgs([]string{"-height", "-5"}, nil)
	require.Error(t, err)
}

func TestOptionLayering(t *testing.T) {
	path := writeOptions(t, `
debug = true
matcher = "sahilm"
helper_commands = ["fzf", "pathfinder"]
helper_title_prefix = "popup:"
`)
	env := []string{
		envOptionsFile + "=" + path,
		envPrefix + "MATCHER=fuzzysearch",
	}
	cfg, err := LoadArgs([]string{"-option", "debug=false", "-option", "extra=1"}, env)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		OptionDebug:             "false",
		OptionMatcher:           "fuzzysearch",
		OptionHelperCommands:    "fzf,pathfinder",
		OptionHelperTitlePrefix: "popup:",
		"extra":                 "1",
	}, cfg.App.Options)
}

func TestOptionFlagRequiresKeyValue(t *testing.T) {
	_, err := LoadArgs([]string{"-option", "debug"}, nil)
	require.Error(t, err)
	_, err = LoadArgs([]string{"-option", "=true"}, nil)
	require.Error(t, err)
}

func TestDefaultOptionsFileIsOptional(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + home})
	require.NoError(t, err)
	require.NotContains(t, cfg.App.Options, OptionDebug)

	dir := filepath.Join(home, "tmux-popup-pathfinder")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "options.toml"), []byte("debug = true\n"), 0o644))
	cfg, err = LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + home})
	require.NoError(t, err)
	require.Equal(t, "true", cfg.App.Options[OptionDebug])
}

func TestExplicitOptionsFileMustExist(t *testing.T) {
	_, err := LoadArgs([]string{"-options-file", filepath.Join(t.TempDir(), "missing.toml")}, nil)
	require.Error(t, err)
}

func TestLoadOptionsFileRejectsTables(t *testing.T) {
	path := writeOptions(t, "[nested]\nkey = 1\n")
	_, err := LoadOptionsFile(path)
	require.Error(t, err)

	path = writeOptions(t, "limit = 3\nratio = 0.5\n")
	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"limit": "3", "ratio": "0.5"}, opts)
}

func TestValidateMatcher(t *testing.T) {
	cfg, err := LoadArgs([]string{"-option", "matcher=skim"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "skim")

	cfg, err = LoadArgs([]string{"-option", "matcher=sahilm"}, nil)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
}
