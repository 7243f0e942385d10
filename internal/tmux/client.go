package tmux

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// A single control-mode connection is shared by the pollers and the action
// commands. Calls are serialised through clientMu.
var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

func withClient(socketPath string, fn func(tmuxClient) error) error {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == nil || cachedSocket != socketPath {
		if cachedClient != nil {
			_ = cachedClient.Close()
			cachedClient = nil
		}
		client, err := newTmux(socketPath)
		if err != nil {
			return fmt.Errorf("connect to tmux: %w", err)
		}
		cachedClient = client
		cachedSocket = socketPath
	}
	return fn(cachedClient)
}

// Shutdown closes the shared control-mode connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

// CurrentSession resolves the session the popup was opened from. override
// wins when set.
func CurrentSession(socketPath, override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return override, nil
	}
	var name string
	err := withClient(socketPath, func(client tmuxClient) error {
		name = currentSessionName(client)
		return nil
	})
	return name, err
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && !c.ControlMode && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
