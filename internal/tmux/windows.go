package tmux

import (
	"fmt"
	"strings"
)

// SelectWindow makes target the current window of its session.
func SelectWindow(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("window target required")
	}
	return withClient(socketPath, func(client tmuxClient) error {
		if err := client.SelectWindow(target); err != nil {
			return fmt.Errorf("select window %s: %w", target, err)
		}
		return nil
	})
}
