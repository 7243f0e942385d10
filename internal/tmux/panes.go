package tmux

import (
	"fmt"
	"strings"
)

// FocusPane selects window and then pane inside it. window may be empty when
// the pane already lives in the current window.
func FocusPane(socketPath, window, pane string) error {
	pane = strings.TrimSpace(pane)
	if pane == "" {
		return fmt.Errorf("pane target required")
	}
	window = strings.TrimSpace(window)
	return withClient(socketPath, func(client tmuxClient) error {
		if window != "" {
			if err := client.SelectWindow(window); err != nil {
				return fmt.Errorf("select window %s: %w", window, err)
			}
		}
		if _, err := client.Command("select-pane", "-t", pane); err != nil {
			return fmt.Errorf("select pane %s: %w", pane, err)
		}
		return nil
	})
}
