package tmux

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

const (
	defaultWindowFormat = "#{window_name}"
	defaultPaneFormat   = "#{pane_title}"
)

// FetchWindows lists the windows of session in index order. An empty session
// is resolved from the calling pane.
func FetchWindows(socketPath, session string) (WindowSnapshot, error) {
	var snapshot WindowSnapshot
	err := withClient(socketPath, func(client tmuxClient) error {
		if session = strings.TrimSpace(session); session == "" {
			session = currentSessionName(client)
		}
		snapshot.Session = session
		lines, err := fetchWindowLines(client)
		if err != nil {
			all, allErr := client.ListAllWindows()
			if allErr != nil {
				return fmt.Errorf("list windows: %w", allErr)
			}
			lines = fallbackWindowLines(all)
		}
		for _, line := range lines {
			if session != "" && line.session != session {
				continue
			}
			snapshot.Windows = append(snapshot.Windows, Window{
				ID:      line.windowID,
				Session: line.session,
				Index:   line.index,
				Name:    line.name,
				Label:   line.label,
				Active:  line.active,
			})
		}
		return nil
	})
	if err != nil {
		return WindowSnapshot{}, err
	}
	sort.SliceStable(snapshot.Windows, func(i, j int) bool {
		return snapshot.Windows[i].Index < snapshot.Windows[j].Index
	})
	return snapshot, nil
}

// FetchPanes lists the panes of session grouped in window, then pane, order.
func FetchPanes(socketPath, session string) (PaneSnapshot, error) {
	var snapshot PaneSnapshot
	err := withClient(socketPath, func(client tmuxClient) error {
		if session = strings.TrimSpace(session); session == "" {
			session = currentSessionName(client)
		}
		snapshot.Session = session
		lines, err := fetchPaneLines(client)
		if err != nil {
			return fmt.Errorf("list panes: %w", err)
		}
		for _, line := range lines {
			if session != "" && line.session != session {
				continue
			}
			snapshot.Panes = append(snapshot.Panes, Pane{
				ID:          line.paneID,
				Session:     line.session,
				WindowIndex: line.windowIndex,
				Index:       line.paneIndex,
				Title:       line.title,
				Label:       line.label,
				Command:     line.command,
				Active:      line.active,
			})
		}
		return nil
	})
	if err != nil {
		return PaneSnapshot{}, err
	}
	sort.SliceStable(snapshot.Panes, func(i, j int) bool {
		a, b := snapshot.Panes[i], snapshot.Panes[j]
		if a.WindowIndex != b.WindowIndex {
			return a.WindowIndex < b.WindowIndex
		}
		return a.Index < b.Index
	})
	return snapshot, nil
}

type windowLine struct {
	windowID string
	session  string
	index    int
	active   bool
	name     string
	label    string
}

type paneLine struct {
	paneID      string
	session     string
	windowIndex int
	paneIndex   int
	active      bool
	command     string
	title       string
	label       string
}

func formatFromEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func fetchWindowLines(client tmuxClient) ([]windowLine, error) {
	label := formatFromEnv("TMUX_POPUP_PATHFINDER_WINDOW_FORMAT", defaultWindowFormat)
	format := fmt.Sprintf("#{window_id}\t#{session_name}\t#{window_index}\t#{?window_active,1,0}\t#{window_name}\t%s", label)
	rawLines, err := client.ListWindowsFormat("", "", format)
	if err != nil {
		return nil, err
	}
	result := make([]windowLine, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 6)
		if len(parts) < 5 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		entry := windowLine{
			windowID: strings.TrimSpace(parts[0]),
			session:  strings.TrimSpace(parts[1]),
			index:    index,
			active:   strings.TrimSpace(parts[3]) == "1",
			name:     strings.TrimSpace(parts[4]),
		}
		if len(parts) > 5 {
			entry.label = strings.TrimSpace(parts[5])
		}
		if entry.label == "" {
			entry.label = entry.name
		}
		result = append(result, entry)
	}
	return result, nil
}

func fallbackWindowLines(windows []*gotmux.Window) []windowLine {
	lines := make([]windowLine, 0, len(windows))
	for _, w := range windows {
		if w == nil {
			continue
		}
		session := firstSession(w)
		if session == "" {
			session = strings.TrimSpace(w.Session)
		}
		lines = append(lines, windowLine{
			windowID: w.Id,
			session:  session,
			index:    w.Index,
			active:   w.Active,
			name:     w.Name,
			label:    w.Name,
		})
	}
	return lines
}

func fetchPaneLines(client tmuxClient) ([]paneLine, error) {
	label := formatFromEnv("TMUX_POPUP_PATHFINDER_PANE_FORMAT", defaultPaneFormat)
	format := fmt.Sprintf("#{pane_id}\t#{session_name}\t#{window_index}\t#{pane_index}\t#{?pane_active,1,0}\t#{pane_current_command}\t#{pane_title}\t%s", label)
	rawLines, err := client.ListPanesFormat("", "", format)
	if err != nil {
		return nil, err
	}
	result := make([]paneLine, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 8)
		if len(parts) < 7 {
			continue
		}
		windowIndex, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		paneIndex, _ := strconv.Atoi(strings.TrimSpace(parts[3]))
		entry := paneLine{
			paneID:      strings.TrimSpace(parts[0]),
			session:     strings.TrimSpace(parts[1]),
			windowIndex: windowIndex,
			paneIndex:   paneIndex,
			active:      strings.TrimSpace(parts[4]) == "1",
			command:     strings.TrimSpace(parts[5]),
			title:       strings.TrimSpace(parts[6]),
		}
		if len(parts) > 7 {
			entry.label = strings.TrimSpace(parts[7])
		}
		if entry.label == "" {
			entry.label = entry.title
		}
		if entry.label == "" {
			entry.label = entry.paneID
		}
		result = append(result, entry)
	}
	return result, nil
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return ""
}
