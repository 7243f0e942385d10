// Package ui contains the Bubble Tea program that hosts the tab and pane
// finder.
//
// The search itself lives in internal/ui/state.Selector, which knows nothing
// about terminals or tmux. This package adapts it:
//   - keys.go maps terminal key presses onto selector key events through a
//     bubbles/key binding table.
//   - backend.go drains the backend.Watcher, stores snapshots through the
//     dispatcher and hands tabs and grouped panes to the selector.
//   - commands.go turns selector actions into tmux calls run through the
//     command bus; the popup quits once a call succeeds.
//   - view.go draws the selector's Frame: mode ribbons, the prompt, the
//     visible rows, the selection lines and the optional debug dump.
//
// Messages are routed through a typed handler registry so Update stays a
// small dispatcher.
package ui
