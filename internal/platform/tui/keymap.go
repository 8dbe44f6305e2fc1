package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// debugAction is a semantic debugger action, abstracted from physical keys.
type debugAction int

const (
	actionNone debugAction = iota
	actionStep
	actionRun
	actionReset
	actionQuit
)

// mapKey translates a key message to a debugger action.
// Centralizing the bindings keeps them testable.
func mapKey(msg tea.KeyMsg) debugAction {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return actionQuit
	case "n", " ", "enter":
		return actionStep
	case "r":
		return actionRun
	case "x":
		return actionReset
	}
	return actionNone
}
