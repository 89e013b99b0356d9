package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is a dialog drawn over the table. While one is open it receives
// every key. Update returns the updated modal, a command, and whether the
// modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
	// SetSize fits the modal to a new terminal size.
	SetSize(width, height int)
}
