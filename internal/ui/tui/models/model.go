package models

import tea "github.com/charmbracelet/bubbletea"

// Model is implemented by every view and modal the AppModel coordinates
type Model interface {
	ViewType() View
	Init() tea.Cmd
	Update(msg tea.Msg) (Model, tea.Cmd)
	View() string
	Resize(width, height int)
}

// HandledMsg is emitted when a key press was consumed by a model and needs no further processing
type HandledMsg struct {
	Reason string
}

// Handled returns a command reporting that input was handled.  The reason only ends up in trace logs.
func Handled(reason string) tea.Cmd {
	return func() tea.Msg {
		return HandledMsg{Reason: reason}
	}
}
