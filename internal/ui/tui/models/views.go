package models

// View represents a specific UI view in the application
type View string

// Available views in the application
const (
	ViewLoading View = "loading"
	ViewCompare View = "compare"
	ViewError   View = "error"
	ViewHelp    View = "help"
)

// Modal represents a UI intended to be temporarily shown to the user before returning to the original view
type Modal string

// Available modals in the application
const (
	ModalNone Modal = "none"
	ModalHelp Modal = "help"
)
