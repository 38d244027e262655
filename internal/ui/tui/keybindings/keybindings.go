package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionMoveTop    Action = "move_top"
	ActionMoveBottom Action = "move_bottom"

	// Comparison view actions
	ActionNextTab     Action = "next_tab"
	ActionPreviousTab Action = "previous_tab"
	ActionRefresh     Action = "refresh"

	// List table actions
	ActionToggleFilterStatusCurrent   Action = "toggle_filter_status_current"
	ActionToggleFilterStatusPlanning  Action = "toggle_filter_status_planning"
	ActionToggleFilterStatusComplete  Action = "toggle_filter_status_complete"
	ActionToggleFilterStatusDropped   Action = "toggle_filter_status_dropped"
	ActionToggleFilterStatusPaused    Action = "toggle_filter_status_paused"
	ActionToggleFilterStatusRepeating Action = "toggle_filter_status_repeating"
	ActionToggleFilterShared          Action = "toggle_filter_shared"
	ActionClearFilters                Action = "clear_filters"

	// Search mode actions
	ActionEnableSearch   Action = "enable_search"
	ActionSearchComplete Action = "search_complete"

	// Error view actions
	ActionRetry Action = "retry"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal     ContextName = "global"
	ContextCompare    ContextName = "compare"
	ContextTable      ContextName = "table"
	ContextSearchMode ContextName = "search_mode"
	ContextError      ContextName = "error"
	ContextHelp       ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:     globalBindings,
	ContextCompare:    compareBindings,
	ContextTable:      tableBindings,
	ContextSearchMode: searchModeBindings,
	ContextError:      errorBindings,
	ContextHelp:       helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// navigationBindings contains general navigation bindings for consistent navigation across the app
var navigationBindings = []Binding{
	{
		Action: ActionMoveUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "k",
			Help:      "Move cursor up",
		},
	},
	{
		Action: ActionMoveDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "j",
			Help:      "Move cursor down",
		},
	},
	{
		Action: ActionPageUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Move up one page",
		},
	},
	{
		Action: ActionPageDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Move down one page",
		},
	},
	{
		Action: ActionMoveTop,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Move top of view",
		},
	},
	{
		Action: ActionMoveBottom,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Move bottom of view",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle help screen",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Go back/cancel current action",
		},
	},
}

// helpBindings contains key bindings specific to the help view
var helpBindings = withNavigation([]Binding{})

// compareBindings are handled by the comparison view whatever tab is active.  Navigation scrolls the text tabs.
var compareBindings = withNavigation([]Binding{
	{
		Action: ActionNextTab,
		KeyMap: KeyMap{
			Primary:   "tab",
			Secondary: "right",
			Help:      "Next tab",
		},
	},
	{
		Action: ActionPreviousTab,
		KeyMap: KeyMap{
			Primary:   "shift+tab",
			Secondary: "left",
			Help:      "Previous tab",
		},
	},
	{
		Action: ActionRefresh,
		KeyMap: KeyMap{
			Primary: "r",
			Help:    "Fetch both lists again",
		},
	},
})

// tableBindings contains key bindings specific to the merged list table
var tableBindings = withNavigation([]Binding{
	{
		Action: ActionEnableSearch,
		KeyMap: KeyMap{
			Primary:   "/",
			Secondary: "ctrl+f",
			Help:      "Search titles",
		},
	},
	// Filters
	{
		Action: ActionToggleFilterStatusCurrent,
		KeyMap: KeyMap{
			Primary: "1",
			Help:    "Toggle watching filter",
		},
	},
	{
		Action: ActionToggleFilterStatusPlanning,
		KeyMap: KeyMap{
			Primary: "2",
			Help:    "Toggle planning filter",
		},
	},
	{
		Action: ActionToggleFilterStatusComplete,
		KeyMap: KeyMap{
			Primary: "3",
			Help:    "Toggle completed filter",
		},
	},
	{
		Action: ActionToggleFilterStatusDropped,
		KeyMap: KeyMap{
			Primary: "4",
			Help:    "Toggle dropped filter",
		},
	},
	{
		Action: ActionToggleFilterStatusPaused,
		KeyMap: KeyMap{
			Primary: "5",
			Help:    "Toggle paused filter",
		},
	},
	{
		Action: ActionToggleFilterStatusRepeating,
		KeyMap: KeyMap{
			Primary: "6",
			Help:    "Toggle repeating filter",
		},
	},
	{
		Action: ActionToggleFilterShared,
		KeyMap: KeyMap{
			Primary: "s",
			Help:    "Toggle only anime on both lists",
		},
	},
	{
		Action: ActionClearFilters,
		KeyMap: KeyMap{
			Primary: "c",
			Help:    "Clear all filters",
		},
	},
})

// searchModeBindings contains key bindings specific for when search mode is active
var searchModeBindings = []Binding{
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary:   "esc",
			Secondary: "ctrl+f",
			Help:      "Exit search mode and remove the filter",
		},
	},
	{
		Action: ActionSearchComplete,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Apply the search filter and return control to the table",
		},
	},
}

// errorBindings contains key bindings for the fetch error view
var errorBindings = []Binding{
	{
		Action: ActionRetry,
		KeyMap: KeyMap{
			Primary: "r",
			Help:    "Try fetching both lists again",
		},
	},
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	if bindings, exists := ContextBindings[name]; exists {
		key := keyMsg.String()
		for _, binding := range bindings {
			if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
				return binding.Action
			}
		}
	}
	return ""
}

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// withNavigation is a helper function to include navigation bindings in other binding sets
func withNavigation(bindings []Binding) []Binding {
	return append(append([]Binding{}, navigationBindings...), bindings...)
}
