package models

import (
	"context"
	"fmt"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/config"
	"github.com/PizzaHomicide/anicompare/internal/log"
	kb "github.com/PizzaHomicide/anicompare/internal/ui/tui/keybindings"
	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 2 * time.Minute

// LoadFunc produces the comparison shown by the app.  refresh is set when the user asked to fetch the lists again.
type LoadFunc func(ctx context.Context, refresh bool) (*compare.Result, error)

// AppModel is the main application model that coordinates all child models.  It is the high level wrapper.
type AppModel struct {
	config        *config.Config
	user1, user2  string
	load          LoadFunc
	activeView    View  // Track the current active 'main view'
	activeModal   Modal // Track the current active 'modal overlay' if any
	width, height int

	loadingModel *LoadingModel
	compareModel *CompareModel
	errorModel   *ErrorModel
	helpModel    *HelpModel
}

// NewAppModel creates a new instance of the main application model
func NewAppModel(cfg *config.Config, user1, user2 string, load LoadFunc) AppModel {
	return AppModel{
		config:       cfg,
		user1:        user1,
		user2:        user2,
		load:         load,
		activeView:   ViewLoading,
		activeModal:  ModalNone,
		loadingModel: newComparisonLoadingModel(user1, user2),
		helpModel:    NewHelpModel(ViewLoading),
	}
}

func newComparisonLoadingModel(user1, user2 string) *LoadingModel {
	return NewLoadingModel("Fetching anime lists...").
		WithTitle("anicompare").
		WithContextInfo(fmt.Sprintf("%s vs %s", user1, user2))
}

func (m AppModel) Init() tea.Cmd {
	log.Info("Initialising anicompare TUI", "user1", m.user1, "user2", m.user2)
	return tea.Batch(m.loadingModel.Init(), m.loadComparison(false))
}

// loadComparison runs the LoadFunc off the UI loop and reports the outcome as a message
func (m AppModel) loadComparison(refresh bool) tea.Cmd {
	load := m.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		result, err := load(ctx, refresh)
		if err != nil {
			log.Error("Failed to load comparison", "error", err)
			return ComparisonErrorMsg{Err: err}
		}
		return ComparisonLoadedMsg{Result: result}
	}
}

// Update handles messages and updates the models as appropriate
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextGlobal) {
		case kb.ActionQuit:
			log.Info("Quit command received.  Shutting down...")
			return m, tea.Quit
		case kb.ActionToggleHelp:
			log.Debug("Help requested", "active_view", m.activeView)
			// Disable/toggle modal if one already active
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
			} else {
				m.helpModel = NewHelpModel(m.activeView)
				m.helpModel.Resize(m.width, m.height)
				m.activeModal = ModalHelp
			}
			return m, nil
		case kb.ActionBack:
			// Handle closing modal when esc is pressed if any is active
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "old_width", m.width, "new_width", msg.Width, "old_height", m.height, "new_height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

		// Propagate new window size to all views so they are aware and can render correctly
		for _, model := range m.models() {
			model.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case ComparisonLoadedMsg:
		log.Info("Comparison loaded", "rows", len(msg.Result.Table))
		m.compareModel = NewCompareModel(m.config, msg.Result)
		m.compareModel.Resize(m.width, m.height)
		m.errorModel = nil
		m.activeView = ViewCompare
		return m, nil

	case ComparisonErrorMsg:
		m.errorModel = NewErrorModel(msg.Err, m.user1, m.user2)
		m.errorModel.Resize(m.width, m.height)
		m.activeView = ViewError
		return m, nil

	case RefreshRequestedMsg:
		log.Info("Refreshing comparison")
		m.loadingModel = newComparisonLoadingModel(m.user1, m.user2)
		m.loadingModel.Resize(m.width, m.height)
		m.activeView = ViewLoading
		m.activeModal = ModalNone
		return m, tea.Batch(m.loadingModel.Init(), m.loadComparison(true))

	case HandledMsg:
		log.Trace("Input handled", "reason", msg.Reason)
		return m, nil
	}

	// Prioritise delegating messages to a modal if one is active
	if m.activeModal == ModalHelp {
		_, cmd := m.helpModel.Update(msg)
		return m, cmd
	}

	if active := m.activeModel(); active != nil {
		_, cmd := active.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.activeModal == ModalHelp {
		return m.helpModel.View()
	}

	if active := m.activeModel(); active != nil {
		return active.View()
	}
	return "Unknown view\nPress ctrl+c to quit."
}

// ActiveView returns the main view currently shown
func (m AppModel) ActiveView() View {
	return m.activeView
}

func (m AppModel) activeModel() Model {
	switch m.activeView {
	case ViewLoading:
		return m.loadingModel
	case ViewCompare:
		if m.compareModel != nil {
			return m.compareModel
		}
	case ViewError:
		if m.errorModel != nil {
			return m.errorModel
		}
	}
	return nil
}

// models returns every live model, for broadcasting window size changes
func (m AppModel) models() []Model {
	models := []Model{m.loadingModel, m.helpModel}
	if m.compareModel != nil {
		models = append(models, m.compareModel)
	}
	if m.errorModel != nil {
		models = append(models, m.errorModel)
	}
	return models
}
