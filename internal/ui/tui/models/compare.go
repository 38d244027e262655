package models

import (
	"fmt"
	"strings"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/config"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/anicompare/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one page of the comparison view
type Tab int

const (
	TabOverview Tab = iota
	TabFavourites
	TabReleaseYears
	TabTable
)

var tabNames = []string{"Overview", "Favourites", "Release years", "Table"}

func (t Tab) String() string {
	return tabNames[t]
}

// CompareModel presents a comparison result across tabs.  The text tabs are rendered into a scrollable viewport, the
// table tab is interactive.
type CompareModel struct {
	width, height int
	result        *compare.Result
	activeTab     Tab
	viewport      viewport.Model
	table         *TableModel
}

func NewCompareModel(cfg *config.Config, result *compare.Result) *CompareModel {
	return &CompareModel{
		result:   result,
		viewport: viewport.New(0, 0),
		table:    NewTableModel(result.Table, result.User1.Name, result.User2.Name, cfg.UI.TitleWidth),
	}
}

func (m *CompareModel) ViewType() View {
	return ViewCompare
}

func (m *CompareModel) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the tab currently shown
func (m *CompareModel) ActiveTab() Tab {
	return m.activeTab
}

// InSearchMode reports whether the table tab is capturing key presses for its search input
func (m *CompareModel) InSearchMode() bool {
	return m.activeTab == TabTable && m.table.InSearchMode()
}

func (m *CompareModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.activeTab != TabTable {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.InSearchMode() {
			_, cmd = m.table.Update(msg)
			return m, cmd
		}

		switch action := kb.GetActionByKey(msg, kb.ContextCompare); action {
		case kb.ActionNextTab:
			m.setTab((m.activeTab + 1) % Tab(len(tabNames)))
			return m, Handled("tab:next")
		case kb.ActionPreviousTab:
			m.setTab((m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
			return m, Handled("tab:previous")
		case kb.ActionRefresh:
			return m, func() tea.Msg { return RefreshRequestedMsg{} }
		}

		if m.activeTab == TabTable {
			_, cmd = m.table.Update(msg)
			return m, cmd
		}

		switch kb.GetActionByKey(msg, kb.ContextCompare) {
		case kb.ActionMoveUp, kb.ActionMoveDown, kb.ActionPageUp, kb.ActionPageDown:
			m.viewport, cmd = m.viewport.Update(msg)
		case kb.ActionMoveTop:
			m.viewport.GotoTop()
		case kb.ActionMoveBottom:
			m.viewport.GotoBottom()
		}
	}

	return m, cmd
}

func (m *CompareModel) setTab(tab Tab) {
	m.activeTab = tab
	m.updateContent()
}

// updateContent renders the active text tab into the viewport
func (m *CompareModel) updateContent() {
	width := m.viewport.Width
	var content string
	switch m.activeTab {
	case TabOverview:
		content = renderOverview(m.result, width)
	case TabFavourites:
		content = renderFavourites(m.result, width)
	case TabReleaseYears:
		content = renderReleaseYears(m.result, width)
	default:
		return
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m *CompareModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// header, tab bar, footer and spacing
	bodyHeight := max(height-6, 1)
	m.viewport.Width = max(width-4, 1)
	m.viewport.Height = bodyHeight
	m.table.Resize(width, bodyHeight)

	m.updateContent()
}

func (m *CompareModel) View() string {
	title := fmt.Sprintf("anicompare: %s vs %s", m.result.User1.Name, m.result.User2.Name)
	header := styles.Header(m.width, title)

	var body string
	if m.activeTab == TabTable {
		body = m.table.View()
	} else {
		body = lipgloss.NewStyle().Padding(0, 2).Render(m.viewport.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.renderTabs(),
		"",
		body,
		m.renderFooter(),
	)
}

func (m *CompareModel) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, styles.InactiveTab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *CompareModel) renderFooter() string {
	bindings := []components.KeyBinding{
		components.Bind(kb.ContextCompare, kb.ActionNextTab, "Next tab"),
		components.Bind(kb.ContextCompare, kb.ActionRefresh, "Refresh"),
	}
	if m.activeTab == TabTable {
		bindings = append(bindings,
			components.Bind(kb.ContextTable, kb.ActionEnableSearch, "Search"),
			components.Bind(kb.ContextTable, kb.ActionClearFilters, "Clear filters"))
	}
	bindings = append(bindings,
		components.Bind(kb.ContextGlobal, kb.ActionToggleHelp, "Help"),
		components.Bind(kb.ContextGlobal, kb.ActionQuit, "Quit"))

	return strings.TrimRight(components.KeyBindingsBar(m.width, bindings), " ")
}
