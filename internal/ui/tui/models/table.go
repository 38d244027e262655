package models

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
	kb "github.com/PizzaHomicide/anicompare/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	statusColumnWidth = 10
	scoreColumnWidth  = 6
	// header, separator, filter line, pagination line, box border and padding
	tableChromeHeight = 9
)

// statusFilterOrder is the order filter indicators are shown in, matching the 1-6 keys
var statusFilterOrder = []struct {
	action    kb.Action
	status    domain.MediaStatus
	indicator string
}{
	{kb.ActionToggleFilterStatusCurrent, domain.StatusCurrent, "W"},
	{kb.ActionToggleFilterStatusPlanning, domain.StatusPlanning, "P"},
	{kb.ActionToggleFilterStatusComplete, domain.StatusCompleted, "C"},
	{kb.ActionToggleFilterStatusDropped, domain.StatusDropped, "D"},
	{kb.ActionToggleFilterStatusPaused, domain.StatusPaused, "H"},
	{kb.ActionToggleFilterStatusRepeating, domain.StatusRepeating, "R"},
}

// TableFilterSet represents the filters applied to the merged list table
type TableFilterSet struct {
	statusFilters []domain.MediaStatus // Empty slice means no status filter
	sharedOnly    bool                 // Only anime on both lists
	searchQuery   string
}

// TableModel shows the merged list of both users with search and filters
type TableModel struct {
	width, height int
	titleWidth    int
	user1, user2  string
	rows          []compare.TableRow
	filteredRows  []compare.TableRow
	filters       TableFilterSet
	cursor        int
	searchMode    bool
	searchInput   textinput.Model
}

func NewTableModel(rows []compare.TableRow, user1, user2 string, titleWidth int) *TableModel {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100
	ti.Width = 40

	m := &TableModel{
		titleWidth:  titleWidth,
		user1:       user1,
		user2:       user2,
		rows:        rows,
		searchInput: ti,
	}
	m.applyFilters()
	return m
}

func (m *TableModel) ViewType() View {
	return ViewCompare
}

func (m *TableModel) Init() tea.Cmd {
	return nil
}

func (m *TableModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// InSearchMode reports whether key presses are currently going to the search input
func (m *TableModel) InSearchMode() bool {
	return m.searchMode
}

func (m *TableModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searchMode {
		return m, m.handleSearchModeKeyMsg(keyMsg)
	}
	return m, m.handleKeyPress(keyMsg)
}

func (m *TableModel) handleSearchModeKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch kb.GetActionByKey(msg, kb.ContextSearchMode) {
	case kb.ActionBack:
		// Cancels search, clearing the filter
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filters.searchQuery = ""
		m.applyFilters()
		return Handled("search:exit")
	case kb.ActionSearchComplete:
		m.searchMode = false
		m.searchInput.Blur()
		m.filters.searchQuery = m.searchInput.Value()
		m.applyFilters()
		return Handled("search:apply")
	}

	// Let the text input model handle other keys
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Apply filters as we type
	m.filters.searchQuery = m.searchInput.Value()
	m.applyFilters()

	if cmd == nil {
		cmd = Handled("search:input")
	}
	return cmd
}

// handleKeyPress processes keyboard inputs in normal mode
func (m *TableModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch action := kb.GetActionByKey(msg, kb.ContextTable); action {
	case kb.ActionMoveUp:
		m.moveCursor(-1)
		return Handled("cursor_move:up")
	case kb.ActionMoveDown:
		m.moveCursor(1)
		return Handled("cursor_move:down")
	case kb.ActionPageUp:
		m.moveCursor(-m.visibleCount())
		return Handled("cursor_move:page_up")
	case kb.ActionPageDown:
		m.moveCursor(m.visibleCount())
		return Handled("cursor_move:page_down")
	case kb.ActionMoveTop:
		m.cursor = 0
		return Handled("cursor_move:top")
	case kb.ActionMoveBottom:
		m.cursor = max(len(m.filteredRows)-1, 0)
		return Handled("cursor_move:bottom")
	case kb.ActionToggleFilterStatusCurrent, kb.ActionToggleFilterStatusPlanning, kb.ActionToggleFilterStatusComplete,
		kb.ActionToggleFilterStatusDropped, kb.ActionToggleFilterStatusPaused, kb.ActionToggleFilterStatusRepeating:
		m.toggleStatusFilter(action)
		m.applyFilters()
		m.cursor = 0
		return Handled("filter:toggle")
	case kb.ActionToggleFilterShared:
		m.filters.sharedOnly = !m.filters.sharedOnly
		m.applyFilters()
		m.cursor = 0
		return Handled("filter:shared")
	case kb.ActionClearFilters:
		m.filters = TableFilterSet{}
		m.searchInput.SetValue("")
		m.applyFilters()
		m.cursor = 0
		return Handled("filter:clear")
	case kb.ActionEnableSearch:
		m.searchMode = true
		return tea.Batch(m.searchInput.Focus(), Handled("search:enable"))
	}

	return nil
}

func (m *TableModel) moveCursor(delta int) {
	if len(m.filteredRows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.filteredRows)-1)
}

func (m *TableModel) toggleStatusFilter(action kb.Action) {
	for _, f := range statusFilterOrder {
		if f.action != action {
			continue
		}
		if i := slices.Index(m.filters.statusFilters, f.status); i >= 0 {
			m.filters.statusFilters = slices.Delete(m.filters.statusFilters, i, i+1)
		} else {
			m.filters.statusFilters = append(m.filters.statusFilters, f.status)
		}
		return
	}
}

// applyFilters rebuilds the visible rows.  A status filter matches a row when either user has the anime in one of the
// selected statuses.
func (m *TableModel) applyFilters() {
	m.filteredRows = m.filteredRows[:0]

	for _, row := range m.rows {
		if len(m.filters.statusFilters) > 0 && !m.rowHasStatus(row) {
			continue
		}
		if m.filters.sharedOnly && (row.User1 == nil || row.User2 == nil) {
			continue
		}
		if m.filters.searchQuery != "" && !fuzzy.MatchFold(m.filters.searchQuery, row.Title) {
			continue
		}
		m.filteredRows = append(m.filteredRows, row)
	}

	log.Trace("Applied table filters",
		"statuses", m.filters.statusFilters,
		"shared_only", m.filters.sharedOnly,
		"query", m.filters.searchQuery,
		"rows", len(m.filteredRows))

	// Reset cursor if it's out of bounds
	if len(m.filteredRows) == 0 {
		m.cursor = 0
	} else if m.cursor >= len(m.filteredRows) {
		m.cursor = len(m.filteredRows) - 1
	}
}

func (m *TableModel) rowHasStatus(row compare.TableRow) bool {
	for _, cell := range []*compare.TableCell{row.User1, row.User2} {
		if cell != nil && slices.Contains(m.filters.statusFilters, cell.Status) {
			return true
		}
	}
	return false
}

func (m *TableModel) visibleCount() int {
	return max(m.height-tableChromeHeight, 1)
}

// titleColumnWidth shrinks the configured title width on narrow terminals
func (m *TableModel) titleColumnWidth() int {
	available := m.width - 8 - 2*(statusColumnWidth+scoreColumnWidth+2)
	return max(min(m.titleWidth, available), 10)
}

func (m *TableModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderFilterStatus())
	b.WriteString("\n")
	if m.searchMode {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.filteredRows) == 0 {
		b.WriteString(styles.CenteredText(m.width, "No anime match the current filters"))
		return b.String()
	}

	visibleCount := min(len(m.filteredRows), m.visibleCount())

	// Adjust starting index to keep cursor in view
	startIdx := 0
	if m.cursor >= visibleCount {
		startIdx = m.cursor - visibleCount + 1
	}
	endIdx := min(startIdx+visibleCount, len(m.filteredRows))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Width(m.width-4).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#7D56F4")).
		Width(m.width-4).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Width(m.width-4).
		Padding(0, 1)

	var listContent strings.Builder
	listContent.WriteString(headerStyle.Render(m.formatHeader()) + "\n")
	listContent.WriteString(strings.Repeat("─", max(m.width-6, 1)) + "\n")

	for i := startIdx; i < endIdx; i++ {
		itemText := m.formatRow(m.filteredRows[i])
		if i == m.cursor {
			listContent.WriteString(selectedStyle.Render(itemText) + "\n")
		} else {
			listContent.WriteString(normalStyle.Render(itemText) + "\n")
		}
	}

	if len(m.filteredRows) > visibleCount {
		pagination := fmt.Sprintf("Showing %d-%d of %d", startIdx+1, endIdx, len(m.filteredRows))
		listContent.WriteString(styles.CenteredText(m.width-4, pagination))
	}

	b.WriteString(styles.ContentBox(m.width-2, listContent.String(), 0))
	return b.String()
}

func (m *TableModel) formatHeader() string {
	return strings.Join([]string{
		util.PadRight("Title", m.titleColumnWidth()),
		util.PadRight(m.user1, statusColumnWidth),
		util.PadRight("Score", scoreColumnWidth),
		util.PadRight(m.user2, statusColumnWidth),
		util.PadRight("Score", scoreColumnWidth),
	}, "  ")
}

// formatRow formats a single merged row.  Absent sides render as "-" and unscored entries as "X".
func (m *TableModel) formatRow(row compare.TableRow) string {
	return strings.Join([]string{
		util.PadRight(row.Title, m.titleColumnWidth()),
		util.PadRight(row.User1.StatusLabel(), statusColumnWidth),
		util.PadRight(row.User1.ScoreLabel(), scoreColumnWidth),
		util.PadRight(row.User2.StatusLabel(), statusColumnWidth),
		util.PadRight(row.User2.ScoreLabel(), scoreColumnWidth),
	}, "  ")
}

// renderFilterStatus returns a concise string representation of all active filters
func (m *TableModel) renderFilterStatus() string {
	var statusIndicators []string
	for _, f := range statusFilterOrder {
		if slices.Contains(m.filters.statusFilters, f.status) {
			statusIndicators = append(statusIndicators, fmt.Sprintf("[%s]", f.indicator))
		} else {
			statusIndicators = append(statusIndicators, "[-]")
		}
	}

	shared := "-"
	if m.filters.sharedOnly {
		shared = "S"
	}

	searchText := "-"
	if m.filters.searchQuery != "" {
		searchText = fmt.Sprintf("%q", m.filters.searchQuery)
	}

	filterLine := fmt.Sprintf(" Status -> %s | Shared -> [%s] | Search: %s | %d/%d",
		strings.Join(statusIndicators, " "), shared, searchText, len(m.filteredRows), len(m.rows))
	return styles.Title.Render("Filters:") + styles.FilterStatus.Render(filterLine)
}

// SelectedRow returns the row under the cursor, or nil when no row is visible
func (m *TableModel) SelectedRow() *compare.TableRow {
	if len(m.filteredRows) == 0 || m.cursor >= len(m.filteredRows) {
		return nil
	}
	return &m.filteredRows[m.cursor]
}
