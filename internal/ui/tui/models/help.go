package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	kb "github.com/PizzaHomicide/anicompare/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel displays contextual help with scrolling
type HelpModel struct {
	width, height int
	context       View
	viewport      viewport.Model
}

// NewHelpModel creates a new help model for the given context
func NewHelpModel(context View) *HelpModel {
	return &HelpModel{
		context:  context,
		viewport: viewport.New(0, 0),
	}
}

func (m *HelpModel) ViewType() View {
	return ViewHelp
}

func (m *HelpModel) Init() tea.Cmd {
	if m.width > 0 && m.height > 0 {
		m.updateContent()
	}
	return nil
}

func (m *HelpModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextHelp) {
		case kb.ActionMoveUp, kb.ActionMoveDown, kb.ActionPageUp, kb.ActionPageDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case kb.ActionMoveTop:
			m.viewport.GotoTop()
		case kb.ActionMoveBottom:
			m.viewport.GotoBottom()
		}
	}
	return m, cmd
}

func (m *HelpModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Account for borders, header, footer and spacing
	m.viewport.Width = max(width-4, 1)
	m.viewport.Height = max(height-10, 1)

	m.updateContent()
}

func (m *HelpModel) updateContent() {
	m.viewport.SetContent(m.generateHelpContent())
	m.viewport.GotoTop()
}

func (m *HelpModel) View() string {
	header := styles.Header(m.width, "Help: "+m.getContextTitle())

	scrollText := "↑/↓: Scroll • PgUp/PgDn: Page scroll • Home/End: Goto top/bottom • ESC: Return"
	footer := styles.CenteredText(m.width, styles.Info.Render(scrollText))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		styles.ContentBox(m.width-2, m.viewport.View(), 1),
		"",
		footer,
	)
}

func (m *HelpModel) getContextTitle() string {
	switch m.context {
	case ViewCompare:
		return "Comparison"
	case ViewError:
		return "Fetch error"
	case ViewLoading:
		return "Loading"
	default:
		return "General"
	}
}

// formatKeybindingSection formats a section of keybindings with aligned colons
func (m *HelpModel) formatKeybindingSection(title string, bindings []kb.Binding, skipActions map[kb.Action]bool) string {
	if len(bindings) == 0 {
		return ""
	}

	keyText := func(binding kb.Binding) string {
		text := binding.KeyMap.Primary
		if binding.KeyMap.Secondary != "" {
			text += " or " + binding.KeyMap.Secondary
		}
		return text
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")

	// First pass: determine the maximum key width for alignment
	maxKeyWidth := 0
	for _, binding := range bindings {
		if skipActions[binding.Action] {
			continue
		}
		maxKeyWidth = max(maxKeyWidth, utf8.RuneCountInString(keyText(binding)))
	}

	// Second pass: format each binding with aligned colons
	for _, binding := range bindings {
		if skipActions[binding.Action] {
			continue
		}

		text := keyText(binding)
		padding := strings.Repeat(" ", maxKeyWidth-utf8.RuneCountInString(text))
		b.WriteString(fmt.Sprintf("• %s%s : %s\n",
			lipgloss.NewStyle().Bold(true).Render(text),
			padding,
			binding.KeyMap.Help))
	}

	return b.String()
}

func (m *HelpModel) generateHelpContent() string {
	var b strings.Builder

	b.WriteString(styles.Section.Render(m.getContextTitle()))
	b.WriteString("\n\n")
	b.WriteString(m.getContextDescription())
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.formatKeybindingSection("Global commands:", kb.ContextBindings[kb.ContextGlobal], nil))

	switch m.context {
	case ViewCompare:
		// Navigation is listed once, with the table commands
		navigation := map[kb.Action]bool{
			kb.ActionMoveUp: true, kb.ActionMoveDown: true, kb.ActionPageUp: true,
			kb.ActionPageDown: true, kb.ActionMoveTop: true, kb.ActionMoveBottom: true,
		}
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("Comparison commands:", kb.ContextBindings[kb.ContextCompare], navigation))
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("Table commands:", kb.ContextBindings[kb.ContextTable], nil))
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("When in search mode:", kb.ContextBindings[kb.ContextSearchMode], nil))
		b.WriteString("\n")
		b.WriteString(m.getFilterDetails())
	case ViewError:
		b.WriteString("\n")
		b.WriteString(m.formatKeybindingSection("Error commands:", kb.ContextBindings[kb.ContextError], nil))
	}

	return b.String()
}

// getFilterDetails returns detailed explanation of filters for the table tab
func (m *HelpModel) getFilterDetails() string {
	var b strings.Builder

	b.WriteString(styles.Section.Render("Filters"))
	b.WriteString("\n\n")

	b.WriteString("Status filters:\n\n")
	b.WriteString("• [W] : Watching\n")
	b.WriteString("• [P] : Planning\n")
	b.WriteString("• [C] : Completed\n")
	b.WriteString("• [D] : Dropped\n")
	b.WriteString("• [H] : Paused\n")
	b.WriteString("• [R] : Repeating\n\n")

	b.WriteString("A status filter keeps an anime when either of you has it in that status. ")
	b.WriteString("With no status filter active every anime is shown.\n")
	b.WriteString("[S] keeps only anime that are on both lists.\n")

	return b.String()
}

func (m *HelpModel) getContextDescription() string {
	switch m.context {
	case ViewCompare:
		return "The comparison screen shows how two AniList users' anime histories relate.\n\n" +
			"Overview holds the list overlap, completion counters, most watched anime and top genres. " +
			"Favourites lists the favourites you share. Release years compares what you watch by year. " +
			"Table merges both lists side by side: '-' means the anime is not on that list and 'X' means it is unscored."
	case ViewError:
		return "One or both lists could not be fetched from AniList. The status AniList answered with is shown " +
			"for each user. A 404 usually means the user name is wrong or the list is private."
	case ViewLoading:
		return "Both lists are being fetched from AniList."
	default:
		return "anicompare compares the anime lists of two AniList users."
	}
}
