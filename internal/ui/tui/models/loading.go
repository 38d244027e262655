package models

import (
	"strings"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingModel displays a loading indicator with contextual messages
type LoadingModel struct {
	width, height int
	title         string // Optional title for the loading box
	message       string // Primary message displayed with the spinner
	contextInfo   string // Optional additional context
	spinner       spinner.Model
	startTime     time.Time
}

// NewLoadingModel creates a new loading model with the required message
func NewLoadingModel(message string) *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	return &LoadingModel{
		message:   message,
		spinner:   s,
		startTime: time.Now(),
	}
}

// WithTitle adds an optional title to the loading box
func (m *LoadingModel) WithTitle(title string) *LoadingModel {
	m.title = title
	return m
}

// WithContextInfo adds additional context information
func (m *LoadingModel) WithContextInfo(info string) *LoadingModel {
	m.contextInfo = info
	return m
}

func (m *LoadingModel) ViewType() View {
	return ViewLoading
}

func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *LoadingModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	log.Trace("Loading model ignored message", "message", msg)
	return m, nil
}

// View renders the loading state
func (m *LoadingModel) View() string {
	// Calculate optimal content width - not too wide, not too narrow
	contentWidth := min(m.width-20, 80)
	if contentWidth < 40 {
		contentWidth = min(m.width-4, 40)
	}

	spinnerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9D86FF")).
		Bold(true).
		PaddingRight(1)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	centerStyle := lipgloss.NewStyle().
		Width(contentWidth - 6). // Account for padding
		Align(lipgloss.Center)

	var contentBuilder strings.Builder

	primaryRow := spinnerStyle.Render(m.spinner.View()) + " " + messageStyle.Render(m.message)
	contentBuilder.WriteString(centerStyle.Render(primaryRow))

	if m.contextInfo != "" {
		contextStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true).
			Width(contentWidth - 6).
			Align(lipgloss.Center)

		contentBuilder.WriteString("\n\n")
		contentBuilder.WriteString(contextStyle.Render(m.contextInfo))
	}

	// Slow fetches are usually AniList rate limiting, which is retried
	if elapsed := time.Since(m.startTime); elapsed > 5*time.Second {
		contentBuilder.WriteString("\n\n")
		contentBuilder.WriteString(centerStyle.Render(styles.Muted.Render(
			"Still working after " + elapsed.Truncate(time.Second).String() + ", AniList may be rate limiting")))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#9D86FF")).
		Padding(2, 3).
		Width(contentWidth)

	var finalView string
	if m.title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Align(lipgloss.Center).
			Width(contentWidth)

		finalView = lipgloss.JoinVertical(
			lipgloss.Center,
			titleStyle.Render(m.title),
			boxStyle.Render(contentBuilder.String()),
		)
	} else {
		finalView = boxStyle.Render(contentBuilder.String())
	}

	return styles.CenteredView(m.width, m.height, finalView)
}

func (m *LoadingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
