package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/service"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/anicompare/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrorModel shows why a comparison could not be produced
type ErrorModel struct {
	width, height int
	err           error
	user1, user2  string
}

func NewErrorModel(err error, user1, user2 string) *ErrorModel {
	return &ErrorModel{
		err:   err,
		user1: user1,
		user2: user2,
	}
}

func (m *ErrorModel) ViewType() View {
	return ViewError
}

func (m *ErrorModel) Init() tea.Cmd {
	return nil
}

func (m *ErrorModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if kb.GetActionByKey(keyMsg, kb.ContextError) == kb.ActionRetry {
			return m, func() tea.Msg { return RefreshRequestedMsg{} }
		}
	}
	return m, nil
}

func (m *ErrorModel) View() string {
	var b strings.Builder

	var fetchErr *service.FetchError
	switch {
	case errors.As(m.err, &fetchErr):
		b.WriteString(styles.Error.Render("Could not fetch both lists from AniList"))
		b.WriteString("\n\n")
		b.WriteString(styles.User1.Render(m.user1) + ": " + describeStatus(fetchErr.User1Status) + "\n")
		b.WriteString(styles.User2.Render(m.user2) + ": " + describeStatus(fetchErr.User2Status) + "\n")
	case errors.Is(m.err, domain.ErrMalformedInput):
		b.WriteString(styles.Error.Render("AniList returned a list that could not be read"))
		b.WriteString("\n")
	default:
		b.WriteString(styles.Error.Render("Comparison failed"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(m.err.Error()))

	contentWidth := max(min(m.width-10, 90), 20)
	box := styles.ContentBox(contentWidth, b.String(), 1)
	footer := components.KeyBindingsBar(m.width, []components.KeyBinding{
		components.Bind(kb.ContextError, kb.ActionRetry, "Retry"),
		components.Bind(kb.ContextGlobal, kb.ActionQuit, "Quit"),
	})

	return styles.CenteredView(m.width, m.height, lipgloss.JoinVertical(lipgloss.Center, box, "", footer))
}

func (m *ErrorModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// describeStatus explains an upstream status code.  0 means no answer was received at all.
func describeStatus(status int) string {
	switch status {
	case 0:
		return "no response (network error)"
	case http.StatusOK:
		return "OK (200)"
	case http.StatusNotFound:
		return "user not found (404)"
	case http.StatusTooManyRequests:
		return "rate limited by AniList (429)"
	default:
		return fmt.Sprintf("%s (%d)", http.StatusText(status), status)
	}
}
