package tui

import (
	"github.com/PizzaHomicide/anicompare/internal/config"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the comparison of user1 and user2 produced by load until the user quits
func Run(cfg *config.Config, user1, user2 string, load models.LoadFunc) error {
	p := tea.NewProgram(models.NewAppModel(cfg, user1, user2, load), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
