package models

import (
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/config"
	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/domain/domaintest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() *config.Config {
	return &config.Config{UI: config.UIConfig{TitleWidth: 30}}
}

func testResult(t *testing.T) *compare.Result {
	t.Helper()

	doc1 := domaintest.Document("alice", []int{1, 2},
		domaintest.Entry(1, domain.StatusCompleted, "Mushishi", 9, 12),
		domaintest.Entry(2, domain.StatusCurrent, "Haibane Renmei", 0, 3),
		domaintest.Entry(4, domain.StatusDropped, "Ergo Proxy", 4, 5))
	doc2 := domaintest.Document("bob", []int{2},
		domaintest.Entry(1, domain.StatusCompleted, "Mushi-Shi", 7, 12),
		domaintest.Entry(3, domain.StatusPlanning, "Kaiba", 0, 0))

	result, err := compare.Compare(doc1, doc2)
	require.NoError(t, err)
	return result
}

func score(v float64) *float64 {
	return &v
}

func testRows() []compare.TableRow {
	return []compare.TableRow{
		{MediaID: 1, Title: "Mushishi",
			User1: &compare.TableCell{Status: domain.StatusCompleted, Score: score(9)},
			User2: &compare.TableCell{Status: domain.StatusCompleted, Score: score(7)}},
		{MediaID: 2, Title: "Haibane Renmei",
			User1: &compare.TableCell{Status: domain.StatusCurrent}},
		{MediaID: 4, Title: "Ergo Proxy",
			User1: &compare.TableCell{Status: domain.StatusDropped, Score: score(4)}},
		{MediaID: 3, Title: "Kaiba",
			User2: &compare.TableCell{Status: domain.StatusPlanning}},
	}
}

func titles(m *TableModel) []string {
	var out []string
	for _, row := range m.filteredRows {
		out = append(out, row.Title)
	}
	return out
}
