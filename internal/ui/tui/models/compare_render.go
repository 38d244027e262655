package models

// compare_render.go renders the text tabs of the comparison view.  Every function here is pure so it can be tested
// without a running program.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/styles"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui/util"
	"github.com/charmbracelet/lipgloss"
)

var favouriteKindTitles = map[domain.FavouriteKind]string{
	domain.FavouriteAnime:      "Anime",
	domain.FavouriteStaff:      "Staff",
	domain.FavouriteStudios:    "Studios",
	domain.FavouriteCharacters: "Characters",
}

func renderOverview(result *compare.Result, width int) string {
	var b strings.Builder

	b.WriteString(styles.Section.Render("List overlap"))
	b.WriteString("\n")
	b.WriteString(formatOverlap(result))
	b.WriteString("\n\n")

	columnWidth := max((width-4)/2, 20)
	left := renderUserOverview(result.User1, result.TopTimeSpent1, styles.User1, columnWidth)
	right := renderUserOverview(result.User2, result.TopTimeSpent2, styles.User2, columnWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))

	return b.String()
}

// formatOverlap shows the overlap percentage, or why it is undefined
func formatOverlap(result *compare.Result) string {
	if result.Overlap != nil {
		return fmt.Sprintf("%d%% of the smaller completed/watching list is shared", *result.Overlap)
	}
	reason := "one of you has nothing completed or currently watching"
	if compare.IsEmptyOverlap(result.OverlapErr) {
		reason = result.OverlapErr.Error()
	}
	return styles.Muted.Render("undefined: " + reason)
}

func renderUserOverview(user *domain.UserProfile, topTime []compare.TimeSpentItem, nameStyle lipgloss.Style, width int) string {
	var b strings.Builder

	b.WriteString(nameStyle.Bold(true).Render(user.Name))
	b.WriteString(styles.Muted.Render(fmt.Sprintf(" (#%d)", user.ID)))
	b.WriteString("\n\n")

	c := user.Completion
	b.WriteString(styles.Section.Render("Completion"))
	b.WriteString("\n")
	for _, row := range []struct {
		label string
		value int
	}{
		{"Total", c.Total},
		{"Completed", c.Completed},
		{"Watching", c.Current},
		{"Dropped", c.Dropped},
		{"On hold", c.Hold},
		{"Planning", c.Planning},
	} {
		b.WriteString(fmt.Sprintf("%s %5d\n", util.PadRight(row.label, 10), row.value))
	}

	b.WriteString("\n")
	b.WriteString(styles.Section.Render("Most time spent"))
	b.WriteString("\n")
	if len(topTime) == 0 {
		b.WriteString(styles.Muted.Render("Nothing watched yet"))
		b.WriteString("\n")
	}
	for i, item := range topTime {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, util.PadRight(item.Title, max(width-14, 5)), item.TimeSpent))
	}

	b.WriteString("\n")
	b.WriteString(styles.Section.Render("Top genres"))
	b.WriteString("\n")
	if len(user.Genres) == 0 {
		b.WriteString(styles.Muted.Render("No genre statistics"))
		b.WriteString("\n")
	}
	for _, g := range user.Genres {
		b.WriteString(fmt.Sprintf("%s %5d\n", util.PadRight(g.Genre, max(width-7, 5)), g.Count))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderFavourites(result *compare.Result, width int) string {
	var b strings.Builder

	for i, kind := range domain.FavouriteKinds {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Section.Render("Common favourite " + strings.ToLower(favouriteKindTitles[kind])))
		b.WriteString("\n")

		items, ok := result.CommonFavourites[kind]
		switch {
		case !ok || items == nil:
			b.WriteString(styles.Muted.Render("Not compared: at least one of you has no favourites here"))
			b.WriteString("\n")
		case len(items) == 0:
			b.WriteString(styles.Muted.Render("No common favourites"))
			b.WriteString("\n")
		default:
			for _, item := range items {
				b.WriteString("• " + util.TruncateString(item.Name, max(width-2, 1)) + "\n")
			}
		}
	}

	return b.String()
}

// renderReleaseYears draws both year series as paired bars scaled to the largest value in the series
func renderReleaseYears(result *compare.Result, width int) string {
	legend := styles.User1.Render("█ "+result.User1.Name) + "   " + styles.User2.Render("█ "+result.User2.Name)

	var b strings.Builder
	b.WriteString(legend)
	b.WriteString("\n\n")
	b.WriteString(renderYearSeries("Anime watched by release year", result.ReleaseYearsByCount, width, strconv.Itoa))
	b.WriteString("\n")
	b.WriteString(renderYearSeries("Time watched by release year", result.ReleaseYearsByMinutes, width, compare.FormatTimeSpent))
	return b.String()
}

func renderYearSeries(title string, series compare.YearSeries, width int, format func(int) string) string {
	var b strings.Builder
	b.WriteString(styles.Section.Render(title))
	b.WriteString("\n")

	if len(series.Labels) == 0 {
		b.WriteString(styles.Muted.Render("No release year statistics"))
		b.WriteString("\n")
		return b.String()
	}

	maxValue := 0
	for i := range series.Labels {
		maxValue = max(maxValue, series.User1[i], series.User2[i])
	}

	// year, value and spacing take 20 columns
	barWidth := max(width-20, 5)
	for i, year := range series.Labels {
		b.WriteString(fmt.Sprintf("%d  %s %s\n", year,
			styles.User1.Render(util.Bar(series.User1[i], maxValue, barWidth)), format(series.User1[i])))
		b.WriteString(fmt.Sprintf("      %s %s\n",
			styles.User2.Render(util.Bar(series.User2[i], maxValue, barWidth)), format(series.User2[i])))
	}

	return b.String()
}
