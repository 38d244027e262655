package compare

import (
	"fmt"

	"github.com/PizzaHomicide/anicompare/internal/domain"
)

const (
	// UnscoredLabel is shown for an entry the user has not scored
	UnscoredLabel = "X"
	// AbsentLabel is shown for a column when the anime is not on that user's list
	AbsentLabel = "-"
)

// TableCell is one user's side of a merged table row
type TableCell struct {
	Status domain.MediaStatus `json:"status"`
	// Score is nil when the user has not scored the entry.
	Score *float64 `json:"score"`
}

// TableRow is a single anime in the side-by-side comparison table.  A nil side means the anime is not on that user's
// list.
type TableRow struct {
	MediaID int        `json:"mediaId"`
	Title   string     `json:"title"`
	User1   *TableCell `json:"u1"`
	User2   *TableCell `json:"u2"`
}

// BuildTable merges both users' entries into one row per anime.  User 1's entries come first in list order, followed
// by the anime only user 2 has, in user 2's order.  The title is user 1's when they have the anime.
func BuildTable(entries1, entries2 []domain.ListEntry) []TableRow {
	rows := make([]TableRow, 0, len(entries1)+len(entries2))
	rowIndex := make(map[int]int, len(entries1)+len(entries2))

	for _, e := range entries1 {
		if _, ok := rowIndex[e.MediaID]; ok {
			continue
		}
		rowIndex[e.MediaID] = len(rows)
		rows = append(rows, TableRow{
			MediaID: e.MediaID,
			Title:   e.Title,
			User1:   newTableCell(e),
		})
	}

	for _, e := range entries2 {
		if i, ok := rowIndex[e.MediaID]; ok {
			if rows[i].User2 == nil {
				rows[i].User2 = newTableCell(e)
			}
			continue
		}
		rowIndex[e.MediaID] = len(rows)
		rows = append(rows, TableRow{
			MediaID: e.MediaID,
			Title:   e.Title,
			User2:   newTableCell(e),
		})
	}

	return rows
}

func newTableCell(e domain.ListEntry) *TableCell {
	cell := &TableCell{Status: e.Status}
	if e.Score != 0 {
		score := e.Score
		cell.Score = &score
	}
	return cell
}

// StatusLabel renders the status column for the cell
func (c *TableCell) StatusLabel() string {
	if c == nil {
		return AbsentLabel
	}
	return c.Status.Label()
}

// ScoreLabel renders the score column for the cell, distinguishing unscored entries from absent ones
func (c *TableCell) ScoreLabel() string {
	if c == nil {
		return AbsentLabel
	}
	if c.Score == nil {
		return UnscoredLabel
	}
	return fmt.Sprintf("%g", *c.Score)
}
