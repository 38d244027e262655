package compare

import "github.com/PizzaHomicide/anicompare/internal/domain"

// Summarize writes the completion counters for entries onto the profile.
//
// Hold is counted from CURRENT entries, the same predicate as Current.  Entries that are PAUSED or REPEATING are not
// counted in any bucket besides Total.
func Summarize(entries []domain.ListEntry, profile *domain.UserProfile) {
	stats := domain.CompletionStats{Total: len(entries)}

	for _, e := range entries {
		switch e.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCurrent:
			stats.Current++
			stats.Hold++
		case domain.StatusDropped:
			stats.Dropped++
		case domain.StatusPlanning:
			stats.Planning++
		}
	}

	profile.Completion = stats
}
