// Package compare contains the comparison of two users' AniList histories: normalization of the raw collection
// documents, completion counters, the joint metrics and the merged side-by-side table.  Nothing in this package
// performs I/O.
package compare

import (
	"errors"
	"fmt"
	"sort"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
)

const (
	TopTimeSpentCount   = 5
	TopGenreCount       = 7
	TopReleaseYearCount = 5
)

// Result is everything a renderer needs to present a comparison.  It is built once by Compare and never modified.
type Result struct {
	TopTimeSpent1 []TimeSpentItem `json:"l1"`
	TopTimeSpent2 []TimeSpentItem `json:"l2"`
	// Overlap is nil when it is undefined, in which case OverlapErr says why.
	Overlap               *int                `json:"overlap"`
	OverlapErr            error               `json:"-"`
	User1                 *domain.UserProfile `json:"u1"`
	User2                 *domain.UserProfile `json:"u2"`
	CommonFavourites      domain.Favourites   `json:"common_favs"`
	ReleaseYearsByCount   YearSeries          `json:"ryc"`
	ReleaseYearsByMinutes YearSeries          `json:"rym"`
	Table                 []TableRow          `json:"table"`
}

// TimeSpentItem is an entry projected for the time spent ranking
type TimeSpentItem struct {
	MediaID   int    `json:"mediaId"`
	Title     string `json:"title"`
	TimeSpent string `json:"time_spent"`
	Cover     string `json:"cover"`
}

// Compare runs the full comparison of two collection documents.  A malformed document aborts the comparison with an
// error wrapping domain.ErrMalformedInput.  An undefined overlap does not: it is reported through Result.OverlapErr.
func Compare(doc1, doc2 *domain.CollectionDocument) (*Result, error) {
	entries1, user1, err := Normalize(doc1)
	if err != nil {
		return nil, fmt.Errorf("user 1: %w", err)
	}
	entries2, user2, err := Normalize(doc2)
	if err != nil {
		return nil, fmt.Errorf("user 2: %w", err)
	}

	Summarize(entries1, user1)
	Summarize(entries2, user2)

	result := &Result{
		TopTimeSpent1:    TopTimeSpent(entries1, TopTimeSpentCount),
		TopTimeSpent2:    TopTimeSpent(entries2, TopTimeSpentCount),
		User1:            user1,
		User2:            user2,
		CommonFavourites: CommonFavourites(user1.Favourites, user2.Favourites),
		Table:            BuildTable(entries1, entries2),
	}

	overlap, err := ListOverlap(entries1, entries2)
	if err != nil {
		log.Warn("List overlap is undefined", "user1", user1.Name, "user2", user2.Name, "error", err)
		result.OverlapErr = err
	} else {
		result.Overlap = &overlap
	}

	result.ReleaseYearsByCount, result.ReleaseYearsByMinutes = CompareReleaseYears(user1.ReleaseYears, user2.ReleaseYears)

	user1.Genres = TopGenres(user1.Genres, TopGenreCount)
	user2.Genres = TopGenres(user2.Genres, TopGenreCount)

	log.Debug("Comparison complete",
		"user1", user1.Name,
		"user2", user2.Name,
		"overlap", result.Overlap,
		"table_rows", len(result.Table))

	return result, nil
}

// ListOverlap is the percentage of the smaller set of completed/current entries that also appears in the other
// user's completed/current entries, rounded down.  The denominator is whichever user has fewer qualifying entries.
func ListOverlap(entries1, entries2 []domain.ListEntry) (int, error) {
	watched2 := make(map[int]struct{})
	for _, e := range entries2 {
		if e.HasWatchStatus() {
			watched2[e.MediaID] = struct{}{}
		}
	}

	watched1, matches := 0, 0
	for _, e := range entries1 {
		if !e.HasWatchStatus() {
			continue
		}
		watched1++
		if _, ok := watched2[e.MediaID]; ok {
			matches++
		}
	}

	denominator := min(watched1, len(watched2))
	if denominator == 0 {
		return 0, ErrEmptyOverlap(watched1, len(watched2))
	}

	return 100 * matches / denominator, nil
}

// ErrEmptyOverlap wraps domain.ErrEmptyDenominator with the qualifying entry counts of both users
func ErrEmptyOverlap(watched1, watched2 int) error {
	return fmt.Errorf("%w (user 1: %d, user 2: %d)", domain.ErrEmptyDenominator, watched1, watched2)
}

// IsEmptyOverlap reports whether err is the undefined overlap condition
func IsEmptyOverlap(err error) bool {
	return errors.Is(err, domain.ErrEmptyDenominator)
}

// CommonFavourites joins both users' favourites category by category on ID.  A category is nil when either user has
// no favourites in it; otherwise it holds the matched items in user 1's order, with user 1's fields.
func CommonFavourites(favs1, favs2 domain.Favourites) domain.Favourites {
	common := make(domain.Favourites, len(domain.FavouriteKinds))

	for _, kind := range domain.FavouriteKinds {
		left, right := favs1[kind], favs2[kind]
		if len(left) == 0 || len(right) == 0 {
			common[kind] = nil
			continue
		}

		index := make(map[int]struct{}, len(right))
		for _, item := range right {
			index[item.ID] = struct{}{}
		}

		matched := []domain.FavouriteItem{}
		for _, item := range left {
			if _, ok := index[item.ID]; ok {
				matched = append(matched, item)
			}
		}
		common[kind] = matched
	}

	return common
}

// TopTimeSpent returns the n entries with the most time spent, highest first.  Ties keep list order.
func TopTimeSpent(entries []domain.ListEntry, n int) []TimeSpentItem {
	sorted := append([]domain.ListEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeSpent > sorted[j].TimeSpent
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	items := make([]TimeSpentItem, 0, len(sorted))
	for _, e := range sorted {
		items = append(items, TimeSpentItem{
			MediaID:   e.MediaID,
			Title:     e.Title,
			TimeSpent: FormatTimeSpent(e.TimeSpent),
			Cover:     e.Cover,
		})
	}
	return items
}

// FormatTimeSpent renders minutes as HHh:MMm.  Hours widen past two digits instead of being truncated.
func FormatTimeSpent(minutes int) string {
	return fmt.Sprintf("%02dh:%02dm", minutes/60, minutes%60)
}

// TopGenres returns the n genres with the highest count.  Ties keep their original order.
func TopGenres(genres []domain.GenreCount, n int) []domain.GenreCount {
	sorted := append([]domain.GenreCount(nil), genres...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
