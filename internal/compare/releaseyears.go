package compare

import (
	"sort"

	"github.com/PizzaHomicide/anicompare/internal/domain"
)

// YearSeries is a pair of per-user series aligned on a shared, ascending list of release years
type YearSeries struct {
	Labels []int `json:"labels"`
	User1  []int `json:"u1_data"`
	User2  []int `json:"u2_data"`
}

type yearMetric func(domain.ReleaseYearStat) int

func byCount(s domain.ReleaseYearStat) int          { return s.Count }
func byMinutesWatched(s domain.ReleaseYearStat) int { return s.MinutesWatched }

// CompareReleaseYears builds the release year comparison by entry count and by minutes watched.  Each series is
// labelled with the union of both users' top years for that metric, and a user with no data for a labelled year gets
// a zero at that position.
func CompareReleaseYears(years1, years2 []domain.ReleaseYearStat) (byCountSeries, byMinutesSeries YearSeries) {
	return buildYearSeries(years1, years2, byCount), buildYearSeries(years1, years2, byMinutesWatched)
}

func buildYearSeries(years1, years2 []domain.ReleaseYearStat, metric yearMetric) YearSeries {
	labelSet := make(map[int]struct{})
	for _, year := range topYears(years1, metric, TopReleaseYearCount) {
		labelSet[year] = struct{}{}
	}
	for _, year := range topYears(years2, metric, TopReleaseYearCount) {
		labelSet[year] = struct{}{}
	}

	labels := make([]int, 0, len(labelSet))
	for year := range labelSet {
		labels = append(labels, year)
	}
	sort.Ints(labels)

	return YearSeries{
		Labels: labels,
		User1:  alignToLabels(years1, labels, metric),
		User2:  alignToLabels(years2, labels, metric),
	}
}

// topYears returns the release years of the n highest stats by metric.  Ties keep input order.
func topYears(stats []domain.ReleaseYearStat, metric yearMetric, n int) []int {
	sorted := append([]domain.ReleaseYearStat(nil), stats...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]) > metric(sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	years := make([]int, 0, len(sorted))
	for _, s := range sorted {
		years = append(years, s.ReleaseYear)
	}
	return years
}

// alignToLabels reads one value per label from stats, backfilling zero for every label the user has no stat for
func alignToLabels(stats []domain.ReleaseYearStat, labels []int, metric yearMetric) []int {
	byYear := make(map[int]int, len(labels))
	for _, label := range labels {
		byYear[label] = 0
	}
	for _, s := range stats {
		if _, wanted := byYear[s.ReleaseYear]; wanted {
			byYear[s.ReleaseYear] = metric(s)
		}
	}

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = byYear[label]
	}
	return values
}
