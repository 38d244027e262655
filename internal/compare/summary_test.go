package compare

import (
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	entries := listEntries(map[int]domain.MediaStatus{
		1: domain.StatusCompleted,
		2: domain.StatusCompleted,
		3: domain.StatusCurrent,
		4: domain.StatusDropped,
		5: domain.StatusPlanning,
		6: domain.StatusPaused,
		7: domain.StatusRepeating,
	}, 1, 2, 3, 4, 5, 6, 7)

	profile := &domain.UserProfile{}
	Summarize(entries, profile)

	assert.Equal(t, domain.CompletionStats{
		Total:     7,
		Completed: 2,
		Current:   1,
		Dropped:   1,
		Hold:      1,
		Planning:  1,
	}, profile.Completion)

	t.Run("BucketsNeverExceedTotal", func(t *testing.T) {
		c := profile.Completion
		assert.LessOrEqual(t, c.Completed+c.Current+c.Dropped+c.Planning, c.Total)
	})

	t.Run("HoldMirrorsCurrent", func(t *testing.T) {
		onlyPaused := listEntries(map[int]domain.MediaStatus{1: domain.StatusPaused, 2: domain.StatusCurrent}, 1, 2)
		p := &domain.UserProfile{}
		Summarize(onlyPaused, p)
		assert.Equal(t, p.Completion.Current, p.Completion.Hold)
		assert.Equal(t, 1, p.Completion.Hold)
	})

	t.Run("EmptyList", func(t *testing.T) {
		p := &domain.UserProfile{Completion: domain.CompletionStats{Total: 3}}
		Summarize(nil, p)
		assert.Equal(t, domain.CompletionStats{}, p.Completion)
	})
}
