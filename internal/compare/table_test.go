package compare

import (
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable(t *testing.T) {
	entries1 := []domain.ListEntry{
		{MediaID: 1, Title: "Cowboy Bebop", Status: domain.StatusCompleted, Score: 10},
		{MediaID: 2, Title: "Trigun", Status: domain.StatusCurrent, Score: 0},
	}
	entries2 := []domain.ListEntry{
		{MediaID: 3, Title: "Planetes", Status: domain.StatusPlanning},
		{MediaID: 1, Title: "Kaubôi Bibappu", Status: domain.StatusCompleted, Score: 1.5},
	}

	rows := BuildTable(entries1, entries2)
	require.Len(t, rows, 3)

	t.Run("OuterJoinOrder", func(t *testing.T) {
		assert.Equal(t, 1, rows[0].MediaID)
		assert.Equal(t, 2, rows[1].MediaID)
		assert.Equal(t, 3, rows[2].MediaID)
	})

	t.Run("TitlePrefersUser1", func(t *testing.T) {
		assert.Equal(t, "Cowboy Bebop", rows[0].Title)
		assert.Equal(t, "Planetes", rows[2].Title)
	})

	t.Run("SharedRow", func(t *testing.T) {
		require.NotNil(t, rows[0].User1)
		require.NotNil(t, rows[0].User2)
		assert.Equal(t, "10", rows[0].User1.ScoreLabel())
		assert.Equal(t, "1.5", rows[0].User2.ScoreLabel())
		assert.Equal(t, "Completed", rows[0].User2.StatusLabel())
	})

	t.Run("ZeroScoreIsUnscored", func(t *testing.T) {
		assert.Nil(t, rows[1].User1.Score)
		assert.Equal(t, UnscoredLabel, rows[1].User1.ScoreLabel())
		assert.Equal(t, "Watching", rows[1].User1.StatusLabel())
	})

	t.Run("AbsentSide", func(t *testing.T) {
		assert.Nil(t, rows[1].User2)
		assert.Equal(t, AbsentLabel, rows[1].User2.ScoreLabel())
		assert.Equal(t, AbsentLabel, rows[1].User2.StatusLabel())
		assert.Nil(t, rows[2].User1)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, BuildTable(nil, nil))
	})
}
