package models

import (
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatOverlap(t *testing.T) {
	result := testResult(t)
	assert.Contains(t, formatOverlap(result), "100%")

	result.Overlap = nil
	result.OverlapErr = compare.ErrEmptyOverlap(0, 2)
	assert.Contains(t, formatOverlap(result), "undefined")
	assert.Contains(t, formatOverlap(result), "user 1: 0")
}

func TestRenderFavourites(t *testing.T) {
	out := renderFavourites(testResult(t), 80)

	assert.Contains(t, out, "Common favourite studios")
	assert.Contains(t, out, "• Studio 2")
	assert.NotContains(t, out, "Studio 1")
	// Neither user has favourite characters, so they are not compared
	assert.Contains(t, out, "Not compared")
}

func TestRenderFavouritesNoneInCommon(t *testing.T) {
	result := testResult(t)
	result.CommonFavourites[domain.FavouriteStudios] = []domain.FavouriteItem{}

	assert.Contains(t, renderFavourites(result, 80), "No common favourites")
}

func TestRenderReleaseYears(t *testing.T) {
	out := renderReleaseYears(testResult(t), 80)
	assert.Contains(t, out, "2001")
	assert.Contains(t, out, "█")

	empty := renderYearSeries("Anime watched by release year", compare.YearSeries{}, 80, nil)
	assert.Contains(t, empty, "No release year statistics")
}
