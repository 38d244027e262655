// Package domaintest builds well-formed collection documents for tests of the packages above the comparison core.
package domaintest

import (
	"fmt"

	"github.com/PizzaHomicide/anicompare/internal/domain"
)

// Entry builds a public list entry for a 12 episode, 24 minute TV anime
func Entry(id int, status domain.MediaStatus, title string, score float64, progress int) domain.MediaListEntry {
	episodes, duration, repeat := 12, 24, 0
	private := false
	return domain.MediaListEntry{
		MediaID:  id,
		Status:   status,
		Score:    score,
		Progress: &progress,
		Repeat:   &repeat,
		Private:  &private,
		Media: &domain.Media{
			Title:    &domain.MediaTitle{Romaji: &title},
			Genres:   []string{"Action"},
			Episodes: &episodes,
			Duration: &duration,
			Format:   "TV",
			CoverImage: domain.CoverImage{
				Large: fmt.Sprintf("https://img.example/%d-large.jpg", id),
			},
		},
	}
}

// Document builds a collection for name holding entries in a single list.  The user favourites the studios given by
// id, and has one release year statistic per entry year given.
func Document(name string, studios []int, entries ...domain.MediaListEntry) *domain.CollectionDocument {
	studioNodes := make([]domain.StudioNode, 0, len(studios))
	for _, id := range studios {
		studioNodes = append(studioNodes, domain.StudioNode{ID: id, Name: fmt.Sprintf("Studio %d", id)})
	}

	return &domain.CollectionDocument{
		Lists: []domain.MediaList{{Name: "Watching", Entries: entries}},
		User: &domain.CollectionUser{
			ID:     len(name),
			Name:   name,
			Avatar: domain.Avatar{Medium: "https://img.example/" + name + ".png"},
			Statistics: &domain.CollectionStatistic{
				Anime: &domain.AnimeStatistics{
					Genres:       []domain.GenreCount{{Genre: "Action", Count: len(entries)}},
					ReleaseYears: []domain.ReleaseYearStat{{ReleaseYear: 2001, Count: len(entries), MinutesWatched: 60}},
				},
			},
			Favourites: &domain.CollectionFavourite{
				Studios:    &domain.Connection[domain.StudioNode]{Nodes: studioNodes},
				Staff:      &domain.Connection[domain.PersonNode]{},
				Characters: &domain.Connection[domain.PersonNode]{},
				Anime:      &domain.Connection[domain.FavouriteNode]{},
			},
		},
	}
}
