package compare

import (
	"fmt"

	"github.com/PizzaHomicide/anicompare/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

type entryOption func(*domain.MediaListEntry)

func withProgress(progress, repeat int) entryOption {
	return func(e *domain.MediaListEntry) {
		e.Progress = intPtr(progress)
		e.Repeat = intPtr(repeat)
	}
}

func withMedia(episodes, duration *int) entryOption {
	return func(e *domain.MediaListEntry) {
		e.Media.Episodes = episodes
		e.Media.Duration = duration
	}
}

func withScore(score float64) entryOption {
	return func(e *domain.MediaListEntry) { e.Score = score }
}

func withTitle(title domain.MediaTitle) entryOption {
	return func(e *domain.MediaListEntry) { e.Media.Title = &title }
}

func private() entryOption {
	return func(e *domain.MediaListEntry) { e.Private = boolPtr(true) }
}

// rawEntry builds a list entry for a 12 episode, 24 minute TV anime with nothing watched
func rawEntry(id int, status domain.MediaStatus, opts ...entryOption) domain.MediaListEntry {
	e := domain.MediaListEntry{
		MediaID:  id,
		Status:   status,
		Progress: intPtr(0),
		Repeat:   intPtr(0),
		Private:  boolPtr(false),
		Media: &domain.Media{
			Title:    &domain.MediaTitle{Romaji: strPtr(fmt.Sprintf("Anime %d", id))},
			Genres:   []string{"Action"},
			Episodes: intPtr(12),
			Duration: intPtr(24),
			Format:   "TV",
			CoverImage: domain.CoverImage{
				Large:  fmt.Sprintf("https://img.example/%d-large.jpg", id),
				Medium: fmt.Sprintf("https://img.example/%d-medium.jpg", id),
			},
		},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// newDocument builds a well-formed collection with no favourites or statistics, one list per entry group
func newDocument(name string, lists ...[]domain.MediaListEntry) *domain.CollectionDocument {
	doc := &domain.CollectionDocument{
		Lists: []domain.MediaList{},
		User: &domain.CollectionUser{
			ID:     len(name),
			Name:   name,
			Avatar: domain.Avatar{Medium: "https://img.example/" + name + ".png"},
			Statistics: &domain.CollectionStatistic{
				Anime: &domain.AnimeStatistics{},
			},
			Favourites: &domain.CollectionFavourite{
				Studios:    &domain.Connection[domain.StudioNode]{},
				Staff:      &domain.Connection[domain.PersonNode]{},
				Characters: &domain.Connection[domain.PersonNode]{},
				Anime:      &domain.Connection[domain.FavouriteNode]{},
			},
		},
	}
	for i, entries := range lists {
		doc.Lists = append(doc.Lists, domain.MediaList{
			Name:         fmt.Sprintf("list-%d", i),
			IsCustomList: i > 0,
			Entries:      entries,
		})
	}
	return doc
}

func person(id int, name string) domain.PersonNode {
	p := domain.PersonNode{ID: id, Name: &domain.PersonName{Full: name}}
	p.Image.Medium = fmt.Sprintf("https://img.example/person-%d.jpg", id)
	return p
}

// listEntries builds normalized entries directly, for tests that start after normalization
func listEntries(statuses map[int]domain.MediaStatus, order ...int) []domain.ListEntry {
	entries := make([]domain.ListEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, domain.ListEntry{
			MediaID: id,
			Title:   fmt.Sprintf("Anime %d", id),
			Status:  statuses[id],
		})
	}
	return entries
}
