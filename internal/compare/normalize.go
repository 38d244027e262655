package compare

import (
	"fmt"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
)

// Normalize flattens a raw collection document into the user's list entries and profile.  Private entries are
// skipped and entries sharing a media ID (an anime that also sits in a custom list) are collapsed onto the first
// occurrence.  The document itself is left untouched.
func Normalize(doc *domain.CollectionDocument) ([]domain.ListEntry, *domain.UserProfile, error) {
	if doc == nil {
		return nil, nil, malformed("document")
	}
	if doc.User == nil {
		return nil, nil, malformed("user")
	}
	if doc.Lists == nil {
		return nil, nil, malformed("lists")
	}

	profile, err := normalizeProfile(doc.User)
	if err != nil {
		return nil, nil, err
	}

	var entries []domain.ListEntry
	seen := make(map[int]struct{})
	skippedPrivate, duplicates := 0, 0

	for li, list := range doc.Lists {
		for ei, raw := range list.Entries {
			if raw.Private != nil && *raw.Private {
				skippedPrivate++
				continue
			}

			entry, err := normalizeEntry(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("lists[%d].entries[%d]: %w", li, ei, err)
			}

			if _, ok := seen[entry.MediaID]; ok {
				duplicates++
				continue
			}
			seen[entry.MediaID] = struct{}{}
			entries = append(entries, entry)
		}
	}

	log.Debug("Normalized collection",
		"user", profile.Name,
		"entries", len(entries),
		"skipped_private", skippedPrivate,
		"duplicates", duplicates)

	return entries, profile, nil
}

func normalizeEntry(raw domain.MediaListEntry) (domain.ListEntry, error) {
	if raw.MediaID == 0 {
		return domain.ListEntry{}, malformed("mediaId")
	}
	if !raw.Status.Valid() {
		return domain.ListEntry{}, malformed(fmt.Sprintf("status %q", raw.Status))
	}
	if raw.Media == nil {
		return domain.ListEntry{}, malformed("media")
	}
	if raw.Media.Title == nil {
		return domain.ListEntry{}, malformed("media.title")
	}

	entry := domain.ListEntry{
		MediaID:  raw.MediaID,
		Title:    pickTitle(raw.Media.Title),
		Genres:   raw.Media.Genres,
		Progress: intOrZero(raw.Progress),
		Repeat:   intOrZero(raw.Repeat),
		Episodes: intOrZero(raw.Media.Episodes),
		Format:   raw.Media.Format,
		Duration: intOrZero(raw.Media.Duration),
		Score:    raw.Score,
		Status:   raw.Status,
		Cover:    raw.Media.CoverImage.Large,
	}
	if entry.Progress < 0 || entry.Repeat < 0 || entry.Episodes < 0 || entry.Duration < 0 {
		return domain.ListEntry{}, malformed("negative progress, repeat, episodes or duration")
	}
	entry.TimeSpent = timeSpent(entry)

	return entry, nil
}

func normalizeProfile(user *domain.CollectionUser) (*domain.UserProfile, error) {
	if user.Statistics == nil || user.Statistics.Anime == nil {
		return nil, malformed("user.statistics.anime")
	}
	favs := user.Favourites
	if favs == nil {
		return nil, malformed("user.favourites")
	}
	if favs.Anime == nil || favs.Staff == nil || favs.Studios == nil || favs.Characters == nil {
		return nil, malformed("user.favourites.{anime,staff,studios,characters}")
	}

	favourites := domain.Favourites{
		domain.FavouriteAnime:      make([]domain.FavouriteItem, 0, len(favs.Anime.Nodes)),
		domain.FavouriteStaff:      make([]domain.FavouriteItem, 0, len(favs.Staff.Nodes)),
		domain.FavouriteStudios:    make([]domain.FavouriteItem, 0, len(favs.Studios.Nodes)),
		domain.FavouriteCharacters: make([]domain.FavouriteItem, 0, len(favs.Characters.Nodes)),
	}

	for i, node := range favs.Anime.Nodes {
		if node.Title == nil {
			return nil, malformed(fmt.Sprintf("user.favourites.anime.nodes[%d].title", i))
		}
		favourites[domain.FavouriteAnime] = append(favourites[domain.FavouriteAnime], domain.FavouriteItem{
			Kind:  domain.FavouriteAnime,
			ID:    node.ID,
			Name:  pickTitle(node.Title),
			Image: node.CoverImage.Medium,
		})
	}
	for _, kind := range []domain.FavouriteKind{domain.FavouriteStaff, domain.FavouriteCharacters} {
		nodes := favs.Staff.Nodes
		if kind == domain.FavouriteCharacters {
			nodes = favs.Characters.Nodes
		}
		for i, node := range nodes {
			if node.Name == nil {
				return nil, malformed(fmt.Sprintf("user.favourites.%s.nodes[%d].name", kind, i))
			}
			favourites[kind] = append(favourites[kind], personItem(kind, node))
		}
	}
	for _, node := range favs.Studios.Nodes {
		favourites[domain.FavouriteStudios] = append(favourites[domain.FavouriteStudios], domain.FavouriteItem{
			Kind: domain.FavouriteStudios,
			ID:   node.ID,
			Name: node.Name,
		})
	}

	stats := user.Statistics.Anime
	return &domain.UserProfile{
		ID:           user.ID,
		Name:         user.Name,
		Avatar:       user.Avatar.Medium,
		Favourites:   favourites,
		Genres:       append([]domain.GenreCount(nil), stats.Genres...),
		ReleaseYears: append([]domain.ReleaseYearStat(nil), stats.ReleaseYears...),
	}, nil
}

func personItem(kind domain.FavouriteKind, node domain.PersonNode) domain.FavouriteItem {
	return domain.FavouriteItem{
		Kind:  kind,
		ID:    node.ID,
		Name:  node.Name.Full,
		Image: node.Image.Medium,
	}
}

// pickTitle returns the first non-null title in english, romaji, native order.  An empty string is a valid title.
func pickTitle(t *domain.MediaTitle) string {
	for _, candidate := range []*string{t.English, t.Romaji, t.Native} {
		if candidate != nil {
			return *candidate
		}
	}
	return ""
}

// timeSpent estimates minutes watched: the current progress plus every full rewatch.
func timeSpent(e domain.ListEntry) int {
	return e.Progress*e.Duration + e.Repeat*e.Episodes*e.Duration
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func malformed(path string) error {
	return fmt.Errorf("%w: missing or invalid %s", domain.ErrMalformedInput, path)
}
