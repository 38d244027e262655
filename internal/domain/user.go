package domain

// FavouriteKind identifies one of the four categories of favourites a user can have
type FavouriteKind string

const (
	FavouriteAnime      FavouriteKind = "anime"
	FavouriteStaff      FavouriteKind = "staff"
	FavouriteStudios    FavouriteKind = "studios"
	FavouriteCharacters FavouriteKind = "characters"
)

// FavouriteKinds lists every favourite category in display order
var FavouriteKinds = []FavouriteKind{
	FavouriteAnime,
	FavouriteStaff,
	FavouriteStudios,
	FavouriteCharacters,
}

// HasImage reports whether items of this kind carry an image.  Studios never do.
func (k FavouriteKind) HasImage() bool {
	return k != FavouriteStudios
}

// FavouriteItem is a single favourited anime, staff member, studio or character.  Identity is the ID alone.
type FavouriteItem struct {
	Kind  FavouriteKind `json:"-"`
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Image string        `json:"image,omitempty"`
}

// Favourites holds a user's favourites keyed by category
type Favourites map[FavouriteKind][]FavouriteItem

// GenreCount is the number of watched entries tagged with a genre
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// ReleaseYearStat aggregates a user's watch history for anime released in a given year
type ReleaseYearStat struct {
	ReleaseYear    int `json:"releaseYear"`
	Count          int `json:"count"`
	MinutesWatched int `json:"minutesWatched"`
}

// CompletionStats counts a user's list entries per status bucket
type CompletionStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Current   int `json:"current"`
	Dropped   int `json:"dropped"`
	Hold      int `json:"hold"`
	Planning  int `json:"planning"`
}

// UserProfile is the per-user aggregate used by the comparison: identity, favourites, statistics and completion counters
type UserProfile struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Avatar       string            `json:"avatar"`
	Favourites   Favourites        `json:"favourites"`
	Genres       []GenreCount      `json:"genres"`
	ReleaseYears []ReleaseYearStat `json:"releaseYears"`
	Completion   CompletionStats   `json:"completion"`
}
