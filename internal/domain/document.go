package domain

// The types in this file mirror the MediaListCollection object returned by the AniList GraphQL API.  Fields that
// AniList sends as null for some media are pointers so that a missing value can be told apart from a zero.

// CollectionDocument is one user's raw MediaListCollection
type CollectionDocument struct {
	Lists []MediaList     `json:"lists"`
	User  *CollectionUser `json:"user"`
}

// MediaList is a named group of entries, either a status list or a custom list
type MediaList struct {
	Name         string           `json:"name"`
	IsCustomList bool             `json:"isCustomList"`
	Entries      []MediaListEntry `json:"entries"`
}

// MediaListEntry is a raw list entry with its nested media object
type MediaListEntry struct {
	MediaID  int         `json:"mediaId"`
	Status   MediaStatus `json:"status"`
	Score    float64     `json:"score"`
	Progress *int        `json:"progress"`
	Repeat   *int        `json:"repeat"`
	Priority *int        `json:"priority"`
	Private  *bool       `json:"private"`
	Media    *Media      `json:"media"`
}

// Media is the anime referenced by a list entry
type Media struct {
	Title      *MediaTitle `json:"title"`
	Genres     []string    `json:"genres"`
	Episodes   *int        `json:"episodes"`
	Duration   *int        `json:"duration"`
	Format     string      `json:"format"`
	CoverImage CoverImage  `json:"coverImage"`
}

// MediaTitle holds the title variants of an anime, any of which may be null
type MediaTitle struct {
	English *string `json:"english"`
	Romaji  *string `json:"romaji"`
	Native  *string `json:"native"`
}

// CoverImage holds the cover image URLs in the sizes the collection query asks for
type CoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Large      string `json:"large"`
	Medium     string `json:"medium"`
}

// CollectionUser is the owner of the collection along with their statistics and favourites
type CollectionUser struct {
	ID         int                  `json:"id"`
	Name       string               `json:"name"`
	Avatar     Avatar               `json:"avatar"`
	Statistics *CollectionStatistic `json:"statistics"`
	Favourites *CollectionFavourite `json:"favourites"`
}

// Avatar holds the user's avatar URL
type Avatar struct {
	Medium string `json:"medium"`
}

// CollectionStatistic wraps the anime statistics block
type CollectionStatistic struct {
	Anime *AnimeStatistics `json:"anime"`
}

// AnimeStatistics holds the per-genre and per-release-year aggregates AniList computes for a user
type AnimeStatistics struct {
	Genres       []GenreCount      `json:"genres"`
	ReleaseYears []ReleaseYearStat `json:"releaseYears"`
}

// Connection is the GraphQL node wrapper AniList uses for favourites
type Connection[T any] struct {
	Nodes []T `json:"nodes"`
}

// CollectionFavourite holds the four favourite connections
type CollectionFavourite struct {
	Studios    *Connection[StudioNode]    `json:"studios"`
	Staff      *Connection[PersonNode]    `json:"staff"`
	Characters *Connection[PersonNode]    `json:"characters"`
	Anime      *Connection[FavouriteNode] `json:"anime"`
}

// StudioNode is a favourited studio
type StudioNode struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PersonNode is a favourited staff member or character
type PersonNode struct {
	ID    int         `json:"id"`
	Name  *PersonName `json:"name"`
	Image struct {
		Medium string `json:"medium"`
	} `json:"image"`
}

// PersonName is the name object of a staff member or character
type PersonName struct {
	Full string `json:"full"`
}

// FavouriteNode is a favourited anime
type FavouriteNode struct {
	ID         int         `json:"id"`
	Title      *MediaTitle `json:"title"`
	CoverImage CoverImage  `json:"coverImage"`
}
