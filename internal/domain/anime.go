package domain

// MediaStatus represents which list the anime is in
type MediaStatus string

const (
	StatusCurrent   MediaStatus = "CURRENT"
	StatusPlanning  MediaStatus = "PLANNING"
	StatusCompleted MediaStatus = "COMPLETED"
	StatusDropped   MediaStatus = "DROPPED"
	StatusPaused    MediaStatus = "PAUSED"
	StatusRepeating MediaStatus = "REPEATING"
)

// Label returns the human-readable name of the status as AniList displays it
func (s MediaStatus) Label() string {
	switch s {
	case StatusCurrent:
		return "Watching"
	case StatusPlanning:
		return "Planning"
	case StatusCompleted:
		return "Completed"
	case StatusDropped:
		return "Dropped"
	case StatusPaused:
		return "Paused"
	case StatusRepeating:
		return "Repeating"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the statuses AniList lists entries under
func (s MediaStatus) Valid() bool {
	switch s {
	case StatusCurrent, StatusPlanning, StatusCompleted, StatusDropped, StatusPaused, StatusRepeating:
		return true
	}
	return false
}

// ListEntry is one anime tracked by one user, flattened from the nested list entry and media objects.
type ListEntry struct {
	MediaID  int         `json:"mediaId"`
	Title    string      `json:"title"`
	Genres   []string    `json:"genres"`
	Progress int         `json:"progress"`
	Repeat   int         `json:"repeat"`
	Episodes int         `json:"episodes"`
	Format   string      `json:"type"`
	Duration int         `json:"duration"`
	Score    float64     `json:"score"`
	Status   MediaStatus `json:"status"`
	Cover    string      `json:"cover"`
	// TimeSpent is the estimated number of minutes watched, including rewatches.
	TimeSpent int `json:"time_spent"`
}

// HasWatchStatus reports whether the entry counts towards list overlap (completed or currently watching)
func (e ListEntry) HasWatchStatus() bool {
	return e.Status == StatusCompleted || e.Status == StatusCurrent
}
