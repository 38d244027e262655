package domain

import "context"

// CollectionRepository fetches a user's raw anime collection.  The int result is the HTTP status code of the upstream
// answer, 0 when nothing was received.
type CollectionRepository interface {
	GetCollection(ctx context.Context, userName string) (*CollectionDocument, int, error)
}
