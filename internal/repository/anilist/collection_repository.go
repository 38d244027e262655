package anilist

import (
	"context"
	"fmt"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
)

const mediaListCollectionQuery = `
query ($userName: String, $type: MediaType) {
    MediaListCollection(userName: $userName, type: $type) {
        lists {
            name
            isCustomList
            entries {
                mediaId
                status
                score
                progress
                repeat
                priority
                private
                media {
                    duration
                    title {
                        english
                        romaji
                        native
                    }
                    coverImage {
                        extraLarge
                        large
                    }
                    format
                    episodes
                    genres
                }
            }
        }
        user {
            id
            name
            avatar {
                medium
            }
            statistics {
                anime {
                    releaseYears {
                        releaseYear
                        count
                        minutesWatched
                    }
                    genres {
                        genre
                        count
                    }
                }
            }
            favourites {
                studios {
                    nodes {
                        id
                        name
                    }
                }
                staff {
                    nodes {
                        id
                        name {
                            full
                        }
                        image {
                            medium
                        }
                    }
                }
                characters {
                    nodes {
                        id
                        name {
                            full
                        }
                        image {
                            medium
                        }
                    }
                }
                anime {
                    nodes {
                        id
                        title {
                            english
                            romaji
                            native
                        }
                        coverImage {
                            medium
                        }
                    }
                }
            }
        }
    }
}
`

// CollectionRepository fetches whole anime collections from AniList
type CollectionRepository struct {
	client *Client
}

func NewCollectionRepository(client *Client) *CollectionRepository {
	return &CollectionRepository{
		client: client,
	}
}

// GetCollection fetches the anime MediaListCollection of a user by name.  The HTTP status code of the answer is
// returned alongside the document, including on failure.
func (r *CollectionRepository) GetCollection(ctx context.Context, userName string) (*domain.CollectionDocument, int, error) {
	variables := map[string]any{
		"userName": userName,
		"type":     "ANIME",
	}

	var response struct {
		MediaListCollection *domain.CollectionDocument `json:"MediaListCollection"`
	}

	status, err := r.client.Query(ctx, mediaListCollectionQuery, variables, &response)
	if err != nil {
		log.Error("Failed to fetch collection", "user", userName, "status", status, "error", err)
		return nil, status, fmt.Errorf("failed to fetch collection of %q: %w", userName, err)
	}

	if response.MediaListCollection == nil {
		return nil, status, fmt.Errorf("%w: no MediaListCollection for %q", domain.ErrMalformedInput, userName)
	}

	log.Info("Fetched collection", "user", userName, "lists", len(response.MediaListCollection.Lists))
	return response.MediaListCollection, status, nil
}
