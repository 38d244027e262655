package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// ComparisonService fetches two users' collections and runs the comparison over them
type ComparisonService struct {
	repo  domain.CollectionRepository
	cache *cache.Cache
}

// NewComparisonService creates a service whose fetched collections are reused for ttl
func NewComparisonService(repo domain.CollectionRepository, ttl, cleanupInterval time.Duration) *ComparisonService {
	return &ComparisonService{
		repo:  repo,
		cache: cache.New(ttl, cleanupInterval),
	}
}

// FetchError is returned when either collection could not be fetched.  Both status codes are kept so callers can
// report which side failed; a status of 0 means no answer was received.
type FetchError struct {
	User1Status int
	User2Status int
	Err         error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch collections (status %d, %d): %v", e.User1Status, e.User2Status, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Compare fetches both collections concurrently and compares them.  The comparison only starts once both fetches
// have succeeded.  A collection AniList answered with but that cannot be read is reported as domain.ErrMalformedInput
// rather than a FetchError, unless the other fetch failed outright.
func (s *ComparisonService) Compare(ctx context.Context, user1, user2 string) (*compare.Result, error) {
	var (
		doc1, doc2       *domain.CollectionDocument
		status1, status2 int
		err1, err2       error
		g                errgroup.Group
	)

	g.Go(func() error {
		doc1, status1, err1 = s.fetch(ctx, user1)
		return err1
	})
	g.Go(func() error {
		doc2, status2, err2 = s.fetch(ctx, user2)
		return err2
	})

	if err := g.Wait(); err != nil {
		if fetchErr := fetchFailure(err1, err2); fetchErr != nil {
			return nil, &FetchError{User1Status: status1, User2Status: status2, Err: fetchErr}
		}
		log.Warn("AniList returned an unreadable collection", "user1", user1, "user2", user2, "error", err)
		return nil, err
	}

	return s.CompareDocuments(doc1, doc2)
}

// fetchFailure returns the first error that is not a malformed answer
func fetchFailure(errs ...error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, domain.ErrMalformedInput) {
			return err
		}
	}
	return nil
}

// CompareDocuments compares two already loaded collections
func (s *ComparisonService) CompareDocuments(doc1, doc2 *domain.CollectionDocument) (*compare.Result, error) {
	start := time.Now()
	result, err := compare.Compare(doc1, doc2)
	if err != nil {
		log.Warn("Comparison rejected", "error", err)
		return nil, err
	}

	log.Info("Compared collections",
		"user1", result.User1.Name,
		"user2", result.User2.Name,
		"rows", len(result.Table),
		"duration", time.Since(start))
	return result, nil
}

// Forget drops cached collections so the next comparison fetches them again
func (s *ComparisonService) Forget(userNames ...string) {
	for _, userName := range userNames {
		s.cache.Delete(strings.ToLower(userName))
	}
	log.Debug("Forgot cached collections", "users", userNames)
}

// fetch returns a cached collection when one is available.  Cached collections were fetched with a 200 answer so
// that status is reported for them.
func (s *ComparisonService) fetch(ctx context.Context, userName string) (*domain.CollectionDocument, int, error) {
	key := strings.ToLower(userName)
	if cached, ok := s.cache.Get(key); ok {
		log.Debug("Collection cache hit", "user", userName)
		return cached.(*domain.CollectionDocument), http.StatusOK, nil
	}

	doc, status, err := s.repo.GetCollection(ctx, userName)
	if err != nil {
		return nil, status, err
	}

	s.cache.Set(key, doc, cache.DefaultExpiration)
	return doc, status, nil
}
