package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/domain/domaintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponse struct {
	doc    *domain.CollectionDocument
	status int
	err    error
}

type fakeRepository struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     map[string]int
}

func newFakeRepository(responses map[string]fakeResponse) *fakeRepository {
	return &fakeRepository{responses: responses, calls: make(map[string]int)}
}

func (r *fakeRepository) GetCollection(_ context.Context, userName string) (*domain.CollectionDocument, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[userName]++
	resp, ok := r.responses[userName]
	if !ok {
		return nil, http.StatusNotFound, errors.New("not found")
	}
	return resp.doc, resp.status, resp.err
}

func (r *fakeRepository) callCount(userName string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[userName]
}

func testDocuments() map[string]fakeResponse {
	return map[string]fakeResponse{
		"alice": {
			doc: domaintest.Document("alice", []int{1, 2},
				domaintest.Entry(1, domain.StatusCompleted, "Mushishi", 9, 26),
				domaintest.Entry(2, domain.StatusCurrent, "Haibane Renmei", 0, 3)),
			status: http.StatusOK,
		},
		"bob": {
			doc: domaintest.Document("bob", []int{2},
				domaintest.Entry(1, domain.StatusCompleted, "Mushi-Shi", 7, 26),
				domaintest.Entry(3, domain.StatusPlanning, "Kaiba", 0, 0)),
			status: http.StatusOK,
		},
	}
}

func TestCompare(t *testing.T) {
	repo := newFakeRepository(testDocuments())
	svc := NewComparisonService(repo, time.Hour, time.Hour)

	result, err := svc.Compare(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, "alice", result.User1.Name)
	assert.Equal(t, "bob", result.User2.Name)
	require.NotNil(t, result.Overlap)
	assert.Equal(t, 100, *result.Overlap)
	assert.Len(t, result.Table, 3)
	require.Len(t, result.CommonFavourites[domain.FavouriteStudios], 1)
	assert.Equal(t, 2, result.CommonFavourites[domain.FavouriteStudios][0].ID)
}

func TestCompareUsesCache(t *testing.T) {
	repo := newFakeRepository(testDocuments())
	svc := NewComparisonService(repo, time.Hour, time.Hour)

	_, err := svc.Compare(context.Background(), "alice", "bob")
	require.NoError(t, err)
	_, err = svc.Compare(context.Background(), "ALICE", "bob")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.callCount("alice"))
	assert.Equal(t, 0, repo.callCount("ALICE"))
	assert.Equal(t, 1, repo.callCount("bob"))
}

func TestForget(t *testing.T) {
	repo := newFakeRepository(testDocuments())
	svc := NewComparisonService(repo, time.Hour, time.Hour)

	_, err := svc.Compare(context.Background(), "alice", "bob")
	require.NoError(t, err)

	svc.Forget("Alice")
	_, err = svc.Compare(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.callCount("alice"))
	assert.Equal(t, 1, repo.callCount("bob"))
}

func TestCompareFetchError(t *testing.T) {
	responses := testDocuments()
	responses["carol"] = fakeResponse{status: http.StatusTooManyRequests, err: errors.New("rate limited")}
	repo := newFakeRepository(responses)
	svc := NewComparisonService(repo, time.Hour, time.Hour)

	t.Run("SecondUserFails", func(t *testing.T) {
		result, err := svc.Compare(context.Background(), "alice", "carol")
		assert.Nil(t, result)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusOK, fetchErr.User1Status)
		assert.Equal(t, http.StatusTooManyRequests, fetchErr.User2Status)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("FailuresAreNotCached", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "alice", "carol")
		require.Error(t, err)
		assert.Equal(t, 2, repo.callCount("carol"))
	})

	t.Run("BothFail", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "nobody", "carol")

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusNotFound, fetchErr.User1Status)
		assert.Equal(t, http.StatusTooManyRequests, fetchErr.User2Status)
	})
}

func TestCompareMalformedCollection(t *testing.T) {
	responses := testDocuments()
	responses["dave"] = fakeResponse{
		status: http.StatusOK,
		err:    fmt.Errorf("%w: no MediaListCollection for %q", domain.ErrMalformedInput, "dave"),
	}
	repo := newFakeRepository(responses)
	svc := NewComparisonService(repo, time.Hour, time.Hour)

	t.Run("ReportedAsMalformed", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "alice", "dave")
		require.ErrorIs(t, err, domain.ErrMalformedInput)

		var fetchErr *FetchError
		assert.False(t, errors.As(err, &fetchErr))
	})

	t.Run("FetchFailureWins", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "nobody", "dave")

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusNotFound, fetchErr.User1Status)
		assert.Equal(t, http.StatusOK, fetchErr.User2Status)
		assert.NotErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestCompareDocumentsMalformed(t *testing.T) {
	svc := NewComparisonService(newFakeRepository(nil), time.Hour, time.Hour)
	doc := domaintest.Document("alice", nil)
	doc.User.Favourites = nil

	_, err := svc.CompareDocuments(doc, domaintest.Document("bob", nil))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}
