package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestClient points a client with instant retries at handler
func newTestClient(t *testing.T, maxRetries int, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Options{Endpoint: srv.URL, MaxRetries: maxRetries})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestGetCollection(t *testing.T) {
	fixture, err := os.ReadFile("testdata/collection.json")
	require.NoError(t, err)

	var got graphqlRequest
	c := newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("User-Agent"), "anicompare/")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, string(fixture))
	})

	doc, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "spike")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	assert.Contains(t, got.Query, "MediaListCollection(userName: $userName, type: $type)")
	assert.Equal(t, "spike", got.Variables["userName"])
	assert.Equal(t, "ANIME", got.Variables["type"])

	require.NotNil(t, doc.User)
	assert.Equal(t, 42, doc.User.ID)
	require.Len(t, doc.Lists, 1)
	require.Len(t, doc.Lists[0].Entries, 1)
	entry := doc.Lists[0].Entries[0]
	assert.Equal(t, domain.StatusCompleted, entry.Status)
	require.NotNil(t, entry.Media.Title)
	assert.Nil(t, entry.Media.Title.Native)
	assert.Equal(t, "Sunrise", doc.User.Favourites.Studios.Nodes[0].Name)
	assert.Equal(t, "Spike Spiegel", doc.User.Favourites.Characters.Nodes[0].Name.Full)
}

func TestGetCollectionErrors(t *testing.T) {
	t.Run("UnknownUserIsNotRetried", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, 3, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusNotFound, `{"errors":[{"message":"Not Found.","status":404}],"data":{"MediaListCollection":null}}`)
		})

		doc, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "nobody")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, int32(1), calls.Load())

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
	})

	t.Run("RateLimitedThenSucceeds", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, 3, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				writeJSON(w, http.StatusTooManyRequests, `{"errors":[{"message":"Too Many Requests.","status":429}],"data":null}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"data":{"MediaListCollection":{"lists":[],"user":{"id":1,"name":"a"}}}}`)
		})

		doc, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "a", doc.User.Name)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ServerErrorExhaustsRetries", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, 2, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusInternalServerError, `{"errors":[{"message":"Internal Server Error"}],"data":null}`)
		})

		_, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("ServerErrorWithoutErrorsIsRetried", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, 3, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				writeJSON(w, http.StatusServiceUnavailable, `{}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"data":{"MediaListCollection":{"lists":[],"user":{"id":1,"name":"a"}}}}`)
		})

		doc, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "a", doc.User.Name)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ClientErrorWithoutErrorsIsStatusError", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, 3, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusForbidden, `{"data":null}`)
		})

		_, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, int32(1), calls.Load())
		assert.NotErrorIs(t, err, domain.ErrMalformedInput)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusForbidden, statusErr.Code)
	})

	t.Run("NullCollectionIsMalformed", func(t *testing.T) {
		c := newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"data":{"MediaListCollection":null}}`)
		})

		_, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		assert.Equal(t, http.StatusOK, status)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := NewClient(Options{Endpoint: url})
		_, status, err := NewCollectionRepository(c).GetCollection(context.Background(), "a")
		require.Error(t, err)
		assert.Equal(t, 0, status)
		assert.True(t, IsNetworkError(err))
	})

	t.Run("Cancelled", func(t *testing.T) {
		c := newTestClient(t, 3, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"data":{"MediaListCollection":null}}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewCollectionRepository(c).GetCollection(ctx, "a")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
