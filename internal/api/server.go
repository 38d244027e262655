// Package api serves comparisons as JSON over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// Comparer produces the comparison of two AniList users
type Comparer interface {
	Compare(ctx context.Context, user1, user2 string) (*compare.Result, error)
}

// Server is the HTTP server exposing the comparison endpoint
type Server struct {
	router chi.Router
	server *http.Server
}

func NewServer(addr string, comparer Comparer) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	h := &handlers{comparer: comparer}
	router.Get("/healthz", h.health)
	router.Get("/compare", h.compare)

	return &Server{
		router: router,
		server: &http.Server{
			Addr:    addr,
			Handler: router,
			// Fetching two large collections from AniList can take a while
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts the server down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP API", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
