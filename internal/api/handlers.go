package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/PizzaHomicide/anicompare/internal/service"
)

type handlers struct {
	comparer Comparer
}

type errorResponse struct {
	Error string `json:"error"`
}

// fetchErrorResponse reports the upstream status code of each user's fetch
type fetchErrorResponse struct {
	Code1 int    `json:"code_1"`
	Code2 int    `json:"code_2"`
	Error string `json:"error"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// compare handles GET /compare?u1=<user>&u2=<user>
func (h *handlers) compare(w http.ResponseWriter, r *http.Request) {
	user1 := strings.TrimSpace(r.URL.Query().Get("u1"))
	user2 := strings.TrimSpace(r.URL.Query().Get("u2"))
	if user1 == "" || user2 == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "both u1 and u2 query parameters are required"})
		return
	}

	result, err := h.comparer.Compare(r.Context(), user1, user2)
	if err != nil {
		var fetchErr *service.FetchError
		switch {
		case errors.As(err, &fetchErr):
			writeJSON(w, http.StatusBadGateway, fetchErrorResponse{
				Code1: fetchErr.User1Status,
				Code2: fetchErr.User2Status,
				Error: err.Error(),
			})
		case errors.Is(err, domain.ErrMalformedInput):
			log.Warn("Rejected malformed collection", "user1", user1, "user2", user2, "error", err)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		default:
			log.Error("Comparison failed", "user1", user1, "user2", user2, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn("Failed to write response", "error", err)
	}
}
