package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"safestay/internal/adapters/observability"
	"safestay/internal/app"
	"safestay/internal/domain"
)

type Handlers struct {
	Search    *app.SearchService
	Favorites domain.FavoritesStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api/recommendations", h.recommendations)
	if h.Favorites != nil {
		s.mux.Get("/api/favorites", h.listFavorites)
		s.mux.Put("/api/favorites/{id}", h.addFavorite)
		s.mux.Delete("/api/favorites/{id}", h.removeFavorite)
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) recommendations(w http.ResponseWriter, r *http.Request) {
	var q domain.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "request body must be a JSON query object")
		return
	}
	if q.Sort == "" {
		q.Sort = domain.SortRelevance
	}

	start := time.Now()
	out, err := h.Search.Search(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
			return
		}
		log.Error().Err(err).Msg("search failed")
		writeProblem(w, http.StatusInternalServerError, "Server error", "")
		return
	}
	observability.ObserveSearch(string(q.Sort), time.Since(start))
	for _, rl := range out {
		if fd := rl.FraudDetails; fd != nil {
			if fd.IsDuplicate {
				observability.ObserveFraudFlag("duplicate")
			}
			for _, f := range fd.FakeID.Flags {
				observability.ObserveFraudFlag(f.Type)
			}
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func favoriteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}
	if err := h.Favorites.Add(r.Context(), id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("favorite add failed")
		writeProblem(w, http.StatusInternalServerError, "Server error", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}
	if err := h.Favorites.Remove(r.Context(), id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("favorite remove failed")
		writeProblem(w, http.StatusInternalServerError, "Server error", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Favorites.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("favorite list failed")
		writeProblem(w, http.StatusInternalServerError, "Server error", "")
		return
	}
	writeJSON(w, http.StatusOK, ids)
}
