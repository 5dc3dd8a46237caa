package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/apperr"
	"cinelog/catalog"
	"cinelog/models"
	"cinelog/services"
)

type MovieHandler struct {
	movies *services.MovieService
}

func NewMovieHandler(movies *services.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// Trending serves GET /api/movies/trending.
func (h *MovieHandler) Trending(w http.ResponseWriter, r *http.Request) {
	results, err := h.movies.Trending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Discover serves GET /api/movies with optional query, category, sort_by,
// year and page parameters.
func (h *MovieHandler) Discover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := catalog.DiscoverParams{
		Query:   q.Get("query"),
		GenreID: q.Get("category"),
		SortBy:  q.Get("sort_by"),
		Year:    q.Get("year"),
	}
	if raw := q.Get("page"); raw != "" {
		page, err := parsePositiveInt(raw)
		if err != nil {
			writeError(w, apperr.InvalidInput("invalid page parameter"))
			return
		}
		params.Page = page
	}

	page, err := h.movies.Discover(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get serves GET /api/movies/{id}. The id is either an external catalog id
// or an internal record id; the shape is decided here, once.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref, ok := models.ParseMovieRef(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, apperr.InvalidInput("invalid movie ID format"))
		return
	}

	movie, err := h.movies.GetByRef(r.Context(), ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}
