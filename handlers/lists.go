package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/models"
	"cinelog/services"
)

type ListHandler struct {
	lists *services.ListService
}

func NewListHandler(lists *services.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

// Get returns the GET handler for one of the two lists.
func (h *ListHandler) Get(list models.ListName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		items, err := h.lists.Get(r.Context(), user.ID, list)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// Add returns the POST handler for one of the two lists.
func (h *ListHandler) Add(list models.ListName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		var in services.ListItemInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, err)
			return
		}
		item, err := h.lists.Add(r.Context(), user.ID, list, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// Remove returns the DELETE handler for one of the two lists.
func (h *ListHandler) Remove(list models.ListName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		tmdbID, err := h.lists.Remove(r.Context(), user.ID, list, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"tmdbId":  tmdbID,
			"message": "movie removed from " + string(list),
		})
	}
}
