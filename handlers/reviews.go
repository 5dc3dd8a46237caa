package handlers

import (
	"net/http"

	"cinelog/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ListForMovie serves GET /api/reviews/movie/{movieId}. Public: no session
// required to read reviews.
func (h *ReviewHandler) ListForMovie(w http.ResponseWriter, r *http.Request) {
	tmdbID, err := parseInt64Param(r, "movieId")
	if err != nil {
		writeError(w, err)
		return
	}
	reviews, err := h.reviews.ListForMovie(r.Context(), tmdbID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ListMine serves GET /api/reviews/my-reviews.
func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	reviews, err := h.reviews.ListForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Get serves GET /api/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Create serves POST /api/reviews/{movieId}.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	tmdbID, err := parseInt64Param(r, "movieId")
	if err != nil {
		writeError(w, err)
		return
	}
	var in services.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.Create(r.Context(), user, tmdbID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// Update serves PUT /api/reviews/{id}.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var in services.ReviewInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.Update(r.Context(), user, id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Delete serves DELETE /api/reviews/{id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.Delete(r.Context(), user, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}

// ToggleLike serves POST /api/reviews/{id}/like.
func (h *ReviewHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.reviews.ToggleLike(r.Context(), user, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Report serves POST /api/reviews/{id}/report.
func (h *ReviewHandler) Report(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.Report(r.Context(), user, id, in.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review reported"})
}
