package handlers

import (
	"net/http"

	"cinelog/services"
)

type AdminHandler struct {
	admin   *services.AdminService
	reviews *services.ReviewService
}

func NewAdminHandler(admin *services.AdminService, reviews *services.ReviewService) *AdminHandler {
	return &AdminHandler{admin: admin, reviews: reviews}
}

// ListUsers serves GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ToggleBan serves PUT /api/admin/users/{id}/ban.
func (h *AdminHandler) ToggleBan(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	banned, err := h.admin.ToggleBan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "isBanned": banned})
}

// ListReviews serves GET /api/admin/reviews.
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.admin.ListReviews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ListReported serves GET /api/admin/reviews/reported.
func (h *AdminHandler) ListReported(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.admin.ListReportedReviews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// DeleteReview serves DELETE /api/admin/reviews/{id}. Routed through the
// review service so the movie's rating aggregate is recomputed.
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
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

// Stats serves GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
