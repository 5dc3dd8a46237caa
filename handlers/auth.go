package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/services"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionManager
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register serves POST /api/users/register and logs the new account in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.Create(w, r, user.ID); err != nil {
		slog.Error("failed to create session", "user_id", user.ID, "error", err)
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login serves POST /api/users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.Create(w, r, user.ID); err != nil {
		slog.Error("failed to create session", "user_id", user.ID, "error", err)
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout serves POST /api/users/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		slog.Error("failed to destroy session", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Profile serves GET /api/users/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile serves PUT /api/users/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.auth.UpdateProfile(r.Context(), user.ID, in.Name, in.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
