package handlers

import (
	"database/sql"
	"net/http"

	"cinelog/apperr"
)

type StatusHandler struct {
	db *sql.DB
}

func NewStatusHandler(db *sql.DB) *StatusHandler {
	return &StatusHandler{db: db}
}

// Status serves GET /api/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, apperr.Internal("database unreachable").WithCause(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
