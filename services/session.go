package services

import (
	"net/http"

	"github.com/gorilla/sessions"

	"cinelog/config"
)

const sessionName = "cinelog_session"

// SessionManager wraps the cookie session store. Sessions carry only the
// user id; the user record is re-read per request by the auth middleware.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// Create starts a session for the user.
func (m *SessionManager) Create(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// Destroy expires the session cookie.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID extracts the authenticated user id from the request session.
func (m *SessionManager) UserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	switch v := session.Values["user_id"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
