package middleware

import (
	"context"
	"net/http"

	"cinelog/apperr"
	"cinelog/models"
	"cinelog/services"
)

type contextKey string

const userKey contextKey = "user"

// UserFrom returns the authenticated user injected by RequireAuth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// Auth builds the authentication middleware. The session only carries the
// user id; the record is re-read on every request so bans and deletions take
// effect immediately.
type Auth struct {
	sessions *services.SessionManager
	users    *services.AuthService
}

func NewAuth(sessions *services.SessionManager, users *services.AuthService) *Auth {
	return &Auth{sessions: sessions, users: users}
}

// RequireAuth rejects requests without a valid session.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := a.sessions.UserID(r)
		if !ok {
			apperr.WriteHTTP(w, apperr.Unauthorized("authentication required"))
			return
		}

		user, err := a.users.GetUser(r.Context(), userID)
		if err != nil {
			apperr.WriteHTTP(w, apperr.Unauthorized("authentication required"))
			return
		}
		if user.IsBanned {
			apperr.WriteHTTP(w, apperr.Forbidden("account is banned"))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// AdminOnly rejects non-admin users. Must run after RequireAuth.
func (a *Auth) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok {
			apperr.WriteHTTP(w, apperr.Unauthorized("authentication required"))
			return
		}
		if !user.IsAdmin {
			apperr.WriteHTTP(w, apperr.Forbidden("admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
