package http

import (
	"net/http"

	"github.com/oaktable/menu-service/internal/metrics"
	"github.com/oaktable/menu-service/internal/session"
)

const sessionCookie = "menu_session"

// resolveSession finds the visitor's session from the cookie, creating a new
// one (and setting the cookie) when the id is missing or expired.
func resolveSession(sm *session.Manager, reg *metrics.Registry, w http.ResponseWriter, r *http.Request) *session.Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if s, ok := sm.Get(c.Value); ok {
			return s
		}
	}

	s := sm.Create()
	reg.SessionsOpened.Inc()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}
