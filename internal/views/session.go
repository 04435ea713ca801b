package views

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "agent_console_session"

// sessionID returns the chat session of r, or "" if it has none yet.
func sessionID(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	if _, err = uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// ensureSession returns the session of r, issuing a new cookie if needed.
func ensureSession(w http.ResponseWriter, r *http.Request, cookiePath string) string {
	if id := sessionID(r); id != "" {
		return id
	}

	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     cookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
