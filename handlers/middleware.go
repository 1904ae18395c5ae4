package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
)

type contextKey string

const sessionKey contextKey = "rfqSession"

const sessionCookie = "rfq_session"

// SessionID extracts the draft session ID from the request context.
func SessionID(r *http.Request) string {
	if val, ok := r.Context().Value(sessionKey).(string); ok {
		return val
	}
	return ""
}

// SessionMiddleware reads the rfq_session cookie, minting a new session ID
// when none is present, and stores the ID in the request context so every
// handler addresses the same draft. The draft itself lives only in the
// in-memory store; the cookie is session-scoped and carries no data.
func SessionMiddleware(store *drafts.Store) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var sessionID string

		if cookie, err := e.Request.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = store.NewSessionID()
			http.SetCookie(e.Response, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), sessionKey, sessionID)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
