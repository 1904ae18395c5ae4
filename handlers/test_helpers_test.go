package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// withSession injects a draft session ID into the request context the way
// SessionMiddleware does in production.
func withSession(req *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(req.Context(), sessionKey, sessionID)
	return req.WithContext(ctx)
}
