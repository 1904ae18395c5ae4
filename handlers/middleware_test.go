package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionID_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), sessionKey, "session-123")
	req = req.WithContext(ctx)

	if got := SessionID(req); got != "session-123" {
		t.Errorf("expected session-123, got %q", got)
	}
}

func TestSessionID_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := SessionID(req); got != "" {
		t.Errorf("expected empty session ID, got %q", got)
	}
}
