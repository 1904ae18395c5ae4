package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rfqintake/drafts"
	"rfqintake/services"
	"rfqintake/testhelpers"
)

func TestHandleFileAdd_Accepted(t *testing.T) {
	store := drafts.NewStore()
	handler := HandleFileAdd(store)

	req := testhelpers.NewUploadRequest(t, "/rfq/files", "bracket.step", "drawing.pdf")
	req = withSession(req, "s1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	files := store.Get("s1").Files
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "bracket.step" || files[1].Name != "drawing.pdf" {
		t.Errorf("unexpected files: %+v", files)
	}
	if files[0].Size == 0 {
		t.Error("expected file size to be captured")
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "2 file(s) attached") {
		t.Errorf("expected success toast, got %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestHandleFileAdd_RejectedExtension(t *testing.T) {
	store := drafts.NewStore()
	handler := HandleFileAdd(store)

	req := testhelpers.NewUploadRequest(t, "/rfq/files", "bracket.step", "virus.exe")
	req = withSession(req, "s1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	files := store.Get("s1").Files
	if len(files) != 1 || files[0].Name != "bracket.step" {
		t.Errorf("expected only the allowed file to be attached, got %+v", files)
	}

	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "virus.exe") {
		t.Errorf("expected rejection toast naming the file, got %q", trigger)
	}
	if !strings.Contains(trigger, "Allowed file types") {
		t.Errorf("expected the allow-list in the toast, got %q", trigger)
	}
}

func TestHandleFileAdd_NoFiles(t *testing.T) {
	store := drafts.NewStore()
	handler := HandleFileAdd(store)

	req := testhelpers.NewUploadRequest(t, "/rfq/files")
	req = withSession(req, "s1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleFileAdd_NotMultipart(t *testing.T) {
	store := drafts.NewStore()
	handler := HandleFileAdd(store)

	req := testhelpers.NewFormRequest(t, http.MethodPost, "/rfq/files", url.Values{})
	req = withSession(req, "s1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleFileRemove(t *testing.T) {
	store := drafts.NewStore()
	store.Dispatch("s1", services.AddFiles{Candidates: []services.FileRef{
		{Name: "a.step"}, {Name: "b.pdf"},
	}})
	handler := HandleFileRemove(store)

	req := testhelpers.NewFormRequest(t, http.MethodDelete, "/rfq/files/0", url.Values{})
	req.SetPathValue("index", "0")
	req = withSession(req, "s1")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	files := store.Get("s1").Files
	if len(files) != 1 || files[0].Name != "b.pdf" {
		t.Errorf("unexpected files after removal: %+v", files)
	}
}

func TestHandleFileRemove_BadIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    string
		wantCode int
	}{
		{"not a number", "abc", http.StatusBadRequest},
		{"out of range", "7", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := drafts.NewStore()
			store.Dispatch("s1", services.AddFiles{Candidates: []services.FileRef{{Name: "a.step"}}})
			handler := HandleFileRemove(store)

			req := testhelpers.NewFormRequest(t, http.MethodDelete, "/rfq/files/"+tt.index, url.Values{})
			req.SetPathValue("index", tt.index)
			req = withSession(req, "s1")
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if got := len(store.Get("s1").Files); got != 1 {
				t.Errorf("expected file list untouched, got %d files", got)
			}
		})
	}
}
