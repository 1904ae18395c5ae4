package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/services"
)

// HandleSubmit handles POST /rfq/submit
// Validates the draft, builds the payload once, and hands it to the
// submitter. On failure the draft is left untouched for a retry; on
// success the draft is flagged as submitted but stays editable.
func HandleSubmit(store *drafts.Store, submitter services.Submitter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sessionID := SessionID(e.Request)
		state := store.Get(sessionID)

		errors := services.Validate(state)
		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderForm(e, state, errors)
		}

		// The payload is built from this snapshot before the call
		// suspends; later edits cannot leak into a pending submission.
		payload := services.BuildPayload(state, time.Now())

		if err := submitter.Submit(e.Request.Context(), payload); err != nil {
			log.Printf("submit: intake submission failed: %v", err)
			SetToast(e, "error", "Submission failed. Your RFQ was kept, please try again.")
			return renderForm(e, state, nil)
		}

		state = store.Dispatch(sessionID, services.MarkSubmitted{})
		SetToast(e, "success", "RFQ submitted")

		if e.Request.Header.Get("HX-Request") == "true" {
			return renderForm(e, state, nil)
		}
		return e.Redirect(http.StatusFound, "/")
	}
}
