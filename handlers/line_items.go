package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/services"
)

// pathIndex parses the positional {index} path value.
func pathIndex(e *core.RequestEvent) (int, error) {
	return strconv.Atoi(e.Request.PathValue("index"))
}

// HandleLineItemAdd handles POST /rfq/line-items
// Appends a default line item to the draft.
func HandleLineItemAdd(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := store.Dispatch(SessionID(e.Request), services.AddLineItem{})
		SetToast(e, "success", "Line item added")
		return renderForm(e, state, nil)
	}
}

// HandleLineItemPatch handles PATCH /rfq/line-items/{index}
// Applies a partial update to one line item. Only the fields present in
// the request are touched, so single-input HTMX changes patch exactly
// one attribute.
func HandleLineItemPatch(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := pathIndex(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid line item index")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		sessionID := SessionID(e.Request)
		if index < 0 || index >= len(store.Get(sessionID).LineItems) {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		var patch services.LineItemPatch
		form := e.Request.Form
		if vs, ok := form["part_name"]; ok {
			patch.PartName = &vs[0]
		}
		if vs, ok := form["material"]; ok {
			patch.Material = &vs[0]
		}
		if vs, ok := form["tolerance"]; ok {
			patch.Tolerance = &vs[0]
		}
		if vs, ok := form["surface"]; ok {
			patch.Surface = &vs[0]
		}
		if vs, ok := form["heat_treatment"]; ok {
			patch.HeatTreatment = &vs[0]
		}
		if vs, ok := form["notes"]; ok {
			patch.Notes = &vs[0]
		}
		if vs, ok := form["qty"]; ok {
			// Unparseable input becomes qty 0, which validation reports
			// as a positive-quantity violation on submit.
			qty, err := strconv.ParseFloat(vs[0], 64)
			if err != nil {
				qty = 0
			}
			patch.Qty = &qty
		}

		state := store.Dispatch(sessionID, services.PatchLineItem{Index: index, Patch: patch})
		return renderForm(e, state, nil)
	}
}

// HandleLineItemRemove handles DELETE /rfq/line-items/{index}
// Removes one line item; the last remaining item cannot be removed.
func HandleLineItemRemove(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := pathIndex(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid line item index")
		}

		sessionID := SessionID(e.Request)
		state := store.Get(sessionID)
		if len(state.LineItems) <= 1 {
			return ErrorToast(e, http.StatusConflict, "At least one line item is required")
		}
		if index < 0 || index >= len(state.LineItems) {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		state = store.Dispatch(sessionID, services.RemoveLineItem{Index: index})
		SetToast(e, "success", "Line item removed")
		return renderForm(e, state, nil)
	}
}
