package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"rfqintake/drafts"
	"rfqintake/services"
	"rfqintake/templates"
)

// scalarFields are the form field names HandleFieldUpdate accepts for
// free-text values; enum fields are checked against their option lists.
var scalarFields = map[string]bool{
	"company":       true,
	"contact":       true,
	"email":         true,
	"phone":         true,
	"address":       true,
	"delivery_date": true,
	"nda":           true,
}

// buildFormData assembles the render model for the form views from a
// draft snapshot and an optional violation map.
func buildFormData(state services.FormState, errors map[string]string) templates.FormData {
	if errors == nil {
		errors = make(map[string]string)
	}
	return templates.FormData{
		State:             state,
		Errors:            errors,
		TotalQty:          services.TotalQty(state),
		AllowedExtensions: services.AllowedExtensionsLabel(),
	}
}

// renderForm writes the form back: the content fragment for HTMX
// requests, the full page otherwise.
func renderForm(e *core.RequestEvent, state services.FormState, errors map[string]string) error {
	data := buildFormData(state, errors)

	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.FormContent(data)
	} else {
		component = templates.FormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleFormPage handles GET /
// Renders the current draft for this session.
func HandleFormPage(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := store.Get(SessionID(e.Request))
		return renderForm(e, state, nil)
	}
}

// HandleFieldUpdate handles POST /rfq/fields?name=<field>
// Replaces one scalar, enum or boolean field of the draft.
func HandleFieldUpdate(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		value := e.Request.FormValue("value")

		switch {
		case scalarFields[name]:
			// accepted as-is
		case name == "incoterms":
			if !services.Incoterm(value).Valid() {
				return ErrorToast(e, http.StatusBadRequest, "Unknown incoterm")
			}
		case name == "currency":
			if !services.Currency(value).Valid() {
				return ErrorToast(e, http.StatusBadRequest, "Unknown currency")
			}
		case name == "shipping_preference":
			if !services.ShippingPreference(value).Valid() {
				return ErrorToast(e, http.StatusBadRequest, "Unknown shipping preference")
			}
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown field")
		}

		state := store.Dispatch(SessionID(e.Request), services.SetField{Name: name, Value: value})
		return renderForm(e, state, nil)
	}
}

// HandleReset handles POST /rfq/reset
// Discards the draft and returns to default values.
func HandleReset(store *drafts.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := store.Dispatch(SessionID(e.Request), services.Reset{})
		SetToast(e, "info", "Form reset")
		return renderForm(e, state, nil)
	}
}
