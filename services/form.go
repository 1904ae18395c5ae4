// Package services holds the RFQ form core: the form state model, its
// pure state transitions, validation, and the export/submission views
// derived from it.
package services

// FileRef is the metadata of an attached CAD/drawing file. The form only
// ever sees metadata; file contents stay with the host environment.
type FileRef struct {
	Name     string
	Size     int64
	MimeType string
}

// LineItem is one requested part specification within the RFQ.
type LineItem struct {
	PartName      string
	Material      string
	Tolerance     string
	Surface       string
	HeatTreatment string
	Notes         string
	Qty           float64
}

// NewLineItem returns the default line item: empty strings, quantity 1.
func NewLineItem() LineItem {
	return LineItem{Qty: 1}
}

// FormState is the canonical state of one RFQ draft. There is exactly one
// per session; it is created with defaults, advanced through Apply, and
// never persisted.
type FormState struct {
	Company string
	Contact string
	Email   string
	Phone   string
	Address string

	Incoterms          Incoterm
	DeliveryDate       string // ISO 8601, date only
	Currency           Currency
	NDA                bool
	ShippingPreference ShippingPreference

	Files     []FileRef
	LineItems []LineItem

	Submitted bool
}

// NewFormState returns the default draft: DAP/EUR/BestAvailable, no files,
// a single default line item.
func NewFormState() FormState {
	return FormState{
		Incoterms:          IncotermDAP,
		Currency:           CurrencyEUR,
		ShippingPreference: ShippingBestAvailable,
		LineItems:          []LineItem{NewLineItem()},
	}
}

// Clone returns a deep copy of the state. Slices are copied so a snapshot
// handed out earlier can never observe later transitions.
func (s FormState) Clone() FormState {
	out := s
	out.Files = make([]FileRef, len(s.Files))
	copy(out.Files, s.Files)
	out.LineItems = make([]LineItem, len(s.LineItems))
	copy(out.LineItems, s.LineItems)
	return out
}
