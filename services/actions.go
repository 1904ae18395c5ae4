package services

import "strconv"

// Action is one discrete user-driven transition of the RFQ draft.
// Apply never mutates the previous snapshot; every action returns a new
// deep copy, so each transition is independently testable and a payload
// built from an earlier snapshot can never change under a pending submit.
type Action interface {
	apply(prev FormState) FormState
}

// Apply advances the draft by one action and returns the new snapshot.
func Apply(prev FormState, action Action) FormState {
	return action.apply(prev)
}

// SetField replaces one scalar, enum or boolean field, addressed by its
// form field name. Unknown names and enum values outside the declared
// literals leave the state unchanged; handlers reject those before
// dispatch, so the no-op here is only a backstop.
type SetField struct {
	Name  string
	Value string
}

func (a SetField) apply(prev FormState) FormState {
	next := prev.Clone()
	switch a.Name {
	case "company":
		next.Company = a.Value
	case "contact":
		next.Contact = a.Value
	case "email":
		next.Email = a.Value
	case "phone":
		next.Phone = a.Value
	case "address":
		next.Address = a.Value
	case "delivery_date":
		next.DeliveryDate = a.Value
	case "incoterms":
		if v := Incoterm(a.Value); v.Valid() {
			next.Incoterms = v
		}
	case "currency":
		if v := Currency(a.Value); v.Valid() {
			next.Currency = v
		}
	case "shipping_preference":
		if v := ShippingPreference(a.Value); v.Valid() {
			next.ShippingPreference = v
		}
	case "nda":
		next.NDA = parseCheckbox(a.Value)
	}
	return next
}

// parseCheckbox interprets the value an HTML checkbox posts. Browsers send
// "on" for a checked box; "true"/"1" are accepted for API callers.
func parseCheckbox(value string) bool {
	if value == "on" {
		return true
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

// AddLineItem appends a default line item. It never fails and has no
// upper bound on the item count.
type AddLineItem struct{}

func (AddLineItem) apply(prev FormState) FormState {
	next := prev.Clone()
	next.LineItems = append(next.LineItems, NewLineItem())
	return next
}

// LineItemPatch is a partial line-item update. Nil fields are left as-is.
type LineItemPatch struct {
	PartName      *string
	Material      *string
	Tolerance     *string
	Surface       *string
	HeatTreatment *string
	Notes         *string
	Qty           *float64
}

// PatchLineItem applies a partial update to the item at Index. Indices are
// positional, not stable identifiers; an out-of-range index is a no-op.
type PatchLineItem struct {
	Index int
	Patch LineItemPatch
}

func (a PatchLineItem) apply(prev FormState) FormState {
	if a.Index < 0 || a.Index >= len(prev.LineItems) {
		return prev
	}
	next := prev.Clone()
	item := &next.LineItems[a.Index]
	if a.Patch.PartName != nil {
		item.PartName = *a.Patch.PartName
	}
	if a.Patch.Material != nil {
		item.Material = *a.Patch.Material
	}
	if a.Patch.Tolerance != nil {
		item.Tolerance = *a.Patch.Tolerance
	}
	if a.Patch.Surface != nil {
		item.Surface = *a.Patch.Surface
	}
	if a.Patch.HeatTreatment != nil {
		item.HeatTreatment = *a.Patch.HeatTreatment
	}
	if a.Patch.Notes != nil {
		item.Notes = *a.Patch.Notes
	}
	if a.Patch.Qty != nil {
		item.Qty = *a.Patch.Qty
	}
	return next
}

// RemoveLineItem removes the item at Index. Removing the last remaining
// item is refused: the form always keeps at least one line item while
// editable. Out-of-range indices are a no-op.
type RemoveLineItem struct {
	Index int
}

func (a RemoveLineItem) apply(prev FormState) FormState {
	if len(prev.LineItems) <= 1 {
		return prev
	}
	if a.Index < 0 || a.Index >= len(prev.LineItems) {
		return prev
	}
	next := prev.Clone()
	next.LineItems = append(next.LineItems[:a.Index], next.LineItems[a.Index+1:]...)
	return next
}

// AddFiles appends the candidates that pass the extension allow-list, in
// their given order, after any files already present. Rejected candidates
// never enter the sequence; callers report them via PartitionFiles.
type AddFiles struct {
	Candidates []FileRef
}

func (a AddFiles) apply(prev FormState) FormState {
	accepted, _ := PartitionFiles(a.Candidates)
	if len(accepted) == 0 {
		return prev
	}
	next := prev.Clone()
	next.Files = append(next.Files, accepted...)
	return next
}

// RemoveFile removes the file at Index by position. Out of range is a no-op.
type RemoveFile struct {
	Index int
}

func (a RemoveFile) apply(prev FormState) FormState {
	if a.Index < 0 || a.Index >= len(prev.Files) {
		return prev
	}
	next := prev.Clone()
	next.Files = append(next.Files[:a.Index], next.Files[a.Index+1:]...)
	return next
}

// Reset discards the draft and returns to defaults.
type Reset struct{}

func (Reset) apply(FormState) FormState {
	return NewFormState()
}

// MarkSubmitted records a successful submission. The draft itself stays
// editable for follow-up changes or another submission.
type MarkSubmitted struct{}

func (MarkSubmitted) apply(prev FormState) FormState {
	next := prev.Clone()
	next.Submitted = true
	return next
}
