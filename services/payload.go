package services

import (
	"math"
	"time"
)

// AppName tags every payload envelope so the intake endpoint can tell
// which client produced it.
const AppName = "rfq-intake"

// PayloadVersion is the wire contract version of the payload envelope.
const PayloadVersion = 1

// PayloadMeta is the payload envelope header.
type PayloadMeta struct {
	CreatedAt string `json:"createdAt"`
	App       string `json:"app"`
	Version   int    `json:"version"`
}

// PayloadFile carries attachment metadata only. File content is never
// part of the payload; the form never has the raw bytes to begin with.
type PayloadFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// PayloadLineItem is one part specification on the wire.
type PayloadLineItem struct {
	PartName      string  `json:"partName"`
	Material      string  `json:"material"`
	Tolerance     string  `json:"tolerance"`
	Surface       string  `json:"surface"`
	HeatTreatment string  `json:"heatTreatment"`
	Notes         string  `json:"notes"`
	Qty           float64 `json:"qty"`
}

// Payload is the structure submitted to the order-intake endpoint.
// The JSON field names are the wire contract.
type Payload struct {
	Meta PayloadMeta `json:"meta"`

	Company string `json:"company"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Incoterms          string `json:"incoterms"`
	DeliveryDate       string `json:"deliveryDate"`
	Currency           string `json:"currency"`
	NDA                bool   `json:"NDA"`
	ShippingPreference string `json:"shippingPreference"`

	Files     []PayloadFile     `json:"files"`
	LineItems []PayloadLineItem `json:"lineItems"`
}

// BuildPayload derives the submission payload from a draft snapshot.
// It is deterministic up to the timestamp: the same state and the same
// now always produce the same payload.
func BuildPayload(state FormState, now time.Time) Payload {
	files := make([]PayloadFile, len(state.Files))
	for i, f := range state.Files {
		files[i] = PayloadFile{
			Name: f.Name,
			Size: f.Size,
			Type: f.MimeType,
		}
	}

	items := make([]PayloadLineItem, len(state.LineItems))
	for i, li := range state.LineItems {
		items[i] = PayloadLineItem{
			PartName:      li.PartName,
			Material:      li.Material,
			Tolerance:     li.Tolerance,
			Surface:       li.Surface,
			HeatTreatment: li.HeatTreatment,
			Notes:         li.Notes,
			Qty:           li.Qty,
		}
	}

	return Payload{
		Meta: PayloadMeta{
			CreatedAt: now.UTC().Format(time.RFC3339),
			App:       AppName,
			Version:   PayloadVersion,
		},
		Company:            state.Company,
		Contact:            state.Contact,
		Email:              state.Email,
		Phone:              state.Phone,
		Address:            state.Address,
		Incoterms:          string(state.Incoterms),
		DeliveryDate:       state.DeliveryDate,
		Currency:           string(state.Currency),
		NDA:                state.NDA,
		ShippingPreference: string(state.ShippingPreference),
		Files:              files,
		LineItems:          items,
	}
}

// TotalQty sums the quantities of all line items, treating NaN as 0.
// It is recomputed from the snapshot on demand and never cached, so the
// displayed total cannot drift from the source fields.
func TotalQty(state FormState) float64 {
	var total float64
	for _, item := range state.LineItems {
		if math.IsNaN(item.Qty) {
			continue
		}
		total += item.Qty
	}
	return total
}
