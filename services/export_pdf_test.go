package services

import (
	"testing"
	"time"
)

func TestGenerateRFQPDF(t *testing.T) {
	state := validState()
	state.Files = []FileRef{{Name: "bracket.step", Size: 2048, MimeType: "model/step"}}
	state = Apply(state, AddLineItem{})
	state.LineItems[1].PartName = "Shaft"
	state.LineItems[1].Qty = 3
	state.LineItems[1].Notes = "grind both ends"

	result, err := GenerateRFQPDF(BuildPayload(state, time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("GenerateRFQPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRFQPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateRFQPDF_NoAttachments(t *testing.T) {
	result, err := GenerateRFQPDF(BuildPayload(validState(), time.Now()))
	if err != nil {
		t.Fatalf("GenerateRFQPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRFQPDF() returned empty bytes")
	}
}

func TestGenerateRFQPDF_EmptyForm(t *testing.T) {
	result, err := GenerateRFQPDF(BuildPayload(NewFormState(), time.Now()))
	if err != nil {
		t.Fatalf("GenerateRFQPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRFQPDF() returned empty bytes")
	}
}
