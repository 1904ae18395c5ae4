package services

import (
	"strings"
	"testing"
)

func TestAllowedFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"step lowercase", "bracket.step", true},
		{"stp", "bracket.stp", true},
		{"iges", "housing.iges", true},
		{"igs", "housing.igs", true},
		{"dxf", "plate.dxf", true},
		{"pdf", "drawing.pdf", true},
		{"png", "photo.png", true},
		{"jpg", "photo.jpg", true},
		{"jpeg", "photo.jpeg", true},
		{"uppercase extension", "PART.STEP", true},
		{"mixed case", "Part.Pdf", true},
		{"txt rejected", "readme.txt", false},
		{"zip rejected", "models.zip", false},
		{"exe rejected", "setup.exe", false},
		{"no extension", "Makefile", false},
		{"empty name", "", false},
		{"extension mid-name only", "step.backup", false},
		{"dotfile with allowed suffix", ".step", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedFilename(tt.filename); got != tt.want {
				t.Errorf("AllowedFilename(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPartitionFiles(t *testing.T) {
	candidates := []FileRef{
		{Name: "bracket.step", Size: 100},
		{Name: "notes.txt", Size: 5},
		{Name: "drawing.PDF", Size: 2000},
		{Name: "archive.zip", Size: 999},
		{Name: "photo.jpeg", Size: 4096},
	}

	accepted, rejected := PartitionFiles(candidates)

	if len(accepted) != 3 {
		t.Errorf("expected 3 accepted, got %d: %+v", len(accepted), accepted)
	}
	if len(rejected) != 2 {
		t.Errorf("expected 2 rejected, got %d: %+v", len(rejected), rejected)
	}
	if len(accepted)+len(rejected) != len(candidates) {
		t.Errorf("partition lost candidates: %d + %d != %d",
			len(accepted), len(rejected), len(candidates))
	}

	wantAccepted := []string{"bracket.step", "drawing.PDF", "photo.jpeg"}
	for i, name := range wantAccepted {
		if accepted[i].Name != name {
			t.Errorf("accepted[%d] = %q, want %q", i, accepted[i].Name, name)
		}
	}
	wantRejected := []string{"notes.txt", "archive.zip"}
	for i, name := range wantRejected {
		if rejected[i].Name != name {
			t.Errorf("rejected[%d] = %q, want %q", i, rejected[i].Name, name)
		}
	}
}

func TestPartitionFiles_Empty(t *testing.T) {
	accepted, rejected := PartitionFiles(nil)
	if len(accepted) != 0 || len(rejected) != 0 {
		t.Errorf("expected empty partitions, got %d accepted / %d rejected",
			len(accepted), len(rejected))
	}
}

func TestAllowedExtensionsLabel(t *testing.T) {
	label := AllowedExtensionsLabel()
	for _, ext := range AllowedExtensions {
		if !strings.Contains(label, ext) {
			t.Errorf("label %q missing extension %q", label, ext)
		}
	}
}
