package raster

import (
	"strings"
	"testing"

	"github.com/pdiddy/pdfpages/pkg/types"
)

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  types.Backend
		wantName string
		wantErr  bool
	}{
		{"poppler", types.BackendPoppler, "poppler", false},
		{"mupdf", types.BackendMuPDF, "mupdf", false},
		{"empty defaults to poppler", types.Backend(""), "poppler", false},
		{"unknown", types.Backend("ghostscript"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ras, err := New(tt.backend, "")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "unknown rasterization backend") {
					t.Errorf("error = %q, want backend mention", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ras.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", ras.Name(), tt.wantName)
			}
		})
	}
}

func TestFormatFlag(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"png", "-png", false},
		{"PNG", "-png", false},
		{"jpeg", "-jpeg", false},
		{"jpg", "-jpeg", false},
		{"tiff", "-tiff", false},
		{"tif", "-tiff", false},
		{"bmp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := formatFlag(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("formatFlag(%q): expected error, got nil", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("formatFlag(%q): unexpected error: %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("formatFlag(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
