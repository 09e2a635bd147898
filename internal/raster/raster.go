// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster turns a PDF document into ordered in-memory page images
// through pluggable backends.
package raster

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pdfpages/pkg/types"
)

// Options carries the per-conversion rendering parameters.
type Options struct {
	// DPI is the output resolution in dots per inch.
	DPI int
	// Format is the requested output format ("png", "jpeg", "tiff", ...).
	Format string
}

// Rasterizer renders a PDF into decoded page images. Implementations are
// synchronous and return the complete page sequence in document order,
// 1-indexed.
type Rasterizer interface {
	// Name returns the backend name.
	Name() string

	// CheckAvailable verifies the rasterization capability is present. It
	// never executes a binary.
	CheckAvailable() error

	// LocateToolchain resolves the external conversion binary the backend
	// will invoke. Backends without an external toolchain return an empty
	// path.
	LocateToolchain() (string, error)

	// Convert rasterizes every page of the PDF at src.
	Convert(src string, opts Options) ([]types.Page, error)
}

// New returns the rasterizer for the chosen backend. popplerPath names the
// directory holding the poppler binaries (empty means the system PATH) and
// is ignored by the mupdf backend.
func New(backend types.Backend, popplerPath string) (Rasterizer, error) {
	switch backend {
	case types.BackendPoppler, "":
		return NewPoppler(popplerPath), nil
	case types.BackendMuPDF:
		return NewMuPDF(), nil
	default:
		return nil, fmt.Errorf("unknown rasterization backend %q: use %q or %q",
			backend, types.BackendPoppler, types.BackendMuPDF)
	}
}

// formatFlag maps a requested output format onto the pdftoppm selector
// flag. The same mapping defines which formats any backend accepts.
func formatFlag(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return "-png", nil
	case "jpeg", "jpg":
		return "-jpeg", nil
	case "tiff", "tif":
		return "-tiff", nil
	default:
		return "", fmt.Errorf("output format %q is not supported", format)
	}
}
