// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"

	fitz "github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdfpages/pkg/types"
)

// MuPDF rasterizes in-process through the go-fitz bindings. No external
// toolchain is involved.
type MuPDF struct{}

// NewMuPDF returns the embedded MuPDF rasterizer.
func NewMuPDF() *MuPDF {
	return &MuPDF{}
}

func (m *MuPDF) Name() string {
	return string(types.BackendMuPDF)
}

// CheckAvailable always passes: the MuPDF library is compiled in.
func (m *MuPDF) CheckAvailable() error {
	return nil
}

// LocateToolchain reports no external binary.
func (m *MuPDF) LocateToolchain() (string, error) {
	return "", nil
}

// Convert renders every page of src at the requested resolution.
func (m *MuPDF) Convert(src string, opts Options) ([]types.Page, error) {
	if _, err := formatFlag(opts.Format); err != nil {
		return nil, err
	}

	doc, err := fitz.New(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s with mupdf: %w", src, err)
	}
	defer doc.Close()

	pages := make([]types.Page, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, float64(opts.DPI))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d with mupdf: %w", n+1, err)
		}
		pages = append(pages, types.Page{Number: n + 1, Image: img})
	}
	return pages, nil
}
