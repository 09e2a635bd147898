// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Backend identifies the rasterization backend.
type Backend string

const (
	// BackendPoppler renders through the poppler command-line tools.
	BackendPoppler Backend = "poppler"
	// BackendMuPDF renders in-process through the embedded MuPDF library.
	BackendMuPDF Backend = "mupdf"
)

// Defaults applied when a conversion request leaves a field unset.
const (
	DefaultDPI    = 200
	DefaultFormat = "png"
)

// Request describes one PDF-to-images conversion. It is built once from
// CLI input and never mutated.
type Request struct {
	// Source is the path to the input PDF.
	Source string `json:"source" yaml:"source"`

	// DestDir is the directory that receives the page_<N>.<fmt> files.
	DestDir string `json:"dest_dir" yaml:"dest_dir"`

	// DPI is the output resolution in dots per inch (default 200).
	DPI int `json:"dpi" yaml:"dpi"`

	// Format is the output image format (default "png"). "jpeg" is
	// rejected during the save loop.
	Format string `json:"format" yaml:"format"`

	// PopplerPath optionally names the directory holding the poppler
	// binaries. Empty means the system PATH.
	PopplerPath string `json:"poppler_path,omitempty" yaml:"poppler_path,omitempty"`

	// Backend selects the rasterization backend: poppler or mupdf.
	Backend Backend `json:"backend" yaml:"backend"`
}

// Validate checks the request field contract.
func (r Request) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("source PDF path is required")
	}
	if r.DestDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if r.DPI <= 0 {
		return fmt.Errorf("dpi must be a positive integer, got %d", r.DPI)
	}
	if r.Format == "" {
		return fmt.Errorf("output format is required")
	}
	return nil
}
