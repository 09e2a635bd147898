// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	// Decoders for everything pdftoppm can emit.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/pdiddy/pdfpages/internal/poppler"
	"github.com/pdiddy/pdfpages/pkg/types"
)

// pagePrefix is the filename stem pdftoppm renders into inside the
// scratch directory.
const pagePrefix = "page"

// tools is the subset of the poppler toolchain the backend needs.
type tools interface {
	LocateInfo() (string, error)
	LocateRender() (string, error)
	PageCount(src string) (int, error)
	Render(src, outPrefix string, dpi int, formatFlag string) error
}

// Poppler rasterizes through the poppler command-line tools: pdfinfo
// supplies the page count, pdftoppm renders the pages.
type Poppler struct {
	tools tools
}

// NewPoppler returns a poppler-backed rasterizer. popplerPath optionally
// names the directory holding the binaries.
func NewPoppler(popplerPath string) *Poppler {
	return &Poppler{tools: poppler.New(popplerPath)}
}

func (p *Poppler) Name() string {
	return string(types.BackendPoppler)
}

// CheckAvailable verifies pdfinfo is locatable. Without the page count the
// backend cannot rasterize at all.
func (p *Poppler) CheckAvailable() error {
	if _, err := p.tools.LocateInfo(); err != nil {
		return types.NewDependencyMissing("poppler rasterization support is unavailable", err)
	}
	return nil
}

// LocateToolchain resolves the pdftoppm binary.
func (p *Poppler) LocateToolchain() (string, error) {
	path, err := p.tools.LocateRender()
	if err != nil {
		return "", types.NewToolchainNotFound("conversion binary pdftoppm could not be located", err)
	}
	return path, nil
}

// Convert renders every page of src into a scratch directory, decodes the
// produced files, and returns them ordered by page number. The scratch
// directory is removed before returning.
func (p *Poppler) Convert(src string, opts Options) ([]types.Page, error) {
	flag, err := formatFlag(opts.Format)
	if err != nil {
		return nil, err
	}

	count, err := p.tools.PageCount(src)
	if err != nil {
		return nil, err
	}

	scratch, err := os.MkdirTemp("", "pdfpages-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	prefix := filepath.Join(scratch, pagePrefix)
	if err := p.tools.Render(src, prefix, opts.DPI, flag); err != nil {
		return nil, err
	}

	pages, err := collectPages(scratch)
	if err != nil {
		return nil, err
	}
	if len(pages) != count {
		return nil, fmt.Errorf("pdftoppm produced %d page(s), pdfinfo reported %d", len(pages), count)
	}
	return pages, nil
}

// collectPages decodes every rendered file in dir, ordered by the page
// number pdftoppm embeds in each filename. The number is zero-padded for
// multi-digit documents (page-01.png), so ordering must be numeric.
func collectPages(dir string) ([]types.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scratch directory: %w", err)
	}

	pages := make([]types.Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		num, ok := pageNumber(entry.Name())
		if !ok {
			continue
		}
		img, err := decodeImage(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("decoding page %d: %w", num, err)
		}
		pages = append(pages, types.Page{Number: num, Image: img})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
	return pages, nil
}

// pageNumber parses the page index from a pdftoppm output name such as
// "page-3.png" or "page-012.tif".
func pageNumber(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndexByte(base, '-')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
