// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a single PDF-to-images conversion run: it checks
// every runtime precondition, invokes the rasterizer once, and saves the
// returned pages to disk in document order.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdfpages/internal/fscheck"
	"github.com/pdiddy/pdfpages/internal/imgenc"
	"github.com/pdiddy/pdfpages/internal/raster"
	"github.com/pdiddy/pdfpages/pkg/types"
)

// rejectedFormat is refused in the save loop. Rendered pages may carry an
// alpha channel, which the JPEG encoder cannot represent.
const rejectedFormat = "jpeg"

// Run executes one conversion: preconditions, rasterization, then one saved
// file per page. It returns the number of pages written. Every failure comes
// back as a *types.Error; callers map it to an exit code, Run never exits.
//
// Precondition order is fixed: rasterization capability, conversion binary,
// source readability, destination writability. Each failure is final.
func Run(ras raster.Rasterizer, req types.Request, log *logrus.Logger) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, types.NewConversionFailure("invalid conversion request", err)
	}

	if err := ras.CheckAvailable(); err != nil {
		return 0, err
	}
	bin, err := ras.LocateToolchain()
	if err != nil {
		return 0, err
	}
	if bin != "" {
		log.Debugf("conversion binary: %s", bin)
	}

	if err := fscheck.SourceReadable(req.Source); err != nil {
		return 0, types.NewSourceUnreadable("source PDF failed the readability check", err)
	}
	if err := fscheck.EnsureWritableDir(req.DestDir); err != nil {
		return 0, types.NewDestinationUnwritable("output directory failed the writability check", err)
	}

	log.Infof("Converting %q to images...", req.Source)
	pages, err := ras.Convert(req.Source, raster.Options{DPI: req.DPI, Format: req.Format})
	if err != nil {
		return 0, asConversionFailure("rasterization failed", err)
	}

	// The format gate sits inside the loop, after rasterization: a rejected
	// format is reported on the first page, with nothing written.
	for _, page := range pages {
		name := fmt.Sprintf("page_%d.%s", page.Number, req.Format)
		outPath := filepath.Join(req.DestDir, name)

		if strings.ToLower(req.Format) == rejectedFormat {
			return 0, types.NewUnsupportedFormat(
				"jpeg output is not supported: rendered pages carry an alpha channel that JPEG cannot encode", nil)
		}

		if err := imgenc.Save(outPath, page.Image, req.Format); err != nil {
			return 0, types.NewConversionFailure(fmt.Sprintf("saving page %d", page.Number), err)
		}
		log.Infof("Saved page %d to %q", page.Number, outPath)
	}

	log.Info("Conversion complete.")
	return len(pages), nil
}

// asConversionFailure wraps err as a ConversionFailure unless it already
// carries a kind.
func asConversionFailure(message string, err error) error {
	var terr *types.Error
	if errors.As(err, &terr) {
		return err
	}
	return types.NewConversionFailure(message, err)
}
