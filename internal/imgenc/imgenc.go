// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imgenc encodes decoded page images into output files.
package imgenc

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/tiff"
)

// Encode writes img to w in the named format. There is no JPEG case: the
// save loop rejects that format before any encoder runs.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("no encoder for format %q", format)
	}
}

// Save encodes img into the file at path, creating or truncating it.
func Save(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
