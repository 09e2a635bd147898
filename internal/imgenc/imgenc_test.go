package imgenc

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(3, 1, color.RGBA{B: 255, A: 128})
	return img
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format  string
		decode  func(*bytes.Buffer) (image.Image, error)
		wantErr bool
	}{
		{format: "png", decode: func(b *bytes.Buffer) (image.Image, error) {
			img, _, err := image.Decode(b)
			return img, err
		}},
		{format: "tiff", decode: func(b *bytes.Buffer) (image.Image, error) {
			return tiff.Decode(b)
		}},
		{format: "tif", decode: func(b *bytes.Buffer) (image.Image, error) {
			return tiff.Decode(b)
		}},
		{format: "jpeg", wantErr: true},
		{format: "bmp", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, testImage(), tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			decoded, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decoding %s output: %v", tt.format, err)
			}
			if decoded.Bounds() != testImage().Bounds() {
				t.Errorf("bounds = %v, want %v", decoded.Bounds(), testImage().Bounds())
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page_1.png")

	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, testImage(), "png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, _, err := image.Decode(f); err != nil {
		t.Errorf("overwritten file is not a valid image: %v", err)
	}
}

func TestSaveUnknownFormatLeavesNoValidImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page_1.webp")

	if err := Save(path, testImage(), "webp"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
