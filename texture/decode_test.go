package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	top := color.NRGBA{R: 255, A: 255}
	bottom := color.NRGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		src.SetNRGBA(x, 0, top)
		src.SetNRGBA(x, 2, bottom)
	}

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 3) {
		t.Fatalf("bounds = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
		t.Fatalf("row 0 = %v, want the source's bottom row", got)
	}
	if got := img.RGBAAt(1, 2); got.R != 255 || got.B != 0 {
		t.Fatalf("row 2 = %v, want the source's top row", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Decode(filepath.Join(dir, "missing.jpeg")); err == nil {
		t.Fatal("expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(garbage); err == nil {
		t.Fatal("expected decode error")
	}
}
