package render

import (
	"image/color"
	"testing"
)

func redIfNonZero(rec []uint8) color.RGBA {
	if rec[0] != 0 {
		return color.RGBA{R: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

func TestFillRecordsUsesStride(t *testing.T) {
	cells := []uint8{
		1, 9, 9, 9,
		0, 9, 9, 9,
		2, 0, 0, 0,
	}
	buf := make([]byte, 12)
	FillRecords(buf, cells, 4, redIfNonZero)
	want := []byte{255, 0, 0, 255, 0, 0, 0, 255, 255, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %d want %d (%v)", i, buf[i], want[i], buf)
		}
	}
}

func TestFillRecordsNilShaderClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FillRecords(buf, make([]uint8, 8), 4, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %v", i, buf)
		}
	}
}

func TestFillRecordsIgnoresShortBuffer(t *testing.T) {
	cells := []uint8{1, 0, 0, 0, 1, 0, 0, 0}
	buf := make([]byte, 4)
	FillRecords(buf, cells, 4, redIfNonZero)
	if buf[0] != 255 {
		t.Fatalf("expected first pixel shaded, got %v", buf)
	}
}

func TestImageFromRecordsAndUpscale(t *testing.T) {
	cells := []uint8{
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 0,
	}
	img := ImageFromRecords(2, 2, cells, 4, redIfNonZero)
	if got := img.RGBAAt(0, 0); got.R != 255 {
		t.Fatalf("expected red at (0,0), got %v", got)
	}
	if got := img.RGBAAt(1, 0); got.R != 0 {
		t.Fatalf("expected black at (1,0), got %v", got)
	}

	big := Upscale(img, 3)
	if big.Bounds().Dx() != 6 || big.Bounds().Dy() != 6 {
		t.Fatalf("unexpected upscaled bounds %v", big.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := big.RGBAAt(x, y); got.R != 255 {
				t.Fatalf("expected red block at (%d,%d), got %v", x, y, got)
			}
			if got := big.RGBAAt(x+3, y+3); got.R != 255 {
				t.Fatalf("expected red block at (%d,%d), got %v", x+3, y+3, got)
			}
			if got := big.RGBAAt(x+3, y); got.R != 0 {
				t.Fatalf("expected black block at (%d,%d), got %v", x+3, y, got)
			}
		}
	}
	if Upscale(img, 1) != img {
		t.Fatalf("scale 1 should return the source image")
	}
}
