package cli

import (
	"image/color"
	"testing"

	"github.com/adajani/go-aviplay/internal/avi"
)

func TestFrameImageRGB(t *testing.T) {
	frame := &avi.Frame{
		Width: 2, Height: 1, Format: avi.FrameRGB, Stride: 6,
		Pix: []byte{0x30, 0x20, 0x10, 1, 2, 3},
	}
	img := frameImage(frame)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}) {
		t.Fatalf("pixel (0,0) = %+v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}) {
		t.Fatalf("pixel (1,0) = %+v", got)
	}
}

func TestFrameImageRGB565(t *testing.T) {
	// 0xF800: pure red.
	frame := &avi.Frame{
		Width: 1, Height: 1, Format: avi.FrameRGB565, Stride: 2,
		Pix: []byte{0x00, 0xF8},
	}
	img := frameImage(frame)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0xF8, A: 0xFF}) {
		t.Fatalf("pixel (0,0) = %+v", got)
	}
}

func TestFrameImageRGBA(t *testing.T) {
	frame := &avi.Frame{
		Width: 1, Height: 2, Format: avi.FrameRGBA, Stride: 4,
		Pix: []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	img := frameImage(frame)
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{R: 5, G: 6, B: 7, A: 8}) {
		t.Fatalf("pixel (0,1) = %+v", got)
	}
}
