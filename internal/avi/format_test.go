package avi

import (
	"errors"
	"testing"
)

func TestResolveFormat(t *testing.T) {
	cases := []struct {
		bitCount uint16
		format   PixelFormat
		srcBPP   int
		frame    FrameFormat
	}{
		{8, Indexed8, 1, FrameRGB},
		{16, RGB565, 2, FrameRGB565},
		{24, BGR24, 3, FrameRGB},
		{32, BGRA32, 4, FrameRGBA},
	}
	for _, c := range cases {
		format, err := ResolveFormat(c.bitCount, 0)
		if err != nil {
			t.Fatalf("bitCount %d: unexpected error: %v", c.bitCount, err)
		}
		if format != c.format {
			t.Fatalf("bitCount %d: got %v, want %v", c.bitCount, format, c.format)
		}
		if format.BytesPerPixel() != c.srcBPP {
			t.Fatalf("%v: unexpected source bpp %d", format, format.BytesPerPixel())
		}
		if format.FrameFormat() != c.frame {
			t.Fatalf("%v: unexpected frame format %v", format, format.FrameFormat())
		}
	}
}

func TestResolveFormatRejectsCompression(t *testing.T) {
	_, err := ResolveFormat(24, 0x34504D46) // "FMP4"
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestResolveFormatRejectsBitDepth(t *testing.T) {
	for _, bits := range []uint16{0, 1, 4, 12, 15, 48} {
		if _, err := ResolveFormat(bits, 0); !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Fatalf("bitCount %d: expected ErrUnsupportedBitDepth, got %v", bits, err)
		}
	}
}
