package avi

import "fmt"

// PixelFormat identifies the stored layout of one source pixel.
type PixelFormat int

const (
	Indexed8 PixelFormat = iota // 8-bit palette index
	RGB565                      // 16-bit little-endian 5-6-5, display-ready
	BGR24                       // 24-bit blue-green-red
	BGRA32                      // 32-bit blue-green-red-alpha
)

func (f PixelFormat) String() string {
	switch f {
	case Indexed8:
		return "8-bit indexed"
	case RGB565:
		return "16-bit RGB565"
	case BGR24:
		return "24-bit BGR"
	case BGRA32:
		return "32-bit BGRA"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// BytesPerPixel is the stored size of one source pixel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case Indexed8:
		return 1
	case RGB565:
		return 2
	case BGR24:
		return 3
	case BGRA32:
		return 4
	}
	return 0
}

// FrameFormat identifies the layout of decoded pixels.
type FrameFormat int

const (
	FrameRGB    FrameFormat = iota // 3 bytes per pixel, R G B
	FrameRGB565                    // 2 bytes per pixel, little-endian 5-6-5
	FrameRGBA                      // 4 bytes per pixel, R G B A
)

func (f FrameFormat) String() string {
	switch f {
	case FrameRGB:
		return "RGB"
	case FrameRGB565:
		return "RGB565"
	case FrameRGBA:
		return "RGBA"
	}
	return fmt.Sprintf("FrameFormat(%d)", int(f))
}

func (f FrameFormat) BytesPerPixel() int {
	switch f {
	case FrameRGB:
		return 3
	case FrameRGB565:
		return 2
	case FrameRGBA:
		return 4
	}
	return 0
}

// FrameFormat reports the decoded layout a source format converts into.
// Indexed pixels resolve through the palette to RGB, BGR is reordered to
// RGB, BGRA to RGBA, and 565 values are copied through unchanged.
func (f PixelFormat) FrameFormat() FrameFormat {
	switch f {
	case RGB565:
		return FrameRGB565
	case BGRA32:
		return FrameRGBA
	}
	return FrameRGB
}

// ResolveFormat maps a bitmap header's bit depth and compression tag to a
// pixel format. Only BI_RGB (compression 0) is supported.
func ResolveFormat(bitCount uint16, compression uint32) (PixelFormat, error) {
	if compression != 0 {
		return 0, fmt.Errorf("%w: compression tag 0x%08x", ErrUnsupportedCompression, compression)
	}
	switch bitCount {
	case 8:
		return Indexed8, nil
	case 16:
		return RGB565, nil
	case 24:
		return BGR24, nil
	case 32:
		return BGRA32, nil
	}
	return 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedBitDepth, bitCount)
}
