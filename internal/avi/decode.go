package avi

import (
	"fmt"
	"io"
)

// Frame is one decoded image, always stored top-down. Pix holds Height rows
// of Stride bytes each; only the first Width*Format.BytesPerPixel() bytes of
// a row carry pixels, the rest is alignment padding.
type Frame struct {
	Width  int
	Height int
	Format FrameFormat
	Stride int
	Pix    []byte
}

// decodeFrame reads one indexed frame from the source and converts it into
// dst, which must hold height rows of stride bytes. Output row y is filled
// from source row y when topDown is set, otherwise from row height-1-y; this
// is the only orientation correction and applies to every format.
//
// The function is pure over its arguments: it mutates nothing but dst and
// the source position, so frames decode in any order, any number of times.
func decodeFrame(r io.ReadSeeker, entry frameRange, width, height int, format PixelFormat, palette []RGB, topDown bool, dst []byte, stride int) error {
	raw := make([]byte, entry.length)
	if _, err := readAt(r, entry.offset, raw); err != nil {
		return fmt.Errorf("frame data at offset %d (%d bytes): %w", entry.offset, entry.length, ErrTruncatedStream)
	}
	srcStride := width * format.BytesPerPixel()
	if len(raw) < height*srcStride {
		return fmt.Errorf("frame data at offset %d: %d bytes, need %d: %w",
			entry.offset, len(raw), height*srcStride, ErrTruncatedStream)
	}

	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		if topDown {
			srcY = y
		}
		src := raw[srcY*srcStride : srcY*srcStride+srcStride]
		row := dst[y*stride:]
		switch format {
		case Indexed8:
			decodeIndexedRow(row, src, width, palette)
		case RGB565:
			copy(row[:srcStride], src)
		case BGR24:
			decodeBGRRow(row, src, width)
		case BGRA32:
			decodeBGRARow(row, src, width)
		}
	}
	return nil
}

// decodeIndexedRow resolves palette indices to RGB triples. An index past
// the palette produces opaque black; malformed indices must render, not fail.
func decodeIndexedRow(dst, src []byte, width int, palette []RGB) {
	for x := 0; x < width; x++ {
		var c RGB
		if i := int(src[x]); i < len(palette) {
			c = palette[i]
		}
		dst[x*3+0] = c.R
		dst[x*3+1] = c.G
		dst[x*3+2] = c.B
	}
}

func decodeBGRRow(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		dst[x*3+0] = src[x*3+2]
		dst[x*3+1] = src[x*3+1]
		dst[x*3+2] = src[x*3+0]
	}
}

func decodeBGRARow(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		dst[x*4+0] = src[x*4+2]
		dst[x*4+1] = src[x*4+1]
		dst[x*4+2] = src[x*4+0]
		dst[x*4+3] = src[x*4+3]
	}
}
