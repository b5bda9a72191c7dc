// Package avi exposes the uncompressed-AVI decoder for use outside this
// repository.
package avi

import (
	"io"

	"github.com/adajani/go-aviplay/internal/avi"
)

// Types
type Container = avi.Container
type ContainerInfo = avi.ContainerInfo
type Frame = avi.Frame
type PixelFormat = avi.PixelFormat
type FrameFormat = avi.FrameFormat
type RGB = avi.RGB

// Constants
const (
	Indexed8 = avi.Indexed8
	RGB565   = avi.RGB565
	BGR24    = avi.BGR24
	BGRA32   = avi.BGRA32

	FrameRGB    = avi.FrameRGB
	FrameRGB565 = avi.FrameRGB565
	FrameRGBA   = avi.FrameRGBA
)

// Errors
var (
	ErrInvalidContainer       = avi.ErrInvalidContainer
	ErrMissingHeader          = avi.ErrMissingHeader
	ErrUnsupportedCompression = avi.ErrUnsupportedCompression
	ErrUnsupportedBitDepth    = avi.ErrUnsupportedBitDepth
	ErrTruncatedStream        = avi.ErrTruncatedStream
	ErrNoFrames               = avi.ErrNoFrames
	ErrFrameOutOfRange        = avi.ErrFrameOutOfRange
)

// Functions
func Open(path string) (*Container, error) {
	return avi.Open(path)
}

func Load(src io.ReadSeeker, size int64) (*Container, error) {
	return avi.Load(src, size)
}

func ResolveFormat(bitCount uint16, compression uint32) (PixelFormat, error) {
	return avi.ResolveFormat(bitCount, compression)
}
