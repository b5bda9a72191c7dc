package avi

import (
	"fmt"
	"io"
	"os"
)

const defaultFPS = 30

// ContainerInfo is the format metadata captured at load time.
type ContainerInfo struct {
	Width  int
	Height int
	// DeclaredFrames is the avih total-frame field, kept for reporting only.
	// The indexed chunk count is authoritative: it reflects what can
	// actually be decoded, and headers are known to lie.
	DeclaredFrames   int
	MicroSecPerFrame uint32
	FPS              int
	BitCount         int
	Format           PixelFormat
	TopDown          bool
	PaletteSize      int
}

// Container is a loaded AVI file. All metadata is populated once by Load and
// immutable afterwards; decoding never mutates it. The container exclusively
// owns its byte source, and every call moves the source's position cursor,
// so calls must not be issued concurrently without external serialization.
type Container struct {
	src     io.ReadSeeker
	closer  io.Closer
	size    int64
	info    ContainerInfo
	palette []RGB
	frames  []frameRange
}

// Open loads the AVI file at path. The returned container owns the file
// handle; Close releases it.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	c, err := Load(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// Load parses an AVI byte source of the given size: header extraction,
// pixel format resolution, then frame indexing, stopping at the first
// failure. There is no partial success; an error means no container.
func Load(src io.ReadSeeker, size int64) (*Container, error) {
	h, err := extractHeaders(src, size)
	if err != nil {
		return nil, err
	}

	format, err := ResolveFormat(h.bitmap.bitCount, h.bitmap.compression)
	if err != nil {
		return nil, err
	}

	// Negative bitmap height marks a top-down image; the stored height is
	// always kept positive.
	topDown := false
	height := h.bitmap.height
	if height < 0 {
		topDown = true
		height = -height
	}
	width := h.bitmap.width
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", ErrMissingHeader, width, height)
	}

	fps := defaultFPS
	if h.main.microSecPerFrame > 0 {
		fps = int(1000000 / h.main.microSecPerFrame)
	}

	frames, err := indexFrames(src, h.moviOffset, h.moviSize, size)
	if err != nil {
		return nil, err
	}

	return &Container{
		src:  src,
		size: size,
		info: ContainerInfo{
			Width:            int(width),
			Height:           int(height),
			DeclaredFrames:   int(h.main.totalFrames),
			MicroSecPerFrame: h.main.microSecPerFrame,
			FPS:              fps,
			BitCount:         int(h.bitmap.bitCount),
			Format:           format,
			TopDown:          topDown,
			PaletteSize:      len(h.palette),
		},
		palette: h.palette,
		frames:  frames,
	}, nil
}

// Close releases the underlying file handle, if the container owns one.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *Container) Info() ContainerInfo {
	return c.info
}

// FrameCount is the number of physically indexed frame chunks.
func (c *Container) FrameCount() int {
	return len(c.frames)
}

func (c *Container) Dimensions() (width, height int) {
	return c.info.Width, c.info.Height
}

func (c *Container) FramesPerSecond() int {
	return c.info.FPS
}

// DecodeFrame decodes the frame at the given zero-based index into a freshly
// allocated buffer with the tightest stride. The caller owns the result; the
// container keeps no reference to it and caches nothing, so decoding the
// same index twice performs the read and conversion twice.
func (c *Container) DecodeFrame(index int) (*Frame, error) {
	stride := c.info.Width * c.info.Format.FrameFormat().BytesPerPixel()
	frame := &Frame{
		Width:  c.info.Width,
		Height: c.info.Height,
		Format: c.info.Format.FrameFormat(),
		Stride: stride,
		Pix:    make([]byte, c.info.Height*stride),
	}
	if err := c.DecodeFrameInto(index, frame.Pix, stride); err != nil {
		return nil, err
	}
	return frame, nil
}

// DecodeFrameInto decodes into a caller-supplied buffer with a caller-chosen
// row stride, which may exceed the tight row size for alignment. Decode
// errors are scoped to the requested frame and never invalidate the
// container; a caller may retry another index.
func (c *Container) DecodeFrameInto(index int, dst []byte, stride int) error {
	if index < 0 || index >= len(c.frames) {
		return fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange, index, len(c.frames))
	}
	if rowSize := c.info.Width * c.info.Format.FrameFormat().BytesPerPixel(); stride < rowSize {
		return fmt.Errorf("avi: stride %d below row size %d", stride, rowSize)
	}
	if len(dst) < c.info.Height*stride {
		return fmt.Errorf("avi: buffer %d bytes, need %d", len(dst), c.info.Height*stride)
	}
	return decodeFrame(c.src, c.frames[index], c.info.Width, c.info.Height,
		c.info.Format, c.palette, c.info.TopDown, dst, stride)
}
