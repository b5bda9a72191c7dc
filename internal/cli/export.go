package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/adajani/go-aviplay/internal/avi"
)

// Export decodes frames and writes them as image files. With all set, every
// frame goes to outDir as frame-NNNN with the chosen extension; otherwise
// the single requested frame is written to output.
func Export(stderr io.Writer, path string, frame int, all bool, output string) int {
	c, err := avi.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitError
	}
	defer c.Close()

	if !all {
		if err := exportFrame(c, frame, output); err != nil {
			fmt.Fprintf(stderr, "%s: frame %d: %v\n", path, frame, err)
			return exitError
		}
		return exitOK
	}

	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".png"
	}
	dir := strings.TrimSuffix(output, ext)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitError
	}
	code := exitOK
	for i := 0; i < c.FrameCount(); i++ {
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d%s", i, ext))
		if err := exportFrame(c, i, name); err != nil {
			// Per-frame failures do not stop the run.
			fmt.Fprintf(stderr, "%s: frame %d: %v\n", path, i, err)
			code = exitError
		}
	}
	return code
}

func exportFrame(c *avi.Container, index int, output string) error {
	frame, err := c.DecodeFrame(index)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	img := frameImage(frame)
	switch strings.ToLower(filepath.Ext(output)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// frameImage converts a decoded frame to an NRGBA image for the encoders.
func frameImage(frame *avi.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		row := frame.Pix[y*frame.Stride:]
		for x := 0; x < frame.Width; x++ {
			img.SetNRGBA(x, y, framePixel(frame.Format, row, x))
		}
	}
	return img
}

func framePixel(format avi.FrameFormat, row []byte, x int) color.NRGBA {
	switch format {
	case avi.FrameRGB:
		return color.NRGBA{R: row[x*3], G: row[x*3+1], B: row[x*3+2], A: 0xFF}
	case avi.FrameRGB565:
		v := uint16(row[x*2]) | uint16(row[x*2+1])<<8
		return color.NRGBA{
			R: uint8(v>>11) << 3,
			G: uint8(v>>5&0x3F) << 2,
			B: uint8(v&0x1F) << 3,
			A: 0xFF,
		}
	case avi.FrameRGBA:
		return color.NRGBA{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
	}
	return color.NRGBA{}
}
