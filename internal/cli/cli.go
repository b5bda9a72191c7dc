package cli

import (
	"fmt"
	"io"

	"github.com/adajani/go-aviplay/internal/avi"
)

const (
	exitOK    = 0
	exitError = 1
)

// Info prints the metadata block for each file, one file per paragraph.
// Files that fail to load are reported on stderr and turn the exit code.
func Info(stdout, stderr io.Writer, paths []string) int {
	code := exitOK
	for _, path := range paths {
		c, err := avi.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			code = exitError
			continue
		}
		printInfo(stdout, path, c)
		c.Close()
	}
	return code
}

func printInfo(w io.Writer, path string, c *avi.Container) {
	info := c.Info()
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  Resolution     : %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(w, "  Frame rate     : %d fps\n", info.FPS)
	fmt.Fprintf(w, "  Frames         : %d", c.FrameCount())
	if info.DeclaredFrames != c.FrameCount() {
		// Header counts are advisory; the index is what plays.
		fmt.Fprintf(w, " (header declares %d)", info.DeclaredFrames)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Pixel format   : %s\n", info.Format)
	orientation := "bottom-up"
	if info.TopDown {
		orientation = "top-down"
	}
	fmt.Fprintf(w, "  Orientation    : %s\n", orientation)
	if info.Format == avi.Indexed8 {
		fmt.Fprintf(w, "  Palette        : %d entries\n", info.PaletteSize)
	}
	if info.FPS > 0 {
		fmt.Fprintf(w, "  Duration       : %.2f seconds\n", float64(c.FrameCount())/float64(info.FPS))
	}
}
