// Package player is the rendering side of playback: it owns the window, the
// pacing loop, and keyboard handling, and calls the decoder once per
// displayed frame. The decoder core never imports this package.
package player

import (
	"errors"
	"time"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/adajani/go-aviplay/internal/avi"
)

type game struct {
	c        *avi.Container
	frame    int
	interval time.Duration
	last     time.Time
	texture  *ebiten.Image
	rgba     []byte
}

// Play opens a window sized to the video and runs the container's frames at
// its reported rate. Returns when the user presses ESC or closes the window;
// after the last frame, the final image stays up until quit.
func Play(c *avi.Container, title string) error {
	w, h := c.Dimensions()
	fps := c.FramesPerSecond()
	if fps < 1 {
		fps = 1
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	g := &game{
		c:        c,
		interval: time.Second / time.Duration(fps),
		texture:  ebiten.NewImage(w, h),
		rgba:     make([]byte, w*h*4),
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.frame >= g.c.FrameCount() {
		return nil
	}
	now := time.Now()
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return nil
	}
	g.last = now
	frame, err := g.c.DecodeFrame(g.frame)
	if err != nil {
		// One bad frame does not end the session.
		log.WithField("frame", g.frame).WithError(err).Warn("frame decode failed")
	} else {
		rgbaFromFrame(g.rgba, frame)
		g.texture.WritePixels(g.rgba)
	}
	g.frame++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.texture, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.c.Dimensions()
}
