package avi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestLoadFrameCountIsPhysical(t *testing.T) {
	// The avih total-frame field lies; the indexed chunk count wins.
	c := loadTest(t, testAVI{
		width: 1, height: 1, bitCount: 24, totalFrames: 99,
		frames: [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	})
	if c.FrameCount() != 3 {
		t.Fatalf("unexpected frame count: %d", c.FrameCount())
	}
	if c.Info().DeclaredFrames != 99 {
		t.Fatalf("declared frame count not preserved: %d", c.Info().DeclaredFrames)
	}
}

func TestLoadIgnoresAudioChunks(t *testing.T) {
	c := loadTest(t, testAVI{
		width: 1, height: 1, bitCount: 24,
		moviExtra: [][]byte{testChunk("01wb", make([]byte, 64))},
		frames:    [][]byte{{1, 2, 3}},
	})
	if c.FrameCount() != 1 {
		t.Fatalf("unexpected frame count: %d", c.FrameCount())
	}
}

func TestLoadFPS(t *testing.T) {
	cases := []struct {
		microSec uint32
		fps      int
	}{
		{33333, 30},
		{40000, 25},
		{16666, 60},
		{0, 30}, // missing duration falls back to 30
	}
	for _, tc := range cases {
		c := loadTest(t, testAVI{
			width: 1, height: 1, bitCount: 24, microSecPerFrame: tc.microSec,
			frames: [][]byte{{1, 2, 3}},
		})
		if c.FramesPerSecond() != tc.fps {
			t.Fatalf("microSecPerFrame %d: fps %d, want %d", tc.microSec, c.FramesPerSecond(), tc.fps)
		}
	}
}

func TestLoadDimensions(t *testing.T) {
	c := loadTest(t, testAVI{
		width: 6, height: -4, bitCount: 32,
		frames: [][]byte{make([]byte, 6*4*4)},
	})
	w, h := c.Dimensions()
	if w != 6 || h != 4 {
		t.Fatalf("unexpected dimensions: %dx%d", w, h)
	}
	if !c.Info().TopDown {
		t.Fatalf("negative height should mark the image top-down")
	}
}

func TestLoadUnsupportedCompression(t *testing.T) {
	data := buildAVI(testAVI{
		width: 1, height: 1, bitCount: 24, compression: 0x34363248, // "H264"
		frames: [][]byte{{1, 2, 3}},
	})
	_, err := Load(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestLoadNoFrames(t *testing.T) {
	data := buildAVI(testAVI{width: 1, height: 1, bitCount: 24})
	_, err := Load(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestLoadTruncatedMovi(t *testing.T) {
	// The final frame chunk header claims bytes past end of file; load must
	// fail rather than return a short index.
	bogus := []byte("00dc")
	bogus = binary.LittleEndian.AppendUint32(bogus, 1<<20)
	data := buildAVI(testAVI{
		width: 1, height: 1, bitCount: 24,
		moviExtra: [][]byte{testChunk("00dc", []byte{1, 2, 3, 0}), bogus},
	})
	_, err := Load(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestLoadNotAVI(t *testing.T) {
	data := []byte("RIFF\x04\x00\x00\x00WAVE")
	_, err := Load(bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrInvalidContainer) {
		t.Fatalf("expected ErrInvalidContainer, got %v", err)
	}
}
