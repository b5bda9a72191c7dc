package avi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func indexMovi(t *testing.T, chunks ...[]byte) ([]frameRange, error) {
	t.Helper()
	data := buildMovi(chunks...)
	// movi payload starts after RIFF header (12) + LIST header (8) + "movi" (4).
	return indexFrames(bytes.NewReader(data), 24, int64(len(data))-24, int64(len(data)))
}

func buildMovi(chunks ...[]byte) []byte {
	return testRIFF(testList("movi", chunks...))
}

func TestIndexFrames(t *testing.T) {
	frames, err := indexMovi(t,
		testChunk("00dc", []byte{1, 2, 3, 4}),
		testChunk("01wb", make([]byte, 100)), // audio, skipped
		testChunk("JUNK", []byte{9}),         // odd length, padded
		testChunk("00db", []byte{5, 6, 7}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("unexpected frame count: %d", len(frames))
	}
	if frames[0].length != 4 || frames[1].length != 3 {
		t.Fatalf("unexpected lengths: %+v", frames)
	}
	if frames[1].offset <= frames[0].offset {
		t.Fatalf("frames out of file order: %+v", frames)
	}
}

func TestIndexFramesLengthExactSkipping(t *testing.T) {
	// Offsets must line up chunk by chunk even across odd-length payloads.
	first := testChunk("00dc", []byte{1, 2, 3}) // 8+3+1 pad = 12 bytes
	frames, err := indexMovi(t, first, testChunk("00dc", []byte{4, 5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("unexpected frame count: %d", len(frames))
	}
	if got, want := frames[1].offset-frames[0].offset, int64(len(first)); got != want {
		t.Fatalf("second frame offset delta %d, want %d", got, want)
	}
}

func TestIndexFramesTruncated(t *testing.T) {
	// Final chunk header claims bytes past end of file.
	bogus := []byte("00dc")
	bogus = binary.LittleEndian.AppendUint32(bogus, 1<<20)
	_, err := indexMovi(t, testChunk("00dc", []byte{1, 2}), bogus)
	if !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestIndexFramesNone(t *testing.T) {
	_, err := indexMovi(t, testChunk("01wb", make([]byte, 10)))
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	if _, err := indexMovi(t); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("empty movi: expected ErrNoFrames, got %v", err)
	}
}
