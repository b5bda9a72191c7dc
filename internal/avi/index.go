package avi

import (
	"fmt"
	"io"
)

// frameRange locates one frame's raw bytes inside the source. Frames are
// referenced only by integer index into the slice of ranges; no file-backed
// memory is retained between decode calls.
type frameRange struct {
	offset int64
	length uint32
}

// indexFrames enumerates the chunks of the movi payload, recording one entry
// per 00db/00dc chunk in file order. Payload bytes are never read; every
// other chunk, audio included, is skipped wholesale. File order is playback
// order for the interleaved files this handles.
func indexFrames(r io.ReadSeeker, moviStart, moviSize, fileSize int64) ([]frameRange, error) {
	var frames []frameRange
	offset := moviStart
	end := moviStart + moviSize
	if end > fileSize {
		end = fileSize
	}
	for offset+8 <= end {
		tag, length, err := readChunkHeaderAt(r, offset)
		if err != nil {
			return nil, err
		}
		dataStart := offset + 8
		if dataStart+int64(length) > fileSize {
			return nil, fmt.Errorf("chunk %q at offset %d: declared length %d past end of file: %w",
				tag, offset, length, ErrTruncatedStream)
		}
		if tag == fcc00db || tag == fcc00dc {
			frames = append(frames, frameRange{offset: dataStart, length: length})
		}
		offset = chunkEnd(dataStart, length)
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}
