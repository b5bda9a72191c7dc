package avi

import (
	"encoding/binary"
	"fmt"
	"io"
)

type fourCC [4]byte

func (f fourCC) String() string {
	return string(f[:])
}

var (
	fccRIFF = fourCC{'R', 'I', 'F', 'F'}
	fccAVI  = fourCC{'A', 'V', 'I', ' '}
	fccLIST = fourCC{'L', 'I', 'S', 'T'}
	fccHdrl = fourCC{'h', 'd', 'r', 'l'}
	fccStrl = fourCC{'s', 't', 'r', 'l'}
	fccMovi = fourCC{'m', 'o', 'v', 'i'}
	fccAvih = fourCC{'a', 'v', 'i', 'h'}
	fccStrh = fourCC{'s', 't', 'r', 'h'}
	fccStrf = fourCC{'s', 't', 'r', 'f'}
	fccVids = fourCC{'v', 'i', 'd', 's'}

	// Frame data chunks for stream 00, the only stream tracked.
	fcc00db = fourCC{'0', '0', 'd', 'b'}
	fcc00dc = fourCC{'0', '0', 'd', 'c'}
)

// readChunkHeaderAt reads an 8-byte chunk header (4-byte tag + little-endian
// uint32 payload length) at the given file offset. Tag bytes are taken as-is,
// never byte-swapped.
func readChunkHeaderAt(r io.ReadSeeker, offset int64) (fourCC, uint32, error) {
	var buf [8]byte
	if _, err := readAt(r, offset, buf[:]); err != nil {
		return fourCC{}, 0, fmt.Errorf("chunk header at offset %d: %w", offset, ErrTruncatedStream)
	}
	var tag fourCC
	copy(tag[:], buf[0:4])
	return tag, binary.LittleEndian.Uint32(buf[4:8]), nil
}

// readFourCCAt reads a bare 4-byte tag, used for LIST sub-type tags.
func readFourCCAt(r io.ReadSeeker, offset int64) (fourCC, error) {
	var tag fourCC
	if _, err := readAt(r, offset, tag[:]); err != nil {
		return fourCC{}, fmt.Errorf("list type at offset %d: %w", offset, ErrTruncatedStream)
	}
	return tag, nil
}

// chunkEnd returns the file offset of the byte following a chunk's payload
// and padding. Chunks are padded so header+payload covers an even number of
// bytes; the pad byte is not part of the declared length.
func chunkEnd(dataStart int64, length uint32) int64 {
	return dataStart + int64(length) + int64(length&1)
}

// walkChunks iterates the chunks packed inside data, calling fn with each
// tag and payload. Iteration stops at the first chunk whose declared length
// runs past the slice.
func walkChunks(data []byte, fn func(tag fourCC, payload []byte)) {
	pos := 0
	for pos+8 <= len(data) {
		var tag fourCC
		copy(tag[:], data[pos:pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		start := pos + 8
		end := start + size
		if end > len(data) {
			return
		}
		fn(tag, data[start:end])
		if size%2 == 1 {
			end++
		}
		pos = end
	}
}

func readAt(r io.ReadSeeker, offset int64, buf []byte) (int, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(r, buf)
}
