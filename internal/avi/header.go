package avi

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	riffHeaderSize   = 12
	avihMinSize      = 40
	strhMinSize      = 8
	bitmapHeaderSize = 40
)

type mainHeader struct {
	microSecPerFrame uint32
	totalFrames      uint32
	streams          uint32
	width            uint32
	height           uint32
}

type bitmapHeader struct {
	width       int32
	height      int32
	bitCount    uint16
	compression uint32
}

// RGB is one palette entry. Palette quads are stored on disk as
// blue, green, red, reserved; the reserved byte is dropped on read.
type RGB struct {
	R, G, B uint8
}

// headers is the accumulator produced by one pass over the chunk tree up to
// the movi list. The movi payload itself is left unread for the indexer.
type headers struct {
	main       mainHeader
	haveMain   bool
	bitmap     bitmapHeader
	haveBitmap bool
	palette    []RGB
	moviOffset int64 // first byte after the movi list's sub-type tag
	moviSize   int64 // movi payload length, sub-type tag excluded
}

// extractHeaders walks the top-level chunk tree of an AVI file: verifies the
// RIFF/"AVI " signature, deserializes the hdrl list (avih plus the first
// video stream's strh/strf and optional palette), and records where the movi
// payload begins. Lists other than hdrl and movi, and unrecognized chunks,
// are skipped wholesale.
func extractHeaders(r io.ReadSeeker, size int64) (headers, error) {
	var acc headers

	sig := make([]byte, riffHeaderSize)
	if _, err := readAt(r, 0, sig); err != nil {
		return acc, fmt.Errorf("%w: file shorter than a RIFF header", ErrInvalidContainer)
	}
	if string(sig[0:4]) != fccRIFF.String() || string(sig[8:12]) != fccAVI.String() {
		return acc, fmt.Errorf("%w: signature %q/%q", ErrInvalidContainer, sig[0:4], sig[8:12])
	}

	offset := int64(riffHeaderSize)
	for offset+8 <= size && acc.moviOffset == 0 {
		tag, length, err := readChunkHeaderAt(r, offset)
		if err != nil {
			return acc, err
		}
		dataStart := offset + 8
		if dataStart+int64(length) > size {
			return acc, fmt.Errorf("chunk %q at offset %d: declared length %d past end of file: %w",
				tag, offset, length, ErrTruncatedStream)
		}
		if tag == fccLIST && length >= 4 {
			listType, err := readFourCCAt(r, dataStart)
			if err != nil {
				return acc, err
			}
			switch listType {
			case fccHdrl:
				listData := make([]byte, length-4)
				if _, err := readAt(r, dataStart+4, listData); err != nil {
					return acc, fmt.Errorf("hdrl list at offset %d: %w", offset, ErrTruncatedStream)
				}
				parseHeaderList(listData, &acc)
			case fccMovi:
				acc.moviOffset = dataStart + 4
				acc.moviSize = int64(length) - 4
			}
		}
		offset = chunkEnd(dataStart, length)
	}

	if !acc.haveMain || !acc.haveBitmap {
		return acc, fmt.Errorf("%w: avih=%v video strf=%v", ErrMissingHeader, acc.haveMain, acc.haveBitmap)
	}
	return acc, nil
}

func parseHeaderList(data []byte, acc *headers) {
	walkChunks(data, func(tag fourCC, payload []byte) {
		switch tag {
		case fccAvih:
			if len(payload) < avihMinSize {
				return
			}
			acc.main.microSecPerFrame = binary.LittleEndian.Uint32(payload[0:4])
			acc.main.totalFrames = binary.LittleEndian.Uint32(payload[16:20])
			acc.main.streams = binary.LittleEndian.Uint32(payload[24:28])
			acc.main.width = binary.LittleEndian.Uint32(payload[32:36])
			acc.main.height = binary.LittleEndian.Uint32(payload[36:40])
			acc.haveMain = true
		case fccLIST:
			if len(payload) < 4 {
				return
			}
			var listType fourCC
			copy(listType[:], payload[0:4])
			if listType == fccStrl {
				parseStreamList(payload[4:], acc)
			}
		}
	})
}

// parseStreamList handles one strl list. Only the first video stream is
// captured; later video streams are walked but their data is discarded.
func parseStreamList(data []byte, acc *headers) {
	isVideo := false
	walkChunks(data, func(tag fourCC, payload []byte) {
		switch tag {
		case fccStrh:
			if len(payload) < strhMinSize {
				return
			}
			var fccType fourCC
			copy(fccType[:], payload[0:4])
			isVideo = fccType == fccVids
		case fccStrf:
			if !isVideo || acc.haveBitmap || len(payload) < bitmapHeaderSize {
				return
			}
			acc.bitmap.width = int32(binary.LittleEndian.Uint32(payload[4:8]))
			acc.bitmap.height = int32(binary.LittleEndian.Uint32(payload[8:12]))
			acc.bitmap.bitCount = binary.LittleEndian.Uint16(payload[14:16])
			acc.bitmap.compression = binary.LittleEndian.Uint32(payload[16:20])
			acc.haveBitmap = true
			if acc.bitmap.bitCount == 8 {
				acc.palette = parsePalette(payload[bitmapHeaderSize:])
			}
		}
	})
}

// parsePalette reads the 4-byte quads trailing an 8-bit bitmap header.
// A partial trailing quad is dropped, not an error.
func parsePalette(data []byte) []RGB {
	n := len(data) / 4
	if n == 0 {
		return nil
	}
	palette := make([]RGB, n)
	for i := 0; i < n; i++ {
		palette[i] = RGB{
			B: data[i*4+0],
			G: data[i*4+1],
			R: data[i*4+2],
		}
	}
	return palette
}
