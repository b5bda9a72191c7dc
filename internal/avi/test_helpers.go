package avi

import "encoding/binary"

// Builders for synthetic AVI byte streams used across the package tests.

func testChunk(tag string, payload []byte) []byte {
	buf := make([]byte, 0, 8+len(payload)+1)
	buf = append(buf, tag...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	buf = append(buf, payload...)
	if len(payload)%2 == 1 {
		buf = append(buf, 0)
	}
	return buf
}

func testList(subtype string, chunks ...[]byte) []byte {
	payload := []byte(subtype)
	for _, c := range chunks {
		payload = append(payload, c...)
	}
	return testChunk("LIST", payload)
}

func testRIFF(chunks ...[]byte) []byte {
	payload := []byte("AVI ")
	for _, c := range chunks {
		payload = append(payload, c...)
	}
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...)
}

func testAvih(microSecPerFrame, totalFrames, width, height uint32) []byte {
	p := make([]byte, 56)
	binary.LittleEndian.PutUint32(p[0:4], microSecPerFrame)
	binary.LittleEndian.PutUint32(p[16:20], totalFrames)
	binary.LittleEndian.PutUint32(p[24:28], 1)
	binary.LittleEndian.PutUint32(p[32:36], width)
	binary.LittleEndian.PutUint32(p[36:40], height)
	return testChunk("avih", p)
}

func testStrh(fccType string) []byte {
	p := make([]byte, 56)
	copy(p[0:4], fccType)
	return testChunk("strh", p)
}

// testStrf builds a video format chunk: 40-byte bitmap header plus raw
// palette quad bytes.
func testStrf(width, height int32, bitCount uint16, compression uint32, palette []byte) []byte {
	p := make([]byte, 40, 40+len(palette))
	binary.LittleEndian.PutUint32(p[0:4], 40)
	binary.LittleEndian.PutUint32(p[4:8], uint32(width))
	binary.LittleEndian.PutUint32(p[8:12], uint32(height))
	binary.LittleEndian.PutUint16(p[12:14], 1)
	binary.LittleEndian.PutUint16(p[14:16], bitCount)
	binary.LittleEndian.PutUint32(p[16:20], compression)
	p = append(p, palette...)
	return testChunk("strf", p)
}

// paletteQuads packs RGB entries into on-disk B,G,R,reserved quads.
func paletteQuads(entries ...RGB) []byte {
	out := make([]byte, 0, len(entries)*4)
	for _, e := range entries {
		out = append(out, e.B, e.G, e.R, 0)
	}
	return out
}

type testAVI struct {
	width, height    int32
	bitCount         uint16
	compression      uint32
	microSecPerFrame uint32
	totalFrames      uint32
	palette          []byte   // raw quad bytes appended to strf
	frames           [][]byte // payloads for 00dc chunks
	moviExtra        [][]byte // raw chunks placed in movi before the frames
}

// buildAVI assembles a complete single-video-stream file.
func buildAVI(a testAVI) []byte {
	hdrl := testList("hdrl",
		testAvih(a.microSecPerFrame, a.totalFrames, uint32(a.width), uint32(a.height)),
		testList("strl",
			testStrh("vids"),
			testStrf(a.width, a.height, a.bitCount, a.compression, a.palette),
		),
	)
	movi := a.moviExtra
	for _, f := range a.frames {
		movi = append(movi, testChunk("00dc", f))
	}
	return testRIFF(hdrl, testList("movi", movi...))
}
