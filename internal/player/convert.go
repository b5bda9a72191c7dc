package player

import "github.com/adajani/go-aviplay/internal/avi"

// rgbaFromFrame expands a decoded frame into the tightly packed RGBA bytes
// the texture upload expects. dst must hold Width*Height*4 bytes.
func rgbaFromFrame(dst []byte, frame *avi.Frame) {
	di := 0
	for y := 0; y < frame.Height; y++ {
		row := frame.Pix[y*frame.Stride:]
		switch frame.Format {
		case avi.FrameRGB:
			for x := 0; x < frame.Width; x++ {
				dst[di+0] = row[x*3+0]
				dst[di+1] = row[x*3+1]
				dst[di+2] = row[x*3+2]
				dst[di+3] = 0xFF
				di += 4
			}
		case avi.FrameRGB565:
			for x := 0; x < frame.Width; x++ {
				v := uint16(row[x*2]) | uint16(row[x*2+1])<<8
				dst[di+0] = uint8(v>>11) << 3
				dst[di+1] = uint8(v>>5&0x3F) << 2
				dst[di+2] = uint8(v&0x1F) << 3
				dst[di+3] = 0xFF
				di += 4
			}
		case avi.FrameRGBA:
			copy(dst[di:di+frame.Width*4], row[:frame.Width*4])
			di += frame.Width * 4
		}
	}
}
