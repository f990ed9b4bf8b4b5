package pixel

import "encoding/binary"

// BGRA8 is a 32-bit color stored as B, G, R, A in memory.
type BGRA8 struct {
	B, G, R, A uint8
}

// Uint32 packs the color little-endian, matching its memory layout.
func (c BGRA8) Uint32() uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16 | uint32(c.A)<<24
}

// BGRA8FromUint32 unpacks a little-endian packed color.
func BGRA8FromUint32(v uint32) BGRA8 {
	return BGRA8{B: uint8(v), G: uint8(v >> 8), R: uint8(v >> 16), A: uint8(v >> 24)}
}

// BGRA is the traits value for 4 bytes per pixel BGRA buffers.
type BGRA struct{}

var _ Traits[BGRA8] = BGRA{}

func (BGRA) Format() Format     { return FormatBGRA }
func (BGRA) BytesPerPixel() int { return 4 }

func (BGRA) At(data []byte, pitch, x, y int) []byte {
	return data[y*pitch+x*4:]
}

func (BGRA) ReadPixel(p []byte) BGRA8 {
	_ = p[3]
	return BGRA8{B: p[0], G: p[1], R: p[2], A: p[3]}
}

func (BGRA) WritePixel(p []byte, c BGRA8) {
	_ = p[3]
	p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
}

func (BGRA) FillPixels(p []byte, n int, c BGRA8) {
	if n <= 0 {
		return
	}
	row := p[:n*4]
	binary.LittleEndian.PutUint32(row, c.Uint32())
	// Double the filled prefix until the run is complete.
	for filled := 4; filled < len(row); filled *= 2 {
		copy(row[filled:], row[:filled])
	}
}

func (BGRA) CopyPixels(dst, src []byte, n int) {
	copy(dst[:n*4], src[:n*4])
}

func (BGRA) TransformInteger(c BGRA8, f func(uint32) uint32) BGRA8 {
	return BGRA8FromUint32(f(c.Uint32()))
}

func (BGRA) TransformInteger2(a, b BGRA8, f func(a, b uint32) uint32) BGRA8 {
	return BGRA8FromUint32(f(a.Uint32(), b.Uint32()))
}

func (BGRA) TransformChannels(c BGRA8, f func(uint8) uint8) BGRA8 {
	return BGRA8{B: f(c.B), G: f(c.G), R: f(c.R), A: c.A}
}

func (BGRA) TransformChannels2(a, b BGRA8, f func(a, b uint8) uint8) BGRA8 {
	return BGRA8{B: f(a.B, b.B), G: f(a.G, b.G), R: f(a.R, b.R), A: a.A}
}

func (BGRA) IsBlack(c BGRA8) bool { return c.R == 0 && c.G == 0 && c.B == 0 }

func (BGRA) IsWhite(c BGRA8) bool { return c.R == 0xff && c.G == 0xff && c.B == 0xff }

func (BGRA) Import(r, g, b, a uint8) BGRA8 {
	return BGRA8{B: b, G: g, R: r, A: a}
}

func (BGRA) Export(c BGRA8) (r, g, b, a uint8) {
	return c.R, c.G, c.B, c.A
}
