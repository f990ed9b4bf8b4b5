package pixel

// Luminosity8 is an 8-bit greyscale color.
type Luminosity8 uint8

// Greyscale is the traits value for 1 byte per pixel luminosity buffers.
type Greyscale struct{}

var _ Traits[Luminosity8] = Greyscale{}

func (Greyscale) Format() Format     { return FormatGreyscale }
func (Greyscale) BytesPerPixel() int { return 1 }

func (Greyscale) At(data []byte, pitch, x, y int) []byte {
	return data[y*pitch+x:]
}

func (Greyscale) ReadPixel(p []byte) Luminosity8 { return Luminosity8(p[0]) }

func (Greyscale) WritePixel(p []byte, c Luminosity8) { p[0] = uint8(c) }

func (Greyscale) FillPixels(p []byte, n int, c Luminosity8) {
	if n <= 0 {
		return
	}
	row := p[:n]
	for i := range row {
		row[i] = uint8(c)
	}
}

func (Greyscale) CopyPixels(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

func (Greyscale) TransformInteger(c Luminosity8, f func(uint32) uint32) Luminosity8 {
	return Luminosity8(f(uint32(c)))
}

func (Greyscale) TransformInteger2(a, b Luminosity8, f func(a, b uint32) uint32) Luminosity8 {
	return Luminosity8(f(uint32(a), uint32(b)))
}

func (Greyscale) TransformChannels(c Luminosity8, f func(uint8) uint8) Luminosity8 {
	return Luminosity8(f(uint8(c)))
}

func (Greyscale) TransformChannels2(a, b Luminosity8, f func(a, b uint8) uint8) Luminosity8 {
	return Luminosity8(f(uint8(a), uint8(b)))
}

func (Greyscale) IsBlack(c Luminosity8) bool { return c == 0 }
func (Greyscale) IsWhite(c Luminosity8) bool { return c == 0xff }

// Import converts to luminosity; alpha is dropped.
func (Greyscale) Import(r, g, b, _ uint8) Luminosity8 {
	return Luminosity8(Luminance(r, g, b))
}

func (Greyscale) Export(c Luminosity8) (r, g, b, a uint8) {
	return uint8(c), uint8(c), uint8(c), 0xff
}
