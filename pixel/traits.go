package pixel

// Traits is the set of primitive pixel accessors for one color type C.
//
// Pixel addresses are byte slices starting at the pixel; bulk operations
// take a pixel count and walk the slice in steps of BytesPerPixel.
// Implementations are stateless and safe for concurrent use.
type Traits[C comparable] interface {
	// Format returns the tag of this pixel format.
	Format() Format

	// BytesPerPixel returns the size of one pixel in bytes.
	BytesPerPixel() int

	// At returns the slice of data starting at pixel (x, y) of a buffer
	// with the given pitch (bytes per row).
	At(data []byte, pitch, x, y int) []byte

	ReadPixel(p []byte) C
	WritePixel(p []byte, c C)

	// FillPixels writes c into n consecutive pixels.
	FillPixels(p []byte, n int, c C)

	// CopyPixels copies n pixels from src to dst. The ranges must not overlap.
	CopyPixels(dst, src []byte, n int)

	// TransformInteger applies f to the color as one packed integer.
	TransformInteger(c C, f func(uint32) uint32) C

	// TransformInteger2 applies f to two colors as packed integers.
	TransformInteger2(a, b C, f func(a, b uint32) uint32) C

	// TransformChannels applies f to every color channel.
	TransformChannels(c C, f func(uint8) uint8) C

	// TransformChannels2 applies f channel-wise to a and b. The alpha
	// channel, if any, is taken from a.
	TransformChannels2(a, b C, f func(a, b uint8) uint8) C

	IsBlack(c C) bool
	IsWhite(c C) bool

	// Import converts a non-premultiplied RGBA color into this format.
	Import(r, g, b, a uint8) C

	// Export converts a color of this format into non-premultiplied RGBA.
	Export(c C) (r, g, b, a uint8)
}

// Luminance returns the 8-bit luminosity of an RGB color.
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
