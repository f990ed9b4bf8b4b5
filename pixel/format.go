// Package pixel describes the in-memory pixel formats a canvas can draw into.
//
// Each format is a zero-size traits value that knows how to read, write,
// fill and transform pixels of one color type. Drawing code is generic over
// the color type and receives the traits value as a parameter. Per-pixel
// loops never branch on the format; the only format switch is made once,
// when an operation picks its batch kernel.
//
// Two formats are provided:
//
//	Greyscale  Luminosity8  1 byte per pixel, 0x00 black, 0xff white
//	BGRA       BGRA8        4 bytes per pixel in memory order B, G, R, A
//
// Conversions between formats are always explicit (Import/Export); nothing
// in this module converts pixels implicitly.
package pixel

// Format identifies a pixel storage format.
type Format uint8

const (
	// FormatGreyscale is 8-bit luminosity (1 byte per pixel).
	FormatGreyscale Format = iota

	// FormatBGRA is 32-bit BGRA (4 bytes per pixel, blue first in memory).
	// The alpha byte is carried along but ignored by black/white tests.
	FormatBGRA

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format stores an alpha channel.
	HasAlpha bool

	// IsGreyscale indicates if this is a greyscale format.
	IsGreyscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGreyscale: {
		BytesPerPixel: 1,
		Channels:      1,
		IsGreyscale:   true,
	},
	FormatBGRA: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes returns the number of bytes used by width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGreyscale:
		return "Greyscale"
	case FormatBGRA:
		return "BGRA"
	default:
		return "Unknown"
	}
}
