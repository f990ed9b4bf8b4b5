package memcanvas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

// Format is the pixel format of a canvas or bitmap.
type Format = pixel.Format

// Supported pixel formats.
const (
	FormatGreyscale = pixel.FormatGreyscale
	FormatBGRA      = pixel.FormatBGRA
)

// Bitmap is a read-only image in one pixel format, used as the source of
// blits. A canvas only draws bitmaps of its own format; pixels are never
// converted implicitly. StretchMono is the exception: it reads greyscale
// bitmaps on any canvas.
//
// The zero Bitmap is undefined and draws nothing.
type Bitmap struct {
	format pixel.Format
	grey   imagebuf.Const[pixel.Luminosity8]
	bgra   imagebuf.Const[pixel.BGRA8]
}

// NewGreyscaleBitmap wraps a greyscale view.
func NewGreyscaleBitmap(v imagebuf.Const[pixel.Luminosity8]) Bitmap {
	return Bitmap{format: FormatGreyscale, grey: v}
}

// NewBGRABitmap wraps a BGRA view.
func NewBGRABitmap(v imagebuf.Const[pixel.BGRA8]) Bitmap {
	return Bitmap{format: FormatBGRA, bgra: v}
}

// BitmapFromImage converts img into a new bitmap of the given format.
func BitmapFromImage(format Format, img image.Image) (Bitmap, error) {
	switch format {
	case FormatGreyscale:
		buf, err := imagebuf.FromImage[pixel.Luminosity8](pixel.Greyscale{}, img)
		if err != nil {
			return Bitmap{}, fmt.Errorf("memcanvas: bitmap from image: %w", err)
		}
		return NewGreyscaleBitmap(buf.Const()), nil
	case FormatBGRA:
		buf, err := imagebuf.FromImage[pixel.BGRA8](pixel.BGRA{}, img)
		if err != nil {
			return Bitmap{}, fmt.Errorf("memcanvas: bitmap from image: %w", err)
		}
		return NewBGRABitmap(buf.Const()), nil
	default:
		return Bitmap{}, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
}

// LoadMonoBitmap reads a 1 bit per pixel bitmap (rows padded to a byte,
// most significant bit first, set bit is ink) into a greyscale bitmap of
// black ink on white paper. StretchMono maps the two to any colors.
func LoadMonoBitmap(r io.Reader, width, height int) (Bitmap, error) {
	buf, err := imagebuf.UnpackMono(r, width, height)
	if err != nil {
		return Bitmap{}, fmt.Errorf("memcanvas: load mono bitmap: %w", err)
	}
	return NewGreyscaleBitmap(buf.Const()), nil
}

// Format returns the pixel format of the bitmap.
func (b Bitmap) Format() Format { return b.format }

// IsDefined reports whether the bitmap holds pixels.
func (b Bitmap) IsDefined() bool {
	switch b.format {
	case FormatGreyscale:
		return b.grey.IsDefined()
	case FormatBGRA:
		return b.bgra.IsDefined()
	}
	return false
}

// Width returns the width in pixels.
func (b Bitmap) Width() int {
	if b.format == FormatBGRA {
		return b.bgra.Width()
	}
	return b.grey.Width()
}

// Height returns the height in pixels.
func (b Bitmap) Height() int {
	if b.format == FormatBGRA {
		return b.bgra.Height()
	}
	return b.grey.Height()
}

// Greyscale returns the greyscale view, if the bitmap has that format.
func (b Bitmap) Greyscale() (imagebuf.Const[pixel.Luminosity8], bool) {
	return b.grey, b.format == FormatGreyscale && b.grey.IsDefined()
}

// BGRA returns the BGRA view, if the bitmap has that format.
func (b Bitmap) BGRA() (imagebuf.Const[pixel.BGRA8], bool) {
	return b.bgra, b.format == FormatBGRA && b.bgra.IsDefined()
}

// Sub returns the part of the bitmap at (x, y) of the given size, clipped
// to the bitmap.
func (b Bitmap) Sub(x, y, width, height int) Bitmap {
	switch b.format {
	case FormatGreyscale:
		b.grey = b.grey.Sub(x, y, width, height)
	case FormatBGRA:
		b.bgra = b.bgra.Sub(x, y, width, height)
	}
	return b
}

// Image returns a copy of the bitmap as an image.NRGBA.
func (b Bitmap) Image() *image.NRGBA {
	if b.format == FormatBGRA {
		return imagebuf.ToImage(b.bgra)
	}
	return imagebuf.ToImage(b.grey)
}

// viewOf returns the bitmap as a view of color type C, or false if the
// formats differ.
func viewOf[C comparable](b Bitmap) (imagebuf.Const[C], bool) {
	var v any
	switch b.format {
	case FormatGreyscale:
		v = b.grey
	case FormatBGRA:
		v = b.bgra
	}
	c, ok := v.(imagebuf.Const[C])
	return c, ok && c.IsDefined()
}
