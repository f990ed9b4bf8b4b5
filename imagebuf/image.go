package imagebuf

import (
	"image"
	"image/color"

	"github.com/gogpu/memcanvas/pixel"
)

// ToImage copies the view into a standard library image, for encoding
// with image/png or golang.org/x/image/bmp.
func ToImage[C comparable](src Const[C]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, src.Width(), src.Height()))
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			r, g, b, a := src.traits.Export(src.ReadPixel(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// FromImage converts a standard library image into a new buffer of the
// given format.
func FromImage[C comparable](traits pixel.Traits[C], img image.Image) (*Writable[C], error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrInvalidDimensions
	}

	buf := New[C](traits)
	buf.Allocate(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.WritePixel(x, y, traits.Import(c.R, c.G, c.B, c.A))
		}
	}
	return buf, nil
}
