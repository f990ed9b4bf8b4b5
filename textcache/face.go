package textcache

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

// FaceRasterizer renders text with a font.Face. The baseline sits at the
// face ascent from the top of the run.
type FaceRasterizer struct {
	face    font.Face
	ascent  int
	descent int
	height  int
}

// NewFaceRasterizer wraps face. The face must not be used elsewhere while
// the rasterizer is in use; font.Face implementations are not safe for
// concurrent use.
func NewFaceRasterizer(face font.Face) *FaceRasterizer {
	m := face.Metrics()
	r := &FaceRasterizer{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}
	r.height = max(m.Height.Ceil(), r.ascent+r.descent)
	return r
}

// Basic returns a rasterizer for the fixed 7x13 basicfont face.
func Basic() *FaceRasterizer {
	return NewFaceRasterizer(basicfont.Face7x13)
}

// GoRegular returns a rasterizer for the Go Regular font at size points
// and 72 DPI, so one point is one pixel.
func GoRegular(size float64) (*FaceRasterizer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("textcache: parse goregular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("textcache: new face: %w", err)
	}
	return NewFaceRasterizer(face), nil
}

// Height returns the face line height.
func (r *FaceRasterizer) Height() int { return r.height }

// Measure returns the advance width of text and the ascent plus descent.
func (r *FaceRasterizer) Measure(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	return font.MeasureString(r.face, text).Ceil(), r.ascent + r.descent
}

// Rasterize draws text into an alpha mask and copies the mask into a
// greyscale buffer.
func (r *FaceRasterizer) Rasterize(text string) *imagebuf.Writable[pixel.Luminosity8] {
	w, h := r.Measure(text)
	if w <= 0 || h <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(0, r.ascent),
	}
	d.DrawString(text)

	buf := newCoverage(w, h)
	for y := 0; y < h; y++ {
		copy(buf.Row(y), mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}
	return buf
}
