package textcache

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

// BitmapRasterizer renders text with a tinyfont bitmap font. Bitmap
// glyphs have no anti-aliasing, so coverage is either 0 or 255.
type BitmapRasterizer struct {
	font    tinyfont.Fonter
	ascent  int
	descent int
	height  int
}

// NewBitmapRasterizer wraps f. The baseline is placed below the tallest
// printable ASCII glyph.
func NewBitmapRasterizer(f tinyfont.Fonter) *BitmapRasterizer {
	r := &BitmapRasterizer{font: f}
	for c := ' '; c <= '~'; c++ {
		info := f.GetGlyph(c).Info()
		r.ascent = max(r.ascent, -int(info.YOffset))
		r.descent = max(r.descent, int(info.Height)+int(info.YOffset))
	}
	r.height = max(int(f.GetYAdvance()), r.ascent+r.descent)
	return r
}

// Proggy returns a rasterizer for the ProggyTinySZ 8pt font.
func Proggy() *BitmapRasterizer {
	return NewBitmapRasterizer(&proggy.TinySZ8pt7b)
}

// Height returns the font line advance.
func (r *BitmapRasterizer) Height() int { return r.height }

// Measure returns the summed glyph advances and the line height.
func (r *BitmapRasterizer) Measure(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	_, outbox := tinyfont.LineWidth(r.font, text)
	return int(outbox), r.height
}

// Rasterize stamps text into a greyscale buffer.
func (r *BitmapRasterizer) Rasterize(text string) *imagebuf.Writable[pixel.Luminosity8] {
	w, h := r.Measure(text)
	if w <= 0 || h <= 0 {
		return nil
	}
	g := &glyphBuffer{buf: newCoverage(w, h)}
	tinyfont.WriteLine(g, r.font, 0, int16(r.ascent), text, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return g.buf
}

// glyphBuffer adapts a coverage buffer to the display interface tinyfont
// draws into.
type glyphBuffer struct {
	buf *imagebuf.Writable[pixel.Luminosity8]
}

var _ drivers.Displayer = (*glyphBuffer)(nil)

func (g *glyphBuffer) Size() (x, y int16) {
	return int16(g.buf.Width()), int16(g.buf.Height())
}

func (g *glyphBuffer) SetPixel(x, y int16, c color.RGBA) {
	if !g.buf.Check(int(x), int(y)) {
		return
	}
	g.buf.WritePixel(int(x), int(y), pixel.Luminosity8(pixel.Luminance(c.R, c.G, c.B)))
}

func (g *glyphBuffer) Display() error { return nil }
