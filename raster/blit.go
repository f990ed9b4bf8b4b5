package raster

import (
	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
	"github.com/gogpu/memcanvas/pixop"
)

// CopyRectangle copies the w×h block at (sx, sy) of src to (x, y) of the
// canvas through ops. The block is clipped against both buffers.
func CopyRectangle[C, S comparable](c *Canvas[C], x, y, w, h int, src imagebuf.Const[S], sx, sy int, ops pixop.Operations[C, S]) {
	if !src.IsDefined() || w <= 0 || h <= 0 {
		return
	}

	var ok bool
	if sx, w, x, ok = clipAxis(sx, w, src.Width(), x); !ok {
		return
	}
	if sy, h, y, ok = clipAxis(sy, h, src.Height(), y); !ok {
		return
	}
	if x, w, sx, ok = clipAxis(x, w, c.Width(), sx); !ok {
		return
	}
	if y, h, sy, ok = clipAxis(y, h, c.Height(), sy); !ok {
		return
	}

	for row := 0; row < h; row++ {
		ops.CopyPixels(c.buf.At(x, y+row), src.At(sx, sy+row), w)
	}
}

// ScaleRectangle copies the sw×sh block at (sx, sy) of src into the
// dw×dh block at (dx, dy) with nearest neighbour sampling.
//
// Source positions advance with integer accumulators. When ops
// overwrites the destination, a destination row that maps to the same
// source row as the one above is copied from it instead of resampled.
func ScaleRectangle[C, S comparable](c *Canvas[C], dx, dy, dw, dh int, src imagebuf.Const[S], sx, sy, sw, sh int, ops pixop.Operations[C, S]) {
	if !src.IsDefined() {
		return
	}

	var ok bool
	if sx, sw, dx, dw, ok = clipScaleAxis(sx, sw, src.Width(), dx, dw); !ok {
		return
	}
	if sy, sh, dy, dh, ok = clipScaleAxis(sy, sh, src.Height(), dy, dh); !ok {
		return
	}
	if dx, dw, sx, sw, ok = clipScaleAxis(dx, dw, c.Width(), sx, sw); !ok {
		return
	}
	if dy, dh, sy, sh, ok = clipScaleAxis(dy, dh, c.Height(), sy, sh); !ok {
		return
	}

	traits := src.Traits()
	bpp := c.buf.Traits().BytesPerPixel()
	rowBytes := dw * bpp
	reuse := pixop.Overwrites(ops)

	srcY := sy
	prevY := -1
	acc := 0
	for row := 0; row < dh; row++ {
		d := c.buf.At(dx, dy+row)
		if reuse && srcY == prevY {
			copy(d[:rowBytes], c.buf.At(dx, dy+row-1)[:rowBytes])
		} else {
			scaleRow[C, S](d, bpp, src.Row(srcY), traits, sx, sw, dw, ops)
		}
		prevY = srcY

		acc += sh
		for acc >= dh {
			acc -= dh
			srcY++
		}
	}
}

func scaleRow[C, S comparable](d []byte, bpp int, s []byte, traits pixel.Traits[S], sx, sw, dw int, ops pixop.Operations[C, S]) {
	sbpp := traits.BytesPerPixel()
	x := sx
	acc := 0
	for i := 0; i < dw; i++ {
		ops.WritePixel(d[i*bpp:], traits.ReadPixel(s[x*sbpp:]))
		acc += sw
		for acc >= dw {
			acc -= dw
			x++
		}
	}
}

// Copy is CopyRectangle for a source of the canvas format. A nil ops
// copies plainly.
func (c *Canvas[C]) Copy(x, y, w, h int, src imagebuf.Const[C], sx, sy int, ops pixop.Operations[C, C]) {
	CopyRectangle(c, x, y, w, h, src, sx, sy, c.orPlain(ops))
}

// Stretch is ScaleRectangle for a source of the canvas format.
func (c *Canvas[C]) Stretch(dx, dy, dw, dh int, src imagebuf.Const[C], sx, sy, sw, sh int, ops pixop.Operations[C, C]) {
	ScaleRectangle(c, dx, dy, dw, dh, src, sx, sy, sw, sh, c.orPlain(ops))
}

// CopyText stamps a rendered glyph run at (x, y). Glyph values are
// coverage: 0 leaves the background, 255 is full foreground. With
// opaque set the background is painted as well.
func (c *Canvas[C]) CopyText(x, y int, glyphs imagebuf.Const[pixel.Luminosity8], fg, bg C, opaque bool) {
	var ops pixop.Operations[C, pixel.Luminosity8]
	if opaque {
		ops = c.ops.OpaqueAlpha(bg, fg)
	} else {
		ops = c.ops.ColoredAlpha(fg)
	}
	CopyRectangle(c, x, y, glyphs.Width(), glyphs.Height(), glyphs, 0, 0, ops)
}
