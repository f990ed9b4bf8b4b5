package memcanvas

import "github.com/gogpu/memcanvas/internal/debug"

// Bitmap blits. The source must have the format of the canvas (see
// Bitmap); rectangles are clipped against both the source and the
// canvas.

func (c *Canvas) copyOp(x, y, w, h int, src Bitmap, sx, sy int, op blitOp) {
	c.s.copyBitmap(x, y, w, h, src, sx, sy, op)
}

// stretchOp scales src (sx, sy, sw, sh) onto (dx, dy, dw, dh), copying
// when the sizes match.
func (c *Canvas) stretchOp(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, op blitOp) {
	if dw == sw && dh == sh {
		c.s.copyBitmap(dx, dy, dw, dh, src, sx, sy, op)
		return
	}
	c.s.stretchBitmap(dx, dy, dw, dh, src, sx, sy, sw, sh, op)
}

// DrawBitmap copies all of src with its top-left corner at (x, y).
func (c *Canvas) DrawBitmap(x, y int, src Bitmap) {
	c.Copy(x, y, src.Width(), src.Height(), src, 0, 0)
}

// Copy copies the w×h rectangle of src at (sx, sy) to (x, y).
func (c *Canvas) Copy(x, y, w, h int, src Bitmap, sx, sy int) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitCopy})
}

// CopyTransparentWhite is Copy leaving the pixels under white source
// pixels unchanged.
func (c *Canvas) CopyTransparentWhite(x, y, w, h int, src Bitmap, sx, sy int) {
	c.CopyTransparent(x, y, w, h, src, sx, sy, White)
}

// CopyTransparent is Copy skipping source pixels equal to key. On BGRA
// canvases the alpha channel takes part in the comparison.
func (c *Canvas) CopyTransparent(x, y, w, h int, src Bitmap, sx, sy int, key Color) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitTransparent, key: key})
}

// CopyNot writes the complement of the source.
func (c *Canvas) CopyNot(x, y, w, h int, src Bitmap, sx, sy int) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitNot})
}

// CopyOr writes canvas | source.
func (c *Canvas) CopyOr(x, y, w, h int, src Bitmap, sx, sy int) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitOr})
}

// CopyNotOr writes canvas | ^source.
func (c *Canvas) CopyNotOr(x, y, w, h int, src Bitmap, sx, sy int) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitNotOr})
}

// CopyAnd writes canvas & source.
func (c *Canvas) CopyAnd(x, y, w, h int, src Bitmap, sx, sy int) {
	c.copyOp(x, y, w, h, src, sx, sy, blitOp{mode: blitAnd})
}

// Stretch scales the sw×sh rectangle of src at (sx, sy) onto the dw×dh
// rectangle at (dx, dy) by nearest neighbour.
func (c *Canvas) Stretch(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int) {
	c.stretchOp(dx, dy, dw, dh, src, sx, sy, sw, sh, blitOp{mode: blitCopy})
}

// StretchBitmap scales all of src onto the dw×dh rectangle at (dx, dy).
func (c *Canvas) StretchBitmap(dx, dy, dw, dh int, src Bitmap) {
	c.Stretch(dx, dy, dw, dh, src, 0, 0, src.Width(), src.Height())
}

// StretchNot is Stretch writing the complement of the source.
func (c *Canvas) StretchNot(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int) {
	c.stretchOp(dx, dy, dw, dh, src, sx, sy, sw, sh, blitOp{mode: blitNot})
}

// StretchTransparentWhite is Stretch skipping white source pixels.
func (c *Canvas) StretchTransparentWhite(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int) {
	c.stretchOp(dx, dy, dw, dh, src, sx, sy, sw, sh, blitOp{mode: blitTransparent, key: White})
}

// StretchMono scales a greyscale bitmap holding black ink on paper, such
// as one from LoadMonoBitmap, drawing black pixels in fg and all others
// in bg. It works on canvases of any format.
func (c *Canvas) StretchMono(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, fg, bg Color) {
	v, ok := src.Greyscale()
	if !ok {
		debug.Assert(!src.IsDefined(), "StretchMono needs a greyscale bitmap")
		if src.IsDefined() {
			logSkipped(msgMonoSkip, FormatGreyscale, src.Format())
		}
		return
	}
	c.s.stretchMono(dx, dy, dw, dh, v, sx, sy, sw, sh, fg, bg)
}

// AlphaBlend draws src over the canvas with constant opacity alpha,
// scaling when the sizes differ.
func (c *Canvas) AlphaBlend(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, alpha uint8) {
	c.stretchOp(dx, dy, dw, dh, src, sx, sy, sw, sh, blitOp{mode: blitAlpha, alpha: alpha})
}

// AlphaBlendNotWhite is AlphaBlend leaving the pixels under white source
// pixels unchanged.
func (c *Canvas) AlphaBlendNotWhite(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, alpha uint8) {
	c.stretchOp(dx, dy, dw, dh, src, sx, sy, sw, sh, blitOp{mode: blitAlphaNotWhite, alpha: alpha})
}
