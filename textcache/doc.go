// Package textcache provides [memcanvas.Font] implementations.
//
// A [Rasterizer] turns a string into a greyscale coverage buffer. Two
// rasterizers are included: [FaceRasterizer] draws through a
// golang.org/x/image font.Face (TrueType/OpenType or the built-in
// basicfont), and [BitmapRasterizer] stamps tinyfont bitmap fonts.
//
// [Font] wraps a rasterizer with an LRU cache of rendered runs keyed by
// the NFC-normalized text, so redrawing the same label is a lookup:
//
//	r, err := textcache.GoRegular(12)
//	if err != nil {
//	    return err
//	}
//	c, err := memcanvas.New(memcanvas.FormatBGRA, 320, 240,
//	    memcanvas.WithFont(textcache.New(r, 256)))
//
// Glyph shaping, bidi and line breaking are left to the caller; runs are
// drawn left to right on a single baseline.
package textcache
