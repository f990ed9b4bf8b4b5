package memcanvas

import (
	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

// Font supplies rasterized text. The canvas never rasterizes glyphs; it
// stamps the coverage a Font returns. The textcache package provides
// implementations backed by golang.org/x/image faces and tinyfont bitmap
// fonts.
type Font interface {
	// Render returns the coverage of text as a greyscale buffer: 0 is
	// background, 255 is full ink. ok is false if nothing is drawn, for
	// example for empty text. The buffer must stay valid until the next
	// Render call on the same Font.
	Render(text string) (run imagebuf.Const[pixel.Luminosity8], ok bool)

	// TextSize returns the size Render would produce, without rendering.
	TextSize(text string) (width, height int)

	// Height returns the line height in pixels.
	Height() int
}
