package textcache

import (
	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

// Rasterizer renders single-line text to coverage, 0 for background and
// 255 for full ink. Implementations need not be safe for concurrent use;
// [Font] serializes calls.
type Rasterizer interface {
	// Rasterize renders text. It returns nil when the run has no size.
	Rasterize(text string) *imagebuf.Writable[pixel.Luminosity8]

	// Measure returns the size Rasterize would produce.
	Measure(text string) (width, height int)

	// Height returns the line height in pixels.
	Height() int
}

func newCoverage(width, height int) *imagebuf.Writable[pixel.Luminosity8] {
	buf := imagebuf.New[pixel.Luminosity8](pixel.Greyscale{})
	buf.Allocate(width, height)
	buf.Clear(0)
	return buf
}
