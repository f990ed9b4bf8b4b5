package raster

import (
	"image"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/internal/geom"
	"github.com/gogpu/memcanvas/pixop"
)

// Canvas draws into a writable buffer of color type C.
type Canvas[C comparable] struct {
	buf   *imagebuf.Writable[C]
	ops   *pixop.Strategy[C]
	plain pixop.Operations[C, C]

	// scratch for FillPolygon and FillPolygonEdges
	crossings []int
	edges     []edge

	plot   plotter[C]
	murphy *geom.Murphy
}

// New returns a canvas drawing into buf with operations from s.
// The canvas keeps using buf after Resize; views taken before are invalid.
func New[C comparable](buf *imagebuf.Writable[C], s *pixop.Strategy[C]) *Canvas[C] {
	c := &Canvas[C]{
		buf:   buf,
		ops:   s,
		plain: s.Plain(),
	}
	c.plot.canvas = c
	c.murphy = geom.NewMurphy(&c.plot)
	return c
}

// Buffer returns the destination buffer.
func (c *Canvas[C]) Buffer() *imagebuf.Writable[C] { return c.buf }

// Strategy returns the operation strategy of the canvas.
func (c *Canvas[C]) Strategy() *pixop.Strategy[C] { return c.ops }

// Width returns the width of the buffer in pixels.
func (c *Canvas[C]) Width() int { return c.buf.Width() }

// Height returns the height of the buffer in pixels.
func (c *Canvas[C]) Height() int { return c.buf.Height() }

// Bounds returns the rectangle of valid pixel coordinates.
func (c *Canvas[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.buf.Width(), c.buf.Height())
}

func (c *Canvas[C]) orPlain(ops pixop.Operations[C, C]) pixop.Operations[C, C] {
	if ops == nil {
		return c.plain
	}
	return ops
}

// DrawPixel writes one pixel if (x, y) is inside the buffer.
func (c *Canvas[C]) DrawPixel(x, y int, color C, ops pixop.Operations[C, C]) {
	if !c.buf.Check(x, y) {
		return
	}
	c.orPlain(ops).WritePixel(c.buf.At(x, y), color)
}

// FillRectangle fills x1 <= x < x2, y1 <= y < y2, clamped to the buffer.
func (c *Canvas[C]) FillRectangle(x1, y1, x2, y2 int, color C, ops pixop.Operations[C, C]) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, c.Width()), min(y2, c.Height())
	if x1 >= x2 || y1 >= y2 {
		return
	}
	ops = c.orPlain(ops)
	n := x2 - x1
	for y := y1; y < y2; y++ {
		ops.FillPixels(c.buf.At(x1, y), n, color)
	}
}

// Clear fills the whole buffer with color.
func (c *Canvas[C]) Clear(color C) {
	c.FillRectangle(0, 0, c.Width(), c.Height(), color, nil)
}

// DrawHLine draws the span x1 <= x < x2 on row y.
func (c *Canvas[C]) DrawHLine(x1, x2, y int, color C, ops pixop.Operations[C, C]) {
	if y < 0 || y >= c.Height() {
		return
	}
	x1, x2 = max(x1, 0), min(x2, c.Width())
	if x1 >= x2 {
		return
	}
	c.orPlain(ops).FillPixels(c.buf.At(x1, y), x2-x1, color)
}

// DrawVLine draws the span y1 <= y < y2 on column x.
func (c *Canvas[C]) DrawVLine(x, y1, y2 int, color C, ops pixop.Operations[C, C]) {
	if x < 0 || x >= c.Width() {
		return
	}
	y1, y2 = max(y1, 0), min(y2, c.Height())
	ops = c.orPlain(ops)
	for y := y1; y < y2; y++ {
		ops.WritePixel(c.buf.At(x, y), color)
	}
}

// DrawRectangle draws the outline of x1 <= x < x2, y1 <= y < y2.
// Every outline pixel is written once.
func (c *Canvas[C]) DrawRectangle(x1, y1, x2, y2 int, color C, ops pixop.Operations[C, C]) {
	if x1 >= x2 || y1 >= y2 {
		return
	}
	c.DrawHLine(x1, x2, y1, color, ops)
	if y2-1 > y1 {
		c.DrawHLine(x1, x2, y2-1, color, ops)
	}
	c.DrawVLine(x1, y1+1, y2-1, color, ops)
	if x2-1 > x1 {
		c.DrawVLine(x2-1, y1+1, y2-1, color, ops)
	}
}

// plotter feeds the Murphy iterator with bounds-checked pixel writes.
type plotter[C comparable] struct {
	canvas *Canvas[C]
	color  C
	ops    pixop.Operations[C, C]
}

func (p *plotter[C]) Plot(x, y int) {
	if p.canvas.buf.Check(x, y) {
		p.ops.WritePixel(p.canvas.buf.At(x, y), p.color)
	}
}

func (p *plotter[C]) FillPolygon(points []image.Point) {
	p.canvas.FillPolygon(points, p.color, p.ops)
}
