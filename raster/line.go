package raster

import (
	"image"

	"github.com/gogpu/memcanvas/internal/geom"
	"github.com/gogpu/memcanvas/pixop"
)

func lineLength(x1, y1, x2, y2 int) int {
	return max(abs(x2-x1), abs(y2-y1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws a one pixel wide line including both endpoints.
//
// Only the pixels of the full line's walk that fall inside the buffer
// are written, so clipping never moves a pixel. The dash pattern is
// applied from its current position and returned advanced by the length
// of the unclipped line, so the next segment of a polyline continues the
// pattern. Pass geom.Solid() for solid lines.
func (c *Canvas[C]) DrawLine(x1, y1, x2, y2 int, color C, ops pixop.Operations[C, C], dash geom.Dash) geom.Dash {
	b := geom.NewBresenham(x1, y1, x2, y2)
	total := b.Remaining()
	first, last, ok := clipSteps(&b, c.Bounds())
	if !ok {
		return dash.Advance(total)
	}

	ops = c.orPlain(ops)
	d := dash.Advance(first)
	solid := d.IsSolid()

	b.Seek(first)
	for i := 0; i <= last-first; i++ {
		if solid || d.On(i) {
			ops.WritePixel(c.buf.At(b.X, b.Y), color)
		}
		b.Next()
	}
	return dash.Advance(total)
}

// DrawThickLine draws a line of the given width with the Murphy
// algorithm. Widths of one or less fall back to DrawLine; a zero length
// line is drawn as a filled square of side width.
func (c *Canvas[C]) DrawThickLine(x1, y1, x2, y2, width int, color C, ops pixop.Operations[C, C], dash geom.Dash) geom.Dash {
	if width <= 1 {
		return c.DrawLine(x1, y1, x2, y2, color, ops, dash)
	}
	if x1 == x2 && y1 == y2 {
		c.fillSquare(x1, y1, width, color, ops)
		return dash
	}
	return c.wideSegment(x1, y1, x2, y2, width, 0, color, ops, dash)
}

func (c *Canvas[C]) fillSquare(x, y, width int, color C, ops pixop.Operations[C, C]) {
	r := width / 2
	c.FillRectangle(x-r, y-r, x-r+width, y-r+width, color, ops)
}

// wideSegment clips the segment against the buffer grown by the line
// width, so the rails and line caps near the border survive clipping.
func (c *Canvas[C]) wideSegment(x1, y1, x2, y2, width, miter int, color C, ops pixop.Operations[C, C], dash geom.Dash) geom.Dash {
	total := lineLength(x1, y1, x2, y2)
	cx1, cy1, cx2, cy2, ok := ClipLine(x1, y1, x2, y2, c.Bounds().Inset(-width))
	if !ok {
		c.murphy.Reset()
		return dash.Advance(total)
	}

	c.plot.color = color
	c.plot.ops = c.orPlain(ops)
	d := dash.Advance(lineLength(x1, y1, cx1, cy1))
	c.murphy.Wideline(cx1, cy1, cx2, cy2, width, miter, d)
	return dash.Advance(total)
}

// DrawPolyline draws connected segments through points; with loop set
// the last point is joined to the first. Thick segments are mitered to
// their predecessor and the dash pattern runs continuously along the
// whole polyline.
func (c *Canvas[C]) DrawPolyline(points []image.Point, loop bool, width int, color C, ops pixop.Operations[C, C], dash geom.Dash) geom.Dash {
	switch len(points) {
	case 0:
		return dash
	case 1:
		p := points[0]
		if width > 1 {
			c.fillSquare(p.X, p.Y, width, color, ops)
		} else {
			c.DrawPixel(p.X, p.Y, color, ops)
		}
		return dash
	}

	joined := false
	segment := func(a, b image.Point) {
		if width <= 1 {
			dash = c.DrawLine(a.X, a.Y, b.X, b.Y, color, ops, dash)
			return
		}
		if a == b {
			return
		}
		miter := 0
		if joined {
			miter = 1
		}
		dash = c.wideSegment(a.X, a.Y, b.X, b.Y, width, miter, color, ops, dash)
		joined = true
	}

	for i := 1; i < len(points); i++ {
		segment(points[i-1], points[i])
	}
	if loop {
		segment(points[len(points)-1], points[0])
	}
	return dash
}
