package raster

import "github.com/gogpu/memcanvas/pixop"

func (c *Canvas[C]) circleOutside(x, y, radius int) bool {
	return x+radius < 0 || x-radius >= c.Width() || y+radius < 0 || y-radius >= c.Height()
}

// DrawCircle draws the outline of a circle with the midpoint algorithm,
// plotting the eight symmetric octants. Radius 0 draws a single pixel.
func (c *Canvas[C]) DrawCircle(x, y, radius int, color C, ops pixop.Operations[C, C]) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		c.DrawPixel(x, y, color, ops)
		return
	}
	if c.circleOutside(x, y, radius) {
		return
	}
	ops = c.orPlain(ops)

	cx, cy := 0, radius
	df := 1 - radius
	dE := 3
	dSE := -2*radius + 5
	for cx <= cy {
		if cx > 0 {
			c.DrawPixel(x-cx, y+cy, color, ops)
			c.DrawPixel(x+cx, y+cy, color, ops)
			c.DrawPixel(x-cx, y-cy, color, ops)
			c.DrawPixel(x+cx, y-cy, color, ops)
		} else {
			c.DrawPixel(x, y-cy, color, ops)
			c.DrawPixel(x, y+cy, color, ops)
		}

		if cx > 0 && cx != cy {
			c.DrawPixel(x-cy, y+cx, color, ops)
			c.DrawPixel(x+cy, y+cx, color, ops)
			c.DrawPixel(x-cy, y-cx, color, ops)
			c.DrawPixel(x+cy, y-cx, color, ops)
		} else if cx == 0 {
			c.DrawPixel(x-cy, y, color, ops)
			c.DrawPixel(x+cy, y, color, ops)
		}

		if df < 0 {
			df += dE
			dE += 2
			dSE += 2
		} else {
			df += dSE
			dE += 2
			dSE += 4
			cy--
		}
		cx++
	}
}

// FillCircle fills a circle with horizontal spans. Every row is written
// once, with the width of the DrawCircle outline on that row. Radius 0
// fills a single pixel.
func (c *Canvas[C]) FillCircle(x, y, radius int, color C, ops pixop.Operations[C, C]) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		c.DrawPixel(x, y, color, ops)
		return
	}
	if c.circleOutside(x, y, radius) {
		return
	}
	ops = c.orPlain(ops)

	// span fills the inclusive range x1..x2.
	span := func(x1, x2, row int) {
		c.DrawHLine(x1, x2+1, row, color, ops)
	}

	cx, cy := 0, radius
	df := 1 - radius
	dE := 3
	dSE := -2*radius + 5
	for cx <= cy {
		// The rows at ±cy are drawn on the last step before cy changes,
		// when cx is widest.
		if df >= 0 || cx+1 > cy {
			if cy > 0 {
				span(x-cx, x+cx, y-cy)
				span(x-cx, x+cx, y+cy)
			} else {
				span(x-cx, x+cx, y)
			}
		}
		if cx != cy {
			if cx > 0 {
				span(x-cy, x+cy, y-cx)
				span(x-cy, x+cy, y+cx)
			} else {
				span(x-cy, x+cy, y)
			}
		}

		if df < 0 {
			df += dE
			dE += 2
			dSE += 2
		} else {
			df += dSE
			dE += 2
			dSE += 4
			cy--
		}
		cx++
	}
}
