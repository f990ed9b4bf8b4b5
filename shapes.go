package memcanvas

import (
	"image"
	"math"
)

// circleSteps is the resolution of arcs, segments and rounded corners.
const circleSteps = 64

// unitCircle holds sin and cos of circleSteps angles clockwise from north.
var unitCircle = func() (t [circleSteps][2]float64) {
	for i := range t {
		t[i][0], t[i][1] = math.Sincos(2 * math.Pi * float64(i) / circleSteps)
	}
	return t
}()

// normalizeDegrees maps a into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func polar(center image.Point, radius int, sin, cos float64) image.Point {
	r := float64(radius)
	return image.Pt(center.X+int(r*sin), center.Y-int(r*cos))
}

func polarDegrees(center image.Point, radius int, deg float64) image.Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return polar(center, radius, sin, cos)
}

// appendArc appends the points of the arc from start to end degrees,
// clockwise: the exact start point, the table points strictly between,
// and the exact end point.
func appendArc(dst []image.Point, center image.Point, radius int, start, end float64) []image.Point {
	start, end = normalizeDegrees(start), normalizeDegrees(end)
	first := int(math.Round(start / 360 * circleSteps))
	last := int(math.Round(end / 360 * circleSteps))
	if first > last {
		last += circleSteps
	}
	first++
	last--

	dst = append(dst, polarDegrees(center, radius, start))
	for i := first; i <= last && i-first < circleSteps; i++ {
		t := unitCircle[i%circleSteps]
		dst = append(dst, polar(center, radius, t[0], t[1]))
	}
	return append(dst, polarDegrees(center, radius, end))
}

// circleVisible reports whether the bounding box of the circle overlaps
// the canvas.
func (c *Canvas) circleVisible(center image.Point, radius int) bool {
	box := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)
	return box.Overlaps(image.Rect(0, 0, c.Width(), c.Height()))
}

// DrawArc draws the circle arc from start to end degrees, clockwise from
// twelve o'clock, with the pen.
func (c *Canvas) DrawArc(center image.Point, radius int, start, end float64) {
	if !c.circleVisible(center, radius) {
		return
	}
	c.points = appendArc(c.points[:0], center, radius, start, end)
	c.DrawPolyline(c.points)
}

// DrawSegment draws the pie slice from start to end degrees, clockwise
// from twelve o'clock. With horizon set the slice is cut by its chord
// instead of the two radii.
func (c *Canvas) DrawSegment(center image.Point, radius int, start, end float64, horizon bool) {
	if !c.circleVisible(center, radius) {
		return
	}
	pts := c.points[:0]
	if !horizon {
		pts = append(pts, center)
	}
	pts = appendArc(pts, center, radius, start, end)
	if !horizon {
		pts = append(pts, center)
	} else {
		pts = append(pts, pts[0])
	}
	c.points = pts
	c.DrawPolygon(pts)
}

// DrawAnnulus draws the ring sector between the two radii from start to
// end degrees. A full circle is drawn when start equals end.
func (c *Canvas) DrawAnnulus(center image.Point, smallRadius, bigRadius int, start, end float64) {
	if !c.circleVisible(center, bigRadius) {
		return
	}
	if normalizeDegrees(start) == normalizeDegrees(end) {
		end = start + 360 - 360.0/circleSteps
	}
	pts := appendArc(c.points[:0], center, bigRadius, start, end)
	n := len(pts)
	pts = appendArc(pts, center, smallRadius, start, end)
	inner := pts[n:]
	for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
		inner[i], inner[j] = inner[j], inner[i]
	}
	c.points = pts
	c.DrawPolygon(pts)
}

// DrawKeyhole draws the sector of bigRadius from start to end degrees
// joined to the rest of the circle of smallRadius.
func (c *Canvas) DrawKeyhole(center image.Point, smallRadius, bigRadius int, start, end float64) {
	if !c.circleVisible(center, bigRadius) {
		return
	}
	pts := appendArc(c.points[:0], center, bigRadius, start, end)
	pts = appendArc(pts, center, smallRadius, end, start)
	c.points = pts
	c.DrawPolygon(pts)
}

// DrawRoundRectangle draws a rectangle with corners rounded by quarter
// circles of radius min(ellipseWidth, ellipseHeight)/2, filled with the
// brush and outlined with the pen.
func (c *Canvas) DrawRoundRectangle(x1, y1, x2, y2, ellipseWidth, ellipseHeight int) {
	radius := min(ellipseWidth, ellipseHeight) / 2
	radius = min(radius, (x2-x1)/2, (y2-y1)/2)
	if radius <= 0 {
		c.DrawRectangle(x1, y1, x2, y2)
		return
	}

	right, bottom := x2-1, y2-1
	pts := c.points[:0]
	pts = appendArc(pts, image.Pt(right-radius, y1+radius), radius, 0, 90)
	pts = appendArc(pts, image.Pt(right-radius, bottom-radius), radius, 90, 180)
	pts = appendArc(pts, image.Pt(x1+radius, bottom-radius), radius, 180, 270)
	pts = appendArc(pts, image.Pt(x1+radius, y1+radius), radius, 270, 0)
	c.points = pts
	c.DrawPolygon(pts)
}
