package geom

import (
	"image"
	"math"
)

// Plotter receives the output of the Murphy iterator.
type Plotter interface {
	// Plot draws one pixel. Coordinates may lie outside the target.
	Plot(x, y int)

	// FillPolygon fills the polygon with the current color.
	FillPolygon(points []image.Point)
}

// Murphy draws thick lines with Murphy's modified Bresenham algorithm.
//
// A line of width w is drawn as a bundle of parallel Bresenham lines
// ("paralines") spread perpendicular to the ideal line, starting at an
// offset of w/2 on one side. The ends of the outermost paralines are
// remembered so the next segment of a polyline can patch the wedge
// between the two segments (the miter join).
type Murphy struct {
	plot Plotter

	u, v           int // major and minor deltas
	ku, kt, kv, kd int
	oct2, quad4    bool

	// Rail ends of the previous segment. hasRails is false after a
	// segment drawn with miter 0.
	first1, first2 image.Point
	last1, last2   image.Point
	hasRails       bool

	temp image.Point

	dash     Dash
	reversed bool

	joint [4]image.Point
}

// NewMurphy returns a thick line iterator reporting to p.
func NewMurphy(p Plotter) *Murphy {
	return &Murphy{plot: p}
}

// paraline draws one line parallel to the ideal line, starting at (x, y).
func (m *Murphy) paraline(x, y, d1 int) {
	d1 = -d1
	for p := 0; p <= m.u; p++ {
		if m.pixelOn(p) {
			m.plot.Plot(x, y)
		}
		if d1 <= m.kt {
			if !m.oct2 {
				x++
			} else if !m.quad4 {
				y++
			} else {
				y--
			}
			d1 += m.kv
		} else {
			x++
			if !m.quad4 {
				y++
			} else {
				y--
			}
			d1 += m.kd
		}
	}
	m.temp = image.Point{X: x, Y: y}
}

// pixelOn applies the dash pattern along the direction the caller drew
// the line in, independent of the internal endpoint swap.
func (m *Murphy) pixelOn(p int) bool {
	if m.dash.IsSolid() {
		return true
	}
	if m.reversed {
		return m.dash.On(m.u - p)
	}
	return m.dash.On(p)
}

// iteration records the rail ends of the segment just drawn and, for a
// continued polyline, closes the gap to the previous segment.
func (m *Murphy) iteration(miter int, ml1b, ml2b, ml1, ml2 image.Point) {
	if miter > 0 && m.hasRails {
		fi := midpoint(m.first1, m.first2)
		la := midpoint(m.last1, m.last2)
		cur := midpoint(ml1, ml2)

		var m1, m2 image.Point
		if dist2(fi, cur) <= dist2(la, cur) {
			m1, m2 = m.first1, m.first2
		} else {
			m1, m2 = m.last1, m.last2
		}

		if dist2(m2, ml2b) >= dist2(m2, ml2) {
			ml2, ml2b = ml2b, ml2
			ml1, ml1b = ml1b, ml1
		}

		m.line(m2, m1)
		m.line(m1, ml1b)
		m.line(ml1b, ml2b)
		m.line(ml2b, m2)

		m.joint = [4]image.Point{m1, m2, ml1b, ml2b}
		m.plot.FillPolygon(m.joint[:])
	}

	m.last1, m.last2 = ml1, ml2
	m.first1, m.first2 = ml1b, ml2b
	m.hasRails = true
}

func (m *Murphy) line(a, b image.Point) {
	Each(a.X, a.Y, b.X, b.Y, m.plot.Plot)
}

// Reset forgets the rails of the previous segment.
func (m *Murphy) Reset() {
	m.hasRails = false
}

// Wideline draws a line of the given width from (x1, y1) to (x2, y2).
//
// With miter 0 the iterator starts a new polyline; with miter 1 it joins
// the segment to the one drawn before. The dash pattern is applied along
// the line and returned advanced by the segment length. Zero length
// segments draw nothing.
func (m *Murphy) Wideline(x1, y1, x2, y2, width, miter int, dash Dash) Dash {
	if miter == 0 {
		m.Reset()
	}
	m.dash = dash
	m.reversed = false

	m.u = x2 - x1
	m.v = y2 - y1
	length := max(abs(m.u), abs(m.v))
	if length == 0 {
		return dash
	}

	if m.u < 0 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		m.u = -m.u
		m.v = -m.v
		m.reversed = true
	}

	if m.v < 0 {
		m.v = -m.v
		m.quad4 = true
	} else {
		m.quad4 = false
	}

	if m.v > m.u {
		m.u, m.v = m.v, m.u
		m.oct2 = true
	} else {
		m.oct2 = false
	}

	m.ku = m.u + m.u
	m.kv = m.v + m.v
	m.kd = m.kv - m.ku
	m.kt = m.u - m.kv

	var d0, d1, dd int

	offset := float64(width) / 2
	ang := math.Atan(float64(m.v) / float64(m.u))
	sang, cang := math.Sin(ang), math.Cos(ang)

	var ptx, pty int
	if !m.oct2 {
		ptx = x1 + lrint(offset*sang)
		if !m.quad4 {
			pty = y1 - lrint(offset*cang)
		} else {
			pty = y1 + lrint(offset*cang)
		}
	} else {
		ptx = x1 - lrint(offset*cang)
		if !m.quad4 {
			pty = y1 + lrint(offset*sang)
		} else {
			pty = y1 - lrint(offset*sang)
		}
	}

	tk := int(4 * math.Hypot(float64(ptx-x1), float64(pty-y1)) * math.Hypot(float64(m.u), float64(m.v)))

	var ml1, ml1b, ml2, ml2b image.Point
	for q := 0; dd <= tk; q++ {
		m.paraline(ptx, pty, d1)
		if q == 0 {
			ml1 = image.Point{X: ptx, Y: pty}
			ml1b = m.temp
			ml2, ml2b = ml1, ml1b
		} else {
			ml2 = image.Point{X: ptx, Y: pty}
			ml2b = m.temp
		}

		if d0 < m.kt {
			// square move
			if !m.oct2 {
				if !m.quad4 {
					pty++
				} else {
					pty--
				}
			} else {
				ptx++
			}
		} else {
			dd += m.kv
			d0 -= m.ku
			if d1 < m.kt {
				// normal diagonal
				if !m.oct2 {
					ptx--
					if !m.quad4 {
						pty++
					} else {
						pty--
					}
				} else {
					ptx++
					if !m.quad4 {
						pty--
					} else {
						pty++
					}
				}
				d1 += m.kv
			} else {
				// double square move, extra paraline
				if !m.oct2 {
					ptx--
				} else if !m.quad4 {
					pty--
				} else {
					pty++
				}
				d1 += m.kd
				if dd > tk {
					m.iteration(miter, ml1b, ml2b, ml1, ml2)
					return dash.Advance(length)
				}
				m.paraline(ptx, pty, d1)
				if !m.oct2 {
					if !m.quad4 {
						pty++
					} else {
						pty--
					}
				} else {
					ptx++
				}
			}
		}
		dd += m.ku
		d0 += m.kv
	}

	m.iteration(miter, ml1b, ml2b, ml1, ml2)
	return dash.Advance(length)
}

func lrint(v float64) int {
	return int(math.RoundToEven(v))
}

func midpoint(a, b image.Point) image.Point {
	return image.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func dist2(a, b image.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
