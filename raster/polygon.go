package raster

import (
	"cmp"
	"image"
	"slices"

	"github.com/gogpu/memcanvas/internal/geom"
	"github.com/gogpu/memcanvas/pixop"
)

func verticalRange(points []image.Point) (miny, maxy int) {
	miny, maxy = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		miny = min(miny, p.Y)
		maxy = max(maxy, p.Y)
	}
	return miny, maxy
}

// fixedRound converts a 16.16 fixed point value to the nearest integer.
func fixedRound(v int) int {
	return (v >> 16) + ((v & 0x8000) >> 15)
}

// FillPolygon fills the polygon with the even-odd rule. Fewer than three
// points draw nothing.
//
// Each scanline intersects every non-horizontal edge in 16.16 fixed point,
// sorts the crossings and fills between consecutive pairs. The crossing
// list is kept on the canvas and reused.
func (c *Canvas[C]) FillPolygon(points []image.Point, color C, ops pixop.Operations[C, C]) {
	n := len(points)
	if n < 3 {
		return
	}
	miny, maxy := verticalRange(points)
	ops = c.orPlain(ops)

	for y := max(miny, 0); y <= maxy && y < c.Height(); y++ {
		ints := c.crossings[:0]
		for i := 0; i < n; i++ {
			a, b := points[(i+n-1)%n], points[i]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			if (y >= a.Y && y < b.Y) || (y == maxy && y > a.Y && y <= b.Y) {
				ints = append(ints, ((65536*(y-a.Y))/(b.Y-a.Y))*(b.X-a.X)+65536*a.X)
			}
		}
		slices.Sort(ints)
		c.crossings = ints

		for i := 0; i+1 < len(ints); i += 2 {
			xa := fixedRound(ints[i] + 1)
			xb := fixedRound(ints[i+1] - 1)
			c.DrawHLine(xa, xb+1, y, color, ops)
		}
	}
}

// edge is one polygon edge in the active edge arena. Active edges form a
// singly linked list through next, ordered by the current X position.
type edge struct {
	it   geom.Bresenham
	top  int
	end  int
	next int
}

const noEdge = -1

// FillPolygonEdges fills the polygon with the even-odd rule, walking the
// edges with Bresenham iterators instead of computing intersections.
//
// Edges are sorted by their top row and X. On each scanline the edges
// starting there join the active list, active edges advance to the row,
// finished ones leave, and the list is re-sorted only when the X order
// changed. Pixels covered are those between the first pixel each edge
// plots on the row.
func (c *Canvas[C]) FillPolygonEdges(points []image.Point, color C, ops pixop.Operations[C, C]) {
	n := len(points)
	if n < 3 {
		return
	}
	miny, maxy := verticalRange(points)
	ops = c.orPlain(ops)

	edges := c.edges[:0]
	for i := 0; i < n; i++ {
		a, b := points[(i+n-1)%n], points[i]
		if a.Y == b.Y {
			continue
		}
		if a.Y > b.Y {
			a, b = b, a
		}
		edges = append(edges, edge{
			it:   geom.NewBresenham(a.X, a.Y, b.X, b.Y),
			top:  a.Y,
			end:  b.Y,
			next: noEdge,
		})
	}
	slices.SortFunc(edges, func(a, b edge) int {
		return cmp.Or(cmp.Compare(a.top, b.top), cmp.Compare(a.it.X, b.it.X))
	})
	c.edges = edges

	head := noEdge
	pending := 0
	for y := max(miny, 0); y <= maxy && y < c.Height(); y++ {
		for pending < len(edges) && edges[pending].top <= y {
			edges[pending].it.AdvanceTo(y)
			head = insertEdge(edges, head, pending)
			pending++
		}

		// Drop finished edges and advance the rest.
		prev := noEdge
		sorted := true
		lastX := 0
		for i := head; i != noEdge; i = edges[i].next {
			e := &edges[i]
			if y >= e.end && e.end != maxy {
				if prev == noEdge {
					head = e.next
				} else {
					edges[prev].next = e.next
				}
				continue
			}
			e.it.AdvanceTo(y)
			if prev != noEdge && e.it.X < lastX {
				sorted = false
			}
			lastX = e.it.X
			prev = i
		}
		if !sorted {
			head = sortEdges(edges, head)
		}

		for i := head; i != noEdge; {
			j := edges[i].next
			if j == noEdge {
				break
			}
			c.DrawHLine(edges[i].it.X, edges[j].it.X+1, y, color, ops)
			i = edges[j].next
		}
	}
}

// insertEdge links edge i into the list at head, ordered by X.
func insertEdge(edges []edge, head, i int) int {
	x := edges[i].it.X
	if head == noEdge || x < edges[head].it.X {
		edges[i].next = head
		return i
	}
	p := head
	for edges[p].next != noEdge && edges[edges[p].next].it.X <= x {
		p = edges[p].next
	}
	edges[i].next = edges[p].next
	edges[p].next = i
	return head
}

// sortEdges re-sorts the active list by insertion.
func sortEdges(edges []edge, head int) int {
	sorted := noEdge
	for i := head; i != noEdge; {
		next := edges[i].next
		sorted = insertEdge(edges, sorted, i)
		i = next
	}
	return sorted
}
