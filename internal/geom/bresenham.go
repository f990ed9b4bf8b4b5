package geom

// Bresenham walks the pixels of a line from (x1, y1) to (x2, y2).
//
// The iterator starts on the first endpoint; each call to Next moves it by
// exactly one step along the major axis. A line visits
// max(|dx|, |dy|) + 1 pixels, and walking the reversed line visits the
// same pixels in reverse order: error terms that land exactly on zero are
// resolved toward the endpoint that compares larger by (x, y).
type Bresenham struct {
	X, Y int

	startX, startY int
	endX, endY     int
	sx, sy     int
	major      int
	minor      int
	steep      bool
	tieStep    bool
	err        int
	count      int
}

// NewBresenham returns an iterator positioned on (x1, y1).
func NewBresenham(x1, y1, x2, y2 int) Bresenham {
	dx, dy := x2-x1, y2-y1
	b := Bresenham{
		X:      x1,
		Y:      y1,
		startX: x1,
		startY: y1,
		endX:   x2,
		endY:   y2,
		sx:     sign(dx),
		sy:     sign(dy),
	}
	dx, dy = abs(dx), abs(dy)
	if dy > dx {
		b.steep = true
		b.major, b.minor = dy, dx
	} else {
		b.major, b.minor = dx, dy
	}
	b.err = 2*b.minor - b.major
	b.count = b.major
	b.tieStep = x1 < x2 || (x1 == x2 && y1 < y2)
	return b
}

// Next advances to the following pixel. It returns false, without moving,
// once the last endpoint has been reached.
func (b *Bresenham) Next() bool {
	if b.count == 0 {
		return false
	}
	if b.err > 0 || (b.err == 0 && b.tieStep) {
		if b.steep {
			b.X += b.sx
		} else {
			b.Y += b.sy
		}
		b.err -= 2 * b.major
	}
	if b.steep {
		b.Y += b.sy
	} else {
		b.X += b.sx
	}
	b.err += 2 * b.minor
	b.count--
	return true
}

// offset returns the number of minor axis steps taken by the first k
// steps of the walk.
func (b *Bresenham) offset(k int) int {
	if b.major == 0 {
		return 0
	}
	t := 1
	if b.tieStep {
		t = 0
	}
	return (2*b.minor*k + b.major - t) / (2 * b.major)
}

// PointAt returns the pixel k steps after the first endpoint, wherever
// the iterator currently is. k must lie in [0, max(|dx|, |dy|)].
func (b *Bresenham) PointAt(k int) (x, y int) {
	m := b.offset(k)
	if b.steep {
		return b.startX + b.sx*m, b.startY + b.sy*k
	}
	return b.startX + b.sx*k, b.startY + b.sy*m
}

// Seek positions the iterator k steps after the first endpoint, in the
// same state that k calls to Next from the start would leave it.
func (b *Bresenham) Seek(k int) {
	k = min(max(k, 0), b.major)
	m := b.offset(k)
	b.X, b.Y = b.PointAt(k)
	b.err = 2*b.minor*(k+1) - b.major - 2*b.major*m
	b.count = b.major - k
}

// Remaining returns the number of steps left before the last endpoint.
func (b *Bresenham) Remaining() int { return b.count }

// Done reports whether the iterator sits on the last endpoint.
func (b *Bresenham) Done() bool { return b.count == 0 }

// EndY returns the row of the last endpoint.
func (b *Bresenham) EndY() int { return b.endY }

// AdvanceTo steps forward until the current row is at least y, or the
// iterator is exhausted. It reports whether the line ends at or before
// row y. The line must run downward (y1 <= y2).
func (b *Bresenham) AdvanceTo(y int) bool {
	for b.Y < y && b.Next() {
	}
	return b.endY <= y
}

// Each calls fn for every pixel of the line from (x1, y1) to (x2, y2).
func Each(x1, y1, x2, y2 int, fn func(x, y int)) {
	b := NewBresenham(x1, y1, x2, y2)
	for {
		fn(b.X, b.Y)
		if !b.Next() {
			return
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
