package raster

import (
	"image"
	"sort"

	"github.com/gogpu/memcanvas/internal/geom"
)

// clipAxis clips a copy of size pixels from src to dst along one axis so
// that the destination range lies in [0, dstSize). It shifts src by the
// amount cut from the front. ok is false if nothing remains.
func clipAxis(dst, size, dstSize, src int) (int, int, int, bool) {
	if dst < 0 {
		if -dst >= size {
			return dst, size, src, false
		}
		size += dst
		src -= dst
		dst = 0
	}
	if dst >= dstSize {
		return dst, size, src, false
	}
	if dst+size > dstSize {
		size = dstSize - dst
	}
	return dst, size, src, size > 0
}

// clipScaleAxis is clipAxis for a scaled copy: cutting dstDelta pixels
// from the destination cuts the proportional share from the source.
func clipScaleAxis(dst, dstSize, dstEnd, src, srcSize int) (int, int, int, int, bool) {
	if dstSize <= 0 || srcSize <= 0 {
		return dst, dstSize, src, srcSize, false
	}
	if dst < 0 {
		if -dst >= dstSize {
			return dst, dstSize, src, srcSize, false
		}
		dstDelta := -dst
		srcDelta := dstDelta * srcSize / dstSize
		srcSize -= srcDelta
		src += srcDelta
		dstSize -= dstDelta
		dst = 0
	}
	if dst >= dstEnd {
		return dst, dstSize, src, srcSize, false
	}
	if dst+dstSize > dstEnd {
		dstDelta := dst + dstSize - dstEnd
		srcDelta := dstDelta * srcSize / dstSize
		srcSize -= srcDelta
		dstSize -= dstDelta
	}
	return dst, dstSize, src, srcSize, dstSize > 0 && srcSize > 0
}

// Region codes of a point relative to a clip rectangle.
const (
	clipLeft   = 1
	clipRight  = 2
	clipBottom = 4
	clipTop    = 8
)

func clipEncode(x, y int, r image.Rectangle) uint8 {
	var code uint8
	if x < r.Min.X {
		code |= clipLeft
	} else if x >= r.Max.X {
		code |= clipRight
	}
	if y < r.Min.Y {
		code |= clipTop
	} else if y >= r.Max.Y {
		code |= clipBottom
	}
	return code
}

// ClipLine clips the line (x1, y1)-(x2, y2) to the rectangle r. It
// returns the first and last pixels of the line's Bresenham walk that
// fall inside r, so a line is accepted whenever it would paint at least
// one pixel of r. ok is false if no pixel of the walk lies inside r.
func ClipLine(x1, y1, x2, y2 int, r image.Rectangle) (int, int, int, int, bool) {
	b := geom.NewBresenham(x1, y1, x2, y2)
	first, last, ok := clipSteps(&b, r)
	if !ok {
		return x1, y1, x2, y2, false
	}
	cx1, cy1 := b.PointAt(first)
	cx2, cy2 := b.PointAt(last)
	return cx1, cy1, cx2, cy2, true
}

// clipSteps returns the range of steps of the walk b whose pixels lie in
// r. Both coordinates move monotonically along the walk, so the visible
// pixels form a single run.
func clipSteps(b *geom.Bresenham, r image.Rectangle) (first, last int, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}
	n := b.Remaining()
	x1, y1 := b.PointAt(0)
	x2, y2 := b.PointAt(n)
	if clipEncode(x1, y1, r)&clipEncode(x2, y2, r) != 0 {
		return 0, 0, false
	}

	fx0, fx1, ok := axisSteps(n, r.Min.X, r.Max.X-1, func(k int) int {
		x, _ := b.PointAt(k)
		return x
	})
	if !ok {
		return 0, 0, false
	}
	fy0, fy1, ok := axisSteps(n, r.Min.Y, r.Max.Y-1, func(k int) int {
		_, y := b.PointAt(k)
		return y
	})
	if !ok {
		return 0, 0, false
	}
	first, last = max(fx0, fy0), min(fx1, fy1)
	return first, last, first <= last
}

// axisSteps returns the steps k in [0, n] for which lo <= f(k) <= hi.
// f must be monotonic.
func axisSteps(n, lo, hi int, f func(int) int) (int, int, bool) {
	rising := f(n) >= f(0)
	before := func(k int) bool {
		if rising {
			return f(k) < lo
		}
		return f(k) > hi
	}
	after := func(k int) bool {
		if rising {
			return f(k) > hi
		}
		return f(k) < lo
	}
	first := sort.Search(n+1, func(k int) bool { return !before(k) })
	last := sort.Search(n+1, after) - 1
	return first, last, first <= last
}
