package pixop

import "github.com/gogpu/memcanvas/pixel"

// Bulk is a batch kernel for one operation. Its bulk methods only accept
// pixel counts that are a multiple of Lanes, which is a power of two.
type Bulk[S comparable] interface {
	Lanes() int
	FillPixels(p []byte, n int, c S)
	CopyPixels(p, src []byte, n int)
}

// Optimized runs the batch kernel over the largest multiple of its lane
// count and hands the remaining pixels to the portable operation.
type Optimized[C, S comparable] struct {
	bulk     Bulk[S]
	portable Operations[C, S]
	mask     int
	dstBPP   int
	srcBPP   int
}

// NewOptimized combines a batch kernel with the portable operation that
// computes the same result.
func NewOptimized[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], bulk Bulk[S], portable Operations[C, S]) Optimized[C, S] {
	return Optimized[C, S]{
		bulk:     bulk,
		portable: portable,
		mask:     bulk.Lanes() - 1,
		dstBPP:   dst.BytesPerPixel(),
		srcBPP:   src.BytesPerPixel(),
	}
}

func (o Optimized[C, S]) WritePixel(p []byte, c S) {
	o.portable.WritePixel(p, c)
}

func (o Optimized[C, S]) FillPixels(p []byte, n int, c S) {
	m := n &^ o.mask
	if m > 0 {
		o.bulk.FillPixels(p, m, c)
	}
	if r := n & o.mask; r > 0 {
		o.portable.FillPixels(p[m*o.dstBPP:], r, c)
	}
}

func (o Optimized[C, S]) CopyPixels(p, src []byte, n int) {
	m := n &^ o.mask
	if m > 0 {
		o.bulk.CopyPixels(p, src, m)
	}
	if r := n & o.mask; r > 0 {
		o.portable.CopyPixels(p[m*o.dstBPP:], src[m*o.srcBPP:], r)
	}
}

func (o Optimized[C, S]) Overwrites() bool { return Overwrites(o.portable) }
