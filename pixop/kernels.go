package pixop

import (
	"encoding/binary"

	"github.com/gogpu/memcanvas/internal/wide"
	"github.com/gogpu/memcanvas/pixel"
)

// greyAlpha is the batch kernel of Alpha for greyscale buffers.
type greyAlpha struct {
	alpha uint8
}

func (greyAlpha) Lanes() int { return 16 }

func (k greyAlpha) FillPixels(p []byte, n int, c pixel.Luminosity8) {
	var batch wide.GreyBatch
	batch.SplatSrc(uint8(c))
	for i := 0; i < n; i += 16 {
		batch.LoadDst(p[i:])
		batch.Blend(k.alpha)
		batch.StoreDst(p[i:])
	}
}

func (k greyAlpha) CopyPixels(p, src []byte, n int) {
	var batch wide.GreyBatch
	for i := 0; i < n; i += 16 {
		batch.LoadSrc(src[i:])
		batch.LoadDst(p[i:])
		batch.Blend(k.alpha)
		batch.StoreDst(p[i:])
	}
}

// bgraAlpha is the batch kernel of Alpha for BGRA buffers.
type bgraAlpha struct {
	alpha uint8
}

func (bgraAlpha) Lanes() int { return wide.BatchPixels }

func (k bgraAlpha) FillPixels(p []byte, n int, c pixel.BGRA8) {
	var batch wide.BatchState
	batch.SplatSrc(c.B, c.G, c.R, c.A)
	for i := 0; i < n; i += wide.BatchPixels {
		off := i * 4
		batch.LoadDst(p[off:])
		batch.BlendColor(k.alpha)
		batch.StoreDst(p[off:])
	}
}

func (k bgraAlpha) CopyPixels(p, src []byte, n int) {
	var batch wide.BatchState
	for i := 0; i < n; i += wide.BatchPixels {
		off := i * 4
		batch.LoadSrc(src[off:])
		batch.LoadDst(p[off:])
		batch.BlendColor(k.alpha)
		batch.StoreDst(p[off:])
	}
}

func alphaKernel[C comparable](t pixel.Traits[C], alpha uint8) (Bulk[C], bool) {
	var k any
	switch any(t).(type) {
	case pixel.Greyscale:
		k = greyAlpha{alpha: alpha}
	case pixel.BGRA:
		k = bgraAlpha{alpha: alpha}
	default:
		return nil, false
	}
	b, ok := k.(Bulk[C])
	return b, ok
}

type bitOp uint8

const (
	opNot bitOp = iota
	opOr
	opAnd
	opNotOr
)

// bitKernel applies a raster op to 64 byte blocks. Packed integer ops act
// on each byte independently, so the block view matches the per-pixel
// rule for every format.
type bitKernel[C comparable] struct {
	traits pixel.Traits[C]
	op     bitOp
	lanes  int
}

func newBitKernel[C comparable](t pixel.Traits[C], op bitOp) bitKernel[C] {
	return bitKernel[C]{traits: t, op: op, lanes: wide.BlockBytes / t.BytesPerPixel()}
}

func (k bitKernel[C]) Lanes() int { return k.lanes }

func (k bitKernel[C]) apply(d, s wide.U64x8) wide.U64x8 {
	switch k.op {
	case opNot:
		return s.Not()
	case opOr:
		return d.Or(s)
	case opAnd:
		return d.And(s)
	default:
		return d.OrNot(s)
	}
}

func (k bitKernel[C]) FillPixels(p []byte, n int, c C) {
	// Pixels of every format tile a 64-bit lane exactly.
	var word [8]byte
	k.traits.FillPixels(word[:], 8/k.traits.BytesPerPixel(), c)
	s := wide.SplatU64(binary.LittleEndian.Uint64(word[:]))
	size := n * k.traits.BytesPerPixel()
	for off := 0; off < size; off += wide.BlockBytes {
		var d wide.U64x8
		if k.op != opNot {
			d = wide.LoadU64(p[off:])
		}
		k.apply(d, s).Store(p[off:])
	}
}

func (k bitKernel[C]) CopyPixels(p, src []byte, n int) {
	size := n * k.traits.BytesPerPixel()
	for off := 0; off < size; off += wide.BlockBytes {
		s := wide.LoadU64(src[off:])
		var d wide.U64x8
		if k.op != opNot {
			d = wide.LoadU64(p[off:])
		}
		k.apply(d, s).Store(p[off:])
	}
}
