package pixop

import "github.com/gogpu/memcanvas/pixel"

// Operations writes source colors of type S into destination pixels of
// type C. p and src address the first pixel; bulk calls walk n pixels.
type Operations[C, S comparable] interface {
	WritePixel(p []byte, c S)
	FillPixels(p []byte, n int, c S)
	CopyPixels(p, src []byte, n int)
}

// Overwriter is implemented by operations that know whether their result
// depends on the destination.
type Overwriter interface {
	Overwrites() bool
}

// Overwrites reports whether op replaces destination pixels without
// reading them. Such operations write the same row for the same source
// row, which scaled blits exploit.
func Overwrites(op any) bool {
	o, ok := op.(Overwriter)
	return ok && o.Overwrites()
}

// PerPixel implements the bulk methods of Operations by looping over a
// single pixel rule.
type PerPixel[C, S comparable] struct {
	write      func(p []byte, c S)
	read       func(p []byte) S
	dstBPP     int
	srcBPP     int
	overwrites bool
}

// NewPerPixel builds an operation from a single pixel write rule.
// overwrites declares that write does not read the destination.
func NewPerPixel[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], write func(p []byte, c S), overwrites bool) PerPixel[C, S] {
	return PerPixel[C, S]{
		write:      write,
		read:       src.ReadPixel,
		dstBPP:     dst.BytesPerPixel(),
		srcBPP:     src.BytesPerPixel(),
		overwrites: overwrites,
	}
}

func (o PerPixel[C, S]) WritePixel(p []byte, c S) {
	o.write(p, c)
}

func (o PerPixel[C, S]) FillPixels(p []byte, n int, c S) {
	for i := 0; i < n; i++ {
		o.write(p[i*o.dstBPP:], c)
	}
}

func (o PerPixel[C, S]) CopyPixels(p, src []byte, n int) {
	for i := 0; i < n; i++ {
		o.write(p[i*o.dstBPP:], o.read(src[i*o.srcBPP:]))
	}
}

func (o PerPixel[C, S]) Overwrites() bool { return o.overwrites }

// Plain stores source pixels unchanged, using the bulk routines of the
// pixel format.
type Plain[C comparable] struct {
	traits pixel.Traits[C]
}

// NewPlain returns the plain overwrite operation for a format.
func NewPlain[C comparable](t pixel.Traits[C]) Plain[C] {
	return Plain[C]{traits: t}
}

func (o Plain[C]) WritePixel(p []byte, c C)        { o.traits.WritePixel(p, c) }
func (o Plain[C]) FillPixels(p []byte, n int, c C) { o.traits.FillPixels(p, n, c) }
func (o Plain[C]) CopyPixels(p, src []byte, n int) { o.traits.CopyPixels(p, src, n) }
func (o Plain[C]) Overwrites() bool                { return true }

// Unary writes f(src) and ignores the destination.
func Unary[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], f func(S) C) PerPixel[C, S] {
	return NewPerPixel(dst, src, func(p []byte, c S) {
		dst.WritePixel(p, f(c))
	}, true)
}

// Binary writes f(dest, src).
func Binary[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], f func(d C, s S) C) PerPixel[C, S] {
	return NewPerPixel(dst, src, func(p []byte, c S) {
		dst.WritePixel(p, f(dst.ReadPixel(p), c))
	}, false)
}

// Conditional forwards to op only for source colors accepted by check.
func Conditional[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], check func(S) bool, op Operations[C, S]) PerPixel[C, S] {
	return NewPerPixel(dst, src, func(p []byte, c S) {
		if check(c) {
			op.WritePixel(p, c)
		}
	}, false)
}

// PerChannel lifts a byte function to every color channel of C.
func PerChannel[C comparable](t pixel.Traits[C], f func(uint8) uint8) func(C) C {
	return func(c C) C { return t.TransformChannels(c, f) }
}

// PerChannel2 lifts a two argument byte function channel-wise.
func PerChannel2[C comparable](t pixel.Traits[C], f func(a, b uint8) uint8) func(a, b C) C {
	return func(a, b C) C { return t.TransformChannels2(a, b, f) }
}

// Integer lifts a function on the packed pixel value.
func Integer[C comparable](t pixel.Traits[C], f func(uint32) uint32) func(C) C {
	return func(c C) C { return t.TransformInteger(c, f) }
}

// Integer2 lifts a two argument function on packed pixel values.
func Integer2[C comparable](t pixel.Traits[C], f func(a, b uint32) uint32) func(a, b C) C {
	return func(a, b C) C { return t.TransformInteger2(a, b, f) }
}
