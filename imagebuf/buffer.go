// Package imagebuf provides pixel buffers for the software canvas.
//
// A Writable buffer owns (or wraps) a rectangle of pixels laid out row by
// row, each row starting pitch bytes after the previous one. Const is a
// non-owning read-only view used as the source of blits. Views are only
// valid until the buffer they were taken from is freed or resized.
package imagebuf

import (
	"errors"

	"github.com/gogpu/memcanvas/internal/debug"
	"github.com/gogpu/memcanvas/pixel"
)

// RowAlignment is the byte alignment of rows allocated by Allocate.
// Aligned rows let the batch kernels in pixop work on whole blocks.
const RowAlignment = 16

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("imagebuf: invalid dimensions")

	// ErrInvalidPitch is returned when pitch is less than the row size.
	ErrInvalidPitch = errors.New("imagebuf: pitch too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("imagebuf: data buffer too small")
)

// Writable is a mutable pixel buffer of color type C.
//
// The zero value of the embedded geometry means "undefined": a buffer
// returned by New has no pixels until Allocate is called.
//
// Writable is not safe for concurrent use.
type Writable[C comparable] struct {
	traits pixel.Traits[C]
	data   []byte
	pitch  int
	width  int
	height int
	owned  bool
}

// New returns an undefined buffer for the given pixel format.
func New[C comparable](traits pixel.Traits[C]) *Writable[C] {
	return &Writable[C]{traits: traits}
}

// Wrap creates a buffer around existing memory, such as a mapped
// framebuffer. The caller keeps ownership of data; Free only detaches it.
func Wrap[C comparable](traits pixel.Traits[C], data []byte, pitch, width, height int) (*Writable[C], error) {
	if err := validate(traits, len(data), pitch, width, height); err != nil {
		return nil, err
	}
	return &Writable[C]{
		traits: traits,
		data:   data,
		pitch:  pitch,
		width:  width,
		height: height,
	}, nil
}

func validate[C comparable](traits pixel.Traits[C], size, pitch, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if pitch < width*traits.BytesPerPixel() {
		return ErrInvalidPitch
	}
	if size < pitch*(height-1)+width*traits.BytesPerPixel() {
		return ErrDataTooSmall
	}
	return nil
}

// AlignedPitch returns the row size of width pixels rounded up to RowAlignment.
func AlignedPitch(bytesPerPixel, width int) int {
	row := bytesPerPixel * width
	return (row + RowAlignment - 1) &^ (RowAlignment - 1)
}

// Allocate allocates width × height pixels with an aligned pitch.
// The buffer must be undefined; allocating twice without Free is a
// contract violation.
func (b *Writable[C]) Allocate(width, height int) {
	b.AllocateWithPitch(width, height, AlignedPitch(b.traits.BytesPerPixel(), width))
}

// AllocateWithPitch is like Allocate with an explicit pitch, which must be
// at least width × BytesPerPixel.
func (b *Writable[C]) AllocateWithPitch(width, height, pitch int) {
	debug.Assert(!b.IsDefined(), "buffer allocated twice")
	debug.Assert(width > 0 && height > 0, "non-positive buffer size")
	debug.Assert(pitch >= width*b.traits.BytesPerPixel(), "pitch smaller than row")
	if width <= 0 || height <= 0 {
		b.Free()
		return
	}
	b.data = make([]byte, pitch*height)
	b.pitch = pitch
	b.width = width
	b.height = height
	b.owned = true
}

// Free releases the pixels and leaves the buffer undefined.
func (b *Writable[C]) Free() {
	b.data = nil
	b.pitch, b.width, b.height = 0, 0, 0
	b.owned = false
}

// Resize reallocates the buffer with new dimensions. The contents are not
// preserved and every view taken before is invalid afterwards.
func (b *Writable[C]) Resize(width, height int) {
	b.Free()
	b.Allocate(width, height)
}

// IsDefined reports whether the buffer holds pixels.
func (b *Writable[C]) IsDefined() bool { return b.data != nil }

// Owned reports whether the pixels were allocated by this buffer.
func (b *Writable[C]) Owned() bool { return b.owned }

// Traits returns the pixel format of the buffer.
func (b *Writable[C]) Traits() pixel.Traits[C] { return b.traits }

// Width returns the width in pixels.
func (b *Writable[C]) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Writable[C]) Height() int { return b.height }

// Pitch returns the number of bytes between the starts of two rows.
func (b *Writable[C]) Pitch() int { return b.pitch }

// Data returns the raw pixel memory.
func (b *Writable[C]) Data() []byte { return b.data }

// Check reports whether (x, y) lies inside the buffer.
func (b *Writable[C]) Check(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel memory starting at (x, y). The slice extends to the
// end of the buffer so bulk operations can run along the row.
func (b *Writable[C]) At(x, y int) []byte {
	debug.Assert(b.Check(x, y), "pixel address out of bounds")
	return b.traits.At(b.data, b.pitch, x, y)
}

// Row returns the pixels of row y, without the pitch padding.
func (b *Writable[C]) Row(y int) []byte {
	debug.Assert(y >= 0 && y < b.height, "row out of bounds")
	start := y * b.pitch
	return b.data[start : start+b.width*b.traits.BytesPerPixel()]
}

// ReadPixel returns the color at (x, y).
func (b *Writable[C]) ReadPixel(x, y int) C {
	return b.traits.ReadPixel(b.At(x, y))
}

// WritePixel stores c at (x, y) without blending.
func (b *Writable[C]) WritePixel(x, y int, c C) {
	b.traits.WritePixel(b.At(x, y), c)
}

// Clear fills every pixel with c.
func (b *Writable[C]) Clear(c C) {
	for y := 0; y < b.height; y++ {
		b.traits.FillPixels(b.data[y*b.pitch:], b.width, c)
	}
}

// Const returns a read-only view of the whole buffer.
func (b *Writable[C]) Const() Const[C] {
	return Const[C]{
		traits: b.traits,
		data:   b.data,
		pitch:  b.pitch,
		width:  b.width,
		height: b.height,
	}
}
