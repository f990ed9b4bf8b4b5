package imagebuf

import (
	"github.com/gogpu/memcanvas/internal/debug"
	"github.com/gogpu/memcanvas/pixel"
)

// Const is a read-only view of pixels owned elsewhere.
//
// The zero value is an empty view. Const values are small and passed by value.
type Const[C comparable] struct {
	traits pixel.Traits[C]
	data   []byte
	pitch  int
	width  int
	height int
}

// NewConst creates a view over data with the given geometry.
func NewConst[C comparable](traits pixel.Traits[C], data []byte, pitch, width, height int) (Const[C], error) {
	if err := validate(traits, len(data), pitch, width, height); err != nil {
		return Const[C]{}, err
	}
	return Const[C]{traits: traits, data: data, pitch: pitch, width: width, height: height}, nil
}

// IsDefined reports whether the view has pixels.
func (c Const[C]) IsDefined() bool { return c.data != nil }

// Traits returns the pixel format of the view.
func (c Const[C]) Traits() pixel.Traits[C] { return c.traits }

// Width returns the width in pixels.
func (c Const[C]) Width() int { return c.width }

// Height returns the height in pixels.
func (c Const[C]) Height() int { return c.height }

// Pitch returns the number of bytes between the starts of two rows.
func (c Const[C]) Pitch() int { return c.pitch }

// Data returns the underlying pixel memory. It must not be modified.
func (c Const[C]) Data() []byte { return c.data }

// Check reports whether (x, y) lies inside the view.
func (c Const[C]) Check(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel memory starting at (x, y).
func (c Const[C]) At(x, y int) []byte {
	debug.Assert(c.Check(x, y), "pixel address out of bounds")
	return c.traits.At(c.data, c.pitch, x, y)
}

// Row returns the pixels of row y, without the pitch padding.
func (c Const[C]) Row(y int) []byte {
	debug.Assert(y >= 0 && y < c.height, "row out of bounds")
	start := y * c.pitch
	return c.data[start : start+c.width*c.traits.BytesPerPixel()]
}

// ReadPixel returns the color at (x, y).
func (c Const[C]) ReadPixel(x, y int) C {
	return c.traits.ReadPixel(c.At(x, y))
}

// Sub returns a view of the rectangle (x, y, width, height), clipped to
// the bounds of c. An empty intersection yields the zero view.
func (c Const[C]) Sub(x, y, width, height int) Const[C] {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, c.width), min(y+height, c.height)
	if x0 >= x1 || y0 >= y1 {
		return Const[C]{traits: c.traits}
	}
	return Const[C]{
		traits: c.traits,
		data:   c.traits.At(c.data, c.pitch, x0, y0),
		pitch:  c.pitch,
		width:  x1 - x0,
		height: y1 - y0,
	}
}
