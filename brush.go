package memcanvas

// Brush describes how shapes are filled: either hollow or with a solid
// color. A translucent color fills by alpha blending. The zero Brush is
// hollow.
type Brush struct {
	color  Color
	filled bool
}

// NewBrush returns a solid brush.
func NewBrush(c Color) Brush {
	return Brush{color: c, filled: true}
}

// HollowBrush returns a brush that fills nothing.
func HollowBrush() Brush { return Brush{} }

// IsHollow reports whether the brush fills nothing.
func (b Brush) IsHollow() bool { return !b.filled }

// Color returns the fill color. It is meaningless for a hollow brush.
func (b Brush) Color() Color { return b.color }
