package memcanvas

import "github.com/gogpu/memcanvas/internal/geom"

// PenStyle selects the dash pattern of a pen.
type PenStyle uint8

const (
	// PenSolid draws every pixel.
	PenSolid PenStyle = iota
	// PenDash1 draws 5 pixels and skips 3.
	PenDash1
	// PenDash2 draws 4 pixels and skips 4.
	PenDash2
	// PenDash3 draws 6 pixels and skips 2.
	PenDash3
)

// Mask returns the 32 pixel dash mask of the style. Bit i set means the
// i-th pixel of each 32 pixel run is drawn.
func (s PenStyle) Mask() uint32 {
	switch s {
	case PenDash1:
		return 0x1f1f1f1f
	case PenDash2:
		return 0x0f0f0f0f
	case PenDash3:
		return 0x3f3f3f3f
	default:
		return geom.SolidMask
	}
}

// Pen describes how lines and outlines are stroked. The zero Pen draws
// nothing.
type Pen struct {
	width int
	color Color
	mask  uint32
}

// NewPen returns a solid pen. A width of 0 draws nothing.
func NewPen(width int, c Color) Pen {
	return NewStyledPen(PenSolid, width, c)
}

// NewStyledPen returns a dashed or solid pen.
func NewStyledPen(style PenStyle, width int, c Color) Pen {
	return Pen{width: max(width, 0), color: c, mask: style.Mask()}
}

// Width returns the line width in pixels.
func (p Pen) Width() int { return p.width }

// Color returns the pen color.
func (p Pen) Color() Color { return p.color }

// Mask returns the dash mask.
func (p Pen) Mask() uint32 { return p.mask }

// IsDefined reports whether the pen draws anything.
func (p Pen) IsDefined() bool { return p.width > 0 }

func (p Pen) dash() geom.Dash { return geom.Dash{Mask: p.mask} }
