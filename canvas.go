package memcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/memcanvas/internal/debug"
	"github.com/gogpu/memcanvas/pixel"
	"github.com/gogpu/memcanvas/pixop"
)

// Errors returned by New.
var (
	// ErrInvalidFormat is returned for a pixel format other than
	// FormatGreyscale and FormatBGRA.
	ErrInvalidFormat = errors.New("memcanvas: invalid pixel format")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("memcanvas: invalid dimensions")
)

// Canvas draws into an in-memory pixel buffer and keeps the drawing
// state: pen, brush, font, text color, background color and background
// mode.
//
// Shapes are filled with the brush and outlined with the pen. The outline
// is skipped when the pen is undefined or has the same color as a solid
// brush.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	s surface

	pen        Pen
	brush      Brush
	font       Font
	textColor  Color
	background Color
	opaque     bool

	// scratch for generated shapes
	points []image.Point
}

// New creates a canvas of the given format and size. The buffer is
// allocated by the canvas unless WithBuffer supplies one.
//
// The initial state is a one pixel black pen, a white brush, no font,
// black text on an opaque white background.
func New(format Format, width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	accel := pixop.CurrentAcceleration()
	if o.hasAccel {
		accel = o.accel
	}

	s, err := newSurface(format, accel, o.data, o.pitch, width, height)
	if err != nil {
		return nil, err
	}

	logCreated(format, width, height, accel, o.data != nil)

	return &Canvas{
		s:          s,
		pen:        o.pen,
		brush:      o.brush,
		font:       o.font,
		textColor:  Black,
		background: White,
		opaque:     true,
	}, nil
}

func newSurface(format Format, accel pixop.Acceleration, data []byte, pitch, width, height int) (surface, error) {
	switch format {
	case FormatGreyscale:
		s, err := newTyped[pixel.Luminosity8](pixel.Greyscale{}, accel, data, pitch, width, height)
		if err != nil {
			return nil, fmt.Errorf("memcanvas: wrap buffer: %w", err)
		}
		return s, nil
	case FormatBGRA:
		s, err := newTyped[pixel.BGRA8](pixel.BGRA{}, accel, data, pitch, width, height)
		if err != nil {
			return nil, fmt.Errorf("memcanvas: wrap buffer: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
}

// Resize reallocates the buffer. The contents are lost and bitmaps taken
// with Bitmap become invalid. A wrapped buffer is detached and replaced by
// one owned by the canvas.
func (c *Canvas) Resize(width, height int) {
	if width == c.Width() && height == c.Height() {
		return
	}
	if width <= 0 || height <= 0 {
		debug.Assert(false, "non-positive canvas size")
		return
	}
	c.s.resize(width, height)
	logResized(width, height)
}

// Destroy releases the buffer. Drawing on a destroyed canvas does nothing.
func (c *Canvas) Destroy() { c.s.free() }

// IsDefined reports whether the canvas has a buffer.
func (c *Canvas) IsDefined() bool { return c.s.isDefined() }

// Format returns the pixel format.
func (c *Canvas) Format() Format { return c.s.format() }

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.s.width() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.s.height() }

// Size returns the canvas size as a point.
func (c *Canvas) Size() image.Point { return image.Pt(c.Width(), c.Height()) }

// Acceleration returns the pixel operation kernels in use.
func (c *Canvas) Acceleration() pixop.Acceleration { return c.s.acceleration() }

// Bitmap returns a read-only view of the canvas pixels. The view shares
// memory with the canvas and is invalidated by Resize and Destroy.
func (c *Canvas) Bitmap() Bitmap { return c.s.bitmap() }

// Image returns a copy of the canvas pixels, for encoding with image/png
// or golang.org/x/image/bmp.
func (c *Canvas) Image() image.Image { return c.s.bitmap().Image() }

// SelectPen makes p the current pen.
func (c *Canvas) SelectPen(p Pen) { c.pen = p }

// SelectBrush makes b the current brush.
func (c *Canvas) SelectBrush(b Brush) { c.brush = b }

// SelectFont makes f the current font. A nil font draws no text.
func (c *Canvas) SelectFont(f Font) { c.font = f }

// Pen returns the current pen.
func (c *Canvas) Pen() Pen { return c.pen }

// Brush returns the current brush.
func (c *Canvas) Brush() Brush { return c.brush }

// Font returns the current font.
func (c *Canvas) Font() Font { return c.font }

// SelectNullPen selects a pen that draws nothing.
func (c *Canvas) SelectNullPen() { c.pen = NewPen(0, Black) }

// SelectWhitePen selects a solid white pen of the given width.
func (c *Canvas) SelectWhitePen(width int) { c.pen = NewPen(width, White) }

// SelectBlackPen selects a solid black pen of the given width.
func (c *Canvas) SelectBlackPen(width int) { c.pen = NewPen(width, Black) }

// SelectHollowBrush selects a brush that fills nothing.
func (c *Canvas) SelectHollowBrush() { c.brush = HollowBrush() }

// SelectWhiteBrush selects a solid white brush.
func (c *Canvas) SelectWhiteBrush() { c.brush = NewBrush(White) }

// SelectBlackBrush selects a solid black brush.
func (c *Canvas) SelectBlackBrush() { c.brush = NewBrush(Black) }

// SetTextColor sets the color of text.
func (c *Canvas) SetTextColor(col Color) { c.textColor = col }

// TextColor returns the color of text.
func (c *Canvas) TextColor() Color { return c.textColor }

// SetBackgroundColor sets the color painted behind opaque text.
func (c *Canvas) SetBackgroundColor(col Color) { c.background = col }

// BackgroundColor returns the color painted behind opaque text.
func (c *Canvas) BackgroundColor() Color { return c.background }

// SetBackgroundOpaque makes DrawText paint the text background.
func (c *Canvas) SetBackgroundOpaque() { c.opaque = true }

// SetBackgroundTransparent makes DrawText leave the text background.
func (c *Canvas) SetBackgroundTransparent() { c.opaque = false }

// IsBackgroundOpaque reports the background mode.
func (c *Canvas) IsBackgroundOpaque() bool { return c.opaque }

// penOverBrush reports whether outlines are visible on top of fills.
func (c *Canvas) penOverBrush() bool {
	return c.pen.IsDefined() && (c.brush.IsHollow() || c.brush.Color() != c.pen.Color())
}

// Clear fills the canvas with the brush and outlines it with the pen.
func (c *Canvas) Clear() {
	c.DrawRectangle(0, 0, c.Width(), c.Height())
}

// ClearColor fills the canvas with col.
func (c *Canvas) ClearColor(col Color) {
	c.DrawFilledRectangle(0, 0, c.Width(), c.Height(), col)
}

// ClearWhite fills the canvas with white.
func (c *Canvas) ClearWhite() { c.ClearColor(White) }

// DrawPixel sets one pixel.
func (c *Canvas) DrawPixel(x, y int, col Color) { c.s.pixel(x, y, col) }

// DrawFilledRectangle fills x1 <= x < x2, y1 <= y < y2. A translucent
// color is alpha blended.
func (c *Canvas) DrawFilledRectangle(x1, y1, x2, y2 int, col Color) {
	c.s.fillRect(x1, y1, x2, y2, col)
}

// DrawOutlineRectangle draws the one pixel border of x1 <= x < x2,
// y1 <= y < y2.
func (c *Canvas) DrawOutlineRectangle(x1, y1, x2, y2 int, col Color) {
	c.s.outlineRect(x1, y1, x2, y2, col)
}

// DrawFocusRectangle outlines a rectangle in dark gray.
func (c *Canvas) DrawFocusRectangle(x1, y1, x2, y2 int) {
	c.DrawOutlineRectangle(x1, y1, x2, y2, DarkGray)
}

// DrawRectangle fills x1 <= x < x2, y1 <= y < y2 with the brush and
// outlines it with the pen.
func (c *Canvas) DrawRectangle(x1, y1, x2, y2 int) {
	if !c.brush.IsHollow() {
		c.DrawFilledRectangle(x1, y1, x2, y2, c.brush.Color())
	}
	if !c.penOverBrush() || x1 >= x2 || y1 >= y2 {
		return
	}
	if c.pen.Width() == 1 && c.pen.Mask() == PenSolid.Mask() {
		c.s.outlineRect(x1, y1, x2, y2, c.pen.Color())
		return
	}
	c.points = append(c.points[:0],
		image.Pt(x1, y1), image.Pt(x2-1, y1),
		image.Pt(x2-1, y2-1), image.Pt(x1, y2-1))
	c.s.polyline(c.points, true, c.pen)
}

// InvertRectangle complements every pixel of x1 <= x < x2, y1 <= y < y2.
func (c *Canvas) InvertRectangle(x1, y1, x2, y2 int) {
	if x1 >= x2 || y1 >= y2 {
		return
	}
	c.s.invertRect(x1, y1, x2, y2)
}

// DrawRaisedEdge draws a light top-left and a dark bottom-right border
// inside r and returns r shrunk by one pixel on every side. The pen is
// left changed.
func (c *Canvas) DrawRaisedEdge(r image.Rectangle) image.Rectangle {
	c.SelectPen(NewPen(1, RGB(240, 240, 240)))
	c.DrawTwoLines(
		image.Pt(r.Min.X, r.Max.Y-2),
		image.Pt(r.Min.X, r.Min.Y),
		image.Pt(r.Max.X-1, r.Min.Y))

	c.SelectPen(NewPen(1, RGB(128, 128, 128)))
	c.DrawTwoLines(
		image.Pt(r.Min.X, r.Max.Y-1),
		image.Pt(r.Max.X-1, r.Max.Y-1),
		image.Pt(r.Max.X-1, r.Min.Y+1))

	return r.Inset(1)
}

// DrawHLine draws a thin solid line x1 <= x < x2 on row y, ignoring the
// pen.
func (c *Canvas) DrawHLine(x1, x2, y int, col Color) {
	c.s.fillRect(x1, y, x2, y+1, col)
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with the pen, both
// endpoints included. Each call starts the dash pattern afresh.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int) {
	if !c.pen.IsDefined() {
		return
	}
	c.s.line(x1, y1, x2, y2, c.pen)
}

// DrawExactLine is DrawLine; lines are always drawn exactly.
func (c *Canvas) DrawExactLine(x1, y1, x2, y2 int) {
	c.DrawLine(x1, y1, x2, y2)
}

// DrawTwoLines draws the lines a-b and b-p.
func (c *Canvas) DrawTwoLines(a, b, p image.Point) {
	c.DrawLine(a.X, a.Y, b.X, b.Y)
	c.DrawLine(b.X, b.Y, p.X, p.Y)
}

// DrawPolyline draws connected lines through points with the pen. The
// dash pattern runs continuously along the whole polyline.
func (c *Canvas) DrawPolyline(points []image.Point) {
	if !c.pen.IsDefined() {
		return
	}
	c.s.polyline(points, false, c.pen)
}

// DrawPolygon fills the polygon with the brush (even-odd rule) and
// outlines it with the pen.
func (c *Canvas) DrawPolygon(points []image.Point) {
	if c.brush.IsHollow() && !c.pen.IsDefined() {
		return
	}
	if !c.brush.IsHollow() {
		c.s.fillPolygon(points, c.brush.Color())
	}
	if c.penOverBrush() {
		c.s.polyline(points, true, c.pen)
	}
}

// DrawTriangleFan is DrawPolygon; the fan is filled as one polygon.
func (c *Canvas) DrawTriangleFan(points []image.Point) {
	c.DrawPolygon(points)
}

// DrawCircle fills the circle with the brush and outlines it with the
// pen. Pens wider than one pixel are drawn as concentric circles
// centred on the radius.
func (c *Canvas) DrawCircle(x, y, radius int) {
	if !c.brush.IsHollow() {
		c.s.fillCircle(x, y, radius, c.brush.Color())
	}
	if !c.penOverBrush() {
		return
	}
	w := c.pen.Width()
	if w < 2 {
		c.s.circle(x, y, radius, c.pen.Color())
		return
	}
	for i := w / 2; i >= -(w-1)/2; i-- {
		c.s.circle(x, y, radius+i, c.pen.Color())
	}
}
