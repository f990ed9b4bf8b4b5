package memcanvas

import (
	"image"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/internal/debug"
	"github.com/gogpu/memcanvas/pixel"
	"github.com/gogpu/memcanvas/pixop"
	"github.com/gogpu/memcanvas/raster"
)

// blitMode selects the pixel operation of a copy or stretch.
type blitMode uint8

const (
	blitCopy blitMode = iota
	blitNot
	blitOr
	blitAnd
	blitNotOr
	blitTransparent
	blitAlpha
	blitAlphaNotWhite
)

type blitOp struct {
	mode  blitMode
	alpha uint8
	key   Color
}

// surface is the format-independent face of a typed buffer. Canvas holds
// one and never sees the pixel type.
type surface interface {
	format() Format
	width() int
	height() int
	acceleration() pixop.Acceleration
	isDefined() bool
	bitmap() Bitmap
	resize(width, height int)
	free()

	pixel(x, y int, c Color)
	fillRect(x1, y1, x2, y2 int, c Color)
	outlineRect(x1, y1, x2, y2 int, c Color)
	invertRect(x1, y1, x2, y2 int)
	line(x1, y1, x2, y2 int, pen Pen)
	polyline(points []image.Point, loop bool, pen Pen)
	fillPolygon(points []image.Point, c Color)
	circle(x, y, radius int, c Color)
	fillCircle(x, y, radius int, c Color)
	text(x, y int, run imagebuf.Const[pixel.Luminosity8], fg, bg Color, opaque bool)
	copyBitmap(x, y, w, h int, src Bitmap, sx, sy int, op blitOp)
	stretchBitmap(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, op blitOp)
	stretchMono(dx, dy, dw, dh int, src imagebuf.Const[pixel.Luminosity8], sx, sy, sw, sh int, fg, bg Color)
}

// typed implements surface for one pixel format.
type typed[C comparable] struct {
	traits pixel.Traits[C]
	buf    *imagebuf.Writable[C]
	ops    *pixop.Strategy[C]
	rc     *raster.Canvas[C]
}

func newTyped[C comparable](traits pixel.Traits[C], accel pixop.Acceleration, data []byte, pitch, width, height int) (*typed[C], error) {
	var buf *imagebuf.Writable[C]
	if data != nil {
		b, err := imagebuf.Wrap(traits, data, pitch, width, height)
		if err != nil {
			return nil, err
		}
		buf = b
	} else {
		buf = imagebuf.New(traits)
		buf.Allocate(width, height)
	}
	ops := pixop.NewStrategy(traits, accel)
	return &typed[C]{
		traits: traits,
		buf:    buf,
		ops:    ops,
		rc:     raster.New(buf, ops),
	}, nil
}

func (s *typed[C]) format() Format                   { return s.traits.Format() }
func (s *typed[C]) width() int                       { return s.buf.Width() }
func (s *typed[C]) height() int                      { return s.buf.Height() }
func (s *typed[C]) acceleration() pixop.Acceleration { return s.ops.Acceleration() }
func (s *typed[C]) isDefined() bool                  { return s.buf.IsDefined() }

func (s *typed[C]) bitmap() Bitmap {
	var b Bitmap
	switch v := any(s.buf.Const()).(type) {
	case imagebuf.Const[pixel.Luminosity8]:
		b = NewGreyscaleBitmap(v)
	case imagebuf.Const[pixel.BGRA8]:
		b = NewBGRABitmap(v)
	}
	return b
}

func (s *typed[C]) resize(width, height int) { s.buf.Resize(width, height) }
func (s *typed[C]) free()                    { s.buf.Free() }

func (s *typed[C]) color(c Color) C {
	return s.traits.Import(c.R, c.G, c.B, c.A)
}

// paint returns the pixel value and operation that draw c: a plain write
// when opaque, an alpha blend otherwise.
func (s *typed[C]) paint(c Color) (C, pixop.Operations[C, C]) {
	if c.IsOpaque() {
		return s.color(c), nil
	}
	return s.color(c), s.ops.Alpha(c.A)
}

func (s *typed[C]) pixel(x, y int, c Color) {
	v, ops := s.paint(c)
	s.rc.DrawPixel(x, y, v, ops)
}

func (s *typed[C]) fillRect(x1, y1, x2, y2 int, c Color) {
	v, ops := s.paint(c)
	s.rc.FillRectangle(x1, y1, x2, y2, v, ops)
}

func (s *typed[C]) outlineRect(x1, y1, x2, y2 int, c Color) {
	v, ops := s.paint(c)
	s.rc.DrawRectangle(x1, y1, x2, y2, v, ops)
}

func (s *typed[C]) invertRect(x1, y1, x2, y2 int) {
	s.rc.Copy(x1, y1, x2-x1, y2-y1, s.buf.Const(), x1, y1, s.ops.BitNot())
}

func (s *typed[C]) line(x1, y1, x2, y2 int, pen Pen) {
	v, ops := s.paint(pen.Color())
	s.rc.DrawThickLine(x1, y1, x2, y2, pen.Width(), v, ops, pen.dash())
}

func (s *typed[C]) polyline(points []image.Point, loop bool, pen Pen) {
	v, ops := s.paint(pen.Color())
	s.rc.DrawPolyline(points, loop, pen.Width(), v, ops, pen.dash())
}

func (s *typed[C]) fillPolygon(points []image.Point, c Color) {
	v, ops := s.paint(c)
	s.rc.FillPolygon(points, v, ops)
}

func (s *typed[C]) circle(x, y, radius int, c Color) {
	v, ops := s.paint(c)
	s.rc.DrawCircle(x, y, radius, v, ops)
}

func (s *typed[C]) fillCircle(x, y, radius int, c Color) {
	v, ops := s.paint(c)
	s.rc.FillCircle(x, y, radius, v, ops)
}

func (s *typed[C]) text(x, y int, run imagebuf.Const[pixel.Luminosity8], fg, bg Color, opaque bool) {
	s.rc.CopyText(x, y, run, s.color(fg), s.color(bg), opaque)
}

func (s *typed[C]) blitOps(op blitOp) pixop.Operations[C, C] {
	switch op.mode {
	case blitNot:
		return s.ops.BitNot()
	case blitOr:
		return s.ops.BitOr()
	case blitAnd:
		return s.ops.BitAnd()
	case blitNotOr:
		return s.ops.BitNotOr()
	case blitTransparent:
		return s.ops.Transparent(s.color(op.key))
	case blitAlpha:
		return s.ops.Alpha(op.alpha)
	case blitAlphaNotWhite:
		return s.ops.NotWhiteAlpha(op.alpha)
	default:
		return nil
	}
}

// source returns src as a view of this format. A mismatch is a contract
// violation: it asserts in debug builds and is logged and skipped
// otherwise.
func (s *typed[C]) source(src Bitmap) (imagebuf.Const[C], bool) {
	v, ok := viewOf[C](src)
	if !ok && src.IsDefined() {
		debug.Assert(false, "bitmap format does not match canvas")
		logSkipped(msgFormatSkip, s.format(), src.Format())
	}
	return v, ok
}

func (s *typed[C]) copyBitmap(x, y, w, h int, src Bitmap, sx, sy int, op blitOp) {
	v, ok := s.source(src)
	if !ok {
		return
	}
	s.rc.Copy(x, y, w, h, v, sx, sy, s.blitOps(op))
}

func (s *typed[C]) stretchBitmap(dx, dy, dw, dh int, src Bitmap, sx, sy, sw, sh int, op blitOp) {
	v, ok := s.source(src)
	if !ok {
		return
	}
	s.rc.Stretch(dx, dy, dw, dh, v, sx, sy, sw, sh, s.blitOps(op))
}

func (s *typed[C]) stretchMono(dx, dy, dw, dh int, src imagebuf.Const[pixel.Luminosity8], sx, sy, sw, sh int, fg, bg Color) {
	raster.ScaleRectangle(s.rc, dx, dy, dw, dh, src, sx, sy, sw, sh, s.ops.OpaqueText(s.color(fg), s.color(bg)))
}
