package memcanvas

import "github.com/gogpu/memcanvas/pixop"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Canvas with its own buffer and the detected batch kernels
//	c, err := memcanvas.New(memcanvas.FormatGreyscale, 600, 800)
//
//	// Canvas drawing into a framebuffer mapped by the caller
//	c, err := memcanvas.New(memcanvas.FormatBGRA, 800, 480,
//	    memcanvas.WithBuffer(fb, 800*4))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	accel    pixop.Acceleration
	hasAccel bool
	data     []byte
	pitch    int
	pen      Pen
	brush    Brush
	font     Font
}

// defaultOptions returns the default canvas options: a one pixel black
// pen, a white brush and no font.
func defaultOptions() options {
	return options{
		pen:   NewPen(1, Black),
		brush: NewBrush(White),
	}
}

// WithAcceleration selects the pixel operation kernels instead of the
// process-wide level reported by pixop.CurrentAcceleration.
//
// Both levels produce identical pixels; Portable is useful to compare
// against or to rule out the batch kernels while debugging.
func WithAcceleration(a pixop.Acceleration) Option {
	return func(o *options) {
		o.accel = a
		o.hasAccel = true
	}
}

// WithBuffer makes the canvas draw into data, a buffer owned by the
// caller with rows pitch bytes apart. The canvas never reallocates or
// frees it; Resize switches to an owned buffer.
func WithBuffer(data []byte, pitch int) Option {
	return func(o *options) {
		o.data = data
		o.pitch = pitch
	}
}

// WithFont selects the initial font.
func WithFont(f Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithPen selects the initial pen.
func WithPen(p Pen) Option {
	return func(o *options) {
		o.pen = p
	}
}

// WithBrush selects the initial brush.
func WithBrush(b Brush) Option {
	return func(o *options) {
		o.brush = b
	}
}
