// Package memcanvas is a software 2D canvas that draws straight into an
// in-memory pixel buffer.
//
// # Overview
//
// memcanvas targets displays without an accelerated 2D API, such as e-ink
// panels and raw framebuffers. A Canvas owns (or wraps) a pixel
// buffer in one of two formats, 8-bit greyscale or 32-bit BGRA, and keeps
// GDI-style drawing state: the current pen, brush, font, text and
// background colors and the background mode.
//
// # Quick Start
//
//	c, err := memcanvas.New(memcanvas.FormatBGRA, 320, 240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.ClearWhite()
//	c.SelectPen(memcanvas.NewPen(3, memcanvas.Blue))
//	c.SelectBrush(memcanvas.NewBrush(memcanvas.Yellow))
//	c.DrawCircle(160, 120, 80)
//	png.Encode(w, c.Image())
//
// # Architecture
//
// The library is organized into:
//   - pixel: pixel formats (Traits), greyscale and BGRA colors
//   - imagebuf: writable and read-only pixel buffers with a row pitch
//   - pixop: pixel operations (plain, alpha, bitwise, color key) and the
//     batch kernels chosen by CPU capability
//   - raster: primitives on a typed buffer (lines, polygons, circles, blits)
//   - textcache: a reference glyph run cache for the Font interface
//
// Canvas hides the pixel type; the raster package exposes it for callers
// that want to work on a typed buffer directly.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Rectangles are half-open. Angles of arcs and segments are in degrees,
// clockwise from twelve o'clock.
//
// # Errors
//
// Only constructors return errors. Drawing outside the buffer, degenerate
// shapes and empty input are silently clipped or ignored.
//
// # Debugging
//
// Build with -tags memcanvasdebug to turn contract violations, such as
// addressing a pixel outside a buffer or drawing a bitmap of the wrong
// format, into panics.
package memcanvas
