// Package raster draws primitives into an image buffer.
//
// Canvas binds a writable buffer to the pixel operation strategy of its
// format. Every primitive takes the color to draw and the operation that
// combines it with the destination; a nil operation means plain
// overwrite. Coordinates outside the buffer are clipped silently: lines
// and rectangles are clipped geometrically before rasterization, and the
// remaining per-pixel writes are bounds-checked.
//
// Rectangles and spans are half-open: FillRectangle(x1, y1, x2, y2) covers
// x1 <= x < x2 and y1 <= y < y2.
//
// A Canvas is not safe for concurrent use; it keeps scratch buffers for
// polygon filling that are reused across calls.
package raster
