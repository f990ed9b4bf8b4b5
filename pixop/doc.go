// Package pixop provides the composable pixel write rules used by the
// raster canvas.
//
// An Operations value decides how a source color lands on a destination
// pixel: plain overwrite, raster ops (NOT, OR, AND, NOT-OR), alpha blend,
// color keyed transparency, glyph coverage blends. Each rule is built from
// a handful of generic adapters:
//
//	Unary        dest = f(src)
//	Binary       dest = f(dest, src)
//	Conditional  write only where check(src) holds
//	PerChannel   lift a byte function to every color channel
//	Integer      lift a uint32 function to the packed pixel
//
// # Optimized Dispatch
//
// For long runs a Bulk kernel built on internal/wide processes whole lane
// groups and the portable rule finishes the remainder. Strategy decides
// once per canvas, from the detected CPU capabilities, which variant each
// rule uses. Both variants produce identical pixels.
package pixop
