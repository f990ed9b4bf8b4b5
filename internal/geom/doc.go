// Package geom implements the integer line iterators used by the raster
// canvas: a Bresenham iterator for hairlines and polygon edges, and
// Murphy's modified Bresenham algorithm for thick lines.
//
// Both iterators are plain value state machines. They never touch pixel
// memory themselves; Murphy reports pixels and join patches through the
// Plotter interface so the caller decides about clipping and blending.
package geom
