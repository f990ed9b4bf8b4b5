// Package wide provides fixed-width lane types for batch pixel kernels.
//
// The types are plain arrays processed by simple loops, a shape the Go
// compiler auto-vectorizes on amd64 and arm64. No assembly or unsafe code
// is involved, so every kernel also runs (slower) on other targets.
//
// # Lane Types
//
// U16x16: 16 uint16 lanes, one color channel of 16 pixels, wide enough for
// the intermediate products of an 8-bit alpha blend.
// U64x8: 8 uint64 lanes covering a 64 byte block, for bitwise raster ops
// that treat pixels as plain bits.
//
// # Batches
//
// BatchState splits 16 BGRA pixels into per-channel lanes (Structure of
// Arrays); GreyBatch holds 16 luminosity pixels.
//
//	var batch wide.BatchState
//	batch.LoadDst(dst)
//	batch.SplatSrc(b, g, r, a)
//	batch.BlendColor(alpha)
//	batch.StoreDst(dst)
package wide
