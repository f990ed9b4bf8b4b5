package pixop

import "github.com/gogpu/memcanvas/pixel"

// Blend moves a toward b by alpha/256:
//
//	a + ((b - a) * alpha) >> 8
//
// alpha 0 returns a; alpha 255 returns b within one unit.
func Blend(a, b, alpha uint8) uint8 {
	return uint8(int(a) + ((int(b)-int(a))*int(alpha))>>8)
}

// BitNot writes the bitwise complement of the source.
func BitNot[C comparable](t pixel.Traits[C]) PerPixel[C, C] {
	return Unary(t, t, Integer(t, func(v uint32) uint32 { return ^v }))
}

// BitOr writes dest | src.
func BitOr[C comparable](t pixel.Traits[C]) PerPixel[C, C] {
	return Binary(t, t, Integer2(t, func(a, b uint32) uint32 { return a | b }))
}

// BitAnd writes dest & src.
func BitAnd[C comparable](t pixel.Traits[C]) PerPixel[C, C] {
	return Binary(t, t, Integer2(t, func(a, b uint32) uint32 { return a & b }))
}

// BitNotOr writes dest | ^src.
func BitNotOr[C comparable](t pixel.Traits[C]) PerPixel[C, C] {
	return Binary(t, t, Integer2(t, func(a, b uint32) uint32 { return a | ^b }))
}

// Alpha blends the source over the destination with a constant alpha.
// The destination alpha channel is kept.
func Alpha[C comparable](t pixel.Traits[C], alpha uint8) PerPixel[C, C] {
	return Binary(t, t, PerChannel2(t, func(a, b uint8) uint8 {
		return Blend(a, b, alpha)
	}))
}

// NotWhiteAlpha blends like Alpha but skips white source pixels.
func NotWhiteAlpha[C comparable](t pixel.Traits[C], alpha uint8) PerPixel[C, C] {
	return Conditional(t, t, func(c C) bool { return !t.IsWhite(c) }, Alpha(t, alpha))
}

// Transparent copies every source pixel except the color key.
func Transparent[C comparable](t pixel.Traits[C], key C) PerPixel[C, C] {
	return Conditional[C, C](t, t, func(c C) bool { return c != key }, NewPlain(t))
}

// TransparentInvert writes the complement of every source pixel except
// the color key.
func TransparentInvert[C comparable](t pixel.Traits[C], key C) PerPixel[C, C] {
	return Conditional[C, C](t, t, func(c C) bool { return c != key }, BitNot(t))
}

// OpaqueText maps a two-tone source: black source pixels become ink,
// all others become paper.
func OpaqueText[C, S comparable](dst pixel.Traits[C], src pixel.Traits[S], ink, paper C) PerPixel[C, S] {
	return Unary(dst, src, func(c S) C {
		if src.IsBlack(c) {
			return ink
		}
		return paper
	})
}

// ColoredAlpha blends color into the destination using the greyscale
// source as coverage, as for anti-aliased glyphs on a transparent
// background.
func ColoredAlpha[C comparable](dst pixel.Traits[C], color C) PerPixel[C, pixel.Luminosity8] {
	return Binary[C, pixel.Luminosity8](dst, pixel.Greyscale{}, func(d C, coverage pixel.Luminosity8) C {
		return dst.TransformChannels2(d, color, func(a, b uint8) uint8 {
			return Blend(a, b, uint8(coverage))
		})
	})
}

// OpaqueAlpha writes a mix of background and foreground weighted by the
// greyscale source, as for anti-aliased glyphs on an opaque background.
func OpaqueAlpha[C comparable](dst pixel.Traits[C], background, foreground C) PerPixel[C, pixel.Luminosity8] {
	return Unary[C, pixel.Luminosity8](dst, pixel.Greyscale{}, func(coverage pixel.Luminosity8) C {
		return dst.TransformChannels2(background, foreground, func(a, b uint8) uint8 {
			return Blend(a, b, uint8(coverage))
		})
	})
}
