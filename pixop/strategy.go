package pixop

import "github.com/gogpu/memcanvas/pixel"

// Strategy builds the operations of one pixel format, choosing batch
// kernels or portable loops once at construction.
//
// A canvas keeps one Strategy for its lifetime. Strategy is immutable and
// safe for concurrent use.
type Strategy[C comparable] struct {
	traits pixel.Traits[C]
	accel  Acceleration
}

// NewStrategy returns a strategy for the given format and level.
func NewStrategy[C comparable](t pixel.Traits[C], accel Acceleration) *Strategy[C] {
	return &Strategy[C]{traits: t, accel: accel}
}

// Traits returns the pixel format of the strategy.
func (s *Strategy[C]) Traits() pixel.Traits[C] { return s.traits }

// Acceleration returns the level the strategy was built with.
func (s *Strategy[C]) Acceleration() Acceleration { return s.accel }

func (s *Strategy[C]) optimize(bulk Bulk[C], portable Operations[C, C]) Operations[C, C] {
	if s.accel == Portable {
		return portable
	}
	return NewOptimized(s.traits, s.traits, bulk, portable)
}

// Plain returns the overwrite operation.
func (s *Strategy[C]) Plain() Operations[C, C] {
	return NewPlain(s.traits)
}

// Alpha returns a constant alpha blend.
func (s *Strategy[C]) Alpha(alpha uint8) Operations[C, C] {
	portable := Alpha(s.traits, alpha)
	if k, ok := alphaKernel(s.traits, alpha); ok {
		return s.optimize(k, portable)
	}
	return portable
}

// NotWhiteAlpha returns a constant alpha blend that skips white sources.
func (s *Strategy[C]) NotWhiteAlpha(alpha uint8) Operations[C, C] {
	return NotWhiteAlpha(s.traits, alpha)
}

// BitNot returns the complement operation.
func (s *Strategy[C]) BitNot() Operations[C, C] {
	return s.optimize(newBitKernel(s.traits, opNot), BitNot(s.traits))
}

// BitOr returns dest | src.
func (s *Strategy[C]) BitOr() Operations[C, C] {
	return s.optimize(newBitKernel(s.traits, opOr), BitOr(s.traits))
}

// BitAnd returns dest & src.
func (s *Strategy[C]) BitAnd() Operations[C, C] {
	return s.optimize(newBitKernel(s.traits, opAnd), BitAnd(s.traits))
}

// BitNotOr returns dest | ^src.
func (s *Strategy[C]) BitNotOr() Operations[C, C] {
	return s.optimize(newBitKernel(s.traits, opNotOr), BitNotOr(s.traits))
}

// Transparent returns a copy that skips the color key.
func (s *Strategy[C]) Transparent(key C) Operations[C, C] {
	return Transparent(s.traits, key)
}

// TransparentInvert returns an inverting copy that skips the color key.
func (s *Strategy[C]) TransparentInvert(key C) Operations[C, C] {
	return TransparentInvert(s.traits, key)
}

// ColoredAlpha returns the glyph blend for transparent text.
func (s *Strategy[C]) ColoredAlpha(color C) Operations[C, pixel.Luminosity8] {
	return ColoredAlpha(s.traits, color)
}

// OpaqueAlpha returns the glyph blend for text on an opaque background.
func (s *Strategy[C]) OpaqueAlpha(background, foreground C) Operations[C, pixel.Luminosity8] {
	return OpaqueAlpha(s.traits, background, foreground)
}

// OpaqueText returns the two-tone mapping of a monochrome source.
func (s *Strategy[C]) OpaqueText(ink, paper C) Operations[C, pixel.Luminosity8] {
	return OpaqueText[C, pixel.Luminosity8](s.traits, pixel.Greyscale{}, ink, paper)
}
