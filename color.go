package memcanvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/memcanvas/pixel"
)

// Color is a portable, non-premultiplied 8-bit RGBA color. The canvas
// converts it to its pixel format when drawing; greyscale canvases use
// the luminance.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// The standard palette.
var (
	White     = RGB(0xff, 0xff, 0xff)
	Black     = RGB(0x00, 0x00, 0x00)
	LightGray = RGB(0xc0, 0xc0, 0xc0)
	Gray      = RGB(0x80, 0x80, 0x80)
	DarkGray  = RGB(0x40, 0x40, 0x40)
	Red       = RGB(0xff, 0x00, 0x00)
	Green     = RGB(0x00, 0xff, 0x00)
	Blue      = RGB(0x00, 0x00, 0xff)
	Yellow    = RGB(0xff, 0xff, 0x00)
	Cyan      = RGB(0x00, 0xff, 0xff)
	Magenta   = RGB(0xff, 0x00, 0xff)
	Orange    = RGB(0xff, 0xa5, 0x00)
	Brown     = RGB(0xa5, 0x2a, 0x2a)
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(0xff)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("memcanvas: invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("memcanvas: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is like ParseColor but panics on invalid input. It is
// meant for constant strings.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// Mix returns the linear blend of c and o in RGB at t, where 0 yields c
// and 1 yields o. Alpha is interpolated the same way.
func (c Color) Mix(o Color, t float64) Color {
	alpha := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return fromColorful(c.colorful().BlendRgb(o.colorful(), t), uint8(alpha+0.5))
}

// Lighten raises the HCL lightness by p (0..1).
func (c Color) Lighten(p float64) Color {
	h, ch, l := c.colorful().Hcl()
	return fromColorful(colorful.Hcl(h, ch, l+p), c.A)
}

// Darken lowers the HCL lightness by p (0..1).
func (c Color) Darken(p float64) Color {
	h, ch, l := c.colorful().Hcl()
	return fromColorful(colorful.Hcl(h, ch, l-p), c.A)
}

// WithAlpha returns c with alpha a. Brushes with a translucent color fill
// by alpha blending.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool { return c.A == 0xff }

// Luminance returns the greyscale value the color has on a greyscale
// canvas.
func (c Color) Luminance() uint8 {
	return pixel.Luminance(c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color. Colors that are already
// non-premultiplied are taken as they are, so Color and color.NRGBA values
// keep their channels exactly whatever their alpha.
func FromColor(c color.Color) Color {
	switch v := c.(type) {
	case Color:
		return v
	case color.NRGBA:
		return Color{R: v.R, G: v.G, B: v.B, A: v.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String returns the color as "#rrggbbaa".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
