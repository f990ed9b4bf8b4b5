package memcanvas

import (
	"image"
	"unicode/utf8"

	"github.com/gogpu/memcanvas/internal/debug"
)

// CalcTextSize returns the size of text in the current font, or zero
// without a font.
func (c *Canvas) CalcTextSize(text string) (width, height int) {
	if c.font == nil {
		return 0, 0
	}
	return c.font.TextSize(text)
}

// CalcTextWidth returns the width of text in the current font.
func (c *Canvas) CalcTextWidth(text string) int {
	w, _ := c.CalcTextSize(text)
	return w
}

// FontHeight returns the line height of the current font, or zero
// without a font.
func (c *Canvas) FontHeight() int {
	if c.font == nil {
		return 0
	}
	return c.font.Height()
}

// DrawText draws text with its top-left corner at (x, y) in the text
// color. In opaque background mode the text box is painted with the
// background color first.
func (c *Canvas) DrawText(x, y int, text string) {
	c.drawText(x, y, -1, text, c.opaque)
}

// DrawTransparentText draws text without painting its background,
// regardless of the background mode.
func (c *Canvas) DrawTransparentText(x, y int, text string) {
	c.drawText(x, y, -1, text, false)
}

// DrawClippedText is DrawText cut off after width pixels.
func (c *Canvas) DrawClippedText(x, y, width int, text string) {
	if width <= 0 {
		return
	}
	c.drawText(x, y, width, text, c.opaque)
}

// DrawClippedTextRect is DrawText cut off at the right edge of r. Text
// starting right of r is not drawn.
func (c *Canvas) DrawClippedTextRect(x, y int, r image.Rectangle, text string) {
	if r.Max.X > x {
		c.DrawClippedText(x, y, r.Max.X-x, text)
	}
}

// drawText stamps the rendered run; a negative width draws all of it.
func (c *Canvas) drawText(x, y, width int, text string, opaque bool) {
	debug.Assert(utf8.ValidString(text), "text is not valid UTF-8")
	if c.font == nil {
		return
	}
	run, ok := c.font.Render(text)
	if !ok || !run.IsDefined() {
		return
	}
	if width >= 0 && width < run.Width() {
		run = run.Sub(0, 0, width, run.Height())
	}
	c.s.text(x, y, run, c.textColor, c.background, opaque)
}
