// Command canvasdemo draws a sample scene with memcanvas and writes it as
// PNG or BMP.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/memcanvas"
	"github.com/gogpu/memcanvas/pixop"
	"github.com/gogpu/memcanvas/textcache"
)

func main() {
	var (
		width    = flag.Int("width", 640, "image width")
		height   = flag.Int("height", 480, "image height")
		format   = flag.String("format", "bgra", "pixel format: bgra or grey")
		fontName = flag.String("font", "goregular", "font: goregular, basic or proggy")
		output   = flag.String("output", "demo.png", "output file (.png or .bmp)")
		portable = flag.Bool("portable", false, "disable the batch pixel kernels")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		memcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := loadFont(*fontName)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	opts := []memcanvas.Option{memcanvas.WithFont(textcache.New(f, 64))}
	if *portable {
		opts = append(opts, memcanvas.WithAcceleration(pixop.Portable))
	}

	pf := memcanvas.FormatBGRA
	if strings.HasPrefix(*format, "grey") || strings.HasPrefix(*format, "gray") {
		pf = memcanvas.FormatGreyscale
	}

	c, err := memcanvas.New(pf, *width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	drawBackground(c)
	drawShapes(c)
	drawArcs(c)
	drawBitmaps(c)
	drawLabels(c)

	if err := save(*output, c.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %v, %v)\n", *output, c.Width(), c.Height(), c.Format(), c.Acceleration())
}

func loadFont(name string) (textcache.Rasterizer, error) {
	switch name {
	case "goregular":
		return textcache.GoRegular(14)
	case "basic":
		return textcache.Basic(), nil
	case "proggy":
		return textcache.Proggy(), nil
	default:
		return nil, fmt.Errorf("unknown font %q", name)
	}
}

func save(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(out, img)
	} else {
		err = png.Encode(out, img)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func drawBackground(c *memcanvas.Canvas) {
	top := memcanvas.MustParseColor("#1d2b53")
	bottom := memcanvas.MustParseColor("#7e2553")
	h := c.Height()
	for y := 0; y < h; y += 4 {
		col := top.Mix(bottom, float64(y)/float64(h))
		c.DrawFilledRectangle(0, y, c.Width(), y+4, col)
	}
}

func drawShapes(c *memcanvas.Canvas) {
	c.SelectPen(memcanvas.NewPen(3, memcanvas.White))
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Orange))
	c.DrawRectangle(20, 20, 160, 110)

	c.SelectPen(memcanvas.NewStyledPen(memcanvas.PenDash2, 1, memcanvas.Yellow))
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Cyan.WithAlpha(0x80)))
	c.DrawRoundRectangle(100, 60, 260, 160, 30, 30)

	c.SelectPen(memcanvas.NewPen(2, memcanvas.Black))
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Green.Darken(0.2)))
	c.DrawPolygon([]image.Point{{320, 30}, {400, 150}, {280, 120}, {360, 60}})

	c.SelectPen(memcanvas.NewPen(4, memcanvas.Magenta))
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Red.Lighten(0.2).WithAlpha(0xc0)))
	c.DrawCircle(500, 90, 55)

	c.SelectPen(memcanvas.NewStyledPen(memcanvas.PenDash1, 1, memcanvas.White))
	for i := 0; i < 8; i++ {
		c.DrawLine(20, 190+i*6, 300, 230-i*6)
	}
	c.InvertRectangle(20, 240, 120, 260)
	c.DrawFocusRectangle(130, 240, 300, 260)
}

func drawArcs(c *memcanvas.Canvas) {
	c.SelectPen(memcanvas.NewPen(1, memcanvas.White))
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Yellow))
	c.DrawSegment(image.Pt(380, 260), 50, 30, 330, false)

	c.SelectBrush(memcanvas.NewBrush(memcanvas.LightGray))
	c.DrawAnnulus(image.Pt(520, 260), 25, 50, 0, 270)

	c.SelectNullPen()
	c.SelectBrush(memcanvas.NewBrush(memcanvas.Brown))
	c.DrawKeyhole(image.Pt(520, 260), 15, 45, 280, 350)

	c.SelectPen(memcanvas.NewPen(3, memcanvas.Cyan))
	c.DrawArc(image.Pt(380, 260), 65, 300, 60)
}

func drawBitmaps(c *memcanvas.Canvas) {
	const size = 16
	checker := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 0 {
				checker.Pix[y*checker.Stride+x] = 0xff
			}
		}
	}
	b, err := memcanvas.BitmapFromImage(c.Format(), checker)
	if err != nil {
		log.Fatalf("Failed to convert bitmap: %v", err)
	}

	c.DrawBitmap(20, 300, b)
	c.Stretch(50, 300, 64, 64, b, 0, 0, size, size)
	c.StretchTransparentWhite(130, 300, 64, 64, b, 0, 0, size, size)
	c.AlphaBlend(210, 300, 64, 64, b, 0, 0, size, size, 0x60)

	if c.Format() == memcanvas.FormatGreyscale {
		c.StretchMono(290, 300, 64, 64, b, 0, 0, size, size, memcanvas.Black, memcanvas.White)
	}
}

func drawLabels(c *memcanvas.Canvas) {
	c.SetTextColor(memcanvas.White)
	c.DrawTransparentText(20, 390, "memcanvas: software rendering into memory buffers")

	c.SetTextColor(memcanvas.Black)
	c.SetBackgroundColor(memcanvas.Yellow)
	c.SetBackgroundOpaque()
	c.DrawClippedText(20, 390+c.FontHeight()+4, 200, "clipped to two hundred pixels wide")
}
