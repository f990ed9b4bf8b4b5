package memcanvas

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/memcanvas/internal/debug"
)

func TestCopyModes(t *testing.T) {
	tests := []struct {
		name string
		blit func(c *Canvas, src Bitmap)
		want uint8
	}{
		{"copy", func(c *Canvas, src Bitmap) { c.Copy(0, 0, 1, 1, src, 0, 0) }, 0x3c},
		{"not", func(c *Canvas, src Bitmap) { c.CopyNot(0, 0, 1, 1, src, 0, 0) }, 0xc3},
		{"or", func(c *Canvas, src Bitmap) { c.CopyOr(0, 0, 1, 1, src, 0, 0) }, 0x3f},
		{"and", func(c *Canvas, src Bitmap) { c.CopyAnd(0, 0, 1, 1, src, 0, 0) }, 0x0c},
		{"not or", func(c *Canvas, src Bitmap) { c.CopyNotOr(0, 0, 1, 1, src, 0, 0) }, 0xcf},
		{"alpha", func(c *Canvas, src Bitmap) { c.AlphaBlend(0, 0, 1, 1, src, 0, 0, 1, 1, 0x80) }, 0x25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGreyCanvas(t, 1, 1)
			c.ClearColor(RGB(0x0f, 0x0f, 0x0f))
			tt.blit(c, greyBitmap(t, 1, 1, 0x3c))
			if got := greyAt(t, c, 0, 0); got != tt.want {
				t.Errorf("pixel = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestCopyClipped(t *testing.T) {
	c := newGreyCanvas(t, 3, 3)
	c.ClearColor(Black)
	src := greyBitmap(t, 2, 2,
		0x10, 0x20,
		0x30, 0x40)
	c.Copy(2, -1, 5, 5, src, 0, 0)
	c.DrawBitmap(-1, 2, src)

	want := [][]uint8{
		{0x00, 0x00, 0x30},
		{0x00, 0x00, 0x00},
		{0x20, 0x00, 0x00},
	}
	if diff := cmp.Diff(want, greyRows(t, c)); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTransparentWhite(t *testing.T) {
	c := newGreyCanvas(t, 3, 1)
	c.ClearColor(Gray)
	c.CopyTransparentWhite(0, 0, 3, 1, greyBitmap(t, 3, 1, 0xff, 0x00, 0xfe), 0, 0)
	c.CopyTransparent(0, 0, 3, 1, greyBitmap(t, 3, 1, 0x11, 0x22, 0x11), 0, 0, RGB(0x11, 0x11, 0x11))

	if diff := cmp.Diff([]uint8{0x80, 0x22, 0xfe}, greyRows(t, c)[0]); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestStretchModes(t *testing.T) {
	src := greyBitmap(t, 2, 1, 0xff, 0x0f)
	tests := []struct {
		name string
		blit func(c *Canvas)
		want []uint8
	}{
		{"stretch", func(c *Canvas) {
			c.Stretch(0, 0, 4, 1, src, 0, 0, 2, 1)
		}, []uint8{0xff, 0xff, 0x0f, 0x0f}},
		{"same size", func(c *Canvas) {
			c.Stretch(1, 0, 2, 1, src, 0, 0, 2, 1)
		}, []uint8{0x80, 0xff, 0x0f, 0x80}},
		{"whole bitmap", func(c *Canvas) {
			c.StretchBitmap(0, 0, 4, 1, src)
		}, []uint8{0xff, 0xff, 0x0f, 0x0f}},
		{"not", func(c *Canvas) {
			c.StretchNot(0, 0, 4, 1, src, 0, 0, 2, 1)
		}, []uint8{0x00, 0x00, 0xf0, 0xf0}},
		{"transparent white", func(c *Canvas) {
			c.StretchTransparentWhite(0, 0, 4, 1, src, 0, 0, 2, 1)
		}, []uint8{0x80, 0x80, 0x0f, 0x0f}},
		{"alpha", func(c *Canvas) {
			c.AlphaBlend(0, 0, 4, 1, src, 0, 0, 2, 1, 0x80)
		}, []uint8{0xbf, 0xbf, 0x47, 0x47}},
		{"alpha not white", func(c *Canvas) {
			c.AlphaBlendNotWhite(0, 0, 4, 1, src, 0, 0, 2, 1, 0x80)
		}, []uint8{0x80, 0x80, 0x47, 0x47}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGreyCanvas(t, 4, 1)
			c.ClearColor(Gray)
			tt.blit(c)
			if diff := cmp.Diff(tt.want, greyRows(t, c)[0]); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStretchMono(t *testing.T) {
	mono, err := LoadMonoBitmap(bytes.NewReader([]byte{0b1000_0000}), 2, 1)
	if err != nil {
		t.Fatalf("LoadMonoBitmap() error: %v", err)
	}
	c, err := New(FormatBGRA, 4, 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	c.StretchMono(0, 0, 4, 2, mono, 0, 0, 2, 1, Red, Blue)

	img := c.Image()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := Red
			if x >= 2 {
				want = Blue
			}
			if got := FromColor(img.At(x, y)); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBitmapFormatMismatch(t *testing.T) {
	if debug.Enabled {
		t.Skip("format mismatches panic in debug builds")
	}
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	bgra, err := BitmapFromImage(FormatBGRA, image.NewGray(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatalf("BitmapFromImage() error: %v", err)
	}

	c := newGreyCanvas(t, 2, 2)
	c.ClearWhite()
	c.Copy(0, 0, 2, 2, bgra, 0, 0)
	c.Stretch(0, 0, 1, 1, bgra, 0, 0, 2, 2)
	c.StretchMono(0, 0, 2, 2, bgra, 0, 0, 2, 2, Black, White)

	want := [][]uint8{{0xff, 0xff}, {0xff, 0xff}}
	if diff := cmp.Diff(want, greyRows(t, c)); diff != "" {
		t.Errorf("mismatched bitmap was drawn (-want +got):\n%s", diff)
	}
	if n := strings.Count(buf.String(), "level=WARN"); n != 3 {
		t.Errorf("logged %d warnings, want 3:\n%s", n, buf.String())
	}

	// An undefined bitmap is skipped silently.
	buf.Reset()
	c.Copy(0, 0, 2, 2, Bitmap{}, 0, 0)
	if buf.Len() != 0 {
		t.Errorf("undefined bitmap logged %q", buf.String())
	}
}

func TestBitmapFormatMismatchAsserts(t *testing.T) {
	if !debug.Enabled {
		t.Skip("assertions are compiled out of release builds")
	}
	bgra, err := BitmapFromImage(FormatBGRA, image.NewGray(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatalf("BitmapFromImage() error: %v", err)
	}
	c := newGreyCanvas(t, 2, 2)

	blits := map[string]func(){
		"copy":    func() { c.Copy(0, 0, 2, 2, bgra, 0, 0) },
		"stretch": func() { c.Stretch(0, 0, 1, 1, bgra, 0, 0, 2, 2) },
		"mono":    func() { c.StretchMono(0, 0, 2, 2, bgra, 0, 0, 2, 2, Black, White) },
	}
	for name, blit := range blits {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("mismatched bitmap did not panic")
				}
			}()
			blit()
		})
	}
}
