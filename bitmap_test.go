package memcanvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/pixel"
)

func greyBitmap(t *testing.T, w, h int, values ...uint8) Bitmap {
	t.Helper()
	v, err := imagebuf.NewConst[pixel.Luminosity8](pixel.Greyscale{}, values, w, w, h)
	if err != nil {
		t.Fatalf("NewConst: %v", err)
	}
	return NewGreyscaleBitmap(v)
}

func bitmapRows(t *testing.T, b Bitmap) [][]uint8 {
	t.Helper()
	v, ok := b.Greyscale()
	if !ok {
		t.Fatal("bitmap is not greyscale")
	}
	rows := make([][]uint8, v.Height())
	for y := range rows {
		rows[y] = append([]uint8(nil), v.Row(y)...)
	}
	return rows
}

func TestBitmapFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 0x10)
	}

	b, err := BitmapFromImage(FormatGreyscale, img)
	if err != nil {
		t.Fatalf("BitmapFromImage() error: %v", err)
	}
	if b.Format() != FormatGreyscale || b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("bitmap = %v %dx%d", b.Format(), b.Width(), b.Height())
	}
	want := [][]uint8{{0x00, 0x10, 0x20}, {0x30, 0x40, 0x50}}
	if diff := cmp.Diff(want, bitmapRows(t, b)); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}

	bgra, err := BitmapFromImage(FormatBGRA, img)
	if err != nil {
		t.Fatalf("BitmapFromImage(BGRA) error: %v", err)
	}
	if _, ok := bgra.Greyscale(); ok {
		t.Error("BGRA bitmap reports a greyscale view")
	}
	if got := bgra.Image().At(2, 1); got != (color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}) {
		t.Errorf("BGRA pixel = %v", got)
	}
}

func TestBitmapFromImageErrors(t *testing.T) {
	if _, err := BitmapFromImage(Format(7), image.NewGray(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("unknown format error = %v, want ErrInvalidFormat", err)
	}
	if _, err := BitmapFromImage(FormatBGRA, image.NewGray(image.Rectangle{})); !errors.Is(err, imagebuf.ErrInvalidDimensions) {
		t.Errorf("empty image error = %v, want ErrInvalidDimensions", err)
	}
}

func TestLoadMonoBitmap(t *testing.T) {
	b, err := LoadMonoBitmap(bytes.NewReader([]byte{0b1010_0000, 0b0110_0000}), 3, 2)
	if err != nil {
		t.Fatalf("LoadMonoBitmap() error: %v", err)
	}
	want := [][]uint8{{0x00, 0xff, 0x00}, {0xff, 0x00, 0x00}}
	if diff := cmp.Diff(want, bitmapRows(t, b)); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadMonoBitmap(bytes.NewReader([]byte{0xff}), 3, 2); err == nil {
		t.Error("LoadMonoBitmap() of short data succeeded")
	}
}

func TestBitmapZeroAndSub(t *testing.T) {
	var zero Bitmap
	if zero.IsDefined() || zero.Width() != 0 || zero.Height() != 0 {
		t.Errorf("zero bitmap = %dx%d defined=%v", zero.Width(), zero.Height(), zero.IsDefined())
	}

	b := greyBitmap(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	sub := b.Sub(1, 1, 5, 5)
	want := [][]uint8{{5, 6}, {8, 9}}
	if diff := cmp.Diff(want, bitmapRows(t, sub)); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
	if b.Sub(3, 0, 1, 1).IsDefined() {
		t.Error("Sub outside the bitmap is defined")
	}
}

func TestCanvasBitmapSharesPixels(t *testing.T) {
	c := newGreyCanvas(t, 2, 2)
	b := c.Bitmap()
	c.ClearColor(Black)
	c.DrawPixel(1, 0, White)
	want := [][]uint8{{0x00, 0xff}, {0x00, 0x00}}
	if diff := cmp.Diff(want, bitmapRows(t, b)); diff != "" {
		t.Errorf("bitmap mismatch (-want +got):\n%s", diff)
	}
}
