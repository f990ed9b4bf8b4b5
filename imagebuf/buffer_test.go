package imagebuf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/memcanvas/pixel"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		wantPitch int
	}{
		{"aligned", 16, 4, 16},
		{"padded", 10, 10, 16},
		{"single", 1, 1, 16},
		{"wide", 33, 2, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New[pixel.Luminosity8](pixel.Greyscale{})
			if buf.IsDefined() {
				t.Fatal("new buffer is defined")
			}
			buf.Allocate(tt.width, tt.height)
			if !buf.IsDefined() || !buf.Owned() {
				t.Fatal("allocated buffer is not defined")
			}
			if buf.Pitch() != tt.wantPitch {
				t.Errorf("Pitch() = %d, want %d", buf.Pitch(), tt.wantPitch)
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if len(buf.Data()) != tt.wantPitch*tt.height {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), tt.wantPitch*tt.height)
			}
		})
	}
}

func TestAlignedPitchBGRA(t *testing.T) {
	if got := AlignedPitch(4, 3); got != 16 {
		t.Errorf("AlignedPitch(4, 3) = %d, want 16", got)
	}
	if got := AlignedPitch(4, 5); got != 32 {
		t.Errorf("AlignedPitch(4, 5) = %d, want 32", got)
	}
}

func TestFreeAndResize(t *testing.T) {
	buf := New[pixel.BGRA8](pixel.BGRA{})
	buf.Allocate(4, 4)
	buf.Free()
	if buf.IsDefined() || buf.Width() != 0 {
		t.Fatal("Free left the buffer defined")
	}

	buf.Allocate(2, 2)
	buf.WritePixel(1, 1, pixel.BGRA8{R: 1})
	buf.Resize(8, 3)
	if buf.Width() != 8 || buf.Height() != 3 {
		t.Fatalf("Resize size = %dx%d", buf.Width(), buf.Height())
	}
	if got := buf.ReadPixel(1, 1); got != (pixel.BGRA8{}) {
		t.Errorf("Resize kept old contents: %+v", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		pitch   int
		width   int
		height  int
		wantErr error
	}{
		{"ok", 40, 10, 10, 4, nil},
		{"short last row", 37, 12, 10, 3, nil},
		{"zero width", 40, 10, 0, 4, ErrInvalidDimensions},
		{"negative height", 40, 10, 10, -1, ErrInvalidDimensions},
		{"pitch", 40, 9, 10, 4, ErrInvalidPitch},
		{"too small", 39, 10, 10, 4, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Wrap[pixel.Luminosity8](pixel.Greyscale{}, make([]byte, tt.size), tt.pitch, tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Wrap() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && buf.Owned() {
				t.Error("wrapped buffer claims ownership")
			}
		})
	}
}

func TestCheckAndAt(t *testing.T) {
	buf := New[pixel.BGRA8](pixel.BGRA{})
	buf.Allocate(3, 2)

	for _, p := range []image.Point{{0, 0}, {2, 1}} {
		if !buf.Check(p.X, p.Y) {
			t.Errorf("Check(%v) = false", p)
		}
	}
	for _, p := range []image.Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if buf.Check(p.X, p.Y) {
			t.Errorf("Check(%v) = true", p)
		}
	}

	c := pixel.BGRA8{B: 9, G: 8, R: 7, A: 6}
	buf.WritePixel(2, 1, c)
	off := buf.Pitch() + 8
	if got := buf.Data()[off : off+4]; !bytes.Equal(got, []byte{9, 8, 7, 6}) {
		t.Errorf("pixel (2,1) at offset %d = %v", off, got)
	}
	if got := len(buf.Row(1)); got != 12 {
		t.Errorf("len(Row(1)) = %d, want 12", got)
	}
}

func TestClear(t *testing.T) {
	buf := New[pixel.Luminosity8](pixel.Greyscale{})
	buf.Allocate(5, 3)
	buf.Clear(0xaa)
	for y := 0; y < 3; y++ {
		if diff := cmp.Diff([]byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa}, buf.Row(y)); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}
	// Padding stays untouched.
	if buf.Data()[5] != 0 {
		t.Error("Clear wrote into row padding")
	}
}

func TestConstSub(t *testing.T) {
	buf := New[pixel.Luminosity8](pixel.Greyscale{})
	buf.Allocate(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			buf.WritePixel(x, y, pixel.Luminosity8(y*4+x))
		}
	}

	view := buf.Const()
	sub := view.Sub(1, 2, 10, 10)
	if sub.Width() != 3 || sub.Height() != 2 {
		t.Fatalf("Sub size = %dx%d, want 3x2", sub.Width(), sub.Height())
	}
	if got := sub.ReadPixel(0, 0); got != 9 {
		t.Errorf("sub (0,0) = %d, want 9", got)
	}
	if got := sub.ReadPixel(2, 1); got != 15 {
		t.Errorf("sub (2,1) = %d, want 15", got)
	}
	if empty := view.Sub(5, 5, 2, 2); empty.IsDefined() {
		t.Error("Sub outside the view is defined")
	}
}

func TestNewConst(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	view, err := NewConst[pixel.Luminosity8](pixel.Greyscale{}, data, 3, 3, 2)
	if err != nil {
		t.Fatalf("NewConst() error = %v", err)
	}
	if got := view.ReadPixel(1, 1); got != 5 {
		t.Errorf("ReadPixel(1,1) = %d, want 5", got)
	}
	if _, err := NewConst[pixel.Luminosity8](pixel.Greyscale{}, data, 3, 3, 3); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("NewConst() error = %v, want ErrDataTooSmall", err)
	}
}

func TestUnpackMono(t *testing.T) {
	// 10 pixels wide: two bytes per row, the last 6 bits are padding.
	data := []byte{
		0b10100000, 0b01_111111,
		0b11111111, 0b11_000000,
	}
	buf, err := UnpackMono(bytes.NewReader(data), 10, 2)
	if err != nil {
		t.Fatalf("UnpackMono() error = %v", err)
	}

	const k, w = uint8(MonoInk), uint8(MonoPaper)
	want := [][]byte{
		{k, w, k, w, w, w, w, w, w, k},
		{k, k, k, k, k, k, k, k, k, k},
	}
	for y := range want {
		if diff := cmp.Diff(want[y], buf.Row(y)); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}
}

func TestUnpackMonoShort(t *testing.T) {
	if _, err := UnpackMono(bytes.NewReader([]byte{0xff}), 8, 2); err == nil {
		t.Error("UnpackMono() with truncated input returned no error")
	}
	if _, err := UnpackMono(bytes.NewReader(nil), 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("UnpackMono() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	buf, err := FromImage[pixel.BGRA8](pixel.BGRA{}, src)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := buf.ReadPixel(0, 0); got != (pixel.BGRA8{B: 30, G: 20, R: 10, A: 255}) {
		t.Errorf("pixel (0,0) = %+v", got)
	}

	out := ToImage(buf.Const())
	if diff := cmp.Diff(src.Pix, out.Pix); diff != "" {
		t.Errorf("ToImage mismatch (-want +got):\n%s", diff)
	}

	grey, err := FromImage[pixel.Luminosity8](pixel.Greyscale{}, src)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := grey.ReadPixel(1, 0); got != 0xff {
		t.Errorf("white luminance = %#x", got)
	}
}
