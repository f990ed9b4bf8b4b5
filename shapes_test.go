package memcanvas

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendArc(t *testing.T) {
	center := image.Pt(100, 100)
	tests := []struct {
		name       string
		start, end float64
		want       []image.Point
	}{
		{
			name:  "empty",
			start: 45, end: 45,
			want:  []image.Point{{107, 93}, {107, 93}},
		},
		{
			name:  "wrap",
			start: 354.375, end: 5.625,
			want:  []image.Point{{100, 91}, {100, 90}, {100, 91}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendArc(nil, center, 10, tt.start, tt.end)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("appendArc mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendArcQuarter(t *testing.T) {
	// 0 and 90 degrees fall on table entries 0 and 16; only the entries
	// strictly between are added to the exact endpoints.
	got := appendArc(nil, image.Pt(100, 100), 10, 0, 90)
	if len(got) != 17 {
		t.Fatalf("len = %d, want 17", len(got))
	}
	if got[0] != image.Pt(100, 90) || got[16] != image.Pt(110, 100) {
		t.Errorf("endpoints = %v, %v", got[0], got[16])
	}
}

func TestNormalizeDegrees(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{0, 0}, {360, 0}, {-90, 270}, {725, 5},
	} {
		if got := normalizeDegrees(tt.in); got != tt.want {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDrawArc(t *testing.T) {
	c := newGreyCanvas(t, 40, 40)
	c.ClearWhite()
	c.SelectBlackPen(1)
	c.DrawArc(image.Pt(20, 20), 10, 0, 90)

	for _, p := range []image.Point{{20, 10}, {30, 20}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0 {
			t.Errorf("arc end %v = %#x, want black", p, got)
		}
	}
	for _, p := range []image.Point{{10, 20}, {20, 30}, {20, 20}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0xff {
			t.Errorf("pixel %v = %#x, want white", p, got)
		}
	}
}

func TestDrawSegment(t *testing.T) {
	c := newGreyCanvas(t, 40, 40)
	c.ClearWhite()
	c.SelectNullPen()
	c.SelectBlackBrush()
	c.DrawSegment(image.Pt(20, 20), 10, 0, 90, false)

	if got := greyAt(t, c, 24, 16); got != 0 {
		t.Errorf("inside = %#x, want black", got)
	}
	for _, p := range []image.Point{{16, 24}, {16, 16}, {24, 24}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0xff {
			t.Errorf("pixel %v = %#x, want white", p, got)
		}
	}
}

func TestDrawSegmentOutsideSkipped(t *testing.T) {
	c := newGreyCanvas(t, 10, 10)
	c.ClearWhite()
	c.SelectBlackBrush()
	c.DrawSegment(image.Pt(50, 50), 10, 0, 180, true)
	c.DrawArc(image.Pt(-30, 5), 10, 0, 180)
	for _, row := range greyRows(t, c) {
		for _, v := range row {
			if v != 0xff {
				t.Fatal("shape outside the canvas was drawn")
			}
		}
	}
}

func TestDrawAnnulus(t *testing.T) {
	c := newGreyCanvas(t, 60, 60)
	c.ClearWhite()
	c.SelectNullPen()
	c.SelectBlackBrush()
	c.DrawAnnulus(image.Pt(30, 30), 10, 20, 0, 0)

	// ring
	for _, p := range []image.Point{{41, 19}, {45, 30}, {30, 45}, {15, 30}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0 {
			t.Errorf("ring %v = %#x, want black", p, got)
		}
	}
	// hole and outside
	for _, p := range []image.Point{{30, 30}, {33, 33}, {2, 2}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0xff {
			t.Errorf("pixel %v = %#x, want white", p, got)
		}
	}
}

func TestDrawRoundRectangle(t *testing.T) {
	c := newGreyCanvas(t, 20, 20)
	c.ClearWhite()
	c.SelectNullPen()
	c.SelectBlackBrush()
	c.DrawRoundRectangle(0, 0, 20, 20, 8, 10)

	if got := greyAt(t, c, 10, 10); got != 0 {
		t.Errorf("centre = %#x, want black", got)
	}
	for _, p := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if got := greyAt(t, c, p.X, p.Y); got != 0xff {
			t.Errorf("corner %v = %#x, want white", p, got)
		}
	}
}

func TestDrawRoundRectangleNoRadius(t *testing.T) {
	round := newGreyCanvas(t, 10, 10)
	round.ClearWhite()
	round.DrawRoundRectangle(2, 2, 8, 8, 1, 0)

	plain := newGreyCanvas(t, 10, 10)
	plain.ClearWhite()
	plain.DrawRectangle(2, 2, 8, 8)

	if diff := cmp.Diff(greyRows(t, plain), greyRows(t, round)); diff != "" {
		t.Errorf("radius 0 differs from DrawRectangle (-want +got):\n%s", diff)
	}
}
