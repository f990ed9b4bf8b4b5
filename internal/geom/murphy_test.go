package geom

import (
	"image"
	"testing"
)

type recorder struct {
	pixels   map[image.Point]int
	polygons [][]image.Point
}

func newRecorder() *recorder {
	return &recorder{pixels: make(map[image.Point]int)}
}

func (r *recorder) Plot(x, y int) {
	r.pixels[image.Point{X: x, Y: y}]++
}

func (r *recorder) FillPolygon(points []image.Point) {
	r.polygons = append(r.polygons, append([]image.Point(nil), points...))
}

func (r *recorder) covers(t *testing.T, box image.Rectangle) {
	t.Helper()
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if r.pixels[image.Point{X: x, Y: y}] == 0 {
				t.Errorf("pixel (%d,%d) not drawn", x, y)
			}
		}
	}
	for p := range r.pixels {
		if !p.In(box) {
			t.Errorf("pixel %v drawn outside %v", p, box)
		}
	}
}

func TestWidelineHorizontal(t *testing.T) {
	rec := newRecorder()
	m := NewMurphy(rec)
	dash := m.Wideline(10, 10, 30, 10, 4, 0, Solid())

	rec.covers(t, image.Rect(10, 8, 31, 13))
	if dash.Pos != 20 {
		t.Errorf("dash advanced to %d, want 20", dash.Pos)
	}
	if len(rec.polygons) != 0 {
		t.Errorf("fresh segment drew %d joins", len(rec.polygons))
	}
}

func TestWidelineVertical(t *testing.T) {
	rec := newRecorder()
	NewMurphy(rec).Wideline(5, 0, 5, 10, 3, 0, Solid())

	// The half width 1.5 rounds to 2 on each side.
	rec.covers(t, image.Rect(3, 0, 8, 11))
}

func TestWidelineReversedSameCoverage(t *testing.T) {
	fwd := newRecorder()
	NewMurphy(fwd).Wideline(0, 0, 40, 13, 5, 0, Solid())
	rev := newRecorder()
	NewMurphy(rev).Wideline(40, 13, 0, 0, 5, 0, Solid())

	for p := range fwd.pixels {
		if rev.pixels[p] == 0 {
			t.Errorf("pixel %v only drawn in forward direction", p)
		}
	}
	for p := range rev.pixels {
		if fwd.pixels[p] == 0 {
			t.Errorf("pixel %v only drawn in reverse direction", p)
		}
	}
}

func TestWidelineZeroLength(t *testing.T) {
	rec := newRecorder()
	dash := NewMurphy(rec).Wideline(3, 3, 3, 3, 5, 0, Dash{Mask: 1, Pos: 7})
	if len(rec.pixels) != 0 {
		t.Errorf("zero length line drew %d pixels", len(rec.pixels))
	}
	if dash.Pos != 7 {
		t.Errorf("dash moved to %d", dash.Pos)
	}
}

func TestWidelineDash(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		on             func(x int) bool
	}{
		{"forward", 0, 5, 20, 5, func(x int) bool { return x < 16 }},
		{"reversed", 20, 5, 0, 5, func(x int) bool { return 20-x < 16 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			NewMurphy(rec).Wideline(tt.x1, tt.y1, tt.x2, tt.y2, 2, 0, Dash{Mask: 0x0000ffff})
			for x := 0; x <= 20; x++ {
				got := rec.pixels[image.Point{X: x, Y: 5}] > 0
				if got != tt.on(x) {
					t.Errorf("pixel x=%d drawn = %v, want %v", x, got, tt.on(x))
				}
			}
		})
	}
}

func TestWidelineMiterJoin(t *testing.T) {
	rec := newRecorder()
	m := NewMurphy(rec)
	dash := m.Wideline(10, 10, 30, 10, 6, 0, Solid())
	m.Wideline(30, 10, 30, 30, 6, 1, dash)

	if len(rec.polygons) != 1 {
		t.Fatalf("got %d join polygons, want 1", len(rec.polygons))
	}
	if n := len(rec.polygons[0]); n != 4 {
		t.Errorf("join polygon has %d points, want 4", n)
	}

	// Starting over with miter 0 must not join to the old rails.
	m.Wideline(50, 50, 60, 50, 6, 0, Solid())
	if len(rec.polygons) != 1 {
		t.Errorf("miter 0 produced a join")
	}
}
