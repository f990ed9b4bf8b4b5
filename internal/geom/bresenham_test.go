package geom

import (
	"image"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(x1, y1, x2, y2 int) []image.Point {
	var pts []image.Point
	Each(x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

func TestBresenhamLines(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           []image.Point
	}{
		{"point", 3, 4, 3, 4, []image.Point{{3, 4}}},
		{"horizontal", 0, 0, 3, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 1, 2, 1, 0, []image.Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", 0, 0, 2, 2, []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{"tie", 0, 0, 2, 1, []image.Point{{0, 0}, {1, 1}, {2, 1}}},
		{"tie reversed", 2, 1, 0, 0, []image.Point{{2, 1}, {1, 1}, {0, 0}}},
		{"shallow", 0, 0, 4, 1, []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBresenhamCountAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x1, y1 := rng.Intn(81)-40, rng.Intn(81)-40
		x2, y2 := rng.Intn(81)-40, rng.Intn(81)-40

		fwd := collect(x1, y1, x2, y2)
		want := max(abs(x2-x1), abs(y2-y1)) + 1
		if len(fwd) != want {
			t.Fatalf("(%d,%d)-(%d,%d): %d points, want %d", x1, y1, x2, y2, len(fwd), want)
		}
		if fwd[0] != (image.Point{X: x1, Y: y1}) || fwd[len(fwd)-1] != (image.Point{X: x2, Y: y2}) {
			t.Fatalf("(%d,%d)-(%d,%d): endpoints %v %v", x1, y1, x2, y2, fwd[0], fwd[len(fwd)-1])
		}

		rev := collect(x2, y2, x1, y1)
		slices.Reverse(rev)
		if diff := cmp.Diff(fwd, rev); diff != "" {
			t.Fatalf("(%d,%d)-(%d,%d) not symmetric (-forward +reversed):\n%s", x1, y1, x2, y2, diff)
		}
	}
}

func TestBresenhamPointAtAndSeek(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		x1, y1 := rng.Intn(81)-40, rng.Intn(81)-40
		x2, y2 := rng.Intn(81)-40, rng.Intn(81)-40
		pts := collect(x1, y1, x2, y2)

		b := NewBresenham(x1, y1, x2, y2)
		b.Next()
		for k, want := range pts {
			if x, y := b.PointAt(k); x != want.X || y != want.Y {
				t.Fatalf("(%d,%d)-(%d,%d): PointAt(%d) = (%d,%d), want %v", x1, y1, x2, y2, k, x, y, want)
			}
		}

		k := rng.Intn(len(pts))
		b.Seek(k)
		var rest []image.Point
		for {
			rest = append(rest, image.Point{X: b.X, Y: b.Y})
			if !b.Next() {
				break
			}
		}
		if diff := cmp.Diff(pts[k:], rest); diff != "" {
			t.Fatalf("(%d,%d)-(%d,%d) walk after Seek(%d) (-want +got):\n%s", x1, y1, x2, y2, k, diff)
		}
	}
}

func TestBresenhamNextExhausted(t *testing.T) {
	b := NewBresenham(0, 0, 2, 0)
	if b.Remaining() != 2 || b.Done() {
		t.Fatalf("Remaining() = %d", b.Remaining())
	}
	b.Next()
	b.Next()
	if !b.Done() {
		t.Error("Done() = false at the endpoint")
	}
	if b.Next() {
		t.Error("Next() = true after the endpoint")
	}
	if b.X != 2 || b.Y != 0 {
		t.Errorf("position moved past the endpoint: (%d,%d)", b.X, b.Y)
	}
}

func TestBresenhamAdvanceTo(t *testing.T) {
	b := NewBresenham(0, 0, 10, 5)
	if b.AdvanceTo(2) {
		t.Error("AdvanceTo(2) reported the end of the edge")
	}
	if b.Y != 2 {
		t.Errorf("Y = %d after AdvanceTo(2)", b.Y)
	}
	if b.X != 3 {
		t.Errorf("X = %d after AdvanceTo(2), want first pixel of the row", b.X)
	}
	if !b.AdvanceTo(5) {
		t.Error("AdvanceTo(5) did not report the end of the edge")
	}
	if !b.AdvanceTo(9) || b.Y != 5 {
		t.Errorf("AdvanceTo past the end moved to row %d", b.Y)
	}
}

func TestDash(t *testing.T) {
	d := Dash{Mask: 0x0000000f}
	for i := 0; i < 8; i++ {
		if got, want := d.On(i), i < 4; got != want {
			t.Errorf("On(%d) = %v, want %v", i, got, want)
		}
	}
	d = d.Advance(30)
	if d.Pos != 30 || !d.On(2) || d.On(1) {
		t.Errorf("Advance(30) = %+v", d)
	}
	if !Solid().IsSolid() || d.IsSolid() {
		t.Error("IsSolid")
	}
}
