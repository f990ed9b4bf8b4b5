package geom

// SolidMask is the dash mask that draws every pixel.
const SolidMask uint32 = 0xffffffff

// Dash is a repeating 32 pixel on/off pattern and the current position in
// it. Bit i of Mask says whether pixel i (mod 32) of a run is drawn.
//
// Dash is passed by value and returned advanced, so a caller drawing a
// polyline keeps the pattern continuous across segments by threading the
// returned value into the next call.
type Dash struct {
	Mask uint32
	Pos  uint32
}

// Solid returns a dash that draws every pixel.
func Solid() Dash { return Dash{Mask: SolidMask} }

// IsSolid reports whether every pixel is drawn.
func (d Dash) IsSolid() bool { return d.Mask == SolidMask }

// On reports whether the pixel i steps after the current position is drawn.
func (d Dash) On(i int) bool {
	return d.Mask&(1<<((d.Pos+uint32(i))&31)) != 0
}

// Advance returns the dash moved forward by n pixels.
func (d Dash) Advance(n int) Dash {
	d.Pos = (d.Pos + uint32(n)) & 31
	return d
}
