package imagebuf

import (
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"

	"github.com/gogpu/memcanvas/pixel"
)

// Greyscale values produced by UnpackMono.
const (
	MonoInk   pixel.Luminosity8 = 0x00
	MonoPaper pixel.Luminosity8 = 0xff
)

// UnpackMono reads a 1 bit per pixel bitmap into a new greyscale buffer.
//
// Rows are packed most significant bit first and padded to a whole byte,
// as in the PBM P4 raster. A set bit is ink and becomes MonoInk; a clear
// bit becomes MonoPaper. The result is the usual source of StretchMono.
func UnpackMono(r io.Reader, width, height int) (*Writable[pixel.Luminosity8], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	var traits pixel.Greyscale
	buf := New[pixel.Luminosity8](traits)
	buf.Allocate(width, height)

	br := bitreader.NewReader(r)
	pad := uint((8 - width%8) % 8)
	for y := 0; y < height; y++ {
		row := buf.Row(y)
		for x := range row {
			bit, err := br.Read1()
			if err != nil {
				return nil, fmt.Errorf("imagebuf: mono row %d: %w", y, err)
			}
			if bit {
				row[x] = uint8(MonoInk)
			} else {
				row[x] = uint8(MonoPaper)
			}
		}
		if pad > 0 {
			if _, err := br.Read8(pad); err != nil {
				return nil, fmt.Errorf("imagebuf: mono row %d padding: %w", y, err)
			}
		}
	}
	return buf, nil
}
