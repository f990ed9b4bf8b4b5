package wide

// BatchState holds 16 BGRA pixels for batch processing.
// Uses Structure-of-Arrays (SoA) layout for SIMD-friendly access.
//
// Memory layout of the pixels:
//
//	[B0, G0, R0, A0, B1, G1, R1, A1, ...]
//
// Lane layout:
//
//	SB: [B0, B1, B2, ..., B15]
//	SG: [G0, G1, G2, ..., G15]
//	...
type BatchState struct {
	SB, SG, SR, SA U16x16 // Source BGRA (16 pixels)
	DB, DG, DR, DA U16x16 // Destination BGRA (16 pixels)
}

// BatchPixels is the number of pixels in a batch.
const BatchPixels = 16

// LoadSrc loads 16 BGRA pixels from byte slice into source channels.
// src must have at least 64 bytes.
func (b *BatchState) LoadSrc(src []byte) {
	_ = src[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		b.SB[i] = uint16(src[offset+0])
		b.SG[i] = uint16(src[offset+1])
		b.SR[i] = uint16(src[offset+2])
		b.SA[i] = uint16(src[offset+3])
	}
}

// SplatSrc sets all 16 source pixels to one color.
func (b *BatchState) SplatSrc(blue, green, red, alpha uint8) {
	b.SB = SplatU16(uint16(blue))
	b.SG = SplatU16(uint16(green))
	b.SR = SplatU16(uint16(red))
	b.SA = SplatU16(uint16(alpha))
}

// LoadDst loads 16 BGRA pixels from byte slice into destination channels.
// dst must have at least 64 bytes.
func (b *BatchState) LoadDst(dst []byte) {
	_ = dst[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		b.DB[i] = uint16(dst[offset+0])
		b.DG[i] = uint16(dst[offset+1])
		b.DR[i] = uint16(dst[offset+2])
		b.DA[i] = uint16(dst[offset+3])
	}
}

// StoreDst stores 16 BGRA pixels from destination channels to byte slice.
// dst must have at least 64 bytes.
func (b *BatchState) StoreDst(dst []byte) {
	_ = dst[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		// Intentional truncation - color values are guaranteed to be in [0, 255] range
		dst[offset+0] = uint8(b.DB[i]) // #nosec G115
		dst[offset+1] = uint8(b.DG[i]) // #nosec G115
		dst[offset+2] = uint8(b.DR[i]) // #nosec G115
		dst[offset+3] = uint8(b.DA[i]) // #nosec G115
	}
}

// BlendColor moves the destination color channels toward the source by
// alpha/256. The destination alpha channel is kept.
func (b *BatchState) BlendColor(alpha uint8) {
	a := uint16(alpha)
	b.DB = b.DB.Lerp(b.SB, a)
	b.DG = b.DG.Lerp(b.SG, a)
	b.DR = b.DR.Lerp(b.SR, a)
}

// GreyBatch holds 16 luminosity pixels.
type GreyBatch struct {
	S, D U16x16
}

// LoadSrc loads 16 source pixels.
func (b *GreyBatch) LoadSrc(src []byte) { b.S = LoadU8(src) }

// SplatSrc sets all 16 source pixels to v.
func (b *GreyBatch) SplatSrc(v uint8) { b.S = SplatU16(uint16(v)) }

// LoadDst loads 16 destination pixels.
func (b *GreyBatch) LoadDst(dst []byte) { b.D = LoadU8(dst) }

// StoreDst stores the 16 destination pixels.
func (b *GreyBatch) StoreDst(dst []byte) { b.D.StoreU8(dst) }

// Blend moves the destination toward the source by alpha/256.
func (b *GreyBatch) Blend(alpha uint8) {
	b.D = b.D.Lerp(b.S, uint16(alpha))
}
