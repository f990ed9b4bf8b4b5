package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadU8 widens 16 bytes into lanes.
func LoadU8(src []byte) U16x16 {
	_ = src[15]
	var result U16x16
	for i := range result {
		result[i] = uint16(src[i])
	}
	return result
}

// StoreU8 narrows the lanes into 16 bytes. Lanes must hold values <= 255.
func (v U16x16) StoreU8(dst []byte) {
	_ = dst[15]
	for i := range v {
		dst[i] = uint8(v[i]) // #nosec G115
	}
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Shr8 shifts every element right by 8 bits.
func (v U16x16) Shr8() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] >> 8
	}
	return result
}

// Lerp moves every element toward other by alpha/256:
//
//	(v*(256-alpha) + other*alpha) >> 8
//
// For 8-bit inputs this equals v + floor((other-v)*alpha / 256) computed
// with signed arithmetic, and the sum never exceeds 255*256.
func (v U16x16) Lerp(other U16x16, alpha uint16) U16x16 {
	return v.Mul(SplatU16(256 - alpha)).Add(other.Mul(SplatU16(alpha))).Shr8()
}
