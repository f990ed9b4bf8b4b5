package wide

import "encoding/binary"

// U64x8 represents one 64 byte block as 8 uint64 lanes.
// Bitwise operations on the block are independent of the pixel layout.
type U64x8 [8]uint64

// BlockBytes is the size of the block covered by U64x8.
const BlockBytes = 64

// LoadU64 reads a 64 byte block.
func LoadU64(src []byte) U64x8 {
	_ = src[BlockBytes-1]
	var result U64x8
	for i := range result {
		result[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
	return result
}

// SplatU64 creates U64x8 with all lanes set to n.
func SplatU64(n uint64) U64x8 {
	var result U64x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Store writes the block to dst.
func (v U64x8) Store(dst []byte) {
	_ = dst[BlockBytes-1]
	for i := range v {
		binary.LittleEndian.PutUint64(dst[i*8:], v[i])
	}
}

// Or performs element-wise v | other.
func (v U64x8) Or(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// And performs element-wise v & other.
func (v U64x8) And(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Not performs element-wise ^v.
func (v U64x8) Not() U64x8 {
	var result U64x8
	for i := range v {
		result[i] = ^v[i]
	}
	return result
}

// OrNot performs element-wise v | ^other.
func (v U64x8) OrNot(other U64x8) U64x8 {
	var result U64x8
	for i := range v {
		result[i] = v[i] | ^other[i]
	}
	return result
}
