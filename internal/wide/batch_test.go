package wide

import "testing"

func TestBatchState_LoadSrc(t *testing.T) {
	src := make([]byte, 64) // 16 pixels * 4 bytes
	for i := 0; i < 16; i++ {
		src[i*4+0] = uint8(i * 10)   // B
		src[i*4+1] = uint8(i*10 + 1) // G
		src[i*4+2] = uint8(i*10 + 2) // R
		src[i*4+3] = uint8(i*10 + 3) // A
	}

	var batch BatchState
	batch.LoadSrc(src)

	for i := 0; i < 16; i++ {
		if batch.SB[i] != uint16(i*10) {
			t.Errorf("SB[%d] = %d, want %d", i, batch.SB[i], i*10)
		}
		if batch.SG[i] != uint16(i*10+1) {
			t.Errorf("SG[%d] = %d, want %d", i, batch.SG[i], i*10+1)
		}
		if batch.SR[i] != uint16(i*10+2) {
			t.Errorf("SR[%d] = %d, want %d", i, batch.SR[i], i*10+2)
		}
		if batch.SA[i] != uint16(i*10+3) {
			t.Errorf("SA[%d] = %d, want %d", i, batch.SA[i], i*10+3)
		}
	}
}

func TestBatchState_RoundTrip(t *testing.T) {
	dst := make([]byte, 64)
	for i := range dst {
		dst[i] = uint8(255 - i)
	}

	var batch BatchState
	batch.LoadDst(dst)
	out := make([]byte, 64)
	batch.StoreDst(out)

	for i := range dst {
		if out[i] != dst[i] {
			t.Errorf("byte %d = %d, want %d", i, out[i], dst[i])
		}
	}
}

func TestBatchState_BlendColor(t *testing.T) {
	dst := make([]byte, 64)
	for i := 0; i < 16; i++ {
		dst[i*4+0] = 0
		dst[i*4+1] = 100
		dst[i*4+2] = 255
		dst[i*4+3] = 42
	}

	var batch BatchState
	batch.LoadDst(dst)
	batch.SplatSrc(255, 100, 0, 255)
	batch.BlendColor(128)
	batch.StoreDst(dst)

	for i := 0; i < 16; i++ {
		px := dst[i*4 : i*4+4]
		if px[0] != 127 || px[1] != 100 || px[2] != 127 {
			t.Errorf("pixel %d = %v, want [127 100 127 _]", i, px)
		}
		if px[3] != 42 {
			t.Errorf("pixel %d alpha = %d, want destination alpha 42", i, px[3])
		}
	}
}

func TestGreyBatch_Blend(t *testing.T) {
	dst := make([]byte, 16)
	src := make([]byte, 16)
	for i := range dst {
		dst[i] = uint8(i * 16)
		src[i] = 255 - uint8(i*16)
	}

	var batch GreyBatch
	batch.LoadDst(dst)
	batch.LoadSrc(src)
	batch.Blend(64)
	batch.StoreDst(dst)

	for i := range dst {
		d, s := i*16, 255-i*16
		if want := lerpScalar(d, s, 64); int(dst[i]) != want {
			t.Errorf("pixel %d = %d, want %d", i, dst[i], want)
		}
	}
}
