package pixop

import "testing"

func TestAccelerationString(t *testing.T) {
	tests := []struct {
		a    Acceleration
		want string
	}{
		{Portable, "portable"},
		{Wide, "wide"},
		{Acceleration(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestDetectUnknownArch(t *testing.T) {
	if got := detect("riscv64"); got != Portable {
		t.Errorf("detect(riscv64) = %v, want portable", got)
	}
}

func TestSetAcceleration(t *testing.T) {
	t.Cleanup(ResetAcceleration)

	SetAcceleration(Portable)
	if got := CurrentAcceleration(); got != Portable {
		t.Errorf("CurrentAcceleration() = %v after SetAcceleration(Portable)", got)
	}
	SetAcceleration(Wide)
	if got := CurrentAcceleration(); got != Wide {
		t.Errorf("CurrentAcceleration() = %v after SetAcceleration(Wide)", got)
	}
	ResetAcceleration()
	if got := CurrentAcceleration(); got != DetectAcceleration() {
		t.Errorf("CurrentAcceleration() = %v after reset, want detected %v", got, DetectAcceleration())
	}
}
