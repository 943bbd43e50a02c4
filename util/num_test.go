package util

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(int32(-100)) != 100 {
		t.Error("Abs(int32(-100)) should be 100")
	}
	if Abs(int16(-32)) != 32 {
		t.Error("Abs(int16(-32)) should be 32")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(int32(40000), -32768, 32767) != 32767 {
		t.Error("Clamp should saturate at the upper bound")
	}
	if Clamp(int32(-40000), -32768, 32767) != -32768 {
		t.Error("Clamp should saturate at the lower bound")
	}
	if Clamp(int32(123), -32768, 32767) != 123 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(90, 0, 88) != 88 {
		t.Error("Clamp(90, 0, 88) should be 88")
	}
}
