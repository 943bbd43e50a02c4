package gopcm

import "testing"

func TestDecodeIMA(t *testing.T) {
	tests := []struct {
		name   string
		code   uint8
		state  IMAState
		want   int16
		wantSt IMAState
	}{
		{"fresh stream", 6, IMAState{}, 10, IMAState{10, 6}},
		{"index clamped at 0", 3, IMAState{200, 0}, 204, IMAState{204, 0}},
		{"index clamped at 88", 14, IMAState{20200, 84}, -16175, IMAState{-16175, 88}},
		{"predictor saturates low", 14, IMAState{-30123, 80}, -32768, IMAState{-32768, 86}},
		{"predictor saturates high", 7, IMAState{30123, 80}, 32767, IMAState{32767, 88}},
		{"high nibble bits ignored", 16, IMAState{}, 0, IMAState{0, 0}},
		{"oversized index clamped", 10, IMAState{0, 89}, -20478, IMAState{-20478, 87}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, st := DecodeIMA(tt.code, tt.state)
			if got != tt.want || st != tt.wantSt {
				t.Errorf("DecodeIMA(%d, %+v) = %d, %+v; want %d, %+v",
					tt.code, tt.state, got, st, tt.want, tt.wantSt)
			}
		})
	}
}

func TestEncodeIMA(t *testing.T) {
	tests := []struct {
		name   string
		sample int16
		state  IMAState
		want   uint8
		wantSt IMAState
	}{
		{"fresh stream", 10, IMAState{}, 6, IMAState{10, 6}},
		{"index clamped at 0", 0, IMAState{}, 0, IMAState{0, 0}},
		{"index clamped at 88", 897, IMAState{-30350, 83}, 6, IMAState{2718, 88}},
		{"predictor saturates low", -32697, IMAState{-32550, 65}, 8, IMAState{-32768, 64}},
		{"predictor saturates high", 32760, IMAState{32700, 65}, 0, IMAState{32767, 64}},
		{"oversized index clamped", 0, IMAState{0, 89}, 0, IMAState{4095, 87}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, st := EncodeIMA(tt.sample, tt.state)
			if got != tt.want || st != tt.wantSt {
				t.Errorf("EncodeIMA(%d, %+v) = %d, %+v; want %d, %+v",
					tt.sample, tt.state, got, st, tt.want, tt.wantSt)
			}
		})
	}
}

func TestIMAFreshStreamSequence(t *testing.T) {
	// A short rising ramp from the standard initial state, checked against
	// a reference IMA ADPCM implementation.
	samples := []int16{25, 40, 60, 80, 100, 160, 220}
	wantCodes := []uint8{7, 7, 2, 2, 2, 7, 5}
	wantDecoded := []int16{11, 41, 62, 80, 97, 143, 217}

	var encSt, decSt IMAState
	for i, s := range samples {
		code, nextEnc := EncodeIMA(s, encSt)
		if code != wantCodes[i] {
			t.Fatalf("code[%d] = %d, want %d", i, code, wantCodes[i])
		}
		decoded, nextDec := DecodeIMA(code, decSt)
		if decoded != wantDecoded[i] {
			t.Fatalf("decoded[%d] = %d, want %d", i, decoded, wantDecoded[i])
		}
		if nextEnc != nextDec {
			t.Fatalf("state diverged at %d: encoder %+v, decoder %+v", i, nextEnc, nextDec)
		}
		encSt, decSt = nextEnc, nextDec
	}
	want := IMAState{217, 25}
	if encSt != want {
		t.Fatalf("final state = %+v, want %+v", encSt, want)
	}
}

func TestIMAEncoderDecoderSynchronization(t *testing.T) {
	// Feed the encoder a slow triangle wave and decode its codes with an
	// independently threaded state. The decoded sample must equal the
	// encoder's own predictor at every step (bit-exact mirror), the state
	// trajectories must be identical, and after the adaptation ramp the
	// reconstruction must track the signal closely.
	signal := make([]int16, 2000)
	value, dir := int32(0), int32(90)
	for i := range signal {
		signal[i] = int16(value)
		value += dir
		if value > 7900 || value < -7900 {
			dir = -dir
		}
	}

	var encSt, decSt IMAState
	for i, s := range signal {
		code, nextEnc := EncodeIMA(s, encSt)
		decoded, nextDec := DecodeIMA(code, decSt)
		if nextEnc != nextDec {
			t.Fatalf("state diverged at sample %d: encoder %+v, decoder %+v",
				i, nextEnc, nextDec)
		}
		if decoded != nextEnc.Predictor {
			t.Fatalf("decoded[%d] = %d, want encoder predictor %d",
				i, decoded, nextEnc.Predictor)
		}
		if i >= 64 {
			diff := int32(decoded) - int32(s)
			if diff < 0 {
				diff = -diff
			}
			if diff > 512 {
				t.Fatalf("reconstruction error %d at sample %d exceeds bound", diff, i)
			}
		}
		encSt, decSt = nextEnc, nextDec
	}
}

func TestIMAStateBounds(t *testing.T) {
	// Any code sequence from any tolerated starting state keeps the step
	// index in 0..88; the predictor is clamped by construction.
	starts := []IMAState{
		{},
		{32767, 88},
		{-32768, 0},
		{1234, 120}, // oversized index is clamped on first use
	}
	for _, start := range starts {
		st := start
		seed := uint32(0x9E3779B9)
		for i := 0; i < 4096; i++ {
			seed = seed*1664525 + 1013904223
			_, st = DecodeIMA(uint8(seed>>24), st)
			if st.StepIndex > 88 {
				t.Fatalf("step index %d out of range from start %+v", st.StepIndex, start)
			}
		}
	}
}
