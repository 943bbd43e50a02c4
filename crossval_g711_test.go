package gopcm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zaf/g711"
)

// Cross-validation against github.com/zaf/g711, an independent G.711
// implementation. The encoders agree on the non-negative domain and on
// every value the 256 codes decode to; away from those points the two
// round negative segment boundaries differently, so the full negative
// domain is not compared.

func TestDecodeMatchesZafG711(t *testing.T) {
	for c := 0; c < 256; c++ {
		require.Equal(t, g711.DecodeAlawFrame(uint8(c)), DecodeAlaw(uint8(c)), "alaw code %#02x", c)
		require.Equal(t, g711.DecodeUlawFrame(uint8(c)), DecodeUlaw(uint8(c)), "ulaw code %#02x", c)
	}
}

func TestEncodeMatchesZafG711NonNegative(t *testing.T) {
	for s := 0; s <= 32767; s++ {
		require.Equal(t, g711.EncodeAlawFrame(int16(s)), EncodeAlaw(int16(s)), "alaw sample %d", s)
		require.Equal(t, g711.EncodeUlawFrame(int16(s)), EncodeUlaw(int16(s)), "ulaw sample %d", s)
	}
}

func TestEncodeMatchesZafG711OnDecodedValues(t *testing.T) {
	for c := 0; c < 256; c++ {
		a := DecodeAlaw(uint8(c))
		require.Equal(t, g711.EncodeAlawFrame(a), EncodeAlaw(a), "alaw sample %d", a)
		u := DecodeUlaw(uint8(c))
		require.Equal(t, g711.EncodeUlawFrame(u), EncodeUlaw(u), "ulaw sample %d", u)
	}
}
