// alaw.go implements the ITU-T G.711 A-law companding transform.
//
// The encoder follows the shift/one's-complement formulation from TI
// application note SPRA163A; the decode table was generated with the
// ITU-T G.191 software tools.

package gopcm

// A-law code to linear sample expansion table.
var alawToLinear = [256]int16{
	-5504, -5248, -6016, -5760, -4480, -4224, -4992, -4736,
	-7552, -7296, -8064, -7808, -6528, -6272, -7040, -6784,
	-2752, -2624, -3008, -2880, -2240, -2112, -2496, -2368,
	-3776, -3648, -4032, -3904, -3264, -3136, -3520, -3392,
	-22016, -20992, -24064, -23040, -17920, -16896, -19968, -18944,
	-30208, -29184, -32256, -31232, -26112, -25088, -28160, -27136,
	-11008, -10496, -12032, -11520, -8960, -8448, -9984, -9472,
	-15104, -14592, -16128, -15616, -13056, -12544, -14080, -13568,
	-344, -328, -376, -360, -280, -264, -312, -296,
	-472, -456, -504, -488, -408, -392, -440, -424,
	-88, -72, -120, -104, -24, -8, -56, -40,
	-216, -200, -248, -232, -152, -136, -184, -168,
	-1376, -1312, -1504, -1440, -1120, -1056, -1248, -1184,
	-1888, -1824, -2016, -1952, -1632, -1568, -1760, -1696,
	-688, -656, -752, -720, -560, -528, -624, -592,
	-944, -912, -1008, -976, -816, -784, -880, -848,
	5504, 5248, 6016, 5760, 4480, 4224, 4992, 4736,
	7552, 7296, 8064, 7808, 6528, 6272, 7040, 6784,
	2752, 2624, 3008, 2880, 2240, 2112, 2496, 2368,
	3776, 3648, 4032, 3904, 3264, 3136, 3520, 3392,
	22016, 20992, 24064, 23040, 17920, 16896, 19968, 18944,
	30208, 29184, 32256, 31232, 26112, 25088, 28160, 27136,
	11008, 10496, 12032, 11520, 8960, 8448, 9984, 9472,
	15104, 14592, 16128, 15616, 13056, 12544, 14080, 13568,
	344, 328, 376, 360, 280, 264, 312, 296,
	472, 456, 504, 488, 408, 392, 440, 424,
	88, 72, 120, 104, 24, 8, 56, 40,
	216, 200, 248, 232, 152, 136, 184, 168,
	1376, 1312, 1504, 1440, 1120, 1056, 1248, 1184,
	1888, 1824, 2016, 1952, 1632, 1568, 1760, 1696,
	688, 656, 752, 720, 560, 528, 624, 592,
	944, 912, 1008, 976, 816, 784, 880, 848,
}

// EncodeAlaw encodes a 16-bit linear sample as an 8-bit A-law code.
// The transform is total: every sample value produces a valid code.
func EncodeAlaw(sample int16) uint8 {
	var sign uint8
	if sample < 0 {
		sign = 0x80
	}
	// Reduce to the 13-bit companding domain. Negative values are folded
	// positive with a one's complement so that -1 maps to magnitude 0.
	v := uint16(sample >> 3)
	if sign != 0 {
		v ^= 0xFFFF
	}
	// Segment search: each segment spans twice the range of the previous
	// one and contributes a 4-bit mantissa taken just below its MSB.
	var cw uint8
	switch {
	case v < 0x020:
		cw = 0x00 | uint8((v&0x01E)>>1)
	case v < 0x040:
		cw = 0x10 | uint8((v&0x01E)>>1)
	case v < 0x080:
		cw = 0x20 | uint8((v&0x03C)>>2)
	case v < 0x100:
		cw = 0x30 | uint8((v&0x078)>>3)
	case v < 0x200:
		cw = 0x40 | uint8((v&0x0F0)>>4)
	case v < 0x400:
		cw = 0x50 | uint8((v&0x1E0)>>5)
	case v < 0x800:
		cw = 0x60 | uint8((v&0x3C0)>>6)
	case v < 0x1000:
		cw = 0x70 | uint8((v&0x780)>>7)
	default:
		cw = 0x7F
	}
	// Even-bit inversion required by G.711 for transmission.
	return (sign | cw) ^ 0xD5
}

// DecodeAlaw decodes an 8-bit A-law code to a 16-bit linear sample.
// The transform is total: every byte value decodes.
func DecodeAlaw(code uint8) int16 {
	return alawToLinear[code]
}
