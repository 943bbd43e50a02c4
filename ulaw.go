// ulaw.go implements the ITU-T G.711 μ-law companding transform.
//
// The encoder follows the shift/one's-complement formulation from TI
// application note SPRA163A; the decode table was generated with the
// ITU-T G.191 software tools.

package gopcm

// μ-law code to linear sample expansion table.
var ulawToLinear = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// EncodeUlaw encodes a 16-bit linear sample as an 8-bit μ-law code.
// The transform is total: every sample value produces a valid code.
func EncodeUlaw(sample int16) uint8 {
	var sign uint8
	if sample < 0 {
		sign = 0x80
	}
	// Reduce to the 14-bit companding domain. Negative values are folded
	// positive with a one's complement so that -1 maps to magnitude 0.
	v := uint16(sample >> 2)
	if sign != 0 {
		v ^= 0xFFFF
	}
	// The μ-law bias shifts every magnitude so that segment boundaries
	// land on powers of two.
	v += 33
	var cw uint8
	switch {
	case v < 0x0040:
		cw = 0x00 | uint8((v&0x001E)>>1)
	case v < 0x0080:
		cw = 0x10 | uint8((v&0x003C)>>2)
	case v < 0x0100:
		cw = 0x20 | uint8((v&0x0078)>>3)
	case v < 0x0200:
		cw = 0x30 | uint8((v&0x00F0)>>4)
	case v < 0x0400:
		cw = 0x40 | uint8((v&0x01E0)>>5)
	case v < 0x0800:
		cw = 0x50 | uint8((v&0x03C0)>>6)
	case v < 0x1000:
		cw = 0x60 | uint8((v&0x0780)>>7)
	case v < 0x2000:
		cw = 0x70 | uint8((v&0x0F00)>>8)
	default:
		cw = 0x7F
	}
	// The full byte is transmitted one's-complemented per G.711.
	return (sign | cw) ^ 0xFF
}

// DecodeUlaw decodes an 8-bit μ-law code to a 16-bit linear sample.
// The transform is total: every byte value decodes.
//
// Note that μ-law has two zero codes: 0xFF (positive zero, the canonical
// encoding of sample 0) and 0x7F (negative zero). Both decode to 0.
func DecodeUlaw(code uint8) int16 {
	return ulawToLinear[code]
}
