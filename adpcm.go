// adpcm.go implements the per-sample IMA ADPCM transform and its state.

package gopcm

import "github.com/telecodec/gopcm/util"

// IMAState carries the predictor and step index of an IMA ADPCM stream.
// The caller threads it through successive EncodeIMA/DecodeIMA calls; each
// call returns the updated state to pass into the next one. The zero value
// is the standard initial state for a fresh stream, which all interoperable
// IMA implementations start from.
//
// StepIndex values above 88 are tolerated and clamped before use, so a
// state unpacked from an untrusted container header cannot cause an
// out-of-range table access.
type IMAState struct {
	Predictor int16
	StepIndex uint8
}

// maxStepIndex is the last valid index into stepSizeTable.
const maxStepIndex = 88

// stepSizeTable holds the 89 IMA quantizer step sizes. The values are
// fixed by the IMA ADPCM specification and must match other
// implementations bit for bit.
var stepSizeTable = [89]int32{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17,
	19, 21, 23, 25, 28, 31, 34, 37, 41, 45,
	50, 55, 60, 66, 73, 80, 88, 97, 107, 118,
	130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796,
	876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878, 2066,
	2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358,
	5894, 6484, 7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794, 32767,
}

// indexAdjustTable maps a 4-bit code to the step index adjustment for the
// next sample. Only the low 3 bits of the code select the entry, so the
// table repeats for the sign-bit half.
var indexAdjustTable = [16]int8{
	-1, -1, -1, -1, 2, 4, 6, 8,
	-1, -1, -1, -1, 2, 4, 6, 8,
}

// EncodeIMA encodes one 16-bit linear sample as a 4-bit IMA ADPCM code and
// returns the updated stream state. The code has the sign of the predictor
// difference in bit 3 and a 3-bit quantized magnitude in bits 2..0.
func EncodeIMA(sample int16, state IMAState) (uint8, IMAState) {
	index := min(state.StepIndex, maxStepIndex)
	step := stepSizeTable[index]

	diff := int32(sample) - int32(state.Predictor)
	var code uint8
	if diff < 0 {
		code = 8
		diff = -diff
	}

	// Quantize |diff| by successive halving of the step size, and
	// accumulate the same reconstruction delta the decoder will compute
	// so the two predictors stay synchronized.
	delta := step >> 3
	threshold := step
	if diff >= threshold {
		code |= 4
		delta += step
		diff -= threshold
	}
	threshold >>= 1
	if diff >= threshold {
		code |= 2
		delta += step >> 1
		diff -= threshold
	}
	threshold >>= 1
	if diff >= threshold {
		code |= 1
		delta += step >> 2
	}

	predictor := int32(state.Predictor)
	if code&8 != 0 {
		predictor -= delta
	} else {
		predictor += delta
	}

	next := IMAState{
		Predictor: int16(util.Clamp(predictor, -32768, 32767)),
		StepIndex: adjustIndex(index, code),
	}
	return code, next
}

// DecodeIMA decodes one 4-bit IMA ADPCM code to a 16-bit linear sample and
// returns the updated stream state. Only the low 4 bits of code are used.
func DecodeIMA(code uint8, state IMAState) (int16, IMAState) {
	code &= 0x0F
	index := min(state.StepIndex, maxStepIndex)
	step := stepSizeTable[index]

	// Reconstruction delta: step/8 plus the step fractions selected by the
	// magnitude bits. This mirrors the accumulation in EncodeIMA exactly.
	delta := step >> 3
	if code&4 != 0 {
		delta += step
	}
	if code&2 != 0 {
		delta += step >> 1
	}
	if code&1 != 0 {
		delta += step >> 2
	}

	predictor := int32(state.Predictor)
	if code&8 != 0 {
		predictor -= delta
	} else {
		predictor += delta
	}

	next := IMAState{
		Predictor: int16(util.Clamp(predictor, -32768, 32767)),
		StepIndex: adjustIndex(index, code),
	}
	return next.Predictor, next
}

// adjustIndex applies the per-code step index adjustment, clamped to the
// valid table range. index must already be <= maxStepIndex.
func adjustIndex(index uint8, code uint8) uint8 {
	next := int8(index) + indexAdjustTable[code&0x0F]
	return uint8(util.Clamp(next, 0, maxStepIndex))
}
