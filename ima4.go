// ima4.go implements the AIFF-C / QuickTime "ima4" block layout on top of
// the per-sample IMA ADPCM transform.

package gopcm

import "github.com/telecodec/gopcm/util"

const (
	// IMA4BlockSize is the byte length of one ima4 block: a 2-byte state
	// header followed by 32 bytes of packed codes.
	IMA4BlockSize = 34

	// IMA4BlockSamples is the number of samples held by one ima4 block.
	IMA4BlockSamples = 64
)

// DecodeIMA4 decodes one 34-byte ima4 block into 64 samples and returns the
// state to carry into the next block.
//
// The block header stores the top predictor bits and a 7-bit step index:
// pppppppp piiiiiii, big-endian. When the incoming state agrees with the
// header (same step index, predictors within 127), the previous block's
// trailing state is used instead of the coarser header state; this matches
// the Apple AudioToolbox decoder and improves accuracy across block
// boundaries. Pass the zero IMAState for the first block of a stream.
//
// block must be exactly IMA4BlockSize bytes and samples exactly
// IMA4BlockSamples entries, otherwise ErrInvalidBlockSize or
// ErrInvalidSampleCount is returned and samples is left unmodified.
func DecodeIMA4(block []byte, state IMAState, samples []int16) (IMAState, error) {
	if len(block) != IMA4BlockSize {
		return state, ErrInvalidBlockSize
	}
	if len(samples) != IMA4BlockSamples {
		return state, ErrInvalidSampleCount
	}

	predictor := int16(uint16(block[0])<<8 | uint16(block[1]&0x80))
	index := min(block[1]&0x7F, maxStepIndex)

	if state.StepIndex != index ||
		util.Abs(int32(state.Predictor)-int32(predictor)) > 127 {
		state = IMAState{Predictor: predictor, StepIndex: index}
	}

	for i, b := range block[2:] {
		samples[2*i], state = DecodeIMA(b&0x0F, state)
		samples[2*i+1], state = DecodeIMA(b>>4, state)
	}
	return state, nil
}

// EncodeIMA4 encodes 64 samples into one 34-byte ima4 block and returns the
// state to carry into the next block. The incoming state is recorded in the
// block header; pass the zero IMAState for the first block of a stream.
//
// samples must be exactly IMA4BlockSamples entries and block exactly
// IMA4BlockSize bytes, otherwise ErrInvalidSampleCount or
// ErrInvalidBlockSize is returned and block is left unmodified.
func EncodeIMA4(samples []int16, state IMAState, block []byte) (IMAState, error) {
	if len(samples) != IMA4BlockSamples {
		return state, ErrInvalidSampleCount
	}
	if len(block) != IMA4BlockSize {
		return state, ErrInvalidBlockSize
	}

	state.StepIndex = min(state.StepIndex, maxStepIndex)
	block[0] = byte(uint16(state.Predictor) >> 8)
	block[1] = byte(uint16(state.Predictor)&0x80) | state.StepIndex

	for i := range block[2:] {
		var lo, hi uint8
		lo, state = EncodeIMA(samples[2*i], state)
		hi, state = EncodeIMA(samples[2*i+1], state)
		block[2+i] = hi<<4 | lo
	}
	return state, nil
}
