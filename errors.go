// errors.go defines public error types for the gopcm package.

package gopcm

import "errors"

// Public error types for the block codecs. The per-sample transforms are
// total over their input domains and never return an error.
var (
	// ErrInvalidChannels indicates an unsupported channel count.
	// The MS/WAV IMA block codec supports 1 (mono) or 2 (stereo) channels.
	ErrInvalidChannels = errors.New("gopcm: invalid channels (must be 1 or 2)")

	// ErrInvalidBlockSize indicates a block buffer with an invalid length.
	// An ima4 block is exactly 34 bytes. An MS/WAV IMA block is at least 4
	// bytes for mono, at least 8 and divisible by 8 for stereo, and always
	// less than 65536 bytes.
	ErrInvalidBlockSize = errors.New("gopcm: invalid block length")

	// ErrInvalidSampleCount indicates a sample slice whose length does not
	// match the block layout. An ima4 block holds exactly 64 samples. An
	// MS/WAV IMA block holds 2*(blockLen-4*channels)+channels samples, and
	// on encode the sample count must be odd for mono or satisfy
	// (n-2)%16 == 0 for stereo.
	ErrInvalidSampleCount = errors.New("gopcm: invalid sample count for block layout")
)
