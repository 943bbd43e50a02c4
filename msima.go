// msima.go implements the Microsoft / WAV IMA ADPCM block layout
// (WAVE format tag 0x0011) on top of the per-sample IMA transform.

package gopcm

// msimaMaxBlock is the largest block length the WAV format can describe;
// nBlockAlign is a 16-bit field in the wave header.
const msimaMaxBlock = 0xFFFF

// msimaChannels validates the stereo flag / state count and reports the
// channel count.
func msimaChannels(states int) (int, error) {
	if states < 1 || states > 2 {
		return 0, ErrInvalidChannels
	}
	return states, nil
}

// DecodeIMABlock decodes one MS/WAV IMA ADPCM block into samples,
// interleaved for stereo.
//
// Each block starts with a 4-byte header per channel: little-endian initial
// predictor, step index, and a reserved byte. The first output sample of
// each channel is the header predictor itself; the remaining bytes hold two
// codes each, grouped 4 bytes per channel at a time. A header step index
// above 88 is clamped, matching the macOS and Audacity decoders (Windows
// refuses such blocks outright).
//
// block must be at least 4 bytes for mono, at least 8 bytes and divisible
// by 8 for stereo, and less than 65536 bytes. samples must hold exactly
// 2*(len(block)-4*channels)+channels entries. On any length violation
// ErrInvalidBlockSize or ErrInvalidSampleCount is returned and samples is
// left unmodified.
func DecodeIMABlock(block []byte, stereo bool, samples []int16) error {
	channels := 1
	if stereo {
		channels = 2
	}
	if len(block) > msimaMaxBlock {
		return ErrInvalidBlockSize
	}
	if channels == 1 && len(block) < 4 {
		return ErrInvalidBlockSize
	}
	if channels == 2 && (len(block) < 8 || len(block)%8 != 0) {
		return ErrInvalidBlockSize
	}
	if len(samples) != 2*(len(block)-4*channels)+channels {
		return ErrInvalidSampleCount
	}

	var states [2]IMAState
	for ch := 0; ch < channels; ch++ {
		states[ch] = IMAState{
			Predictor: int16(uint16(block[ch*4]) | uint16(block[ch*4+1])<<8),
			StepIndex: min(block[ch*4+2], maxStepIndex),
		}
		samples[ch] = states[ch].Predictor
	}

	// Codes are grouped 4 bytes (8 samples) per channel before switching
	// channels; stereo output positions interleave the two channels.
	group, sub, ch := 0, 0, 0
	for _, b := range block[4*channels:] {
		pos := channels + group*4*channels*channels + sub*channels + ch
		samples[pos], states[ch] = DecodeIMA(b&0x0F, states[ch])
		samples[pos+channels], states[ch] = DecodeIMA(b>>4, states[ch])
		sub += 2
		if sub == 4*channels {
			sub = 0
			ch++
			if ch == channels {
				ch = 0
				group++
			}
		}
	}
	return nil
}

// EncodeIMABlock encodes samples (interleaved for stereo) into one MS/WAV
// IMA ADPCM block.
//
// states supplies one IMAState per channel (1 or 2) and is updated in place
// for the next block; zero states start a fresh stream. The first sample of
// each channel seeds the header predictor while the incoming step index is
// written to the header unchanged.
//
// The sample count must be odd for mono, or at least 2 with (n-2)%16 == 0
// for stereo. block must hold exactly (len(samples)-channels)/2 +
// 4*channels bytes and be less than 65536 bytes. On any violation
// ErrInvalidChannels, ErrInvalidBlockSize, or ErrInvalidSampleCount is
// returned and block is left unmodified.
func EncodeIMABlock(samples []int16, states []IMAState, block []byte) error {
	channels, err := msimaChannels(len(states))
	if err != nil {
		return err
	}
	if channels == 1 && len(samples)%2 == 0 {
		return ErrInvalidSampleCount
	}
	if channels == 2 && (len(samples) < 2 || (len(samples)-2)%16 != 0) {
		return ErrInvalidSampleCount
	}
	if len(block) > msimaMaxBlock {
		return ErrInvalidBlockSize
	}
	if len(block) != (len(samples)-channels)/2+4*channels {
		return ErrInvalidBlockSize
	}

	for ch := 0; ch < channels; ch++ {
		states[ch].Predictor = samples[ch]
		block[ch*4] = byte(uint16(samples[ch]))
		block[ch*4+1] = byte(uint16(samples[ch]) >> 8)
		block[ch*4+2] = states[ch].StepIndex
		block[ch*4+3] = 0
	}

	group, sub, ch := 0, 0, 0
	for i := 4 * channels; i < len(block); i++ {
		pos := channels + group*4*channels*channels + sub*channels + ch
		var lo, hi uint8
		lo, states[ch] = EncodeIMA(samples[pos], states[ch])
		hi, states[ch] = EncodeIMA(samples[pos+channels], states[ch])
		block[i] = lo | hi<<4
		sub += 2
		if sub == 4*channels {
			sub = 0
			ch++
			if ch == channels {
				ch = 0
				group++
			}
		}
	}
	return nil
}
