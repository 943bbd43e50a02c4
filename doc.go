// Package gopcm implements the telephony audio codecs G.711 (A-law and
// μ-law) and IMA ADPCM in pure Go.
//
// All three codecs convert between 16-bit signed linear PCM samples and
// compact fixed-size codes. They are implemented as pure functions with no
// internal state, no heap allocation, and no floating point, which makes
// them safe for real-time paths and trivially parallel across streams.
//
// # G.711
//
// A-law and μ-law compress one 16-bit sample into one logarithmic 8-bit
// code. Encoding follows the shift/one's-complement algorithm from TI
// application note SPRA163A; decoding uses the 256-entry expansion tables
// generated with the ITU-T G.191 software tools. Both directions are total:
// every sample encodes and every byte decodes.
//
// # IMA ADPCM
//
// The IMA codec packs the difference between consecutive samples into a
// 4-bit code, scaled by an adaptive step size. Encoder and decoder share an
// explicit IMAState value that the caller threads from call to call; the
// zero value of IMAState is the standard initial state for a fresh stream.
// Predictor updates saturate at the 16-bit limits and the step index is
// clamped to 0..88, keeping encoder and decoder bit-exact mirrors of each
// other for any input.
//
// # Block Formats
//
// Two common container framings of the IMA codec are provided on top of the
// per-sample primitives: the AIFF-C/QuickTime "ima4" 34-byte block
// (DecodeIMA4, EncodeIMA4) and the WAV format 0x0011 block with mono or
// stereo interleave (DecodeIMABlock, EncodeIMABlock). Any other framing,
// such as WAV headers or RTP packetization, is the caller's responsibility;
// see the examples directory.
package gopcm
