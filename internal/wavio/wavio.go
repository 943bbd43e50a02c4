// Package wavio reads and writes 16-bit PCM WAV streams for the gopcm
// examples. It is a thin adapter over go-audio/wav that converts between
// the container's int buffers and the []int16 samples the codecs consume.
package wavio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Format describes the stream layout of a decoded WAV file.
type Format struct {
	SampleRate int
	Channels   int
}

// ReadInt16 decodes a 16-bit PCM WAV stream into samples (interleaved for
// multi-channel files).
func ReadInt16(r io.ReadSeeker) ([]int16, Format, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, Format{}, errors.New("wavio: not a valid WAV file")
	}
	if d.BitDepth != 16 {
		return nil, Format{}, fmt.Errorf("wavio: unsupported bit depth %d (want 16)", d.BitDepth)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, fmt.Errorf("wavio: read PCM: %w", err)
	}
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	f := Format{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}
	return samples, f, nil
}

// WriteInt16 writes samples as a 16-bit PCM WAV stream.
func WriteInt16(ws io.WriteSeeker, samples []int16, f Format) error {
	e := wav.NewEncoder(ws, f.SampleRate, 16, f.Channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: f.Channels,
			SampleRate:  f.SampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("wavio: write PCM: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("wavio: finalize WAV: %w", err)
	}
	return nil
}
