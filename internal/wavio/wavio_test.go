package wavio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	samples := make([]int16, 800)
	for i := range samples {
		samples[i] = int16(i*37 - 14000)
	}
	format := Format{SampleRate: 8000, Channels: 1}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteInt16(out, samples, format))
	require.NoError(t, out.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	got, gotFormat, err := ReadInt16(in)
	require.NoError(t, err)
	require.Equal(t, format, gotFormat)
	require.Equal(t, samples, got)
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a wav"), 0o644))

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	_, _, err = ReadInt16(in)
	require.Error(t, err)
}
