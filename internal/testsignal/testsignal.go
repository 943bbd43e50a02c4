// Package testsignal generates deterministic 16-bit PCM test signals
// for exercising the codecs across different waveform shapes.
package testsignal

import "math"

const amplitude = 0.8 * 32767

// SpeechLike returns n mono samples of a voiced/unvoiced mix with a
// wandering pitch, roughly shaped like telephone speech.
func SpeechLike(rate, n int) []int16 {
	out := make([]int16, n)
	var phase, prevNoise float64
	for i := range out {
		t := float64(i) / float64(rate)

		pitch := 110.0 + 30.0*math.Sin(2*math.Pi*0.61*t)
		phase += 2 * math.Pi * pitch / float64(rate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
		voiced := math.Sin(phase) + 0.4*math.Sin(2*phase) + 0.2*math.Sin(3*phase)

		noise := noiseAt(i, 71)
		high := noise - 0.85*prevNoise
		prevNoise = noise

		voicing := 0.5 + 0.5*math.Sin(2*math.Pi*0.8*t)
		syllable := 0.3 + 0.7*math.Pow(0.5+0.5*math.Sin(2*math.Pi*3.1*t), 2)
		out[i] = quantize(syllable * (voicing*voiced + (1-voicing)*0.4*high))
	}
	return out
}

// ChirpSweep returns n mono samples sweeping exponentially from 60 Hz
// to just under the Nyquist frequency.
func ChirpSweep(rate, n int) []int16 {
	out := make([]int16, n)
	if n == 0 {
		return out
	}
	f0 := 60.0
	f1 := 0.45 * float64(rate)
	k := math.Log(f1/f0) * float64(rate) / float64(n)
	for i := range out {
		t := float64(i) / float64(rate)
		phase := 2 * math.Pi * f0 * (math.Exp(k*t) - 1) / k
		out[i] = quantize(0.9 * math.Sin(phase))
	}
	return out
}

// ImpulseTrain returns n mono samples of sharp periodic impulses with a
// ringing tail and a low noise floor, the hardest case for a backward
// adaptive quantizer.
func ImpulseTrain(rate, n int) []int16 {
	out := make([]int16, n)
	period := rate / 30
	if period < 4 {
		period = 4
	}
	decay := 0.004 * float64(rate)
	for i := range out {
		pos := i % period
		val := 0.0
		if pos == 0 {
			val = 0.95
		}
		ring := math.Exp(-float64(pos)/decay) * math.Sin(2*math.Pi*600*float64(pos)/float64(rate))
		out[i] = quantize(val + 0.7*ring + 0.02*noiseAt(i, 17))
	}
	return out
}

func noiseAt(i, salt int) float64 {
	x := uint32(i*1664525 + salt*2246822519)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(int32(x)) / 2147483647.0
}

func quantize(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * amplitude)
}
