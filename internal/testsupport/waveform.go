// Package testsupport provides shared helpers for package tests: canned
// configurations and synthetic voice-like waveforms with known acoustic
// properties.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"testing"

	"nuros/internal/audio"
)

// Tone synthesizes a steady sine at the given frequency. Steady tones have
// near-zero jitter and shimmer and a high harmonics-to-noise ratio.
func Tone(sampleRate int, seconds, freqHz, amplitude float64) []float64 {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
	return samples
}

// VibratoTone synthesizes a frequency-modulated sine. The modulation spreads
// the fundamental, raising the measured F0 standard deviation.
func VibratoTone(sampleRate int, seconds, carrierHz, vibratoHz, depthHz float64) []float64 {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		instantaneous := carrierHz + depthHz*math.Sin(2*math.Pi*vibratoHz*t)
		phase += 2 * math.Pi * instantaneous / float64(sampleRate)
		samples[i] = 0.8 * math.Sin(phase)
	}
	return samples
}

// TremoloTone synthesizes an amplitude-modulated sine. The cycle-to-cycle
// amplitude swings raise the measured shimmer.
func TremoloTone(sampleRate int, seconds, carrierHz, tremoloHz, depth float64) []float64 {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		envelope := 1 - depth/2 + (depth/2)*math.Sin(2*math.Pi*tremoloHz*t)
		samples[i] = 0.8 * envelope * math.Sin(2*math.Pi*carrierHz*t)
	}
	return samples
}

// NoisyTone mixes a sine with seeded white noise. Higher noise amplitude
// lowers the measured harmonics-to-noise ratio.
func NoisyTone(sampleRate int, seconds, freqHz, noiseAmplitude float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	samples := Tone(sampleRate, seconds, freqHz, 0.7)
	for i := range samples {
		samples[i] += noiseAmplitude * (2*rng.Float64() - 1)
	}
	return samples
}

// WhiteNoise returns seeded aperiodic noise with no tonal component.
func WhiteNoise(sampleRate int, seconds, amplitude float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	samples := make([]float64, int(seconds*float64(sampleRate)))
	for i := range samples {
		samples[i] = amplitude * (2*rng.Float64() - 1)
	}
	return samples
}

// Silence returns an all-zero buffer.
func Silence(sampleRate int, seconds float64) []float64 {
	return make([]float64, int(seconds*float64(sampleRate)))
}

// MustClip wraps raw samples in an audio.Clip, failing the test on error.
func MustClip(t testing.TB, samples []float64, sampleRate int) *audio.Clip {
	t.Helper()
	clip, err := audio.NewClip(samples, sampleRate)
	if err != nil {
		t.Fatalf("build clip: %v", err)
	}
	return clip
}

// EncodeWAV serializes samples as a mono 16-bit PCM WAV file for transport
// and upload tests.
func EncodeWAV(t testing.TB, samples []float64, sampleRate int) []byte {
	t.Helper()

	var data bytes.Buffer
	for _, sample := range samples {
		clamped := math.Max(-1, math.Min(1, sample))
		if err := binary.Write(&data, binary.LittleEndian, int16(clamped*32767)); err != nil {
			t.Fatalf("encode sample: %v", err)
		}
	}

	var buf bytes.Buffer
	dataLen := uint32(data.Len())
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(data.Bytes())
	return buf.Bytes()
}
