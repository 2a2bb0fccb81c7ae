package audio

import (
	"time"

	"nuros/internal/services"
)

// Clip is an immutable mono waveform. Samples are normalized amplitudes in
// [-1, 1] at a fixed sample rate. A clip is created once from an input
// source, consumed by the feature extractor, and discarded.
type Clip struct {
	samples    []float64
	sampleRate int
}

// NewClip validates and wraps a sample buffer. The buffer is copied so later
// mutation by the caller cannot reach the clip.
func NewClip(samples []float64, sampleRate int) (*Clip, error) {
	if len(samples) == 0 {
		return nil, services.Wrap(services.ErrValidation, "audio", "new clip", "empty sample buffer", nil)
	}
	if sampleRate <= 0 {
		return nil, services.Wrap(services.ErrValidation, "audio", "new clip", "sample rate must be positive", nil)
	}
	owned := make([]float64, len(samples))
	copy(owned, samples)
	return &Clip{samples: owned, sampleRate: sampleRate}, nil
}

// SampleRate returns the clip's sample rate in Hz.
func (c *Clip) SampleRate() int { return c.sampleRate }

// Len returns the number of samples.
func (c *Clip) Len() int { return len(c.samples) }

// Duration returns the clip length as wall time.
func (c *Clip) Duration() time.Duration {
	return time.Duration(float64(len(c.samples)) / float64(c.sampleRate) * float64(time.Second))
}

// Samples exposes the underlying buffer for read-only passes. Callers must
// not modify the returned slice.
func (c *Clip) Samples() []float64 { return c.samples }

// Truncated returns a clip capped at maxSeconds, sharing no state with the
// receiver. Clips already within the cap are returned unchanged.
func (c *Clip) Truncated(maxSeconds float64) *Clip {
	if maxSeconds <= 0 {
		return c
	}
	limit := int(maxSeconds * float64(c.sampleRate))
	if limit <= 0 || limit >= len(c.samples) {
		return c
	}
	capped := make([]float64, limit)
	copy(capped, c.samples[:limit])
	return &Clip{samples: capped, sampleRate: c.sampleRate}
}
