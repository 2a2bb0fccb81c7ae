package risk

import "math/rand/v2"

// Noise supplies the presentation-level randomness in an evaluation: the
// confidence percentages and the stability score jitter. It exists as an
// interface so tests and deterministic runs can disable randomness without
// touching the rule logic.
type Noise interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

type randomNoise struct {
	rng *rand.Rand
}

// NewNoise returns a seeded noise source. Identical seeds replay identical
// confidence and score sequences.
func NewNoise(seed uint64) Noise {
	return &randomNoise{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (n *randomNoise) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + n.rng.Float64()*(hi-lo)
}

type zeroNoise struct{}

// ZeroNoise returns the midpoint of every requested range, which makes the
// score jitter exactly zero and every confidence deterministic.
func ZeroNoise() Noise { return zeroNoise{} }

func (zeroNoise) Uniform(lo, hi float64) float64 { return (lo + hi) / 2 }
