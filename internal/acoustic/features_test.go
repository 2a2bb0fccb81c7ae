package acoustic_test

import (
	"errors"
	"math"
	"testing"

	"nuros/internal/acoustic"
	"nuros/internal/services"
)

func TestCompleteRejectsNaN(t *testing.T) {
	vector := acoustic.FeatureVector{
		JitterPercent:  0.5,
		ShimmerPercent: math.NaN(),
		HNRdB:          20,
		F0StdHz:        15,
	}
	if err := vector.Complete(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("Complete with NaN = %v, want ErrValidation", err)
	}
}

func TestCompleteRejectsInf(t *testing.T) {
	vector := acoustic.FeatureVector{
		JitterPercent:  0.5,
		ShimmerPercent: 2,
		HNRdB:          math.Inf(1),
		F0StdHz:        15,
	}
	if err := vector.Complete(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("Complete with Inf = %v, want ErrValidation", err)
	}
}

func TestCompleteAcceptsFiniteVector(t *testing.T) {
	vector := acoustic.FeatureVector{
		JitterPercent:  0.5,
		ShimmerPercent: 2,
		HNRdB:          20,
		F0StdHz:        15,
	}
	if err := vector.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
}

func TestFallbackFlagsAny(t *testing.T) {
	if (acoustic.FallbackFlags{}).Any() {
		t.Fatal("empty flags should report no fallback")
	}
	if !(acoustic.FallbackFlags{HNR: true}).Any() {
		t.Fatal("set flag should report fallback")
	}
}
