package acoustic

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	"nuros/internal/services"
)

// fingerprintHexLen is the width of the truncated fingerprint token.
const fingerprintHexLen = 16

// metricPrecision is the number of decimals each metric contributes to the
// fingerprint. Vectors whose metrics agree to this precision share a token.
const metricPrecision = 4

// FallbackFlags records, per field, whether the extractor substituted the
// documented neutral default for a failed estimate. A set flag means
// "default used", not "measured value coincidentally near the default".
type FallbackFlags struct {
	Jitter  bool `json:"jitter"`
	Shimmer bool `json:"shimmer"`
	HNR     bool `json:"hnr"`
	F0Std   bool `json:"f0_std"`
}

// Any reports whether any field carries a substituted default.
func (f FallbackFlags) Any() bool {
	return f.Jitter || f.Shimmer || f.HNR || f.F0Std
}

// FeatureVector is the extracted descriptor set for one clip. It is
// immutable once produced; ownership transfers from the extractor to the
// caller.
type FeatureVector struct {
	// JitterPercent is the cycle-to-cycle period perturbation as a
	// percentage of the mean period. Never negative.
	JitterPercent float64 `json:"jitter_percent"`
	// ShimmerPercent is the cycle-to-cycle amplitude perturbation as a
	// percentage of the mean cycle amplitude. Never negative.
	ShimmerPercent float64 `json:"shimmer_percent"`
	// HNRdB is the harmonics-to-noise ratio in decibels.
	HNRdB float64 `json:"hnr_db"`
	// F0StdHz is the standard deviation of the voiced F0 trace. Never
	// negative.
	F0StdHz float64 `json:"f0_std_hz"`
	// Fingerprint is a content-derived hex token over the four metrics.
	// Display and audit use only, not a security credential.
	Fingerprint string `json:"fingerprint"`
	// Fallback flags which metrics were substituted rather than measured.
	Fallback FallbackFlags `json:"fallback"`
}

// Complete verifies every numeric field is present and non-NaN. The
// evaluator calls this instead of re-running the extractor's fallback
// policy.
func (v FeatureVector) Complete() error {
	for name, value := range map[string]float64{
		"jitter_percent":  v.JitterPercent,
		"shimmer_percent": v.ShimmerPercent,
		"hnr_db":          v.HNRdB,
		"f0_std_hz":       v.F0StdHz,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return services.Wrap(services.ErrValidation, "acoustic", "feature vector",
				fmt.Sprintf("incomplete feature vector: %s is not a number", name), nil)
		}
	}
	return nil
}

// fingerprint hashes the metrics at fixed precision into a short hex token.
func fingerprint(jitter, shimmer, hnr, f0Std float64) string {
	canonical := fmt.Sprintf("%.*f|%.*f|%.*f|%.*f",
		metricPrecision, jitter,
		metricPrecision, shimmer,
		metricPrecision, hnr,
		metricPrecision, f0Std,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])[:fingerprintHexLen]
}
