package risk

import (
	"fmt"

	"nuros/internal/acoustic"
)

// DriftVerdict compares a current feature vector against the stored "vocal
// twin" baseline on jitter and shimmer only.
type DriftVerdict struct {
	Alert bool `json:"alert"`
	// JitterChangePercent and ShimmerChangePercent are relative changes from
	// the baseline, in percent. A zero baseline suppresses that field's
	// contribution entirely.
	JitterChangePercent  float64 `json:"jitter_change_percent"`
	ShimmerChangePercent float64 `json:"shimmer_change_percent"`
	Message              string  `json:"message"`
}

// Drift computes the longitudinal degradation verdict. An increase beyond
// the configured trip point on either metric raises the alert; decreases
// and zero baselines never do.
func (e *Evaluator) Drift(current, baseline acoustic.FeatureVector) DriftVerdict {
	verdict := DriftVerdict{
		JitterChangePercent:  relativeChangePercent(current.JitterPercent, baseline.JitterPercent),
		ShimmerChangePercent: relativeChangePercent(current.ShimmerPercent, baseline.ShimmerPercent),
	}

	if verdict.JitterChangePercent > e.driftTrip || verdict.ShimmerChangePercent > e.driftTrip {
		verdict.Alert = true
		verdict.Message = fmt.Sprintf(
			"Rapid vocal degradation detected: jitter %+.1f%%, shimmer %+.1f%% versus your vocal twin baseline. Consider a clinical follow-up.",
			verdict.JitterChangePercent, verdict.ShimmerChangePercent,
		)
	} else {
		verdict.Message = fmt.Sprintf(
			"Vocal biomarkers are tracking your baseline (jitter %+.1f%%, shimmer %+.1f%%).",
			verdict.JitterChangePercent, verdict.ShimmerChangePercent,
		)
	}
	return verdict
}

// relativeChangePercent returns (current-baseline)/baseline in percent, or 0
// when the baseline is not positive.
func relativeChangePercent(current, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}
