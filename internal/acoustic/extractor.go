package acoustic

import (
	"log/slog"
	"math"

	"nuros/internal/audio"
	"nuros/internal/config"
	"nuros/internal/logging"
	"nuros/internal/services"
)

// Extractor converts clips into feature vectors. It is stateless between
// calls and safe for concurrent use; all tuning comes from the analysis
// section of the configuration.
type Extractor struct {
	params config.Analysis
	logger *slog.Logger
}

// NewExtractor constructs a feature extractor from configuration.
func NewExtractor(cfg *config.Config, logger *slog.Logger) *Extractor {
	return &Extractor{
		params: cfg.Analysis,
		logger: logging.NewComponentLogger(logger, "acoustic"),
	}
}

// Extract computes the biomarker vector for a clip.
//
// Structurally malformed input (nil clip) and clips without a single voiced
// frame fail with explicit errors; numerical failures inside individual
// estimators are replaced with the configured neutral defaults and flagged
// on the returned vector. Given identical input and parameters the result
// is deterministic.
func (e *Extractor) Extract(clip *audio.Clip) (FeatureVector, error) {
	if clip == nil || clip.Len() == 0 {
		return FeatureVector{}, services.Wrap(services.ErrValidation, "acoustic", "extract", "nil or empty clip", nil)
	}

	clip = clip.Truncated(e.params.MaxClipSeconds)
	samples := clip.Samples()

	trace := buildTrace(samples, clip.SampleRate(), e.params)
	voiced := trace.voicedF0()
	if len(voiced) == 0 {
		return FeatureVector{}, services.Wrap(services.ErrNoVoice, "acoustic", "extract",
			"no voiced frames detected in clip", nil)
	}

	vector := FeatureVector{
		JitterPercent:  perturbationPercent(trace.periodSequences()),
		ShimmerPercent: perturbationPercent(trace.cycleAmplitudes(samples)),
		HNRdB:          trace.meanHarmonicityDB(),
		F0StdHz:        stddev(voiced),
	}

	// Fallback policy: estimator instability becomes a documented neutral
	// default, never an error, so extraction always returns a complete
	// vector.
	if math.IsNaN(vector.JitterPercent) || vector.JitterPercent < 0 {
		vector.JitterPercent = e.params.FallbackJitterPercent
		vector.Fallback.Jitter = true
	}
	if math.IsNaN(vector.ShimmerPercent) || vector.ShimmerPercent < 0 {
		vector.ShimmerPercent = e.params.FallbackShimmerPercent
		vector.Fallback.Shimmer = true
	}
	if math.IsNaN(vector.HNRdB) || vector.HNRdB < 0 {
		vector.HNRdB = e.params.FallbackHNRdB
		vector.Fallback.HNR = true
	}
	if math.IsNaN(vector.F0StdHz) {
		vector.F0StdHz = 0
		vector.Fallback.F0Std = true
	}

	vector.Fingerprint = fingerprint(vector.JitterPercent, vector.ShimmerPercent, vector.HNRdB, vector.F0StdHz)

	e.logger.Debug("feature extraction complete",
		logging.Int("voiced_frames", len(voiced)),
		logging.Float64("jitter_percent", vector.JitterPercent),
		logging.Float64("shimmer_percent", vector.ShimmerPercent),
		logging.Float64("hnr_db", vector.HNRdB),
		logging.Float64("f0_std_hz", vector.F0StdHz),
		logging.Bool("fallback_used", vector.Fallback.Any()),
		logging.String("fingerprint", vector.Fingerprint),
	)

	return vector, nil
}
