package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateThresholds(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	if c.Drift.AlertPercent <= 0 {
		return errors.New("drift.alert_percent must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	if a.MaxClipSeconds <= 0 {
		return errors.New("analysis.max_clip_seconds must be positive")
	}
	if a.VoiceBandMinHz <= 0 || a.VoiceBandMaxHz <= a.VoiceBandMinHz {
		return errors.New("analysis voice band must satisfy 0 < min < max")
	}
	if a.FrameSeconds <= 0 || a.HopSeconds <= 0 {
		return errors.New("analysis frame and hop durations must be positive")
	}
	if a.HopSeconds > a.FrameSeconds {
		return errors.New("analysis.hop_seconds must not exceed analysis.frame_seconds")
	}
	// The autocorrelation window needs at least one full period of the lowest
	// pitch it can report.
	if a.FrameSeconds*a.VoiceBandMinHz < 1 {
		return errors.New("analysis.frame_seconds is too short for analysis.voice_band_min_hz")
	}
	if a.VoicingThreshold <= 0 || a.VoicingThreshold >= 1 {
		return errors.New("analysis.voicing_threshold must be in (0, 1)")
	}
	if a.SilenceThreshold < 0 || a.SilenceThreshold >= 1 {
		return errors.New("analysis.silence_threshold must be in [0, 1)")
	}
	if a.FallbackJitterPercent < 0 || a.FallbackShimmerPercent < 0 {
		return errors.New("analysis fallback jitter/shimmer must be non-negative")
	}
	return nil
}

func (c *Config) validateThresholds() error {
	t := c.Thresholds
	if t.JitterHighPercent <= 0 || t.JitterMediumPercent <= 0 || t.ShimmerHighPercent <= 0 {
		return errors.New("thresholds jitter/shimmer values must be positive")
	}
	if t.JitterMediumPercent > t.JitterHighPercent {
		return errors.New("thresholds.jitter_medium_percent must not exceed thresholds.jitter_high_percent")
	}
	if t.HNRCriticalDB > t.HNRLowDB {
		return errors.New("thresholds.hnr_critical_db must not exceed thresholds.hnr_low_db")
	}
	if t.F0StdFloorHz < 0 || t.F0StdCeilingHz <= t.F0StdFloorHz {
		return errors.New("thresholds f0 std band must satisfy 0 <= floor < ceiling")
	}
	if t.WomensJitterPercent <= 0 || t.WomensShimmerPercent <= 0 {
		return errors.New("thresholds womens jitter/shimmer baselines must be positive")
	}
	for name, delta := range map[string]float64{
		"pregnancy_jitter_delta":  t.PregnancyJitterDelta,
		"pregnancy_shimmer_delta": t.PregnancyShimmerDelta,
		"pregnancy_hnr_delta":     t.PregnancyHNRDelta,
		"menopause_jitter_delta":  t.MenopauseJitterDelta,
		"menopause_shimmer_delta": t.MenopauseShimmerDelta,
		"menopause_hnr_delta":     t.MenopauseHNRDelta,
	} {
		// Negative deltas would tighten rules for an adjusted life stage,
		// inverting the documented physiological widening.
		if delta < 0 {
			return fmt.Errorf("thresholds.%s must be non-negative", name)
		}
	}
	return nil
}

func (c *Config) validateScoring() error {
	s := c.Scoring
	for name, penalty := range map[string]float64{
		"jitter_penalty":       s.JitterPenalty,
		"shimmer_penalty":      s.ShimmerPenalty,
		"hnr_penalty":          s.HNRPenalty,
		"hnr_critical_penalty": s.HNRCriticalPenalty,
		"f0_std_penalty":       s.F0StdPenalty,
	} {
		if penalty < 0 {
			return fmt.Errorf("scoring.%s must be non-negative", name)
		}
	}
	if s.NoiseBand < 0 {
		return errors.New("scoring.noise_band must be non-negative")
	}
	return nil
}
