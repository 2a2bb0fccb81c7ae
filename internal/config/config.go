package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file location configuration.
type Paths struct {
	LogDir       string `toml:"log_dir"`
	BaselinePath string `toml:"baseline_path"`
	ReportDir    string `toml:"report_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Analysis contains the acoustic estimator parameters. Every value the
// extractor consumes is named here; the extraction algorithm itself carries
// no tuning literals.
type Analysis struct {
	// MaxClipSeconds caps how much audio the extractor reads.
	MaxClipSeconds float64 `toml:"max_clip_seconds"`
	// VoiceBandMinHz/VoiceBandMaxHz bound the plausible human F0 search range.
	VoiceBandMinHz float64 `toml:"voice_band_min_hz"`
	VoiceBandMaxHz float64 `toml:"voice_band_max_hz"`
	// FrameSeconds/HopSeconds define the analysis window geometry.
	FrameSeconds float64 `toml:"frame_seconds"`
	HopSeconds   float64 `toml:"hop_seconds"`
	// VoicingThreshold is the minimum normalized autocorrelation peak for a
	// frame to count as voiced.
	VoicingThreshold float64 `toml:"voicing_threshold"`
	// SilenceThreshold is the minimum frame peak relative to the clip peak.
	SilenceThreshold float64 `toml:"silence_threshold"`
	// Fallback constants substituted when an estimator fails numerically.
	FallbackJitterPercent  float64 `toml:"fallback_jitter_percent"`
	FallbackShimmerPercent float64 `toml:"fallback_shimmer_percent"`
	FallbackHNRdB          float64 `toml:"fallback_hnr_db"`
}

// Thresholds contains the clinical rule constants. These are screening
// heuristics without a cited derivation; they live in configuration so they
// can be revisited without code changes.
type Thresholds struct {
	JitterHighPercent   float64 `toml:"jitter_high_percent"`
	JitterMediumPercent float64 `toml:"jitter_medium_percent"`
	ShimmerHighPercent  float64 `toml:"shimmer_high_percent"`
	HNRLowDB            float64 `toml:"hnr_low_db"`
	HNRCriticalDB       float64 `toml:"hnr_critical_db"`
	F0StdFloorHz        float64 `toml:"f0_std_floor_hz"`
	F0StdCeilingHz      float64 `toml:"f0_std_ceiling_hz"`

	// Women's health baselines, calibrated for female physiological ranges.
	WomensJitterPercent  float64 `toml:"womens_jitter_percent"`
	WomensShimmerPercent float64 `toml:"womens_shimmer_percent"`
	ThyroidHNRdB         float64 `toml:"thyroid_hnr_db"`

	// Additive life-stage widening. Jitter/shimmer deltas raise the baseline,
	// the HNR delta lowers it; all three only relax the rules.
	PregnancyJitterDelta  float64 `toml:"pregnancy_jitter_delta"`
	PregnancyShimmerDelta float64 `toml:"pregnancy_shimmer_delta"`
	PregnancyHNRDelta     float64 `toml:"pregnancy_hnr_delta"`
	MenopauseJitterDelta  float64 `toml:"menopause_jitter_delta"`
	MenopauseShimmerDelta float64 `toml:"menopause_shimmer_delta"`
	MenopauseHNRDelta     float64 `toml:"menopause_hnr_delta"`
}

// Scoring contains the stability score penalty weights and noise band.
type Scoring struct {
	JitterPenalty      float64 `toml:"jitter_penalty"`
	ShimmerPenalty     float64 `toml:"shimmer_penalty"`
	HNRPenalty         float64 `toml:"hnr_penalty"`
	HNRCriticalPenalty float64 `toml:"hnr_critical_penalty"`
	F0StdPenalty       float64 `toml:"f0_std_penalty"`
	// NoiseBand is the half-width of the presentation jitter added to the
	// score. Set to 0 for fully deterministic scores.
	NoiseBand float64 `toml:"noise_band"`
}

// Drift contains the longitudinal comparison settings.
type Drift struct {
	// AlertPercent is the relative jitter/shimmer increase, in percent, that
	// trips the degradation alert.
	AlertPercent float64 `toml:"alert_percent"`
}

// API contains settings for the demo HTTP endpoint.
type API struct {
	Bind           string `toml:"bind"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

// Config encapsulates all configuration values for Nuros.
//
// Configuration sections by subsystem:
//   - Paths: log, baseline snapshot, and report locations
//   - Logging: log format and level
//   - Analysis: acoustic estimator parameters
//   - Thresholds: clinical rule constants and life-stage deltas
//   - Scoring: stability score penalties and noise band
//   - Drift: vocal twin degradation trip point
//   - API: demo HTTP endpoint settings
type Config struct {
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
	Analysis   Analysis   `toml:"analysis"`
	Thresholds Thresholds `toml:"thresholds"`
	Scoring    Scoring    `toml:"scoring"`
	Drift      Drift      `toml:"drift"`
	API        API        `toml:"api"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/nuros/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was actually found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("nuros.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the CLI writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.ReportDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.BaselinePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create baseline directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
