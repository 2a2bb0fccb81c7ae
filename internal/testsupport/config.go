package testsupport

import (
	"path/filepath"
	"testing"

	"nuros/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.BaselinePath = filepath.Join(base, "baseline.json")
	cfgVal.Paths.ReportDir = filepath.Join(base, "reports")
	cfgVal.API.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDriftAlertPercent overrides the drift trip point on the test config.
func WithDriftAlertPercent(percent float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Drift.AlertPercent = percent
	}
}

// WithScoreNoiseBand overrides the stability score noise band.
func WithScoreNoiseBand(band float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scoring.NoiseBand = band
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BaselinePath)
}
