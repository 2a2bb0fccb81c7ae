package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nuros/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("exists = true for %s, want false", path)
	}
	if cfg.Thresholds.JitterHighPercent != 1.04 {
		t.Fatalf("jitter high = %v, want default 1.04", cfg.Thresholds.JitterHighPercent)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults = %s/%s, want console/info", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.API.Bind == "" || cfg.API.MaxUploadBytes <= 0 {
		t.Fatalf("api defaults not applied: %+v", cfg.API)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[logging]",
		`format = "JSON"`,
		`level = "Debug"`,
		"",
		"[drift]",
		"alert_percent = 25.0",
		"",
		"[thresholds]",
		"hnr_low_db = 14.0",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %s exists=%v, want %s true", resolved, exists, path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Drift.AlertPercent != 25 {
		t.Fatalf("drift.alert_percent = %v, want 25", cfg.Drift.AlertPercent)
	}
	if cfg.Thresholds.HNRLowDB != 14 {
		t.Fatalf("thresholds.hnr_low_db = %v, want 14", cfg.Thresholds.HNRLowDB)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Scoring.JitterPenalty != 15 {
		t.Fatalf("scoring.jitter_penalty = %v, want default 15", cfg.Scoring.JitterPenalty)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad log format":    "[logging]\nformat = \"yaml\"\n",
		"bad voicing":       "[analysis]\nvoicing_threshold = 1.5\n",
		"inverted band":     "[analysis]\nvoice_band_min_hz = 600.0\n",
		"short frame":       "[analysis]\nframe_seconds = 0.005\n",
		"negative delta":    "[thresholds]\nmenopause_jitter_delta = -0.1\n",
		"inverted hnr":      "[thresholds]\nhnr_critical_db = 19.0\n",
		"zero drift":        "[drift]\nalert_percent = 0.0\n",
		"negative penalty":  "[scoring]\nshimmer_penalty = -1.0\n",
		"hop beyond frame":  "[analysis]\nhop_seconds = 0.1\n",
		"jitter order flip": "[thresholds]\njitter_medium_percent = 2.0\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", name)
		}
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := config.ExpandPath("~/nuros/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if expanded != filepath.Join(home, "nuros", "config.toml") {
		t.Fatalf("expanded = %s, want under %s", expanded, home)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("Load(sample) = exists=%v err=%v, want true nil", exists, err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.Paths.BaselinePath = filepath.Join(base, "state", "baseline.json")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.ReportDir, filepath.Join(base, "state")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
