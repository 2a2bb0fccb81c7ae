package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nuros/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	clipPath   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	configPath := filepath.Join(homeDir, ".config", "nuros", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\nlog_dir = %q\nbaseline_path = %q\nreport_dir = %q\n\n[logging]\nlevel = \"warn\"\n\n[scoring]\nnoise_band = 0.0\n",
		filepath.Join(base, "logs"),
		filepath.Join(base, "baseline.json"),
		filepath.Join(base, "reports"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	clipPath := filepath.Join(base, "clip.wav")
	wav := testsupport.EncodeWAV(t, testsupport.Tone(16000, 2.0, 150, 0.8), 16000)
	if err := os.WriteFile(clipPath, wav, 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, clipPath: clipPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
