package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var accessKeyPattern = regexp.MustCompile(`NR-\d{4}-[A-Z]`)

func TestReportCreatePlain(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"report", "create", env.clipPath, "--plain"}, env.configPath)
	if err != nil {
		t.Fatalf("report create --plain: %v", err)
	}
	requireContains(t, out, "CLINICAL SUMMARY")
	requireContains(t, out, "Vocal Stability Score")
	requireContains(t, out, "NOT a medical diagnosis")
}

func TestReportSealedRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "summary.nrx")

	out, _, err := runCLI(t, []string{
		"report", "create", env.clipPath,
		"--subject", "PAT-CLI00004",
		"--out", target,
	}, env.configPath)
	if err != nil {
		t.Fatalf("report create: %v", err)
	}
	requireContains(t, out, "Patient access key:")

	key := accessKeyPattern.FindString(out)
	if key == "" {
		t.Fatalf("no access key in output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sealed report missing: %v", err)
	}

	opened, _, err := runCLI(t, []string{"report", "open", target, "--key", key}, env.configPath)
	if err != nil {
		t.Fatalf("report open: %v", err)
	}
	requireContains(t, opened, "PAT-CLI00004")
	requireContains(t, opened, "CLINICAL SUMMARY")
}

func TestReportOpenWrongKey(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "summary.nrx")

	out, _, err := runCLI(t, []string{"report", "create", env.clipPath, "--out", target}, env.configPath)
	if err != nil {
		t.Fatalf("report create: %v", err)
	}
	key := accessKeyPattern.FindString(out)
	if key == "" {
		t.Fatalf("no access key in output:\n%s", out)
	}

	wrong := "NR-0000-A"
	if wrong == key {
		wrong = "NR-0000-B"
	}
	if _, _, err := runCLI(t, []string{"report", "open", target, "--key", wrong}, env.configPath); err == nil {
		t.Fatal("wrong access key should fail")
	}
}
