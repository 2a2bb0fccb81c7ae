package analysis_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"nuros/internal/analysis"
	"nuros/internal/logging"
	"nuros/internal/risk"
	"nuros/internal/services"
	"nuros/internal/testsupport"
)

const sampleRate = 16000

func newSession(t *testing.T) *analysis.Session {
	t.Helper()
	return analysis.NewSession(testsupport.NewConfig(t), risk.ZeroNoise(), logging.NewNop())
}

func TestRunProducesCompleteResult(t *testing.T) {
	session := newSession(t)
	clip := testsupport.MustClip(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)

	result, err := session.Run(context.Background(), clip, analysis.Options{LifeStage: risk.LifeStageGeneral})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !regexp.MustCompile(`^PAT-[0-9A-F]{8}$`).MatchString(result.SubjectID) {
		t.Fatalf("generated subject id %q has unexpected shape", result.SubjectID)
	}
	if result.RecordedAt.IsZero() {
		t.Fatal("RecordedAt not stamped")
	}
	if result.Features.Fingerprint == "" {
		t.Fatal("fingerprint missing")
	}
	if len(result.Assessment.Findings) == 0 || result.Assessment.Narrative == "" {
		t.Fatal("assessment incomplete")
	}
	if result.Drift != nil {
		t.Fatal("drift verdict produced without a baseline")
	}
}

func TestRunKeepsCallerSubject(t *testing.T) {
	session := newSession(t)
	clip := testsupport.MustClip(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)

	result, err := session.Run(context.Background(), clip, analysis.Options{SubjectID: "  PAT-CUSTOM01  "})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.SubjectID != "PAT-CUSTOM01" {
		t.Fatalf("subject = %q, want trimmed caller value", result.SubjectID)
	}
}

func TestRunComparesAgainstBaseline(t *testing.T) {
	session := newSession(t)
	clip := testsupport.MustClip(t, testsupport.Tone(sampleRate, 2.0, 150, 0.8), sampleRate)

	first, err := session.Run(context.Background(), clip, analysis.Options{})
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}

	second, err := session.Run(context.Background(), clip, analysis.Options{
		Baseline: &first.Features,
	})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.Drift == nil {
		t.Fatal("baseline supplied but no drift verdict")
	}
	if second.Drift.Alert {
		t.Fatalf("identical clip alerted: %s", second.Drift.Message)
	}
}

func TestRunPropagatesExtractionErrors(t *testing.T) {
	session := newSession(t)
	clip := testsupport.MustClip(t, testsupport.Silence(sampleRate, 2.0), sampleRate)

	if _, err := session.Run(context.Background(), clip, analysis.Options{}); !errors.Is(err, services.ErrNoVoice) {
		t.Fatalf("Run(silence) = %v, want ErrNoVoice", err)
	}
}

func TestNewPatientIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^PAT-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id := analysis.NewPatientID()
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, pattern)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
