package audio_test

import (
	"errors"
	"testing"
	"time"

	"nuros/internal/audio"
	"nuros/internal/services"
)

func TestNewClipValidation(t *testing.T) {
	if _, err := audio.NewClip(nil, 16000); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("NewClip(nil) = %v, want ErrValidation", err)
	}
	if _, err := audio.NewClip([]float64{0.1}, 0); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("NewClip with zero rate = %v, want ErrValidation", err)
	}
}

func TestNewClipCopiesBuffer(t *testing.T) {
	samples := []float64{0.1, 0.2, 0.3}
	clip, err := audio.NewClip(samples, 16000)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}
	samples[0] = 99
	if clip.Samples()[0] != 0.1 {
		t.Fatal("clip buffer aliases the caller's slice")
	}
}

func TestClipDuration(t *testing.T) {
	clip, err := audio.NewClip(make([]float64, 8000), 16000)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}
	if clip.Duration() != 500*time.Millisecond {
		t.Fatalf("Duration = %s, want 500ms", clip.Duration())
	}
}

func TestTruncated(t *testing.T) {
	clip, err := audio.NewClip(make([]float64, 32000), 16000)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}

	capped := clip.Truncated(1.0)
	if capped.Len() != 16000 {
		t.Fatalf("Truncated(1s).Len = %d, want 16000", capped.Len())
	}
	if clip.Len() != 32000 {
		t.Fatal("truncation mutated the original clip")
	}
	if same := clip.Truncated(10); same != clip {
		t.Fatal("clips within the cap should be returned unchanged")
	}
	if same := clip.Truncated(0); same != clip {
		t.Fatal("a non-positive cap should disable truncation")
	}
}
