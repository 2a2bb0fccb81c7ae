package services_test

import (
	"context"
	"testing"

	"nuros/internal/services"
)

func TestContextAnnotations(t *testing.T) {
	ctx := context.Background()

	if _, ok := services.SubjectFromContext(ctx); ok {
		t.Fatal("empty context should carry no subject")
	}

	ctx = services.WithSubject(ctx, "PAT-1A2B3C4D")
	ctx = services.WithStage(ctx, "extract")
	ctx = services.WithRequestID(ctx, "req-7")

	if subject, ok := services.SubjectFromContext(ctx); !ok || subject != "PAT-1A2B3C4D" {
		t.Fatalf("subject = %q ok=%v", subject, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "extract" {
		t.Fatalf("stage = %q ok=%v", stage, ok)
	}
	if id, ok := services.RequestIDFromContext(ctx); !ok || id != "req-7" {
		t.Fatalf("request id = %q ok=%v", id, ok)
	}
}

func TestEmptyAnnotationsAreIgnored(t *testing.T) {
	ctx := services.WithSubject(context.Background(), "")
	if _, ok := services.SubjectFromContext(ctx); ok {
		t.Fatal("empty subject should not be stored")
	}
}
