package services

import "context"

type contextKey string

const (
	subjectKey   contextKey = "subject_id"
	stageKey     contextKey = "stage"
	requestIDKey contextKey = "request_id"
)

// WithSubject annotates context with the analysis subject identifier.
func WithSubject(ctx context.Context, subject string) context.Context {
	if subject == "" {
		return ctx
	}
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext extracts the subject identifier if present.
func SubjectFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(subjectKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithStage annotates context with the analysis stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(stageKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(requestIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
