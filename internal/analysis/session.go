package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"nuros/internal/acoustic"
	"nuros/internal/audio"
	"nuros/internal/config"
	"nuros/internal/logging"
	"nuros/internal/risk"
)

// Options selects per-run inputs beyond the clip itself.
type Options struct {
	// SubjectID labels the run; a fresh patient ID is generated when empty.
	SubjectID string
	// LifeStage selects the physiological profile; empty means General.
	LifeStage risk.LifeStage
	// Baseline, when present, enables the vocal twin drift comparison. The
	// caller owns it; the session never stores it.
	Baseline *acoustic.FeatureVector
}

// Result is the complete output record for one clip.
type Result struct {
	SubjectID  string                 `json:"subject_id"`
	RecordedAt time.Time              `json:"recorded_at"`
	Features   acoustic.FeatureVector `json:"features"`
	Assessment risk.Assessment        `json:"assessment"`
	Drift      *risk.DriftVerdict     `json:"drift,omitempty"`
}

// Session wires the extractor and evaluator into one synchronous run.
type Session struct {
	extractor *acoustic.Extractor
	evaluator *risk.Evaluator
	logger    *slog.Logger
}

// NewSession constructs a session from configuration. Pass risk.ZeroNoise()
// as the noise source for deterministic output.
func NewSession(cfg *config.Config, noise risk.Noise, logger *slog.Logger) *Session {
	return &Session{
		extractor: acoustic.NewExtractor(cfg, logger),
		evaluator: risk.NewEvaluator(cfg, noise, logger),
		logger:    logging.NewComponentLogger(logger, "analysis"),
	}
}

// Evaluator exposes the underlying evaluator for callers that only need a
// drift comparison between two stored vectors.
func (s *Session) Evaluator() *risk.Evaluator { return s.evaluator }

// Run processes one clip end to end. The context carries logging metadata
// only; extraction is bounded by the clip length and needs no cancellation.
func (s *Session) Run(ctx context.Context, clip *audio.Clip, opts Options) (*Result, error) {
	subject := strings.TrimSpace(opts.SubjectID)
	if subject == "" {
		subject = NewPatientID()
	}

	logger := logging.WithContext(ctx, s.logger).With(logging.String(logging.FieldSubjectID, subject))
	started := time.Now()

	features, err := s.extractor.Extract(clip)
	if err != nil {
		logger.Warn("feature extraction failed", logging.Error(err))
		return nil, err
	}

	assessment, err := s.evaluator.Evaluate(features, opts.LifeStage)
	if err != nil {
		logger.Warn("risk evaluation failed", logging.Error(err))
		return nil, err
	}

	result := &Result{
		SubjectID:  subject,
		RecordedAt: started,
		Features:   features,
		Assessment: assessment,
	}

	if opts.Baseline != nil {
		verdict := s.evaluator.Drift(features, *opts.Baseline)
		result.Drift = &verdict
	}

	logger.Info("analysis complete",
		logging.Float64("stability_score", assessment.Score),
		logging.String("fingerprint", features.Fingerprint),
		logging.Bool("drift_alert", result.Drift != nil && result.Drift.Alert),
		logging.Duration("elapsed", time.Since(started)),
	)

	return result, nil
}

// NewPatientID mints the display identifier used on dashboards and reports.
func NewPatientID() string {
	return "PAT-" + strings.ToUpper(uuid.NewString()[:8])
}
