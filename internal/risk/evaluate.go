package risk

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"nuros/internal/acoustic"
	"nuros/internal/config"
	"nuros/internal/logging"
)

// Assessment is the result of one evaluation call.
type Assessment struct {
	// Score is the composite vocal stability score in [0, 100], rounded to
	// one decimal.
	Score float64 `json:"stability_score"`
	// Findings holds one entry per condition, in fixed table order.
	Findings []Finding `json:"findings"`
	// Narrative is a human-readable summary derived purely from the findings
	// already computed; it introduces no thresholds of its own.
	Narrative string `json:"narrative"`
	// LifeStage echoes the profile the rules were adjusted for.
	LifeStage LifeStage `json:"life_stage"`
}

// Evaluator applies the screening rule table to feature vectors. It holds
// only configuration and a noise source; evaluations share no mutable state.
type Evaluator struct {
	thresholds config.Thresholds
	scoring    config.Scoring
	driftTrip  float64
	noise      Noise
	logger     *slog.Logger
}

// NewEvaluator constructs an evaluator. Pass ZeroNoise for deterministic
// confidences and scores.
func NewEvaluator(cfg *config.Config, noise Noise, logger *slog.Logger) *Evaluator {
	if noise == nil {
		noise = ZeroNoise()
	}
	return &Evaluator{
		thresholds: cfg.Thresholds,
		scoring:    cfg.Scoring,
		driftTrip:  cfg.Drift.AlertPercent,
		noise:      noise,
		logger:     logging.NewComponentLogger(logger, "risk"),
	}
}

// Evaluate produces the stability score, the per-condition findings, and the
// narrative for one feature vector under the given life-stage profile.
//
// The evaluator trusts the extractor's range guarantees and performs no
// revalidation beyond completeness; an incomplete vector is an explicit
// error, never a silent default.
func (e *Evaluator) Evaluate(features acoustic.FeatureVector, stage LifeStage) (Assessment, error) {
	if err := features.Complete(); err != nil {
		return Assessment{}, err
	}
	if stage == "" {
		stage = LifeStageGeneral
	}

	score := e.stabilityScore(features)

	baselines := baselinesFor(e.thresholds, stage)
	rules := ruleTable(e.thresholds, baselines)
	findings := make([]Finding, 0, len(rules))
	for _, r := range rules {
		findings = append(findings, r.apply(features, e.noise))
	}

	assessment := Assessment{
		Score:     score,
		Findings:  findings,
		Narrative: buildNarrative(stage, findings),
		LifeStage: stage,
	}

	e.logger.Debug("evaluation complete",
		logging.Float64("stability_score", score),
		logging.Int("findings", len(findings)),
		logging.String("life_stage", string(stage)),
		logging.String("fingerprint", features.Fingerprint),
	)

	return assessment, nil
}

// stabilityScore starts at 100, subtracts a fixed penalty for every crossed
// threshold, adds the bounded presentation noise, and clamps to [0, 100].
func (e *Evaluator) stabilityScore(v acoustic.FeatureVector) float64 {
	t, s := e.thresholds, e.scoring

	score := 100.0
	if v.JitterPercent > t.JitterHighPercent {
		score -= s.JitterPenalty
	}
	if v.HNRdB < t.HNRLowDB {
		score -= s.HNRPenalty
	}
	if v.HNRdB < t.HNRCriticalDB {
		score -= s.HNRCriticalPenalty
	}
	if v.F0StdHz < t.F0StdFloorHz || v.F0StdHz > t.F0StdCeilingHz {
		score -= s.F0StdPenalty
	}
	if v.ShimmerPercent > t.ShimmerHighPercent {
		score -= s.ShimmerPenalty
	}

	score += e.noise.Uniform(-s.NoiseBand, s.NoiseBand)
	score = math.Max(0, math.Min(100, score))
	return math.Round(score*10) / 10
}

// buildNarrative concatenates the rule outcomes into a multi-sentence
// summary. It is a deterministic function of the findings alone.
func buildNarrative(stage LifeStage, findings []Finding) string {
	var b strings.Builder
	womensHeader := false
	for _, f := range findings {
		if f.Category == CategoryWomensHealth && !womensHeader {
			fmt.Fprintf(&b, "[Women's Health Metrics - %s Profile] ", stage)
			womensHeader = true
		}
		fmt.Fprintf(&b, "%s: %s risk. %s ", f.Condition, f.Level, f.Rationale)
	}
	return strings.TrimSpace(b.String())
}
