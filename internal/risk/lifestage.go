package risk

import (
	"fmt"
	"strings"

	"nuros/internal/config"
)

// LifeStage selects the physiological baseline profile applied to the
// women's health rules. It is configuration input, not evaluator state.
type LifeStage string

const (
	LifeStageGeneral   LifeStage = "General"
	LifeStagePregnancy LifeStage = "Pregnancy"
	LifeStageMenopause LifeStage = "Menopause"
)

// ParseLifeStage accepts a case-insensitive life stage name. Empty input
// maps to the General profile.
func ParseLifeStage(value string) (LifeStage, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "general":
		return LifeStageGeneral, nil
	case "pregnancy":
		return LifeStagePregnancy, nil
	case "menopause":
		return LifeStageMenopause, nil
	default:
		return "", fmt.Errorf("unknown life stage %q (want General, Pregnancy, or Menopause)", value)
	}
}

// stageBaselines are the women's health thresholds after life-stage
// widening. Estrogen-driven mucosal changes raise the expected roughness
// baseline and lower the expected HNR, so the jitter/shimmer baselines move
// up and the HNR baseline moves down; no adjustment ever tightens a rule.
type stageBaselines struct {
	jitterPercent  float64
	shimmerPercent float64
	thyroidHNRdB   float64
}

func baselinesFor(t config.Thresholds, stage LifeStage) stageBaselines {
	b := stageBaselines{
		jitterPercent:  t.WomensJitterPercent,
		shimmerPercent: t.WomensShimmerPercent,
		thyroidHNRdB:   t.ThyroidHNRdB,
	}
	switch stage {
	case LifeStagePregnancy:
		b.jitterPercent += t.PregnancyJitterDelta
		b.shimmerPercent += t.PregnancyShimmerDelta
		b.thyroidHNRdB -= t.PregnancyHNRDelta
	case LifeStageMenopause:
		b.jitterPercent += t.MenopauseJitterDelta
		b.shimmerPercent += t.MenopauseShimmerDelta
		b.thyroidHNRdB -= t.MenopauseHNRDelta
	}
	return b
}
