package risk_test

import (
	"strings"
	"testing"

	"nuros/internal/acoustic"
	"nuros/internal/risk"
)

func baselineVector() acoustic.FeatureVector {
	return acoustic.FeatureVector{
		JitterPercent:  1.0,
		ShimmerPercent: 2.0,
		HNRdB:          20,
		F0StdHz:        18,
	}
}

func TestDriftIdenticalVectors(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	verdict := evaluator.Drift(baselineVector(), baselineVector())
	if verdict.Alert {
		t.Fatal("identical vectors must not alert")
	}
	if verdict.JitterChangePercent != 0 || verdict.ShimmerChangePercent != 0 {
		t.Fatalf("changes = %+.1f%% / %+.1f%%, want zero",
			verdict.JitterChangePercent, verdict.ShimmerChangePercent)
	}
	if !strings.Contains(verdict.Message, "tracking") {
		t.Fatalf("message %q should describe a stable baseline", verdict.Message)
	}
}

func TestDriftAlertsAboveTripPoint(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	current := baselineVector()
	current.JitterPercent = 1.2 // +20% against the 15% trip point
	verdict := evaluator.Drift(current, baselineVector())
	if !verdict.Alert {
		t.Fatal("a 20% jitter increase must alert")
	}
	if verdict.JitterChangePercent < 19.9 || verdict.JitterChangePercent > 20.1 {
		t.Fatalf("jitter change = %.2f%%, want 20%%", verdict.JitterChangePercent)
	}
	if !strings.Contains(verdict.Message, "degradation") {
		t.Fatalf("message %q should describe degradation", verdict.Message)
	}
}

func TestDriftShimmerAloneCanAlert(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	current := baselineVector()
	current.ShimmerPercent = 2.4 // +20%
	if verdict := evaluator.Drift(current, baselineVector()); !verdict.Alert {
		t.Fatal("a 20% shimmer increase must alert")
	}
}

func TestDriftToleratesSmallIncrease(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	current := baselineVector()
	current.JitterPercent = 1.05 // +5%
	current.ShimmerPercent = 2.1 // +5%
	if verdict := evaluator.Drift(current, baselineVector()); verdict.Alert {
		t.Fatalf("5%% increases are within tolerance, got alert: %s", verdict.Message)
	}
}

func TestDriftImprovementNeverAlerts(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	current := baselineVector()
	current.JitterPercent = 0.4
	current.ShimmerPercent = 1.0
	if verdict := evaluator.Drift(current, baselineVector()); verdict.Alert {
		t.Fatal("a large improvement must not alert")
	}
}

func TestDriftZeroBaselineSuppressed(t *testing.T) {
	evaluator := newEvaluator(t, risk.ZeroNoise())

	base := baselineVector()
	base.JitterPercent = 0
	current := baselineVector()
	current.JitterPercent = 5

	verdict := evaluator.Drift(current, base)
	if verdict.JitterChangePercent != 0 {
		t.Fatalf("jitter change against zero baseline = %.1f%%, want 0", verdict.JitterChangePercent)
	}
	if verdict.Alert {
		t.Fatal("a zero baseline must not produce an alert on its own")
	}
}
