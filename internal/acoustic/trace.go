package acoustic

import (
	"math"

	"nuros/internal/config"
)

// frame is one analysis window of the pitch trace. Unvoiced frames carry a
// zero F0 and are excluded from all downstream statistics.
type frame struct {
	start int
	f0    float64
	corr  float64
}

func (f frame) voiced() bool { return f.f0 > 0 }

// pitchTrace is the immutable per-frame F0/harmonicity trace shared by the
// jitter, shimmer, and HNR passes.
type pitchTrace struct {
	frames     []frame
	sampleRate int
	frameLen   int
	hop        int
}

// buildTrace runs the periodicity estimator over the clip. The estimator is
// a normalized cross-correlation restricted to the configured voice band;
// frames whose peak falls below the voicing threshold, or whose amplitude
// falls below the silence threshold relative to the clip peak, are unvoiced.
func buildTrace(samples []float64, sampleRate int, params config.Analysis) *pitchTrace {
	frameLen := max(int(math.Round(params.FrameSeconds*float64(sampleRate))), 2)
	hop := max(int(math.Round(params.HopSeconds*float64(sampleRate))), 1)

	minLag := max(int(math.Floor(float64(sampleRate)/params.VoiceBandMaxHz)), 2)
	maxLag := int(math.Ceil(float64(sampleRate) / params.VoiceBandMinHz))
	if maxLag > frameLen-2 {
		maxLag = frameLen - 2
	}

	trace := &pitchTrace{sampleRate: sampleRate, frameLen: frameLen, hop: hop}
	if maxLag <= minLag || frameLen > len(samples) {
		return trace
	}

	var clipPeak float64
	for _, s := range samples {
		clipPeak = math.Max(clipPeak, math.Abs(s))
	}

	window := make([]float64, frameLen)
	corr := make([]float64, maxLag+1)

	for start := 0; start+frameLen <= len(samples); start += hop {
		fr := frame{start: start}

		var mean, peak float64
		for i := range frameLen {
			window[i] = samples[start+i]
			mean += window[i]
		}
		mean /= float64(frameLen)
		for i := range window {
			window[i] -= mean
			peak = math.Max(peak, math.Abs(window[i]))
		}

		if clipPeak == 0 || peak < params.SilenceThreshold*clipPeak {
			trace.frames = append(trace.frames, fr)
			continue
		}

		bestLag, bestCorr := -1, 0.0
		for lag := minLag; lag <= maxLag; lag++ {
			corr[lag] = normalizedCorrelation(window, lag)
			if corr[lag] > bestCorr {
				bestCorr = corr[lag]
				bestLag = lag
			}
		}

		if bestLag < 0 || bestCorr < params.VoicingThreshold {
			trace.frames = append(trace.frames, fr)
			continue
		}

		lag := refineLag(corr, bestLag, minLag, maxLag)
		f0 := float64(sampleRate) / lag
		if f0 < params.VoiceBandMinHz || f0 > params.VoiceBandMaxHz {
			trace.frames = append(trace.frames, fr)
			continue
		}

		fr.f0 = f0
		fr.corr = math.Min(bestCorr, maxHarmonicity)
		trace.frames = append(trace.frames, fr)
	}

	return trace
}

// maxHarmonicity caps the correlation peak so the HNR mapping
// 10*log10(r/(1-r)) stays finite on near-perfect periodicity.
const maxHarmonicity = 0.9999

// normalizedCorrelation evaluates the cross-correlation of a window with its
// lag-shifted self, normalized so a perfectly periodic signal scores 1.
func normalizedCorrelation(window []float64, lag int) float64 {
	n := len(window) - lag
	var cross, energyA, energyB float64
	for i := range n {
		cross += window[i] * window[i+lag]
		energyA += window[i] * window[i]
		energyB += window[i+lag] * window[i+lag]
	}
	denom := math.Sqrt(energyA * energyB)
	if denom == 0 {
		return 0
	}
	return cross / denom
}

// refineLag applies parabolic interpolation around the correlation peak for
// sub-sample period precision.
func refineLag(corr []float64, lag, minLag, maxLag int) float64 {
	if lag <= minLag || lag >= maxLag {
		return float64(lag)
	}
	prev, mid, next := corr[lag-1], corr[lag], corr[lag+1]
	denom := prev - 2*mid + next
	if denom == 0 {
		return float64(lag)
	}
	shift := 0.5 * (prev - next) / denom
	if math.Abs(shift) > 1 {
		return float64(lag)
	}
	return float64(lag) + shift
}

// voicedF0 returns the F0 values of every voiced frame in trace order.
func (t *pitchTrace) voicedF0() []float64 {
	var values []float64
	for _, fr := range t.frames {
		if fr.voiced() {
			values = append(values, fr.f0)
		}
	}
	return values
}

// voicedRuns returns maximal runs of consecutive voiced frames. Perturbation
// statistics never bridge an unvoiced gap.
func (t *pitchTrace) voicedRuns() [][]frame {
	var runs [][]frame
	var current []frame
	for _, fr := range t.frames {
		if fr.voiced() {
			current = append(current, fr)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// periodSequences converts each voiced run into its sequence of consecutive
// period lengths, in seconds.
func (t *pitchTrace) periodSequences() [][]float64 {
	runs := t.voicedRuns()
	sequences := make([][]float64, 0, len(runs))
	for _, run := range runs {
		periods := make([]float64, len(run))
		for i, fr := range run {
			periods[i] = 1 / fr.f0
		}
		sequences = append(sequences, periods)
	}
	return sequences
}

// cycleAmplitudes walks each voiced run cycle by cycle, using the local
// period to segment the waveform, and records the peak-to-peak amplitude of
// every cycle.
func (t *pitchTrace) cycleAmplitudes(samples []float64) [][]float64 {
	runs := t.voicedRuns()
	sequences := make([][]float64, 0, len(runs))
	for _, run := range runs {
		first := run[0].start
		end := min(run[len(run)-1].start+t.frameLen, len(samples))

		var amps []float64
		pos := first
		for {
			idx := min((pos-first)/t.hop, len(run)-1)
			period := max(int(math.Round(float64(t.sampleRate)/run[idx].f0)), 1)
			if pos+period > end {
				break
			}
			lo, hi := samples[pos], samples[pos]
			for _, s := range samples[pos : pos+period] {
				lo = math.Min(lo, s)
				hi = math.Max(hi, s)
			}
			amps = append(amps, hi-lo)
			pos += period
		}
		if len(amps) > 0 {
			sequences = append(sequences, amps)
		}
	}
	return sequences
}

// perturbationPercent is the shared jitter/shimmer construction: the mean
// absolute consecutive difference across every run, normalized by the global
// mean, times 100. Returns NaN when no consecutive pair exists or the mean
// is zero.
func perturbationPercent(sequences [][]float64) float64 {
	var diffSum, total float64
	var diffCount, count int
	for _, seq := range sequences {
		for i, v := range seq {
			total += v
			count++
			if i > 0 {
				diffSum += math.Abs(v - seq[i-1])
				diffCount++
			}
		}
	}
	if diffCount == 0 || count == 0 {
		return math.NaN()
	}
	mean := total / float64(count)
	if mean == 0 {
		return math.NaN()
	}
	return diffSum / float64(diffCount) / mean * 100
}

// meanHarmonicityDB averages the per-frame harmonics-to-noise estimate, in
// decibels, over voiced frames. Returns NaN when no voiced frame exists.
func (t *pitchTrace) meanHarmonicityDB() float64 {
	var sum float64
	var count int
	for _, fr := range t.frames {
		if !fr.voiced() || fr.corr <= 0 {
			continue
		}
		sum += 10 * math.Log10(fr.corr/(1-fr.corr))
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
