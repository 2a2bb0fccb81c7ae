// Package acoustic turns a mono PCM waveform into the scalar vocal
// biomarkers the risk evaluator consumes.
//
// The extraction pipeline runs in a fixed order:
//
//  1. Pitch trace - frame-by-frame normalized autocorrelation restricted to
//     the human voice band yields an F0 trace; frames below the voicing or
//     silence thresholds are excluded from every statistic.
//  2. F0StdHz - standard deviation of the voiced F0 trace.
//  3. JitterPercent - mean absolute consecutive-period difference over runs
//     of voiced frames, normalized by the mean period.
//  4. ShimmerPercent - the same construction over per-cycle peak-to-peak
//     amplitudes.
//  5. HNRdB - per-frame harmonicity from the autocorrelation peak, averaged
//     over voiced frames.
//  6. Fingerprint - a truncated SHA-256 over the rounded metrics, used as a
//     display and audit token.
//
// Numerical failures inside a single estimator are replaced with documented
// neutral defaults and flagged on the vector; a clip with no voiced frames
// at all is an error ("insufficient voiced signal"), never a silent default.
// All estimator parameters come from configuration; the algorithms carry no
// tuning literals.
package acoustic
