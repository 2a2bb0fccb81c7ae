// Package analysis orchestrates one request-scoped run of the engine:
// validate the clip, extract the feature vector, evaluate risk, and compare
// against an optional caller-supplied baseline.
//
// A Session owns no state across runs; the baseline always belongs to the
// caller. Data flows strictly one way: audio -> features -> score, findings,
// drift verdict.
package analysis
