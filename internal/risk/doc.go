// Package risk maps a feature vector onto screening findings, a bounded
// stability score, and a longitudinal drift verdict.
//
// Every rule is a pure function of one or two biomarker fields against
// configured thresholds; rules are independent and evaluated as an ordered
// table, so no finding depends on another. Life-stage profiles widen a
// subset of the women's health thresholds before evaluation and can only
// relax a rule, never tighten it.
//
// The only nondeterminism is the injected noise source, which supplies the
// presentation-level confidence percentages and the small stability score
// jitter. Inject ZeroNoise to make evaluation fully repeatable.
//
// The output is a screening aid, not a diagnosis; the thresholds mirror the
// shipped product constants and have no cited clinical derivation.
package risk
