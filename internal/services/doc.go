// Package services defines the shared error taxonomy and request context
// helpers used across the analysis engine.
//
// Errors are tagged with sentinel markers so callers can classify failures
// without string matching: a missing voice signal is an actionable user
// prompt ("record again"), while a processing fault is a system error. The
// context helpers carry subject, stage, and correlation identifiers for
// structured logging.
package services
