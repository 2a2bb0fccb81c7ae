// Package config loads, normalizes, and validates Nuros configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the engine needs: acoustic estimator parameters, the clinical threshold
// tables, scoring penalties, drift trip points, and presentation settings.
//
// The threshold values ship as configuration rather than literals because
// they have no cited clinical derivation; revisiting them must not require a
// code change. Always obtain settings through this package so downstream
// code receives sanitized paths and clear validation errors.
package config
