// Package api exposes the demo HTTP surface of the analysis engine.
//
// The server is deliberately small: one upload endpoint that runs a full
// analysis session and a health probe. Baselines submitted over HTTP live in
// process memory only; durable snapshots belong to the CLI and its baseline
// store. Responses use a uniform success/error envelope so demo clients can
// branch on a single boolean.
package api
