// Package audio holds the immutable waveform type consumed by the feature
// extractor, plus a small RIFF/WAVE PCM decoder for the CLI and API layers.
//
// The core engine only ever sees in-memory sample buffers; all file and
// network I/O stays with the callers in cmd and internal/api.
package audio
