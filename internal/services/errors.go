package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks structurally malformed input: empty buffers,
	// unsupported channel counts, incomplete feature vectors.
	ErrValidation = errors.New("validation error")
	// ErrNoVoice marks clips with insufficient voiced signal. Distinct from
	// processing faults: the user can fix it by recording again.
	ErrNoVoice = errors.New("insufficient voiced signal")
	// ErrProcessing marks internal analysis faults.
	ErrProcessing = errors.New("processing error")
	// ErrConfiguration marks invalid or missing configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks missing baselines or snapshot entries.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProcessing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// UserMessage maps an analysis error to the single user-visible string the
// presentation layer should show.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoVoice):
		return "No voice detected. Please record 10 seconds of clear speech and try again."
	case errors.Is(err, ErrValidation):
		return "The recording could not be read. Please supply a mono PCM clip."
	case errors.Is(err, ErrNotFound):
		return "No baseline snapshot found for this subject."
	case errors.Is(err, ErrConfiguration):
		return "The analysis engine is misconfigured. Check the configuration file."
	default:
		return "Voice analysis failed due to a processing error."
	}
}

// HTTPStatus maps an analysis error to the status code the API layer should
// respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return 200
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNoVoice):
		return 422
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConfiguration):
		return 503
	default:
		return 500
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
