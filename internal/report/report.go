// Package report renders the clinical summary of an analysis result and
// protects it with the patient access key.
//
// The output is deliberately plain text: the layout concerns of the original
// dashboard and PDF stay with the presentation layer. Everything in the
// summary is copied from the result record; no threshold logic lives here.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nuros/internal/analysis"
	"nuros/internal/risk"
)

var headingCaser = cases.Upper(language.English)

// Render produces the plain-text clinical summary for one result.
func Render(result *analysis.Result) string {
	var b strings.Builder

	fmt.Fprintln(&b, "NUROS VOCAL BIOMARKER CLINICAL SUMMARY")
	fmt.Fprintln(&b, strings.Repeat("=", 54))
	fmt.Fprintf(&b, "Patient ID:  %s\n", result.SubjectID)
	fmt.Fprintf(&b, "Recorded:    %s\n", result.RecordedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Profile:     %s\n", result.Assessment.LifeStage)
	fmt.Fprintf(&b, "Fingerprint: %s\n", result.Features.Fingerprint)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Vocal Stability Score: %.1f / 100\n", result.Assessment.Score)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingCaser.String("Extracted Phonatory Metrics"))
	fmt.Fprintf(&b, "  Jitter (frequency variation):  %.2f %%\n", result.Features.JitterPercent)
	fmt.Fprintf(&b, "  Shimmer (amplitude variation): %.2f %%\n", result.Features.ShimmerPercent)
	fmt.Fprintf(&b, "  Harmonics-to-Noise Ratio:      %.1f dB\n", result.Features.HNRdB)
	fmt.Fprintf(&b, "  F0 Std Dev (prosody):          %.1f Hz\n", result.Features.F0StdHz)
	if result.Features.Fallback.Any() {
		fmt.Fprintf(&b, "  Note: neutral defaults substituted for %s.\n",
			strings.Join(fallbackFields(result), ", "))
	}
	fmt.Fprintln(&b)

	var category risk.Category
	for _, finding := range result.Assessment.Findings {
		if finding.Category != category {
			category = finding.Category
			fmt.Fprintln(&b, headingCaser.String(string(category)))
		}
		fmt.Fprintf(&b, "  %-42s %-6s (confidence %.1f%%)\n", finding.Condition, finding.Level, finding.Confidence)
		fmt.Fprintf(&b, "    %s\n", finding.Rationale)
	}
	fmt.Fprintln(&b)

	if result.Drift != nil {
		fmt.Fprintln(&b, headingCaser.String("Vocal Twin Drift"))
		if result.Drift.Alert {
			fmt.Fprintln(&b, "  ALERT:", result.Drift.Message)
		} else {
			fmt.Fprintln(&b, " ", result.Drift.Message)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, headingCaser.String("Summary"))
	fmt.Fprintln(&b, " ", result.Assessment.Narrative)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "This is an early risk screening tool, NOT a medical diagnosis.")
	fmt.Fprintln(&b, "Proceed to clinical evaluation for high-risk signals.")

	return b.String()
}

func fallbackFields(result *analysis.Result) []string {
	var fields []string
	f := result.Features.Fallback
	if f.Jitter {
		fields = append(fields, "jitter")
	}
	if f.Shimmer {
		fields = append(fields, "shimmer")
	}
	if f.HNR {
		fields = append(fields, "HNR")
	}
	if f.F0Std {
		fields = append(fields, "F0 std dev")
	}
	return fields
}
