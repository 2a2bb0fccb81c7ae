package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"nuros/internal/analysis"
	"nuros/internal/risk"
)

var (
	bannerGood = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff9f")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	bannerWatch = bannerGood.Foreground(lipgloss.Color("#ffd75f"))
	bannerAlert = bannerGood.Foreground(lipgloss.Color("#ff5f5f"))

	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
)

// renderDashboard writes the human-readable analysis view: score banner,
// metric table, findings table, and the drift verdict when present.
func renderDashboard(w io.Writer, result *analysis.Result) {
	colorize := shouldColorize(w)

	fmt.Fprintln(w, renderScoreBanner(result, colorize))
	fmt.Fprintln(w)

	fmt.Fprintln(w, renderTable(
		[]string{"Metric", "Value", "Meaning"},
		[][]string{
			{"Jitter", fmt.Sprintf("%.2f %%", result.Features.JitterPercent), "cycle-to-cycle pitch variation"},
			{"Shimmer", fmt.Sprintf("%.2f %%", result.Features.ShimmerPercent), "cycle-to-cycle loudness variation"},
			{"HNR", fmt.Sprintf("%.1f dB", result.Features.HNRdB), "voice clarity vs breathiness"},
			{"F0 std dev", fmt.Sprintf("%.1f Hz", result.Features.F0StdHz), "pitch variability / prosody"},
		},
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))

	if result.Features.Fallback.Any() {
		note := "note: some metrics fell back to neutral defaults (low voiced coverage)"
		if colorize {
			note = dimStyle.Render(note)
		}
		fmt.Fprintln(w, note)
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(result.Assessment.Findings))
	for _, finding := range result.Assessment.Findings {
		rows = append(rows, []string{
			string(finding.Category),
			finding.Condition,
			string(finding.Level),
			fmt.Sprintf("%.1f %%", finding.Confidence),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Category", "Condition", "Risk", "Confidence"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))
	fmt.Fprintln(w)

	if result.Drift != nil {
		prefix := "Vocal twin:"
		if result.Drift.Alert {
			prefix = "Vocal twin ALERT:"
		}
		line := fmt.Sprintf("%s %s", prefix, result.Drift.Message)
		if colorize && result.Drift.Alert {
			line = alertStyle.Render(line)
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, result.Assessment.Narrative)
}

func renderScoreBanner(result *analysis.Result, colorize bool) string {
	text := fmt.Sprintf("%s  |  %s profile  |  Vocal Stability %.1f / 100",
		result.SubjectID, result.Assessment.LifeStage, result.Assessment.Score)
	if !colorize {
		return text
	}
	switch {
	case result.Assessment.Score >= 80:
		return bannerGood.Render(text)
	case result.Assessment.Score >= 60:
		return bannerWatch.Render(text)
	default:
		return bannerAlert.Render(text)
	}
}

// highestLevel summarizes a finding list for one-line output.
func highestLevel(findings []risk.Finding) risk.Level {
	level := risk.LevelLow
	for _, finding := range findings {
		if finding.Level.AtLeast(level) {
			level = finding.Level
		}
	}
	return level
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
