package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nuros/internal/acoustic"
	"nuros/internal/baseline"
	"nuros/internal/logging"
	"nuros/internal/risk"
)

func newDriftCommand(ctx *commandContext) *cobra.Command {
	var (
		subject    string
		against    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "drift <recording.wav>",
		Short: "Compare a recording against a vocal twin baseline",
		Long: `Drift extracts features from the recording and compares jitter and shimmer
against a baseline: either the stored snapshot for --subject, or a second
recording given with --against.

Examples:
  nuros drift today.wav --subject PAT-1A2B3C4D
  nuros drift today.wav --against last-month.wav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return err
			}

			subject = strings.TrimSpace(subject)
			against = strings.TrimSpace(against)
			if (subject == "") == (against == "") {
				return fmt.Errorf("exactly one of --subject or --against is required")
			}

			extractor := acoustic.NewExtractor(cfg, logger)

			clip, err := loadClip(args[0])
			if err != nil {
				return err
			}
			current, err := extractor.Extract(clip)
			if err != nil {
				return err
			}

			var base acoustic.FeatureVector
			if subject != "" {
				snapshot, err := baseline.NewStore(cfg.Paths.BaselinePath).Load(subject)
				if err != nil {
					return fmt.Errorf("load baseline: %w", err)
				}
				base = snapshot.Features
			} else {
				baseClip, err := loadClip(against)
				if err != nil {
					return err
				}
				base, err = extractor.Extract(baseClip)
				if err != nil {
					return err
				}
			}

			evaluator := risk.NewEvaluator(cfg, risk.ZeroNoise(), logger)
			verdict := evaluator.Drift(current, base)

			logger.Debug("drift comparison complete",
				logging.Bool("alert", verdict.Alert),
				logging.Float64("jitter_change_percent", verdict.JitterChangePercent),
				logging.Float64("shimmer_change_percent", verdict.ShimmerChangePercent),
			)

			if jsonOutput {
				return writeJSON(cmd, verdict)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Baseline", "Current", "Change"},
				[][]string{
					{"Jitter", fmt.Sprintf("%.2f %%", base.JitterPercent), fmt.Sprintf("%.2f %%", current.JitterPercent), fmt.Sprintf("%+.1f %%", verdict.JitterChangePercent)},
					{"Shimmer", fmt.Sprintf("%.2f %%", base.ShimmerPercent), fmt.Sprintf("%.2f %%", current.ShimmerPercent), fmt.Sprintf("%+.1f %%", verdict.ShimmerChangePercent)},
				},
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			if verdict.Alert {
				fmt.Fprintln(out, "ALERT:", verdict.Message)
			} else {
				fmt.Fprintln(out, verdict.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Compare against the stored baseline for this subject")
	cmd.Flags().StringVar(&against, "against", "", "Compare against a second recording instead of a stored baseline")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the drift verdict as JSON")

	return cmd
}
