package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nuros/internal/acoustic"
	"nuros/internal/analysis"
	"nuros/internal/baseline"
	"nuros/internal/risk"
	"nuros/internal/services"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var (
		subject       string
		lifeStage     string
		useBaseline   bool
		saveBaseline  bool
		deterministic bool
		seed          uint64
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <recording.wav>",
		Short: "Extract vocal biomarkers from a recording and evaluate risk",
		Long: `Analyze runs the full pipeline on one WAV recording: acoustic feature
extraction (jitter, shimmer, HNR, pitch variability) followed by the
threshold-based risk evaluation.

Examples:
  nuros analyze sample.wav
  nuros analyze sample.wav --life-stage Menopause
  nuros analyze sample.wav --subject PAT-1A2B3C4D --baseline
  nuros analyze sample.wav --subject PAT-1A2B3C4D --save-baseline`,
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

			stage, err := risk.ParseLifeStage(lifeStage)
			if err != nil {
				return err
			}

			clip, err := loadClip(args[0])
			if err != nil {
				return err
			}

			subject = strings.TrimSpace(subject)
			store := baseline.NewStore(cfg.Paths.BaselinePath)

			var priorFeatures *acoustic.FeatureVector
			if useBaseline {
				if subject == "" {
					return fmt.Errorf("--baseline requires --subject")
				}
				snapshot, err := store.Load(subject)
				if err != nil {
					return fmt.Errorf("load baseline: %w\n%s", err, services.UserMessage(err))
				}
				priorFeatures = &snapshot.Features
			}

			session := analysis.NewSession(cfg, noiseSource(deterministic, seed), logger)
			result, err := session.Run(cmd.Context(), clip, analysis.Options{
				SubjectID: subject,
				LifeStage: stage,
				Baseline:  priorFeatures,
			})
			if err != nil {
				return fmt.Errorf("%w\n%s", err, services.UserMessage(err))
			}

			if saveBaseline {
				if err := store.Save(baseline.Snapshot{
					SubjectID: result.SubjectID,
					Features:  result.Features,
				}); err != nil {
					return fmt.Errorf("save baseline: %w", err)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			renderDashboard(out, result)
			fmt.Fprintf(out, "\nHighest finding level: %s. Fingerprint %s.\n",
				highestLevel(result.Assessment.Findings), result.Features.Fingerprint)
			if saveBaseline {
				fmt.Fprintf(out, "Baseline snapshot saved for %s.\n", result.SubjectID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject identifier (default: generated patient ID)")
	cmd.Flags().StringVarP(&lifeStage, "life-stage", "l", "", "Life stage profile: General, Pregnancy, or Menopause")
	cmd.Flags().BoolVar(&useBaseline, "baseline", false, "Compare against the stored baseline for --subject")
	cmd.Flags().BoolVar(&saveBaseline, "save-baseline", false, "Store this run as the subject's vocal twin baseline")
	cmd.Flags().BoolVar(&deterministic, "deterministic", false, "Disable evaluation randomness (midpoint confidences, zero score jitter)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for evaluation randomness (0 = random)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result record as JSON")

	return cmd
}
