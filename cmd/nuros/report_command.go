package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nuros/internal/analysis"
	"nuros/internal/report"
	"nuros/internal/risk"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Create and open encrypted clinical summaries",
	}

	reportCmd.AddCommand(newReportCreateCommand(ctx))
	reportCmd.AddCommand(newReportOpenCommand())

	return reportCmd
}

func newReportCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		subject   string
		lifeStage string
		outPath   string
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "create <recording.wav>",
		Short: "Analyze a recording and write an encrypted clinical summary",
		Long: `Create analyzes the recording, renders the clinical summary, and seals it
with a freshly minted patient access key. The key is printed once; keep it.

Examples:
  nuros report create sample.wav
  nuros report create sample.wav --life-stage Pregnancy --out /tmp/summary.nrx
  nuros report create sample.wav --plain`,
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

			session := analysis.NewSession(cfg, noiseSource(false, 0), logger)
			result, err := session.Run(cmd.Context(), clip, analysis.Options{
				SubjectID: strings.TrimSpace(subject),
				LifeStage: stage,
			})
			if err != nil {
				return err
			}

			rendered := report.Render(result)
			out := cmd.OutOrStdout()

			if plain {
				fmt.Fprint(out, rendered)
				return nil
			}

			accessKey, err := report.AccessKey()
			if err != nil {
				return err
			}
			sealed, err := report.Encrypt([]byte(rendered), accessKey)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				name := fmt.Sprintf("%s-%s.nrx", result.SubjectID, time.Now().Format("20060102-150405"))
				target = filepath.Join(cfg.Paths.ReportDir, name)
			}
			if err := os.WriteFile(target, sealed, 0o600); err != nil {
				return fmt.Errorf("write sealed report: %w", err)
			}

			fmt.Fprintf(out, "Sealed clinical summary written to %s\n", target)
			fmt.Fprintf(out, "Patient access key: %s\n", accessKey)
			fmt.Fprintln(out, "The key is not stored anywhere; without it the report cannot be opened.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject identifier (default: generated patient ID)")
	cmd.Flags().StringVarP(&lifeStage, "life-stage", "l", "", "Life stage profile: General, Pregnancy, or Menopause")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination for the sealed report (default: report directory)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the summary to stdout without sealing it")

	return cmd
}

func newReportOpenCommand() *cobra.Command {
	var accessKey string

	cmd := &cobra.Command{
		Use:         "open <sealed-report>",
		Short:       "Decrypt a sealed clinical summary",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(accessKey)
			if key == "" {
				return fmt.Errorf("--key is required")
			}
			sealed, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read sealed report: %w", err)
			}
			plaintext, err := report.Decrypt(sealed, key)
			if err != nil {
				return fmt.Errorf("decrypt report (wrong access key?): %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(plaintext))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accessKey, "key", "k", "", "Patient access key printed at creation time")

	return cmd
}
