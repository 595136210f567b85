package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/observerdev/observer/internal/adapters/outbound/analysis"
	"github.com/observerdev/observer/internal/adapters/outbound/config"
	"github.com/observerdev/observer/internal/adapters/outbound/contracts"
	"github.com/observerdev/observer/internal/adapters/outbound/gitinfo"
	"github.com/observerdev/observer/internal/adapters/outbound/scanner"
	"github.com/observerdev/observer/internal/adapters/outbound/snapshot"
	"github.com/observerdev/observer/internal/adapters/outbound/tui"
	"github.com/observerdev/observer/internal/application"
	"github.com/observerdev/observer/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		noSnapshot bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a project's health",
		Long:  "Run all health rules against a TypeScript/JavaScript project, bucket the violations, and score the result.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			report, err := runAnalysis(absPath, !noSnapshot)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))

			if ciMode && report.Health < minScore {
				return fmt.Errorf("health %d is below minimum %d", report.Health, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum health score for CI mode")
	cmd.Flags().BoolVar(&noSnapshot, "no-snapshot", false, "Skip writing the report and history snapshot")

	return cmd
}

// runAnalysis wires the standard adapters, runs the pipeline, and records a
// snapshot unless disabled.
func runAnalysis(absPath string, record bool) (*domain.Report, error) {
	svc := application.NewAnalyzeService(
		scanner.New(),
		analysis.New(),
		config.New(),
		contracts.New(),
		gitinfo.New(),
	)

	report, err := svc.Analyze(absPath)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	if record {
		snap := application.NewSnapshotService(snapshot.New())
		_, _ = snap.Record(absPath, report) // best-effort
	}

	return report, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
