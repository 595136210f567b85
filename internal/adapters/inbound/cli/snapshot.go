package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/observerdev/observer/internal/adapters/outbound/snapshot"
	"github.com/observerdev/observer/internal/application"
)

func newSnapshotCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "Analyze and record a history snapshot",
		Long:  "Run a full analysis and append the result to the project's snapshot history without rendering the report.",
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

			report, err := runAnalysis(absPath, false)
			if err != nil {
				return err
			}

			svc := application.NewSnapshotService(snapshot.New())
			entry, err := svc.Record(absPath, report)
			if err != nil {
				return fmt.Errorf("recording snapshot: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot recorded: %d issues (%+d vs previous)\n", entry.Total, entry.Diff)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the recorded entry as JSON")
	return cmd
}
