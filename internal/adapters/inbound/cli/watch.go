package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/observerdev/observer/internal/adapters/outbound/tui"
	"github.com/observerdev/observer/internal/adapters/outbound/watch"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-analyze on file changes",
		Long:  "Watch the project tree and re-run the analysis after each change, printing the updated report.",
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

			w, err := watch.New()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer w.Close()

			rerun := func() {
				report, err := runAnalysis(absPath, true)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", err)
					return
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			// Run once up front so the first report does not wait for a change.
			rerun()

			stop := make(chan struct{})
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigs
				close(stop)
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", absPath)
			return w.Watch(absPath, stop, rerun)
		},
	}

	return cmd
}
