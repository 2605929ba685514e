package cmd

import (
	"fmt"

	"eox-sync/feature/eox"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncForce   bool
	syncDryRun  bool
	syncQueries []string
)

// syncCmd runs one synchronization in the foreground.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize products with the Cisco EoX API",
	Long: `Runs one synchronization with the Cisco EoX API and prints the report.

Without --force the run is subject to the periodic-sync flag, like a
scheduled run.

Examples:
  # Run as the scheduler would
  sync

  # Run regardless of the periodic-sync flag
  sync --force

  # Preview the actions for one pattern without writing anything
  sync --force --dry-run --query "WS-C2960-*"`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Run even when periodic sync is disabled")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Decide actions without writing products or notifications")
	syncCmd.Flags().StringArrayVar(&syncQueries, "query", nil, "Query pattern to use instead of the configured ones (repeatable)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	trigger := eox.Trigger{
		Manual: syncForce,
		Source: eox.TriggerCLI,
		DryRun: syncDryRun,
	}
	for _, q := range syncQueries {
		trigger.Queries = append(trigger.Queries, eox.ParseQueries(q)...)
	}

	out := rt.orchestrator().Run(ctx, rt.cfg.EoX, trigger)
	printOutcome(rt.logger, out)

	if out.State == eox.StateFailed {
		return fmt.Errorf("synchronization failed: %s", out.ErrorMessage)
	}
	return nil
}

// printOutcome prints a run summary using the logger.
func printOutcome(l *zap.Logger, out *eox.Outcome) {
	l.Info("Synchronization report",
		zap.String("run_id", out.RunID),
		zap.String("state", string(out.State)),
		zap.Bool("dry_run", out.Trigger.DryRun),
		zap.Duration("duration", out.FinishedAt.Sub(out.StartedAt)),
	)

	for _, q := range out.Queries {
		l.Info("Query summary",
			zap.String("query", q.Query),
			zap.Int("created", q.Summary.Created),
			zap.Int("updated", q.Summary.Updated),
			zap.Int("unchanged", q.Summary.Unchanged),
			zap.Int("blacklisted", q.Summary.Blacklisted),
			zap.Int("missing", q.Summary.Missing),
		)

		// Show a sample of the mutating actions
		shown := 0
		for _, a := range q.Actions {
			if !a.Mutating() {
				continue
			}
			if shown == 5 {
				l.Info("Additional actions not shown", zap.Int("count", q.Summary.Created+q.Summary.Updated-shown))
				break
			}
			l.Info("Action",
				zap.String("type", string(a.Type)),
				zap.String("product_id", a.Key),
				zap.Strings("mismatch", a.Mismatch),
			)
			shown++
		}
	}

	if out.ErrorMessage != "" {
		fmt.Printf("\n%s\n", out.ErrorMessage)
		return
	}
	fmt.Printf("\n%s\n", out.StatusMessage)
}
