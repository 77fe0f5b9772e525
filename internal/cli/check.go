package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/wire"
)

// ErrUnhealthy is returned by check when the overall status is error.
var ErrUnhealthy = errors.New("one or more ledgers report error")

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [ledger-id...]",
		Short: "Run one integrity check cycle",
		Long: `Query the status oracle for the given ledgers (or every known ledger when
none are given) and print the aggregated report. Exits non-zero when the
overall status is error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			allAlerts, _ := cmd.Flags().GetBool("all-alerts")

			tenant, err := currentTenant()
			if err != nil {
				return err
			}

			adapter := tenant.MonitorAdapter(os.Stdout)
			report, err := adapter.Check(ctx, args)
			if err != nil {
				return err
			}
			if allAlerts {
				adapter.Alerts(true)
			}
			if report.OverallStatus == primary.LedgerStatusError {
				return ErrUnhealthy
			}
			return nil
		},
	}
	cmd.Flags().Bool("all-alerts", false, "Also list acknowledged alerts")
	return cmd
}

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll every known ledger until interrupted",
		Long: `Run a check cycle over every known ledger on each tick and expire overdue
approval requests. Stops on SIGINT/SIGTERM or after --count cycles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")

			tenant, err := currentTenant()
			if err != nil {
				return err
			}

			interval, _ := cmd.Flags().GetDuration("interval")
			if interval <= 0 {
				reg, err := wire.Default()
				if err != nil {
					return err
				}
				if interval, err = reg.Config().WatchIntervalDuration(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(NewContext(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			adapter := tenant.MonitorAdapter(os.Stdout)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for cycle := 1; ; cycle++ {
				if n := tenant.Approvals.SweepExpired(ctx, time.Now().UTC()); n > 0 {
					fmt.Printf("Expired %d approval request(s)\n", n)
				}
				if _, err := adapter.Check(ctx, nil); err != nil {
					fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
				}
				if count > 0 && cycle >= count {
					return nil
				}

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	cmd.Flags().Duration("interval", 0, "Poll interval (defaults to watch_interval from config)")
	cmd.Flags().Int("count", 0, "Stop after this many cycles (0 runs until interrupted)")
	return cmd
}
