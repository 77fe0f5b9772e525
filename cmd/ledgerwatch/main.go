package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/cli"
	"github.com/example/ledgerwatch/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ledgerwatch",
		Short:   "ledgerwatch - ledger integrity monitor and approval coordinator",
		Version: version.String(),
		Long: `ledgerwatch aggregates ledger health from a status oracle, keeps a bounded
history of verification outcomes, raises alerts for degraded ledgers, and
runs threshold approval ceremonies for sensitive operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			actor, _ := cmd.Flags().GetString("actor")
			tenant, _ := cmd.Flags().GetString("tenant")
			cli.SetIdentity(actor, tenant)
		},
	}
	rootCmd.PersistentFlags().String("actor", "", "Actor recorded in the audit trail (defaults to $LEDGERWATCH_ACTOR or $USER)")
	rootCmd.PersistentFlags().String("tenant", "", "Tenant to operate on (defaults to config tenant)")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.LedgersCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.VerifyCmd())
	rootCmd.AddCommand(cli.CeremonyCmd())
	rootCmd.AddCommand(cli.EventsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
