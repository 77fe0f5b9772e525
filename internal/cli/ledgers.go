package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/adapters/sqlite"
	"github.com/example/ledgerwatch/internal/ports/secondary"
	"github.com/example/ledgerwatch/internal/wire"
)

var ledgersCmd = &cobra.Command{
	Use:   "ledgers",
	Short: "List and update catalogued ledgers",
}

var ledgersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledgers known to the status oracle",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		tenant, err := currentTenant()
		if err != nil {
			return err
		}

		ids, err := tenant.Oracle.ListLedgers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list ledgers: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No ledgers found")
			return nil
		}

		fmt.Printf("\n%-20s %-10s %s\n", "LEDGER", "STATUS", "MESSAGE")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, id := range ids {
			rec, err := tenant.Oracle.GetStatus(ctx, id)
			if err != nil {
				fmt.Printf("%-20s %-10s %v\n", id, "?", err)
				continue
			}
			fmt.Printf("%-20s %-10s %s\n", id, rec.Status, rec.Message)
		}
		fmt.Println()
		return nil
	},
}

var ledgersSetCmd = &cobra.Command{
	Use:   "set [ledger-id] [healthy|warning|error]",
	Short: "Record a ledger status in the sqlite catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		message, _ := cmd.Flags().GetString("message")

		reg, err := wire.Default()
		if err != nil {
			return err
		}
		oracle := sqlite.NewLedgerStatusOracle(reg.DB())
		if err := oracle.UpsertStatus(ctx, &secondary.LedgerStatusRecord{
			LedgerID: args[0],
			Status:   args[1],
			Message:  message,
		}); err != nil {
			return err
		}

		fmt.Printf("✓ Ledger %s set to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	ledgersSetCmd.Flags().StringP("message", "m", "", "Status message")

	ledgersCmd.AddCommand(ledgersListCmd)
	ledgersCmd.AddCommand(ledgersSetCmd)
}

// LedgersCmd returns the ledgers command
func LedgersCmd() *cobra.Command {
	return ledgersCmd
}
