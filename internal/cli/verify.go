package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/core/verification"
)

// VerifyCmd returns the verify command
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Record verification outcomes and print the integrity score",
		Long: `Record one verification per --status value against --target, in order, and
print the resulting integrity score. An invalid outcome raises a critical alert.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			target, _ := cmd.Flags().GetString("target")
			vtype, _ := cmd.Flags().GetString("type")
			statuses, _ := cmd.Flags().GetStringSlice("status")

			for _, s := range statuses {
				if !verification.IsKnownStatus(s) {
					return fmt.Errorf("unknown verification status %q (want valid, invalid or pending)", s)
				}
			}

			tenant, err := currentTenant()
			if err != nil {
				return err
			}

			adapter := tenant.MonitorAdapter(os.Stdout)
			for _, s := range statuses {
				adapter.Verify(ctx, target, vtype, s)
			}
			adapter.Alerts(false)
			return nil
		},
	}
	cmd.Flags().String("target", "", "Ledger or entity the verification covers (required)")
	cmd.Flags().String("type", "integrity", "Verification type")
	cmd.Flags().StringSlice("status", []string{"valid"}, "Outcome(s): valid, invalid, pending")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
