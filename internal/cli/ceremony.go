package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/ledgerwatch/internal/adapters/cli"
)

// CeremonyCmd returns the ceremony command
func CeremonyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ceremony",
		Short: "Run a threshold approval ceremony",
		Long: `Open an approval request for --operation, then submit each --sign participant
in order. Signatures are assumed to have been verified before they reach this
command. --reject-by forces the request to rejected afterwards.

Example:
  ledgerwatch ceremony --operation rotate-key --participants alice,bob,carol \
    --threshold 2 --sign alice --sign bob`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			operation, _ := cmd.Flags().GetString("operation")
			participants, _ := cmd.Flags().GetString("participants")
			threshold, _ := cmd.Flags().GetInt("threshold")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			signers, _ := cmd.Flags().GetStringArray("sign")
			rejectBy, _ := cmd.Flags().GetString("reject-by")
			reason, _ := cmd.Flags().GetString("reason")

			tenant, err := currentTenant()
			if err != nil {
				return err
			}

			_, err = tenant.ApprovalAdapter(os.Stdout).Ceremony(ctx, cliadapter.CeremonyRequest{
				Operation:    operation,
				Participants: splitList(participants),
				Threshold:    threshold,
				TTL:          ttl,
				Signers:      signers,
				RejectBy:     rejectBy,
				RejectReason: reason,
			})
			return err
		},
	}
	cmd.Flags().String("operation", "", "Operation being approved (required)")
	cmd.Flags().String("participants", "", "Comma-separated participant ids (required)")
	cmd.Flags().Int("threshold", 1, "Signatures required")
	cmd.Flags().Duration("ttl", time.Hour, "Time until the request expires")
	cmd.Flags().StringArray("sign", nil, "Participant whose verified signature to submit (repeatable)")
	cmd.Flags().String("reject-by", "", "Participant rejecting the request")
	cmd.Flags().String("reason", "", "Rejection reason")
	_ = cmd.MarkFlagRequired("operation")
	_ = cmd.MarkFlagRequired("participants")
	return cmd
}
