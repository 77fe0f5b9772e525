package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// EventsCmd returns the events command
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the audit trail for the current tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			limit, _ := cmd.Flags().GetInt("limit")
			entityType, _ := cmd.Flags().GetString("type")
			entityID, _ := cmd.Flags().GetString("entity")

			tenant, err := currentTenant()
			if err != nil {
				return err
			}

			events, err := tenant.Events.List(ctx, secondary.EventFilters{
				EntityType: entityType,
				EntityID:   entityID,
				Limit:      limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found")
				return nil
			}

			fmt.Printf("\n%-20s %-12s %-10s %-12s %-12s %s\n", "TIME", "ACTOR", "TYPE", "ENTITY", "ACTION", "DETAIL")
			fmt.Println("────────────────────────────────────────────────────────────────────────────────")
			for _, e := range events {
				actor := e.ActorID
				if actor == "" {
					actor = "-"
				}
				fmt.Printf("%-20s %-12s %-10s %-12s %-12s %s\n", e.CreatedAt, actor, e.EntityType, e.EntityID, e.Action, e.Detail)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 50, "Maximum events to show")
	cmd.Flags().String("type", "", "Filter by entity type (alert, approval)")
	cmd.Flags().String("entity", "", "Filter by entity id")
	return cmd
}
