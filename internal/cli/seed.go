package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/adapters/filesystem"
	"github.com/example/ledgerwatch/internal/config"
	"github.com/example/ledgerwatch/internal/db"
	"github.com/example/ledgerwatch/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the status oracle with demo ledgers",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := wire.Default()
			if err != nil {
				return err
			}
			cfg := reg.Config()

			if cfg.Oracle == config.OracleFile {
				snap := &filesystem.StatusSnapshot{}
				for _, l := range db.DemoLedgers {
					snap.Ledgers = append(snap.Ledgers, filesystem.StatusEntry{ID: l.ID, Status: l.Status, Message: l.Message})
				}
				err := filesystem.WriteSnapshot(cfg.StatusFile, snap)
				if err != nil {
					return err
				}
				fmt.Printf("✓ Demo ledgers written to %s\n", cfg.StatusFile)
				return nil
			}

			if err := db.SeedDemoLedgers(reg.DB()); err != nil {
				return err
			}
			fmt.Println("✓ Demo ledgers inserted")
			return nil
		},
	}
}
