package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/ledgerwatch/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config to .ledgerwatch/config.json",
		Long: `Write a default configuration to .ledgerwatch/config.json in the current
directory. Existing config is left alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			force, _ := cmd.Flags().GetBool("force")
			oracle, _ := cmd.Flags().GetString("oracle")
			statusFile, _ := cmd.Flags().GetString("status-file")

			path := filepath.Join(dir, ".ledgerwatch", "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}

			cfg := config.Default()
			if globalTenant != "" {
				cfg.Tenant = globalTenant
			}
			cfg.Oracle = oracle
			cfg.StatusFile = statusFile
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Config written to %s\n", path)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  ledgerwatch seed")
			fmt.Println("  ledgerwatch check")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().String("oracle", config.OracleSQLite, "Status oracle backend (sqlite or file)")
	cmd.Flags().String("status-file", "", "YAML status snapshot path (file oracle)")
	return cmd
}
