package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voltgrid/chargeseed/internal/config"
	"github.com/voltgrid/chargeseed/internal/database"
	"github.com/voltgrid/chargeseed/internal/schema"
	"github.com/voltgrid/chargeseed/internal/seeder"
)

// statusCmd reports which of the seeded tables the live schema currently
// has. Read-only; useful before a first seed run.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which demo tables exist in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := database.Open(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		inspector := schema.NewInspector(db, database.Builder(cfg.Database.Provider))

		tables := []string{
			seeder.TableTenants,
			seeder.TableTenantPartners,
			seeder.TableLocations,
			seeder.TableChargingStations,
			seeder.TableEvses,
			seeder.TableConnectors,
		}

		color.Cyan("📋 Demo table status:")
		for _, name := range tables {
			table, ok := inspector.Describe(ctx, name)
			if !ok {
				color.Yellow("  ✗ %-18s absent", name)
				continue
			}
			color.Green("  ✓ %-18s present (%d columns)", name, len(table.Columns))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
