package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voltgrid/chargeseed/internal/config"
	"github.com/voltgrid/chargeseed/internal/database"
	"github.com/voltgrid/chargeseed/internal/seeder"
)

var seedValuesFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ensure the demo record graph exists",
	Long: `Run the full demo seeding sequence in dependency order:
Tenants → TenantPartners → Locations → ChargingStations → Evses → Connectors.

Only the Tenants table is required; any other table that does not exist
is skipped and its dependents carry a null reference instead. The run is
idempotent: a second invocation finds every row already in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		values := seeder.DefaultValues()
		valuesFile := seedValuesFile
		if valuesFile == "" {
			valuesFile = cfg.Seed.ValuesFile
		}
		if valuesFile != "" {
			if err := values.LoadFile(valuesFile); err != nil {
				return err
			}
		}
		if err := values.ApplyEnvOverrides(cfg.Seed.StationIDEnv); err != nil {
			return err
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

		color.Cyan("🌱 Seeding demo data...")

		s := seeder.New(db, database.Builder(cfg.Database.Provider), values)
		summary, err := s.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Println()
		if summary.TenantCreated {
			color.Green("✅ Demo data created (station %s)", summary.StationID)
		} else {
			color.Green("✅ Demo data already present (station %s)", summary.StationID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedValuesFile, "values", "", "YAML file overriding the default demo values")
}
