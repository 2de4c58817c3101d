package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

var rootCmd = &cobra.Command{
	Use:   "chargeseed",
	Short: "Idempotently seed an EV charging database with demo records",
	Long: `chargeseed populates an existing EV charging platform database with a
small, interdependent set of demo records: a tenant, a partner, a
location, a charging station, an EVSE and a connector.

It introspects the live schema at run time, adapts to whatever optional
tables and columns actually exist, and is safe to re-run: existing rows
are found and left untouched instead of duplicated.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("chargeseed version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./chargeseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("chargeseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
