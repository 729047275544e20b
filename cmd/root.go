package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"settlement/internal/config"
	"settlement/internal/logger"
)

var version = "1.0.0"

// appConfig is set by Execute before any command runs.
var appConfig = config.Default()

var rootCmd = &cobra.Command{
	Use:   "settlement",
	Short: "Settlement CLI - travel group closing and disbursement bills",
	Long: `Settlement CLI closes the accounts of travel groups and prints the
disbursement bills that pay their suppliers.

Group data is read from JSON or YAML files holding receipts, invoices,
bonus settings and the name tables used to label the output.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Settlement CLI executed")

		fmt.Println("Welcome to Settlement CLI!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

// Execute runs the root command with the given configuration.
func Execute(cfg *config.Config) {
	log := logger.WithComponent("cmd")

	if cfg != nil {
		appConfig = cfg
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
