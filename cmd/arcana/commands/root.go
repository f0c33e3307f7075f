package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arcana",
	Short: "Arcana - personalized tarot and astrology service",
	Long: `Arcana Unified CLI

Tarot reading service with natal-chart personalization.
Daily and decision readings, weighted card draws, streak tracking.

Usage:
  go run ./cmd/arcana [command]

Examples:
  go run ./cmd/arcana api
  go run ./cmd/arcana seed
  go run ./cmd/arcana reading daily <user_id>
  go run ./cmd/arcana scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
