// Package cli provides the Cobra-based statforge command line interface:
// record validation, normalization, migration, backend-assisted repair, and
// schema inspection.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupRecords       = "records"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "statforge",
	Short: "statforge content record toolkit",
	Long: `statforge content record toolkit

Validates, normalizes, migrates, and repairs tabletop game content records
(actions, items, actors, catalog entries) against their declared schemas.`,
	Example: `  # Validate a record file
  statforge validate action strike.json

  # Normalize a record and print the result
  statforge normalize actor goblin.yaml

  # Migrate a record to the latest schema version
  statforge migrate item sword.json

  # Repair a record with the configured backend
  statforge repair action strike.json

  # Inspect the declared schema for a kind
  statforge schema actor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupRecords, Title: "Record Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".statforge/config.json", "Path to local config file")
	rootCmd.PersistentFlags().String("traits", "", "Path to trait allowlist file (overrides config)")
}
