package cli

import (
	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/migrate"
	"github.com/statforge/statforge/internal/schema"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate <kind> <file>",
	Short:   "Migrate a record to a newer schema version",
	GroupID: GroupRecords,
	Long: `Migrate a record to a newer schema version and print the result.

The record's schema_version field selects the starting version (missing means
version 1). Migration only moves forward; asking for an older version is an
error, as is a gap in the registered migration steps.`,
	Example: `  # Migrate to the latest version
  statforge migrate item sword.json

  # Migrate to a specific version
  statforge migrate item sword.json --to 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := schema.ParseKind(args[0])
		if err != nil {
			return NewExitError(ExitInvalidArguments, err)
		}
		record, err := readRecord(args[1])
		if err != nil {
			return NewExitError(ExitInvalidArguments, err)
		}

		to, _ := cmd.Flags().GetInt("to")
		var migrated map[string]any
		if to > 0 {
			migrated, err = migrate.To(kind, record, to)
		} else {
			migrated, err = migrate.Latest(kind, record)
		}
		if err != nil {
			return NewExitError(ExitValidationFailed, err)
		}
		return printRecord(migrated)
	},
}

func init() {
	migrateCmd.Flags().Int("to", 0, "Target schema version (default: latest)")
	rootCmd.AddCommand(migrateCmd)
}
