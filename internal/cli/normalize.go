package cli

import (
	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/normalize"
	"github.com/statforge/statforge/internal/schema"
)

var normalizeCmd = &cobra.Command{
	Use:     "normalize <kind> <file>",
	Short:   "Normalize a record and print the result",
	GroupID: GroupRecords,
	Long: `Normalize a record and print the result as JSON.

Strips unknown keys, resolves enum aliases, coerces near-miss values, filters
traits against the configured allowlist, and pins schema_version to the
latest version. The output is not validated; pipe it to validate or use
repair for the full loop.`,
	Example: `  statforge normalize actor goblin.yaml
  statforge normalize action strike.json --traits traits.json`,
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
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		normalized := normalize.Record(kind, record,
			normalize.WithTraitProvider(traitProvider(cmd, cfg)))
		return printRecord(normalized)
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
