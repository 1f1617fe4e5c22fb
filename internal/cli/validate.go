package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:     "validate <kind> <file>",
	Short:   "Validate a record against its declared schema",
	GroupID: GroupRecords,
	Long: `Validate a record against its declared schema.

Runs a single structural validation pass without normalization or repair.
Defaults for omitted optional fields are applied before checking. Errors are
printed one per line as "path: message".`,
	Example: `  statforge validate action strike.json
  cat strike.json | statforge validate action -`,
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

		validator, err := schema.ValidatorOf(kind)
		if err != nil {
			return NewExitError(ExitInvalidArguments, err)
		}
		result := validator.Validate(record)
		if result.Valid {
			color.Green("record is valid")
			return nil
		}

		for _, verr := range result.Errors {
			fmt.Printf("%s: %s\n", verr.Path, verr.Message)
		}
		return NewExitError(ExitValidationFailed,
			fmt.Errorf("%d validation error(s)", len(result.Errors)))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
