package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:     "schema [kind]",
	Short:   "Print the declared schema for a record kind",
	GroupID: GroupRecords,
	Long: `Print the declared schema for a record kind in a readable layout.

Without an argument the known kinds are listed.`,
	Example: `  statforge schema
  statforge schema actor`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(strings.Join(schema.ValidKinds(), "\n"))
			return nil
		}

		kind, err := schema.ParseKind(args[0])
		if err != nil {
			return NewExitError(ExitInvalidArguments, err)
		}
		desc, err := schema.Describe(kind)
		if err != nil {
			return NewExitError(ExitInvalidArguments, err)
		}
		fmt.Println(desc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
