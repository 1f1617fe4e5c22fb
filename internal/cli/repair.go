package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/progress"
	"github.com/statforge/statforge/internal/repair"
	"github.com/statforge/statforge/internal/schema"
)

var repairCmd = &cobra.Command{
	Use:     "repair <kind> <file>",
	Short:   "Validate a record, repairing it with the configured backend",
	GroupID: GroupRecords,
	Long: `Validate a record, repairing it with the configured backend.

Runs the full normalize-validate loop. Each failed attempt sends the
validation errors and the normalized record to the repair backend and feeds
its replacement candidate through the same loop, bounded by max attempts.
With no backend configured a single pass runs.

On success the conformant record is printed as JSON. On exhaustion the
per-attempt diagnostics are printed to stderr and the command exits with
code 1. Backend transport failures exit with code 2.`,
	Example: `  statforge repair action strike.json
  statforge repair actor goblin.yaml --max-attempts 5`,
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
		b, err := buildBackend(cfg)
		if err != nil {
			return err
		}

		orch := buildOrchestrator(cmd, cfg, b)

		display := progress.NewDisplay(progress.DetectTerminalCapabilities(),
			cfg.ShowProgress && b != nil)
		display.Start(fmt.Sprintf("Repairing %s record", kind))

		result, err := orch.Run(cmd.Context(), kind, record)
		if err == nil {
			display.Success("record is valid")
			return printRecord(result)
		}
		display.Stop()

		var exhausted *repair.ExhaustedError
		if errors.As(err, &exhausted) {
			printDiagnostics(exhausted)
			return NewExitError(ExitValidationFailed, err)
		}
		display.Failure("backend call failed")
		return NewExitError(ExitBackendFailure, err)
	},
}

func printDiagnostics(exhausted *repair.ExhaustedError) {
	fmt.Fprintf(os.Stderr, "%s\n", color.RedString(exhausted.Error()))
	for _, attempt := range exhausted.Diagnostics {
		fmt.Fprintf(os.Stderr, "attempt %d:\n", attempt.Attempt)
		for _, line := range repair.FormatErrors(attempt.Errors) {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
	}
}

func init() {
	repairCmd.Flags().Int("max-attempts", 0, "Attempt limit (default: from config)")
	rootCmd.AddCommand(repairCmd)
}
