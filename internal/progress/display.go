package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Display shows a spinner while a repair attempt is in flight. In
// non-interactive mode it prints plain lines instead.
type Display struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      Symbols
	enabled      bool
}

// NewDisplay creates a progress display for the given terminal capabilities.
// When enabled is false every method is a no-op.
func NewDisplay(caps TerminalCapabilities, enabled bool) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		enabled:      enabled,
	}
}

// Start begins displaying progress with the given message.
func (d *Display) Start(msg string) {
	if !d.enabled {
		return
	}
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr // Keep stdout clean for record output
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// Success stops the spinner and prints a completion mark with the message.
func (d *Display) Success(msg string) {
	d.Stop()
	if !d.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", d.mark(d.symbols.Checkmark, color.FgGreen), msg)
}

// Failure stops the spinner and prints a failure mark with the message.
func (d *Display) Failure(msg string) {
	d.Stop()
	if !d.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", d.mark(d.symbols.Failure, color.FgRed), msg)
}

// Stop halts the spinner without printing a status line.
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

func (d *Display) mark(symbol string, attr color.Attribute) string {
	if d.capabilities.SupportsColor {
		return color.New(attr).Sprint(symbol)
	}
	return symbol
}
