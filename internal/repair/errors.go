package repair

import (
	"fmt"

	"github.com/statforge/statforge/internal/schema"
)

// ExhaustedError signals that a record still failed structural validation
// after the final attempt. It carries the ordered per-attempt diagnostics,
// the untouched original payload, the last normalized snapshot, and a Handle
// for resuming the repair with adjusted settings.
type ExhaustedError struct {
	Kind            schema.Kind
	Diagnostics     []Attempt
	OriginalPayload map[string]any
	LastNormalized  map[string]any
	Handle          *Handle
}

func (e *ExhaustedError) Error() string {
	attempts := len(e.Diagnostics)
	noun := "attempts"
	if attempts == 1 {
		noun = "attempt"
	}
	return fmt.Sprintf("%s record failed validation after %d %s", e.Kind, attempts, noun)
}

// ExitCode implements the CLI error contract.
func (e *ExhaustedError) ExitCode() int {
	return 1
}

// FormatErrors renders structural errors one per line as "path: message",
// the shape embedded in repair prompts and sink reports.
func FormatErrors(errs []*schema.Error) []string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, fmt.Sprintf("%s: %s", err.Path, err.Message))
	}
	return lines
}
