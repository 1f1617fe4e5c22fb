package repair

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/statforge/statforge/internal/schema"
)

// Context is everything a prompt builder may draw on when asking the backend
// for a replacement candidate.
type Context struct {
	Kind        schema.Kind
	Attempt     int
	MaxAttempts int
	Errors      []*schema.Error
	Normalized  map[string]any
	Diagnostics []Attempt
}

// PromptBuilder renders the instruction text sent to the repair backend.
type PromptBuilder func(Context) string

// DefaultPrompt names the record kind, lists the structural errors one per
// line, embeds the last normalized candidate as JSON, and asks for a single
// corrected JSON object in return.
func DefaultPrompt(pc Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The following %s record failed structural validation (attempt %d of %d).\n\n",
		pc.Kind, pc.Attempt, pc.MaxAttempts)

	b.WriteString("Validation errors:\n")
	for _, line := range FormatErrors(pc.Errors) {
		b.WriteString("  - ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nCurrent record:\n")
	b.WriteString(marshalIndent(pc.Normalized))
	b.WriteString("\n")

	if desc, err := schema.Describe(pc.Kind); err == nil {
		fmt.Fprintf(&b, "\nSchema for %q records:\n%s\n", pc.Kind, desc)
	}

	b.WriteString("\nReturn the corrected record as a single JSON object. ")
	b.WriteString("Preserve every valid field and fix only what the errors name. ")
	b.WriteString("Do not add commentary.")

	return b.String()
}

func marshalIndent(data map[string]any) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}
