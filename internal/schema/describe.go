package schema

import (
	"fmt"
	"strings"
)

// Describe renders a kind's declared shape as indented text. The rendering is
// embedded in repair prompts and printed by the CLI schema command.
func Describe(kind Kind) (string, error) {
	s, err := Of(kind)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s record (%s)\n", s.Kind, s.Description))
	describeFields(&sb, s.Fields, 1)
	return sb.String(), nil
}

func describeFields(sb *strings.Builder, fields []Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		sb.WriteString(indent)
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(string(f.Type))
		if f.Type == FieldTypeArray && f.Elem != "" {
			sb.WriteString(" of " + string(f.Elem))
		}

		var notes []string
		if f.Required {
			notes = append(notes, "required")
		}
		if len(f.Enum) > 0 {
			notes = append(notes, "one of: "+strings.Join(f.Enum, "|"))
		}
		if f.Default != nil && f.Default != "" {
			notes = append(notes, fmt.Sprintf("default %v", f.Default))
		}
		if f.MinItems > 0 {
			notes = append(notes, fmt.Sprintf("min %d", f.MinItems))
		}
		if len(notes) > 0 {
			sb.WriteString(" (" + strings.Join(notes, ", ") + ")")
		}
		if f.Description != "" {
			sb.WriteString(" - " + f.Description)
		}
		sb.WriteString("\n")

		if len(f.Children) > 0 {
			describeFields(sb, f.Children, depth+1)
		}
	}
}
