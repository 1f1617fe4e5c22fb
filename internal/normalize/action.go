package normalize

// normalizeAction coerces the action-specific fields. The action cost goes
// through the alias table; text fields are trimmed and kept only when they
// are actually strings.
func normalizeAction(out, in map[string]any) {
	if t := resolveAlias(actionTypeAliases, unwrap(in["actionType"])); t != "" {
		out["actionType"] = t
	}

	for _, key := range []string{"trigger", "requirements", "frequency"} {
		if s, ok := stringValue(unwrap(in[key])); ok {
			out[key] = s
		}
	}
}
