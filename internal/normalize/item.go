package normalize

import "fmt"

// normalizeItem coerces the item-specific fields.
func normalizeItem(out, in map[string]any) {
	if c := resolveAlias(itemCategoryAliases, unwrap(in["category"])); c != "" {
		out["category"] = c
	}

	if lvl, ok := intValue(unwrap(in["level"])); ok {
		out["level"] = lvl
	}

	// Price arrives as text ("5 gp"), a bare number, or a value wrapper.
	switch p := unwrap(in["price"]).(type) {
	case string:
		if s, ok := stringValue(p); ok && s != "" {
			out["price"] = s
		}
	default:
		if n, ok := intValue(p); ok {
			out["price"] = fmt.Sprintf("%d gp", n)
		}
	}

	for _, key := range []string{"bulk", "usage"} {
		if s, ok := stringValue(unwrap(in[key])); ok && s != "" {
			out[key] = s
		}
	}
}
