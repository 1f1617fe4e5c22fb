package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coercion helpers shared by the per-kind normalizers. All of them are
// permissive: they return an ok flag instead of an error, and callers omit the
// field or drop the entry when coercion fails.

// intValue coerces a value to a clean integer. Numeric strings ("12", "+3",
// "-4") are parsed; fractional numbers and anything else are rejected.
func intValue(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		if float32(int(n)) == n {
			return int(n), true
		}
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(n), "+"))
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
	}
	return 0, false
}

// stringValue coerces a value to a trimmed string. Non-strings are rejected
// rather than stringified.
func stringValue(val any) (string, bool) {
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// mapValue returns the value as an object map.
func mapValue(val any) (map[string]any, bool) {
	m, ok := val.(map[string]any)
	return m, ok
}

// sliceValue returns the value as a generic slice, accepting the shapes JSON
// and YAML decoding produce.
func sliceValue(val any) ([]any, bool) {
	switch s := val.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	}
	return nil, false
}

// unwrap peels a single {value: ...} wrapper off nested input, a shape host
// documents use pervasively. Non-wrapper values pass through unchanged.
func unwrap(val any) any {
	if m, ok := val.(map[string]any); ok {
		if inner, ok := m["value"]; ok {
			return inner
		}
	}
	return val
}

// slugify converts free text to a lowercase hyphen-separated slug.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// stringSet coerces a value to a deduplicated string slice: entries are
// slugified, empties dropped, and duplicates removed case-insensitively while
// preserving first-seen order.
func stringSet(val any) []string {
	elems, ok := sliceValue(val)
	if !ok {
		return []string{}
	}

	seen := make(map[string]bool, len(elems))
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, ok := stringValue(elem)
		if !ok {
			continue
		}
		slug := slugify(s)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}
