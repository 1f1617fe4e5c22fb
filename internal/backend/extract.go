package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject parses the first complete JSON object found in text. Models
// and CLI agents wrap their answers in prose or markdown fences often enough
// that feeding the raw reply to json.Unmarshal is not reliable.
func ExtractObject(text string) (map[string]any, error) {
	text = stripFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				var obj map[string]any
				if err := json.Unmarshal([]byte(text[start:i+1]), &obj); err != nil {
					return nil, fmt.Errorf("parse JSON object: %w", err)
				}
				return obj, nil
			}
		}
	}
	return nil, fmt.Errorf("unterminated JSON object in response")
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
