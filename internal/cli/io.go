package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readRecord loads one record from a JSON or YAML file. "-" reads JSON from
// stdin.
func readRecord(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var record map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse YAML record: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON record: %w", err)
		}
	}
	if record == nil {
		return nil, fmt.Errorf("record file %s is empty", path)
	}
	return record, nil
}

// printRecord writes a record to stdout as indented JSON.
func printRecord(record map[string]any) error {
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
