// Package migrate upgrades records from older schema versions to the current
// one. Each step is a pure transform registered for a (kind, version) pair and
// raises the record by exactly one version; the engine chains steps and pins
// the final version field. Backward migration and missing steps are terminal
// errors, never partially applied.
package migrate

import (
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/statforge/statforge/internal/schema"
)

// Step transforms a record from one schema version to the next.
// Steps must be pure: they receive an owned copy and return the new record.
type Step func(data map[string]any) map[string]any

// BackwardError indicates a request to migrate to an older version.
type BackwardError struct {
	Kind schema.Kind
	From int
	To   int
}

func (e *BackwardError) Error() string {
	return fmt.Sprintf("cannot migrate %s record backward from version %d to %d", e.Kind, e.From, e.To)
}

// GapError indicates a missing step for a required version transition.
type GapError struct {
	Kind    schema.Kind
	Version int
}

func (e *GapError) Error() string {
	return fmt.Sprintf("no migration step registered for %s record version %d", e.Kind, e.Version)
}

// Migrate upgrades a record from one schema version to another. The input is
// never mutated; the result is always an independent copy. Equal versions
// return the copy unmodified.
func Migrate(kind schema.Kind, from, to int, data map[string]any) (map[string]any, error) {
	if from > to {
		return nil, &BackwardError{Kind: kind, From: from, To: to}
	}

	out, err := deepCopy(data)
	if err != nil {
		return nil, fmt.Errorf("copying record for migration: %w", err)
	}
	if from == to {
		return out, nil
	}

	kindSteps := steps[kind]
	for v := from; v < to; v++ {
		step, ok := kindSteps[v]
		if !ok {
			return nil, &GapError{Kind: kind, Version: v}
		}
		out = step(out)
	}

	// Steps are not trusted to maintain the version tag themselves.
	out[schema.VersionKey] = to
	return out, nil
}

// Latest upgrades a record to the current schema version, reading the starting
// version from the record itself. A record without a version tag is treated as
// version 1.
func Latest(kind schema.Kind, data map[string]any) (map[string]any, error) {
	return Migrate(kind, versionOf(data), schema.LatestVersion, data)
}

// To upgrades a record to a specific schema version, reading the starting
// version from the record itself.
func To(kind schema.Kind, data map[string]any, to int) (map[string]any, error) {
	return Migrate(kind, versionOf(data), to, data)
}

func versionOf(data map[string]any) int {
	if v, ok := data[schema.VersionKey]; ok {
		if n, ok := intValue(v); ok {
			return n
		}
	}
	return 1
}

func deepCopy(data map[string]any) (map[string]any, error) {
	if data == nil {
		return map[string]any{}, nil
	}
	cp, err := copystructure.Copy(data)
	if err != nil {
		return nil, err
	}
	return cp.(map[string]any), nil
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	}
	return 0, false
}
