// Package schema defines the declarative record schemas for each entity kind
// and compiles them into structural validators. Schemas are plain data:
// field declarations with types, enums, defaults, and nested shapes. The
// compiled validator set is built once at startup and is read-only afterwards.
package schema

import "fmt"

// Kind identifies one of the four entity record types.
type Kind string

const (
	// KindAction represents standalone action records.
	KindAction Kind = "action"
	// KindItem represents equipment and treasure records.
	KindItem Kind = "item"
	// KindActor represents creature and character records.
	KindActor Kind = "actor"
	// KindCatalogEntry represents compendium catalog references.
	KindCatalogEntry Kind = "catalog-entry"
)

// VersionKey is the record field holding the integer schema version.
const VersionKey = "schema_version"

// LatestVersion is the current schema version for all kinds.
// Records carrying an older version go through the migration engine first.
const LatestVersion = 2

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "action":
		return KindAction, nil
	case "item":
		return KindItem, nil
	case "actor":
		return KindActor, nil
	case "catalog-entry":
		return KindCatalogEntry, nil
	default:
		return "", fmt.Errorf("invalid record kind: %s (valid kinds: action, item, actor, catalog-entry)", s)
	}
}

// ValidKinds returns the list of valid kind strings.
func ValidKinds() []string {
	return []string{"action", "item", "actor", "catalog-entry"}
}
