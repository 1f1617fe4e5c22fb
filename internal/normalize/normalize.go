// Package normalize turns loosely-typed candidate records into the shape the
// schema validators expect. One coercion routine exists per entity kind; each
// strips undeclared keys, pins the schema version, resolves enum aliases,
// parses numerics, and reconstructs nested structures from heterogeneous
// input shapes. Normalization never fails: fragments it cannot confidently
// coerce are omitted or dropped, and validation afterwards decides whether
// what remains is conformant.
package normalize

import (
	"github.com/statforge/statforge/internal/schema"
	"github.com/statforge/statforge/internal/traits"
)

// Options configures optional normalization capabilities.
type Options struct {
	// Traits supplies the trait allowlist. Nil provider, or a provider
	// returning a nil set, disables trait filtering.
	Traits traits.Provider
}

// Option mutates normalization options.
type Option func(*Options)

// WithTraitProvider wires a trait allowlist provider into normalization.
func WithTraitProvider(p traits.Provider) Option {
	return func(o *Options) {
		o.Traits = p
	}
}

// Record normalizes a candidate record for the given kind. The input map is
// never mutated; the result is a freshly built record containing only
// declared keys. Normalizing an already-normalized record returns an equal
// record.
func Record(kind schema.Kind, candidate map[string]any, opts ...Option) map[string]any {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	if candidate == nil {
		candidate = map[string]any{}
	}

	out := map[string]any{}
	normalizeCommon(out, candidate, &options)

	switch kind {
	case schema.KindAction:
		normalizeAction(out, candidate)
	case schema.KindItem:
		normalizeItem(out, candidate)
	case schema.KindActor:
		normalizeActor(out, candidate)
	case schema.KindCatalogEntry:
		normalizeCatalogEntry(out, candidate)
	}

	return out
}

// normalizeCommon handles the header fields every kind shares. Building into
// a fresh map doubles as unknown-key stripping: keys never copied never
// survive.
func normalizeCommon(out, in map[string]any, options *Options) {
	out[schema.VersionKey] = schema.LatestVersion

	if name, ok := stringValue(in["name"]); ok && name != "" {
		out["name"] = name
	}

	// A missing slug is synthesized from the name; host documents rely on a
	// slug-shaped identifier even for hand-entered records.
	if s, ok := stringValue(in["slug"]); ok && slugify(s) != "" {
		out["slug"] = slugify(s)
	} else if name, ok := stringValue(out["name"]); ok {
		if slug := slugify(name); slug != "" {
			out["slug"] = slug
		}
	}

	if _, present := in["systemId"]; present {
		if sys := resolveAlias(systemAliases, in["systemId"]); sys != "" {
			out["systemId"] = sys
		} else {
			out["systemId"] = schema.DefaultSystem
		}
	}

	if desc, ok := stringValue(in["description"]); ok {
		out["description"] = desc
	}
	if src, ok := stringValue(in["source"]); ok {
		out["source"] = src
	}
	if rarity := resolveAlias(rarityAliases, in["rarity"]); rarity != "" {
		out["rarity"] = rarity
	}

	if _, present := in["traits"]; present {
		out["traits"] = filterTraits(stringSet(in["traits"]), options)
	}
}

// filterTraits drops traits outside the allowlist. A nil allowlist accepts
// everything.
func filterTraits(list []string, options *Options) []string {
	if options.Traits == nil {
		return list
	}
	allowed := options.Traits.Allowlist()
	if allowed == nil {
		return list
	}
	out := make([]string, 0, len(list))
	for _, t := range list {
		if allowed.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
