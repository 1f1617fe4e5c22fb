package migrate

import "github.com/statforge/statforge/internal/schema"

// steps holds the registered migration lineage per kind. Version N maps to the
// transform that raises a record from N to N+1.
var steps = map[schema.Kind]map[int]Step{
	schema.KindAction: {
		1: actionV1toV2,
	},
	schema.KindItem: {
		1: itemV1toV2,
	},
	schema.KindActor: {
		1: actorV1toV2,
	},
	schema.KindCatalogEntry: {
		1: catalogEntryV1toV2,
	},
}

// actionV1toV2 introduces the source field.
func actionV1toV2(data map[string]any) map[string]any {
	ensureSource(data)
	return data
}

// itemV1toV2 introduces the source field and renames the legacy cost field.
func itemV1toV2(data map[string]any) map[string]any {
	ensureSource(data)
	if cost, ok := data["cost"]; ok {
		if _, has := data["price"]; !has {
			data["price"] = cost
		}
		delete(data, "cost")
	}
	return data
}

// actorV1toV2 introduces the source field and lifts the legacy top-level hp
// block into attributes, where the current schema expects it.
func actorV1toV2(data map[string]any) map[string]any {
	ensureSource(data)
	if hp, ok := data["hp"]; ok {
		attrs, isMap := data["attributes"].(map[string]any)
		if !isMap {
			attrs = map[string]any{}
			data["attributes"] = attrs
		}
		if _, has := attrs["hp"]; !has {
			attrs["hp"] = hp
		}
		delete(data, "hp")
	}
	return data
}

// catalogEntryV1toV2 introduces the source field.
func catalogEntryV1toV2(data map[string]any) map[string]any {
	ensureSource(data)
	return data
}

func ensureSource(data map[string]any) {
	if _, ok := data["source"]; !ok {
		data["source"] = ""
	}
}
