package normalize

// normalizeCatalogEntry coerces the catalog-entry-specific fields.
func normalizeCatalogEntry(out, in map[string]any) {
	if pack, ok := stringValue(unwrap(in["pack"])); ok && pack != "" {
		out["pack"] = pack
	}

	if t := resolveAlias(entryTypeAliases, unwrap(in["entryType"])); t != "" {
		out["entryType"] = t
	}

	if _, present := in["tags"]; present {
		out["tags"] = stringSet(in["tags"])
	}
}
