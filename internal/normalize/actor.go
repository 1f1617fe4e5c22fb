package normalize

import (
	"sort"
	"strings"
)

// Actor normalization rebuilds every nested sub-record from whatever shape
// the input carries: arrays, keyed maps, or {value: ...} wrappers. Missing
// required sub-objects are synthesized with minimal defaults (hp 1/1/0,
// ac 10, perception 0); list entries that cannot be coerced to a minimally
// valid shape are dropped, never errored.

func normalizeActor(out, in map[string]any) {
	if c := resolveAlias(actorCategoryAliases, unwrap(in["category"])); c != "" {
		out["category"] = c
	}
	if lvl, ok := intValue(unwrap(in["level"])); ok {
		out["level"] = lvl
	}
	if size := resolveAlias(sizeAliases, unwrap(in["size"])); size != "" {
		out["size"] = size
	}

	out["attributes"] = normalizeAttributes(in["attributes"])
	out["abilities"] = normalizeAbilities(in["abilities"])

	if _, present := in["skills"]; present {
		out["skills"] = normalizeSkills(in["skills"])
	}
	if _, present := in["strikes"]; present {
		out["strikes"] = normalizeStrikes(in["strikes"])
	}
	if _, present := in["actions"]; present {
		out["actions"] = normalizeActorActions(in["actions"])
	}
	if _, present := in["spellcasting"]; present {
		out["spellcasting"] = normalizeSpellcasting(in["spellcasting"])
	}
	if _, present := in["inventory"]; present {
		out["inventory"] = normalizeInventory(in["inventory"])
	}
}

// normalizeAttributes rebuilds the attribute block. The block itself and its
// three required sub-objects always come back populated.
func normalizeAttributes(val any) map[string]any {
	attrs, _ := mapValue(val)

	out := map[string]any{
		"hp":         normalizeHP(attrs["hp"]),
		"ac":         map[string]any{"value": intOr(unwrap(attrs["ac"]), 10)},
		"perception": map[string]any{"value": intOr(unwrap(attrs["perception"]), 0)},
	}

	if speed, present := attrs["speed"]; present {
		out["speed"] = normalizeSpeed(speed)
	}
	if saves, present := attrs["saves"]; present {
		out["saves"] = normalizeSaves(saves)
	}
	if _, present := attrs["immunities"]; present {
		out["immunities"] = stringSet(attrs["immunities"])
	}
	if _, present := attrs["weaknesses"]; present {
		out["weaknesses"] = normalizeDamageMods(attrs["weaknesses"])
	}
	if _, present := attrs["resistances"]; present {
		out["resistances"] = normalizeDamageMods(attrs["resistances"])
	}

	return out
}

// normalizeHP accepts a bare number, a {value, max, temp} object, or a value
// wrapper, and synthesizes 1/1/0 when nothing usable is present.
func normalizeHP(val any) map[string]any {
	if n, ok := intValue(val); ok {
		return map[string]any{"value": n, "max": n, "temp": 0}
	}
	if m, ok := mapValue(val); ok {
		value := intOr(unwrap(m["value"]), 1)
		max := intOr(unwrap(m["max"]), value)
		return map[string]any{
			"value": value,
			"max":   max,
			"temp":  intOr(unwrap(m["temp"]), 0),
		}
	}
	return map[string]any{"value": 1, "max": 1, "temp": 0}
}

func normalizeSpeed(val any) map[string]any {
	if n, ok := intValue(val); ok {
		return map[string]any{"value": n}
	}

	out := map[string]any{}
	m, ok := mapValue(val)
	if !ok {
		return out
	}
	if n, ok := intValue(unwrap(m["value"])); ok {
		out["value"] = n
	}
	if elems, ok := sliceValue(m["other"]); ok {
		modes := make([]any, 0, len(elems))
		for _, elem := range elems {
			mode, ok := mapValue(elem)
			if !ok {
				continue
			}
			typ, okType := stringValue(mode["type"])
			value, okValue := intValue(unwrap(mode["value"]))
			if !okType || typ == "" || !okValue {
				continue
			}
			modes = append(modes, map[string]any{"type": slugify(typ), "value": value})
		}
		out["other"] = modes
	}
	return out
}

func normalizeSaves(val any) map[string]any {
	out := map[string]any{}
	m, ok := mapValue(val)
	if !ok {
		return out
	}
	for key, raw := range m {
		save := resolveAlias(saveAliases, key)
		if save == "" {
			continue
		}
		if n, ok := intValue(unwrap(raw)); ok {
			out[save] = n
		}
	}
	return out
}

// normalizeDamageMods rebuilds weakness/resistance lists from either an array
// of {type, value} objects or a keyed map like {"fire": 5}.
func normalizeDamageMods(val any) []any {
	out := []any{}

	if m, ok := mapValue(val); ok {
		// Keyed-map form. Order is not meaningful for host documents, but a
		// deterministic result matters for idempotence, so entries are added
		// in sorted key order.
		for _, key := range sortedKeys(m) {
			if n, ok := intValue(unwrap(m[key])); ok {
				out = append(out, map[string]any{"type": slugify(key), "value": n})
			}
		}
		return out
	}

	elems, ok := sliceValue(val)
	if !ok {
		return out
	}
	for _, elem := range elems {
		mod, ok := mapValue(elem)
		if !ok {
			continue
		}
		typ, okType := stringValue(mod["type"])
		value, okValue := intValue(unwrap(mod["value"]))
		if !okType || typ == "" || !okValue {
			continue
		}
		out = append(out, map[string]any{"type": slugify(typ), "value": value})
	}
	return out
}

// normalizeAbilities always returns all six ability scores. Input may be a
// map keyed by ability name (full or abbreviated) or an array of {name, mod}
// objects; unrecognized entries are ignored and missing scores default to 0.
func normalizeAbilities(val any) map[string]any {
	mods := map[string]int{}

	if m, ok := mapValue(val); ok {
		for key, raw := range m {
			ability := resolveAlias(abilityAliases, key)
			if ability == "" {
				continue
			}
			if n, ok := intValue(unwrap(modField(raw))); ok {
				mods[ability] = n
			}
		}
	} else if elems, ok := sliceValue(val); ok {
		for _, elem := range elems {
			entry, ok := mapValue(elem)
			if !ok {
				continue
			}
			name, _ := stringValue(entry["name"])
			ability := resolveAlias(abilityAliases, name)
			if ability == "" {
				continue
			}
			if n, ok := intValue(unwrap(modField(entry))); ok {
				mods[ability] = n
			}
		}
	}

	out := map[string]any{}
	for _, ability := range []string{"str", "dex", "con", "int", "wis", "cha"} {
		out[ability] = map[string]any{"mod": mods[ability]}
	}
	return out
}

// modField prefers an explicit mod over a value wrapper over the raw value.
func modField(val any) any {
	if m, ok := mapValue(val); ok {
		if mod, ok := m["mod"]; ok {
			return mod
		}
		if value, ok := m["value"]; ok {
			return value
		}
		return nil
	}
	return val
}

func normalizeSkills(val any) []any {
	out := []any{}

	if m, ok := mapValue(val); ok {
		for _, key := range sortedKeys(m) {
			if n, ok := intValue(unwrap(m[key])); ok {
				out = append(out, map[string]any{"name": strings.TrimSpace(key), "mod": n})
			}
		}
		return out
	}

	elems, ok := sliceValue(val)
	if !ok {
		return out
	}
	for _, elem := range elems {
		skill, ok := mapValue(elem)
		if !ok {
			continue
		}
		name, ok := stringValue(skill["name"])
		if !ok || name == "" {
			continue
		}
		out = append(out, map[string]any{
			"name": name,
			"mod":  intOr(unwrap(skill["mod"]), 0),
		})
	}
	return out
}

// normalizeStrikes drops any strike without a name or without at least one
// coercible damage component.
func normalizeStrikes(val any) []any {
	out := []any{}

	elems, ok := sliceValue(val)
	if !ok {
		// Keyed-map form: the key doubles as the strike name.
		m, isMap := mapValue(val)
		if !isMap {
			return out
		}
		for _, key := range sortedKeys(m) {
			strike, ok := mapValue(m[key])
			if !ok {
				continue
			}
			if _, has := strike["name"]; !has {
				strike = withName(strike, key)
			}
			elems = append(elems, strike)
		}
	}

	for _, elem := range elems {
		strike, ok := mapValue(elem)
		if !ok {
			continue
		}
		name, ok := stringValue(strike["name"])
		if !ok || name == "" {
			continue
		}
		damage := normalizeDamage(strike["damage"])
		if len(damage) == 0 {
			continue
		}

		normalized := map[string]any{
			"name":   name,
			"mod":    intOr(unwrap(strike["mod"]), 0),
			"damage": damage,
		}
		if _, present := strike["effects"]; present {
			normalized["effects"] = stringSet(strike["effects"])
		}
		out = append(out, normalized)
	}
	return out
}

// normalizeDamage rebuilds damage components from an array of objects, a
// single object, or a formula string like "2d6+3 slashing".
func normalizeDamage(val any) []any {
	out := []any{}

	appendComponent := func(elem any) {
		switch d := elem.(type) {
		case map[string]any:
			formula, ok := stringValue(firstOf(d, "formula", "damage"))
			if !ok || formula == "" {
				return
			}
			typ, _ := stringValue(firstOf(d, "type", "damageType"))
			if typ == "" {
				typ = "untyped"
			}
			out = append(out, map[string]any{"formula": formula, "type": slugify(typ)})
		case string:
			formula, typ := splitDamageText(d)
			if formula == "" {
				return
			}
			out = append(out, map[string]any{"formula": formula, "type": typ})
		}
	}

	if elems, ok := sliceValue(val); ok {
		for _, elem := range elems {
			appendComponent(elem)
		}
		return out
	}
	appendComponent(val)
	return out
}

// splitDamageText splits "2d6+3 slashing" into formula and type. Text without
// a trailing type word keeps the whole string as formula, typed untyped.
func splitDamageText(s string) (formula, typ string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	if idx := strings.LastIndex(s, " "); idx > 0 {
		tail := s[idx+1:]
		if isWord(tail) {
			return strings.TrimSpace(s[:idx]), slugify(tail)
		}
	}
	return s, "untyped"
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func normalizeActorActions(val any) []any {
	out := []any{}
	elems, ok := sliceValue(val)
	if !ok {
		return out
	}

	for _, elem := range elems {
		action, ok := mapValue(elem)
		if !ok {
			continue
		}
		name, ok := stringValue(action["name"])
		if !ok || name == "" {
			continue
		}

		actionType := resolveAlias(actionTypeAliases, unwrap(action["actionType"]))
		if actionType == "" {
			actionType = "passive"
		}

		normalized := map[string]any{"name": name, "actionType": actionType}
		if desc, ok := stringValue(unwrap(action["description"])); ok {
			normalized["description"] = desc
		}
		out = append(out, normalized)
	}
	return out
}

func normalizeSpellcasting(val any) []any {
	out := []any{}
	elems, ok := sliceValue(val)
	if !ok {
		return out
	}

	for _, elem := range elems {
		entry, ok := mapValue(elem)
		if !ok {
			continue
		}
		name, ok := stringValue(entry["name"])
		if !ok || name == "" {
			continue
		}

		tradition := resolveAlias(traditionAliases, unwrap(entry["tradition"]))
		if tradition == "" {
			tradition = "arcane"
		}

		normalized := map[string]any{"name": name, "tradition": tradition}
		if dc, ok := intValue(unwrap(entry["dc"])); ok {
			normalized["dc"] = dc
		}
		if _, present := entry["spells"]; present {
			normalized["spells"] = normalizeSpells(entry["spells"])
		}
		out = append(out, normalized)
	}
	return out
}

func normalizeSpells(val any) []any {
	out := []any{}
	elems, ok := sliceValue(val)
	if !ok {
		return out
	}

	for _, elem := range elems {
		var name string
		var level int

		switch spell := elem.(type) {
		case map[string]any:
			n, ok := stringValue(spell["name"])
			if !ok || n == "" {
				continue
			}
			name = n
			level = intOr(unwrap(spell["level"]), 0)
		case string:
			n := strings.TrimSpace(spell)
			if n == "" {
				continue
			}
			name = n
		default:
			continue
		}

		out = append(out, map[string]any{"name": name, "level": level})
	}
	return out
}

func normalizeInventory(val any) []any {
	out := []any{}
	elems, ok := sliceValue(val)
	if !ok {
		return out
	}

	for _, elem := range elems {
		switch item := elem.(type) {
		case map[string]any:
			name, ok := stringValue(item["name"])
			if !ok || name == "" {
				continue
			}
			out = append(out, map[string]any{
				"name":     name,
				"quantity": intOr(unwrap(item["quantity"]), 1),
			})
		case string:
			name := strings.TrimSpace(item)
			if name == "" {
				continue
			}
			out = append(out, map[string]any{"name": name, "quantity": 1})
		}
	}
	return out
}

// withName shallow-copies an entry and sets its name, leaving the input map
// untouched.
func withName(m map[string]any, name string) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out["name"] = name
	return out
}

// intOr coerces to int with a fallback.
func intOr(val any, fallback int) int {
	if n, ok := intValue(val); ok {
		return n
	}
	return fallback
}

// firstOf returns the first present key's value.
func firstOf(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
