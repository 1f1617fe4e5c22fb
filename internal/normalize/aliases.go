package normalize

import "strings"

// Alias tables map case- and punctuation-insensitive input spellings to
// canonical enum tokens. Lookup keys are folded with foldAlias, so "One
// Action", "one_action", and "ONE ACTION" all hit the same entry.

var actionTypeAliases = map[string]string{
	"oneaction":    "one-action",
	"1":            "one-action",
	"1action":      "one-action",
	"a":            "one-action",
	"action":       "one-action",
	"single":       "one-action",
	"twoactions":   "two-actions",
	"2":            "two-actions",
	"2actions":     "two-actions",
	"double":       "two-actions",
	"threeactions": "three-actions",
	"3":            "three-actions",
	"3actions":     "three-actions",
	"triple":       "three-actions",
	"reaction":     "reaction",
	"r":            "reaction",
	"freeaction":   "free-action",
	"free":         "free-action",
	"f":            "free-action",
	"0":            "free-action",
	"passive":      "passive",
	"none":         "passive",
}

var rarityAliases = map[string]string{
	"common":   "common",
	"c":        "common",
	"uncommon": "uncommon",
	"u":        "uncommon",
	"rare":     "rare",
	"r":        "rare",
	"unique":   "unique",
}

var sizeAliases = map[string]string{
	"tiny":       "tiny",
	"t":          "tiny",
	"small":      "small",
	"sm":         "small",
	"medium":     "medium",
	"med":        "medium",
	"m":          "medium",
	"large":      "large",
	"lg":         "large",
	"l":          "large",
	"huge":       "huge",
	"h":          "huge",
	"gargantuan": "gargantuan",
	"grg":        "gargantuan",
	"g":          "gargantuan",
}

var itemCategoryAliases = map[string]string{
	"weapon":      "weapon",
	"weapons":     "weapon",
	"armor":       "armor",
	"armors":      "armor",
	"armour":      "armor",
	"shield":      "shield",
	"shields":     "shield",
	"consumable":  "consumable",
	"consumables": "consumable",
	"potion":      "consumable",
	"scroll":      "consumable",
	"equipment":   "equipment",
	"gear":        "equipment",
	"treasure":    "treasure",
	"loot":        "treasure",
}

var actorCategoryAliases = map[string]string{
	"npc":       "npc",
	"monster":   "npc",
	"creature":  "npc",
	"character": "character",
	"pc":        "character",
	"player":    "character",
	"hazard":    "hazard",
	"trap":      "hazard",
}

var systemAliases = map[string]string{
	"pf2e":          "pf2e",
	"pathfinder":    "pf2e",
	"pathfinder2":   "pf2e",
	"pathfinder2e":  "pf2e",
	"pathfinder2nd": "pf2e",
	"dnd5e":         "dnd5e",
	"dnd":           "dnd5e",
	"5e":            "dnd5e",
	"dnd5th":        "dnd5e",
	"generic":       "generic",
	"system":        "generic",
	"agnostic":      "generic",
}

var traditionAliases = map[string]string{
	"arcane":  "arcane",
	"divine":  "divine",
	"occult":  "occult",
	"primal":  "primal",
	"nature":  "primal",
	"wizard":  "arcane",
	"cleric":  "divine",
	"bard":    "occult",
	"druid":   "primal",
}

var abilityAliases = map[string]string{
	"str":          "str",
	"strength":     "str",
	"dex":          "dex",
	"dexterity":    "dex",
	"con":          "con",
	"constitution": "con",
	"int":          "int",
	"intelligence": "int",
	"wis":          "wis",
	"wisdom":       "wis",
	"cha":          "cha",
	"charisma":     "cha",
}

var saveAliases = map[string]string{
	"fortitude": "fortitude",
	"fort":      "fortitude",
	"reflex":    "reflex",
	"ref":       "reflex",
	"will":      "will",
	"wil":       "will",
}

var entryTypeAliases = map[string]string{
	"action":  "action",
	"actions": "action",
	"item":    "item",
	"items":   "item",
	"actor":   "actor",
	"actors":  "actor",
}

// foldAlias reduces a spelling to an alias lookup key: lowercase with every
// non-alphanumeric character removed.
func foldAlias(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveAlias maps an arbitrary input value onto a canonical token through an
// alias table. Returns "" when the value is not a string or has no entry.
func resolveAlias(table map[string]string, val any) string {
	s, ok := val.(string)
	if !ok {
		return ""
	}
	return table[foldAlias(s)]
}
