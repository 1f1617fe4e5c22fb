package schema

// Canonical enum tokens. All tokens are lowercase, hyphen-separated; the
// normalizer resolves free-form input ("One Action", "1") to these through
// its alias tables before validation.

// ActionTypes lists the valid action cost tokens.
var ActionTypes = []string{"one-action", "two-actions", "three-actions", "reaction", "free-action", "passive"}

// ItemCategories lists the valid item category tokens.
var ItemCategories = []string{"weapon", "armor", "shield", "consumable", "equipment", "treasure"}

// ActorCategories lists the valid actor category tokens.
var ActorCategories = []string{"npc", "character", "hazard"}

// Rarities lists the valid rarity tokens.
var Rarities = []string{"common", "uncommon", "rare", "unique"}

// Sizes lists the valid creature size tokens.
var Sizes = []string{"tiny", "small", "medium", "large", "huge", "gargantuan"}

// Systems lists the recognized game system identifiers.
var Systems = []string{"pf2e", "dnd5e", "generic"}

// Traditions lists the valid spellcasting tradition tokens.
var Traditions = []string{"arcane", "divine", "occult", "primal"}

// SaveTypes lists the valid saving throw identifiers.
var SaveTypes = []string{"fortitude", "reflex", "will"}

// AbilityNames lists the six fixed ability score identifiers, in display order.
var AbilityNames = []string{"str", "dex", "con", "int", "wis", "cha"}

// DefaultSystem is the system identifier applied when input carries none.
const DefaultSystem = "pf2e"
