package schema

import "fmt"

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeNumber FieldType = "number"
	FieldTypeBool   FieldType = "bool"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

// Field defines a single field in a record schema.
type Field struct {
	Name        string    // Field name in the record
	Type        FieldType // Expected type
	Required    bool      // Whether the field must be present
	Enum        []string  // Valid values for enum fields (optional)
	Pattern     string    // Regex pattern for string validation (optional)
	Default     any       // Default applied when an optional field is omitted
	Elem        FieldType // Element type for arrays of scalars (optional)
	MinItems    int       // Minimum element count for arrays (0 = no minimum)
	Description string    // Human-readable description
	Children    []Field   // Nested fields for object/array-of-object types
}

// Schema represents the complete declared shape for an entity kind.
type Schema struct {
	Kind        Kind
	Description string
	Fields      []Field
}

// commonFields returns the header fields shared by every record kind.
// Name and slug default to empty rather than being hard-required: partial
// generative output is repaired downstream, not rejected at the door.
func commonFields() []Field {
	return []Field{
		{Name: VersionKey, Type: FieldTypeInt, Required: true, Description: "Integer schema version tag"},
		{Name: "systemId", Type: FieldTypeString, Enum: Systems, Default: DefaultSystem, Description: "Game system identifier"},
		{Name: "slug", Type: FieldTypeString, Pattern: `^[a-z0-9]+(-[a-z0-9]+)*$`, Default: "", Description: "Unique-looking lowercase identifier"},
		{Name: "name", Type: FieldTypeString, Default: "", Description: "Display name"},
		{Name: "description", Type: FieldTypeString, Default: "", Description: "Free-form description text"},
		{Name: "source", Type: FieldTypeString, Default: "", Description: "Book or module the record comes from"},
		{Name: "rarity", Type: FieldTypeString, Enum: Rarities, Default: "common", Description: "Record rarity"},
		{Name: "traits", Type: FieldTypeArray, Elem: FieldTypeString, Description: "Trait slugs, deduplicated case-insensitively"},
	}
}

// ActionSchema defines the shape of action records.
var ActionSchema = Schema{
	Kind:        KindAction,
	Description: "A standalone activity, reaction, or passive ability",
	Fields: append(commonFields(),
		Field{Name: "actionType", Type: FieldTypeString, Required: true, Enum: ActionTypes, Description: "Action cost"},
		Field{Name: "trigger", Type: FieldTypeString, Default: "", Description: "Trigger condition for reactions"},
		Field{Name: "requirements", Type: FieldTypeString, Default: "", Description: "Requirements to use the action"},
		Field{Name: "frequency", Type: FieldTypeString, Default: "", Description: "Usage frequency (e.g. once per day)"},
	),
}

// ItemSchema defines the shape of item records.
var ItemSchema = Schema{
	Kind:        KindItem,
	Description: "A piece of equipment, consumable, or treasure",
	Fields: append(commonFields(),
		Field{Name: "category", Type: FieldTypeString, Required: true, Enum: ItemCategories, Description: "Item category"},
		Field{Name: "level", Type: FieldTypeInt, Default: 0, Description: "Item level"},
		Field{Name: "price", Type: FieldTypeString, Default: "", Description: "Price text (e.g. 5 gp)"},
		Field{Name: "bulk", Type: FieldTypeString, Default: "", Description: "Bulk text (e.g. L, 1, 2)"},
		Field{Name: "usage", Type: FieldTypeString, Default: "", Description: "Usage text (e.g. held in 1 hand)"},
	),
}

// ActorSchema defines the shape of actor records, the structurally richest kind.
var ActorSchema = Schema{
	Kind:        KindActor,
	Description: "A creature, character, or hazard stat block",
	Fields: append(commonFields(),
		Field{Name: "category", Type: FieldTypeString, Required: true, Enum: ActorCategories, Description: "Actor category"},
		Field{Name: "level", Type: FieldTypeInt, Default: 0, Description: "Actor level"},
		Field{Name: "size", Type: FieldTypeString, Enum: Sizes, Default: "medium", Description: "Creature size"},
		Field{
			Name:        "attributes",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "Core defensive and perceptive statistics",
			Children: []Field{
				{Name: "hp", Type: FieldTypeObject, Required: true, Description: "Hit points", Children: []Field{
					{Name: "value", Type: FieldTypeInt, Required: true, Description: "Current hit points"},
					{Name: "max", Type: FieldTypeInt, Required: true, Description: "Maximum hit points"},
					{Name: "temp", Type: FieldTypeInt, Default: 0, Description: "Temporary hit points"},
				}},
				{Name: "ac", Type: FieldTypeObject, Required: true, Description: "Armor class", Children: []Field{
					{Name: "value", Type: FieldTypeInt, Required: true, Description: "Armor class value"},
				}},
				{Name: "perception", Type: FieldTypeObject, Required: true, Description: "Perception", Children: []Field{
					{Name: "value", Type: FieldTypeInt, Required: true, Description: "Perception modifier"},
				}},
				{Name: "speed", Type: FieldTypeObject, Description: "Movement speeds", Children: []Field{
					{Name: "value", Type: FieldTypeInt, Default: 25, Description: "Land speed in feet"},
					{Name: "other", Type: FieldTypeArray, Description: "Additional movement modes", Children: []Field{
						{Name: "type", Type: FieldTypeString, Required: true, Description: "Movement mode (fly, swim, ...)"},
						{Name: "value", Type: FieldTypeInt, Required: true, Description: "Speed in feet"},
					}},
				}},
				{Name: "saves", Type: FieldTypeObject, Description: "Saving throw modifiers", Children: []Field{
					{Name: "fortitude", Type: FieldTypeInt, Default: 0, Description: "Fortitude modifier"},
					{Name: "reflex", Type: FieldTypeInt, Default: 0, Description: "Reflex modifier"},
					{Name: "will", Type: FieldTypeInt, Default: 0, Description: "Will modifier"},
				}},
				{Name: "immunities", Type: FieldTypeArray, Elem: FieldTypeString, Description: "Damage and condition immunities"},
				{Name: "weaknesses", Type: FieldTypeArray, Description: "Damage weaknesses", Children: []Field{
					{Name: "type", Type: FieldTypeString, Required: true, Description: "Damage type"},
					{Name: "value", Type: FieldTypeInt, Required: true, Description: "Weakness amount"},
				}},
				{Name: "resistances", Type: FieldTypeArray, Description: "Damage resistances", Children: []Field{
					{Name: "type", Type: FieldTypeString, Required: true, Description: "Damage type"},
					{Name: "value", Type: FieldTypeInt, Required: true, Description: "Resistance amount"},
				}},
			},
		},
		Field{
			Name:        "abilities",
			Type:        FieldTypeObject,
			Required:    true,
			Description: "The six fixed ability score modifiers",
			Children: []Field{
				{Name: "str", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
				{Name: "dex", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
				{Name: "con", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
				{Name: "int", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
				{Name: "wis", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
				{Name: "cha", Type: FieldTypeObject, Required: true, Children: []Field{{Name: "mod", Type: FieldTypeInt, Required: true}}},
			},
		},
		Field{Name: "skills", Type: FieldTypeArray, Description: "Trained skills", Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true, Description: "Skill name"},
			{Name: "mod", Type: FieldTypeInt, Required: true, Description: "Skill modifier"},
		}},
		Field{Name: "strikes", Type: FieldTypeArray, Description: "Melee and ranged strikes", Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true, Description: "Strike name"},
			{Name: "mod", Type: FieldTypeInt, Default: 0, Description: "Attack modifier"},
			{Name: "damage", Type: FieldTypeArray, Required: true, MinItems: 1, Description: "Damage components", Children: []Field{
				{Name: "formula", Type: FieldTypeString, Required: true, Description: "Damage roll formula (e.g. 2d6+3)"},
				{Name: "type", Type: FieldTypeString, Required: true, Description: "Damage type"},
			}},
			{Name: "effects", Type: FieldTypeArray, Elem: FieldTypeString, Description: "Strike effect slugs"},
		}},
		Field{Name: "actions", Type: FieldTypeArray, Description: "Special actions and abilities", Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true, Description: "Action name"},
			{Name: "actionType", Type: FieldTypeString, Required: true, Enum: ActionTypes, Description: "Action cost"},
			{Name: "description", Type: FieldTypeString, Default: "", Description: "Action description"},
		}},
		Field{Name: "spellcasting", Type: FieldTypeArray, Description: "Spellcasting entries", Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true, Description: "Entry name"},
			{Name: "tradition", Type: FieldTypeString, Required: true, Enum: Traditions, Description: "Magical tradition"},
			{Name: "dc", Type: FieldTypeInt, Default: 10, Description: "Spell save DC"},
			{Name: "spells", Type: FieldTypeArray, Description: "Known or prepared spells", Children: []Field{
				{Name: "name", Type: FieldTypeString, Required: true, Description: "Spell name"},
				{Name: "level", Type: FieldTypeInt, Required: true, Description: "Spell level"},
			}},
		}},
		Field{Name: "inventory", Type: FieldTypeArray, Description: "Carried items", Children: []Field{
			{Name: "name", Type: FieldTypeString, Required: true, Description: "Item name"},
			{Name: "quantity", Type: FieldTypeInt, Default: 1, Description: "Item count"},
		}},
	),
}

// CatalogEntrySchema defines the shape of catalog entry records.
var CatalogEntrySchema = Schema{
	Kind:        KindCatalogEntry,
	Description: "A reference into a content catalog or compendium pack",
	Fields: append(commonFields(),
		Field{Name: "pack", Type: FieldTypeString, Default: "", Description: "Catalog pack identifier"},
		Field{Name: "entryType", Type: FieldTypeString, Required: true, Enum: []string{"action", "item", "actor"}, Description: "Kind of record the entry points at"},
		Field{Name: "tags", Type: FieldTypeArray, Elem: FieldTypeString, Description: "Free-form lookup tags"},
	),
}

// Of returns the schema for the given kind.
func Of(kind Kind) (*Schema, error) {
	switch kind {
	case KindAction:
		return &ActionSchema, nil
	case KindItem:
		return &ItemSchema, nil
	case KindActor:
		return &ActorSchema, nil
	case KindCatalogEntry:
		return &CatalogEntrySchema, nil
	default:
		return nil, fmt.Errorf("unknown record kind: %s", kind)
	}
}

// DeclaredKeys returns the set of top-level property names declared for a kind.
// The normalizer strips any key not in this set.
func DeclaredKeys(kind Kind) map[string]bool {
	s, err := Of(kind)
	if err != nil {
		return nil
	}
	keys := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		keys[f.Name] = true
	}
	return keys
}
