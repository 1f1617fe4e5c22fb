package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statforge/statforge/internal/schema"
)

func TestActor_SynthesizesAttributeDefaults(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{"category": "npc"})

	attrs, ok := out["attributes"].(map[string]any)
	require.True(t, ok, "attributes missing")
	assert.Equal(t, map[string]any{"value": 1, "max": 1, "temp": 0}, attrs["hp"])
	assert.Equal(t, map[string]any{"value": 10}, attrs["ac"])
	assert.Equal(t, map[string]any{"value": 0}, attrs["perception"])

	abilities, ok := out["abilities"].(map[string]any)
	require.True(t, ok, "abilities missing")
	for _, name := range []string{"str", "dex", "con", "int", "wis", "cha"} {
		assert.Equal(t, map[string]any{"mod": 0}, abilities[name], "ability %s", name)
	}

	// The synthesized skeleton must pass validation as-is.
	v, err := schema.ValidatorOf(schema.KindActor)
	require.NoError(t, err)
	result := v.Validate(out)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestActor_HPShapes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want map[string]any
	}{
		"bare number": {
			in:   25,
			want: map[string]any{"value": 25, "max": 25, "temp": 0},
		},
		"numeric string": {
			in:   "25",
			want: map[string]any{"value": 25, "max": 25, "temp": 0},
		},
		"object with value only": {
			in:   map[string]any{"value": 12},
			want: map[string]any{"value": 12, "max": 12, "temp": 0},
		},
		"full object": {
			in:   map[string]any{"value": 8, "max": 12, "temp": 3},
			want: map[string]any{"value": 8, "max": 12, "temp": 3},
		},
		"garbage": {
			in:   []any{"nonsense"},
			want: map[string]any{"value": 1, "max": 1, "temp": 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := Record(schema.KindActor, map[string]any{
				"category":   "npc",
				"attributes": map[string]any{"hp": tt.in},
			})
			attrs := out["attributes"].(map[string]any)
			assert.Equal(t, tt.want, attrs["hp"])
		})
	}
}

func TestActor_SpeedShapes(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"attributes": map[string]any{
			"speed": map[string]any{
				"value": 25,
				"other": []any{
					map[string]any{"type": "Fly", "value": 40},
					map[string]any{"type": "", "value": 10},
					"not a mode",
				},
			},
		},
	})

	attrs := out["attributes"].(map[string]any)
	speed := attrs["speed"].(map[string]any)
	assert.Equal(t, 25, speed["value"])
	assert.Equal(t, []any{map[string]any{"type": "fly", "value": 40}}, speed["other"])

	bare := Record(schema.KindActor, map[string]any{
		"category":   "npc",
		"attributes": map[string]any{"speed": 30},
	})
	bareAttrs := bare["attributes"].(map[string]any)
	assert.Equal(t, map[string]any{"value": 30}, bareAttrs["speed"])

	wrapped := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"attributes": map[string]any{
			"speed": map[string]any{"value": map[string]any{"value": 30}},
		},
	})
	wrappedAttrs := wrapped["attributes"].(map[string]any)
	assert.Equal(t, map[string]any{"value": 30}, wrappedAttrs["speed"])
}

func TestActor_SavesAliases(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"attributes": map[string]any{
			"saves": map[string]any{
				"fort":    8,
				"reflex":  map[string]any{"value": 6},
				"will":    "5",
				"stamina": 3,
			},
		},
	})

	attrs := out["attributes"].(map[string]any)
	assert.Equal(t, map[string]any{"fortitude": 8, "reflex": 6, "will": 5}, attrs["saves"])
}

func TestActor_DamageModShapes(t *testing.T) {
	t.Parallel()
	keyed := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"attributes": map[string]any{
			"weaknesses": map[string]any{"fire": 5, "cold": 2},
		},
	})
	attrs := keyed["attributes"].(map[string]any)
	assert.Equal(t, []any{
		map[string]any{"type": "cold", "value": 2},
		map[string]any{"type": "fire", "value": 5},
	}, attrs["weaknesses"])

	listed := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"attributes": map[string]any{
			"resistances": []any{
				map[string]any{"type": "Slashing", "value": 5},
				map[string]any{"type": "", "value": 5},
				map[string]any{"type": "fire"},
			},
		},
	})
	listedAttrs := listed["attributes"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"type": "slashing", "value": 5}}, listedAttrs["resistances"])
}

func TestActor_AbilityShapes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      any
		wantStr int
		wantDex int
	}{
		"keyed by full name": {
			in:      map[string]any{"strength": 4, "dexterity": map[string]any{"mod": 2}},
			wantStr: 4,
			wantDex: 2,
		},
		"keyed by abbreviation with value wrapper": {
			in:      map[string]any{"str": map[string]any{"value": 4}, "dex": 2},
			wantStr: 4,
			wantDex: 2,
		},
		"array of entries": {
			in: []any{
				map[string]any{"name": "str", "mod": 4},
				map[string]any{"name": "Dexterity", "mod": 2},
				map[string]any{"name": "luck", "mod": 9},
			},
			wantStr: 4,
			wantDex: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := Record(schema.KindActor, map[string]any{
				"category":  "npc",
				"abilities": tt.in,
			})
			abilities := out["abilities"].(map[string]any)
			assert.Equal(t, map[string]any{"mod": tt.wantStr}, abilities["str"])
			assert.Equal(t, map[string]any{"mod": tt.wantDex}, abilities["dex"])
			assert.Equal(t, map[string]any{"mod": 0}, abilities["con"])
		})
	}
}

func TestActor_SkillShapes(t *testing.T) {
	t.Parallel()
	keyed := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"skills":   map[string]any{"stealth": 7, "athletics": map[string]any{"value": 5}},
	})
	assert.Equal(t, []any{
		map[string]any{"name": "athletics", "mod": 5},
		map[string]any{"name": "stealth", "mod": 7},
	}, keyed["skills"])

	listed := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"skills": []any{
			map[string]any{"name": "Stealth", "mod": 7},
			map[string]any{"mod": 3},
		},
	})
	assert.Equal(t, []any{map[string]any{"name": "Stealth", "mod": 7}}, listed["skills"])
}

func TestActor_StrikeShapes(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"strikes": []any{
			map[string]any{
				"name":    "Jaws",
				"mod":     "+9",
				"damage":  "2d6+3 piercing",
				"effects": []any{"Grab "},
			},
			map[string]any{"name": "Tail"}, // no damage: dropped
			map[string]any{"damage": "1d4 slashing"}, // no name: dropped
		},
	})

	require.Len(t, out["strikes"], 1)
	strike := out["strikes"].([]any)[0].(map[string]any)
	assert.Equal(t, "Jaws", strike["name"])
	assert.Equal(t, 9, strike["mod"])
	assert.Equal(t, []any{map[string]any{"formula": "2d6+3", "type": "piercing"}}, strike["damage"])
	assert.Equal(t, []string{"grab"}, strike["effects"])
}

func TestActor_StrikesKeyedMap(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"strikes": map[string]any{
			"dogslicer": map[string]any{"mod": 8, "damage": "1d6+1 slashing"},
		},
	})

	require.Len(t, out["strikes"], 1)
	strike := out["strikes"].([]any)[0].(map[string]any)
	assert.Equal(t, "dogslicer", strike["name"])
	assert.Equal(t, 8, strike["mod"])
}

func TestActor_DamageShapes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want []any
	}{
		"object list": {
			in: []any{
				map[string]any{"formula": "2d8", "type": "Bludgeoning"},
				map[string]any{"damage": "1d6", "damageType": "fire"},
			},
			want: []any{
				map[string]any{"formula": "2d8", "type": "bludgeoning"},
				map[string]any{"formula": "1d6", "type": "fire"},
			},
		},
		"single object": {
			in:   map[string]any{"formula": "2d8"},
			want: []any{map[string]any{"formula": "2d8", "type": "untyped"}},
		},
		"text with type": {
			in:   "2d6+3 slashing",
			want: []any{map[string]any{"formula": "2d6+3", "type": "slashing"}},
		},
		"text without type": {
			in:   "2d6+3",
			want: []any{map[string]any{"formula": "2d6+3", "type": "untyped"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := Record(schema.KindActor, map[string]any{
				"category": "npc",
				"strikes": []any{
					map[string]any{"name": "hit", "damage": tt.in},
				},
			})
			strike := out["strikes"].([]any)[0].(map[string]any)
			assert.Equal(t, tt.want, strike["damage"])
		})
	}
}

func TestActor_ActionsSpellcastingInventory(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindActor, map[string]any{
		"category": "npc",
		"actions": []any{
			map[string]any{"name": "Shield Block", "actionType": "Reaction", "description": " Blocks. "},
			map[string]any{"name": "Aura"},
			map[string]any{"actionType": "passive"},
		},
		"spellcasting": []any{
			map[string]any{
				"name":      "Innate Spells",
				"tradition": "Nature",
				"dc":        "17",
				"spells":    []any{"Heal", map[string]any{"name": "Fireball", "level": 3}},
			},
			map[string]any{"tradition": "arcane"},
		},
		"inventory": []any{
			"Torch",
			map[string]any{"name": "Arrows", "quantity": 20},
			map[string]any{"quantity": 3},
		},
	})

	assert.Equal(t, []any{
		map[string]any{"name": "Shield Block", "actionType": "reaction", "description": "Blocks."},
		map[string]any{"name": "Aura", "actionType": "passive"},
	}, out["actions"])

	require.Len(t, out["spellcasting"], 1)
	entry := out["spellcasting"].([]any)[0].(map[string]any)
	assert.Equal(t, "Innate Spells", entry["name"])
	assert.Equal(t, "primal", entry["tradition"])
	assert.Equal(t, 17, entry["dc"])
	assert.Equal(t, []any{
		map[string]any{"name": "Heal", "level": 0},
		map[string]any{"name": "Fireball", "level": 3},
	}, entry["spells"])

	assert.Equal(t, []any{
		map[string]any{"name": "Torch", "quantity": 1},
		map[string]any{"name": "Arrows", "quantity": 20},
	}, out["inventory"])
}
