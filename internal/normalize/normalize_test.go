package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statforge/statforge/internal/schema"
	"github.com/statforge/statforge/internal/traits"
)

func TestRecord_ActionAliasesAndTraits(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindAction, map[string]any{
		"actionType": "One Action",
		"traits":     []any{"attack ", " "},
	})

	assert.Equal(t, "one-action", out["actionType"])
	assert.Equal(t, []string{"attack"}, out["traits"])
	assert.Equal(t, schema.LatestVersion, out[schema.VersionKey])
}

func TestRecord_StripsUnknownKeys(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindAction, map[string]any{
		"actionType":  "reaction",
		"homebrew":    true,
		"_internalId": "abc-123",
		"notes":       []any{"keep away"},
	})

	for key := range out {
		assert.True(t, schema.DeclaredKeys(schema.KindAction)[key],
			"undeclared key %q survived normalization", key)
	}
}

func TestRecord_ForcesSchemaVersion(t *testing.T) {
	t.Parallel()
	tests := map[string]any{
		"older version":  1,
		"future version": 99,
		"garbage":        "two",
		"missing":        nil,
	}
	for name, version := range tests {
		t.Run(name, func(t *testing.T) {
			in := map[string]any{"actionType": "reaction"}
			if version != nil {
				in[schema.VersionKey] = version
			}
			out := Record(schema.KindAction, in)
			assert.Equal(t, schema.LatestVersion, out[schema.VersionKey])
		})
	}
}

func TestRecord_Idempotent(t *testing.T) {
	t.Parallel()
	records := map[string]struct {
		kind schema.Kind
		in   map[string]any
	}{
		"messy action": {
			kind: schema.KindAction,
			in: map[string]any{
				"name":       "  Power Attack ",
				"actionType": "2",
				"traits":     []any{"Attack", "attack", "Flourish "},
				"junk":       42,
			},
		},
		"messy item": {
			kind: schema.KindItem,
			in: map[string]any{
				"name":     "Longsword",
				"category": "weapons",
				"level":    "3",
				"price":    15,
			},
		},
		"messy actor": {
			kind: schema.KindActor,
			in: map[string]any{
				"name":     "Goblin Warrior",
				"category": "monster",
				"size":     "sm",
				"attributes": map[string]any{
					"hp":         15,
					"ac":         map[string]any{"value": 16},
					"perception": 2,
					"weaknesses": map[string]any{"fire": 5, "cold": 2},
				},
				"abilities": map[string]any{"strength": 3, "dexterity": map[string]any{"mod": 2}},
				"strikes": map[string]any{
					"dogslicer": map[string]any{"mod": 8, "damage": "1d6+1 slashing"},
				},
			},
		},
		"messy catalog entry": {
			kind: schema.KindCatalogEntry,
			in: map[string]any{
				"pack":      "bestiary-1",
				"entryType": "Actor",
				"tags":      []any{"Goblin", "goblin"},
			},
		},
	}

	for name, tt := range records {
		t.Run(name, func(t *testing.T) {
			once := Record(tt.kind, tt.in)
			twice := Record(tt.kind, once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestRecord_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"name":   "  Strike ",
		"traits": []any{"Attack "},
		"junk":   true,
	}
	Record(schema.KindAction, in)

	assert.Equal(t, "  Strike ", in["name"])
	assert.Equal(t, []any{"Attack "}, in["traits"])
	assert.Contains(t, in, "junk")
}

func TestRecord_SlugSynthesizedFromName(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindAction, map[string]any{
		"name":       "Power Attack!",
		"actionType": "one-action",
	})
	assert.Equal(t, "power-attack", out["slug"])

	explicit := Record(schema.KindAction, map[string]any{
		"name":       "Power Attack!",
		"slug":       "Custom Slug",
		"actionType": "one-action",
	})
	assert.Equal(t, "custom-slug", explicit["slug"])
}

func TestRecord_SystemAlias(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindAction, map[string]any{"systemId": "Pathfinder 2e"})
	assert.Equal(t, "pf2e", out["systemId"])

	unknown := Record(schema.KindAction, map[string]any{"systemId": "mystery"})
	assert.Equal(t, schema.DefaultSystem, unknown["systemId"])

	absent := Record(schema.KindAction, map[string]any{})
	require.NotContains(t, absent, "systemId")
}

func TestRecord_TraitAllowlistFiltering(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"actionType": "one-action",
		"traits":     []any{"attack", "homebrew-special", "flourish"},
	}

	provider := &traits.StaticProvider{Set: traits.NewSet("attack", "flourish")}
	out := Record(schema.KindAction, in, WithTraitProvider(provider))
	assert.Equal(t, []string{"attack", "flourish"}, out["traits"])

	// Nil provider and nil allowlist both mean no filtering.
	unfiltered := Record(schema.KindAction, in)
	assert.Equal(t, []string{"attack", "homebrew-special", "flourish"}, unfiltered["traits"])

	open := Record(schema.KindAction, in, WithTraitProvider(&traits.StaticProvider{}))
	assert.Equal(t, []string{"attack", "homebrew-special", "flourish"}, open["traits"])
}

func TestRecord_ItemCoercions(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindItem, map[string]any{
		"category": "Weapons",
		"level":    "5",
		"price":    10,
		"bulk":     "L",
	})

	assert.Equal(t, "weapon", out["category"])
	assert.Equal(t, 5, out["level"])
	assert.Equal(t, "10 gp", out["price"])
	assert.Equal(t, "L", out["bulk"])
}

func TestRecord_CatalogEntry(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindCatalogEntry, map[string]any{
		"pack":      " bestiary-1 ",
		"entryType": "Actors",
		"tags":      []any{"Goblin", "goblin", 7},
	})

	assert.Equal(t, "bestiary-1", out["pack"])
	assert.Equal(t, "actor", out["entryType"])
	assert.Equal(t, []string{"goblin"}, out["tags"])
}

func TestRecord_NilCandidate(t *testing.T) {
	t.Parallel()
	out := Record(schema.KindAction, nil)
	assert.Equal(t, schema.LatestVersion, out[schema.VersionKey])
}
