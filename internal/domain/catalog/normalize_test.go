package catalog_test

import (
	"testing"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLookupKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  Bloody Mess  ",
			expected: "bloody mess",
		},
		{
			name:     "strips apostrophes",
			input:    "Grognak's Axe",
			expected: "grognaks axe",
		},
		{
			name:     "drops filler words",
			input:    "Bloody Mess (Perk Card)",
			expected: "bloody mess",
		},
		{
			name:     "collapses punctuation",
			input:    "T-45 Power Armor!!",
			expected: "t 45 power armor",
		},
		{
			name:     "standalone stopword dropped, embedded one kept",
			input:    "Deathclaw Claws",
			expected: "deathclaw",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.NormalizeLookupKey(tt.input))
		})
	}
}

func TestNormalizeUnit_Defaults(t *testing.T) {
	unit := catalog.NormalizeUnit(map[string]any{})

	assert.Empty(t, unit.ID)
	assert.Empty(t, unit.Name)
	assert.Zero(t, unit.Cost)
	assert.False(t, unit.Unique)
	assert.Empty(t, unit.Factions)
	assert.False(t, unit.HasPrereq(catalog.PrereqPowerArmor))
	assert.False(t, unit.HasAccess(catalog.CategoryUpgrades))
	assert.Empty(t, unit.Equipped)
}

func TestNormalizeUnit_FullRecord(t *testing.T) {
	unit := catalog.NormalizeUnit(map[string]any{
		"id":       "bos-knight",
		"name":     "  Knight ",
		"cost":     float64(90),
		"unique":   true,
		"factions": []any{"Brotherhood of Steel"},
		"prereq": map[string]any{
			"Melee":       true,
			"Rifle":       true,
			"Power Armor": true,
		},
		"access": map[string]any{
			"High Tech Items": true,
		},
		"equipped": []any{"laser-rifle"},
	})

	assert.Equal(t, "bos-knight", unit.ID)
	assert.Equal(t, "Knight", unit.Name)
	assert.Equal(t, 90, unit.Cost)
	assert.True(t, unit.Unique)
	assert.Equal(t, []string{"Brotherhood of Steel"}, unit.Factions)
	assert.True(t, unit.HasPrereq("Melee"))
	assert.True(t, unit.HasPrereq(catalog.PrereqPowerArmor))
	assert.False(t, unit.HasPrereq("Pistol"))
	assert.True(t, unit.HasAccess(catalog.CategoryHighTechItems))
	assert.False(t, unit.HasAccess(catalog.CategoryDogItems))
	require.Len(t, unit.Equipped, 1)
	assert.Equal(t, "laser-rifle", unit.Equipped[0].ID)
}

func TestNormalizeItem_DerivesModTypeAndGroups(t *testing.T) {
	item := catalog.NormalizeItem(map[string]any{
		"id":   "pipe-pistol",
		"name": "Pipe Pistol",
		"cost": float64(2),
		"weapon": map[string]any{
			"Pistol": true,
		},
	})

	assert.Equal(t, catalog.ModTypePistol, item.ModType)
	assert.True(t, item.Groups[catalog.GroupWeapons])
	assert.False(t, item.Groups[catalog.GroupArmor])
}

func TestNormalizeItem_StringCost(t *testing.T) {
	item := catalog.NormalizeItem(map[string]any{
		"id":   "board",
		"name": "Board",
		"cost": "3",
	})

	assert.Equal(t, 3, item.Cost)
}

func TestNormalizeItem_FactionLimits(t *testing.T) {
	item := catalog.NormalizeItem(map[string]any{
		"id":   "frag-grenades",
		"name": "Frag Grenades",
		"faction_limits": map[string]any{
			"Raiders": float64(2),
		},
	})

	assert.Equal(t, 2, item.FactionLimit("Raiders"))
	assert.Equal(t, 0, item.FactionLimit("Survivors"))
}

func TestNormalizeEquippedEntries(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []catalog.Reference
	}{
		{
			name:     "nil",
			input:    nil,
			expected: nil,
		},
		{
			name:  "bare string sets both",
			input: []any{" laser-rifle "},
			expected: []catalog.Reference{
				{ID: "laser-rifle", Name: "laser-rifle"},
			},
		},
		{
			name:  "numeric entry",
			input: []any{float64(42)},
			expected: []catalog.Reference{
				{ID: "42", Name: "42"},
			},
		},
		{
			name: "object with id and name keys",
			input: []any{map[string]any{
				"itemId": "pipe-pistol",
				"name":   "Pipe Pistol",
			}},
			expected: []catalog.Reference{
				{ID: "pipe-pistol", Name: "Pipe Pistol"},
			},
		},
		{
			name: "object falls back to any string value",
			input: []any{map[string]any{
				"weird": "Hunting Rifle",
			}},
			expected: []catalog.Reference{
				{Name: "Hunting Rifle"},
			},
		},
		{
			name: "string fallback probes keys in sorted order",
			input: []any{map[string]any{
				"zeta":  "Last Choice",
				"alpha": "First Choice",
				"count": float64(2),
			}},
			expected: []catalog.Reference{
				{Name: "First Choice"},
			},
		},
		{
			name:  "nested arrays flatten",
			input: []any{[]any{"board", []any{"buffout"}}},
			expected: []catalog.Reference{
				{ID: "board", Name: "board"},
				{ID: "buffout", Name: "buffout"},
			},
		},
		{
			name:     "blank entries dropped",
			input:    []any{"", "   ", map[string]any{}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.NormalizeEquippedEntries(tt.input))
		})
	}
}
