package catalog_test

import (
	"testing"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookups(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	assert.NotNil(t, cat.Unit("raider-scavver"))
	assert.Nil(t, cat.Unit("no-such-unit"))
	assert.Nil(t, cat.Unit(""))

	assert.NotNil(t, cat.Item("pipe-pistol"))
	assert.Nil(t, cat.Item("no-such-item"))

	id, ok := cat.ItemIDByName("Pipe Pistol")
	require.True(t, ok)
	assert.Equal(t, "pipe-pistol", id)

	id, ok = cat.ItemIDByName("  pipe pistol ")
	require.True(t, ok)
	assert.Equal(t, "pipe-pistol", id)

	_, ok = cat.ItemIDByName("No Such Card")
	assert.False(t, ok)
}

func TestCatalog_UnitOrPlaceholder(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	placeholder := cat.UnitOrPlaceholder("ghost-unit")
	require.NotNil(t, placeholder)
	assert.Equal(t, "ghost-unit", placeholder.ID)
	assert.Equal(t, "ghost-unit", placeholder.Name)
	assert.Zero(t, placeholder.Cost)
	assert.Empty(t, placeholder.Factions)
}

func TestCatalog_ResolveItemReference(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	tests := []struct {
		name     string
		ref      catalog.Reference
		expected string
	}{
		{
			name:     "direct id",
			ref:      catalog.Reference{ID: "hunting-rifle"},
			expected: "hunting-rifle",
		},
		{
			name:     "exact name",
			ref:      catalog.Reference{Name: "Hunting Rifle"},
			expected: "hunting-rifle",
		},
		{
			name:     "fuzzy name with filler words",
			ref:      catalog.Reference{Name: "Heave Ho! (Perk Card)"},
			expected: "heave-ho",
		},
		{
			name:     "alias",
			ref:      catalog.Reference{Name: "Heave Ho Perk"},
			expected: "heave-ho",
		},
		{
			name:     "id wins over name",
			ref:      catalog.Reference{ID: "board", Name: "Pipe Pistol"},
			expected: "board",
		},
		{
			name:     "unknown id falls through to name",
			ref:      catalog.Reference{ID: "bogus", Name: "Board"},
			expected: "board",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := cat.ResolveItemReference(tt.ref)
			require.NotNil(t, item)
			assert.Equal(t, tt.expected, item.ID)
		})
	}

	assert.Nil(t, cat.ResolveItemReference(catalog.Reference{Name: "No Such Card"}))
}

func TestCatalog_ResolvesDefaultEquipment(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	boss := cat.Unit("raider-boss")
	require.NotNil(t, boss)
	assert.Equal(t, []string{"pipe-pistol"}, boss.EquippedIDs)

	knight := cat.Unit("bos-knight")
	require.NotNil(t, knight)
	assert.Equal(t, []string{"laser-rifle"}, knight.EquippedIDs)
}

func TestCatalog_Factions(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	assert.Equal(t, []string{
		"Brotherhood of Steel",
		"Raiders",
		"Super Mutants",
		"Survivors",
	}, cat.Factions())
}
