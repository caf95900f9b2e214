package catalog_test

import (
	"testing"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	unitsJSON := []byte(`[
		{"id": "raider", "name": "Raider", "cost": 20, "factions": ["Raiders"],
		 "prereq": {"Melee": true}, "equipped": ["Board"]}
	]`)
	itemsJSON := []byte(`[
		{"id": "board", "name": "Board", "cost": 1, "weapon": {"Melee": true}},
		{"id": "blade", "name": "Blade", "cost": "2", "weapon": {"Melee": true}, "is_mod": true}
	]`)

	cat, err := catalog.Load(unitsJSON, itemsJSON)
	require.NoError(t, err)

	unit := cat.Unit("raider")
	require.NotNil(t, unit)
	assert.Equal(t, []string{"board"}, unit.EquippedIDs)

	blade := cat.Item("blade")
	require.NotNil(t, blade)
	assert.True(t, blade.IsMod)
	assert.Equal(t, 2, blade.Cost)
}

func TestLoad_MalformedDocument(t *testing.T) {
	_, err := catalog.Load([]byte(`{"not": "an array"}`), []byte(`[]`))
	assert.Error(t, err)

	_, err = catalog.Load([]byte(`[]`), []byte(`not json`))
	assert.Error(t, err)
}
