package roster_test

import (
	"encoding/json"
	"testing"

	"github.com/wastelandforge/warband/internal/domain/roster"
	"github.com/wastelandforge/warband/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	rst := testutils.CreateTestRoster("r1", "Raiders", 500, 8)
	rst.Units = []*roster.Unit{
		{
			UID:     "raider-boss-abc12",
			DefID:   "raider-boss",
			Faction: "Raiders",
			Cards: []roster.CardSlot{
				{ItemID: "pipe-pistol", Locked: true, ModID: "pistol-scope"},
				{ItemID: "war-cry"},
			},
		},
	}
	rst.RecomputeLeaderFlag(cat)

	snap := rst.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded roster.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored := roster.FromSnapshot(&decoded, cat, func(defID string) string {
		t.Fatal("uid generator should not be called when uids are present")
		return ""
	})

	assert.Equal(t, rst.Name, restored.Name)
	assert.Equal(t, rst.Faction, restored.Faction)
	assert.Equal(t, rst.PointsLimit, restored.PointsLimit)
	assert.Equal(t, rst.ModelsLimit, restored.ModelsLimit)
	assert.True(t, restored.LeaderTaken)
	require.Len(t, restored.Units, 1)
	assert.Equal(t, rst.Units[0].UID, restored.Units[0].UID)
	assert.Equal(t, rst.Units[0].Faction, restored.Units[0].Faction)
	assert.Equal(t, rst.Units[0].Cards, restored.Units[0].Cards)
}

func TestSnapshot_WireFormat(t *testing.T) {
	rst := testutils.CreateTestRoster("r1", "", 0, 0)
	rst.Units = []*roster.Unit{
		{UID: "u1", DefID: "raider-scavver", Cards: []roster.CardSlot{
			{ItemID: "board"},
		}},
	}

	data, err := json.Marshal(rst.Snapshot())
	require.NoError(t, err)

	// Absent unit faction and mod serialize as explicit nulls.
	assert.JSONEq(t, `{
		"name": "Test Warband",
		"faction": "",
		"pointsLimit": 0,
		"modelsLimit": 0,
		"units": [{
			"uid": "u1",
			"id": "raider-scavver",
			"faction": null,
			"cards": [{"itemId": "board", "modId": null, "locked": false}]
		}]
	}`, string(data))
}

func TestCardSnapshot_LegacyShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected roster.CardSnapshot
	}{
		{
			name:     "bare string",
			input:    `"pipe-pistol"`,
			expected: roster.CardSnapshot{ItemID: "pipe-pistol"},
		},
		{
			name:  "canonical object",
			input: `{"itemId": "board", "modId": "pistol-scope", "locked": true}`,
			expected: roster.CardSnapshot{
				ItemID: "board",
				ModID:  strPtr("pistol-scope"),
				Locked: true,
			},
		},
		{
			name:     "canonical object with null mod",
			input:    `{"itemId": "board", "modId": null, "locked": false}`,
			expected: roster.CardSnapshot{ItemID: "board"},
		},
		{
			name:  "legacy id and nested mod",
			input: `{"id": "board", "mod": {"id": "pistol-scope"}, "locked": true}`,
			expected: roster.CardSnapshot{
				ItemID: "board",
				ModID:  strPtr("pistol-scope"),
				Locked: true,
			},
		},
		{
			name:     "unusable entry degrades to empty",
			input:    `{"something": "else"}`,
			expected: roster.CardSnapshot{},
		},
		{
			name:     "non-object garbage degrades to empty",
			input:    `42`,
			expected: roster.CardSnapshot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var card roster.CardSnapshot
			require.NoError(t, json.Unmarshal([]byte(tt.input), &card))
			assert.Equal(t, tt.expected, card)
		})
	}
}

func TestFromSnapshot_GeneratesMissingUIDs(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	snap := &roster.Snapshot{
		Name: "Imported",
		Units: []roster.UnitSnapshot{
			{ID: "raider-scavver"},
			{UID: "keep-me", ID: "wasteland-dog"},
		},
	}

	gen := testutils.NewSequentialGenerator("uid")
	restored := roster.FromSnapshot(snap, cat, func(defID string) string {
		return defID + "-" + gen.New()
	})

	require.Len(t, restored.Units, 2)
	assert.Equal(t, "raider-scavver-uid-0", restored.Units[0].UID)
	assert.Equal(t, "keep-me", restored.Units[1].UID)
}

func TestFromSnapshot_DropsEmptyCards(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	snap := &roster.Snapshot{
		Units: []roster.UnitSnapshot{
			{UID: "u1", ID: "raider-scavver", Cards: []roster.CardSnapshot{
				{ItemID: ""},
				{ItemID: "board"},
			}},
		},
	}

	restored := roster.FromSnapshot(snap, cat, nil)

	require.Len(t, restored.Units, 1)
	require.Len(t, restored.Units[0].Cards, 1)
	assert.Equal(t, "board", restored.Units[0].Cards[0].ItemID)
}

func TestFromSnapshot_KeepsUnknownUnits(t *testing.T) {
	cat := testutils.CreateTestCatalog()

	snap := &roster.Snapshot{
		Units: []roster.UnitSnapshot{
			{UID: "u1", ID: "unit-from-newer-catalog"},
		},
	}

	restored := roster.FromSnapshot(snap, cat, nil)

	require.Len(t, restored.Units, 1)
	assert.Equal(t, "unit-from-newer-catalog", restored.Units[0].DefID)
}

func strPtr(s string) *string {
	return &s
}
