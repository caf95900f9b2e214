package roster

import (
	"encoding/json"

	"github.com/wastelandforge/warband/internal/domain/catalog"
)

// Snapshot is the serialization format for save/load, export and storage.
// It matches the format the web builder has always written, so rosters saved
// there import cleanly.
type Snapshot struct {
	Name        string         `json:"name"`
	Faction     string         `json:"faction"`
	PointsLimit int            `json:"pointsLimit"`
	ModelsLimit int            `json:"modelsLimit"`
	Units       []UnitSnapshot `json:"units"`
}

// UnitSnapshot is one placed unit in the wire format.
type UnitSnapshot struct {
	UID     string         `json:"uid"`
	ID      string         `json:"id"`
	Faction *string        `json:"faction"`
	Cards   []CardSnapshot `json:"cards"`
}

// CardSnapshot is one card slot in the wire format.
type CardSnapshot struct {
	ItemID string  `json:"itemId"`
	ModID  *string `json:"modId"`
	Locked bool    `json:"locked"`
}

// UnmarshalJSON accepts the canonical slot object plus two legacy shapes: the
// older {id, mod: {id}, locked} object and a bare item-id string. Entries
// that never carried a usable item id unmarshal with an empty ItemID and are
// dropped by FromSnapshot.
func (c *CardSnapshot) UnmarshalJSON(data []byte) error {
	*c = CardSnapshot{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.ItemID = s
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	if raw, ok := obj["itemId"]; ok {
		_ = json.Unmarshal(raw, &c.ItemID)
		if rawMod, ok := obj["modId"]; ok {
			var modID string
			if err := json.Unmarshal(rawMod, &modID); err == nil && modID != "" {
				c.ModID = &modID
			}
		}
		if rawLocked, ok := obj["locked"]; ok {
			_ = json.Unmarshal(rawLocked, &c.Locked)
		}
		return nil
	}

	if raw, ok := obj["id"]; ok {
		_ = json.Unmarshal(raw, &c.ItemID)
		if rawMod, ok := obj["mod"]; ok {
			var mod struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(rawMod, &mod); err == nil && mod.ID != "" {
				c.ModID = &mod.ID
			}
		}
		if rawLocked, ok := obj["locked"]; ok {
			_ = json.Unmarshal(rawLocked, &c.Locked)
		}
	}

	return nil
}

// Snapshot projects the roster into the wire format. It is a pure projection;
// the roster is not touched.
func (r *Roster) Snapshot() *Snapshot {
	snap := &Snapshot{
		Name:        r.Name,
		Faction:     r.Faction,
		PointsLimit: r.PointsLimit,
		ModelsLimit: r.ModelsLimit,
		Units:       make([]UnitSnapshot, 0, len(r.Units)),
	}

	for _, u := range r.Units {
		unitSnap := UnitSnapshot{
			UID:   u.UID,
			ID:    u.DefID,
			Cards: make([]CardSnapshot, 0, len(u.Cards)),
		}
		if u.Faction != "" {
			faction := u.Faction
			unitSnap.Faction = &faction
		}
		for _, slot := range u.Cards {
			cardSnap := CardSnapshot{ItemID: slot.ItemID, Locked: slot.Locked}
			if slot.ModID != "" {
				modID := slot.ModID
				cardSnap.ModID = &modID
			}
			unitSnap.Cards = append(unitSnap.Cards, cardSnap)
		}
		snap.Units = append(snap.Units, unitSnap)
	}

	return snap
}

// FromSnapshot rebuilds a roster from the wire format. Units referencing
// definitions absent from the catalog are kept (the catalog substitutes a
// placeholder definition when asked); card entries without a usable item id
// are dropped. newUID supplies instance ids for unit entries that lack one.
// The leader flag is recomputed once the full unit list is reconstructed.
func FromSnapshot(snap *Snapshot, cat *catalog.Catalog, newUID func(defID string) string) *Roster {
	r := &Roster{
		Name:        snap.Name,
		Faction:     snap.Faction,
		PointsLimit: snap.PointsLimit,
		ModelsLimit: snap.ModelsLimit,
	}

	for _, unitSnap := range snap.Units {
		unit := &Unit{
			UID:   unitSnap.UID,
			DefID: unitSnap.ID,
		}
		if unit.UID == "" {
			unit.UID = newUID(unitSnap.ID)
		}
		if unitSnap.Faction != nil {
			unit.Faction = *unitSnap.Faction
		}
		for _, cardSnap := range unitSnap.Cards {
			if cardSnap.ItemID == "" {
				continue
			}
			slot := CardSlot{ItemID: cardSnap.ItemID, Locked: cardSnap.Locked}
			if cardSnap.ModID != nil {
				slot.ModID = *cardSnap.ModID
			}
			unit.Cards = append(unit.Cards, slot)
		}
		r.Units = append(r.Units, unit)
	}

	r.RecomputeLeaderFlag(cat)

	return r
}
