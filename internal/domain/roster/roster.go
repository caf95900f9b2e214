// Package roster holds the mutable roster aggregate and its derived values.
// Mutations go through rules.Builder; this package only knows the shape of
// the data and how to compute totals from it.
package roster

import (
	"github.com/wastelandforge/warband/internal/domain/catalog"
)

// CardSlot is one equipped-card position on a roster unit. ModID is empty
// when no mod is attached. Locked slots come from the unit's default
// equipment and cannot be removed by the user.
type CardSlot struct {
	ItemID string
	ModID  string
	Locked bool
}

// Unit is one model placed in the roster.
type Unit struct {
	// UID is the synthetic instance id, unique within the roster.
	UID string

	// DefID references the UnitDefinition.
	DefID string

	// Faction is the faction the unit was added under, frozen at add time.
	// Empty when the roster had no faction and the unit has several.
	Faction string

	Cards []CardSlot
}

// Roster is the root aggregate.
type Roster struct {
	ID          string
	Name        string
	Faction     string
	PointsLimit int
	ModelsLimit int
	Units       []*Unit

	// LeaderTaken is derived: true iff any base card in the roster carries
	// the Leader category. Maintained by RecomputeLeaderFlag.
	LeaderTaken bool
}

// New creates an empty roster.
func New(id string) *Roster {
	return &Roster{ID: id}
}

// UnitByUID finds a placed unit by instance id, or nil.
func (r *Roster) UnitByUID(uid string) *Unit {
	for _, u := range r.Units {
		if u.UID == uid {
			return u
		}
	}
	return nil
}

// HasUnitDef reports whether any placed unit references the given definition.
func (r *Roster) HasUnitDef(defID string) bool {
	for _, u := range r.Units {
		if u.DefID == defID {
			return true
		}
	}
	return false
}

// EffectiveFaction is the faction context used for eligibility: the unit's
// frozen faction, else the roster faction, else the first faction of the
// unit's definition.
func (r *Roster) EffectiveFaction(cat *catalog.Catalog, u *Unit) string {
	if u.Faction != "" {
		return u.Faction
	}
	if r.Faction != "" {
		return r.Faction
	}
	def := cat.Unit(u.DefID)
	if def != nil && len(def.Factions) > 0 {
		return def.Factions[0]
	}
	return ""
}

// Clone returns a deep copy of the unit with a new instance id. Slots and
// lock flags are preserved verbatim, including attached mods.
func (u *Unit) Clone(uid string) *Unit {
	copied := &Unit{
		UID:     uid,
		DefID:   u.DefID,
		Faction: u.Faction,
		Cards:   make([]CardSlot, len(u.Cards)),
	}
	copy(copied.Cards, u.Cards)
	return copied
}

// Clone returns a deep copy of the roster.
func (r *Roster) Clone() *Roster {
	copied := &Roster{
		ID:          r.ID,
		Name:        r.Name,
		Faction:     r.Faction,
		PointsLimit: r.PointsLimit,
		ModelsLimit: r.ModelsLimit,
		LeaderTaken: r.LeaderTaken,
	}
	for _, u := range r.Units {
		copied.Units = append(copied.Units, u.Clone(u.UID))
	}
	return copied
}
