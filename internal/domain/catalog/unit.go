package catalog

// Prerequisite keys gate which weapon and heavy-equipment cards a unit may
// equip. The weapon keys mirror WeaponTypes; Power Armor and Upgrades have
// their own flags.
const (
	PrereqPowerArmor = "Power Armor"
	PrereqUpgrades   = "Upgrades"
)

// UnitDefinition is an immutable catalog entry for a character/model.
type UnitDefinition struct {
	ID       string
	Name     string
	Cost     int
	Factions []string
	Unique   bool

	// Prereq holds one flag per weapon capability plus Power Armor and
	// Upgrades; missing keys mean false.
	Prereq map[string]bool

	// Access holds one flag per access-gated item category.
	Access map[Category]bool

	// Equipped are the raw default-card references as declared in the data.
	Equipped []Reference

	// EquippedIDs are the Equipped references resolved to card ids at catalog
	// build time. Unresolvable references are dropped.
	EquippedIDs []string
}

// HasPrereq reports whether the unit carries the given prerequisite flag.
func (u *UnitDefinition) HasPrereq(key string) bool {
	return u != nil && u.Prereq[key]
}

// HasAccess reports whether the unit may equip cards of an access-gated
// category.
func (u *UnitDefinition) HasAccess(cat Category) bool {
	return u != nil && u.Access[cat]
}

// HasFaction reports whether the unit belongs to the given faction.
func (u *UnitDefinition) HasFaction(faction string) bool {
	if u == nil {
		return false
	}
	for _, f := range u.Factions {
		if f == faction {
			return true
		}
	}
	return false
}

// SoleFaction returns the unit's faction when it has exactly one, else "".
func (u *UnitDefinition) SoleFaction() string {
	if u != nil && len(u.Factions) == 1 {
		return u.Factions[0]
	}
	return ""
}
