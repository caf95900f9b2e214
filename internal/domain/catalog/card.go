package catalog

// WeaponType is one of the weapon capability flags a card may carry.
type WeaponType string

const (
	WeaponMelee   WeaponType = "Melee"
	WeaponPistol  WeaponType = "Pistol"
	WeaponRifle   WeaponType = "Rifle"
	WeaponHeavy   WeaponType = "Heavy Weapon"
	WeaponGrenade WeaponType = "Grenade"
	WeaponMines   WeaponType = "Mines"
)

// WeaponTypes lists every weapon capability in display order.
var WeaponTypes = []WeaponType{
	WeaponMelee,
	WeaponPistol,
	WeaponRifle,
	WeaponHeavy,
	WeaponGrenade,
	WeaponMines,
}

// Category is one of the card category flags from the catalog vocabulary.
type Category string

const (
	CategoryChem       Category = "Chem"
	CategoryAlcohol    Category = "Alcohol"
	CategoryFood       Category = "Food"
	CategoryArmor      Category = "Armor"
	CategoryClothes    Category = "Clothes"
	CategoryGear       Category = "Gear"
	CategoryMod        Category = "Mod"
	CategoryPerks      Category = "Perks"
	CategoryLeader     Category = "Leader"
	CategoryPowerArmor Category = "Power Armor"
	CategoryUpgrades   Category = "Upgrades"

	CategoryWastelandItems   Category = "Wasteland Items"
	CategoryAdvancedItems    Category = "Advanced Items"
	CategoryHighTechItems    Category = "High Tech Items"
	CategoryUsableItems      Category = "Usable Items"
	CategoryRobotsItems      Category = "Robots Items"
	CategoryAutomatronItems  Category = "Automatron Items"
	CategoryCreatureItems    Category = "Creature Items"
	CategoryDogItems         Category = "Dog Items"
	CategorySuperMutantItems Category = "Super Mutant Items"
	// "Standart" is how the category is spelled in the shipped catalog data.
	CategoryStandartItem Category = "Standart Item"
	CategoryFactionItems Category = "Faction Items"
)

// Categories lists the full category vocabulary.
var Categories = []Category{
	CategoryChem,
	CategoryAlcohol,
	CategoryFood,
	CategoryArmor,
	CategoryClothes,
	CategoryGear,
	CategoryMod,
	CategoryPerks,
	CategoryLeader,
	CategoryPowerArmor,
	CategoryUpgrades,
	CategoryWastelandItems,
	CategoryAdvancedItems,
	CategoryHighTechItems,
	CategoryUsableItems,
	CategoryRobotsItems,
	CategoryAutomatronItems,
	CategoryCreatureItems,
	CategoryDogItems,
	CategorySuperMutantItems,
	CategoryStandartItem,
	CategoryFactionItems,
}

// AccessCategories are the access-gated categories: a unit must carry the
// matching access flag before it may equip a card in one of these.
var AccessCategories = []Category{
	CategoryUpgrades,
	CategoryWastelandItems,
	CategoryAdvancedItems,
	CategoryHighTechItems,
	CategoryUsableItems,
	CategoryRobotsItems,
	CategoryAutomatronItems,
	CategoryCreatureItems,
	CategoryDogItems,
	CategorySuperMutantItems,
	CategoryStandartItem,
	CategoryFactionItems,
}

// CardDefinition is an immutable catalog entry for an equippable card.
type CardDefinition struct {
	ID     string
	Name   string
	Cost   int
	Unique bool
	IsMod  bool

	Weapons    map[WeaponType]bool
	Categories map[Category]bool

	// Factions restricts the card to the listed factions; empty = unrestricted.
	Factions []string

	// FactionLimits caps the roster-wide count of this card per faction.
	FactionLimits map[string]int

	// ModTargets lists the slot types a mod may attach to; empty = any.
	ModTargets []ModType

	// Aliases are alternate names used during reference resolution.
	Aliases []string

	// ModType classifies the card as a mod attachment target (derived).
	ModType ModType

	// Groups is the precomputed set of picker groups the card belongs to.
	Groups map[Group]bool
}

// HasWeapon reports whether the card carries the given weapon capability.
func (c *CardDefinition) HasWeapon(w WeaponType) bool {
	return c != nil && c.Weapons[w]
}

// HasCategory reports whether the card carries the given category flag.
func (c *CardDefinition) HasCategory(cat Category) bool {
	return c != nil && c.Categories[cat]
}

// IsAnyWeapon reports whether the card carries at least one weapon capability.
func (c *CardDefinition) IsAnyWeapon() bool {
	if c == nil {
		return false
	}
	for _, w := range WeaponTypes {
		if c.Weapons[w] {
			return true
		}
	}
	return false
}

// HasSpecialBars reports whether the card art carries tracker bars
// (power armor, chem and alcohol cards).
func (c *CardDefinition) HasSpecialBars() bool {
	return c.HasCategory(CategoryPowerArmor) || c.HasCategory(CategoryChem) || c.HasCategory(CategoryAlcohol)
}

// TargetsModType reports whether a mod card may attach to a slot of the given
// type. An empty target list is a wildcard.
func (c *CardDefinition) TargetsModType(t ModType) bool {
	if c == nil {
		return false
	}
	if len(c.ModTargets) == 0 {
		return true
	}
	for _, target := range c.ModTargets {
		if target == t {
			return true
		}
	}
	return false
}

// FactionLimit returns the per-faction roster cap for this card, or 0 when
// the faction is uncapped. A configured cap of 0 is treated as uncapped,
// matching the shipped catalog semantics.
func (c *CardDefinition) FactionLimit(faction string) int {
	if c == nil || faction == "" {
		return 0
	}
	return c.FactionLimits[faction]
}
