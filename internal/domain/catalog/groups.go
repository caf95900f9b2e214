package catalog

// Group is a picker tab used by catalog browsers to filter cards.
type Group string

const (
	GroupWeapons       Group = "Weapons"
	GroupArmor         Group = "Armor"
	GroupPowerArmor    Group = "Power Armor"
	GroupPowerArmorMod Group = "Power Armor Mods"
	GroupClothes       Group = "Clothes"
	GroupGear          Group = "Gear"
	GroupChem          Group = "Chem"
	GroupAlcohol       Group = "Alcohol"
	GroupFood          Group = "Food"
	GroupPerks         Group = "Perks"
	GroupLeader        Group = "Leader"
	GroupUpgrades      Group = "Upgrades"

	GroupWastelandItems   Group = "Wasteland Items"
	GroupAdvancedItems    Group = "Advanced Items"
	GroupHighTechItems    Group = "High Tech Items"
	GroupUsableItems      Group = "Usable Items"
	GroupRobotsItems      Group = "Robots Items"
	GroupAutomatronItems  Group = "Automatron Items"
	GroupCreatureItems    Group = "Creature Items"
	GroupDogItems         Group = "Dog Items"
	GroupSuperMutantItems Group = "Super Mutant Items"
	GroupStandartItem     Group = "Standart Item"
	GroupFactionItems     Group = "Faction Items"
)

// Groups lists every picker group in display order.
var Groups = []Group{
	GroupWeapons,
	GroupArmor,
	GroupPowerArmor,
	GroupPowerArmorMod,
	GroupClothes,
	GroupGear,
	GroupChem,
	GroupAlcohol,
	GroupFood,
	GroupPerks,
	GroupLeader,
	GroupUpgrades,
	GroupWastelandItems,
	GroupAdvancedItems,
	GroupHighTechItems,
	GroupUsableItems,
	GroupRobotsItems,
	GroupAutomatronItems,
	GroupCreatureItems,
	GroupDogItems,
	GroupSuperMutantItems,
	GroupStandartItem,
	GroupFactionItems,
}

// groupCategory maps the plain category-backed groups to their category flag.
var groupCategory = map[Group]Category{
	GroupArmor:            CategoryArmor,
	GroupPowerArmor:       CategoryPowerArmor,
	GroupClothes:          CategoryClothes,
	GroupGear:             CategoryGear,
	GroupChem:             CategoryChem,
	GroupAlcohol:          CategoryAlcohol,
	GroupFood:             CategoryFood,
	GroupPerks:            CategoryPerks,
	GroupLeader:           CategoryLeader,
	GroupUpgrades:         CategoryUpgrades,
	GroupWastelandItems:   CategoryWastelandItems,
	GroupAdvancedItems:    CategoryAdvancedItems,
	GroupHighTechItems:    CategoryHighTechItems,
	GroupUsableItems:      CategoryUsableItems,
	GroupRobotsItems:      CategoryRobotsItems,
	GroupAutomatronItems:  CategoryAutomatronItems,
	GroupCreatureItems:    CategoryCreatureItems,
	GroupDogItems:         CategoryDogItems,
	GroupSuperMutantItems: CategorySuperMutantItems,
	GroupStandartItem:     CategoryStandartItem,
	GroupFactionItems:     CategoryFactionItems,
}

// MatchesGroup reports whether a card belongs to a picker group.
func MatchesGroup(c *CardDefinition, g Group) bool {
	if c == nil {
		return false
	}
	switch g {
	case GroupWeapons:
		return c.IsAnyWeapon()
	case GroupPowerArmorMod:
		return c.IsMod && hasExplicitTarget(c, ModTypePowerArmor)
	default:
		if cat, ok := groupCategory[g]; ok {
			return c.HasCategory(cat)
		}
		return false
	}
}

// MatchesWeaponGroup reports whether a card belongs to the Weapons group
// narrowed to a single weapon capability.
func MatchesWeaponGroup(c *CardDefinition, w WeaponType) bool {
	return c.HasWeapon(w)
}

// DeriveGroups precomputes the set of picker groups a card belongs to.
func DeriveGroups(c *CardDefinition) map[Group]bool {
	groups := make(map[Group]bool)
	for _, g := range Groups {
		if MatchesGroup(c, g) {
			groups[g] = true
		}
	}
	return groups
}

// hasExplicitTarget reports whether the mod names the slot type in its target
// list. Unlike TargetsModType, an empty list does not match: the Power Armor
// Mods tab shows only mods declared for power armor.
func hasExplicitTarget(c *CardDefinition, t ModType) bool {
	for _, target := range c.ModTargets {
		if target == t {
			return true
		}
	}
	return false
}
