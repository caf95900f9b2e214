package catalog

// ModType is the single slot-type token a base card resolves to when deciding
// which mods can attach to it.
type ModType string

const (
	ModTypeNone       ModType = ""
	ModTypePowerArmor ModType = "Power Armor"
	ModTypeArmor      ModType = "Armor"
	ModTypeMelee      ModType = "Melee"
	ModTypePistol     ModType = "Pistol"
	ModTypeRifle      ModType = "Rifle"
	ModTypeHeavy      ModType = "Heavy Weapon"
	ModTypeGrenade    ModType = "Grenade"
	ModTypeMines      ModType = "Mines"
	ModTypeRobot      ModType = "Robot"
	ModTypeAnimal     ModType = "Animal"
)

// modTypeRules classifies a base card into exactly one mod slot type. The
// rules are evaluated top to bottom and the first match wins: armor beats
// weapon beats robot/animal. A card that satisfies several branches (a robot
// chassis that is also armor-classed, say) resolves to the earlier one.
var modTypeRules = []struct {
	matches func(*CardDefinition) bool
	modType ModType
}{
	{func(c *CardDefinition) bool { return c.HasCategory(CategoryPowerArmor) }, ModTypePowerArmor},
	{func(c *CardDefinition) bool { return c.HasCategory(CategoryArmor) }, ModTypeArmor},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponMelee) }, ModTypeMelee},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponPistol) }, ModTypePistol},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponRifle) }, ModTypeRifle},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponHeavy) }, ModTypeHeavy},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponGrenade) }, ModTypeGrenade},
	{func(c *CardDefinition) bool { return c.HasWeapon(WeaponMines) }, ModTypeMines},
	{func(c *CardDefinition) bool { return c.HasCategory(CategoryRobotsItems) }, ModTypeRobot},
	{func(c *CardDefinition) bool {
		return c.HasCategory(CategoryCreatureItems) || c.HasCategory(CategoryDogItems) || c.HasCategory(CategorySuperMutantItems)
	}, ModTypeAnimal},
}

// ResolveModType classifies a base card into its mod slot type, or
// ModTypeNone when the card cannot take mods.
func ResolveModType(c *CardDefinition) ModType {
	if c == nil {
		return ModTypeNone
	}
	for _, rule := range modTypeRules {
		if rule.matches(c) {
			return rule.modType
		}
	}
	return ModTypeNone
}
