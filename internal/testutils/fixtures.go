package testutils

import (
	"strconv"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
)

// CreateTestUnit creates a minimal unit definition
func CreateTestUnit(id, name string, cost int, factions ...string) catalog.UnitDefinition {
	return catalog.UnitDefinition{
		ID:       id,
		Name:     name,
		Cost:     cost,
		Factions: factions,
		Prereq:   map[string]bool{},
		Access:   map[catalog.Category]bool{},
	}
}

// CreateTestItem creates a card definition with derived mod type and groups
func CreateTestItem(card catalog.CardDefinition) catalog.CardDefinition {
	if card.Weapons == nil {
		card.Weapons = map[catalog.WeaponType]bool{}
	}
	if card.Categories == nil {
		card.Categories = map[catalog.Category]bool{}
	}
	card.ModType = catalog.ResolveModType(&card)
	card.Groups = catalog.DeriveGroups(&card)
	return card
}

// CreateTestCatalog builds a small but complete catalog exercising every
// eligibility gate: weapon prerequisites, access categories, power armor,
// faction restrictions and caps, uniques, leaders and mods.
func CreateTestCatalog() *catalog.Catalog {
	units := []catalog.UnitDefinition{
		{
			ID:       "raider-scavver",
			Name:     "Raider Scavver",
			Cost:     25,
			Factions: []string{"Raiders"},
			Prereq: map[string]bool{
				string(catalog.WeaponMelee):  true,
				string(catalog.WeaponPistol): true,
			},
			Access: map[catalog.Category]bool{
				catalog.CategoryWastelandItems: true,
			},
		},
		{
			ID:       "raider-boss",
			Name:     "Raider Boss",
			Cost:     60,
			Factions: []string{"Raiders"},
			Unique:   true,
			Prereq: map[string]bool{
				string(catalog.WeaponMelee):   true,
				string(catalog.WeaponPistol):  true,
				string(catalog.WeaponRifle):   true,
				string(catalog.WeaponGrenade): true,
			},
			Access: map[catalog.Category]bool{
				catalog.CategoryWastelandItems: true,
				catalog.CategoryUpgrades:       true,
			},
			Equipped: []catalog.Reference{{Name: "Pipe Pistol"}},
		},
		{
			ID:       "bos-knight",
			Name:     "Knight",
			Cost:     90,
			Factions: []string{"Brotherhood of Steel"},
			Prereq: map[string]bool{
				string(catalog.WeaponMelee):  true,
				string(catalog.WeaponRifle):  true,
				catalog.PrereqPowerArmor:     true,
				catalog.PrereqUpgrades:       true,
			},
			Access: map[catalog.Category]bool{
				catalog.CategoryHighTechItems: true,
				catalog.CategoryUpgrades:      true,
			},
			Equipped: []catalog.Reference{{ID: "laser-rifle"}},
		},
		{
			ID:       "super-mutant-brute",
			Name:     "Super Mutant Brute",
			Cost:     55,
			Factions: []string{"Super Mutants"},
			Prereq: map[string]bool{
				string(catalog.WeaponMelee): true,
				string(catalog.WeaponHeavy): true,
			},
			Access: map[catalog.Category]bool{
				catalog.CategorySuperMutantItems: true,
			},
		},
		{
			ID:       "wasteland-dog",
			Name:     "Wasteland Dog",
			Cost:     15,
			Factions: []string{"Raiders", "Survivors"},
			Prereq:   map[string]bool{},
			Access: map[catalog.Category]bool{
				catalog.CategoryDogItems: true,
			},
		},
		{
			ID:       "survivor-sentry",
			Name:     "Sentry",
			Cost:     30,
			Factions: []string{"Survivors"},
			Prereq: map[string]bool{
				string(catalog.WeaponPistol):  true,
				string(catalog.WeaponRifle):   true,
				string(catalog.WeaponGrenade): true,
			},
			Access: map[catalog.Category]bool{
				catalog.CategoryWastelandItems: true,
			},
		},
	}

	items := []catalog.CardDefinition{
		CreateTestItem(catalog.CardDefinition{
			ID: "board", Name: "Board", Cost: 1,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponMelee: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "pipe-pistol", Name: "Pipe Pistol", Cost: 2,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponPistol: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "hunting-rifle", Name: "Hunting Rifle", Cost: 4,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponRifle: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "laser-rifle", Name: "Laser Rifle", Cost: 6,
			Weapons:  map[catalog.WeaponType]bool{catalog.WeaponRifle: true},
			Factions: []string{"Brotherhood of Steel"},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "missile-launcher", Name: "Missile Launcher", Cost: 9,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponHeavy: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "frag-grenades", Name: "Frag Grenades", Cost: 3,
			Weapons:       map[catalog.WeaponType]bool{catalog.WeaponGrenade: true},
			FactionLimits: map[string]int{"Raiders": 2},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "frag-mines", Name: "Frag Mines", Cost: 2,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponMines: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "alien-blaster", Name: "Alien Blaster", Cost: 7, Unique: true,
			Weapons: map[catalog.WeaponType]bool{catalog.WeaponPistol: true},
		}),

		CreateTestItem(catalog.CardDefinition{
			ID: "leather-armor", Name: "Leather Armor", Cost: 2,
			Categories: map[catalog.Category]bool{catalog.CategoryArmor: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "metal-armor", Name: "Metal Armor", Cost: 3,
			Categories: map[catalog.Category]bool{catalog.CategoryArmor: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "battered-fatigues", Name: "Battered Fatigues", Cost: 1,
			Categories: map[catalog.Category]bool{catalog.CategoryClothes: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "camouflage", Name: "Camouflage", Cost: 2,
			Categories: map[catalog.Category]bool{catalog.CategoryGear: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "climbing-spikes", Name: "Climbing Spikes", Cost: 1,
			Categories: map[catalog.Category]bool{catalog.CategoryGear: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "t-45-power-armor", Name: "T-45 Power Armor", Cost: 9,
			Categories: map[catalog.Category]bool{
				catalog.CategoryPowerArmor: true,
				catalog.CategoryArmor:      true,
			},
		}),

		CreateTestItem(catalog.CardDefinition{
			ID: "heave-ho", Name: "Heave Ho!", Cost: 2,
			Categories: map[catalog.Category]bool{catalog.CategoryPerks: true},
			Aliases:    []string{"Heave Ho Perk"},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "war-cry", Name: "War Cry", Cost: 3,
			Categories: map[catalog.Category]bool{catalog.CategoryLeader: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "buffout", Name: "Buffout", Cost: 2,
			Categories: map[catalog.Category]bool{catalog.CategoryChem: true},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "stealth-boy", Name: "Stealth Boy", Cost: 4,
			Categories: map[catalog.Category]bool{
				catalog.CategoryHighTechItems: true,
				catalog.CategoryGear:          true,
			},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "scrap-junk", Name: "Scrap Junk", Cost: 1,
			Categories: map[catalog.Category]bool{
				catalog.CategoryWastelandItems: true,
				catalog.CategoryGear:           true,
			},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "dog-harness", Name: "Dog Harness", Cost: 1,
			Categories: map[catalog.Category]bool{
				catalog.CategoryDogItems: true,
				catalog.CategoryGear:     true,
			},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "jet-pack", Name: "Jet Pack", Cost: 5,
			Categories: map[catalog.Category]bool{catalog.CategoryUpgrades: true},
		}),

		CreateTestItem(catalog.CardDefinition{
			ID: "pistol-scope", Name: "Pistol Scope", Cost: 1, IsMod: true,
			Categories: map[catalog.Category]bool{catalog.CategoryMod: true},
			ModTargets: []catalog.ModType{catalog.ModTypePistol},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "long-barrel", Name: "Long Barrel", Cost: 2, IsMod: true,
			Categories: map[catalog.Category]bool{catalog.CategoryMod: true},
			ModTargets: []catalog.ModType{catalog.ModTypeRifle},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "pa-servos", Name: "Calibrated Servos", Cost: 3, IsMod: true,
			Categories: map[catalog.Category]bool{catalog.CategoryMod: true},
			ModTargets: []catalog.ModType{catalog.ModTypePowerArmor},
		}),
		CreateTestItem(catalog.CardDefinition{
			ID: "prototype-cell", Name: "Prototype Cell", Cost: 4, IsMod: true, Unique: true,
			Categories: map[catalog.Category]bool{catalog.CategoryMod: true},
			ModTargets: []catalog.ModType{catalog.ModTypePistol, catalog.ModTypeRifle},
		}),
	}

	return catalog.New(units, items)
}

// CreateTestRoster creates an empty roster with the given faction and limits
func CreateTestRoster(id, faction string, pointsLimit, modelsLimit int) *roster.Roster {
	rst := roster.New(id)
	rst.Name = "Test Warband"
	rst.Faction = faction
	rst.PointsLimit = pointsLimit
	rst.ModelsLimit = modelsLimit
	return rst
}

// SequentialGenerator is a deterministic id generator for tests
type SequentialGenerator struct {
	prefix string
	next   int
}

// NewSequentialGenerator creates a generator producing prefix-0, prefix-1, ...
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next id in sequence
func (g *SequentialGenerator) New() string {
	id := g.prefix + "-" + strconv.Itoa(g.next)
	g.next++
	return id
}
