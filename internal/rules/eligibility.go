// Package rules is the eligibility and composition engine: pure admissibility
// predicates over the catalog and roster state, plus the Builder that applies
// mutations. Predicates only return booleans and filtered lists; turning a
// failed check into a user-facing error is the Builder's job.
package rules

import (
	"strings"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
)

// superMutantsFaction triggers the themed armor restriction: Super Mutants
// only wear gear cut for them.
const superMutantsFaction = "Super Mutants"

// powerArmorIncompatible lists items that cannot be taken alongside power
// armor. The game rule is encoded as a name denylist in the card data, not a
// flag, so it is matched by name here too.
var powerArmorIncompatible = map[string]bool{
	"camouflage":      true,
	"climbing spikes": true,
}

// Engine answers eligibility questions for a single catalog.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates an eligibility engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// IsItemAllowedForUnit decides whether a card passes the unit's static
// eligibility gates under the given effective faction: faction restriction,
// weapon prerequisites (with the Mines-or-Grenade exception), power armor and
// upgrade prerequisites, access categories, and the Super Mutants armor
// restriction. Roster-wide constraints (uniqueness, caps, leader) are
// applied by AvailableItems.
func (e *Engine) IsItemAllowedForUnit(u *roster.Unit, item *catalog.CardDefinition, faction string) bool {
	def := e.cat.UnitOrPlaceholder(u.DefID)

	if len(item.Factions) > 0 {
		if faction != "" {
			if !containsString(item.Factions, faction) {
				return false
			}
		} else if !intersects(item.Factions, def.Factions) {
			return false
		}
	}

	for _, w := range catalog.WeaponTypes {
		if !item.HasWeapon(w) {
			continue
		}
		if w == catalog.WeaponMines {
			// Mines are usable by anyone trained for mines or grenades.
			if !def.HasPrereq(string(catalog.WeaponMines)) && !def.HasPrereq(string(catalog.WeaponGrenade)) {
				return false
			}
		} else if !def.HasPrereq(string(w)) {
			return false
		}
	}

	if item.HasCategory(catalog.CategoryPowerArmor) && !def.HasPrereq(catalog.PrereqPowerArmor) {
		return false
	}
	if item.HasCategory(catalog.CategoryUpgrades) && !def.HasPrereq(catalog.PrereqUpgrades) {
		return false
	}

	for _, cat := range catalog.AccessCategories {
		if item.HasCategory(cat) && !def.HasAccess(cat) {
			return false
		}
	}

	if def.HasFaction(superMutantsFaction) || faction == superMutantsFaction {
		if (item.HasCategory(catalog.CategoryArmor) || item.HasCategory(catalog.CategoryClothes)) &&
			!item.HasCategory(catalog.CategorySuperMutantItems) {
			return false
		}
	}

	return true
}

// AvailableItems filters the whole catalog down to the non-mod cards the
// unit may take right now, under current roster state.
func (e *Engine) AvailableItems(r *roster.Roster, u *roster.Unit) []*catalog.CardDefinition {
	faction := r.EffectiveFaction(e.cat, u)
	hasPowerArmor := u.HasPowerArmor(e.cat)

	var available []*catalog.CardDefinition
	for _, item := range e.cat.Items() {
		if item.IsMod {
			continue
		}
		if hasPowerArmor && powerArmorIncompatible[strings.ToLower(item.Name)] {
			continue
		}
		if item.HasCategory(catalog.CategoryArmor) && u.HasCategory(e.cat, catalog.CategoryArmor) {
			continue
		}
		if item.HasCategory(catalog.CategoryClothes) && u.HasCategory(e.cat, catalog.CategoryClothes) {
			continue
		}
		if item.HasCategory(catalog.CategoryPerks) && u.HasPerk(e.cat) {
			continue
		}
		if item.HasCategory(catalog.CategoryLeader) {
			if u.HasLeader(e.cat) || r.LeaderTaken {
				continue
			}
		}
		if item.Unique && r.ItemCount(item.ID) > 0 {
			continue
		}
		if limit := item.FactionLimit(faction); limit > 0 && r.ItemCount(item.ID) >= limit {
			continue
		}
		if !e.IsItemAllowedForUnit(u, item, faction) {
			continue
		}
		available = append(available, item)
	}

	return available
}

// IsItemAvailable reports whether a specific card is in the unit's available
// set right now. Mutations call this freshly instead of trusting a list
// computed earlier.
func (e *Engine) IsItemAvailable(r *roster.Roster, u *roster.Unit, itemID string) bool {
	for _, item := range e.AvailableItems(r, u) {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, entry := range list {
		if entry == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, entry := range a {
		if containsString(b, entry) {
			return true
		}
	}
	return false
}
