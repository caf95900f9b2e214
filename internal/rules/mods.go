package rules

import (
	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
)

// AvailableModsForSlot filters the catalog's mod cards down to those that may
// attach to the given slot right now: the mod must target the base card's
// slot type, must not be a second copy of a unique card (reassigning the
// slot's own mod is always allowed), and must pass the unit's eligibility
// gates.
func (e *Engine) AvailableModsForSlot(r *roster.Roster, u *roster.Unit, slot *roster.CardSlot, base *catalog.CardDefinition) []*catalog.CardDefinition {
	if base == nil {
		return nil
	}
	faction := r.EffectiveFaction(e.cat, u)

	var mods []*catalog.CardDefinition
	for _, item := range e.cat.Items() {
		if !item.IsMod {
			continue
		}
		if !item.TargetsModType(base.ModType) {
			continue
		}
		if item.Unique && slot.ModID != item.ID && r.ItemCount(item.ID) > 0 {
			continue
		}
		if !e.IsItemAllowedForUnit(u, item, faction) {
			continue
		}
		mods = append(mods, item)
	}

	return mods
}

// AvailableModCatalog lists the mod cards a unit could take at all under its
// eligibility gates, ignoring slot targeting. This backs the mod-cards
// catalog browse.
func (e *Engine) AvailableModCatalog(r *roster.Roster, u *roster.Unit) []*catalog.CardDefinition {
	faction := r.EffectiveFaction(e.cat, u)

	var mods []*catalog.CardDefinition
	for _, item := range e.cat.Items() {
		if !item.IsMod {
			continue
		}
		if !e.IsItemAllowedForUnit(u, item, faction) {
			continue
		}
		mods = append(mods, item)
	}

	return mods
}

// CanAddMod reports whether the base card can take mods at all: it must
// resolve to a slot type and at least one mod in the catalog must target that
// type. Current eligibility of those mods is not considered; this only
// decides whether a mod affordance makes sense for the slot.
func (e *Engine) CanAddMod(base *catalog.CardDefinition) bool {
	if base == nil || base.ModType == catalog.ModTypeNone {
		return false
	}
	for _, item := range e.cat.Items() {
		if item.IsMod && item.TargetsModType(base.ModType) {
			return true
		}
	}
	return false
}

// ModTarget is a candidate slot for a catalog-driven mod application.
type ModTarget struct {
	SlotIndex int
	Base      *catalog.CardDefinition
}

// ModTargetsForUnit finds the slots on the unit a given mod could attach to:
// the base card must have a slot type the mod targets, and a unique mod must
// not already be in use elsewhere.
func (e *Engine) ModTargetsForUnit(r *roster.Roster, u *roster.Unit, mod *catalog.CardDefinition) []ModTarget {
	if mod == nil || !mod.IsMod {
		return nil
	}

	var targets []ModTarget
	for i := range u.Cards {
		slot := &u.Cards[i]
		base := e.cat.Item(slot.ItemID)
		if base == nil || base.ModType == catalog.ModTypeNone {
			continue
		}
		if !mod.TargetsModType(base.ModType) {
			continue
		}
		if mod.Unique && slot.ModID != mod.ID && r.ItemCount(mod.ID) > 0 {
			continue
		}
		targets = append(targets, ModTarget{SlotIndex: i, Base: base})
	}

	return targets
}
