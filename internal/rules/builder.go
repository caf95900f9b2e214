package rules

import (
	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	"github.com/wastelandforge/warband/internal/uuid"
)

// Builder is the mutation API over a roster. Every mutation validates first
// and mutates second: a rejected call leaves the roster untouched, and a
// successful one leaves every roster invariant holding.
type Builder struct {
	engine *Engine
	cat    *catalog.Catalog
	gen    uuid.Generator
}

// NewBuilder creates a mutation builder over the given catalog.
func NewBuilder(cat *catalog.Catalog, gen uuid.Generator) *Builder {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &Builder{
		engine: NewEngine(cat),
		cat:    cat,
		gen:    gen,
	}
}

// Engine returns the eligibility engine the builder validates with.
func (b *Builder) Engine() *Engine {
	return b.engine
}

// PickUnit places a new unit in the roster: unique and model-limit checks,
// faction frozen at add time, default equipment resolved into locked slots.
func (b *Builder) PickUnit(r *roster.Roster, defID string) (*roster.Unit, error) {
	def := b.cat.Unit(defID)
	if def == nil {
		return nil, apperrors.NotFoundf("unit '%s' not found in catalog", defID)
	}

	if def.Unique && r.HasUnitDef(def.ID) {
		return nil, apperrors.AlreadyExistsf("unique unit '%s' is already in the roster", def.Name).
			WithMeta("unit_id", def.ID)
	}
	if r.ModelsLimit > 0 && len(r.Units)+1 > r.ModelsLimit {
		return nil, apperrors.LimitExceededf("model limit of %d reached", r.ModelsLimit)
	}

	faction := r.Faction
	if faction == "" {
		faction = def.SoleFaction()
	}

	unit := &roster.Unit{
		UID:     uuid.InstanceID(b.gen, def.ID),
		DefID:   def.ID,
		Faction: faction,
	}
	for _, itemID := range def.EquippedIDs {
		unit.Cards = append(unit.Cards, roster.CardSlot{ItemID: itemID, Locked: true})
	}

	r.Units = append(r.Units, unit)
	r.RecomputeLeaderFlag(b.cat)

	return unit, nil
}

// DuplicateUnit deep-copies a placed unit under a fresh instance id,
// preserving every slot, lock flag and attached mod.
func (b *Builder) DuplicateUnit(r *roster.Roster, uid string) (*roster.Unit, error) {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return nil, apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}

	def := b.cat.UnitOrPlaceholder(unit.DefID)
	if def.Unique {
		return nil, apperrors.AlreadyExistsf("unique unit '%s' cannot be duplicated", def.Name).
			WithMeta("unit_id", def.ID)
	}
	if r.ModelsLimit > 0 && len(r.Units)+1 > r.ModelsLimit {
		return nil, apperrors.LimitExceededf("model limit of %d reached", r.ModelsLimit)
	}

	copied := unit.Clone(uuid.InstanceID(b.gen, unit.DefID))
	r.Units = append(r.Units, copied)
	r.RecomputeLeaderFlag(b.cat)

	return copied, nil
}

// RemoveUnit removes a placed unit. Removing an absent unit is a no-op.
func (b *Builder) RemoveUnit(r *roster.Roster, uid string) {
	kept := r.Units[:0]
	for _, u := range r.Units {
		if u.UID != uid {
			kept = append(kept, u)
		}
	}
	r.Units = kept
	r.RecomputeLeaderFlag(b.cat)
}

// AddItem equips a card on a unit after re-running the full availability
// check against current roster state. The check is never cached: a card
// another unit just claimed is caught here.
func (b *Builder) AddItem(r *roster.Roster, uid, itemID string) error {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}

	item := b.cat.Item(itemID)
	if item == nil {
		return apperrors.NotFoundf("card '%s' not found in catalog", itemID)
	}
	if item.IsMod {
		return apperrors.InvalidArgumentf("card '%s' is a mod; attach it to a slot instead", item.Name)
	}

	if !b.engine.IsItemAvailable(r, unit, item.ID) {
		return apperrors.Ineligiblef("card '%s' is not available for this unit", item.Name).
			WithMeta("item_id", item.ID)
	}

	unit.Cards = append(unit.Cards, roster.CardSlot{ItemID: item.ID})
	r.RecomputeLeaderFlag(b.cat)

	return nil
}

// RemoveItem splices an unlocked slot out of the unit. Attempts to remove a
// locked slot are silent no-ops: default equipment is bonded to the unit.
func (b *Builder) RemoveItem(r *roster.Roster, uid string, index int) error {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}
	if index < 0 || index >= len(unit.Cards) {
		return apperrors.InvalidArgumentf("slot %d does not exist", index)
	}
	if unit.Cards[index].Locked {
		return nil
	}

	unit.Cards = append(unit.Cards[:index], unit.Cards[index+1:]...)
	r.RecomputeLeaderFlag(b.cat)

	return nil
}

// ApplyMod attaches a mod to a specific slot after checking it against the
// slot's available mods at call time. Leader state is untouched: only base
// cards are scanned for Leader.
func (b *Builder) ApplyMod(r *roster.Roster, uid string, index int, modID string) error {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}
	if index < 0 || index >= len(unit.Cards) {
		return apperrors.InvalidArgumentf("slot %d does not exist", index)
	}

	slot := &unit.Cards[index]
	base := b.cat.Item(slot.ItemID)
	mod := b.cat.Item(modID)
	if mod == nil {
		return apperrors.NotFoundf("mod '%s' not found in catalog", modID)
	}

	for _, candidate := range b.engine.AvailableModsForSlot(r, unit, slot, base) {
		if candidate.ID == mod.ID {
			slot.ModID = mod.ID
			return nil
		}
	}

	return apperrors.Ineligiblef("mod '%s' cannot attach to this slot", mod.Name).
		WithMeta("mod_id", mod.ID)
}

// ApplyModFromCatalog attaches a mod chosen from the catalog browse, picking
// the target slot automatically: a sole candidate slot wins, then a sole
// candidate without an existing mod. Anything less clear-cut is rejected as
// ambiguous rather than guessed; the error metadata carries the candidate
// base card names so the caller can ask. Returns the chosen slot index.
func (b *Builder) ApplyModFromCatalog(r *roster.Roster, uid, modID string) (int, error) {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return 0, apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}

	mod := b.cat.Item(modID)
	if mod == nil {
		return 0, apperrors.NotFoundf("mod '%s' not found in catalog", modID)
	}
	if !mod.IsMod {
		return 0, apperrors.InvalidArgumentf("card '%s' is not a mod", mod.Name)
	}

	targets := b.engine.ModTargetsForUnit(r, unit, mod)
	if len(targets) == 0 {
		return 0, apperrors.Ineligiblef("no card on this unit can take mod '%s'", mod.Name).
			WithMeta("mod_id", mod.ID)
	}

	chosen := -1
	if len(targets) == 1 {
		chosen = targets[0].SlotIndex
	} else {
		// Auto-select only when exactly one candidate slot is still empty.
		empty := -1
		emptyCount := 0
		for _, target := range targets {
			if unit.Cards[target.SlotIndex].ModID == "" {
				empty = target.SlotIndex
				emptyCount++
			}
		}
		if emptyCount == 1 {
			chosen = empty
		}
	}

	if chosen < 0 {
		var names []string
		for _, target := range targets {
			names = append(names, target.Base.Name)
		}
		return 0, apperrors.AmbiguousTarget("mod fits more than one card; pick a slot explicitly").
			WithMeta("mod_id", mod.ID).
			WithMeta("candidates", names)
	}

	return chosen, b.ApplyMod(r, uid, chosen, mod.ID)
}

// RemoveMod detaches the slot's mod. Removing from a slot without a mod is a
// no-op; locked slots may still have their mod removed.
func (b *Builder) RemoveMod(r *roster.Roster, uid string, index int) error {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}
	if index < 0 || index >= len(unit.Cards) {
		return apperrors.InvalidArgumentf("slot %d does not exist", index)
	}

	unit.Cards[index].ModID = ""

	return nil
}

// ReorderCard moves a slot within the unit's card list. A nil or overflowing
// target index means "move to the end"; an out-of-range source index is a
// no-op. No derived value changes.
func (b *Builder) ReorderCard(r *roster.Roster, uid string, fromIndex int, toIndex *int) error {
	unit := r.UnitByUID(uid)
	if unit == nil {
		return apperrors.NotFoundf("unit '%s' not found in roster", uid)
	}
	if fromIndex < 0 || fromIndex >= len(unit.Cards) {
		return nil
	}

	entry := unit.Cards[fromIndex]
	cards := append(unit.Cards[:fromIndex], unit.Cards[fromIndex+1:]...)

	if toIndex == nil {
		unit.Cards = append(cards, entry)
		return nil
	}

	insert := *toIndex
	if insert >= len(cards) {
		unit.Cards = append(cards, entry)
		return nil
	}
	if fromIndex < insert {
		// The removal shifted everything after fromIndex left by one.
		insert--
	}
	if insert < 0 {
		insert = 0
	}

	cards = append(cards, roster.CardSlot{})
	copy(cards[insert+1:], cards[insert:])
	cards[insert] = entry
	unit.Cards = cards

	return nil
}

// Restore rebuilds a roster from a snapshot, generating instance ids for
// unit entries that lack one.
func (b *Builder) Restore(snap *roster.Snapshot) *roster.Roster {
	return roster.FromSnapshot(snap, b.cat, func(defID string) string {
		return uuid.InstanceID(b.gen, defID)
	})
}
