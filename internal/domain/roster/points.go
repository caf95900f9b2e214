package roster

import (
	"github.com/wastelandforge/warband/internal/domain/catalog"
)

// Points is the unit's total cost: definition cost plus every base card and
// attached mod. Cards missing from the catalog count as zero.
func (u *Unit) Points(cat *catalog.Catalog) int {
	def := cat.Unit(u.DefID)
	total := 0
	if def != nil {
		total = def.Cost
	}
	for _, slot := range u.Cards {
		if base := cat.Item(slot.ItemID); base != nil {
			total += base.Cost
		}
		if slot.ModID != "" {
			if mod := cat.Item(slot.ModID); mod != nil {
				total += mod.Cost
			}
		}
	}
	return total
}

// ItemCount is the number of physical cards on the unit: one per slot plus
// one per attached mod.
func (u *Unit) ItemCount() int {
	count := 0
	for _, slot := range u.Cards {
		count++
		if slot.ModID != "" {
			count++
		}
	}
	return count
}

// HasCategory reports whether any base card on the unit carries the category.
func (u *Unit) HasCategory(cat *catalog.Catalog, category catalog.Category) bool {
	for _, slot := range u.Cards {
		if cat.Item(slot.ItemID).HasCategory(category) {
			return true
		}
	}
	return false
}

// HasPowerArmor reports whether the unit has a power armor card equipped.
func (u *Unit) HasPowerArmor(cat *catalog.Catalog) bool {
	return u.HasCategory(cat, catalog.CategoryPowerArmor)
}

// HasPerk reports whether the unit has any perk card equipped.
func (u *Unit) HasPerk(cat *catalog.Catalog) bool {
	return u.HasCategory(cat, catalog.CategoryPerks)
}

// HasLeader reports whether the unit has a Leader card equipped.
func (u *Unit) HasLeader(cat *catalog.Catalog) bool {
	return u.HasCategory(cat, catalog.CategoryLeader)
}

// Points is the roster's total point cost.
func (r *Roster) Points(cat *catalog.Catalog) int {
	total := 0
	for _, u := range r.Units {
		total += u.Points(cat)
	}
	return total
}

// ItemCount counts roster-wide occurrences of a card id across base slots
// and mod slots. The same id held as a base card on one unit and as a mod on
// another counts twice: they are physically different copies.
func (r *Roster) ItemCount(itemID string) int {
	total := 0
	for _, u := range r.Units {
		for _, slot := range u.Cards {
			if slot.ItemID == itemID {
				total++
			}
		}
		for _, slot := range u.Cards {
			if slot.ModID == itemID {
				total++
			}
		}
	}
	return total
}

// RecomputeLeaderFlag rescans every base slot for the Leader category and
// updates LeaderTaken. Mod slots are deliberately not scanned; a Leader mod
// card, should the catalog ever grow one, would not claim the roster's
// leader slot.
func (r *Roster) RecomputeLeaderFlag(cat *catalog.Catalog) {
	for _, u := range r.Units {
		for _, slot := range u.Cards {
			if cat.Item(slot.ItemID).HasCategory(catalog.CategoryLeader) {
				r.LeaderTaken = true
				return
			}
		}
	}
	r.LeaderTaken = false
}

// PrintOrder returns the unit's slot indices in card-sheet order: the first
// power armor card leads, everything else follows in slot order. Slots whose
// card is missing from the catalog are skipped.
func (u *Unit) PrintOrder(cat *catalog.Catalog) []int {
	power := -1
	var others []int
	for i, slot := range u.Cards {
		item := cat.Item(slot.ItemID)
		if item == nil {
			continue
		}
		if item.HasCategory(catalog.CategoryPowerArmor) && power < 0 {
			power = i
		} else {
			others = append(others, i)
		}
	}
	if power < 0 {
		return others
	}
	return append([]int{power}, others...)
}
