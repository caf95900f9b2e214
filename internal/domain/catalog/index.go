package catalog

import (
	"sort"
	"sync"
)

// Catalog is the query-ready card/unit index. It is built once at startup and
// treated as read-only afterwards; methods are safe for concurrent use.
type Catalog struct {
	units []*UnitDefinition
	items []*CardDefinition

	unitsByID   map[string]*UnitDefinition
	itemsByID   map[string]*CardDefinition
	itemsByName map[string]string // exact lowercase name -> id

	// fuzzy name lookup is built lazily on first resolution request
	fuzzyOnce  sync.Once
	fuzzyNames map[string]string
}

// New builds a catalog from normalized definitions and resolves every unit's
// default-equipped references to card ids. References that match nothing are
// dropped.
func New(units []UnitDefinition, items []CardDefinition) *Catalog {
	c := &Catalog{
		unitsByID:   make(map[string]*UnitDefinition, len(units)),
		itemsByID:   make(map[string]*CardDefinition, len(items)),
		itemsByName: make(map[string]string, len(items)),
	}

	for i := range items {
		item := &items[i]
		c.items = append(c.items, item)
		if item.ID != "" {
			c.itemsByID[item.ID] = item
		}
		if key := NormalizeNameKey(item.Name); key != "" {
			c.itemsByName[key] = item.ID
		}
	}

	for i := range units {
		unit := &units[i]
		c.units = append(c.units, unit)
		if unit.ID != "" {
			c.unitsByID[unit.ID] = unit
		}
		for _, ref := range unit.Equipped {
			if item := c.ResolveItemReference(ref); item != nil {
				unit.EquippedIDs = append(unit.EquippedIDs, item.ID)
			}
		}
	}

	return c
}

// Units returns every unit definition in catalog order.
func (c *Catalog) Units() []*UnitDefinition {
	return c.units
}

// Items returns every card definition in catalog order.
func (c *Catalog) Items() []*CardDefinition {
	return c.items
}

// Unit returns a unit definition by id, or nil.
func (c *Catalog) Unit(id string) *UnitDefinition {
	if id == "" {
		return nil
	}
	return c.unitsByID[id]
}

// UnitOrPlaceholder returns a unit definition by id, or a degraded
// placeholder (id as name, zero cost, no factions) so a roster referencing a
// unit missing from the current catalog stays usable.
func (c *Catalog) UnitOrPlaceholder(id string) *UnitDefinition {
	if unit := c.Unit(id); unit != nil {
		return unit
	}
	return &UnitDefinition{
		ID:     id,
		Name:   id,
		Prereq: map[string]bool{},
		Access: map[Category]bool{},
	}
}

// Item returns a card definition by id, or nil.
func (c *Catalog) Item(id string) *CardDefinition {
	if id == "" {
		return nil
	}
	return c.itemsByID[id]
}

// ItemIDByName resolves an exact (case-insensitive) card name to its id.
func (c *Catalog) ItemIDByName(name string) (string, bool) {
	key := NormalizeNameKey(name)
	if key == "" {
		return "", false
	}
	id, ok := c.itemsByName[key]
	return id, ok
}

// ResolveItemReference resolves a normalized reference to a card: direct id
// match first, then exact name, then the fuzzy name/alias map. Returns nil
// when nothing matches.
func (c *Catalog) ResolveItemReference(ref Reference) *CardDefinition {
	if ref.ID != "" {
		if item, ok := c.itemsByID[ref.ID]; ok {
			return item
		}
	}

	for _, candidate := range []string{ref.Name, ref.ID} {
		if candidate == "" {
			continue
		}
		if id, ok := c.itemsByName[NormalizeNameKey(candidate)]; ok {
			return c.itemsByID[id]
		}
		if id, ok := c.fuzzyNameMap()[NormalizeLookupKey(candidate)]; ok {
			return c.itemsByID[id]
		}
	}

	return nil
}

// Factions returns the sorted union of every unit's factions.
func (c *Catalog) Factions() []string {
	seen := make(map[string]bool)
	var factions []string
	for _, unit := range c.units {
		for _, f := range unit.Factions {
			if !seen[f] {
				seen[f] = true
				factions = append(factions, f)
			}
		}
	}
	sort.Strings(factions)
	return factions
}

func (c *Catalog) fuzzyNameMap() map[string]string {
	c.fuzzyOnce.Do(func() {
		c.fuzzyNames = make(map[string]string, len(c.items)*2)
		for _, item := range c.items {
			for _, key := range []string{NormalizeNameKey(item.Name), NormalizeLookupKey(item.Name)} {
				if key != "" {
					c.fuzzyNames[key] = item.ID
				}
			}
			for _, alias := range item.Aliases {
				if key := NormalizeLookupKey(alias); key != "" {
					c.fuzzyNames[key] = item.ID
				}
			}
		}
	})
	return c.fuzzyNames
}
