package api

import (
	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
)

// unitDefView is the API projection of a catalog unit.
type unitDefView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Factions []string `json:"factions"`
	Unique   bool     `json:"unique"`
	Equipped []string `json:"equipped,omitempty"`
}

// cardDefView is the API projection of a catalog card.
type cardDefView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cost        int      `json:"cost"`
	Unique      bool     `json:"unique"`
	IsMod       bool     `json:"isMod"`
	ModType     string   `json:"modType,omitempty"`
	Weapons     []string `json:"weapons,omitempty"`
	Groups      []string `json:"groups,omitempty"`
	Factions    []string `json:"factions,omitempty"`
	SpecialBars bool     `json:"specialBars,omitempty"`
}

// cardSlotView is the API projection of an equipped card slot.
type cardSlotView struct {
	Index    int    `json:"index"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName,omitempty"`
	ModID    string `json:"modId,omitempty"`
	ModName  string `json:"modName,omitempty"`
	Locked   bool   `json:"locked"`
}

// unitView is the API projection of a placed unit. PrintOrder lists the
// unit's slot indices in card-sheet order for print layouts.
type unitView struct {
	UID        string         `json:"uid"`
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Faction    string         `json:"faction,omitempty"`
	Points     int            `json:"points"`
	Cards      []cardSlotView `json:"cards"`
	PrintOrder []int          `json:"printOrder,omitempty"`
}

// rosterView is the API projection of a roster with its derived totals.
type rosterView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Faction     string     `json:"faction,omitempty"`
	PointsLimit int        `json:"pointsLimit"`
	ModelsLimit int        `json:"modelsLimit"`
	Points      int        `json:"points"`
	Models      int        `json:"models"`
	LeaderTaken bool       `json:"leaderTaken"`
	Units       []unitView `json:"units"`
}

func newUnitDefView(u *catalog.UnitDefinition) unitDefView {
	return unitDefView{
		ID:       u.ID,
		Name:     u.Name,
		Cost:     u.Cost,
		Factions: u.Factions,
		Unique:   u.Unique,
		Equipped: u.EquippedIDs,
	}
}

func newCardDefView(c *catalog.CardDefinition) cardDefView {
	var weapons []string
	for _, w := range catalog.WeaponTypes {
		if c.Weapons[w] {
			weapons = append(weapons, string(w))
		}
	}

	var groups []string
	for _, g := range catalog.Groups {
		if c.Groups[g] {
			groups = append(groups, string(g))
		}
	}

	modType := ""
	if c.ModType != catalog.ModTypeNone {
		modType = string(c.ModType)
	}

	return cardDefView{
		ID:          c.ID,
		Name:        c.Name,
		Cost:        c.Cost,
		Unique:      c.Unique,
		IsMod:       c.IsMod,
		ModType:     modType,
		Weapons:     weapons,
		Groups:      groups,
		Factions:    c.Factions,
		SpecialBars: c.HasSpecialBars(),
	}
}

func newCardDefViews(cards []*catalog.CardDefinition) []cardDefView {
	views := make([]cardDefView, 0, len(cards))
	for _, c := range cards {
		views = append(views, newCardDefView(c))
	}
	return views
}

func newUnitView(cat *catalog.Catalog, rst *roster.Roster, u *roster.Unit) unitView {
	name := u.DefID
	if def := cat.Unit(u.DefID); def != nil {
		name = def.Name
	}

	cards := make([]cardSlotView, 0, len(u.Cards))
	for i, slot := range u.Cards {
		cv := cardSlotView{
			Index:  i,
			ItemID: slot.ItemID,
			ModID:  slot.ModID,
			Locked: slot.Locked,
		}
		if item := cat.Item(slot.ItemID); item != nil {
			cv.ItemName = item.Name
		}
		if mod := cat.Item(slot.ModID); mod != nil {
			cv.ModName = mod.Name
		}
		cards = append(cards, cv)
	}

	return unitView{
		UID:        u.UID,
		ID:         u.DefID,
		Name:       name,
		Faction:    rst.EffectiveFaction(cat, u),
		Points:     u.Points(cat),
		Cards:      cards,
		PrintOrder: u.PrintOrder(cat),
	}
}

func newRosterView(cat *catalog.Catalog, rst *roster.Roster) rosterView {
	units := make([]unitView, 0, len(rst.Units))
	for _, u := range rst.Units {
		units = append(units, newUnitView(cat, rst, u))
	}

	return rosterView{
		ID:          rst.ID,
		Name:        rst.Name,
		Faction:     rst.Faction,
		PointsLimit: rst.PointsLimit,
		ModelsLimit: rst.ModelsLimit,
		Points:      rst.Points(cat),
		Models:      len(rst.Units),
		LeaderTaken: rst.LeaderTaken,
		Units:       units,
	}
}

func newRosterViews(cat *catalog.Catalog, rosters []*roster.Roster) []rosterView {
	views := make([]rosterView, 0, len(rosters))
	for _, rst := range rosters {
		views = append(views, newRosterView(cat, rst))
	}
	return views
}
