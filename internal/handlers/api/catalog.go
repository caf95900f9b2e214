package api

import (
	"net/http"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	apperrors "github.com/wastelandforge/warband/internal/errors"
)

// CatalogHandler serves the read-only card and unit catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	if cat == nil {
		panic("catalog is required")
	}
	return &CatalogHandler{Catalog: cat}
}

// ListUnits returns catalog units, optionally filtered by ?faction=.
func (h *CatalogHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	faction := r.URL.Query().Get("faction")

	views := []unitDefView{}
	for _, u := range h.Catalog.Units() {
		if faction != "" && !u.HasFaction(faction) {
			continue
		}
		views = append(views, newUnitDefView(u))
	}

	writeJSON(w, http.StatusOK, views)
}

// GetUnit returns a single catalog unit by id.
func (h *CatalogHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	unit := h.Catalog.Unit(id)
	if unit == nil {
		writeError(w, apperrors.NotFoundf("unit '%s' not found", id))
		return
	}

	writeJSON(w, http.StatusOK, newUnitDefView(unit))
}

// ListItems returns catalog cards, filtered by ?group=, ?weapon=, ?faction=
// and ?mods= (true/false).
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	group := catalog.Group(q.Get("group"))
	weapon := catalog.WeaponType(q.Get("weapon"))
	faction := q.Get("faction")
	mods := q.Get("mods")

	views := []cardDefView{}
	for _, item := range h.Catalog.Items() {
		if group != "" && !item.Groups[group] {
			continue
		}
		if weapon != "" && !item.HasWeapon(weapon) {
			continue
		}
		if faction != "" && len(item.Factions) > 0 && !containsString(item.Factions, faction) {
			continue
		}
		if mods == "true" && !item.IsMod {
			continue
		}
		if mods == "false" && item.IsMod {
			continue
		}
		views = append(views, newCardDefView(item))
	}

	writeJSON(w, http.StatusOK, views)
}

// GetItem returns a single catalog card. The path value may be an id or a
// card name; names go through the fuzzy resolver.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")

	item := h.Catalog.Item(ref)
	if item == nil {
		item = h.Catalog.ResolveItemReference(catalog.Reference{Name: ref})
	}
	if item == nil {
		writeError(w, apperrors.NotFoundf("item '%s' not found", ref))
		return
	}

	writeJSON(w, http.StatusOK, newCardDefView(item))
}

// ListFactions returns every faction mentioned by a catalog unit.
func (h *CatalogHandler) ListFactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Factions())
}

// ListGroups returns the picker group vocabulary in display order.
func (h *CatalogHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Groups)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
