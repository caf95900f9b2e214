package api

import (
	"net/http"
	"strconv"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	"github.com/wastelandforge/warband/internal/services/warband"
)

// RosterHandler serves roster CRUD and the build mutations.
type RosterHandler struct {
	Service warband.Service
	Catalog *catalog.Catalog
}

func NewRosterHandler(svc warband.Service, cat *catalog.Catalog) *RosterHandler {
	if svc == nil {
		panic("service is required")
	}
	if cat == nil {
		panic("catalog is required")
	}
	return &RosterHandler{Service: svc, Catalog: cat}
}

type createRosterRequest struct {
	Name        string `json:"name"`
	Faction     string `json:"faction"`
	PointsLimit int    `json:"pointsLimit"`
	ModelsLimit int    `json:"modelsLimit"`
}

type updateRosterRequest struct {
	Name        *string `json:"name"`
	Faction     *string `json:"faction"`
	PointsLimit *int    `json:"pointsLimit"`
	ModelsLimit *int    `json:"modelsLimit"`
}

type pickUnitRequest struct {
	UnitID string `json:"unitId"`
}

type addItemRequest struct {
	ItemID string `json:"itemId"`
}

type applyModRequest struct {
	ModID string `json:"modId"`
}

type moveCardRequest struct {
	To *int `json:"to"`
}

// Create handles POST /api/rosters.
func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRosterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rst, err := h.Service.CreateRoster(r.Context(), &warband.CreateRosterInput{
		Name:        req.Name,
		Faction:     req.Faction,
		PointsLimit: req.PointsLimit,
		ModelsLimit: req.ModelsLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newRosterView(h.Catalog, rst))
}

// List handles GET /api/rosters.
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	rosters, err := h.Service.ListRosters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterViews(h.Catalog, rosters))
}

// Get handles GET /api/rosters/{id}.
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	rst, err := h.Service.GetRoster(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// Update handles PATCH /api/rosters/{id}.
func (h *RosterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRosterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rst, err := h.Service.UpdateRosterMeta(r.Context(), &warband.UpdateRosterMetaInput{
		RosterID:    r.PathValue("id"),
		Name:        req.Name,
		Faction:     req.Faction,
		PointsLimit: req.PointsLimit,
		ModelsLimit: req.ModelsLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// Delete handles DELETE /api/rosters/{id}.
func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteRoster(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PickUnit handles POST /api/rosters/{id}/units.
func (h *RosterHandler) PickUnit(w http.ResponseWriter, r *http.Request) {
	var req pickUnitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.Service.PickUnit(r.Context(), &warband.PickUnitInput{
		RosterID: r.PathValue("id"),
		UnitID:   req.UnitID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newUnitView(h.Catalog, out.Roster, out.Unit))
}

// DuplicateUnit handles POST /api/rosters/{id}/units/{uid}/duplicate.
func (h *RosterHandler) DuplicateUnit(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.DuplicateUnit(r.Context(), &warband.DuplicateUnitInput{
		RosterID: r.PathValue("id"),
		UnitUID:  r.PathValue("uid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newUnitView(h.Catalog, out.Roster, out.Unit))
}

// RemoveUnit handles DELETE /api/rosters/{id}/units/{uid}.
func (h *RosterHandler) RemoveUnit(w http.ResponseWriter, r *http.Request) {
	rst, err := h.Service.RemoveUnit(r.Context(), &warband.RemoveUnitInput{
		RosterID: r.PathValue("id"),
		UnitUID:  r.PathValue("uid"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// AddItem handles POST /api/rosters/{id}/units/{uid}/cards.
func (h *RosterHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rst, err := h.Service.AddItem(r.Context(), &warband.AddItemInput{
		RosterID: r.PathValue("id"),
		UnitUID:  r.PathValue("uid"),
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// RemoveItem handles DELETE /api/rosters/{id}/units/{uid}/cards/{index}.
func (h *RosterHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	rst, err := h.Service.RemoveItem(r.Context(), &warband.RemoveItemInput{
		RosterID:  r.PathValue("id"),
		UnitUID:   r.PathValue("uid"),
		SlotIndex: index,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// ApplyMod handles PUT /api/rosters/{id}/units/{uid}/cards/{index}/mod.
func (h *RosterHandler) ApplyMod(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req applyModRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rst, err := h.Service.ApplyMod(r.Context(), &warband.ApplyModInput{
		RosterID:  r.PathValue("id"),
		UnitUID:   r.PathValue("uid"),
		SlotIndex: index,
		ModID:     req.ModID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// ApplyModAuto handles POST /api/rosters/{id}/units/{uid}/mods. The target
// slot is picked automatically when unambiguous.
func (h *RosterHandler) ApplyModAuto(w http.ResponseWriter, r *http.Request) {
	var req applyModRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.Service.ApplyModFromCatalog(r.Context(), &warband.ApplyModFromCatalogInput{
		RosterID: r.PathValue("id"),
		UnitUID:  r.PathValue("uid"),
		ModID:    req.ModID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		SlotIndex int        `json:"slotIndex"`
		Roster    rosterView `json:"roster"`
	}{
		SlotIndex: out.SlotIndex,
		Roster:    newRosterView(h.Catalog, out.Roster),
	})
}

// RemoveMod handles DELETE /api/rosters/{id}/units/{uid}/cards/{index}/mod.
func (h *RosterHandler) RemoveMod(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	rst, err := h.Service.RemoveMod(r.Context(), &warband.RemoveModInput{
		RosterID:  r.PathValue("id"),
		UnitUID:   r.PathValue("uid"),
		SlotIndex: index,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// MoveCard handles POST /api/rosters/{id}/units/{uid}/cards/{index}/move.
func (h *RosterHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req moveCardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rst, err := h.Service.ReorderCard(r.Context(), &warband.ReorderCardInput{
		RosterID:  r.PathValue("id"),
		UnitUID:   r.PathValue("uid"),
		FromIndex: index,
		ToIndex:   req.To,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

// AvailableItems handles GET /api/rosters/{id}/units/{uid}/available-items.
func (h *RosterHandler) AvailableItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.AvailableItems(r.Context(), r.PathValue("id"), r.PathValue("uid"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newCardDefViews(items))
}

// AvailableMods handles GET /api/rosters/{id}/units/{uid}/cards/{index}/available-mods.
func (h *RosterHandler) AvailableMods(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	mods, err := h.Service.AvailableMods(r.Context(), r.PathValue("id"), r.PathValue("uid"), index)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newCardDefViews(mods))
}

// Export handles GET /api/rosters/{id}/export. The payload round-trips
// through Import unchanged.
func (h *RosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.ExportRoster(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Import handles POST /api/rosters/import. The body is a roster snapshot;
// legacy save formats are accepted.
func (h *RosterHandler) Import(w http.ResponseWriter, r *http.Request) {
	var snap roster.Snapshot
	if !decodeBody(w, r, &snap) {
		return
	}

	rst, err := h.Service.ImportRoster(r.Context(), &warband.ImportRosterInput{Snapshot: &snap})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newRosterView(h.Catalog, rst))
}

// ImportInto handles PUT /api/rosters/{id}/import, replacing an existing
// roster with the snapshot body.
func (h *RosterHandler) ImportInto(w http.ResponseWriter, r *http.Request) {
	var snap roster.Snapshot
	if !decodeBody(w, r, &snap) {
		return
	}

	rst, err := h.Service.ImportRoster(r.Context(), &warband.ImportRosterInput{
		RosterID: r.PathValue("id"),
		Snapshot: &snap,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newRosterView(h.Catalog, rst))
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, apperrors.InvalidArgument("invalid slot index"))
		return 0, false
	}
	return index, true
}
