package warband

import (
	"context"

	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
	rosterRepo "github.com/wastelandforge/warband/internal/repositories/rosters"
	"github.com/wastelandforge/warband/internal/rules"
	"github.com/wastelandforge/warband/internal/uuid"
)

// Repository is an alias for the roster repository interface
type Repository = rosterRepo.Repository

// Service defines the warband building service interface. Every mutation
// loads the roster, applies the change through the rules builder and saves
// the result; a rejected change is never persisted.
type Service interface {
	// CreateRoster creates a new empty roster
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*roster.Roster, error)

	// GetRoster retrieves a roster by ID
	GetRoster(ctx context.Context, rosterID string) (*roster.Roster, error)

	// ListRosters lists every stored roster
	ListRosters(ctx context.Context) ([]*roster.Roster, error)

	// DeleteRoster removes a roster
	DeleteRoster(ctx context.Context, rosterID string) error

	// UpdateRosterMeta updates name, faction and limits. The faction cannot
	// change once units have been placed.
	UpdateRosterMeta(ctx context.Context, input *UpdateRosterMetaInput) (*roster.Roster, error)

	// PickUnit places a catalog unit in the roster
	PickUnit(ctx context.Context, input *PickUnitInput) (*PickUnitOutput, error)

	// DuplicateUnit deep-copies a placed unit
	DuplicateUnit(ctx context.Context, input *DuplicateUnitInput) (*PickUnitOutput, error)

	// RemoveUnit removes a placed unit
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*roster.Roster, error)

	// AddItem equips a card on a unit
	AddItem(ctx context.Context, input *AddItemInput) (*roster.Roster, error)

	// RemoveItem removes an unlocked card slot from a unit
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*roster.Roster, error)

	// ApplyMod attaches a mod to a specific slot
	ApplyMod(ctx context.Context, input *ApplyModInput) (*roster.Roster, error)

	// ApplyModFromCatalog attaches a mod, selecting the target slot when it
	// is unambiguous
	ApplyModFromCatalog(ctx context.Context, input *ApplyModFromCatalogInput) (*ApplyModFromCatalogOutput, error)

	// RemoveMod detaches a slot's mod
	RemoveMod(ctx context.Context, input *RemoveModInput) (*roster.Roster, error)

	// ReorderCard moves a card slot within a unit
	ReorderCard(ctx context.Context, input *ReorderCardInput) (*roster.Roster, error)

	// AvailableItems lists the non-mod cards a unit may take right now
	AvailableItems(ctx context.Context, rosterID, unitUID string) ([]*catalog.CardDefinition, error)

	// AvailableMods lists the mods that may attach to a slot right now
	AvailableMods(ctx context.Context, rosterID, unitUID string, slotIndex int) ([]*catalog.CardDefinition, error)

	// ExportRoster projects a roster into its serialization snapshot
	ExportRoster(ctx context.Context, rosterID string) (*roster.Snapshot, error)

	// ImportRoster rebuilds a roster from a snapshot and stores it
	ImportRoster(ctx context.Context, input *ImportRosterInput) (*roster.Roster, error)
}

// CreateRosterInput contains the initial roster settings
type CreateRosterInput struct {
	Name        string
	Faction     string
	PointsLimit int
	ModelsLimit int
}

// UpdateRosterMetaInput carries partial roster settings; nil fields are left
// unchanged
type UpdateRosterMetaInput struct {
	RosterID    string
	Name        *string
	Faction     *string
	PointsLimit *int
	ModelsLimit *int
}

// PickUnitInput identifies the catalog unit to place
type PickUnitInput struct {
	RosterID string
	UnitID   string
}

// PickUnitOutput contains the updated roster and the placed unit
type PickUnitOutput struct {
	Roster *roster.Roster
	Unit   *roster.Unit
}

// DuplicateUnitInput identifies the placed unit to copy
type DuplicateUnitInput struct {
	RosterID string
	UnitUID  string
}

// RemoveUnitInput identifies the placed unit to remove
type RemoveUnitInput struct {
	RosterID string
	UnitUID  string
}

// AddItemInput identifies the card to equip
type AddItemInput struct {
	RosterID string
	UnitUID  string
	ItemID   string
}

// RemoveItemInput identifies the slot to remove
type RemoveItemInput struct {
	RosterID  string
	UnitUID   string
	SlotIndex int
}

// ApplyModInput identifies the slot and the mod to attach
type ApplyModInput struct {
	RosterID  string
	UnitUID   string
	SlotIndex int
	ModID     string
}

// ApplyModFromCatalogInput identifies the mod; the slot is chosen
// automatically
type ApplyModFromCatalogInput struct {
	RosterID string
	UnitUID  string
	ModID    string
}

// ApplyModFromCatalogOutput reports which slot received the mod
type ApplyModFromCatalogOutput struct {
	Roster    *roster.Roster
	SlotIndex int
}

// RemoveModInput identifies the slot whose mod is detached
type RemoveModInput struct {
	RosterID  string
	UnitUID   string
	SlotIndex int
}

// ReorderCardInput moves a slot; a nil ToIndex means "move to end"
type ReorderCardInput struct {
	RosterID  string
	UnitUID   string
	FromIndex int
	ToIndex   *int
}

// ImportRosterInput carries a snapshot to restore. When RosterID is set the
// existing roster is replaced; otherwise a new one is created.
type ImportRosterInput struct {
	RosterID string
	Snapshot *roster.Snapshot
}

// service implements the Service interface
type service struct {
	repository Repository
	cat        *catalog.Catalog
	builder    *rules.Builder
	engine     *rules.Engine
	gen        uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository       // Required
	Catalog    *catalog.Catalog // Required
	Generator  uuid.Generator   // Optional, defaults to UUIDs
}

// NewService creates a new warband service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	gen := cfg.Generator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	builder := rules.NewBuilder(cfg.Catalog, gen)

	return &service{
		repository: cfg.Repository,
		cat:        cfg.Catalog,
		builder:    builder,
		engine:     builder.Engine(),
		gen:        gen,
	}
}

// CreateRoster creates a new empty roster
func (s *service) CreateRoster(ctx context.Context, input *CreateRosterInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	rst := roster.New(s.gen.New())
	rst.Name = input.Name
	rst.Faction = input.Faction
	rst.PointsLimit = input.PointsLimit
	rst.ModelsLimit = input.ModelsLimit

	if err := s.repository.Create(ctx, rst); err != nil {
		return nil, err
	}

	return rst, nil
}

// GetRoster retrieves a roster by ID
func (s *service) GetRoster(ctx context.Context, rosterID string) (*roster.Roster, error) {
	if rosterID == "" {
		return nil, apperrors.InvalidArgument("roster ID is required")
	}
	return s.repository.Get(ctx, rosterID)
}

// ListRosters lists every stored roster
func (s *service) ListRosters(ctx context.Context) ([]*roster.Roster, error) {
	return s.repository.List(ctx)
}

// DeleteRoster removes a roster
func (s *service) DeleteRoster(ctx context.Context, rosterID string) error {
	if rosterID == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}
	return s.repository.Delete(ctx, rosterID)
}

// UpdateRosterMeta updates name, faction and limits
func (s *service) UpdateRosterMeta(ctx context.Context, input *UpdateRosterMetaInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		if input.Faction != nil && *input.Faction != rst.Faction {
			if len(rst.Units) > 0 {
				return apperrors.Validation("faction cannot change once units are placed")
			}
			rst.Faction = *input.Faction
		}
		if input.Name != nil {
			rst.Name = *input.Name
		}
		if input.PointsLimit != nil {
			rst.PointsLimit = *input.PointsLimit
		}
		if input.ModelsLimit != nil {
			rst.ModelsLimit = *input.ModelsLimit
		}
		return nil
	})
}

// PickUnit places a catalog unit in the roster
func (s *service) PickUnit(ctx context.Context, input *PickUnitInput) (*PickUnitOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var unit *roster.Unit
	rst, err := s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		var err error
		unit, err = s.builder.PickUnit(rst, input.UnitID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PickUnitOutput{Roster: rst, Unit: unit}, nil
}

// DuplicateUnit deep-copies a placed unit
func (s *service) DuplicateUnit(ctx context.Context, input *DuplicateUnitInput) (*PickUnitOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var unit *roster.Unit
	rst, err := s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		var err error
		unit, err = s.builder.DuplicateUnit(rst, input.UnitUID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PickUnitOutput{Roster: rst, Unit: unit}, nil
}

// RemoveUnit removes a placed unit
func (s *service) RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		s.builder.RemoveUnit(rst, input.UnitUID)
		return nil
	})
}

// AddItem equips a card on a unit
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		return s.builder.AddItem(rst, input.UnitUID, input.ItemID)
	})
}

// RemoveItem removes an unlocked card slot from a unit
func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		return s.builder.RemoveItem(rst, input.UnitUID, input.SlotIndex)
	})
}

// ApplyMod attaches a mod to a specific slot
func (s *service) ApplyMod(ctx context.Context, input *ApplyModInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		return s.builder.ApplyMod(rst, input.UnitUID, input.SlotIndex, input.ModID)
	})
}

// ApplyModFromCatalog attaches a mod, selecting the target slot when it is
// unambiguous
func (s *service) ApplyModFromCatalog(ctx context.Context, input *ApplyModFromCatalogInput) (*ApplyModFromCatalogOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var slotIndex int
	rst, err := s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		var err error
		slotIndex, err = s.builder.ApplyModFromCatalog(rst, input.UnitUID, input.ModID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ApplyModFromCatalogOutput{Roster: rst, SlotIndex: slotIndex}, nil
}

// RemoveMod detaches a slot's mod
func (s *service) RemoveMod(ctx context.Context, input *RemoveModInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		return s.builder.RemoveMod(rst, input.UnitUID, input.SlotIndex)
	})
}

// ReorderCard moves a card slot within a unit
func (s *service) ReorderCard(ctx context.Context, input *ReorderCardInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.withRoster(ctx, input.RosterID, func(rst *roster.Roster) error {
		return s.builder.ReorderCard(rst, input.UnitUID, input.FromIndex, input.ToIndex)
	})
}

// AvailableItems lists the non-mod cards a unit may take right now
func (s *service) AvailableItems(ctx context.Context, rosterID, unitUID string) ([]*catalog.CardDefinition, error) {
	rst, err := s.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	unit := rst.UnitByUID(unitUID)
	if unit == nil {
		return nil, apperrors.NotFoundf("unit '%s' not found in roster", unitUID)
	}

	return s.engine.AvailableItems(rst, unit), nil
}

// AvailableMods lists the mods that may attach to a slot right now
func (s *service) AvailableMods(ctx context.Context, rosterID, unitUID string, slotIndex int) ([]*catalog.CardDefinition, error) {
	rst, err := s.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	unit := rst.UnitByUID(unitUID)
	if unit == nil {
		return nil, apperrors.NotFoundf("unit '%s' not found in roster", unitUID)
	}
	if slotIndex < 0 || slotIndex >= len(unit.Cards) {
		return nil, apperrors.InvalidArgumentf("slot %d does not exist", slotIndex)
	}

	slot := &unit.Cards[slotIndex]
	base := s.cat.Item(slot.ItemID)

	return s.engine.AvailableModsForSlot(rst, unit, slot, base), nil
}

// ExportRoster projects a roster into its serialization snapshot
func (s *service) ExportRoster(ctx context.Context, rosterID string) (*roster.Snapshot, error) {
	rst, err := s.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, err
	}
	return rst.Snapshot(), nil
}

// ImportRoster rebuilds a roster from a snapshot and stores it
func (s *service) ImportRoster(ctx context.Context, input *ImportRosterInput) (*roster.Roster, error) {
	if err := ValidateInput(input); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	rst := s.builder.Restore(input.Snapshot)

	if input.RosterID != "" {
		rst.ID = input.RosterID
		if err := s.repository.Update(ctx, rst); err != nil {
			return nil, err
		}
		return rst, nil
	}

	rst.ID = s.gen.New()
	if err := s.repository.Create(ctx, rst); err != nil {
		return nil, err
	}

	return rst, nil
}

// withRoster loads a roster, applies fn and persists the result. A failed fn
// leaves the stored roster untouched.
func (s *service) withRoster(ctx context.Context, rosterID string, fn func(*roster.Roster) error) (*roster.Roster, error) {
	rst, err := s.repository.Get(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	if err := fn(rst); err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, rst); err != nil {
		return nil, err
	}

	return rst, nil
}
