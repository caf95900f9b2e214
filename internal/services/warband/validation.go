package warband

import (
	"fmt"
	"strings"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateRosterInput for validity
func (i *CreateRosterInput) Validate() error {
	if i == nil {
		return fmt.Errorf("CreateRosterInput cannot be nil")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("roster name is required")
	}

	if len(i.Name) > 100 {
		return fmt.Errorf("roster name cannot exceed 100 characters")
	}

	if i.PointsLimit < 0 {
		return fmt.Errorf("points limit cannot be negative")
	}

	if i.ModelsLimit < 0 {
		return fmt.Errorf("models limit cannot be negative")
	}

	return nil
}

// Validate checks UpdateRosterMetaInput for validity
func (i *UpdateRosterMetaInput) Validate() error {
	if i == nil {
		return fmt.Errorf("UpdateRosterMetaInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			return fmt.Errorf("roster name cannot be empty")
		}
		if len(*i.Name) > 100 {
			return fmt.Errorf("roster name cannot exceed 100 characters")
		}
	}

	if i.PointsLimit != nil && *i.PointsLimit < 0 {
		return fmt.Errorf("points limit cannot be negative")
	}

	if i.ModelsLimit != nil && *i.ModelsLimit < 0 {
		return fmt.Errorf("models limit cannot be negative")
	}

	return nil
}

// Validate checks PickUnitInput for validity
func (i *PickUnitInput) Validate() error {
	if i == nil {
		return fmt.Errorf("PickUnitInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitID) == "" {
		return fmt.Errorf("unit ID is required")
	}

	return nil
}

// Validate checks DuplicateUnitInput for validity
func (i *DuplicateUnitInput) Validate() error {
	if i == nil {
		return fmt.Errorf("DuplicateUnitInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	return nil
}

// Validate checks RemoveUnitInput for validity
func (i *RemoveUnitInput) Validate() error {
	if i == nil {
		return fmt.Errorf("RemoveUnitInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	return nil
}

// Validate checks AddItemInput for validity
func (i *AddItemInput) Validate() error {
	if i == nil {
		return fmt.Errorf("AddItemInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if strings.TrimSpace(i.ItemID) == "" {
		return fmt.Errorf("item ID is required")
	}

	return nil
}

// Validate checks RemoveItemInput for validity
func (i *RemoveItemInput) Validate() error {
	if i == nil {
		return fmt.Errorf("RemoveItemInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if i.SlotIndex < 0 {
		return fmt.Errorf("slot index cannot be negative")
	}

	return nil
}

// Validate checks ApplyModInput for validity
func (i *ApplyModInput) Validate() error {
	if i == nil {
		return fmt.Errorf("ApplyModInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if i.SlotIndex < 0 {
		return fmt.Errorf("slot index cannot be negative")
	}

	if strings.TrimSpace(i.ModID) == "" {
		return fmt.Errorf("mod ID is required")
	}

	return nil
}

// Validate checks ApplyModFromCatalogInput for validity
func (i *ApplyModFromCatalogInput) Validate() error {
	if i == nil {
		return fmt.Errorf("ApplyModFromCatalogInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if strings.TrimSpace(i.ModID) == "" {
		return fmt.Errorf("mod ID is required")
	}

	return nil
}

// Validate checks RemoveModInput for validity
func (i *RemoveModInput) Validate() error {
	if i == nil {
		return fmt.Errorf("RemoveModInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if i.SlotIndex < 0 {
		return fmt.Errorf("slot index cannot be negative")
	}

	return nil
}

// Validate checks ReorderCardInput for validity
func (i *ReorderCardInput) Validate() error {
	if i == nil {
		return fmt.Errorf("ReorderCardInput cannot be nil")
	}

	if strings.TrimSpace(i.RosterID) == "" {
		return fmt.Errorf("roster ID is required")
	}

	if strings.TrimSpace(i.UnitUID) == "" {
		return fmt.Errorf("unit UID is required")
	}

	if i.FromIndex < 0 {
		return fmt.Errorf("from index cannot be negative")
	}

	if i.ToIndex != nil && *i.ToIndex < 0 {
		return fmt.Errorf("to index cannot be negative")
	}

	return nil
}

// Validate checks ImportRosterInput for validity
func (i *ImportRosterInput) Validate() error {
	if i == nil {
		return fmt.Errorf("ImportRosterInput cannot be nil")
	}

	if i.Snapshot == nil {
		return fmt.Errorf("snapshot is required")
	}

	return nil
}
