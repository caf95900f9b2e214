package rosters

import (
	"context"
	"sync"

	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the roster repository
// Useful for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	rosters map[string]*roster.Roster
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		rosters: make(map[string]*roster.Roster),
	}
}

// Create stores a new roster
func (r *InMemoryRepository) Create(ctx context.Context, rst *roster.Roster) error {
	if rst == nil {
		return apperrors.InvalidArgument("roster cannot be nil")
	}
	if rst.ID == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rosters[rst.ID]; exists {
		return apperrors.AlreadyExistsf("roster with ID '%s' already exists", rst.ID).
			WithMeta("roster_id", rst.ID)
	}

	// Store a deep copy so callers cannot mutate stored state
	r.rosters[rst.ID] = rst.Clone()

	return nil
}

// Get retrieves a roster by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*roster.Roster, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("roster ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rst, exists := r.rosters[id]
	if !exists {
		return nil, apperrors.NotFoundf("roster with ID '%s' not found", id).
			WithMeta("roster_id", id)
	}

	return rst.Clone(), nil
}

// Update updates an existing roster
func (r *InMemoryRepository) Update(ctx context.Context, rst *roster.Roster) error {
	if rst == nil {
		return apperrors.InvalidArgument("roster cannot be nil")
	}
	if rst.ID == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rosters[rst.ID]; !exists {
		return apperrors.NotFoundf("roster with ID '%s' not found", rst.ID).
			WithMeta("roster_id", rst.ID)
	}

	r.rosters[rst.ID] = rst.Clone()

	return nil
}

// Delete removes a roster
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rosters, id)

	return nil
}

// List retrieves every stored roster
func (r *InMemoryRepository) List(ctx context.Context) ([]*roster.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*roster.Roster, 0, len(r.rosters))
	for _, rst := range r.rosters {
		result = append(result, rst.Clone())
	}

	return result, nil
}
