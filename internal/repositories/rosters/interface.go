package rosters

import (
	"context"

	"github.com/wastelandforge/warband/internal/domain/roster"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// Create stores a new roster
	Create(ctx context.Context, r *roster.Roster) error

	// Get retrieves a roster by ID
	Get(ctx context.Context, id string) (*roster.Roster, error)

	// Update updates an existing roster
	Update(ctx context.Context, r *roster.Roster) error

	// Delete removes a roster
	Delete(ctx context.Context, id string) error

	// List retrieves every stored roster
	List(ctx context.Context) ([]*roster.Roster, error)
}
