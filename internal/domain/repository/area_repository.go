package repository

import (
	"context"
	"errors"

	"terrasense/internal/domain/entity"
)

// ErrAreaNotFound is returned when no area exists with the requested ID.
var ErrAreaNotFound = errors.New("area not found")

// AreaRepository defines the persistence operations for areas.
// Ownership filtering happens in the service layer for single lookups so the
// services can distinguish "missing" from "owned by someone else".
type AreaRepository interface {
	// Create persists a new area.
	Create(ctx context.Context, area *entity.Area) error

	// FindByID retrieves a single area regardless of owner.
	FindByID(ctx context.Context, id int64) (*entity.Area, error)

	// FindByOwner retrieves every area belonging to the given user.
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Area, error)

	// Update persists the mutable fields of an existing area.
	Update(ctx context.Context, area *entity.Area) error

	// Delete removes an area by ID. Dependent sensors are handled by the
	// store's referential actions.
	Delete(ctx context.Context, id int64) error

	// CountByOwner returns how many areas the given user owns.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}
