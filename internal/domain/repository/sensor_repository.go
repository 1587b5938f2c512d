package repository

import (
	"context"
	"errors"

	"terrasense/internal/domain/entity"
)

// ErrSensorNotFound is returned when no sensor matches the requested ID, or
// when it exists but belongs to another user (combined lookups treat both
// cases identically on purpose).
var ErrSensorNotFound = errors.New("sensor not found")

// SensorRepository defines the persistence operations for sensors.
type SensorRepository interface {
	// Create persists a new sensor.
	Create(ctx context.Context, sensor *entity.Sensor) error

	// FindByIDAndOwner retrieves a sensor only when both the ID and the owner
	// match. Ownership is a filter predicate here, not a separate check.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Sensor, error)

	// FindByOwner retrieves every sensor belonging to the given user,
	// ordered by name ascending.
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Sensor, error)

	// Update persists the mutable fields of an existing sensor.
	Update(ctx context.Context, sensor *entity.Sensor) error

	// Delete removes a sensor by ID.
	Delete(ctx context.Context, id int64) error

	// CountByOwner returns how many sensors the given user owns.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)

	// CountActiveByOwner returns how many of the user's sensors are active.
	CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error)
}
