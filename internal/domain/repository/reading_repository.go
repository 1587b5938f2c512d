package repository

import (
	"context"
	"errors"

	"terrasense/internal/domain/entity"
)

// ErrReadingNotFound is returned when a reading lookup matches nothing.
var ErrReadingNotFound = errors.New("reading not found")

// ReadingRepository defines the persistence operations for sensor readings.
// Readings are append-only; there is no update path.
type ReadingRepository interface {
	// Create appends a new reading to a sensor's time series.
	Create(ctx context.Context, reading *entity.SensorReading) error

	// FindBySensor retrieves up to limit readings for one sensor, ordered by
	// timestamp ascending or descending.
	FindBySensor(ctx context.Context, sensorID int64, limit int, ascending bool) ([]*entity.SensorReading, error)

	// DeleteBySensor removes every reading of the given sensor. Used by the
	// sensor-delete cascade.
	DeleteBySensor(ctx context.Context, sensorID int64) error

	// CountByOwner counts readings across all sensors owned by the user.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)

	// LatestByOwner returns the most recent reading across all sensors owned
	// by the user, or ErrReadingNotFound when there are none.
	LatestByOwner(ctx context.Context, ownerID int64) (*entity.SensorReading, error)

	// FindTrendByOwnerAndType retrieves up to limit readings whose sensor
	// belongs to the user and whose sensor type contains typeMatch
	// (case-insensitive), ordered by timestamp ascending for charting.
	FindTrendByOwnerAndType(ctx context.Context, ownerID int64, typeMatch string, limit int) ([]*entity.SensorReading, error)
}
