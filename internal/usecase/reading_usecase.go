package usecase

import (
	"context"
	"time"

	"terrasense/internal/domain/entity"
)

// Default query bounds for reading listings.
const (
	DefaultReadingLimit = 50

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ReadingUsecase defines the append/list operations on sensor readings.
// Both operations resolve the sensor with the combined id+owner lookup
// before touching the time series.
type ReadingUsecase interface {
	// Add appends a reading. Timestamp defaults to the receipt time.
	Add(ctx context.Context, ownerID, sensorID int64, input *AddReadingInput) (*entity.SensorReading, error)

	// List returns at most limit readings ordered by timestamp. Limit
	// defaults to DefaultReadingLimit, order to descending.
	List(ctx context.Context, ownerID, sensorID int64, limit int, order string) ([]*entity.SensorReading, error)
}

// AddReadingInput defines the payload for appending a reading. Value is a
// pointer so a missing field is distinguishable from a literal zero.
type AddReadingInput struct {
	Value     *float64   `json:"value" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
