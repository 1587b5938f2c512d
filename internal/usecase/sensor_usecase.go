package usecase

import (
	"context"
	"time"

	"terrasense/internal/domain/entity"
)

// SensorUsecase defines the ownership-scoped operations on sensors.
type SensorUsecase interface {
	// Create attaches a new sensor to one of the caller's areas. The target
	// area must resolve with owner == caller; a missing area and another
	// user's area produce the same not-found error.
	Create(ctx context.Context, ownerID int64, input *CreateSensorInput) (*entity.Sensor, error)

	// List returns the caller's sensors ordered by name ascending.
	List(ctx context.Context, ownerID int64) ([]*entity.Sensor, error)

	GetByID(ctx context.Context, ownerID, sensorID int64) (*entity.Sensor, error)

	// Update applies a partial patch. Reassigning areaId re-validates the
	// target area's ownership even when it is unchanged.
	Update(ctx context.Context, ownerID, sensorID int64, patch *SensorPatch) (*entity.Sensor, error)

	// Delete removes the sensor and all of its readings.
	Delete(ctx context.Context, ownerID, sensorID int64) error
}

// CreateSensorInput defines the data required to create a sensor.
// Active defaults to true and InstalledAt to the creation time when omitted.
type CreateSensorInput struct {
	Name        string     `json:"name" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Model       *string    `json:"model,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	InstalledAt *time.Time `json:"installedAt,omitempty"`
	AreaID      int64      `json:"areaId" validate:"required"`
}

// SensorPatch is a partial-update payload. Model is the only nullable field;
// null on any other field is rejected.
type SensorPatch struct {
	Name        Optional[string]    `json:"name"`
	Type        Optional[string]    `json:"type"`
	Model       Optional[string]    `json:"model"`
	Active      Optional[bool]      `json:"active"`
	InstalledAt Optional[time.Time] `json:"installedAt"`
	AreaID      Optional[int64]     `json:"areaId"`
}

// Empty reports whether the patch carries no fields at all.
func (p *SensorPatch) Empty() bool {
	return !p.Name.Set && !p.Type.Set && !p.Model.Set &&
		!p.Active.Set && !p.InstalledAt.Set && !p.AreaID.Set
}
