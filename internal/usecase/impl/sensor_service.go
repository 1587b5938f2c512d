package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "terrasense/internal/delivery/context"
	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	"terrasense/internal/usecase"

	"github.com/pkg/errors"
)

// sensorService implements the SensorUsecase interface. It owns the
// sensor/area ownership invariant: a sensor's owner must always equal the
// owner of its current area.
type sensorService struct {
	sensorRepo repository.SensorRepository
	areaRepo   repository.AreaRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// NewSensorService is the constructor for sensorService.
func NewSensorService(
	sensorRepo repository.SensorRepository,
	areaRepo repository.AreaRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SensorUsecase {
	return &sensorService{
		sensorRepo: sensorRepo,
		areaRepo:   areaRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (srv *sensorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveOwnedArea fetches an area and verifies the caller owns it. Both a
// missing area and another user's area fold into the same not-found error so
// the response never confirms the area's existence to a non-owner.
func (srv *sensorService) resolveOwnedArea(ctx context.Context, ownerID, areaID int64) (*entity.Area, error) {
	area, err := srv.areaRepo.FindByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "area not found")
		}

		return nil, errors.Wrap(err, "failed to find area")
	}

	if area.UserID != ownerID {
		srv.log(ctx).Warn("Sensor operation on another user's area", slog.Int64("areaID", areaID), slog.Int64("ownerID", ownerID))

		return nil, errors.Wrap(domainerrors.ErrNotFound, "area not found")
	}

	return area, nil
}

// resolveOwned fetches a sensor with the combined id+owner lookup. A sensor
// owned by someone else is indistinguishable from a missing one.
func (srv *sensorService) resolveOwned(ctx context.Context, ownerID, sensorID int64) (*entity.Sensor, error) {
	sensor, err := srv.sensorRepo.FindByIDAndOwner(ctx, sensorID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "sensor not found")
		}

		return nil, errors.Wrap(err, "failed to find sensor")
	}

	return sensor, nil
}

// Create attaches a new sensor to one of the caller's areas, defaulting
// active to true and installedAt to the creation time.
func (srv *sensorService) Create(ctx context.Context, ownerID int64, input *usecase.CreateSensorInput) (*entity.Sensor, error) {
	srv.log(ctx).Info("Creating sensor", slog.Int64("ownerID", ownerID), slog.String("name", input.Name))

	if _, err := srv.resolveOwnedArea(ctx, ownerID, input.AreaID); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	installedAt := time.Now()
	if input.InstalledAt != nil {
		installedAt = *input.InstalledAt
	}

	sensor := &entity.Sensor{
		UserID:      ownerID,
		AreaID:      input.AreaID,
		Name:        input.Name,
		Type:        input.Type,
		Model:       input.Model,
		Active:      active,
		InstalledAt: installedAt,
	}

	if err := srv.sensorRepo.Create(ctx, sensor); err != nil {
		return nil, errors.Wrap(err, "failed to create sensor")
	}

	return sensor, nil
}

// List returns the caller's sensors ordered by name ascending.
func (srv *sensorService) List(ctx context.Context, ownerID int64) ([]*entity.Sensor, error) {
	sensors, err := srv.sensorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sensors")
	}

	return sensors, nil
}

// GetByID returns one of the caller's sensors.
func (srv *sensorService) GetByID(ctx context.Context, ownerID, sensorID int64) (*entity.Sensor, error) {
	return srv.resolveOwned(ctx, ownerID, sensorID)
}

// Update applies a partial patch. An areaId in the patch re-validates the
// target area's ownership even when it equals the current one, preserving
// the sensor/area owner invariant.
func (srv *sensorService) Update(ctx context.Context, ownerID, sensorID int64, patch *usecase.SensorPatch) (*entity.Sensor, error) {
	if patch == nil || patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields provided for update")
	}

	sensor, err := srv.resolveOwned(ctx, ownerID, sensorID)
	if err != nil {
		return nil, err
	}

	if patch.AreaID.Set {
		if !patch.AreaID.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "areaId cannot be null")
		}
		if _, err := srv.resolveOwnedArea(ctx, ownerID, patch.AreaID.Value); err != nil {
			return nil, err
		}
		sensor.AreaID = patch.AreaID.Value
	}
	if patch.Name.Set {
		if !patch.Name.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name cannot be null")
		}
		sensor.Name = patch.Name.Value
	}
	if patch.Type.Set {
		if !patch.Type.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "type cannot be null")
		}
		sensor.Type = patch.Type.Value
	}
	if patch.Model.Set {
		// Model is nullable: null clears it.
		if patch.Model.Valid {
			model := patch.Model.Value
			sensor.Model = &model
		} else {
			sensor.Model = nil
		}
	}
	if patch.Active.Set {
		if !patch.Active.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "active cannot be null")
		}
		sensor.Active = patch.Active.Value
	}
	if patch.InstalledAt.Set {
		if !patch.InstalledAt.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "installedAt cannot be null")
		}
		sensor.InstalledAt = patch.InstalledAt.Value
	}

	if err := srv.sensorRepo.Update(ctx, sensor); err != nil {
		return nil, errors.Wrap(err, "failed to update sensor")
	}

	srv.log(ctx).Debug("Sensor updated", slog.Int64("sensorID", sensor.ID))

	return sensor, nil
}

// Delete removes one of the caller's sensors together with all of its
// readings. The cascade is this service's explicit responsibility and runs
// in a single transaction.
func (srv *sensorService) Delete(ctx context.Context, ownerID, sensorID int64) error {
	if _, err := srv.resolveOwned(ctx, ownerID, sensorID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReadingRepo().DeleteBySensor(ctx, sensorID); err != nil {
			return errors.Wrap(err, "failed to delete sensor readings")
		}

		if err := repoFactory.SensorRepo().Delete(ctx, sensorID); err != nil {
			if errors.Is(err, repository.ErrSensorNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "sensor not found")
			}

			return errors.Wrap(err, "failed to delete sensor")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute sensor deletion transaction")
	}

	srv.log(ctx).Info("Sensor deleted", slog.Int64("sensorID", sensorID), slog.Int64("ownerID", ownerID))

	return nil
}
