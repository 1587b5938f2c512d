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

// readingService implements the ReadingUsecase interface.
type readingService struct {
	sensorRepo  repository.SensorRepository
	readingRepo repository.ReadingRepository
	logger      *slog.Logger
}

// NewReadingService is the constructor for readingService.
func NewReadingService(
	sensorRepo repository.SensorRepository,
	readingRepo repository.ReadingRepository,
	logger *slog.Logger,
) usecase.ReadingUsecase {
	return &readingService{
		sensorRepo:  sensorRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}
}

func (srv *readingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveOwnedSensor applies the combined id+owner lookup before any
// time-series access.
func (srv *readingService) resolveOwnedSensor(ctx context.Context, ownerID, sensorID int64) (*entity.Sensor, error) {
	sensor, err := srv.sensorRepo.FindByIDAndOwner(ctx, sensorID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "sensor not found")
		}

		return nil, errors.Wrap(err, "failed to find sensor")
	}

	return sensor, nil
}

// Add appends a reading to one of the caller's sensors. The timestamp
// defaults to the receipt time when omitted.
func (srv *readingService) Add(ctx context.Context, ownerID, sensorID int64, input *usecase.AddReadingInput) (*entity.SensorReading, error) {
	if input == nil || input.Value == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "value is required")
	}

	if _, err := srv.resolveOwnedSensor(ctx, ownerID, sensorID); err != nil {
		return nil, err
	}

	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	reading := &entity.SensorReading{
		SensorID:  sensorID,
		Value:     *input.Value,
		Timestamp: timestamp,
	}

	if err := srv.readingRepo.Create(ctx, reading); err != nil {
		return nil, errors.Wrap(err, "failed to create reading")
	}

	srv.log(ctx).Debug("Reading appended", slog.Int64("sensorID", sensorID), slog.Time("timestamp", timestamp))

	return reading, nil
}

// List returns at most limit readings for one of the caller's sensors,
// ordered by timestamp. Limit defaults to 50, order to descending.
func (srv *readingService) List(ctx context.Context, ownerID, sensorID int64, limit int, order string) ([]*entity.SensorReading, error) {
	if _, err := srv.resolveOwnedSensor(ctx, ownerID, sensorID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = usecase.DefaultReadingLimit
	}

	var ascending bool
	switch order {
	case "", usecase.OrderDesc:
		ascending = false
	case usecase.OrderAsc:
		ascending = true
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order must be asc or desc")
	}

	readings, err := srv.readingRepo.FindBySensor(ctx, sensorID, limit, ascending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list readings")
	}

	return readings, nil
}
