package postgres

import (
	"context"

	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	"terrasense/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// readingRepository implements the repository.ReadingRepository interface using GORM.
// Owner-scoped queries join through the sensors table; readings themselves
// carry no owner column.
type readingRepository struct {
	db *gorm.DB
}

// NewReadingRepository is the constructor for readingRepository.
func NewReadingRepository(db *gorm.DB) repository.ReadingRepository {
	return &readingRepository{db: db}
}

// Create appends a new reading to a sensor's time series.
func (repo *readingRepository) Create(ctx context.Context, reading *entity.SensorReading) error {
	readingM := fromReadingDomain(reading)

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "reading references a missing sensor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reading")
	}

	reading.ID = readingM.ID

	return nil
}

// FindBySensor retrieves up to limit readings for one sensor, ordered by timestamp.
func (repo *readingRepository) FindBySensor(ctx context.Context, sensorID int64, limit int, ascending bool) ([]*entity.SensorReading, error) {
	order := "timestamp DESC"
	if ascending {
		order = "timestamp ASC"
	}

	var readingMs []*model.SensorReadingModel
	if err := repo.db.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Order(order).
		Limit(limit).
		Find(&readingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list readings by sensor")
	}

	return toReadingDomainSlice(readingMs), nil
}

// DeleteBySensor removes every reading of the given sensor. Zero rows is not
// an error; a sensor may simply have no readings yet.
func (repo *readingRepository) DeleteBySensor(ctx context.Context, sensorID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Delete(&model.SensorReadingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete readings by sensor")
	}

	return nil
}

// CountByOwner counts readings across all sensors owned by the user.
func (repo *readingRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SensorReadingModel{}).
		Joins("JOIN sensors ON sensors.id = sensor_readings.sensor_id").
		Where("sensors.user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count readings by owner")
	}

	return count, nil
}

// LatestByOwner returns the most recent reading across all sensors owned by the user.
func (repo *readingRepository) LatestByOwner(ctx context.Context, ownerID int64) (*entity.SensorReading, error) {
	var readingM model.SensorReadingModel
	if err := repo.db.WithContext(ctx).
		Model(&model.SensorReadingModel{}).
		Joins("JOIN sensors ON sensors.id = sensor_readings.sensor_id").
		Where("sensors.user_id = ?", ownerID).
		Order("sensor_readings.timestamp DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest reading by owner")
	}

	return toReadingDomain(&readingM), nil
}

// FindTrendByOwnerAndType retrieves readings from the user's sensors whose
// type contains typeMatch, oldest first so charts plot left to right.
func (repo *readingRepository) FindTrendByOwnerAndType(ctx context.Context, ownerID int64, typeMatch string, limit int) ([]*entity.SensorReading, error) {
	var readingMs []*model.SensorReadingModel
	if err := repo.db.WithContext(ctx).
		Model(&model.SensorReadingModel{}).
		Joins("JOIN sensors ON sensors.id = sensor_readings.sensor_id").
		Where("sensors.user_id = ? AND sensors.type ILIKE ?", ownerID, "%"+typeMatch+"%").
		Order("sensor_readings.timestamp ASC").
		Limit(limit).
		Find(&readingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query trend readings")
	}

	return toReadingDomainSlice(readingMs), nil
}

// --- Mapper Functions ---

// toReadingDomain converts a GORM SensorReadingModel to a domain SensorReading entity.
func toReadingDomain(data *model.SensorReadingModel) *entity.SensorReading {
	if data == nil {
		return nil
	}

	return &entity.SensorReading{
		ID:        data.ID,
		SensorID:  data.SensorID,
		Value:     data.Value,
		Timestamp: data.Timestamp,
	}
}

func toReadingDomainSlice(data []*model.SensorReadingModel) []*entity.SensorReading {
	readings := make([]*entity.SensorReading, 0, len(data))
	for _, readingM := range data {
		readings = append(readings, toReadingDomain(readingM))
	}

	return readings
}

// fromReadingDomain converts a domain SensorReading entity to a GORM SensorReadingModel.
func fromReadingDomain(data *entity.SensorReading) *model.SensorReadingModel {
	if data == nil {
		return nil
	}

	return &model.SensorReadingModel{
		ID:        data.ID,
		SensorID:  data.SensorID,
		Value:     data.Value,
		Timestamp: data.Timestamp,
	}
}
