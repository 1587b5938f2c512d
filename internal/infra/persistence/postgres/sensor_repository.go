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

// sensorRepository implements the repository.SensorRepository interface using GORM.
type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{db: db}
}

// Create persists a new sensor.
func (repo *sensorRepository) Create(ctx context.Context, sensor *entity.Sensor) error {
	sensorM := fromSensorDomain(sensor)

	if err := repo.db.WithContext(ctx).Create(sensorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "sensor references a missing area or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor")
	}

	sensor.ID = sensorM.ID
	sensor.CreatedAt = sensorM.CreatedAt
	sensor.UpdatedAt = sensorM.UpdatedAt

	return nil
}

// FindByIDAndOwner retrieves a sensor only when both the ID and the owner
// match. A wrong owner and a missing row are indistinguishable by design.
func (repo *sensorRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Sensor, error) {
	var sensorM model.SensorModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&sensorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, errors.Wrap(err, "failed to find sensor by id and owner")
	}

	return toSensorDomain(&sensorM), nil
}

// FindByOwner retrieves every sensor belonging to the given user, ordered by name.
func (repo *sensorRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Sensor, error) {
	var sensorMs []*model.SensorModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Find(&sensorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sensors by owner")
	}

	sensors := make([]*entity.Sensor, 0, len(sensorMs))
	for _, sensorM := range sensorMs {
		sensors = append(sensors, toSensorDomain(sensorM))
	}

	return sensors, nil
}

// Update persists the mutable fields of an existing sensor. The owner column
// never changes; the area column may, after the service re-validated it.
func (repo *sensorRepository) Update(ctx context.Context, sensor *entity.Sensor) error {
	updates := map[string]any{
		"area_id":      sensor.AreaID,
		"name":         sensor.Name,
		"type":         sensor.Type,
		"model":        sensor.Model,
		"active":       sensor.Active,
		"installed_at": sensor.InstalledAt,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("id = ?", sensor.ID).
		Updates(updates)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "sensor references a missing area")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sensor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// Delete removes a sensor by ID.
func (repo *sensorRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SensorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sensor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// CountByOwner returns how many sensors the given user owns.
func (repo *sensorRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sensors by owner")
	}

	return count, nil
}

// CountActiveByOwner returns how many of the user's sensors are active.
func (repo *sensorRepository) CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("user_id = ? AND active = ?", ownerID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active sensors by owner")
	}

	return count, nil
}

// --- Mapper Functions ---

// toSensorDomain converts a GORM SensorModel to a domain Sensor entity.
func toSensorDomain(data *model.SensorModel) *entity.Sensor {
	if data == nil {
		return nil
	}

	return &entity.Sensor{
		ID:          data.ID,
		UserID:      data.UserID,
		AreaID:      data.AreaID,
		Name:        data.Name,
		Type:        data.Type,
		Model:       data.Model,
		Active:      data.Active,
		InstalledAt: data.InstalledAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSensorDomain converts a domain Sensor entity to a GORM SensorModel for persistence.
func fromSensorDomain(data *entity.Sensor) *model.SensorModel {
	if data == nil {
		return nil
	}

	return &model.SensorModel{
		ID:          data.ID,
		UserID:      data.UserID,
		AreaID:      data.AreaID,
		Name:        data.Name,
		Type:        data.Type,
		Model:       data.Model,
		Active:      data.Active,
		InstalledAt: data.InstalledAt,
	}
}
