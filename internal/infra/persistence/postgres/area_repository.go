package postgres

import (
	"context"
	"encoding/json"

	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	"terrasense/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// areaRepository implements the repository.AreaRepository interface using GORM.
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository is the constructor for areaRepository.
func NewAreaRepository(db *gorm.DB) repository.AreaRepository {
	return &areaRepository{db: db}
}

// Create persists a new area.
func (repo *areaRepository) Create(ctx context.Context, area *entity.Area) error {
	areaM := fromAreaDomain(area)

	if err := repo.db.WithContext(ctx).Create(areaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "area references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create area")
	}

	area.ID = areaM.ID
	area.CreatedAt = areaM.CreatedAt
	area.UpdatedAt = areaM.UpdatedAt

	return nil
}

// FindByID retrieves a single area regardless of owner.
func (repo *areaRepository) FindByID(ctx context.Context, id int64) (*entity.Area, error) {
	var areaM model.AreaModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&areaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to find area by id")
	}

	return toAreaDomain(&areaM), nil
}

// FindByOwner retrieves every area belonging to the given user.
func (repo *areaRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Area, error) {
	var areaMs []*model.AreaModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&areaMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list areas by owner")
	}

	areas := make([]*entity.Area, 0, len(areaMs))
	for _, areaM := range areaMs {
		areas = append(areas, toAreaDomain(areaM))
	}

	return areas, nil
}

// Update persists the mutable fields of an existing area. Ownership never
// changes, so user_id is not part of the update set.
func (repo *areaRepository) Update(ctx context.Context, area *entity.Area) error {
	updates := map[string]any{
		"name":      area.Name,
		"area_type": area.AreaType,
		"geom":      []byte(area.Geom),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AreaModel{}).
		Where("id = ?", area.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAreaNotFound
	}

	return nil
}

// Delete removes an area by ID.
func (repo *areaRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AreaModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAreaNotFound
	}

	return nil
}

// CountByOwner returns how many areas the given user owns.
func (repo *areaRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AreaModel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count areas by owner")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAreaDomain converts a GORM AreaModel to a domain Area entity.
func toAreaDomain(data *model.AreaModel) *entity.Area {
	if data == nil {
		return nil
	}

	return &entity.Area{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		AreaType:  data.AreaType,
		Geom:      json.RawMessage(data.Geom),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAreaDomain converts a domain Area entity to a GORM AreaModel for persistence.
func fromAreaDomain(data *entity.Area) *model.AreaModel {
	if data == nil {
		return nil
	}

	return &model.AreaModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Name:     data.Name,
		AreaType: data.AreaType,
		Geom:     []byte(data.Geom),
	}
}
