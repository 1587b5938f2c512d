package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "terrasense/internal/delivery/context"
	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	"terrasense/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// areaService implements the AreaUsecase interface.
type areaService struct {
	areaRepo repository.AreaRepository
	logger   *slog.Logger
}

// NewAreaService is the constructor for areaService.
func NewAreaService(areaRepo repository.AreaRepository, logger *slog.Logger) usecase.AreaUsecase {
	return &areaService{
		areaRepo: areaRepo,
		logger:   logger,
	}
}

func (srv *areaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateGeometry checks that an optional geom payload is structurally valid
// GeoJSON. The payload stays opaque beyond that; nothing downstream computes
// on it.
func validateGeometry(geom json.RawMessage) error {
	if len(geom) == 0 {
		return nil
	}

	if _, err := geojson.UnmarshalGeometry(geom); err != nil {
		return errors.Wrap(err, "geom is not valid GeoJSON geometry")
	}

	return nil
}

// Create persists a new area owned by the caller.
func (srv *areaService) Create(ctx context.Context, ownerID int64, input *usecase.CreateAreaInput) (*entity.Area, error) {
	srv.log(ctx).Info("Creating area", slog.Int64("ownerID", ownerID), slog.String("name", input.Name))

	if err := validateGeometry(input.Geom); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	area := &entity.Area{
		UserID:   ownerID,
		Name:     input.Name,
		AreaType: input.AreaType,
		Geom:     input.Geom,
	}

	if err := srv.areaRepo.Create(ctx, area); err != nil {
		return nil, errors.Wrap(err, "failed to create area")
	}

	return area, nil
}

// List returns every area owned by the caller.
func (srv *areaService) List(ctx context.Context, ownerID int64) ([]*entity.Area, error) {
	areas, err := srv.areaRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list areas")
	}

	return areas, nil
}

// resolveOwned fetches an area and verifies ownership. Missing areas and
// other users' areas stay distinct here; the delivery layer decides how the
// ownership violation surfaces.
func (srv *areaService) resolveOwned(ctx context.Context, ownerID, areaID int64) (*entity.Area, error) {
	area, err := srv.areaRepo.FindByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "area not found")
		}

		return nil, errors.Wrap(err, "failed to find area")
	}

	if area.UserID != ownerID {
		srv.log(ctx).Warn("Area access denied", slog.Int64("areaID", areaID), slog.Int64("ownerID", ownerID))

		return nil, errors.Wrap(domainerrors.ErrOwnershipViolation, "area belongs to another user")
	}

	return area, nil
}

// GetByID returns one of the caller's areas.
func (srv *areaService) GetByID(ctx context.Context, ownerID, areaID int64) (*entity.Area, error) {
	return srv.resolveOwned(ctx, ownerID, areaID)
}

// Update applies a partial patch to one of the caller's areas. Omitted
// fields are untouched; a null geom clears the geometry.
func (srv *areaService) Update(ctx context.Context, ownerID, areaID int64, patch *usecase.AreaPatch) (*entity.Area, error) {
	if patch == nil || patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields provided for update")
	}

	area, err := srv.resolveOwned(ctx, ownerID, areaID)
	if err != nil {
		return nil, err
	}

	if patch.Name.Set {
		if !patch.Name.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name cannot be null")
		}
		area.Name = patch.Name.Value
	}
	if patch.AreaType.Set {
		if !patch.AreaType.Valid {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "areaType cannot be null")
		}
		area.AreaType = patch.AreaType.Value
	}
	if patch.Geom.Set {
		if patch.Geom.Valid {
			if err := validateGeometry(patch.Geom.Value); err != nil {
				return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
			}
			area.Geom = patch.Geom.Value
		} else {
			area.Geom = nil
		}
	}

	if err := srv.areaRepo.Update(ctx, area); err != nil {
		return nil, errors.Wrap(err, "failed to update area")
	}

	srv.log(ctx).Debug("Area updated", slog.Int64("areaID", area.ID))

	return area, nil
}

// Delete removes one of the caller's areas. Dependent sensors and their
// readings are removed by the store's referential actions.
func (srv *areaService) Delete(ctx context.Context, ownerID, areaID int64) error {
	if _, err := srv.resolveOwned(ctx, ownerID, areaID); err != nil {
		return err
	}

	if err := srv.areaRepo.Delete(ctx, areaID); err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "area not found")
		}

		return errors.Wrap(err, "failed to delete area")
	}

	srv.log(ctx).Info("Area deleted", slog.Int64("areaID", areaID), slog.Int64("ownerID", ownerID))

	return nil
}
