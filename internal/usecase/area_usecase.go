package usecase

import (
	"context"
	"encoding/json"

	"terrasense/internal/domain/entity"
)

// AreaUsecase defines the ownership-scoped operations on areas. Every method
// takes the authenticated owner's ID; no read or write path crosses users.
type AreaUsecase interface {
	Create(ctx context.Context, ownerID int64, input *CreateAreaInput) (*entity.Area, error)
	List(ctx context.Context, ownerID int64) ([]*entity.Area, error)
	GetByID(ctx context.Context, ownerID, areaID int64) (*entity.Area, error)
	Update(ctx context.Context, ownerID, areaID int64, patch *AreaPatch) (*entity.Area, error)
	Delete(ctx context.Context, ownerID, areaID int64) error
}

// CreateAreaInput defines the data required to create an area.
type CreateAreaInput struct {
	Name     string          `json:"name" validate:"required"`
	AreaType string          `json:"areaType" validate:"required"`
	Geom     json.RawMessage `json:"geom,omitempty"`
}

// AreaPatch is a partial-update payload: only fields that were present in
// the request are applied. A null geom clears the geometry.
type AreaPatch struct {
	Name     Optional[string]          `json:"name"`
	AreaType Optional[string]          `json:"areaType"`
	Geom     Optional[json.RawMessage] `json:"geom"`
}

// Empty reports whether the patch carries no fields at all.
func (p *AreaPatch) Empty() bool {
	return !p.Name.Set && !p.AreaType.Set && !p.Geom.Set
}
