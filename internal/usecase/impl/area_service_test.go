package impl

import (
	"context"
	"encoding/json"
	"testing"

	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	mockRepo "terrasense/internal/mocks/repository"
	"terrasense/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// areaServiceFixtures holds all test dependencies for area service tests.
type areaServiceFixtures struct {
	service  usecase.AreaUsecase
	areaRepo *mockRepo.MockAreaRepository
}

func createTestAreaService(t *testing.T) areaServiceFixtures {
	areaRepo := mockRepo.NewMockAreaRepository(t)
	service := NewAreaService(areaRepo, newDiscardLogger())

	return areaServiceFixtures{
		service:  service,
		areaRepo: areaRepo,
	}
}

var validPolygon = json.RawMessage(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`)

func TestAreaService_Create_Success(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Area")).
		Run(func(_ context.Context, area *entity.Area) {
			area.ID = 10
		}).
		Return(nil)

	area, err := fx.service.Create(ctx, 1, &usecase.CreateAreaInput{
		Name:     "Greenhouse",
		AreaType: "agriculture",
		Geom:     validPolygon,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), area.ID)
	assert.Equal(t, int64(1), area.UserID)
	assert.Equal(t, "Greenhouse", area.Name)
	assert.JSONEq(t, string(validPolygon), string(area.Geom))
}

func TestAreaService_Create_NilGeom(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Area")).
		Return(nil)

	area, err := fx.service.Create(ctx, 1, &usecase.CreateAreaInput{
		Name:     "Warehouse",
		AreaType: "storage",
	})
	require.NoError(t, err)
	assert.Nil(t, area.Geom)
}

func TestAreaService_Create_InvalidGeom(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	area, err := fx.service.Create(ctx, 1, &usecase.CreateAreaInput{
		Name:     "Broken",
		AreaType: "test",
		Geom:     json.RawMessage(`{"type":"NotAGeometry"}`),
	})
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAreaService_GetByID_CrossOwner(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Area{ID: 10, UserID: 2}, nil)

	area, err := fx.service.GetByID(ctx, 1, 10)
	require.Error(t, err)
	assert.Nil(t, area)

	// Internally tagged as an ownership violation; the HTTP boundary
	// renders it as a not-found response.
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestAreaService_GetByID_Missing(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrAreaNotFound)

	area, err := fx.service.GetByID(ctx, 1, 99)
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAreaService_Update_PartialLeavesOtherFields(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	existing := &entity.Area{
		ID:       10,
		UserID:   1,
		Name:     "Old name",
		AreaType: "agriculture",
		Geom:     validPolygon,
	}

	fx.areaRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
	fx.areaRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Area")).
		Return(nil)

	area, err := fx.service.Update(ctx, 1, 10, &usecase.AreaPatch{
		Name: usecase.Some("New name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", area.Name)
	assert.Equal(t, "agriculture", area.AreaType)
	assert.JSONEq(t, string(validPolygon), string(area.Geom))
}

func TestAreaService_Update_NullGeomClears(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	existing := &entity.Area{ID: 10, UserID: 1, Name: "Field", AreaType: "farm", Geom: validPolygon}

	fx.areaRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil)
	fx.areaRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Area")).
		Return(nil)

	area, err := fx.service.Update(ctx, 1, 10, &usecase.AreaPatch{
		Geom: usecase.Null[json.RawMessage](),
	})
	require.NoError(t, err)
	assert.Nil(t, area.Geom)
	assert.Equal(t, "Field", area.Name)
}

func TestAreaService_Update_EmptyPatch(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	area, err := fx.service.Update(ctx, 1, 10, &usecase.AreaPatch{})
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAreaService_Update_NullName(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Area{ID: 10, UserID: 1, Name: "Field"}, nil)

	area, err := fx.service.Update(ctx, 1, 10, &usecase.AreaPatch{
		Name: usecase.Null[string](),
	})
	require.Error(t, err)
	assert.Nil(t, area)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAreaService_Delete_Success(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Area{ID: 10, UserID: 1}, nil)
	fx.areaRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)

	err := fx.service.Delete(ctx, 1, 10)
	require.NoError(t, err)
}

func TestAreaService_Delete_Idempotent(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	// A deleted or never-existing area reports the same not-found error on
	// every attempt.
	fx.areaRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrAreaNotFound).
		Twice()

	err := fx.service.Delete(ctx, 1, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = fx.service.Delete(ctx, 1, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAreaService_List_Success(t *testing.T) {
	fx := createTestAreaService(t)
	ctx := context.Background()

	areas := []*entity.Area{
		{ID: 1, UserID: 1, Name: "A"},
		{ID: 2, UserID: 1, Name: "B"},
	}

	fx.areaRepo.EXPECT().FindByOwner(ctx, int64(1)).Return(areas, nil)

	got, err := fx.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, areas, got)
}
