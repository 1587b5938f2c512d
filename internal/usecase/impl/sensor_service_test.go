package impl

import (
	"context"
	"testing"
	"time"

	"terrasense/internal/domain/entity"
	domainerrors "terrasense/internal/domain/errors"
	"terrasense/internal/domain/repository"
	mockRepo "terrasense/internal/mocks/repository"
	"terrasense/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sensorServiceFixtures holds all test dependencies for sensor service tests.
type sensorServiceFixtures struct {
	service     usecase.SensorUsecase
	sensorRepo  *mockRepo.MockSensorRepository
	areaRepo    *mockRepo.MockAreaRepository
	readingRepo *mockRepo.MockReadingRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestSensorService(t *testing.T) sensorServiceFixtures {
	sensorRepo := mockRepo.NewMockSensorRepository(t)
	areaRepo := mockRepo.NewMockAreaRepository(t)
	readingRepo := mockRepo.NewMockReadingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewSensorService(sensorRepo, areaRepo, txManager, newDiscardLogger())

	return sensorServiceFixtures{
		service:     service,
		sensorRepo:  sensorRepo,
		areaRepo:    areaRepo,
		readingRepo: readingRepo,
		txManager:   txManager,
	}
}

func TestSensorService_Create_OwnerMatchesArea(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	area := &entity.Area{ID: 5, UserID: 1}

	fx.areaRepo.EXPECT().FindByID(ctx, int64(5)).Return(area, nil)
	fx.sensorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Run(func(_ context.Context, sensor *entity.Sensor) {
			sensor.ID = 20
		}).
		Return(nil)

	sensor, err := fx.service.Create(ctx, 1, &usecase.CreateSensorInput{
		Name:   "Soil probe",
		Type:   "soil-moisture",
		AreaID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), sensor.ID)

	// The sensor owner, the caller and the area owner are all the same user.
	assert.Equal(t, int64(1), sensor.UserID)
	assert.Equal(t, area.UserID, sensor.UserID)
}

func TestSensorService_Create_Defaults(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	before := time.Now()

	fx.areaRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Area{ID: 5, UserID: 1}, nil)
	fx.sensorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(nil)

	sensor, err := fx.service.Create(ctx, 1, &usecase.CreateSensorInput{
		Name:   "Thermometer",
		Type:   "temperature",
		AreaID: 5,
	})
	require.NoError(t, err)
	assert.True(t, sensor.Active)
	assert.False(t, sensor.InstalledAt.Before(before))
	assert.Nil(t, sensor.Model)
}

func TestSensorService_Create_ForeignArea(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Area{ID: 5, UserID: 2}, nil)

	sensor, err := fx.service.Create(ctx, 1, &usecase.CreateSensorInput{
		Name:   "Probe",
		Type:   "humidity",
		AreaID: 5,
	})
	require.Error(t, err)
	assert.Nil(t, sensor)

	// A foreign area is reported exactly like a missing one.
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestSensorService_Create_MissingArea(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	fx.areaRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrAreaNotFound)

	sensor, err := fx.service.Create(ctx, 1, &usecase.CreateSensorInput{
		Name:   "Probe",
		Type:   "humidity",
		AreaID: 99,
	})
	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSensorService_GetByID_CombinedLookup(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	fx.sensorRepo.EXPECT().
		FindByIDAndOwner(ctx, int64(20), int64(1)).
		Return(nil, repository.ErrSensorNotFound)

	sensor, err := fx.service.GetByID(ctx, 1, 20)
	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSensorService_Update_PartialLeavesOtherFields(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	installedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.Sensor{
		ID:          20,
		UserID:      1,
		AreaID:      5,
		Name:        "Old name",
		Type:        "temperature",
		Model:       ptr("TMP-36"),
		Active:      true,
		InstalledAt: installedAt,
	}

	fx.sensorRepo.EXPECT().FindByIDAndOwner(ctx, int64(20), int64(1)).Return(existing, nil)
	fx.sensorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(nil)

	sensor, err := fx.service.Update(ctx, 1, 20, &usecase.SensorPatch{
		Name: usecase.Some("New name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", sensor.Name)
	assert.Equal(t, "temperature", sensor.Type)
	assert.Equal(t, int64(5), sensor.AreaID)
	assert.Equal(t, "TMP-36", *sensor.Model)
	assert.True(t, sensor.Active)
	assert.Equal(t, installedAt, sensor.InstalledAt)
}

func TestSensorService_Update_ReassignRevalidatesArea(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	existing := &entity.Sensor{ID: 20, UserID: 1, AreaID: 5, Name: "Probe", Type: "humidity"}

	fx.sensorRepo.EXPECT().FindByIDAndOwner(ctx, int64(20), int64(1)).Return(existing, nil)

	// The target area belongs to someone else, so the reassignment fails
	// before any write.
	fx.areaRepo.EXPECT().FindByID(ctx, int64(6)).Return(&entity.Area{ID: 6, UserID: 2}, nil)

	sensor, err := fx.service.Update(ctx, 1, 20, &usecase.SensorPatch{
		AreaID: usecase.Some(int64(6)),
	})
	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSensorService_Update_ReassignSameAreaStillChecked(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	existing := &entity.Sensor{ID: 20, UserID: 1, AreaID: 5, Name: "Probe", Type: "humidity"}

	fx.sensorRepo.EXPECT().FindByIDAndOwner(ctx, int64(20), int64(1)).Return(existing, nil)
	fx.areaRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Area{ID: 5, UserID: 1}, nil)
	fx.sensorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(nil)

	sensor, err := fx.service.Update(ctx, 1, 20, &usecase.SensorPatch{
		AreaID: usecase.Some(int64(5)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), sensor.AreaID)
}

func TestSensorService_Update_NullModelClears(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	existing := &entity.Sensor{ID: 20, UserID: 1, AreaID: 5, Name: "Probe", Type: "humidity", Model: ptr("TMP-36")}

	fx.sensorRepo.EXPECT().FindByIDAndOwner(ctx, int64(20), int64(1)).Return(existing, nil)
	fx.sensorRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Sensor")).
		Return(nil)

	sensor, err := fx.service.Update(ctx, 1, 20, &usecase.SensorPatch{
		Model: usecase.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, sensor.Model)
}

func TestSensorService_Update_EmptyPatch(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	sensor, err := fx.service.Update(ctx, 1, 20, &usecase.SensorPatch{})
	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSensorService_Delete_CascadesReadings(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	fx.sensorRepo.EXPECT().
		FindByIDAndOwner(ctx, int64(20), int64(1)).
		Return(&entity.Sensor{ID: 20, UserID: 1}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReadingRepo().Return(fx.readingRepo)
	factory.EXPECT().SensorRepo().Return(fx.sensorRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	fx.readingRepo.EXPECT().DeleteBySensor(ctx, int64(20)).Return(nil)
	fx.sensorRepo.EXPECT().Delete(ctx, int64(20)).Return(nil)

	err := fx.service.Delete(ctx, 1, 20)
	require.NoError(t, err)
}

func TestSensorService_Delete_Idempotent(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	fx.sensorRepo.EXPECT().
		FindByIDAndOwner(ctx, int64(99), int64(1)).
		Return(nil, repository.ErrSensorNotFound).
		Twice()

	err := fx.service.Delete(ctx, 1, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = fx.service.Delete(ctx, 1, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSensorService_List_Success(t *testing.T) {
	fx := createTestSensorService(t)
	ctx := context.Background()

	sensors := []*entity.Sensor{
		{ID: 1, UserID: 1, Name: "Alpha"},
		{ID: 2, UserID: 1, Name: "Beta"},
	}

	fx.sensorRepo.EXPECT().FindByOwner(ctx, int64(1)).Return(sensors, nil)

	got, err := fx.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, sensors, got)
}
