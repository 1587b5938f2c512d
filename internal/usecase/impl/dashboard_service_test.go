package impl

import (
	"context"
	"testing"
	"time"

	"terrasense/internal/domain/entity"
	"terrasense/internal/domain/repository"
	mockRepo "terrasense/internal/mocks/repository"
	"terrasense/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard
// service tests.
type dashboardServiceFixtures struct {
	service     usecase.DashboardUsecase
	areaRepo    *mockRepo.MockAreaRepository
	sensorRepo  *mockRepo.MockSensorRepository
	readingRepo *mockRepo.MockReadingRepository
}

func createTestDashboardService(t *testing.T, trendLimit int) dashboardServiceFixtures {
	areaRepo := mockRepo.NewMockAreaRepository(t)
	sensorRepo := mockRepo.NewMockSensorRepository(t)
	readingRepo := mockRepo.NewMockReadingRepository(t)

	service := NewDashboardService(areaRepo, sensorRepo, readingRepo, trendLimit, newDiscardLogger())

	return dashboardServiceFixtures{
		service:     service,
		areaRepo:    areaRepo,
		sensorRepo:  sensorRepo,
		readingRepo: readingRepo,
	}
}

func TestDashboardService_GetStats_Success(t *testing.T) {
	fx := createTestDashboardService(t, 0)
	ctx := context.Background()

	latestAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	fx.areaRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(3), nil)
	fx.sensorRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(7), nil)
	fx.sensorRepo.EXPECT().CountActiveByOwner(ctx, int64(1)).Return(int64(5), nil)
	fx.readingRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(120), nil)
	fx.readingRepo.EXPECT().
		LatestByOwner(ctx, int64(1)).
		Return(&entity.SensorReading{ID: 99, Timestamp: latestAt}, nil)

	stats, err := fx.service.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.AreaCount)
	assert.Equal(t, int64(7), stats.SensorCount)
	assert.Equal(t, int64(5), stats.ActiveSensorCount)
	assert.Equal(t, int64(120), stats.ReadingCount)
	require.NotNil(t, stats.LatestReadingAt)
	assert.Equal(t, latestAt, *stats.LatestReadingAt)
}

func TestDashboardService_GetStats_NoReadings(t *testing.T) {
	fx := createTestDashboardService(t, 0)
	ctx := context.Background()

	fx.areaRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(0), nil)
	fx.sensorRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(0), nil)
	fx.sensorRepo.EXPECT().CountActiveByOwner(ctx, int64(1)).Return(int64(0), nil)
	fx.readingRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(0), nil)
	fx.readingRepo.EXPECT().
		LatestByOwner(ctx, int64(1)).
		Return(nil, repository.ErrReadingNotFound)

	stats, err := fx.service.GetStats(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, stats.LatestReadingAt)
}

func TestDashboardService_GetStats_CountError(t *testing.T) {
	fx := createTestDashboardService(t, 0)
	ctx := context.Background()

	fx.areaRepo.EXPECT().CountByOwner(ctx, int64(1)).Return(int64(0), errors.New("connection reset"))

	stats, err := fx.service.GetStats(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardService_GetTemperatureTrend_DefaultLimit(t *testing.T) {
	fx := createTestDashboardService(t, 0)
	ctx := context.Background()

	fx.readingRepo.EXPECT().
		FindTrendByOwnerAndType(ctx, int64(1), "temperature", 30).
		Return([]*entity.SensorReading{}, nil)

	readings, err := fx.service.GetTemperatureTrend(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestDashboardService_GetTemperatureTrend_CustomLimit(t *testing.T) {
	fx := createTestDashboardService(t, 0)
	ctx := context.Background()

	fx.readingRepo.EXPECT().
		FindTrendByOwnerAndType(ctx, int64(1), "temperature", 12).
		Return([]*entity.SensorReading{}, nil)

	_, err := fx.service.GetTemperatureTrend(ctx, 1, 12)
	require.NoError(t, err)
}

func TestDashboardService_GetTemperatureTrend_ConfiguredLimit(t *testing.T) {
	fx := createTestDashboardService(t, 45)
	ctx := context.Background()

	fx.readingRepo.EXPECT().
		FindTrendByOwnerAndType(ctx, int64(1), "temperature", 45).
		Return([]*entity.SensorReading{}, nil)

	_, err := fx.service.GetTemperatureTrend(ctx, 1, 0)
	require.NoError(t, err)
}
