package impl

import (
	"context"
	"log/slog"

	deliverycontext "terrasense/internal/delivery/context"
	"terrasense/internal/domain/entity"
	"terrasense/internal/domain/repository"
	"terrasense/internal/usecase"

	"github.com/pkg/errors"
)

// temperatureTypeMatch is the case-insensitive substring that selects
// temperature sensors for the trend series.
const temperatureTypeMatch = "temperature"

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	areaRepo    repository.AreaRepository
	sensorRepo  repository.SensorRepository
	readingRepo repository.ReadingRepository
	trendLimit  int
	logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService. A
// non-positive trendLimit falls back to the package default.
func NewDashboardService(
	areaRepo repository.AreaRepository,
	sensorRepo repository.SensorRepository,
	readingRepo repository.ReadingRepository,
	trendLimit int,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	if trendLimit <= 0 {
		trendLimit = usecase.DefaultTrendLimit
	}

	return &dashboardService{
		areaRepo:    areaRepo,
		sensorRepo:  sensorRepo,
		readingRepo: readingRepo,
		trendLimit:  trendLimit,
		logger:      logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats summarizes the caller's monitoring estate. Every count is scoped
// to entities owned, directly or transitively, by the caller.
func (srv *dashboardService) GetStats(ctx context.Context, ownerID int64) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}

	var err error
	if stats.AreaCount, err = srv.areaRepo.CountByOwner(ctx, ownerID); err != nil {
		return nil, errors.Wrap(err, "failed to count areas")
	}
	if stats.SensorCount, err = srv.sensorRepo.CountByOwner(ctx, ownerID); err != nil {
		return nil, errors.Wrap(err, "failed to count sensors")
	}
	if stats.ActiveSensorCount, err = srv.sensorRepo.CountActiveByOwner(ctx, ownerID); err != nil {
		return nil, errors.Wrap(err, "failed to count active sensors")
	}
	if stats.ReadingCount, err = srv.readingRepo.CountByOwner(ctx, ownerID); err != nil {
		return nil, errors.Wrap(err, "failed to count readings")
	}

	latest, err := srv.readingRepo.LatestByOwner(ctx, ownerID)
	switch {
	case err == nil:
		ts := latest.Timestamp
		stats.LatestReadingAt = &ts
	case errors.Is(err, repository.ErrReadingNotFound):
		// No readings yet; the field stays null.
	default:
		return nil, errors.Wrap(err, "failed to find latest reading")
	}

	srv.log(ctx).Debug("Dashboard stats computed", slog.Int64("ownerID", ownerID))

	return stats, nil
}

// GetTemperatureTrend returns a chronological series of readings from the
// caller's temperature sensors.
func (srv *dashboardService) GetTemperatureTrend(ctx context.Context, ownerID int64, limit int) ([]*entity.SensorReading, error) {
	if limit <= 0 {
		limit = srv.trendLimit
	}

	readings, err := srv.readingRepo.FindTrendByOwnerAndType(ctx, ownerID, temperatureTypeMatch, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query temperature trend")
	}

	return readings, nil
}
