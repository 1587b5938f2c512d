package usecase

import (
	"context"
	"time"

	"terrasense/internal/domain/entity"
)

// DefaultTrendLimit bounds the temperature trend series when the caller does
// not ask for a specific window.
const DefaultTrendLimit = 30

// DashboardUsecase computes per-user aggregations. Every number is derived
// only from entities owned, directly or transitively, by the caller.
type DashboardUsecase interface {
	GetStats(ctx context.Context, ownerID int64) (*DashboardStats, error)

	// GetTemperatureTrend returns a chronological series of readings from
	// the caller's temperature sensors, suited for charting.
	GetTemperatureTrend(ctx context.Context, ownerID int64, limit int) ([]*entity.SensorReading, error)
}

// DashboardStats summarizes one user's monitoring estate.
type DashboardStats struct {
	AreaCount         int64      `json:"areaCount"`
	SensorCount       int64      `json:"sensorCount"`
	ActiveSensorCount int64      `json:"activeSensorCount"`
	ReadingCount      int64      `json:"readingCount"`
	LatestReadingAt   *time.Time `json:"latestReadingAt"`
}
