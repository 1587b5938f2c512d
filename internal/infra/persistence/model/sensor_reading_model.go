package model

import "time"

// SensorReadingModel corresponds to the sensor_readings table. The composite
// index serves the per-sensor history queries ordered by time.
type SensorReadingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	SensorID  int64     `gorm:"index:idx_sensor_readings_sensor_timestamp,priority:1;not null"`
	Value     float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"index:idx_sensor_readings_sensor_timestamp,priority:2;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SensorReadingModel.
func (SensorReadingModel) TableName() string {
	return "sensor_readings"
}
