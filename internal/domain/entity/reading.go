package entity

import "time"

// SensorReading is an immutable timestamped sample appended to a sensor's
// time series. Readings are never updated; they are removed only when their
// sensor is deleted.
type SensorReading struct {
	ID        int64     `json:"id"`
	SensorID  int64     `json:"sensorId"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}
