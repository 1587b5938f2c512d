package entity

import "time"

// Sensor is a monitored device installed in an area. It carries a direct
// owner reference in addition to the area reference; the two must always
// resolve to the same user. The sensor services enforce that invariant at
// creation and at every area reassignment.
type Sensor struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	AreaID      int64     `json:"areaId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Model       *string   `json:"model"`
	Active      bool      `json:"active"`
	InstalledAt time.Time `json:"installedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
