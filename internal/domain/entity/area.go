package entity

import (
	"encoding/json"
	"time"
)

// Area is a named, geofenced zone owned by exactly one user. Ownership is
// immutable after creation. Geom holds an opaque GeoJSON payload; the core
// validates its structure on write but never computes on it.
type Area struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Name      string          `json:"name"`
	AreaType  string          `json:"areaType"`
	Geom      json.RawMessage `json:"geom,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
