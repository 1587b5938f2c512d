package model

import "time"

// AreaModel corresponds to the areas table. Geom stores the GeoJSON
// geometry document verbatim as jsonb.
type AreaModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	AreaType  string    `gorm:"type:varchar(100);not null"`
	Geom      []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AreaModel.
func (AreaModel) TableName() string {
	return "areas"
}
