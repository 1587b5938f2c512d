package model

import "time"

// SensorModel corresponds to the sensors table. UserID denormalizes the
// owning user so ownership checks never need a join through areas.
type SensorModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"index;not null"`
	AreaID      int64     `gorm:"index;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(100);not null"`
	Model       *string   `gorm:"type:varchar(255)"`
	Active      bool      `gorm:"not null;default:true"`
	InstalledAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for SensorModel.
func (SensorModel) TableName() string {
	return "sensors"
}
