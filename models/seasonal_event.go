package models

import "time"

// SeasonalEvent is a dated promotion that products can be attached to.
type SeasonalEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"not null" validate:"required"`
	EndDate   time.Time `gorm:"not null" validate:"required,gtefield=StartDate"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" validate:"required,max=100"`
	Products  []Product `gorm:"foreignKey:SeasonalEventID;constraint:OnDelete:SET NULL"`
}

func (e *SeasonalEvent) TableName() string {
	return "seasonal_events"
}
