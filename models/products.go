package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a product in the catalog.
// It is identified externally by its pid and sells through one or more
// product lines. A product cannot be deleted while lines exist.
type Product struct {
	ID              uint           `gorm:"primaryKey"`
	PID             string         `gorm:"column:pid;size:255;uniqueIndex;not null" validate:"required,max=255"`
	Slug            string         `gorm:"size:50;uniqueIndex;not null" validate:"required,max=50,slug"`
	Name            string         `gorm:"size:255;uniqueIndex;not null" validate:"required,max=255"`
	Description     *string        `gorm:"type:text"`
	IsActive        bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
	CategoryID      *uint          `gorm:"index"`
	Category        *Category      `gorm:"foreignKey:CategoryID"`
	SeasonalEventID *uint64        `gorm:"index"`
	SeasonalEvent   *SeasonalEvent `gorm:"foreignKey:SeasonalEventID"`
	Lines           []ProductLine  `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (p *Product) TableName() string {
	return "products"
}

// BeforeCreate stamps both timestamps, discarding anything the caller set.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	now := tx.NowFunc()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}
