package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductLine is a purchasable SKU variant of a Product.
type ProductLine struct {
	ID            uint                   `gorm:"primaryKey"`
	Price         decimal.Decimal        `gorm:"type:decimal(10,2);not null" validate:"min=0"`
	SKU           uuid.UUID              `gorm:"column:sku;type:uuid;uniqueIndex;not null"`
	StockQuantity int                    `gorm:"not null;default:0" validate:"min=0"`
	IsActive      bool                   `gorm:"not null;default:false"`
	Order         int                    `gorm:"column:order;not null"`
	Weight        float64                `gorm:"not null"`
	ProductID     uint                   `gorm:"not null;index" validate:"required"`
	Product       *Product               `gorm:"foreignKey:ProductID"`
	Images        []ProductImage         `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE"`
	Attributes    []ProductLineAttribute `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE"`
}

func (l *ProductLine) TableName() string {
	return "product_lines"
}

// BeforeCreate assigns a fresh SKU when none was supplied.
func (l *ProductLine) BeforeCreate(tx *gorm.DB) error {
	if l.SKU == uuid.Nil {
		l.SKU = uuid.New()
	}
	return nil
}

// ProductLineAttribute tags a product line with one attribute value.
type ProductLineAttribute struct {
	ID               uint            `gorm:"primaryKey"`
	ProductLineID    uint            `gorm:"not null;uniqueIndex:idx_product_line_attribute_value" validate:"required"`
	AttributeValueID uint            `gorm:"not null;uniqueIndex:idx_product_line_attribute_value" validate:"required"`
	AttributeValue   *AttributeValue `gorm:"foreignKey:AttributeValueID;constraint:OnDelete:CASCADE"`
}

func (a *ProductLineAttribute) TableName() string {
	return "product_line_attributes"
}
