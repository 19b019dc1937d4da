package models

// ProductImage references an image of a product line. At most one image per
// line carries DefaultImage; the partial unique index enforces it.
type ProductImage struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null" validate:"required,max=100"`
	AlternativeText string `gorm:"size:100;not null" validate:"max=100"`
	URL             string `gorm:"column:url;size:255;not null" validate:"required,max=255"`
	ProductLineID   uint   `gorm:"not null;uniqueIndex:unique_default_image_per_product_line,where:default_image = true" validate:"required"`
	DefaultImage    bool   `gorm:"not null;default:false"`
}

func (i *ProductImage) TableName() string {
	return "product_images"
}
