package models

// ProductType is a node in the product type tree. Deleting a type removes
// its whole subtree and every product association pointing into it.
type ProductType struct {
	ID       uint          `gorm:"primaryKey"`
	Name     string        `gorm:"size:100;not null" validate:"required,max=100"`
	ParentID *uint         `gorm:"index"`
	Parent   *ProductType  `gorm:"foreignKey:ParentID"`
	Children []ProductType `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

func (t *ProductType) TableName() string {
	return "product_types"
}

// ProductProductType links a product to one of its product types.
type ProductProductType struct {
	ID            uint         `gorm:"primaryKey"`
	ProductID     uint         `gorm:"not null;uniqueIndex:idx_product_product_type" validate:"required"`
	Product       *Product     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	ProductTypeID uint         `gorm:"not null;uniqueIndex:idx_product_product_type" validate:"required"`
	ProductType   *ProductType `gorm:"foreignKey:ProductTypeID;constraint:OnDelete:CASCADE"`
}

func (pt *ProductProductType) TableName() string {
	return "product_product_types"
}
