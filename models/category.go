package models

// Category represents a node in the category tree.
// Name and slug are globally unique. A category cannot be deleted while it
// still has children; its products lose their category instead.
type Category struct {
	ID       uint       `gorm:"primaryKey"`
	Name     string     `gorm:"size:100;uniqueIndex;not null" validate:"required,max=100"`
	Slug     string     `gorm:"size:50;uniqueIndex;not null" validate:"required,max=50,slug"`
	IsActive bool       `gorm:"not null;default:false"`
	ParentID *uint      `gorm:"index"`
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	Products []Product  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (c *Category) TableName() string {
	return "categories"
}
