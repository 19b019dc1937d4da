package models

// Attribute names a variant dimension such as size or colour.
type Attribute struct {
	ID          uint             `gorm:"primaryKey"`
	Name        string           `gorm:"size:100;not null" validate:"required,max=100"`
	Description *string          `gorm:"type:text"`
	Values      []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

func (a *Attribute) TableName() string {
	return "attributes"
}

// AttributeValue is one concrete value of an Attribute, e.g. size=Large.
type AttributeValue struct {
	ID          uint       `gorm:"primaryKey"`
	Value       string     `gorm:"size:100;not null" validate:"required,max=100"`
	AttributeID uint       `gorm:"not null;index" validate:"required"`
	Attribute   *Attribute `gorm:"foreignKey:AttributeID"`
}

func (v *AttributeValue) TableName() string {
	return "attribute_values"
}
