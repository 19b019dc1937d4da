package models

import (
	"context"

	"gorm.io/gorm"
)

type AttributesRepository struct {
	db *gorm.DB
}

func NewAttributesRepository(db *gorm.DB) *AttributesRepository {
	return &AttributesRepository{db: db}
}

// GetAttribute loads an attribute together with its values.
func (r *AttributesRepository) GetAttribute(ctx context.Context, id uint) (*Attribute, error) {
	var attribute Attribute
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB { return db.Order("value") }).
		First(&attribute, id).Error; err != nil {
		return nil, readError("get attribute", err, ErrNotFound)
	}
	return &attribute, nil
}

func (r *AttributesRepository) CreateAttribute(ctx context.Context, attribute *Attribute) error {
	return createRecord(ctx, r.db, "create attribute", attribute)
}

func (r *AttributesRepository) UpdateAttribute(ctx context.Context, attribute *Attribute) error {
	return updateRecord(ctx, r.db, "update attribute", attribute, "Name", "Description")
}

// DeleteAttribute removes an attribute and, by cascade, all of its values
// and every product line tag that used them.
func (r *AttributesRepository) DeleteAttribute(ctx context.Context, id uint) error {
	return deleteRecord[Attribute](ctx, r.db, "delete attribute", id)
}

func (r *AttributesRepository) AddValue(ctx context.Context, value *AttributeValue) error {
	return createRecord(ctx, r.db, "add attribute value", value)
}

func (r *AttributesRepository) DeleteValue(ctx context.Context, id uint) error {
	return deleteRecord[AttributeValue](ctx, r.db, "delete attribute value", id)
}
