package models

import (
	"context"

	"gorm.io/gorm"
)

type ProductTypesRepository struct {
	db *gorm.DB
}

func NewProductTypesRepository(db *gorm.DB) *ProductTypesRepository {
	return &ProductTypesRepository{db: db}
}

func (r *ProductTypesRepository) GetProductType(ctx context.Context, id uint) (*ProductType, error) {
	var productType ProductType
	if err := r.db.WithContext(ctx).
		Preload("Children").
		First(&productType, id).Error; err != nil {
		return nil, readError("get product type", err, ErrNotFound)
	}
	return &productType, nil
}

func (r *ProductTypesRepository) CreateProductType(ctx context.Context, productType *ProductType) error {
	return createRecord(ctx, r.db, "create product type", productType)
}

func (r *ProductTypesRepository) UpdateProductType(ctx context.Context, productType *ProductType) error {
	return updateRecord(ctx, r.db, "update product type", productType, "Name", "ParentID")
}

// DeleteProductType removes a type with its whole subtree and the product
// links pointing into it.
func (r *ProductTypesRepository) DeleteProductType(ctx context.Context, id uint) error {
	return deleteRecord[ProductType](ctx, r.db, "delete product type", id)
}
