package models

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductLineNotFound is returned when a product line is not found.
var ErrProductLineNotFound = errorsNotFound("product line")

type ProductLinesRepository struct {
	db *gorm.DB
}

func NewProductLinesRepository(db *gorm.DB) *ProductLinesRepository {
	return &ProductLinesRepository{db: db}
}

func (r *ProductLinesRepository) GetBySKU(ctx context.Context, sku uuid.UUID) (*ProductLine, error) {
	var line ProductLine
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Attributes.AttributeValue.Attribute").
		Where("sku = ?", sku).
		First(&line).Error; err != nil {
		return nil, readError("get product line", err, ErrProductLineNotFound)
	}
	return &line, nil
}

func (r *ProductLinesRepository) GetLinesForProduct(ctx context.Context, productID uint) ([]ProductLine, error) {
	var lines []ProductLine
	if err := orderLines(r.db.WithContext(ctx)).
		Where("product_id = ?", productID).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CreateLine inserts a product line. A SKU is generated when line.SKU is
// the zero UUID.
func (r *ProductLinesRepository) CreateLine(ctx context.Context, line *ProductLine) error {
	return createRecord(ctx, r.db, "create product line", line)
}

func (r *ProductLinesRepository) UpdateLine(ctx context.Context, line *ProductLine) error {
	err := updateRecord(ctx, r.db, "update product line", line,
		"Price", "StockQuantity", "IsActive", "Order", "Weight")
	if err == ErrNotFound {
		return ErrProductLineNotFound
	}
	return err
}

// DeleteLine removes a product line with its images and attribute tags.
func (r *ProductLinesRepository) DeleteLine(ctx context.Context, id uint) error {
	err := deleteRecord[ProductLine](ctx, r.db, "delete product line", id)
	if err == ErrNotFound {
		return ErrProductLineNotFound
	}
	return err
}

func (r *ProductLinesRepository) AddAttributeValue(ctx context.Context, lineID, valueID uint) error {
	tag := &ProductLineAttribute{ProductLineID: lineID, AttributeValueID: valueID}
	return createRecord(ctx, r.db, "add product line attribute", tag)
}
