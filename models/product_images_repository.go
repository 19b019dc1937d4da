package models

import (
	"context"

	"gorm.io/gorm"
)

// ErrImageNotFound is returned when an image is not found on a product line.
var ErrImageNotFound = errorsNotFound("product image")

type ProductImagesRepository struct {
	db *gorm.DB
}

func NewProductImagesRepository(db *gorm.DB) *ProductImagesRepository {
	return &ProductImagesRepository{db: db}
}

func (r *ProductImagesRepository) GetImagesForLine(ctx context.Context, lineID uint) ([]ProductImage, error) {
	var images []ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_line_id = ?", lineID).
		Order("default_image DESC").
		Order("id").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// AddImage inserts an image. A second default image on the same line is
// rejected with ErrUniquenessViolation.
func (r *ProductImagesRepository) AddImage(ctx context.Context, image *ProductImage) error {
	return createRecord(ctx, r.db, "add product image", image)
}

func (r *ProductImagesRepository) UpdateImage(ctx context.Context, image *ProductImage) error {
	err := updateRecord(ctx, r.db, "update product image", image,
		"Name", "AlternativeText", "URL", "DefaultImage")
	if err == ErrNotFound {
		return ErrImageNotFound
	}
	return err
}

// SetDefaultImage makes imageID the default image of lineID, clearing the
// previous default in the same transaction.
func (r *ProductImagesRepository) SetDefaultImage(ctx context.Context, lineID, imageID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image ProductImage
		if err := tx.Where("id = ? AND product_line_id = ?", imageID, lineID).
			First(&image).Error; err != nil {
			return readError("set default image", err, ErrImageNotFound)
		}
		if image.DefaultImage {
			return nil
		}

		if err := tx.Model(&ProductImage{}).
			Where("product_line_id = ? AND default_image = ?", lineID, true).
			UpdateColumn("default_image", false).Error; err != nil {
			return writeError("clear default image", err)
		}

		err := tx.Model(&image).UpdateColumn("default_image", true).Error
		return writeError("set default image", err)
	})
}

func (r *ProductImagesRepository) DeleteImage(ctx context.Context, id uint) error {
	err := deleteRecord[ProductImage](ctx, r.db, "delete product image", id)
	if err == ErrNotFound {
		return ErrImageNotFound
	}
	return err
}
