package models

import (
	"context"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errorsNotFound("category")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Preload("Parent").
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		return nil, readError("get category", err, ErrCategoryNotFound)
	}
	return &category, nil
}

// GetChildren lists the direct children of a category.
func (r *CategoriesRepository) GetChildren(ctx context.Context, id uint) ([]Category, error) {
	var children []Category
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Order("name").
		Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	return createRecord(ctx, r.db, "create category", category)
}

func (r *CategoriesRepository) UpdateCategory(ctx context.Context, category *Category) error {
	err := updateRecord(ctx, r.db, "update category", category, "Name", "Slug", "IsActive", "ParentID")
	if err == ErrNotFound {
		return ErrCategoryNotFound
	}
	return err
}

// DeleteCategory removes a category. It fails with ErrProtectedReference
// while children exist; products in the category keep existing with no
// category.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) error {
	err := deleteRecord[Category](ctx, r.db, "delete category", id)
	if err == ErrNotFound {
		return ErrCategoryNotFound
	}
	return err
}
