package models

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	CategorySlug  string
	PriceLessThan *float64
	ActiveOnly    bool
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")

	// Filter
	if filters.CategorySlug != "" {
		query = query.Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.PriceLessThan != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM product_lines WHERE product_lines.product_id = products.id AND product_lines.is_active = ? AND product_lines.price < ?)",
			true, *filters.PriceLessThan,
		)
	}
	if filters.ActiveOnly {
		query = query.Where("products.is_active = ?", true)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.
		Preload("Category").
		Preload("Lines", orderLines).
		Order("products.id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetByPID loads a product with its category, seasonal event and every
// product line, including images and attribute values.
func (r *ProductsRepository) GetByPID(ctx context.Context, pid string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SeasonalEvent").
		Preload("Lines", orderLines).
		Preload("Lines.Images").
		Preload("Lines.Attributes.AttributeValue.Attribute").
		Where("pid = ?", pid).
		First(&product).Error; err != nil {
		return nil, readError("get product", err, ErrProductNotFound)
	}
	return &product, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	return createRecord(ctx, r.db, "create product", product)
}

// UpdateProduct writes the client-editable fields of product and refreshes
// updated_at. created_at is never written.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, product *Product) error {
	err := updateRecord(ctx, r.db, "update product", product,
		"PID", "Slug", "Name", "Description", "IsActive", "CategoryID", "SeasonalEventID")
	if err == ErrNotFound {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Select("created_at", "updated_at").First(product, product.ID).Error
	return readError("update product", err, ErrProductNotFound)
}

// DeleteProduct removes a product. It fails with ErrProtectedReference while
// the product still has product lines.
func (r *ProductsRepository) DeleteProduct(ctx context.Context, id uint) error {
	err := deleteRecord[Product](ctx, r.db, "delete product", id)
	if err == ErrNotFound {
		return ErrProductNotFound
	}
	return err
}

func (r *ProductsRepository) AddProductType(ctx context.Context, productID, productTypeID uint) error {
	link := &ProductProductType{ProductID: productID, ProductTypeID: productTypeID}
	return createRecord(ctx, r.db, "add product type", link)
}

func (r *ProductsRepository) RemoveProductType(ctx context.Context, productID, productTypeID uint) error {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND product_type_id = ?", productID, productTypeID).
		Delete(&ProductProductType{})
	if res.Error != nil {
		return deleteError("remove product type", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductsRepository) GetProductTypes(ctx context.Context, productID uint) ([]ProductType, error) {
	var types []ProductType
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_product_types ON product_product_types.product_type_id = product_types.id").
		Where("product_product_types.product_id = ?", productID).
		Order("product_types.name").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).Order("id")
}
