package models

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated SQLite database with foreign keys enforced.
func newTestDB(t *testing.T, now ...func() time.Time) *gorm.DB {
	t.Helper()

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if len(now) > 0 {
		cfg.NowFunc = now[0]
	}

	dsn := filepath.Join(t.TempDir(), "catalog.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

// --- Fixtures ---

func mustCategory(t *testing.T, db *gorm.DB, name, slug string, parentID *uint) *Category {
	t.Helper()
	c := &Category{Name: name, Slug: slug, ParentID: parentID}
	require.NoError(t, NewCategoriesRepository(db).CreateCategory(context.Background(), c))
	return c
}

func mustProduct(t *testing.T, db *gorm.DB, pid, name, slug string, categoryID *uint) *Product {
	t.Helper()
	p := &Product{PID: pid, Name: name, Slug: slug, CategoryID: categoryID, IsActive: true}
	require.NoError(t, NewProductsRepository(db).CreateProduct(context.Background(), p))
	return p
}

func mustLine(t *testing.T, db *gorm.DB, productID uint, price string, order int) *ProductLine {
	t.Helper()
	l := &ProductLine{
		ProductID: productID,
		Price:     decimal.RequireFromString(price),
		Order:     order,
		Weight:    0.8,
		IsActive:  true,
	}
	require.NoError(t, NewProductLinesRepository(db).CreateLine(context.Background(), l))
	return l
}

func count[T any](t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(new(T))
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func uintPtr(v uint) *uint { return &v }

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
