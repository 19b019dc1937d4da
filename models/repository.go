package models

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createRecord inserts v on its own, leaving associations untouched.
func createRecord[T any](ctx context.Context, db *gorm.DB, op string, v *T) error {
	err := db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	return writeError(op, err)
}

// updateRecord writes the named fields of v, matched by its primary key.
// Fields left out of fields are never touched.
func updateRecord[T any](ctx context.Context, db *gorm.DB, op string, v *T, fields ...string) error {
	res := db.WithContext(ctx).Model(v).Select(fields).Updates(v)
	if res.Error != nil {
		return writeError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteRecord removes the row of type T with the given id.
func deleteRecord[T any, K uint | uint64](ctx context.Context, db *gorm.DB, op string, id K) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return deleteError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func findByID[T any, K uint | uint64](ctx context.Context, db *gorm.DB, op string, id K) (*T, error) {
	var v T
	if err := db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, readError(op, err, ErrNotFound)
	}
	return &v, nil
}
