package models

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errorsNotFound("product")

	// ErrUniquenessViolation is returned when a unique or partial unique
	// index rejects a write.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrReferentialIntegrity is returned when a foreign key on the written
	// row does not resolve.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrProtectedReference is returned when a delete is blocked by
	// dependent rows.
	ErrProtectedReference = errors.New("protected reference")
)

// ValidationError reports a field that fails its declared bounds.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
)

func classify(err error) constraintKind {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		}
	}

	return constraintNone
}

func classifyCode(code string) constraintKind {
	switch code {
	case pgUniqueViolation:
		return constraintUnique
	case pgForeignKeyViolation:
		return constraintForeignKey
	}
	return constraintNone
}

// writeError maps a storage error raised by an insert or update onto the
// package's error kinds. Unrecognised errors are returned as they are.
func writeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	switch classify(err) {
	case constraintUnique:
		return fmt.Errorf("%s: %w: %v", op, ErrUniquenessViolation, err)
	case constraintForeignKey:
		return fmt.Errorf("%s: %w: %v", op, ErrReferentialIntegrity, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError maps a storage error raised by a delete. A foreign key
// failure here means a restricting dependent still exists.
func deleteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if classify(err) == constraintForeignKey {
		return fmt.Errorf("%s: %w: %v", op, ErrProtectedReference, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// readError converts gorm's not-found into notFound.
func readError(op string, err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func errorsNotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
