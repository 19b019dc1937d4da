package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Prices are stored as decimal(10,2).
var (
	maxPriceExclusive = decimal.NewFromInt(100_000_000)
	priceScale        = int32(2)
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
			if d, ok := v.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		validate.RegisterStructValidation(validateLinePrice, ProductLine{})
	})
	return validate
}

// Validate checks v against its declared field bounds and returns the first
// failure as a *ValidationError.
func Validate(v interface{}) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func validateLinePrice(sl validator.StructLevel) {
	line := sl.Current().Interface().(ProductLine)
	if !line.Price.Equal(line.Price.Truncate(priceScale)) {
		sl.ReportError(line.Price, "Price", "Price", "scale", "2")
	}
	if line.Price.Abs().GreaterThanOrEqual(maxPriceExclusive) {
		sl.ReportError(line.Price, "Price", "Price", "lt", maxPriceExclusive.String())
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "slug":
		return "must contain only letters, numbers, hyphens or underscores"
	case "gtefield":
		return fmt.Sprintf("must not be before %s", fe.Param())
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}

func (c *Category) BeforeSave(*gorm.DB) error             { return Validate(c) }
func (e *SeasonalEvent) BeforeSave(*gorm.DB) error        { return Validate(e) }
func (a *Attribute) BeforeSave(*gorm.DB) error            { return Validate(a) }
func (v *AttributeValue) BeforeSave(*gorm.DB) error       { return Validate(v) }
func (t *ProductType) BeforeSave(*gorm.DB) error          { return Validate(t) }
func (pt *ProductProductType) BeforeSave(*gorm.DB) error  { return Validate(pt) }
func (p *Product) BeforeSave(*gorm.DB) error              { return Validate(p) }
func (l *ProductLine) BeforeSave(*gorm.DB) error          { return Validate(l) }
func (a *ProductLineAttribute) BeforeSave(*gorm.DB) error { return Validate(a) }
func (i *ProductImage) BeforeSave(*gorm.DB) error         { return Validate(i) }
