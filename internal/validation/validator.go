// Package validation содержит настроенный валидатор входных данных.
package validation

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	phone    = regexp.MustCompile(`^\+?\d{10,15}$`)
	tracking = regexp.MustCompile(`^[A-Z]{2,4}-[0-9A-Z]{8,16}$`)
)

// New создает валидатор с пользовательскими правилами phone и tracking
// и поддержкой decimal.Decimal в числовых правилах.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("tracking", func(fl validator.FieldLevel) bool {
		return tracking.MatchString(fl.Field().String())
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
