package val

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const maxMenuNameLength = 64

// registerCustomTypes lets numeric tags such as gte=0 apply to decimal fields.
func registerCustomTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
}

func decimalValue(field reflect.Value) any {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return f
	}
	return nil
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("menu_name", func(fl validator.FieldLevel) bool {
		return IsMenuName(fl.Field().String())
	})
}

// IsMenuName reports whether name can be printed on a menu: not blank, no
// surrounding whitespace and at most 64 characters.
func IsMenuName(name string) bool {
	return name != "" &&
		strings.TrimSpace(name) == name &&
		utf8.RuneCountInString(name) <= maxMenuNameLength
}
