// Package val validates structs with go-playground/validator and reports failures as errx errors.
package val

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate //nolint:gochecknoglobals // shared, safe for concurrent use
	validateOnce sync.Once           //nolint:gochecknoglobals // lazy init of validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(getTagName)
		registerCustomTypes(validate)
		registerCustomValidations(validate)
	})
	return validate
}

// getTagName names a field after its 'json' or 'yaml' tag, falling back to the field name.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "yaml"} {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
