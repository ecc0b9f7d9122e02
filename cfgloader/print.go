package cfgloader

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TechArp/CafeApp/observability/logger"
)

const maskTag = "mask"

// printConfig logs config with every `mask:"true"` field hidden.
func printConfig(config any) {
	log := logger.Named("cfgloader")

	out, err := yaml.Marshal(maskConfig(config))
	if err != nil {
		log.Errorx(err)
		return
	}
	log.Infof("Loaded config:\n%s", string(out))
}

// maskConfig returns a copy of config safe for printing. Strings under a
// masked field become asterisks of the same length, other scalars become
// their zero value; structs, slices and maps under it are masked deeply.
func maskConfig(config any) any {
	v := reflect.ValueOf(config)
	if !v.IsValid() {
		return nil
	}
	return mask(v, false).Interface()
}

func mask(v reflect.Value, hide bool) reflect.Value {
	switch v.Kind() { //nolint:exhaustive // scalars are handled by the default branch
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return v
		}
		if v.Kind() == reflect.Interface {
			return mask(v.Elem(), hide)
		}
		out := reflect.New(v.Elem().Type())
		out.Elem().Set(mask(v.Elem(), hide))
		return out

	case reflect.Struct:
		// Unexported fields are copied as is unless the struct is masked.
		out := reflect.New(v.Type()).Elem()
		if !hide {
			out.Set(v)
		}
		for i := range v.NumField() {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			out.Field(i).Set(mask(v.Field(i), hide || field.Tag.Get(maskTag) == "true"))
		}
		return out

	case reflect.Slice, reflect.Array:
		if !hide || (v.Kind() == reflect.Slice && v.IsNil()) {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		if v.Kind() == reflect.Slice {
			out = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		}
		for i := range v.Len() {
			out.Index(i).Set(mask(v.Index(i), true))
		}
		return out

	case reflect.Map:
		if !hide || v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), mask(iter.Value(), true))
		}
		return out

	case reflect.String:
		if !hide {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.SetString(strings.Repeat("*", v.Len()))
		return out

	default:
		if !hide {
			return v
		}
		return reflect.Zero(v.Type())
	}
}
