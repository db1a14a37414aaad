package filter

import (
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// ToInt converts numeric strings and floats to int. Floats are truncated.
// Anything else passes through so validators can reject it.
func ToInt() Filter {
	return Func(func(value any) any {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return int(rv.Uint())
		case reflect.Float32, reflect.Float64:
			return int(rv.Float())
		case reflect.String:
			s := strings.TrimSpace(rv.String())
			if out, err := cast.FromType(s, reflect.TypeFor[int]()); err == nil {
				return out
			}
			if out, err := cast.FromType(s, reflect.TypeFor[float64]()); err == nil {
				return int(out.(float64))
			}
		}
		return value
	})
}

// ToFloat converts numeric strings and integers to float64.
func ToFloat() Filter {
	return Func(func(value any) any {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			return rv.Float()
		case reflect.String:
			if out, err := cast.FromType(strings.TrimSpace(rv.String()), reflect.TypeFor[float64]()); err == nil {
				return out
			}
		}
		return value
	})
}

var booleanWords = map[string]bool{
	"yes": true, "y": true, "on": true,
	"no": false, "n": false, "off": false,
}

// Boolean converts common boolean spellings and integers to bool.
func Boolean() Filter {
	return Func(func(value any) any {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Bool:
			return rv.Bool()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int() != 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint() != 0
		case reflect.String:
			s := strings.ToLower(strings.TrimSpace(rv.String()))
			if b, ok := booleanWords[s]; ok {
				return b
			}
			if out, err := cast.FromType(s, reflect.TypeFor[bool]()); err == nil {
				return out
			}
		}
		return value
	})
}

// ToNull turns empty strings and empty sequences into nil.
func ToNull() Filter {
	return Func(func(value any) any {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Map:
			if rv.Len() == 0 {
				return nil
			}
		}
		return value
	})
}
