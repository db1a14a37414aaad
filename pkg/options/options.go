// Package options holds the loosely typed option maps used to construct
// filters and validators by name.
//
// Option maps usually come from decoded YAML or JSON, so the same option may
// arrive as an int, a float64 or a string. The typed accessors coerce those
// representations into the requested Go type and report a wrapped
// ErrInvalidOption when the value cannot be converted.
//
//	opts := options.Options{"min": "3", "max": 6.0}
//	min, _ := opts.Int("min", 0) // 3
//	max, _ := opts.Int("max", 0) // 6
package options

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// ErrInvalidOption is returned when an option value cannot be converted to the requested type.
var ErrInvalidOption = errors.New("invalid option")

// Options is a set of named construction options.
type Options map[string]any

// Has reports whether the option is present and not nil.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// Clone returns a shallow copy. A nil map clones to an empty one.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

func (o Options) String(key, def string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprint(s), nil
	}
	return def, fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOption, key, v)
}

func (o Options) Int(key string, def int) (int, error) {
	out, err := convert(o, key, reflect.TypeFor[int]())
	if err != nil || out == nil {
		return def, err
	}
	return out.(int), nil
}

func (o Options) Int64(key string, def int64) (int64, error) {
	out, err := convert(o, key, reflect.TypeFor[int64]())
	if err != nil || out == nil {
		return def, err
	}
	return out.(int64), nil
}

func (o Options) Float(key string, def float64) (float64, error) {
	out, err := convert(o, key, reflect.TypeFor[float64]())
	if err != nil || out == nil {
		return def, err
	}
	return out.(float64), nil
}

func (o Options) Bool(key string, def bool) (bool, error) {
	out, err := convert(o, key, reflect.TypeFor[bool]())
	if err != nil || out == nil {
		return def, err
	}
	return out.(bool), nil
}

// Strings returns a list option. A single string is treated as a one-element list.
func (o Options) Strings(key string) ([]string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case string:
		return []string{list}, nil
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			if item == nil {
				return nil, fmt.Errorf("%w: %q[%d] is nil", ErrInvalidOption, key, i)
			}
			s, ok := item.(string)
			if !ok {
				s = fmt.Sprint(item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q must be a list of strings, got %T", ErrInvalidOption, key, v)
}

// Values returns a list option as []any.
func (o Options) Values(key string) ([]any, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidOption, key, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// convert returns nil, nil when the option is absent.
func convert(o Options, key string, target reflect.Type) (any, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == target {
		return v, nil
	}

	if isNumberKind(rv.Kind()) && isNumberKind(target.Kind()) {
		if isFloatKind(rv.Kind()) && !isFloatKind(target.Kind()) {
			if f := rv.Float(); f != math.Trunc(f) {
				return nil, fmt.Errorf("%w: %q must be an integer, got %v", ErrInvalidOption, key, f)
			}
		}
		return rv.Convert(target).Interface(), nil
	}

	if s, ok := v.(string); ok {
		out, err := cast.FromType(strings.TrimSpace(s), target)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidOption, key, err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %q must be %s, got %T", ErrInvalidOption, key, target, v)
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
