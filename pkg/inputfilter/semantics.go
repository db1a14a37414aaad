package inputfilter

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/inputfilter/pkg/filter"
	"github.com/dmitrymomot/inputfilter/pkg/upload"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// Semantics describes how an Input treats its value: which shapes it
// accepts, what counts as empty, how filters are applied and whether
// validators see the raw or the filtered value.
type Semantics interface {
	// Name identifies the semantics in errors.
	Name() string
	// Accept checks the shape of a raw value and returns the value to store.
	Accept(value any) (any, error)
	// Zero is the raw value of an input without a value.
	Zero() any
	// Units splits a value into the parts validators run against.
	Units(value any) []any
	// Empty reports whether a unit is empty.
	Empty(unit any) bool
	// Filter runs the chain over a raw value.
	Filter(chain *filter.Chain, raw any) any
	// ValidateRaw reports whether validators run before filters.
	ValidateRaw() bool
}

// Scalar treats the value as one unit and filters it before validation.
type Scalar struct{}

func (Scalar) Name() string                  { return "scalar" }
func (Scalar) Accept(value any) (any, error) { return value, nil }
func (Scalar) Zero() any                     { return nil }
func (Scalar) Units(value any) []any         { return []any{value} }
func (Scalar) Empty(unit any) bool           { return validator.IsEmpty(unit) }
func (Scalar) ValidateRaw() bool             { return false }

func (Scalar) Filter(chain *filter.Chain, raw any) any {
	return chain.Filter(raw)
}

// Array requires a sequence, filters every element and validates element by element.
type Array struct{}

func (Array) Name() string          { return "array" }
func (Array) Zero() any             { return []any{} }
func (Array) Empty(unit any) bool   { return validator.IsEmpty(unit) }
func (Array) ValidateRaw() bool     { return false }
func (Array) Units(value any) []any { return toSlice(value) }

// Accept converts any slice or array into []any. Nil becomes an empty list.
func (Array) Accept(value any) (any, error) {
	if value == nil {
		return []any{}, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: got %T", ErrNotArray, value)
	}
	return toSlice(value), nil
}

func (Array) Filter(chain *filter.Chain, raw any) any {
	items := toSlice(raw)
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = chain.Filter(item)
	}
	return out
}

// File accepts upload descriptors (single or list), validates the raw
// descriptors and filters them only after a successful validation.
type File struct {
	// AutoPrependUploadValidator puts an UploadFile validator at the head of
	// the chain unless one is already there.
	AutoPrependUploadValidator bool
}

func (File) Name() string      { return "file" }
func (File) Zero() any         { return nil }
func (File) ValidateRaw() bool { return true }

// Accept normalizes multipart headers and legacy upload maps into descriptors.
func (File) Accept(value any) (any, error) {
	list, multi, err := upload.NormalizeList(value)
	if err != nil {
		return nil, err
	}
	if multi {
		return list, nil
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (File) Units(value any) []any {
	switch v := value.(type) {
	case upload.Descriptor:
		return []any{v}
	case []upload.Descriptor:
		if len(v) == 0 {
			return []any{nil}
		}
		out := make([]any, len(v))
		for i, d := range v {
			out[i] = d
		}
		return out
	}
	return []any{nil}
}

func (File) Empty(unit any) bool {
	d, ok := unit.(upload.Descriptor)
	return !ok || d.Empty()
}

func (File) Filter(chain *filter.Chain, raw any) any {
	if list, ok := raw.([]upload.Descriptor); ok {
		out := make([]any, len(list))
		for i, d := range list {
			out[i] = chain.Filter(d)
		}
		return out
	}
	if raw == nil {
		return nil
	}
	return chain.Filter(raw)
}

func toSlice(value any) []any {
	if items, ok := value.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
