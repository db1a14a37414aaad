package inputfilter

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// Node is an element of an input filter tree: *Input, *InputFilter or
// *CollectionInputFilter.
type Node interface {
	node()
}

// nested is implemented by nodes that own child nodes.
type nested interface {
	Node
	// populate takes the value found under the node's key in the parent data.
	populate(value any, present bool) error
	validate(context map[string]any) bool
	values() any
	rawValues() any
	messages() any
	flatten(prefix string, errs *validator.ValidationErrors)
	setGroup(spec any) error
	// saveGroups returns a func that restores the groups of the node and
	// its descendants.
	saveGroups() func()
}

func checkNode(n Node) error {
	switch v := n.(type) {
	case *Input:
		if v != nil {
			return nil
		}
	case *InputFilter:
		if v != nil {
			return nil
		}
	case *CollectionInputFilter:
		if v != nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %T", ErrInvalidNode, n)
}

func mergeNodes(dst, src Node) error {
	switch d := dst.(type) {
	case *Input:
		if s, ok := src.(*Input); ok {
			d.Merge(s)
			return nil
		}
	case *InputFilter:
		if s, ok := src.(*InputFilter); ok {
			return d.Merge(s)
		}
	case *CollectionInputFilter:
		if s, ok := src.(*CollectionInputFilter); ok {
			return d.Merge(s)
		}
	}
	return fmt.Errorf("%w: %T and %T", ErrNodeKindMismatch, dst, src)
}

// asMap converts map-like data with string keys to map[string]any.
func asMap(data any) (map[string]any, bool) {
	switch m := data.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

type element struct {
	key   int
	value map[string]any
}

// asElements converts a list of maps, or a map keyed by int, to ordered
// elements. Map keys are sorted.
func asElements(data any) ([]element, bool) {
	if data == nil {
		return nil, true
	}
	switch v := data.(type) {
	case []map[string]any:
		out := make([]element, len(v))
		for i, m := range v {
			out[i] = element{key: i, value: m}
		}
		return out, true
	case map[int]any:
		keys := make([]int, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		out := make([]element, 0, len(v))
		for _, k := range keys {
			m, ok := asMap(v[k])
			if !ok {
				return nil, false
			}
			out = append(out, element{key: k, value: m})
		}
		return out, true
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]element, rv.Len())
	for i := range out {
		m, ok := asMap(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = element{key: i, value: m}
	}
	return out, true
}
