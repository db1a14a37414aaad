package validator

import "reflect"

const InArrayNotInArray = "notInArray"

// InArray accepts values found in Haystack. Strict comparison requires equal
// dynamic types; loose comparison compares string forms, so "1" matches 1.
type InArray struct {
	Base
	Haystack []any
	Strict   bool
}

func NewInArray(haystack []any, strict bool) *InArray {
	return &InArray{Haystack: haystack, Strict: strict}
}

func (v *InArray) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	for _, candidate := range v.Haystack {
		if v.Strict {
			if reflect.DeepEqual(candidate, value) {
				return true
			}
			continue
		}
		if looseEqual(candidate, value) {
			return true
		}
	}
	return v.Fail(InArrayNotInArray, "The input was not found in the haystack", "validation.in_list",
		map[string]any{"haystack": v.Haystack})
}

func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	as, aok := scalarString(a)
	bs, bok := scalarString(b)
	return aok && bok && as == bs
}
