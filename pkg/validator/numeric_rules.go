package validator

import "fmt"

const (
	BetweenNotBetween       = "notBetween"
	BetweenNotBetweenStrict = "notBetweenStrict"
	BetweenValueNotNumeric  = "valueNotNumeric"

	GreaterThanNotGreater          = "notGreaterThan"
	GreaterThanNotGreaterInclusive = "notGreaterThanInclusive"

	LessThanNotLess          = "notLessThan"
	LessThanNotLessInclusive = "notLessThanInclusive"

	NumericInvalid = "valueNotNumeric"
)

// Between accepts numbers within [Min, Max], or (Min, Max) when not inclusive.
type Between struct {
	Base
	Min       float64
	Max       float64
	Inclusive bool
}

func NewBetween(min, max float64, inclusive bool) (*Between, error) {
	if max < min {
		return nil, fmt.Errorf("%w: between min %v greater than max %v", ErrInvalidConfig, min, max)
	}
	return &Between{Min: min, Max: max, Inclusive: inclusive}, nil
}

func (v *Between) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	n, ok := number(value)
	if !ok {
		return v.Fail(BetweenValueNotNumeric, "The input is not numeric", "validation.numeric", nil)
	}
	values := map[string]any{"min": v.Min, "max": v.Max}
	if v.Inclusive {
		if n < v.Min || n > v.Max {
			return v.Fail(BetweenNotBetween,
				fmt.Sprintf("The input is not between '%v' and '%v', inclusively", v.Min, v.Max),
				"validation.between", values)
		}
		return true
	}
	if n <= v.Min || n >= v.Max {
		return v.Fail(BetweenNotBetweenStrict,
			fmt.Sprintf("The input is not strictly between '%v' and '%v'", v.Min, v.Max),
			"validation.between_strict", values)
	}
	return true
}

// GreaterThan accepts numbers above Min, or equal to it when inclusive.
type GreaterThan struct {
	Base
	Min       float64
	Inclusive bool
}

func NewGreaterThan(min float64, inclusive bool) *GreaterThan {
	return &GreaterThan{Min: min, Inclusive: inclusive}
}

func (v *GreaterThan) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	n, ok := number(value)
	if !ok {
		return v.Fail(NumericInvalid, "The input is not numeric", "validation.numeric", nil)
	}
	values := map[string]any{"min": v.Min}
	if v.Inclusive && n < v.Min {
		return v.Fail(GreaterThanNotGreaterInclusive,
			fmt.Sprintf("The input is not greater than or equal to '%v'", v.Min),
			"validation.min", values)
	}
	if !v.Inclusive && n <= v.Min {
		return v.Fail(GreaterThanNotGreater,
			fmt.Sprintf("The input is not greater than '%v'", v.Min),
			"validation.greater_than", values)
	}
	return true
}

// LessThan accepts numbers below Max, or equal to it when inclusive.
type LessThan struct {
	Base
	Max       float64
	Inclusive bool
}

func NewLessThan(max float64, inclusive bool) *LessThan {
	return &LessThan{Max: max, Inclusive: inclusive}
}

func (v *LessThan) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	n, ok := number(value)
	if !ok {
		return v.Fail(NumericInvalid, "The input is not numeric", "validation.numeric", nil)
	}
	values := map[string]any{"max": v.Max}
	if v.Inclusive && n > v.Max {
		return v.Fail(LessThanNotLessInclusive,
			fmt.Sprintf("The input is not less or equal than '%v'", v.Max),
			"validation.max", values)
	}
	if !v.Inclusive && n >= v.Max {
		return v.Fail(LessThanNotLess,
			fmt.Sprintf("The input is not less than '%v'", v.Max),
			"validation.less_than", values)
	}
	return true
}
