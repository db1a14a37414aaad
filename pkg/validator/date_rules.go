package validator

import (
	"fmt"
	"time"
)

const (
	DateInvalid     = "dateInvalid"
	DateInvalidDate = "dateInvalidDate"
	DateFalseFormat = "dateFalseFormat"
)

// DefaultDateLayout is the layout used when none is configured.
const DefaultDateLayout = time.DateOnly

// Date accepts time.Time values and strings in Layout.
type Date struct {
	Base
	Layout string
}

func NewDate(layout string) *Date {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &Date{Layout: layout}
}

func (v *Date) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	switch d := value.(type) {
	case time.Time:
		if d.IsZero() {
			return v.Fail(DateInvalidDate, "The input does not appear to be a valid date", "validation.date", nil)
		}
		return true
	case *time.Time:
		if d == nil || d.IsZero() {
			return v.Fail(DateInvalidDate, "The input does not appear to be a valid date", "validation.date", nil)
		}
		return true
	case string:
		if _, err := time.Parse(v.Layout, d); err != nil {
			return v.Fail(DateFalseFormat,
				fmt.Sprintf("The input does not fit the date format '%s'", v.Layout),
				"validation.date_format", map[string]any{"format": v.Layout})
		}
		return true
	}
	return v.Fail(DateInvalid, "Invalid type given. String or time expected", "validation.date_invalid", nil)
}
