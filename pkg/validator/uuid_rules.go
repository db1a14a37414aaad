package validator

import (
	"strings"

	"github.com/google/uuid"
)

const (
	UUIDInvalid     = "valueNotUuid"
	UUIDInvalidType = "uuidInvalidType"
)

// UUID accepts the canonical 36 character UUID form.
type UUID struct {
	Base
}

func NewUUID() *UUID {
	return &UUID{}
}

func (v *UUID) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	s, ok := value.(string)
	if !ok {
		return v.Fail(UUIDInvalidType, "Invalid type given. String expected", "validation.uuid_invalid", nil)
	}

	// Fast rejection before parsing.
	if len(s) != 36 || strings.TrimSpace(s) != s {
		return v.Fail(UUIDInvalid, "Invalid UUID format", "validation.uuid", nil)
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return v.Fail(UUIDInvalid, "Invalid UUID format", "validation.uuid", nil)
	}

	if _, err := uuid.Parse(s); err != nil {
		return v.Fail(UUIDInvalid, "Invalid UUID format", "validation.uuid", nil)
	}
	return true
}
