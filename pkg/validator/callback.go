package validator

const CallbackInvalid = "callbackValue"

// CheckFunc is the predicate wrapped by Callback.
type CheckFunc func(value any, context map[string]any) bool

// Callback adapts a predicate into a Validator.
type Callback struct {
	Base
	Check   CheckFunc
	Message string
}

func NewCallback(check CheckFunc, message string) *Callback {
	if message == "" {
		message = "The input is not valid"
	}
	return &Callback{Check: check, Message: message}
}

func (v *Callback) IsValid(value any, context map[string]any) bool {
	v.Reset()
	if v.Check == nil || !v.Check(value, context) {
		return v.Fail(CallbackInvalid, v.Message, "validation.callback", nil)
	}
	return true
}
