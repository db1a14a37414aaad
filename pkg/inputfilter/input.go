package inputfilter

import (
	"github.com/dmitrymomot/inputfilter/pkg/filter"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// Input is a single named field: a raw value, a filter chain, a validator
// chain and the flags that decide how empty and missing values are treated.
//
// A new Input is required, rejects empty values and has no value.
type Input struct {
	name      string
	semantics Semantics

	value    any
	hasValue bool

	required        bool
	allowEmpty      bool
	continueIfEmpty bool
	breakOnFailure  bool

	errorMessage    string
	hasErrorMessage bool

	fallback    any
	hasFallback bool

	filters    *filter.Chain
	validators *validator.Chain

	notEmptyInjected bool
	uploadInjected   bool

	failed   bool
	passed   bool
	messages validator.Messages
}

// InputOption configures an Input.
type InputOption func(*Input)

// NewInput creates a scalar input.
func NewInput(name string, opts ...InputOption) *Input {
	in := &Input{
		name:       name,
		semantics:  Scalar{},
		required:   true,
		filters:    filter.NewChain(),
		validators: validator.NewChain(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.value = in.semantics.Zero()
	return in
}

// NewArrayInput creates an input whose value must be a list.
func NewArrayInput(name string, opts ...InputOption) *Input {
	return NewInput(name, append([]InputOption{WithSemantics(Array{})}, opts...)...)
}

// NewFileInput creates an input holding upload descriptors. An UploadFile
// validator is put in front of the chain on first validation.
func NewFileInput(name string, opts ...InputOption) *Input {
	return NewInput(name, append([]InputOption{WithSemantics(File{AutoPrependUploadValidator: true})}, opts...)...)
}

func WithSemantics(s Semantics) InputOption {
	return func(in *Input) {
		if s != nil {
			in.semantics = s
		}
	}
}

func WithRequired(required bool) InputOption {
	return func(in *Input) { in.required = required }
}

func WithAllowEmpty(allow bool) InputOption {
	return func(in *Input) { in.allowEmpty = allow }
}

func WithContinueIfEmpty(cont bool) InputOption {
	return func(in *Input) { in.continueIfEmpty = cont }
}

func WithBreakOnFailure(brk bool) InputOption {
	return func(in *Input) { in.breakOnFailure = brk }
}

// WithErrorMessage replaces every failure message with msg.
func WithErrorMessage(msg string) InputOption {
	return func(in *Input) { in.SetErrorMessage(msg) }
}

// WithFallback sets the value adopted when the input is missing or invalid.
func WithFallback(value any) InputOption {
	return func(in *Input) { in.SetFallbackValue(value) }
}

func WithFilters(filters ...filter.Filter) InputOption {
	return func(in *Input) {
		for _, f := range filters {
			in.filters.Attach(f)
		}
	}
}

// WithValidators attaches validators that do not break the chain.
func WithValidators(validators ...validator.Validator) InputOption {
	return func(in *Input) {
		for _, v := range validators {
			in.validators.Attach(v, false)
		}
	}
}

// WithResolvers lets the chains attach filters and validators by name.
func WithResolvers(filters filter.Resolver, validators validator.Resolver) InputOption {
	return func(in *Input) {
		if filters != nil {
			in.filters = filter.NewChain(filter.WithResolver(filters)).Merge(in.filters)
		}
		if validators != nil {
			in.validators = validator.NewChain(validator.WithResolver(validators)).Merge(in.validators)
		}
	}
}

func (in *Input) node() {}

func (in *Input) Name() string { return in.name }

func (in *Input) SetName(name string) *Input {
	in.name = name
	return in
}

func (in *Input) Semantics() Semantics { return in.semantics }

func (in *Input) IsRequired() bool { return in.required }

func (in *Input) SetRequired(required bool) *Input {
	in.required = required
	return in
}

func (in *Input) AllowEmpty() bool { return in.allowEmpty }

func (in *Input) SetAllowEmpty(allow bool) *Input {
	in.allowEmpty = allow
	return in
}

func (in *Input) ContinueIfEmpty() bool { return in.continueIfEmpty }

func (in *Input) SetContinueIfEmpty(cont bool) *Input {
	in.continueIfEmpty = cont
	return in
}

func (in *Input) BreakOnFailure() bool { return in.breakOnFailure }

func (in *Input) SetBreakOnFailure(brk bool) *Input {
	in.breakOnFailure = brk
	return in
}

// ErrorMessage returns the override message, if one is set.
func (in *Input) ErrorMessage() (string, bool) {
	return in.errorMessage, in.hasErrorMessage
}

func (in *Input) SetErrorMessage(msg string) *Input {
	in.errorMessage = msg
	in.hasErrorMessage = true
	return in
}

func (in *Input) ClearErrorMessage() *Input {
	in.errorMessage = ""
	in.hasErrorMessage = false
	return in
}

// FallbackValue returns the fallback, if one is set. A nil fallback is a
// valid fallback.
func (in *Input) FallbackValue() (any, bool) {
	return in.fallback, in.hasFallback
}

func (in *Input) SetFallbackValue(value any) *Input {
	in.fallback = value
	in.hasFallback = true
	return in
}

func (in *Input) ClearFallbackValue() *Input {
	in.fallback = nil
	in.hasFallback = false
	return in
}

func (in *Input) FilterChain() *filter.Chain { return in.filters }

// SetFilterChain replaces the filter chain. Nil is ignored.
func (in *Input) SetFilterChain(chain *filter.Chain) *Input {
	if chain != nil {
		in.filters = chain
	}
	return in
}

func (in *Input) ValidatorChain() *validator.Chain { return in.validators }

// SetValidatorChain replaces the validator chain. Nil is ignored.
func (in *Input) SetValidatorChain(chain *validator.Chain) *Input {
	if chain != nil {
		in.validators = chain
		in.notEmptyInjected = false
		in.uploadInjected = false
	}
	return in
}

// HasValue reports whether a value was set since construction or the last ResetValue.
func (in *Input) HasValue() bool { return in.hasValue }

// SetValue stores a raw value. Array inputs reject values that are not lists
// with ErrNotArray; file inputs reject values that are not upload sources.
func (in *Input) SetValue(value any) error {
	accepted, err := in.semantics.Accept(value)
	if err != nil {
		return err
	}
	in.value = accepted
	in.hasValue = true
	in.clearResult()
	return nil
}

// ResetValue returns the input to the no-value state.
func (in *Input) ResetValue() *Input {
	in.value = in.semantics.Zero()
	in.hasValue = false
	in.notEmptyInjected = false
	in.uploadInjected = false
	in.clearResult()
	return in
}

// RawValue returns the value as set, before filtering.
func (in *Input) RawValue() any {
	if !in.hasValue {
		return in.semantics.Zero()
	}
	return in.value
}

// Value returns the filtered value. File inputs return the raw descriptors
// until a validation pass succeeds.
func (in *Input) Value() any {
	if in.semantics.ValidateRaw() && !in.passed {
		return in.RawValue()
	}
	return in.semantics.Filter(in.filters, in.RawValue())
}

// IsValid validates the current value. The context is passed to every
// validator so it can compare against sibling fields.
//
// A missing value adopts the fallback if one is set, passes when the input is
// optional and fails with CodeRequired otherwise. Empty units are skipped when
// the input is optional or allows empty values, unless continueIfEmpty is
// set. When empty values are not allowed a NotEmpty validator is put in front
// of the chain once. A failure with a fallback set adopts the fallback and
// passes.
func (in *Input) IsValid(context map[string]any) bool {
	in.clearResult()

	if !in.hasValue {
		switch {
		case in.hasFallback:
			in.adoptFallback()
			return in.pass()
		case in.required:
			in.messages = validator.Messages{{
				Code:           CodeRequired,
				Text:           "Value is required",
				TranslationKey: "validation.required",
			}}
			return in.fail()
		}
		return in.pass()
	}

	subject := in.value
	if !in.semantics.ValidateRaw() {
		subject = in.semantics.Filter(in.filters, in.value)
	}

	in.injectUploadValidator()

	for _, unit := range in.semantics.Units(subject) {
		if in.semantics.Empty(unit) && !in.continueIfEmpty && (!in.required || in.allowEmpty) {
			continue
		}
		if !in.allowEmpty && !in.continueIfEmpty {
			in.injectNotEmptyValidator()
		}
		if !in.validators.IsValid(unit, context) {
			if in.hasFallback {
				in.adoptFallback()
				return in.pass()
			}
			return in.fail()
		}
	}
	return in.pass()
}

// Messages returns the failure messages of the last IsValid call. The error
// message override, when set, replaces them wholesale.
func (in *Input) Messages() validator.Messages {
	if !in.failed {
		return nil
	}
	if in.hasErrorMessage {
		return validator.Messages{{Code: CodeErrorMessage, Text: in.errorMessage}}
	}
	if !in.messages.IsEmpty() {
		return in.messages.Clone()
	}
	return in.validators.Messages()
}

// Merge copies configuration and value from other and appends its chains.
// Required, allowEmpty, breakOnFailure, name and the error message override
// are taken from other; continueIfEmpty is set if either input sets it.
func (in *Input) Merge(other *Input) *Input {
	if other == nil || other == in {
		return in
	}
	in.name = other.name
	in.errorMessage, in.hasErrorMessage = other.errorMessage, other.hasErrorMessage
	in.breakOnFailure = other.breakOnFailure
	in.required = other.required
	in.allowEmpty = other.allowEmpty
	in.continueIfEmpty = in.continueIfEmpty || other.continueIfEmpty
	if other.hasFallback {
		in.fallback, in.hasFallback = other.fallback, true
	}
	if other.hasValue {
		in.value, in.hasValue = other.value, true
		in.clearResult()
	}
	in.filters.Merge(other.filters)
	in.validators.Merge(other.validators)
	return in
}

func (in *Input) adoptFallback() {
	in.value = in.fallback
	in.hasValue = true
}

func (in *Input) pass() bool {
	in.passed = true
	return true
}

func (in *Input) fail() bool {
	in.failed = true
	return false
}

func (in *Input) clearResult() {
	in.failed = false
	in.passed = false
	in.messages = nil
}

func (in *Input) injectNotEmptyValidator() {
	if in.notEmptyInjected {
		return
	}
	in.notEmptyInjected = true
	for _, e := range in.validators.Entries() {
		if m, ok := e.Validator.(validator.NotEmptyMarker); ok && m.RejectsEmpty() {
			return
		}
	}
	if in.validators.Resolver() != nil {
		if err := in.validators.PrependByName("not_empty", nil, true); err == nil {
			return
		}
	}
	in.validators.Prepend(validator.NewNotEmpty(), true)
}

func (in *Input) injectUploadValidator() {
	f, ok := in.semantics.(File)
	if !ok || !f.AutoPrependUploadValidator || in.uploadInjected {
		return
	}
	in.uploadInjected = true
	for _, e := range in.validators.Entries() {
		if _, ok := e.Validator.(*validator.UploadFile); ok {
			return
		}
	}
	in.validators.Prepend(validator.NewUploadFile(), true)
}
