// Package validator provides the validator contract, an ordered validator
// chain, a name-based registry and a set of built-in validators used by the
// inputfilter package.
//
// A Validator checks one value against an optional context map (the full data
// set being validated, so validators can look at sibling fields) and exposes
// the messages of its last failure:
//
//	type Validator interface {
//	    IsValid(value any, context map[string]any) bool
//	    Messages() Messages
//	}
//
// Messages are keyed by a validator-defined code ("isEmpty",
// "stringLengthTooShort", ...) and carry a translation key plus values so the
// text can be localized later.
//
// # Chains
//
// Chain runs validators in insertion order. Every failing validator adds its
// messages; a failing entry attached with breakOnFailure stops the chain.
//
//	chain := validator.NewChain(validator.WithResolver(validator.NewRegistry()))
//	chain.Attach(validator.NewDigits(), true)
//	if err := chain.AttachByName("string_length", options.Options{"max": 6}, false); err != nil {
//	    // unknown name or bad options
//	}
//	ok := chain.IsValid("12345", nil)
//
// # Registry
//
// Registry resolves names (case-insensitive, "_" and "-" ignored) to
// factories. There is no package-level registry: create one with NewRegistry
// and pass it where it is needed.
//
// # Error Handling
//
// Validation failures are reported through IsValid and Messages, never as Go
// errors. Configuration problems (unknown names, bad options) are returned as
// errors wrapping ErrUnknownValidator or ErrInvalidConfig.
//
// ValidationErrors is a flat, field-addressed error type. The inputfilter
// package produces it from a validation tree so callers can return a single
// error and inspect it with errors.As or ExtractValidationErrors.
//
// Validators keep the messages of their last call and are therefore not safe
// for concurrent use.
package validator
