package validator

import "errors"

var (
	// ErrUnknownValidator is returned when a registry has no factory for a name.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrNoResolver is returned by by-name chain operations when the chain has no resolver.
	ErrNoResolver = errors.New("validator chain has no resolver")

	// ErrInvalidConfig is returned when a validator is constructed with unusable options.
	ErrInvalidConfig = errors.New("invalid validator configuration")
)
