package filter

import "errors"

var (
	// ErrUnknownFilter is returned when a registry has no factory for a name.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrNoResolver is returned by by-name chain operations when the chain has no resolver.
	ErrNoResolver = errors.New("filter chain has no resolver")

	// ErrInvalidConfig is returned when a filter is constructed with unusable options.
	ErrInvalidConfig = errors.New("invalid filter configuration")
)
