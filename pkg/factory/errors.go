package factory

import "errors"

var (
	ErrInvalidDefinition = errors.New("factory: invalid definition")
	ErrUnknownType       = errors.New("factory: unknown input type")
	ErrMissingName       = errors.New("factory: input has no name")
)
