package inputfilter

import "errors"

var (
	ErrInvalidNode            = errors.New("inputfilter: invalid node")
	ErrInvalidNodeName        = errors.New("inputfilter: node has no name")
	ErrNodeKindMismatch       = errors.New("inputfilter: cannot merge nodes of different kinds")
	ErrInputNotFound          = errors.New("inputfilter: input not found")
	ErrInvalidData            = errors.New("inputfilter: data must be a map with string keys")
	ErrInvalidCollectionData  = errors.New("inputfilter: collection data must be a list of maps")
	ErrNotArray               = errors.New("inputfilter: value must be a list")
	ErrInvalidValidationGroup = errors.New("inputfilter: invalid validation group")
	ErrNestedGroupOnInput     = errors.New("inputfilter: nested validation group targets an input")
	ErrInvalidCount           = errors.New("inputfilter: count must not be negative")
)

// Message codes produced by the package itself.
const (
	CodeRequired     = "inputRequired"
	CodeErrorMessage = "errorMessage"
	CodeInvalidData  = "invalidData"
	CodeNotArray     = "notArray"
	CodeNotEnough    = "notEnoughElements"
)
