package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter = errors.New("i18n: adapter is nil")

	ErrJSONParsingCancelled = errors.New("i18n: json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("i18n: failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")
	ErrInvalidStructure     = errors.New("i18n: translations must be grouped by language")

	ErrUnsupportedFile      = errors.New("i18n: unsupported translation file")
	ErrLoadingFileCancelled = errors.New("i18n: loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile    = errors.New("i18n: failed to parse translation file")
)

// ErrLanguageNotSupported indicates that the requested language has no translations.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("i18n: language not supported: %s", e.Lang)
}
