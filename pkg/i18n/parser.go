package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns the content of a translation file into translations keyed by
// language, then by (possibly nested) message key.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension. It returns nil for
// extensions other than .json, .yaml and .yml.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
