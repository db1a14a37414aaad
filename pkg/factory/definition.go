package factory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

// Type selects the kind of node an InputSpec builds.
type Type string

const (
	TypeInput      Type = "input"
	TypeArray      Type = "array"
	TypeFile       Type = "file"
	TypeFilter     Type = "filter"
	TypeCollection Type = "collection"
)

// Definition describes an input filter declaratively.
type Definition struct {
	Defaults Defaults    `yaml:"defaults"`
	Inputs   []InputSpec `yaml:"inputs"`
}

// Defaults holds options merged into every filter or validator spec of the
// same name. Options set on the spec itself win.
type Defaults struct {
	Filters    map[string]options.Options `yaml:"filters"`
	Validators map[string]options.Options `yaml:"validators"`
}

// InputSpec describes one node. Inputs is used by filter nodes, Template by
// collections; the chain fields apply to input, array and file nodes.
type InputSpec struct {
	Name            string  `yaml:"name"`
	Type            Type    `yaml:"type"`
	Required        *bool   `yaml:"required"`
	AllowEmpty      bool    `yaml:"allow_empty"`
	ContinueIfEmpty bool    `yaml:"continue_if_empty"`
	BreakOnFailure  bool    `yaml:"break_on_failure"`
	ErrorMessage    *string `yaml:"error_message"`
	// Fallback is applied when it is not nil.
	Fallback   any         `yaml:"fallback"`
	Filters    []ChainSpec `yaml:"filters"`
	Validators []ChainSpec `yaml:"validators"`

	// AutoPrependUploadValidator applies to file nodes and defaults to true.
	AutoPrependUploadValidator *bool `yaml:"auto_prepend_upload_validator"`

	Inputs   []InputSpec `yaml:"inputs"`
	Template []InputSpec `yaml:"template"`
	Count    *int        `yaml:"count"`
}

// ChainSpec names a registered filter or validator and its options.
// BreakChainOnFailure is ignored for filters.
type ChainSpec struct {
	Name                string          `yaml:"name"`
	Options             options.Options `yaml:"options"`
	BreakChainOnFailure bool            `yaml:"break_chain_on_failure"`
}

// ParseYAML decodes a definition. Unknown keys are rejected.
func ParseYAML(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return def, nil
}

// LoadFile reads and decodes a YAML definition file.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	return ParseYAML(data)
}
