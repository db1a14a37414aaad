package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

// Factory builds a validator from options.
type Factory func(opts options.Options) (Validator, error)

// Resolver turns a validator name and options into a validator.
type Resolver interface {
	Resolve(name string, opts options.Options) (Validator, error)
}

// Registry maps case-insensitive names to factories. It is not safe for
// concurrent registration; register everything before sharing it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in validators.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for name, f := range builtins() {
		r.Register(name, f)
	}
	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[normalizeName(name)] = f
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[normalizeName(name)]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Resolve(name string, opts options.Options) (Validator, error) {
	f, ok := r.factories[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	if opts == nil {
		opts = options.Options{}
	}
	v, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("validator %q: %w", name, err)
	}
	return v, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
}

func builtins() map[string]Factory {
	return map[string]Factory{
		"notempty": func(options.Options) (Validator, error) { return NewNotEmpty(), nil },
		"digits":   func(options.Options) (Validator, error) { return NewDigits(), nil },
		"alpha": func(o options.Options) (Validator, error) {
			ws, err := o.Bool("allow_white_space", false)
			if err != nil {
				return nil, err
			}
			return NewAlpha(ws), nil
		},
		"alnum": func(o options.Options) (Validator, error) {
			ws, err := o.Bool("allow_white_space", false)
			if err != nil {
				return nil, err
			}
			return NewAlnum(ws), nil
		},
		"stringlength": func(o options.Options) (Validator, error) {
			min, err := o.Int("min", 0)
			if err != nil {
				return nil, err
			}
			max, err := o.Int("max", 0)
			if err != nil {
				return nil, err
			}
			return NewStringLength(min, max)
		},
		"regex": func(o options.Options) (Validator, error) {
			pattern, err := o.String("pattern", "")
			if err != nil {
				return nil, err
			}
			if pattern == "" {
				return nil, fmt.Errorf("%w: regex requires a pattern", ErrInvalidConfig)
			}
			return NewRegex(pattern)
		},
		"emailaddress": func(options.Options) (Validator, error) { return NewEmailAddress(), nil },
		"uri": func(o options.Options) (Validator, error) {
			schemes, err := o.Strings("schemes")
			if err != nil {
				return nil, err
			}
			return NewURI(schemes...), nil
		},
		"uuid":       func(options.Options) (Validator, error) { return NewUUID(), nil },
		"slug":       func(options.Options) (Validator, error) { return NewSlug(), nil },
		"hostname":   func(options.Options) (Validator, error) { return NewHostname(), nil },
		"base64":     func(options.Options) (Validator, error) { return NewBase64(), nil },
		"creditcard": func(options.Options) (Validator, error) { return NewCreditCard(), nil },
		"hex": func(o options.Options) (Validator, error) {
			length, err := o.Int("length", 0)
			if err != nil {
				return nil, err
			}
			return NewHex(length), nil
		},
		"inarray": func(o options.Options) (Validator, error) {
			haystack, err := o.Values("haystack")
			if err != nil {
				return nil, err
			}
			strict, err := o.Bool("strict", false)
			if err != nil {
				return nil, err
			}
			return NewInArray(haystack, strict), nil
		},
		"between": func(o options.Options) (Validator, error) {
			min, err := o.Float("min", 0)
			if err != nil {
				return nil, err
			}
			max, err := o.Float("max", 0)
			if err != nil {
				return nil, err
			}
			inclusive, err := o.Bool("inclusive", true)
			if err != nil {
				return nil, err
			}
			return NewBetween(min, max, inclusive)
		},
		"greaterthan": func(o options.Options) (Validator, error) {
			min, err := o.Float("min", 0)
			if err != nil {
				return nil, err
			}
			inclusive, err := o.Bool("inclusive", false)
			if err != nil {
				return nil, err
			}
			return NewGreaterThan(min, inclusive), nil
		},
		"lessthan": func(o options.Options) (Validator, error) {
			max, err := o.Float("max", 0)
			if err != nil {
				return nil, err
			}
			inclusive, err := o.Bool("inclusive", false)
			if err != nil {
				return nil, err
			}
			return NewLessThan(max, inclusive), nil
		},
		"identical": func(o options.Options) (Validator, error) {
			token, err := o.String("token", "")
			if err != nil {
				return nil, err
			}
			strict, err := o.Bool("strict", true)
			if err != nil {
				return nil, err
			}
			if token == "" {
				if !o.Has("literal") {
					return nil, fmt.Errorf("%w: identical requires a token or a literal", ErrInvalidConfig)
				}
				return NewIdenticalLiteral(o["literal"], strict), nil
			}
			return NewIdentical(token, strict), nil
		},
		"date": func(o options.Options) (Validator, error) {
			layout, err := o.String("format", DefaultDateLayout)
			if err != nil {
				return nil, err
			}
			return NewDate(layout), nil
		},
		"uploadfile": func(options.Options) (Validator, error) { return NewUploadFile(), nil },
		"filesize": func(o options.Options) (Validator, error) {
			min, err := o.Int64("min", 0)
			if err != nil {
				return nil, err
			}
			max, err := o.Int64("max", 0)
			if err != nil {
				return nil, err
			}
			return NewFileSize(min, max)
		},
		"fileextension": func(o options.Options) (Validator, error) {
			exts, err := o.Strings("extension")
			if err != nil {
				return nil, err
			}
			return NewFileExtension(exts...), nil
		},
		"filemediatype": func(o options.Options) (Validator, error) {
			types, err := o.Strings("type")
			if err != nil {
				return nil, err
			}
			return NewFileMediaType(types...), nil
		},
	}
}
