package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

// Factory builds a filter from options.
type Factory func(opts options.Options) (Filter, error)

// Resolver turns a filter name and options into a filter.
type Resolver interface {
	Resolve(name string, opts options.Options) (Filter, error)
}

// Registry maps case-insensitive names to factories. Register everything
// before sharing it between goroutines.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in filters.
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

func (r *Registry) Resolve(name string, opts options.Options) (Filter, error) {
	f, ok := r.factories[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	if opts == nil {
		opts = options.Options{}
	}
	out, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", name, err)
	}
	return out, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
}

func fixed(f Filter) Factory {
	return func(options.Options) (Filter, error) { return f, nil }
}

func builtins() map[string]Factory {
	return map[string]Factory{
		"stringtrim": func(o options.Options) (Filter, error) {
			chars, err := o.String("charlist", "")
			if err != nil {
				return nil, err
			}
			return StringTrim(chars), nil
		},
		"stringtolower":       fixed(StringToLower()),
		"stringtoupper":       fixed(StringToUpper()),
		"digits":              fixed(Digits()),
		"normalizewhitespace": fixed(NormalizeWhitespace()),
		"stripnewlines":       fixed(StripNewlines()),
		"removecontrolchars":  fixed(RemoveControlChars()),
		"striptags":           fixed(StripTags()),
		"sanitizehtml":        fixed(SanitizeHTML()),
		"toint":               fixed(ToInt()),
		"tofloat":             fixed(ToFloat()),
		"boolean":             fixed(Boolean()),
		"tonull":              fixed(ToNull()),
		"alpha": func(o options.Options) (Filter, error) {
			ws, err := o.Bool("allow_white_space", false)
			if err != nil {
				return nil, err
			}
			return Alpha(ws), nil
		},
		"alnum": func(o options.Options) (Filter, error) {
			ws, err := o.Bool("allow_white_space", false)
			if err != nil {
				return nil, err
			}
			return Alnum(ws), nil
		},
		"normalizeunicode": func(o options.Options) (Filter, error) {
			form, err := o.String("form", "NFC")
			if err != nil {
				return nil, err
			}
			return NormalizeUnicode(form)
		},
		"titlecase": func(o options.Options) (Filter, error) {
			locale, err := o.String("locale", "")
			if err != nil {
				return nil, err
			}
			return TitleCase(locale)
		},
	}
}
