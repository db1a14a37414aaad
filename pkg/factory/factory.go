package factory

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"dario.cat/mergo"

	"github.com/dmitrymomot/inputfilter/pkg/filter"
	"github.com/dmitrymomot/inputfilter/pkg/inputfilter"
	"github.com/dmitrymomot/inputfilter/pkg/logger"
	"github.com/dmitrymomot/inputfilter/pkg/options"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// Factory builds input filters from definitions, resolving filter and
// validator names through its registries.
type Factory struct {
	filters    filter.Resolver
	validators validator.Resolver
	logger     *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithFilterRegistry replaces the default filter registry. Nil is ignored.
func WithFilterRegistry(r filter.Resolver) Option {
	return func(f *Factory) {
		if r != nil {
			f.filters = r
		}
	}
}

// WithValidatorRegistry replaces the default validator registry. Nil is ignored.
func WithValidatorRegistry(r validator.Resolver) Option {
	return func(f *Factory) {
		if r != nil {
			f.validators = r
		}
	}
}

// WithLogger sets the logger handed to every built filter. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a factory using the built-in registries unless replaced.
func New(opts ...Option) *Factory {
	f := &Factory{
		filters:    filter.NewRegistry(),
		validators: validator.NewRegistry(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build creates an input filter from def. Errors name the path of the
// offending spec, for example "address.zip: validator \"digitz\"".
func (f *Factory) Build(def Definition) (*inputfilter.InputFilter, error) {
	root := inputfilter.New(inputfilter.WithLogger(f.logger))
	if err := f.addAll(root, def.Inputs, def.Defaults, ""); err != nil {
		return nil, err
	}
	f.logger.Debug("input filter built",
		logger.Component("factory"),
		slog.Int("nodes", root.Count()),
	)
	return root, nil
}

// BuildYAML parses and builds a YAML definition.
func (f *Factory) BuildYAML(data []byte) (*inputfilter.InputFilter, error) {
	def, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return f.Build(def)
}

func (f *Factory) addAll(dst *inputfilter.InputFilter, specs []InputSpec, d Defaults, prefix string) error {
	for i, spec := range specs {
		path := prefix + spec.Name
		if spec.Name == "" {
			return fmt.Errorf("%w: %s", ErrMissingName, prefix+"["+strconv.Itoa(i)+"]")
		}
		n, err := f.build(spec, d, path)
		if err != nil {
			return err
		}
		if err := dst.Add(n, spec.Name); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (f *Factory) build(spec InputSpec, d Defaults, path string) (inputfilter.Node, error) {
	switch spec.Type {
	case "", TypeInput, TypeArray, TypeFile:
		return f.buildInput(spec, d, path)
	case TypeFilter:
		nested := inputfilter.New(inputfilter.WithLogger(f.logger))
		if err := f.addAll(nested, spec.Inputs, d, path+"."); err != nil {
			return nil, err
		}
		return nested, nil
	case TypeCollection:
		tmpl := inputfilter.New(inputfilter.WithLogger(f.logger))
		if err := f.addAll(tmpl, spec.Template, d, path+".*."); err != nil {
			return nil, err
		}
		c := inputfilter.NewCollection(tmpl, inputfilter.WithLogger(f.logger))
		if spec.Required != nil {
			c.SetRequired(*spec.Required)
		}
		if spec.Count != nil {
			if err := c.SetCount(*spec.Count); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s: %q", ErrUnknownType, path, spec.Type)
}

func (f *Factory) buildInput(spec InputSpec, d Defaults, path string) (*inputfilter.Input, error) {
	opts := []inputfilter.InputOption{
		inputfilter.WithResolvers(f.filters, f.validators),
		inputfilter.WithAllowEmpty(spec.AllowEmpty),
		inputfilter.WithContinueIfEmpty(spec.ContinueIfEmpty),
		inputfilter.WithBreakOnFailure(spec.BreakOnFailure),
	}
	switch spec.Type {
	case TypeArray:
		opts = append(opts, inputfilter.WithSemantics(inputfilter.Array{}))
	case TypeFile:
		auto := spec.AutoPrependUploadValidator == nil || *spec.AutoPrependUploadValidator
		opts = append(opts, inputfilter.WithSemantics(inputfilter.File{AutoPrependUploadValidator: auto}))
	}
	if spec.Required != nil {
		opts = append(opts, inputfilter.WithRequired(*spec.Required))
	}
	if spec.ErrorMessage != nil {
		opts = append(opts, inputfilter.WithErrorMessage(*spec.ErrorMessage))
	}
	if spec.Fallback != nil {
		opts = append(opts, inputfilter.WithFallback(spec.Fallback))
	}

	in := inputfilter.NewInput(spec.Name, opts...)
	for _, fs := range spec.Filters {
		o, err := withDefaults(fs.Options, d.Filters, fs.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: filter %q: %w", path, fs.Name, err)
		}
		if err := in.FilterChain().AttachByName(fs.Name, o); err != nil {
			return nil, fmt.Errorf("%s: filter %q: %w", path, fs.Name, err)
		}
	}
	for _, vs := range spec.Validators {
		o, err := withDefaults(vs.Options, d.Validators, vs.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: validator %q: %w", path, vs.Name, err)
		}
		if err := in.ValidatorChain().AttachByName(vs.Name, o, vs.BreakChainOnFailure); err != nil {
			return nil, fmt.Errorf("%s: validator %q: %w", path, vs.Name, err)
		}
	}
	return in, nil
}

// withDefaults fills options missing from opts with the defaults registered
// for name. Explicit values, including false and 0, are kept.
func withDefaults(opts options.Options, defaults map[string]options.Options, name string) (options.Options, error) {
	merged := opts.Clone()
	for key, d := range defaults {
		if canonical(key) != canonical(name) {
			continue
		}
		if err := mergo.Merge(&merged, d, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("%w: defaults for %q: %w", ErrInvalidDefinition, key, err)
		}
	}
	return merged, nil
}

func canonical(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
}
