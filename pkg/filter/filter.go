package filter

import (
	"fmt"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

// Filter transforms a value.
type Filter interface {
	Filter(value any) any
}

// Func adapts a function into a Filter.
type Func func(value any) any

func (f Func) Filter(value any) any {
	return f(value)
}

// String lifts a string transform into a Filter. Values that are not strings
// pass through untouched.
func String(transform func(string) string) Filter {
	return Func(func(value any) any {
		s, ok := value.(string)
		if !ok {
			return value
		}
		return transform(s)
	})
}

// Apply runs value through filters in order.
func Apply(value any, filters ...Filter) any {
	result := value
	for _, f := range filters {
		result = f.Filter(result)
	}
	return result
}

// Compose creates a reusable pipeline from filters.
func Compose(filters ...Filter) Filter {
	return Func(func(value any) any {
		return Apply(value, filters...)
	})
}

// Chain applies filters in insertion order. It is not safe for concurrent modification.
type Chain struct {
	filters  []Filter
	resolver Resolver
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithResolver sets the resolver used by AttachByName.
func WithResolver(r Resolver) ChainOption {
	return func(c *Chain) { c.resolver = r }
}

func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chain) Attach(f Filter) *Chain {
	c.filters = append(c.filters, f)
	return c
}

func (c *Chain) Prepend(f Filter) *Chain {
	c.filters = append([]Filter{f}, c.filters...)
	return c
}

// AttachByName resolves name through the chain resolver and attaches the result.
func (c *Chain) AttachByName(name string, opts options.Options) error {
	if c.resolver == nil {
		return fmt.Errorf("%w: cannot resolve %q", ErrNoResolver, name)
	}
	f, err := c.resolver.Resolve(name, opts)
	if err != nil {
		return err
	}
	c.Attach(f)
	return nil
}

// Merge appends the filters of other. The resolver is adopted when c has none.
func (c *Chain) Merge(other *Chain) *Chain {
	if other == nil {
		return c
	}
	c.filters = append(c.filters, other.filters...)
	if c.resolver == nil {
		c.resolver = other.resolver
	}
	return c
}

// Filters returns a copy of the attached filters.
func (c *Chain) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

func (c *Chain) Len() int {
	return len(c.filters)
}

func (c *Chain) Resolver() Resolver {
	return c.resolver
}

func (c *Chain) Filter(value any) any {
	return Apply(value, c.filters...)
}
