package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

// Entry is a validator together with its break-on-failure flag.
type Entry struct {
	Validator      Validator
	BreakOnFailure bool
}

// Chain runs validators in order and accumulates their messages.
// A Chain is itself a Validator. It is not safe for concurrent use.
type Chain struct {
	entries  []Entry
	messages Messages
	resolver Resolver
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithResolver sets the resolver used by AttachByName and PrependByName.
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

func (c *Chain) Attach(v Validator, breakOnFailure bool) *Chain {
	c.entries = append(c.entries, Entry{Validator: v, BreakOnFailure: breakOnFailure})
	return c
}

func (c *Chain) Prepend(v Validator, breakOnFailure bool) *Chain {
	c.entries = append([]Entry{{Validator: v, BreakOnFailure: breakOnFailure}}, c.entries...)
	return c
}

// AttachByName resolves name through the chain resolver and attaches the result.
func (c *Chain) AttachByName(name string, opts options.Options, breakOnFailure bool) error {
	v, err := c.resolve(name, opts)
	if err != nil {
		return err
	}
	c.Attach(v, breakOnFailure)
	return nil
}

// PrependByName resolves name through the chain resolver and prepends the result.
func (c *Chain) PrependByName(name string, opts options.Options, breakOnFailure bool) error {
	v, err := c.resolve(name, opts)
	if err != nil {
		return err
	}
	c.Prepend(v, breakOnFailure)
	return nil
}

func (c *Chain) resolve(name string, opts options.Options) (Validator, error) {
	if c.resolver == nil {
		return nil, fmt.Errorf("%w: cannot resolve %q", ErrNoResolver, name)
	}
	return c.resolver.Resolve(name, opts)
}

// Merge appends the entries of other. The resolver is adopted when c has none.
func (c *Chain) Merge(other *Chain) *Chain {
	if other == nil {
		return c
	}
	c.entries = append(c.entries, other.entries...)
	if c.resolver == nil {
		c.resolver = other.resolver
	}
	return c
}

// Entries returns a copy of the chain entries.
func (c *Chain) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Chain) Len() int {
	return len(c.entries)
}

func (c *Chain) Resolver() Resolver {
	return c.resolver
}

// IsValid runs every validator against value. A failing entry flagged
// BreakOnFailure stops the chain.
func (c *Chain) IsValid(value any, context map[string]any) bool {
	c.messages = nil
	result := true

	for _, e := range c.entries {
		if e.Validator.IsValid(value, context) {
			continue
		}
		result = false
		c.messages.Merge(e.Validator.Messages())
		if e.BreakOnFailure {
			break
		}
	}

	return result
}

func (c *Chain) Messages() Messages {
	return c.messages.Clone()
}
