package inputfilter

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/logger"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// InputFilter is an ordered set of named nodes validated against one data map.
// Nodes are inputs, nested input filters and collections.
type InputFilter struct {
	settings

	names []string
	nodes map[string]Node
	group []string

	data      map[string]any
	malformed bool
	rejected  map[string]validator.Messages

	valid   map[string]Node
	invalid map[string]Node
}

// New creates an empty input filter.
func New(opts ...Option) *InputFilter {
	return &InputFilter{
		settings: newSettings(opts),
		nodes:    make(map[string]Node),
		data:     make(map[string]any),
		valid:    make(map[string]Node),
		invalid:  make(map[string]Node),
	}
}

func (f *InputFilter) node() {}

// Add registers a node. Inputs default to their own name; other nodes need an
// explicit name. Adding under an existing name merges the two nodes, which
// must be of the same kind.
func (f *InputFilter) Add(n Node, name ...string) error {
	if err := checkNode(n); err != nil {
		return err
	}
	key := ""
	if len(name) > 0 {
		key = name[0]
	}
	if in, ok := n.(*Input); ok && key == "" {
		key = in.Name()
	}
	if key == "" {
		return fmt.Errorf("%w: %T", ErrInvalidNodeName, n)
	}

	existing, ok := f.nodes[key]
	if !ok {
		f.names = append(f.names, key)
		f.nodes[key] = n
		return nil
	}
	if err := mergeNodes(existing, n); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Replace registers a node, dropping any node already stored under name.
func (f *InputFilter) Replace(n Node, name string) error {
	if err := checkNode(n); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: %T", ErrInvalidNodeName, n)
	}
	if _, ok := f.nodes[name]; !ok {
		f.names = append(f.names, name)
	}
	f.nodes[name] = n
	return nil
}

func (f *InputFilter) Has(name string) bool {
	_, ok := f.nodes[name]
	return ok
}

func (f *InputFilter) Get(name string) (Node, error) {
	n, ok := f.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInputNotFound, name)
	}
	return n, nil
}

// Input returns the input stored under name.
func (f *InputFilter) Input(name string) (*Input, error) {
	n, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	in, ok := n.(*Input)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrNodeKindMismatch, name, n)
	}
	return in, nil
}

func (f *InputFilter) Remove(name string) *InputFilter {
	if _, ok := f.nodes[name]; !ok {
		return f
	}
	delete(f.nodes, name)
	f.names = slices.DeleteFunc(f.names, func(n string) bool { return n == name })
	if f.group != nil {
		f.group = slices.DeleteFunc(f.group, func(n string) bool { return n == name })
	}
	return f
}

func (f *InputFilter) Count() int { return len(f.names) }

// Names returns node names in insertion order.
func (f *InputFilter) Names() []string { return slices.Clone(f.names) }

// Merge adds every node of other, merging nodes with the same name.
func (f *InputFilter) Merge(other *InputFilter) error {
	if other == nil || other == f {
		return nil
	}
	for _, name := range other.names {
		if err := f.Add(other.nodes[name], name); err != nil {
			return err
		}
	}
	return nil
}

// SetData stores the data map and assigns values to every node. Keys missing
// from data reset the matching input to the no-value state.
//
// Data that is not a map with string keys is rejected with ErrInvalidData.
// A value of the wrong shape for an array or file input is reported as an
// error and the input is marked invalid; the remaining nodes are still set.
func (f *InputFilter) SetData(data any) error {
	m, ok := asMap(data)
	if data != nil && !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidData, data)
	}
	return f.setData(m)
}

func (f *InputFilter) setData(m map[string]any) error {
	if m == nil {
		m = make(map[string]any)
	}
	f.data = m
	f.malformed = false
	f.rejected = nil
	f.resetResults()

	var errs []error
	for _, name := range f.names {
		value, present := m[name]
		switch n := f.nodes[name].(type) {
		case *Input:
			if !present {
				n.ResetValue()
				continue
			}
			if err := n.SetValue(value); err != nil {
				n.ResetValue()
				f.reject(name, err)
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		case nested:
			if err := n.populate(value, present); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (f *InputFilter) populate(value any, present bool) error {
	if !present || value == nil {
		return f.setData(nil)
	}
	m, ok := asMap(value)
	if !ok {
		err := f.setData(nil)
		f.malformed = true
		return err
	}
	return f.setData(m)
}

func (f *InputFilter) reject(name string, err error) {
	if f.rejected == nil {
		f.rejected = make(map[string]validator.Messages)
	}
	msg := validator.Message{Code: CodeInvalidData, Text: err.Error(), TranslationKey: "validation.invalid"}
	if errors.Is(err, ErrNotArray) {
		msg = validator.Message{Code: CodeNotArray, Text: "Value must be a list", TranslationKey: "validation.list"}
	}
	f.rejected[name] = validator.Messages{msg}
}

// IsValid validates the nodes in the validation group, or all nodes when no
// group is set. A nil context defaults to the data map, so validators can
// look at sibling fields; nested filters receive the same context.
//
// Optional inputs without a value and without a fallback are skipped. An
// invalid input with breakOnFailure set stops the pass.
func (f *InputFilter) IsValid(context map[string]any) bool {
	if context == nil {
		context = f.context()
	}
	return f.validate(context)
}

// Validate sets data, validates it and returns the failures as
// validator.ValidationErrors.
func (f *InputFilter) Validate(data any) error {
	if err := f.SetData(data); err != nil {
		return err
	}
	if f.IsValid(nil) {
		return nil
	}
	return f.Errors()
}

func (f *InputFilter) validate(context map[string]any) bool {
	f.resetResults()
	if f.malformed {
		return false
	}

	considered := 0
	stopped := false
	for _, name := range f.scope() {
		n := f.nodes[name]
		if _, ok := f.rejected[name]; ok {
			considered++
			f.invalid[name] = n
			stopped = n.(*Input).BreakOnFailure()
		} else {
			switch node := n.(type) {
			case *Input:
				_, present := f.data[name]
				if !present && !node.HasValue() && !node.IsRequired() {
					if _, ok := node.FallbackValue(); !ok {
						continue
					}
				}
				considered++
				if node.IsValid(context) {
					f.valid[name] = node
				} else {
					f.invalid[name] = node
					stopped = node.BreakOnFailure()
				}
			case nested:
				considered++
				if node.validate(context) {
					f.valid[name] = node
				} else {
					f.invalid[name] = node
				}
			}
		}
		if stopped {
			break
		}
	}

	ok := len(f.invalid) == 0
	f.logger.Debug("input filter validated",
		logger.Component("inputfilter"),
		logger.Valid(ok),
		logger.Counts(considered, len(f.valid), len(f.invalid)),
		slog.Bool("stopped", stopped),
	)
	return ok
}

func (f *InputFilter) context() map[string]any {
	ctx := make(map[string]any, len(f.names)+len(f.data))
	for _, name := range f.names {
		ctx[name] = nil
		if in, ok := f.nodes[name].(*Input); ok && in.HasValue() {
			ctx[name] = in.RawValue()
		}
	}
	maps.Copy(ctx, f.data)
	return ctx
}

func (f *InputFilter) scope() []string {
	if f.group == nil {
		return f.names
	}
	return slices.DeleteFunc(slices.Clone(f.names), func(n string) bool {
		return !slices.Contains(f.group, n)
	})
}

func (f *InputFilter) resetResults() {
	f.valid = make(map[string]Node)
	f.invalid = make(map[string]Node)
}

// ValidInput returns the nodes that passed the last IsValid call.
func (f *InputFilter) ValidInput() map[string]Node { return maps.Clone(f.valid) }

// InvalidInput returns the nodes that failed the last IsValid call.
func (f *InputFilter) InvalidInput() map[string]Node { return maps.Clone(f.invalid) }

// Values returns filtered values of the nodes in scope.
func (f *InputFilter) Values() map[string]any {
	out := make(map[string]any, len(f.names))
	for _, name := range f.scope() {
		switch n := f.nodes[name].(type) {
		case *Input:
			out[name] = n.Value()
		case nested:
			out[name] = n.values()
		}
	}
	return out
}

// RawValues returns unfiltered values of the nodes in scope.
func (f *InputFilter) RawValues() map[string]any {
	out := make(map[string]any, len(f.names))
	for _, name := range f.scope() {
		switch n := f.nodes[name].(type) {
		case *Input:
			out[name] = n.RawValue()
		case nested:
			out[name] = n.rawValues()
		}
	}
	return out
}

// Value returns the filtered value of a node.
func (f *InputFilter) Value(name string) (any, error) {
	n, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	switch v := n.(type) {
	case *Input:
		return v.Value(), nil
	case nested:
		return v.values(), nil
	}
	return nil, nil
}

// RawValue returns the unfiltered value of a node.
func (f *InputFilter) RawValue(name string) (any, error) {
	n, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	switch v := n.(type) {
	case *Input:
		return v.RawValue(), nil
	case nested:
		return v.rawValues(), nil
	}
	return nil, nil
}

// Messages returns the messages of the invalid nodes. Inputs map to
// validator.Messages, nested filters to their own message trees.
func (f *InputFilter) Messages() map[string]any {
	out := make(map[string]any, len(f.invalid))
	for name, n := range f.invalid {
		if msgs, ok := f.rejected[name]; ok {
			out[name] = msgs.Clone()
			continue
		}
		switch node := n.(type) {
		case *Input:
			out[name] = node.Messages()
		case nested:
			out[name] = node.messages()
		}
	}
	return out
}

// Errors flattens the messages of the last validation pass into
// field-addressed errors. Nested paths are joined with dots, collection
// elements use their index: "items.0.name".
func (f *InputFilter) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	f.flatten("", &errs)
	return errs
}

func (f *InputFilter) flatten(prefix string, errs *validator.ValidationErrors) {
	if f.malformed {
		errs.AddMessages(strings.TrimSuffix(prefix, "."), malformedMessages())
		return
	}
	for _, name := range f.names {
		n, ok := f.invalid[name]
		if !ok {
			continue
		}
		path := prefix + name
		if msgs, ok := f.rejected[name]; ok {
			errs.AddMessages(path, msgs)
			continue
		}
		switch node := n.(type) {
		case *Input:
			errs.AddMessages(path, node.Messages())
		case nested:
			node.flatten(path+".", errs)
		}
	}
}

func (f *InputFilter) values() any    { return f.Values() }
func (f *InputFilter) rawValues() any { return f.RawValues() }

func (f *InputFilter) messages() any {
	if f.malformed {
		return malformedMessages()
	}
	return f.Messages()
}

// Unknown returns data entries whose keys match no node.
func (f *InputFilter) Unknown() map[string]any {
	out := make(map[string]any)
	for k, v := range f.data {
		if _, ok := f.nodes[k]; !ok {
			out[k] = v
		}
	}
	return out
}

func (f *InputFilter) HasUnknown() bool {
	for k := range f.data {
		if _, ok := f.nodes[k]; !ok {
			return true
		}
	}
	return false
}

func malformedMessages() validator.Messages {
	return validator.Messages{{
		Code:           CodeInvalidData,
		Text:           "Value must be a set of named fields",
		TranslationKey: "validation.invalid",
	}}
}
