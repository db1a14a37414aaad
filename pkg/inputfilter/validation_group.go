package inputfilter

import (
	"fmt"
	"slices"
)

// ValidateAll passed alone to SetValidationGroup clears the group.
const ValidateAll = "INPUT_FILTER_ALL"

// SetValidationGroup restricts validation and value retrieval to the named
// nodes. Names can be given as strings, string slices or []any. A
// map[string]any entry names a nested filter and carries its own group:
//
//	f.SetValidationGroup("email", map[string]any{"address": []string{"city"}})
//
// Unknown names fail with ErrInvalidValidationGroup and a nested group aimed
// at an input fails with ErrNestedGroupOnInput. On error no group in the
// tree is changed.
func (f *InputFilter) SetValidationGroup(group ...any) error {
	if len(group) == 0 || (len(group) == 1 && group[0] == ValidateAll) {
		f.group = nil
		return nil
	}

	var names []string
	sub := make(map[string]any)
	if err := collectGroup(group, &names, sub); err != nil {
		return err
	}
	for _, name := range names {
		if _, ok := f.nodes[name]; !ok {
			return fmt.Errorf("%w: %q was not found", ErrInvalidValidationGroup, name)
		}
	}
	for _, name := range names {
		if _, ok := sub[name]; !ok {
			continue
		}
		if _, ok := f.nodes[name].(*Input); ok {
			return fmt.Errorf("%w: %q", ErrNestedGroupOnInput, name)
		}
	}

	restore := f.saveGroups()
	for _, name := range names {
		spec, ok := sub[name]
		if !ok {
			continue
		}
		if err := f.nodes[name].(nested).setGroup(spec); err != nil {
			restore()
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	f.group = slices.Compact(slices.Sorted(slices.Values(names)))
	return nil
}

// ValidationGroup returns the active group, or nil when all nodes are validated.
func (f *InputFilter) ValidationGroup() []string {
	return slices.Clone(f.group)
}

func (f *InputFilter) setGroup(spec any) error {
	return f.SetValidationGroup(spec)
}

func (f *InputFilter) saveGroups() func() {
	group := f.group
	var children []func()
	for _, name := range f.names {
		if n, ok := f.nodes[name].(nested); ok {
			children = append(children, n.saveGroups())
		}
	}
	return func() {
		f.group = group
		for _, restore := range children {
			restore()
		}
	}
}

func collectGroup(items []any, names *[]string, sub map[string]any) error {
	for _, item := range items {
		switch v := item.(type) {
		case string:
			*names = append(*names, v)
		case []string:
			*names = append(*names, v...)
		case []any:
			if err := collectGroup(v, names, sub); err != nil {
				return err
			}
		case map[string]any:
			for name, spec := range v {
				*names = append(*names, name)
				sub[name] = spec
			}
		case map[string][]string:
			for name, spec := range v {
				*names = append(*names, name)
				sub[name] = spec
			}
		default:
			return fmt.Errorf("%w: unsupported entry %T", ErrInvalidValidationGroup, item)
		}
	}
	return nil
}
