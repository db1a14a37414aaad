// Package inputfilter filters and validates nested input data.
//
// An Input holds one raw value, a filter chain and a validator chain. An
// InputFilter groups named nodes (inputs, nested input filters and
// collections), assigns them values from a data map and validates them in
// insertion order. A CollectionInputFilter validates each element of a list
// of maps with one template InputFilter.
//
//	f := inputfilter.New()
//	_ = f.Add(inputfilter.NewInput("zip",
//	    inputfilter.WithFilters(filter.StringTrim("")),
//	    inputfilter.WithValidators(validator.NewDigits()),
//	))
//	_ = f.SetData(map[string]any{"zip": " 123 "})
//	if f.IsValid(nil) {
//	    fmt.Println(f.Values()["zip"]) // 123
//	}
//
// # Inputs
//
// Inputs are required and reject empty values unless configured otherwise.
// Only nil, the empty string and empty lists or maps are empty; 0 and false
// are values. Semantics decide how a value is treated:
//
//   - Scalar filters the value and validates the filtered result.
//   - Array requires a list and filters and validates each element.
//   - File accepts upload descriptors, validates them as received and
//     filters them only after they pass.
//
// A fallback value replaces a missing or invalid value and makes the input
// pass. An error message override replaces all failure messages of an input.
//
// # Results
//
// After IsValid, ValidInput and InvalidInput partition the nodes that were
// considered, Values and RawValues return filtered and raw values, Messages
// returns a tree of messages and Errors flattens it into
// validator.ValidationErrors with dotted paths ("items.0.name").
//
// SetValidationGroup limits validation and value retrieval to a subset of
// nodes, including nodes of nested filters.
//
// # Errors
//
// Validation failures are reported through IsValid and messages. Mistakes in
// building or feeding the tree (unnamed nodes, merging nodes of different
// kinds, unknown group names, a non-list value for an array input) are
// returned as errors wrapping the sentinels in errors.go.
//
// Nodes keep the results of their last validation and are not safe for
// concurrent use. Build one tree per goroutine.
package inputfilter
