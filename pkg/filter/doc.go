// Package filter provides the filter contract, an ordered filter chain, a
// name-based registry and a set of built-in normalization filters.
//
// A Filter transforms one value into another. Filters are total: a value the
// filter does not understand (a number given to a string filter, for example)
// is returned unchanged, never rejected. Rejection is the job of validators.
//
//	chain := filter.NewChain().
//	    Attach(filter.StringTrim("")).
//	    Attach(filter.StringToLower())
//
//	chain.Filter("  Mixed CASE ") // "mixed case"
//
// Chains can resolve filters by name through a Registry passed in with
// WithResolver. There is no package-level registry.
//
// The html filters use bluemonday policies, the unicode filters use
// golang.org/x/text, and the conversion filters use golobby/cast.
package filter
