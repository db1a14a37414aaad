// Package factory builds input filters from declarative definitions.
//
// A definition lists inputs by name and type. Filters and validators are
// referenced by their registry names, so a definition can live in a YAML
// file next to the service that uses it:
//
//	defaults:
//	  validators:
//	    string_length: {max: 64}
//	inputs:
//	  - name: email
//	    filters:
//	      - name: string_trim
//	    validators:
//	      - name: email_address
//	  - name: address
//	    type: filter
//	    inputs:
//	      - name: zip
//	        validators:
//	          - name: digits
//
// Usage:
//
//	f, err := factory.New().BuildYAML(data)
//	if err != nil {
//		return err
//	}
//	if err := f.Validate(payload); err != nil {
//		return err
//	}
//
// Types are input (the default), array, file, filter and collection.
// Defaults are merged into every filter or validator spec whose name
// matches, ignoring case, underscores and dashes. Options set on the spec
// itself are never overwritten, including zero values.
//
// Build errors carry the dotted path of the offending spec. Collection
// templates use "*" in place of the element index.
package factory
