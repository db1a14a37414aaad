package inputfilter

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/logger"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

// CollectionInputFilter validates every element of a list of maps with one
// template InputFilter. The template is reused for each element in turn, so
// the nodes returned by ValidInput and InvalidInput are the template's nodes
// and reflect the last element only; per-element values and messages are
// snapshots taken while the element was validated.
type CollectionInputFilter struct {
	settings

	template *InputFilter
	count    int
	hasCount bool
	required bool

	elements  []element
	malformed bool

	valid       map[int]map[string]Node
	invalid     map[int]map[string]Node
	vals        map[int]map[string]any
	raw         map[int]map[string]any
	msgs        map[int]map[string]any
	unknown     map[int]map[string]any
	elementErrs map[int]validator.ValidationErrors
	collMsgs    validator.Messages
}

// NewCollection creates a collection validated with template. A nil template
// is replaced by an empty InputFilter.
func NewCollection(template *InputFilter, opts ...Option) *CollectionInputFilter {
	if template == nil {
		template = New(opts...)
	}
	c := &CollectionInputFilter{
		settings: newSettings(opts),
		template: template,
	}
	c.resetResults()
	return c
}

func (c *CollectionInputFilter) node() {}

func (c *CollectionInputFilter) Template() *InputFilter { return c.template }

// SetTemplate replaces the template. Nil is ignored.
func (c *CollectionInputFilter) SetTemplate(template *InputFilter) *CollectionInputFilter {
	if template != nil {
		c.template = template
	}
	return c
}

// Count returns the expected number of elements: the explicit count if one
// was set, the number of elements in the data otherwise.
func (c *CollectionInputFilter) Count() int {
	if c.hasCount {
		return c.count
	}
	return len(c.elements)
}

func (c *CollectionInputFilter) SetCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	c.count = n
	c.hasCount = true
	return nil
}

// ClearCount makes Count follow the data again.
func (c *CollectionInputFilter) ClearCount() *CollectionInputFilter {
	c.count = 0
	c.hasCount = false
	return c
}

func (c *CollectionInputFilter) IsRequired() bool { return c.required }

// SetRequired makes an empty collection invalid.
func (c *CollectionInputFilter) SetRequired(required bool) *CollectionInputFilter {
	c.required = required
	return c
}

// SetValidationGroup sets the group applied to the template for every element.
func (c *CollectionInputFilter) SetValidationGroup(group ...any) error {
	return c.template.SetValidationGroup(group...)
}

func (c *CollectionInputFilter) setGroup(spec any) error {
	return c.SetValidationGroup(spec)
}

func (c *CollectionInputFilter) saveGroups() func() {
	return c.template.saveGroups()
}

// Merge merges the templates, takes the required flag of other and its count
// when it has one.
func (c *CollectionInputFilter) Merge(other *CollectionInputFilter) error {
	if other == nil || other == c {
		return nil
	}
	if err := c.template.Merge(other.template); err != nil {
		return err
	}
	if other.hasCount {
		c.count, c.hasCount = other.count, true
	}
	c.required = other.required
	return nil
}

// SetData stores the elements. Data must be a list of maps with string keys
// or a map of such maps keyed by int, which is walked in key order. Other
// data fails with ErrInvalidCollectionData and makes the collection invalid.
func (c *CollectionInputFilter) SetData(data any) error {
	c.resetResults()
	els, ok := asElements(data)
	if !ok {
		c.elements = nil
		c.malformed = true
		return fmt.Errorf("%w: got %T", ErrInvalidCollectionData, data)
	}
	c.elements = els
	c.malformed = false
	return nil
}

func (c *CollectionInputFilter) populate(value any, _ bool) error {
	// A malformed value surfaces as a failed validation.
	_ = c.SetData(value)
	return nil
}

// IsValid validates every element with the template. Each element is its
// own context, so context validators compare fields of the same element; the
// context argument is ignored.
//
// An empty required collection fails with the NotEmpty message and fewer
// elements than Count fails without looking at the elements.
func (c *CollectionInputFilter) IsValid(context map[string]any) bool {
	return c.validate(context)
}

func (c *CollectionInputFilter) validate(map[string]any) bool {
	c.resetResults()
	if c.malformed {
		c.collMsgs = validator.Messages{{
			Code:           CodeInvalidData,
			Text:           "Value must be a list of records",
			TranslationKey: "validation.invalid",
		}}
		return false
	}
	if len(c.elements) == 0 && c.required {
		notEmpty := validator.NewNotEmpty()
		notEmpty.IsValid(nil, nil)
		c.collMsgs = notEmpty.Messages()
		return false
	}
	if count := c.Count(); len(c.elements) < count {
		c.collMsgs = validator.Messages{{
			Code:              CodeNotEnough,
			Text:              fmt.Sprintf("At least %d elements are required", count),
			TranslationKey:    "validation.min_items",
			TranslationValues: map[string]any{"min": count},
		}}
		return false
	}

	valid := true
	for _, el := range c.elements {
		// Shape errors are recorded as invalid inputs on the template.
		_ = c.template.setData(el.value)
		ok := c.template.IsValid(nil)

		c.vals[el.key] = c.template.Values()
		c.raw[el.key] = c.template.RawValues()
		if u := c.template.Unknown(); len(u) > 0 {
			c.unknown[el.key] = u
		}
		if ok {
			c.valid[el.key] = c.template.ValidInput()
			continue
		}
		valid = false
		c.invalid[el.key] = c.template.InvalidInput()
		c.msgs[el.key] = c.template.Messages()
		c.elementErrs[el.key] = c.template.Errors()
	}

	c.logger.Debug("collection validated",
		logger.Component("inputfilter.collection"),
		logger.Valid(valid),
		logger.Counts(len(c.elements), len(c.valid), len(c.invalid)),
	)
	return valid
}

func (c *CollectionInputFilter) resetResults() {
	c.valid = make(map[int]map[string]Node)
	c.invalid = make(map[int]map[string]Node)
	c.vals = make(map[int]map[string]any)
	c.raw = make(map[int]map[string]any)
	c.msgs = make(map[int]map[string]any)
	c.unknown = make(map[int]map[string]any)
	c.elementErrs = make(map[int]validator.ValidationErrors)
	c.collMsgs = nil
}

// Values returns the filtered values of each element, keyed by element index.
func (c *CollectionInputFilter) Values() map[int]map[string]any { return maps.Clone(c.vals) }

func (c *CollectionInputFilter) RawValues() map[int]map[string]any { return maps.Clone(c.raw) }

func (c *CollectionInputFilter) ValidInput() map[int]map[string]Node { return maps.Clone(c.valid) }

func (c *CollectionInputFilter) InvalidInput() map[int]map[string]Node { return maps.Clone(c.invalid) }

// Messages returns the messages of invalid elements, keyed by element index.
func (c *CollectionInputFilter) Messages() map[int]map[string]any { return maps.Clone(c.msgs) }

// CollectionMessages returns failures of the collection as a whole: missing
// data, too few elements or malformed data.
func (c *CollectionInputFilter) CollectionMessages() validator.Messages { return c.collMsgs.Clone() }

// Unknown returns, per element, data keys that match no template node.
func (c *CollectionInputFilter) Unknown() map[int]map[string]any { return maps.Clone(c.unknown) }

// Errors flattens the last validation pass. Element errors are prefixed
// with the element index; collection failures have an empty field.
func (c *CollectionInputFilter) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	c.flatten("", &errs)
	return errs
}

func (c *CollectionInputFilter) flatten(prefix string, errs *validator.ValidationErrors) {
	if !c.collMsgs.IsEmpty() {
		errs.AddMessages(strings.TrimSuffix(prefix, "."), c.collMsgs)
	}
	for _, el := range c.elements {
		for _, e := range c.elementErrs[el.key] {
			path := prefix + strconv.Itoa(el.key)
			if e.Field != "" {
				path += "." + e.Field
			}
			e.Field = path
			errs.Add(e)
		}
	}
}

func (c *CollectionInputFilter) values() any    { return c.Values() }
func (c *CollectionInputFilter) rawValues() any { return c.RawValues() }

func (c *CollectionInputFilter) messages() any {
	if !c.collMsgs.IsEmpty() {
		return c.CollectionMessages()
	}
	return c.Messages()
}
