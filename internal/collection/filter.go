package collection

import (
	"strings"
	"time"
)

// FieldKind selects the predicate applied to a filter field.
type FieldKind int

const (
	// FieldText matches by case-insensitive substring.
	FieldText FieldKind = iota
	// FieldChoice matches exactly against a single-valued field.
	FieldChoice
	// FieldList matches exactly against one element of a list-valued field.
	FieldList
	// FieldDate matches an inclusive date range.
	FieldDate
)

// FieldSpec describes one filterable field of a record type. Exactly one of
// the accessor functions is consulted, depending on Kind. An accessor
// returning ok=false means the field is absent on that record; the record is
// then treated as non-matching for the key, never as an error.
type FieldSpec[T Record] struct {
	Kind FieldKind
	Text func(T) (string, bool)
	List func(T) ([]string, bool)
	Date func(T) (time.Time, bool)
}

// Schema maps filter keys to field specs for one resource type.
type Schema[T Record] map[string]FieldSpec[T]

// Criterion is the user-supplied value for one filter key. Text carries
// substring and exact-choice values; From/To carry inclusive date bounds,
// with the zero time meaning no bound.
type Criterion struct {
	Text string
	From time.Time
	To   time.Time
}

// IsEmpty reports whether the criterion imposes no constraint.
func (c Criterion) IsEmpty() bool {
	return c.Text == "" && c.From.IsZero() && c.To.IsZero()
}

// Criteria holds the active constraints of a view, keyed by filter key.
type Criteria map[string]Criterion

// IsEmpty reports whether no criterion imposes a constraint.
func (c Criteria) IsEmpty() bool {
	for _, crit := range c {
		if !crit.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the criteria map.
func (c Criteria) Clone() Criteria {
	clone := make(Criteria, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}

// Filter reduces items to the subset matching every active criterion.
// It is a pure function: the input slice is never mutated and ordering is
// preserved. An empty criteria set returns the input unchanged.
func Filter[T Record](items []T, schema Schema[T], criteria Criteria) []T {
	if criteria.IsEmpty() {
		return items
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, schema, criteria) {
			result = append(result, item)
		}
	}
	return result
}

func matchesAll[T Record](item T, schema Schema[T], criteria Criteria) bool {
	for key, crit := range criteria {
		if crit.IsEmpty() {
			continue
		}
		spec, ok := schema[key]
		if !ok {
			// Unknown key behaves like an absent field.
			return false
		}
		if !matches(item, spec, crit) {
			return false
		}
	}
	return true
}

func matches[T Record](item T, spec FieldSpec[T], crit Criterion) bool {
	switch spec.Kind {
	case FieldText:
		if crit.Text == "" {
			return true
		}
		value, ok := spec.Text(item)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(value), strings.ToLower(crit.Text))
	case FieldChoice:
		if crit.Text == "" {
			return true
		}
		value, ok := spec.Text(item)
		if !ok {
			return false
		}
		return strings.EqualFold(value, crit.Text)
	case FieldList:
		if crit.Text == "" {
			return true
		}
		values, ok := spec.List(item)
		if !ok {
			return false
		}
		for _, v := range values {
			if strings.EqualFold(v, crit.Text) {
				return true
			}
		}
		return false
	case FieldDate:
		if crit.From.IsZero() && crit.To.IsZero() {
			return true
		}
		value, ok := spec.Date(item)
		if !ok {
			return false
		}
		if !crit.From.IsZero() && value.Before(crit.From) {
			return false
		}
		if !crit.To.IsZero() && value.After(crit.To) {
			return false
		}
		return true
	default:
		return false
	}
}
