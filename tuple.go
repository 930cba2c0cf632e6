package tupleclass

import (
	"fmt"
	"iter"
	"strings"
)

// A Tuple is an instance of a schema: one value per resolved field,
// readable and writable both by position and by name. The zero Tuple
// is not useful; construct tuples with [Schema.New] or
// [Schema.NewNamed].
//
// A Tuple may additionally carry extra attributes set by name that are
// not schema fields; these never take part in the sequence view.
//
// Tuples are not safe for concurrent mutation.
type Tuple struct {
	schema *Schema
	vals   []any
	extra  map[string]any
}

// New returns a tuple whose first len(vals) fields are set to the
// given values in resolved field order. Remaining fields hold their
// declared default, or nil if they have none. Supplying more values
// than the schema has fields fails with [*ArityError].
func (s *Schema) New(vals ...any) (*Tuple, error) {
	return s.NewNamed(vals, nil)
}

// NewNamed is like [Schema.New] but additionally sets fields by name
// after the positional values are applied. Names that are not schema
// fields are stored as extra attributes rather than rejected.
func (s *Schema) NewNamed(vals []any, named map[string]any) (*Tuple, error) {
	if len(vals) > len(s.fields) {
		return nil, &ArityError{Schema: s.name, Want: len(s.fields), Got: len(vals)}
	}
	t := &Tuple{
		schema: s,
		vals:   make([]any, len(s.fields)),
	}
	// Seed from defaults first so that a default survives unless a
	// positional or named value explicitly overrides it.
	for i, f := range s.fields {
		t.vals[i] = f.Default
	}
	copy(t.vals, vals)
	for name, v := range named {
		t.SetField(name, v)
	}
	return t, nil
}

// Schema returns the schema the tuple was built from.
func (t *Tuple) Schema() *Schema {
	return t.schema
}

// Len returns the number of fields in the tuple.
func (t *Tuple) Len() int {
	return len(t.vals)
}

// Get returns the value of the i'th field in resolved order.
// It panics if i is out of range.
func (t *Tuple) Get(i int) any {
	if i < 0 || i >= len(t.vals) {
		panic("tupleclass.Tuple.Get called with index out of range")
	}
	return t.vals[i]
}

// Set sets the value of the i'th field in resolved order.
// It panics if i is out of range.
func (t *Tuple) Set(i int, v any) {
	if i < 0 || i >= len(t.vals) {
		panic("tupleclass.Tuple.Set called with index out of range")
	}
	t.vals[i] = v
}

// Field returns the value of the named field, or of the extra
// attribute with that name. It panics if the name is neither.
func (t *Tuple) Field(name string) any {
	v, ok := t.Lookup(name)
	if !ok {
		panic("tupleclass.Tuple.Field called with unknown field " + name)
	}
	return v
}

// Lookup returns the value of the named field or extra attribute,
// and whether the name was found.
func (t *Tuple) Lookup(name string) (any, bool) {
	if i, ok := t.schema.index[name]; ok {
		return t.vals[i], true
	}
	v, ok := t.extra[name]
	return v, ok
}

// SetField sets the named field. A name that is not a schema field is
// stored as an extra attribute; extra attributes are visible to
// [Tuple.Field] and [Tuple.Lookup] but not to the sequence view.
func (t *Tuple) SetField(name string, v any) {
	if i, ok := t.schema.index[name]; ok {
		t.vals[i] = v
		return
	}
	if t.extra == nil {
		t.extra = make(map[string]any)
	}
	t.extra[name] = v
}

// Values returns a copy of the tuple's current value sequence in
// resolved field order.
func (t *Tuple) Values() []any {
	vals := make([]any, len(t.vals))
	copy(vals, t.vals)
	return vals
}

// All returns an iterator over the tuple's values in resolved field
// order. The iterator reads current state each time it is ranged
// over, so mutations between iterations are visible.
func (t *Tuple) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range t.vals {
			if !yield(t.vals[i]) {
				return
			}
		}
	}
}

// String renders the tuple as the schema name followed by the
// parenthesized, comma-separated values, for example Dummy(10, hi).
func (t *Tuple) String() string {
	var sb strings.Builder
	sb.WriteString(t.schema.name)
	sb.WriteByte('(')
	for i, v := range t.vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// GoString renders the tuple with its field names, for example
// Dummy{x: 10, y: "hi"}.
func (t *Tuple) GoString() string {
	var sb strings.Builder
	sb.WriteString(t.schema.name)
	sb.WriteByte('{')
	for i, f := range t.schema.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %#v", f.Name, t.vals[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
