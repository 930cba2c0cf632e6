package tupleclass

import "fmt"

// A Field declares one named slot in a schema.
//
// A nil Default means the field has no default: a tuple field that
// receives neither a constructor value nor a default holds nil, so a
// nil default and no default are equivalent.
type Field struct {
	Name    string
	Default any
}

// A Schema describes a kind of tuple: an ordered list of fields,
// possibly inherited from another schema. Schemas are immutable once
// built; all tuples of a schema share it.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema returns a schema with the given name and fields, in
// declaration order. It returns an error if two fields share a name.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	return build(name, nil, fields)
}

// MustSchema is like [NewSchema] but panics on error. It is intended
// for schemas declared at package initialization.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend returns a derived schema whose field list is s's resolved
// field list followed by the given fields in declaration order.
// It returns an error if any new field redeclares an inherited name
// or duplicates another new field.
func (s *Schema) Extend(name string, fields ...Field) (*Schema, error) {
	return build(name, s, fields)
}

// MustExtend is like [Extend] but panics on error.
func (s *Schema) MustExtend(name string, fields ...Field) *Schema {
	d, err := s.Extend(name, fields...)
	if err != nil {
		panic(err)
	}
	return d
}

func build(name string, parent *Schema, own []Field) (*Schema, error) {
	var inherited []Field
	if parent != nil {
		inherited = parent.fields
	}
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(inherited)+len(own)),
		index:  make(map[string]int, len(inherited)+len(own)),
	}
	s.fields = append(s.fields, inherited...)
	for i, f := range inherited {
		s.index[f.Name] = i
	}
	for _, f := range own {
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("schema %s: duplicate field %q", name, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Name returns the schema's name.
func (s *Schema) Name() string {
	return s.name
}

// NumFields returns the number of fields in the resolved field list.
func (s *Schema) NumFields() int {
	return len(s.fields)
}

// Fields returns a copy of the resolved field list, inherited fields
// first, in declaration order.
func (s *Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// FieldIndex returns the position of the named field in the resolved
// field list, and whether the field exists.
func (s *Schema) FieldIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// An ArityError reports that a tuple was constructed with more
// positional values than its schema has fields.
type ArityError struct {
	Schema string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected at most %d values, got %d", e.Schema, e.Want, e.Got)
}
