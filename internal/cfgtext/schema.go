package cfgtext

import (
	"fmt"
	"strings"
)

// Schema is the registered list of field bindings for model T. Field order
// is the order statements are written in.
type Schema[T any] struct {
	fields   []Field[T]
	defaults func() T
}

// NewSchema registers fields for T. It panics when a non-ignored field has
// no key or two fields share a key at the same path.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Ignore {
			continue
		}
		if f.Key == "" {
			panic("cfgtext: field without key must be ignored")
		}
		id := strings.Join(append(append([]string{}, f.Path...), f.Key), "/")
		if seen[id] {
			panic(fmt.Sprintf("cfgtext: duplicate field %s", id))
		}
		seen[id] = true
	}
	return &Schema[T]{fields: fields}
}

// WithDefaults sets the constructor Parse uses for a fresh model. Without
// it, Parse starts from the zero value of T.
func (s *Schema[T]) WithDefaults(fn func() T) *Schema[T] {
	s.defaults = fn
	return s
}

// New returns a model populated with the schema defaults.
func (s *Schema[T]) New() *T {
	var m T
	if s.defaults != nil {
		m = s.defaults()
	}
	return &m
}

// Descriptors returns the descriptors of all registered fields, ignored
// ones included, in registration order.
func (s *Schema[T]) Descriptors() []FieldDescriptor {
	out := make([]FieldDescriptor, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.FieldDescriptor
	}
	return out
}

// Serialize renders m as config text, one statement per line, terminated by
// a newline. It returns "" when no field has a value to write.
func (s *Schema[T]) Serialize(m *T) string {
	lines := s.Render(m, 0)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Render renders m as lines indented by depth tabs. Fields sharing a path
// prefix share their enclosing class blocks; blocks appear in the order
// their first field was registered.
func (s *Schema[T]) Render(m *T, depth int) []string {
	root := &block{}

	for _, f := range s.fields {
		if f.Ignore {
			continue
		}
		value, ok := f.render(m)
		if !ok {
			continue
		}
		if f.LowerCase {
			value = strings.ToLower(value)
		}
		if f.Quoted && f.Kind != KindStrings {
			value = `"` + value + `"`
		}

		b := root
		for _, name := range f.Path {
			b = b.child(name)
		}
		b.entries = append(b.entries, entry{stmt: f.Key + " = " + value + ";"})
	}

	var lines []string
	root.write(&lines, depth)
	return lines
}

// Parse reads lines into a new model, starting from the schema defaults.
func (s *Schema[T]) Parse(lines []string) (*T, error) {
	m := s.New()
	if err := s.ParseInto(lines, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseInto assigns every statement in lines that matches a field of the
// schema. A statement matches when its key equals the field key (case
// sensitive) and it sits inside exactly the field's class path. Statements
// without a matching field are ignored.
func (s *Schema[T]) ParseInto(lines []string, m *T) error {
	for _, st := range Scan(lines) {
		f, ok := s.lookup(st)
		if !ok {
			continue
		}

		literal := st.Value
		if f.Kind != KindStrings {
			literal = unquote(literal)
		}

		if err := f.parse(m, literal); err != nil {
			return &LiteralError{
				Key:     st.Key,
				Literal: st.Value,
				Kind:    f.Kind,
				Line:    st.Line,
				Err:     err,
			}
		}
	}
	return nil
}

func (s *Schema[T]) lookup(st Statement) (Field[T], bool) {
	for _, f := range s.fields {
		if !f.Ignore && f.Key == st.Key && f.samePath(st.Path) {
			return f, true
		}
	}
	return Field[T]{}, false
}

type block struct {
	name    string
	entries []entry
}

// entry is either a statement or a nested block.
type entry struct {
	stmt  string
	child *block
}

func (b *block) child(name string) *block {
	for _, e := range b.entries {
		if e.child != nil && e.child.name == name {
			return e.child
		}
	}
	c := &block{name: name}
	b.entries = append(b.entries, entry{child: c})
	return c
}

func (b *block) write(lines *[]string, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, e := range b.entries {
		if e.child == nil {
			stmt := strings.ReplaceAll(e.stmt, "\n", "\n"+indent)
			*lines = append(*lines, strings.Split(indent+stmt, "\n")...)
			continue
		}
		*lines = append(*lines, indent+"class "+e.child.name, indent+"{")
		e.child.write(lines, depth+1)
		*lines = append(*lines, indent+"};")
	}
}
