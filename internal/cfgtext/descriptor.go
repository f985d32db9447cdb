// Package cfgtext reads and writes the class-block text format used by
// Arma 3 server config files (server.cfg, basic.cfg, .Arma3Profile).
package cfgtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldDescriptor describes how one model field maps to one statement
// in a config file.
type FieldDescriptor struct {
	// Key is the statement name written to the file, e.g. "hostname" or
	// "admins[]". Array keys carry their "[]" suffix.
	Key string

	// Quoted wraps scalar values in double quotes.
	Quoted bool

	// LowerCase lower-cases the value before it is written.
	LowerCase bool

	// Ignore excludes the field from both Serialize and Parse.
	Ignore bool

	// Path is the chain of class blocks the statement is nested in,
	// outermost first. Empty means top level.
	Path []string
}

// Kind is the semantic type of a bound field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindOptionalInt
	KindOptionalFloat
	KindBool
	KindStrings
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindOptionalInt:
		return "optional int"
	case KindOptionalFloat:
		return "optional float"
	case KindBool:
		return "bool"
	case KindStrings:
		return "array"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Field binds a FieldDescriptor to a field of model T.
//
// Bindings are built with the typed constructors (String, Int, Bool, ...)
// and registered in a Schema, so no reflection is needed to walk a model.
type Field[T any] struct {
	FieldDescriptor
	Kind Kind

	// render returns the literal for the field and false when the value is
	// absent and nothing should be written.
	render func(m *T) (string, bool)
	// parse assigns a literal (already unquoted) to the field.
	parse func(m *T, literal string) error
}

func (f Field[T]) samePath(path []string) bool {
	if len(f.Path) != len(path) {
		return false
	}
	for i := range path {
		if f.Path[i] != path[i] {
			return false
		}
	}
	return true
}

// Ignored returns a binding that documents a field but never touches it.
func Ignored[T any]() Field[T] {
	return Field[T]{
		FieldDescriptor: FieldDescriptor{Ignore: true},
		render:          func(*T) (string, bool) { return "", false },
		parse:           func(*T, string) error { return nil },
	}
}

// String binds a string field.
func String[T any](d FieldDescriptor, field func(*T) *string) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindString,
		render: func(m *T) (string, bool) {
			return *field(m), true
		},
		parse: func(m *T, literal string) error {
			*field(m) = literal
			return nil
		},
	}
}

// Int binds a plain integer field.
func Int[T any](d FieldDescriptor, field func(*T) *int) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindInt,
		render: func(m *T) (string, bool) {
			return strconv.Itoa(*field(m)), true
		},
		parse: func(m *T, literal string) error {
			v, err := strconv.Atoi(literal)
			if err != nil {
				return err
			}
			*field(m) = v
			return nil
		},
	}
}

// OptionalInt binds an integer field that is omitted from the output when nil.
func OptionalInt[T any](d FieldDescriptor, field func(*T) **int) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindOptionalInt,
		render: func(m *T) (string, bool) {
			v := *field(m)
			if v == nil {
				return "", false
			}
			return strconv.Itoa(*v), true
		},
		parse: func(m *T, literal string) error {
			v, err := strconv.Atoi(literal)
			if err != nil {
				return err
			}
			*field(m) = &v
			return nil
		},
	}
}

// OptionalFloat binds a float field that is omitted from the output when nil.
func OptionalFloat[T any](d FieldDescriptor, field func(*T) **float64) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindOptionalFloat,
		render: func(m *T) (string, bool) {
			v := *field(m)
			if v == nil {
				return "", false
			}
			return strconv.FormatFloat(*v, 'f', -1, 64), true
		},
		parse: func(m *T, literal string) error {
			v, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return err
			}
			*field(m) = &v
			return nil
		},
	}
}

// Bool binds a boolean field stored as 0 or 1.
func Bool[T any](d FieldDescriptor, field func(*T) *bool) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindBool,
		render: func(m *T) (string, bool) {
			if *field(m) {
				return "1", true
			}
			return "0", true
		},
		parse: func(m *T, literal string) error {
			switch strings.ToLower(literal) {
			case "1", "true":
				*field(m) = true
			case "0", "false":
				*field(m) = false
			default:
				return errors.New("expected 0 or 1")
			}
			return nil
		},
	}
}

// Strings binds an array field. Empty arrays are omitted from the output.
func Strings[T any](d FieldDescriptor, field func(*T) *[]string) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindStrings,
		render: func(m *T) (string, bool) {
			s := FormatArray(*field(m))
			return s, s != ""
		},
		parse: func(m *T, literal string) error {
			v, err := ParseArray(literal)
			if err != nil {
				return err
			}
			*field(m) = v
			return nil
		},
	}
}

// Enum binds a field of a named enum type. parse maps a literal to a value
// and reports whether the literal was recognised.
func Enum[T any, E fmt.Stringer](d FieldDescriptor, field func(*T) *E, parse func(string) (E, bool)) Field[T] {
	return Field[T]{
		FieldDescriptor: d,
		Kind:            KindEnum,
		render: func(m *T) (string, bool) {
			return (*field(m)).String(), true
		},
		parse: func(m *T, literal string) error {
			v, ok := parse(literal)
			if !ok {
				return errors.New("unknown value")
			}
			*field(m) = v
			return nil
		},
	}
}
