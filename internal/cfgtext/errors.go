package cfgtext

import (
	"errors"
	"fmt"
)

// ErrMalformedLiteral is matched by every LiteralError.
var ErrMalformedLiteral = errors.New("malformed literal")

// LiteralError reports a statement whose value cannot be coerced into the
// type of the field it matched.
type LiteralError struct {
	Key     string
	Literal string
	Kind    Kind
	Line    int // 1-based line of the statement
	Err     error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q for %s: %v", e.Line, e.Kind, e.Literal, e.Key, e.Err)
}

func (e *LiteralError) Unwrap() error { return e.Err }

func (e *LiteralError) Is(target error) bool { return target == ErrMalformedLiteral }
