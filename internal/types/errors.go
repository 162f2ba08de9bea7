package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat matches any *FormatError through errors.Is.
var ErrFormat = errors.New("malformed input")

// FormatError reports input that cannot be turned into a table or a money value.
// Line and Column are 1-based; zero means unknown.
type FormatError struct {
	Line   int
	Column int
	Field  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("format error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
