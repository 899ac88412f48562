// Errors from reading MITAB. Each kind has a sentinel so callers can
// use errors.Is and a struct carrying the details. Anything that goes
// wrong in a data line is wrapped in a RowError, which knows the line
// and column.

package mitab

import (
	"errors"
	"fmt"
	"strings"
)

const maxMsgLen = 70

var (
	ErrSchemaMismatch           = errors.New("header does not match MITAB 2.5 columns")
	ErrFieldCountMismatch       = errors.New("wrong number of fields")
	ErrMalformedIdentifier      = errors.New("malformed identifier")
	ErrMalformedInteractionType = errors.New("malformed interaction type")
	ErrRowParse                 = errors.New("cannot parse row")
)

// firstPart shortens text for error messages. It cuts on a rune
// boundary so we do not print half a character.
func firstPart(s string) string {
	if len(s) <= maxMsgLen {
		return s
	}
	n := 0
	for i := range s {
		if n == maxMsgLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}

// SchemaError says the header line was not the one we want. Index is the
// first column that differs, or -1 if the number of columns was wrong.
// Got is nil if there was no header line at all.
type SchemaError struct {
	Got   []string
	Index int
}

func (e *SchemaError) Error() string {
	switch {
	case e.Got == nil:
		return ErrSchemaMismatch.Error() + ": no header line"
	case e.Index < 0:
		return fmt.Sprintf("%v: got %d columns, want %d", ErrSchemaMismatch, len(e.Got), NColumn)
	}
	return fmt.Sprintf("%v: column %d is %q, want %q", ErrSchemaMismatch,
		e.Index+1, firstPart(e.Got[e.Index]), Columns[e.Index])
}

func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }

// FieldCountError is a data line without exactly NColumn fields.
type FieldCountError struct {
	Want int
	Got  int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%v: got %d, want %d", ErrFieldCountMismatch, e.Got, e.Want)
}

func (e *FieldCountError) Unwrap() error { return ErrFieldCountMismatch }

// IdentifierError is a token that is not namespace:value.
type IdentifierError struct {
	Token string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%v %q", ErrMalformedIdentifier, firstPart(e.Token))
}

func (e *IdentifierError) Unwrap() error { return ErrMalformedIdentifier }

// InteractionTypeError is a token that is not namespace:value(text).
type InteractionTypeError struct {
	Token  string
	Reason string
}

func (e *InteractionTypeError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedInteractionType, firstPart(e.Token), e.Reason)
}

func (e *InteractionTypeError) Unwrap() error { return ErrMalformedInteractionType }

// RowError wraps whatever went wrong in a data line.
// Line is the line number in the input, counting the header as line 1.
// It is zero if the row was parsed on its own with ParseRow.
// Column counts from 1 and is zero if the problem is the line as a whole,
// like the wrong number of fields.
type RowError struct {
	Line   int
	Column int
	Field  string // raw text of the column
	Err    error
}

func (e *RowError) Error() string {
	var b strings.Builder
	if e.Line != 0 {
		fmt.Fprintf(&b, "line %d ", e.Line)
	}
	if e.Column != 0 {
		fmt.Fprintf(&b, "column %d (%s) ", e.Column, Columns[e.Column-1])
	}
	if b.Len() == 0 {
		b.WriteString(ErrRowParse.Error() + " ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

// Is makes errors.Is(err, ErrRowParse) work. Unwrap gives the cause.
func (e *RowError) Is(target error) bool { return target == ErrRowParse }
func (e *RowError) Unwrap() error        { return e.Err }
