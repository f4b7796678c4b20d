package table

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package matches exactly one of
// them through errors.Is.
var (
	ErrFormat   = errors.New("table: malformed header rows")
	ErrShape    = errors.New("table: row length does not match header")
	ErrCoercion = errors.New("table: value is not a finite number")
	ErrKey      = errors.New("table: unknown header")
	ErrIndex    = errors.New("table: row index out of range")
)

// FormatError reports a problem with the name or type rows.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "table: format: " + e.Reason }
func (e *FormatError) Unwrap() error { return ErrFormat }

// ShapeError reports a data row with the wrong number of fields.
// Row is the zero-based line number in the source, header rows included.
type ShapeError struct {
	Row  int
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("table: row %d has %d fields, header has %d", e.Row, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// CoercionError reports a numeric cell that could not be parsed.
type CoercionError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("table: row %d column %q: cannot parse %q as float", e.Row, e.Column, e.Value)
}

// Unwrap exposes both the sentinel and the underlying parse error.
func (e *CoercionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCoercion}
	}
	return []error{ErrCoercion, e.Err}
}

// KeyError reports a header name that is not present in the table.
type KeyError struct {
	Name string
}

func (e *KeyError) Error() string { return fmt.Sprintf("table: unknown header %q", e.Name) }
func (e *KeyError) Unwrap() error { return ErrKey }

// IndexError reports a row index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("table: row index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }
