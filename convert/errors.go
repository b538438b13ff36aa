package convert

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotNullable       = errors.New("target type cannot hold nil")
	ErrUnknownEnumMember = errors.New("no enum member with this name")
	ErrCasterRejected    = errors.New("converter rejected the value")
	ErrCasterPanicked    = errors.New("converter panicked")
)

// ConversionError reports a raw value that does not match the grammar of its
// target type.
type ConversionError struct {
	Raw    any
	Target reflect.Type
	// Hint is a "did you mean" suggestion, empty when there is none.
	Hint string
	Err  error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s to %s", describeRaw(e.Raw), e.Target)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Hint)
	}

	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// UnsupportedConversionError reports a target type no built-in coercion or
// registered converter can produce from the raw value.
type UnsupportedConversionError struct {
	Raw    any
	Target reflect.Type
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("no converter from %T to %s", e.Raw, e.Target)
}

// ArityMismatchError reports a row whose column count does not fit the signature.
type ArityMismatchError struct {
	Row      int
	Expected int
	Actual   int
	// AtLeast is set for variadic signatures, where Expected is a lower bound.
	AtLeast bool
}

func (e *ArityMismatchError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("row %d: expected at least %d columns but got %d", e.Row, e.Expected, e.Actual)
	}

	return fmt.Sprintf("row %d: expected %d columns but got %d", e.Row, e.Expected, e.Actual)
}

// RowConversionError wraps the first column of a row that failed to convert.
type RowConversionError struct {
	Row    int
	Column int
	Err    error
}

func (e *RowConversionError) Error() string {
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Column, e.Err)
}

func (e *RowConversionError) Unwrap() error { return e.Err }

func describeRaw(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v (%T)", v, v)
	}
}
