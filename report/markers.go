package report

import (
	"errors"
	"fmt"
)

var (
	ErrGoexit     = errors.New("test case exited its goroutine")
	ErrHostFailed = errors.New("host marked the test case as failed")
)

// AssertionError marks a failed expectation. A callable may return it or
// panic with it; both classify the case as failed.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string { return e.Msg }

// SkipError marks a case that decided not to run. Returned or panicked, it
// classifies the case as skipped.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "skipped: " + e.Reason }

// PanicError wraps a panic value that is not an assertion or skip marker.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Failf stops the running case as failed.
func Failf(format string, args ...any) {
	panic(&AssertionError{Msg: fmt.Sprintf(format, args...)})
}

// Skip stops the running case as skipped.
func Skip(reason string) {
	panic(&SkipError{Reason: reason})
}

// Skipf is Skip with a formatted reason.
func Skipf(format string, args ...any) {
	Skip(fmt.Sprintf(format, args...))
}
