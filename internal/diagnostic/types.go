package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeNotAFunction     = "not_a_function"
	CodeBadResults       = "bad_results"
	CodeNoParameters     = "no_parameters"
	CodeNoStringCoercion = "no_string_coercion"
	CodeLeadingTooLong   = "leading_too_long"
	CodeCoercionRoute    = "coercion_route"
)

const unknownStr = "unknown"

// Diagnostics holds all diagnostic information from a validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject names the callable this relates to (if any).
	Subject string
	// Param is the position of the parameter this relates to, -1 for none.
	Param int
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return unknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject string, param int) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, subject, param))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string, param int) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, subject, param))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject string, param int) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, subject, param))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, subject string, param int) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Param:    param,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return &InvalidDeclarationError{Diagnostics: d.Errors, msg: strings.Join(parts, "; ")}
}

// ErrInvalidDeclaration matches every error returned by Diagnostics.Err.
var ErrInvalidDeclaration = errors.New("invalid parametrized test declaration")

// InvalidDeclarationError carries the error diagnostics that rejected a declaration.
type InvalidDeclarationError struct {
	Diagnostics []Diagnostic
	msg         string
}

func (e *InvalidDeclarationError) Error() string {
	return ErrInvalidDeclaration.Error() + ": " + e.msg
}

func (e *InvalidDeclarationError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Param >= 0 {
		prefix = append(prefix, fmt.Sprintf("param %d", d.Param))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
