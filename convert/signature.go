package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNotAFunction  = errors.New("callable is not a function")
	ErrLeadingParams = errors.New("leading parameters exceed the callable's parameters")
)

// Signature is the ordered list of parameter types a row must fill.
type Signature struct {
	Params []reflect.Type
	// Variadic marks the last entry of Params as a ...T slice.
	Variadic bool
	// NameColumn accepts one extra trailing column holding the case name.
	NameColumn bool
}

// SignatureOf describes fnType without its first leading parameters, which
// the host supplies at invocation time.
func SignatureOf(fnType reflect.Type, leading int) (Signature, error) {
	if fnType == nil || fnType.Kind() != reflect.Func {
		return Signature{}, ErrNotAFunction
	}

	n := fnType.NumIn()
	if leading < 0 || leading > n || (fnType.IsVariadic() && leading == n) {
		return Signature{}, fmt.Errorf("%w: %d of %d", ErrLeadingParams, leading, n)
	}

	params := make([]reflect.Type, 0, n-leading)
	for i := leading; i < n; i++ {
		params = append(params, fnType.In(i))
	}

	return Signature{Params: params, Variadic: fnType.IsVariadic()}, nil
}

// Len returns the number of declared parameters.
func (s Signature) Len() int {
	return len(s.Params)
}

// Fixed returns the number of parameters that take exactly one column.
func (s Signature) Fixed() int {
	if s.Variadic {
		return len(s.Params) - 1
	}

	return len(s.Params)
}

// Arity checks a column count against the signature and reports whether the
// last column is a name. With a variadic signature the name column, when
// declared, is mandatory, since an optional one would be indistinguishable
// from another variadic element.
func (s Signature) Arity(row, columns int) (named bool, err error) {
	extra := 0
	if s.NameColumn && s.Variadic {
		extra = 1
	}

	switch {
	case s.Variadic:
		if columns >= s.Fixed()+extra {
			return s.NameColumn, nil
		}
		return false, &ArityMismatchError{Row: row, Expected: s.Fixed() + extra, Actual: columns, AtLeast: true}

	case columns == len(s.Params):
		return false, nil

	case s.NameColumn && columns == len(s.Params)+1:
		return true, nil

	default:
		return false, &ArityMismatchError{Row: row, Expected: len(s.Params), Actual: columns}
	}
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		if s.Variadic && i == len(s.Params)-1 {
			parts[i] = "..." + p.Elem().String()
			continue
		}

		parts[i] = p.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
