package expand

import (
	"fmt"
	"reflect"

	"dataprovider/convert"
	"dataprovider/internal/common"
)

// Callable is a test function bound to the signature its data rows fill.
type Callable struct {
	fn      reflect.Value
	sig     convert.Signature
	leading int
	pkgPath string
	name    string
}

// NewCallable binds fn. The first leading parameters are supplied by the host
// on every invocation and take no columns. fn must return nothing or an error.
func NewCallable(fn any, leading int) (*Callable, error) {
	diags := Validate(fn, leading, nil)
	if err := diags.Err(); err != nil {
		return nil, err
	}

	return bind(fn, leading), nil
}

func bind(fn any, leading int) *Callable {
	v := reflect.ValueOf(fn)
	sig, _ := convert.SignatureOf(v.Type(), leading)
	pkgPath, name := common.FuncName(v)

	return &Callable{fn: v, sig: sig, leading: leading, pkgPath: pkgPath, name: name}
}

// Signature returns the parameters filled from data rows.
func (c *Callable) Signature() convert.Signature { return c.sig }

// Leading returns the number of host-supplied parameters.
func (c *Callable) Leading() int { return c.leading }

// Name returns the function name inside its package, e.g. "TestSum" or "TestSum.func1".
func (c *Callable) Name() string { return c.name }

// Package returns the import path of the function's package.
func (c *Callable) Package() string { return c.pkgPath }

// String renders the complete signature, e.g. "example.com/pkg.TestSum(int, string)".
func (c *Callable) String() string {
	return c.pkgPath + "." + c.name + c.sig.String()
}

// Invoke calls the function with the leading values followed by args and
// returns its error result, if it has one. Panics are not recovered.
func (c *Callable) Invoke(args convert.Arguments, leading ...any) error {
	if len(leading) != c.leading {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrLeadingArgs, c.name, c.leading, len(leading))
	}

	fnType := c.fn.Type()
	in := make([]reflect.Value, 0, c.leading+len(args.Values))

	for i, l := range leading {
		if l == nil {
			in = append(in, reflect.Zero(fnType.In(i)))
			continue
		}

		in = append(in, reflect.ValueOf(l))
	}

	in = append(in, args.Values...)

	var out []reflect.Value
	if c.sig.Variadic {
		out = c.fn.CallSlice(in)
	} else {
		out = c.fn.Call(in)
	}

	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}

	return nil
}
