package convert

import (
	"errors"
	"fmt"
	"reflect"

	"dataprovider/internal/common"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeFor[error]()

// Caster describes a registered conversion function.
type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a Caster struct if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool means the caster rejected the value.
func ParseCaster(fn any) (Caster, error) {
	if fn == nil {
		return Caster{}, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Caster{}, ErrCasterIsNotAFunction
	}

	if fnVal.IsNil() || fnType.IsVariadic() || fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Caster{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	pkgPath, name := common.FuncName(fnVal)

	caster := Caster{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: common.PkgAlias(pkgPath),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Caster{}, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Caster{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case isError(last):
			caster.HasErr = true
		}
		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Caster{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true
		return caster, nil
	}
}

// Accepts reports whether a value of type src can be passed to the caster.
func (c Caster) Accepts(src reflect.Type) bool {
	return src != nil && src.AssignableTo(c.Src)
}

// Call runs the caster on src, folding its bool and error results into a
// single error. A panic inside the caster is returned as ErrCasterPanicked.
func (c Caster) Call(src reflect.Value) (_ reflect.Value, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", ErrCasterPanicked, v)
		}
	}()

	out := c.fn.Call([]reflect.Value{src})

	if c.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return reflect.Value{}, errVal.Interface().(error)
		}
	}

	if c.HasBool && !out[1].Bool() {
		return reflect.Value{}, ErrCasterRejected
	}

	return out[0], nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}
