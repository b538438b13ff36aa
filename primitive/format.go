package primitive

import (
	"reflect"
	"strconv"
	"time"
)

// Format renders v in the textual grammar Parse accepts, so that parsing the
// result into v's type yields an equal value. ok is false for non-primitive values.
func Format(v reflect.Value) (s string, ok bool) {
	if !v.IsValid() {
		return "", false
	}

	kind := Underlying(v.Type())

	switch {
	default:
		return "", false
	case kind == KindString:
		return v.String(), true
	case kind == KindBool:
		return strconv.FormatBool(v.Bool()), true
	case kind == KindTime:
		return v.Interface().(time.Time).Format(time.RFC3339Nano), true
	case kind == KindDuration:
		return time.Duration(v.Int()).String(), true
	case kind.IsSigned():
		return strconv.FormatInt(v.Int(), 10), true
	case kind.IsUnsigned():
		return strconv.FormatUint(v.Uint(), 10), true
	case kind.IsFloat():
		return strconv.FormatFloat(v.Float(), 'g', -1, kind.Bits()), true
	case kind.IsComplex():
		return strconv.FormatComplex(v.Complex(), 'g', -1, kind.Bits()), true
	}
}
