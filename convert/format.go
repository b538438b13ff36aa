package convert

import (
	"encoding"
	"fmt"
	"reflect"

	"dataprovider/primitive"
)

// Stringify renders v in its canonical string form. Scalars use the grammar
// the Coercer parses back; other values prefer String, then MarshalText.
func Stringify(v reflect.Value) string {
	if !v.IsValid() || (Nullable(v.Type()) && v.IsNil()) {
		return "<nil>"
	}

	if isBuiltinScalar(v.Type()) || isTimeKind(v.Type()) {
		s, _ := primitive.Format(v)
		return s
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case fmt.Stringer:
			return x.String()
		case encoding.TextMarshaler:
			if b, err := x.MarshalText(); err == nil {
				return string(b)
			}
		}
	}

	if s, ok := primitive.Format(v); ok {
		return s
	}

	return fmt.Sprint(v.Interface())
}
