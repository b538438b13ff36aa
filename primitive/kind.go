package primitive

import (
	"math"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named integer or string type, a candidate for enum coercion

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat() || k.IsComplex()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the storage width used when parsing a value of the kind.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64, KindComplex64:
		return 64
	case KindComplex128:
		return 128
	}
}

// FromReflectType classifies rtype. Exact builtin types map to their own kind,
// named integer and string types map to KindPrimitiveEnum, everything else is 0.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	kind := fromReflectKind(rtype.Kind())
	if kind == 0 || rtype.PkgPath() == "" {
		return kind
	}

	switch {
	case kind.IsInteger(), kind == KindString:
		return KindPrimitiveEnum
	default:
		return kind
	}
}

// Underlying classifies rtype by its storage kind, so named types resolve to
// the kind they are parsed as. time.Time and time.Duration keep their own kinds.
func Underlying(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	return fromReflectKind(rtype.Kind())
}

func fromReflectKind(kind reflect.Kind) KindEnum {
	switch kind {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Complex64:
		return KindComplex64
	case reflect.Complex128:
		return KindComplex128
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
