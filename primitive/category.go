package primitive

import (
	"reflect"

	"dataprovider/options"
)

type ConversionPair struct {
	From, To KindEnum
}

var safeNumberPairs = safeNumberConversionPairs()

// IsSafe reports whether every value of kind from fits kind to without loss.
func IsSafe(from, to KindEnum) bool {
	_, ok := safeNumberPairs[ConversionPair{from, to}]
	return ok
}

// ConvertNumber converts a typed number v to rtype. Widening listed in the safe
// table needs CategorySafeNumber; anything else needs CategoryUnsafeNumber and
// is accepted only when converting back reproduces v exactly.
func ConvertNumber(v reflect.Value, rtype reflect.Type, allowed options.CategoryEnum) (reflect.Value, bool) {
	from, to := Underlying(v.Type()), Underlying(rtype)
	if !from.IsNumber() || !to.IsNumber() || !v.CanConvert(rtype) {
		return reflect.Value{}, false
	}

	if IsSafe(from, to) {
		if !allowed.Has(options.CategorySafeNumber) {
			return reflect.Value{}, false
		}

		return v.Convert(rtype), true
	}

	if !allowed.Has(options.CategoryUnsafeNumber) {
		return reflect.Value{}, false
	}

	out := v.Convert(rtype)
	if !out.CanConvert(v.Type()) || !out.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}

	// sign flips survive an int64 <-> uint64 round trip
	if from.IsSigned() && to.IsUnsigned() && v.Int() < 0 {
		return reflect.Value{}, false
	}

	if from.IsUnsigned() && to.IsSigned() && out.Int() < 0 {
		return reflect.Value{}, false
	}

	return out, true
}

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {}, // int16 omitting narrowing to int8
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {}, // int32 omitting narrowing to int8/16
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {}, // int64 is the widest signed integer type

		{KindUint, KindUint}:   {}, // uint can be any wide from 32 upto 64
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {}, // uint8 can be safely converted to any unsigned int
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {}, // also uint8 can be converted to any wider signed int
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {}, // uint16 omitting narrowing to uint8
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {}, // also uint16 can be converted to any wider signed int
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {}, // uint32 omitting narrowing to uint8/16
		{KindUint32, KindInt64}:   {}, // also only int64 is wide enough to hold uint32
		{KindUint32, KindFloat64}: {}, // uint32 is wider than float32 mantissa

		{KindUint64, KindUint64}: {}, // uint64 is the widest unsigned integer type

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},

		{KindComplex64, KindComplex64}:   {},
		{KindComplex64, KindComplex128}:  {},
		{KindComplex128, KindComplex128}: {},
	}
}
