package primitive_test

import (
	"dataprovider/primitive"
	"fmt"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Flag bool
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Flag(false))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(complex64(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.Underlying(reflect.TypeOf(IntEnum(0))))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindBool
	// KindDuration
	// KindTime
	// KindComplex64
	// KindEnum(0)
	// KindInt
}

func TestKindEnum_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     primitive.KindEnum
		signed   bool
		unsigned bool
		float    bool
		complex  bool
		bits     int
	}{
		{kind: primitive.KindInt, signed: true, bits: strconv.IntSize},
		{kind: primitive.KindInt8, signed: true, bits: 8},
		{kind: primitive.KindUint, unsigned: true, bits: strconv.IntSize},
		{kind: primitive.KindUint16, unsigned: true, bits: 16},
		{kind: primitive.KindFloat32, float: true, bits: 32},
		{kind: primitive.KindComplex64, complex: true, bits: 64},
		{kind: primitive.KindComplex128, complex: true, bits: 128},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.signed, tt.kind.IsSigned())
			assert.Equal(t, tt.unsigned, tt.kind.IsUnsigned())
			assert.Equal(t, tt.signed || tt.unsigned, tt.kind.IsInteger())
			assert.Equal(t, tt.float, tt.kind.IsFloat())
			assert.Equal(t, tt.complex, tt.kind.IsComplex())
			assert.True(t, tt.kind.IsNumber())
			assert.Equal(t, tt.bits, tt.kind.Bits())
		})
	}

	assert.False(t, primitive.KindString.IsNumber())
	assert.Panics(t, func() { primitive.KindBool.Bits() })
}
