package convert_test

import (
	"dataprovider/convert"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }

func ExampleParseCaster() {
	desc, err := convert.ParseCaster(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = convert.ParseCaster(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = convert.ParseCaster(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = convert.ParseCaster(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = convert.ParseCaster(empty)
	fmt.Println(err)

	_, err = convert.ParseCaster(wrong)
	fmt.Println(err)

	// Output:
	// <nil> convert_test full int string true true
	// <nil> strconv Itoa int string false false
	// <nil> strconv Atoi string int false true
	// <nil> convert_test customError int string false true
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
}

func TestParseCaster_Rejects(t *testing.T) {
	t.Parallel()

	_, err := convert.ParseCaster(42)
	require.ErrorIs(t, err, convert.ErrCasterIsNotAFunction)

	_, err = convert.ParseCaster(nil)
	require.ErrorIs(t, err, convert.ErrCasterIsNotAFunction)

	_, err = convert.ParseCaster(func(...string) int { return 0 })
	require.ErrorIs(t, err, convert.ErrIsNotACaster)

	_, err = convert.ParseCaster(func(**int) int { return 0 })
	require.ErrorIs(t, err, convert.ErrDoublePointer)

	_, err = convert.ParseCaster(func(int) **int { return nil })
	require.ErrorIs(t, err, convert.ErrDoublePointer)

	_, err = convert.ParseCaster(func(int) (int, string) { return 0, "" })
	require.ErrorIs(t, err, convert.ErrIsNotACaster)
}

func TestCaster_Call(t *testing.T) {
	t.Parallel()

	nonEmpty, err := convert.ParseCaster(func(s string) (int, bool) { return len(s), s != "" })
	require.NoError(t, err)
	assert.True(t, nonEmpty.Accepts(reflect.TypeFor[string]()))
	assert.False(t, nonEmpty.Accepts(reflect.TypeFor[int]()))

	v, err := nonEmpty.Call(reflect.ValueOf("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Interface())

	_, err = nonEmpty.Call(reflect.ValueOf(""))
	require.ErrorIs(t, err, convert.ErrCasterRejected)

	atoi, err := convert.ParseCaster(strconv.Atoi)
	require.NoError(t, err)

	_, err = atoi.Call(reflect.ValueOf("x"))
	require.ErrorIs(t, err, strconv.ErrSyntax)

	index, err := convert.ParseCaster(func(s string) byte { return s[3] })
	require.NoError(t, err)

	_, err = index.Call(reflect.ValueOf("ab"))
	require.ErrorIs(t, err, convert.ErrCasterPanicked)
	assert.Contains(t, err.Error(), "index out of range")
}
