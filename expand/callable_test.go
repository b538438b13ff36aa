package expand_test

import (
	"context"
	"dataprovider/convert"
	"dataprovider/expand"
	"dataprovider/internal/diagnostic"
	"dataprovider/options"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinWords(ctx context.Context, sep string, words ...string) string {
	return strings.Join(words, sep)
}

func TestNewCallable(t *testing.T) {
	t.Parallel()

	c, err := expand.NewCallable(checkSum, 0)
	require.NoError(t, err)
	assert.Equal(t, "checkSum", c.Name())
	assert.Equal(t, "dataprovider/expand_test", c.Package())
	assert.Equal(t, "dataprovider/expand_test.checkSum(int, int, int)", c.String())
	assert.Equal(t, 3, c.Signature().Len())

	args := convert.Arguments{Values: []reflect.Value{reflect.ValueOf(1), reflect.ValueOf(1), reflect.ValueOf(3)}}
	assert.EqualError(t, c.Invoke(args), "1 + 1 = 2, not 3")

	_, err = expand.NewCallable(joinWords, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrInvalidDeclaration)
}

func TestCallable_InvokeLeading(t *testing.T) {
	t.Parallel()

	var got []string
	record := func(ctx context.Context, sep string, words ...string) {
		require.NotNil(t, ctx)
		got = append(got, strings.Join(words, sep))
	}

	c, err := expand.NewCallable(record, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Leading())

	e, err := expand.NewExpander(options.Default())
	require.NoError(t, err)

	for tc, err := range e.Expand(c, []string{"-|a|b", "+"}) {
		require.NoError(t, err)
		require.NoError(t, tc.Invoke(context.Background()))
	}

	assert.Equal(t, []string{"a-b", ""}, got)

	args := convert.Arguments{Values: []reflect.Value{reflect.ValueOf(""), reflect.ValueOf([]string{})}}
	assert.ErrorIs(t, c.Invoke(args), expand.ErrLeadingArgs)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	codes := func(ds []diagnostic.Diagnostic) []string {
		out := make([]string, len(ds))
		for i, d := range ds {
			out[i] = d.Code
		}
		return out
	}

	d := expand.Validate(42, 0, nil)
	assert.Equal(t, []string{diagnostic.CodeNotAFunction}, codes(d.Errors))

	d = expand.Validate(func(int) (int, error) { return 0, nil }, 0, nil)
	assert.Equal(t, []string{diagnostic.CodeBadResults}, codes(d.Errors))

	d = expand.Validate(func() {}, 0, nil)
	assert.Equal(t, []string{diagnostic.CodeNoParameters}, codes(d.Errors))

	d = expand.Validate(func(*testing.T) {}, 2, nil)
	assert.Equal(t, []string{diagnostic.CodeLeadingTooLong}, codes(d.Errors))

	coercer := convert.NewCoercer(options.Default(), convert.NewRegistry())
	d = expand.Validate(func(*testing.T, int, chan int) {}, 1, coercer)
	require.False(t, d.HasErrors())
	require.Len(t, d.Infos, 1)
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, 1, d.Infos[0].Param)
	assert.Equal(t, 2, d.Warnings[0].Param)
	assert.Equal(t, diagnostic.CodeNoStringCoercion, d.Warnings[0].Code)
}
