package expand_test

import (
	"dataprovider/expand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

type celsius float64

func (c celsius) String() string { return "warm" }

func TestFormatArg(t *testing.T) {
	t.Parallel()

	five := 5

	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"nil", nil, "<nil>"},
		{"nil pointer", (*int)(nil), "<nil>"},
		{"empty string", "", "<empty string>"},
		{"plain string", "abc", "abc"},
		{"escaped controls", "a\nb\rc\x00", `a\nb\rc\0`},
		{"non printable", "tab\there", "tab<np>here"},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"pointer target", &five, "5"},
		{"slice", []int{1, 2}, "[1, 2]"},
		{"nested slice", []any{nil, "", []string{"x"}}, "[<nil>, <empty string>, [x]]"},
		{"array", [2]bool{true, false}, "[true, false]"},
		{"struct", point{1, 2}, "{1 2}"},
		{"struct pointer", &point{3, 4}, "{3 4}"},
		{"sorted map", map[string]int{"b": 2, "a": 1}, "map[a:1 b:2]"},
		{"stringer", celsius(30), "warm"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, expand.FormatArg(tt.arg))
		})
	}
}

func TestFormatter_Placeholders(t *testing.T) {
	t.Parallel()

	c, err := expand.NewCallable(checkSum, 0)
	require.NoError(t, err)

	ctx := expand.Context{Callable: c, Index: 7, Args: []any{1, "a", true}}

	tests := []struct {
		pattern string
		want    string
	}{
		{"%c|%cc|%m|%i", "expand_test|dataprovider/expand_test|checkSum|7"},
		{"%cm", "dataprovider/expand_test.checkSum(int, int, int)"},
		{"[%i] %a[0..-1]", "[7] 1, a, true"},
		{"%a[0]", "1"},
		{"%p[-1]", "true"},
		{"%a[1..2]", "a, true"},
		{"%a[-2..-1]", "a, true"},
		{"%a[2..1]", ""},
		{"%na stays, so does %x", "%na stays, so does %x"},
		{"100%", "100%"},
	}

	for _, tt := range tests {
		got, err := expand.NewFormatter(tt.pattern).Format(ctx)
		require.NoError(t, err, tt.pattern)
		assert.Equal(t, tt.want, got, tt.pattern)
	}
}

func TestFormatter_Errors(t *testing.T) {
	t.Parallel()

	ctx := expand.Context{Index: 0, Args: []any{1, 2}}

	for _, pattern := range []string{"%a[2]", "%a[-3]", "%a[2..0]", "%p[0..5]"} {
		_, err := expand.NewFormatter(pattern).Format(ctx)

		var formatErr *expand.FormatError
		require.ErrorAs(t, err, &formatErr, pattern)
		assert.Equal(t, pattern, formatErr.Placeholder)
		assert.ErrorIs(t, err, expand.ErrSubscriptOutOfRange)
	}
}

func TestFormatter_NoRescan(t *testing.T) {
	t.Parallel()

	got, err := expand.NewFormatter("[%i] %a[0]").Format(expand.Context{Index: 1, Args: []any{"%i"}})
	require.NoError(t, err)
	assert.Equal(t, "[1] %i", got)
}
