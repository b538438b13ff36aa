package expand_test

import (
	"dataprovider/convert"
	"dataprovider/expand"
	"dataprovider/options"
	"dataprovider/source"
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func checkSum(a, b, want int) error {
	if a+b != want {
		return fmt.Errorf("%d + %d = %d, not %d", a, b, a+b, want)
	}

	return nil
}

func newExpander(t *testing.T, opts ...options.Option) *expand.Expander {
	t.Helper()

	e, err := expand.NewExpander(options.New(opts...), expand.WithRegistry(convert.NewRegistry()))
	require.NoError(t, err)

	return e
}

func bindSum(t *testing.T, e *expand.Expander) *expand.Callable {
	t.Helper()

	c, err := e.Bind(checkSum, 0)
	require.NoError(t, err)

	return c
}

func collect(seq iter.Seq2[*expand.TestCase, error]) ([]*expand.TestCase, error) {
	var cases []*expand.TestCase
	for tc, err := range seq {
		if err != nil {
			return cases, err
		}

		cases = append(cases, tc)
	}

	return cases, nil
}

func ExampleExpander_Expand() {
	e, _ := expand.NewExpander(options.Default())
	c, _ := e.Bind(checkSum, 0)

	for tc, err := range e.Expand(c, []string{"1|2|3", "2|2|5", "x|1|1"}) {
		if err != nil {
			fmt.Println("expansion failed:", err)
			return
		}

		fmt.Printf("%s -> staged=%v invoked=%v\n", tc.Name, tc.Err() != nil, tc.Invoke())
	}

	// Output:
	// [0] 1, 2, 3 -> staged=false invoked=<nil>
	// [1] 2, 2, 5 -> staged=false invoked=2 + 2 = 4, not 5
	// [2] x, 1, 1 -> staged=true invoked=row 2, column 0: cannot convert "x" to int: strconv.ParseInt: parsing "x": invalid syntax
}

func TestExpand_OneCasePerRow(t *testing.T) {
	t.Parallel()

	e := newExpander(t)
	data := []any{"1|2|3", []int{0, 0, 0}, []any{-1, "1", 0}, "4 | 5 | 9"}

	cases, err := collect(e.Expand(bindSum(t, e), data))
	require.NoError(t, err)
	require.Len(t, cases, len(data))

	wantNames := []string{"[0] 1, 2, 3", "[1] 0, 0, 0", "[2] -1, 1, 0", "[3] 4, 5, 9"}
	for i, tc := range cases {
		assert.Equal(t, i, tc.Index)
		assert.Equal(t, wantNames[i], tc.Name)
		require.NoError(t, tc.Err())
		assert.NoError(t, tc.Invoke())
	}
}

func TestExpand_StagedErrors(t *testing.T) {
	t.Parallel()

	e := newExpander(t)

	cases, err := collect(e.Expand(bindSum(t, e), []string{"1|2|3", "1|2", "x|2|3"}))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.NoError(t, cases[0].Err())

	var arity *convert.ArityMismatchError
	require.ErrorAs(t, cases[1].Err(), &arity)
	assert.Equal(t, 3, arity.Expected)
	assert.Equal(t, 2, arity.Actual)
	assert.Equal(t, "[1] 1, 2", cases[1].Name)
	assert.ErrorIs(t, cases[1].Invoke(), cases[1].Err())

	var rowErr *convert.RowConversionError
	require.ErrorAs(t, cases[2].Err(), &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, "[2] x, 2, 3", cases[2].Name)
}

type Ticket int

func TestExpand_PanickingConverterStagesRow(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.MustRegister(func(s string) (Ticket, error) {
		if s == "boom" {
			var seen map[string]int
			seen[s]++
		}

		return Ticket(len(s)), nil
	})

	e, err := expand.NewExpander(options.Default(), expand.WithRegistry(registry))
	require.NoError(t, err)

	c, err := e.Bind(func(Ticket) {}, 0)
	require.NoError(t, err)

	cases, err := collect(e.Expand(c, []string{"a", "boom", "ccc"}))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.NoError(t, cases[0].Err())
	assert.NoError(t, cases[2].Err())
	assert.Equal(t, Ticket(3), cases[2].Args.Values[0].Interface())

	var rowErr *convert.RowConversionError
	require.ErrorAs(t, cases[1].Err(), &rowErr)
	assert.Equal(t, 1, rowErr.Row)
	assert.ErrorIs(t, cases[1].Err(), convert.ErrCasterPanicked)
	assert.Contains(t, cases[1].Err().Error(), "assignment to entry in nil map")
}

func TestExpand_EmptySource(t *testing.T) {
	t.Parallel()

	e := newExpander(t)

	var yielded int
	for tc, err := range e.Expand(bindSum(t, e), []string{}) {
		yielded++
		assert.Nil(t, tc)

		var empty *expand.EmptyDataSourceError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, "checkSum", empty.Callable)
	}

	assert.Equal(t, 1, yielded)
}

func TestExpand_MalformedSource(t *testing.T) {
	t.Parallel()

	e := newExpander(t)
	c := bindSum(t, e)

	_, err := collect(e.Expand(c, nil))

	var malformed *source.MalformedDataSourceError
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, source.ErrNilSource)

	cases, err := collect(e.Expand(c, []any{"1|2|3", nil}))
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Row)
	assert.Len(t, cases, 1)
}

func TestExpand_Lazy(t *testing.T) {
	t.Parallel()

	pulled := 0
	data := func(yield func(string) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(fmt.Sprintf("%d|%d|%d", i, i, 2*i)) {
				return
			}
		}
	}

	e := newExpander(t)
	c := bindSum(t, e)

	for tc, err := range e.Expand(c, iter.Seq[string](data)) {
		require.NoError(t, err)
		if tc.Index == 2 {
			break
		}
	}

	assert.Equal(t, 3, pulled)
}

func TestExpand_Restartable(t *testing.T) {
	t.Parallel()

	calls := 0
	supplier := source.FromFunc(func() ([]string, error) {
		calls++
		return []string{"1|1|2", "2|2|4"}, nil
	})

	e := newExpander(t)
	c := bindSum(t, e)
	seq := e.Expand(c, supplier)

	for range 2 {
		cases, err := collect(seq)
		require.NoError(t, err)
		assert.Len(t, cases, 2)
	}

	assert.Equal(t, 2, calls)

	failing := source.FromFunc(func() ([]string, error) { return nil, errors.New("no fixtures") })
	_, err := collect(e.Expand(c, failing))
	assert.ErrorContains(t, err, "no fixtures")
}

func TestExpand_NameColumn(t *testing.T) {
	t.Parallel()

	e := newExpander(t, options.WithNameColumn())

	cases, err := collect(e.Expand(bindSum(t, e), []string{"1|2|3|adds small numbers", "2|2|4"}))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "adds small numbers", cases[0].Name)
	assert.Equal(t, "[1] 2, 2, 4", cases[1].Name)
}

func TestExpand_Format(t *testing.T) {
	t.Parallel()

	e := newExpander(t, options.WithFormat("%m[%i]: %a[-1] from %c"))

	cases, err := collect(e.Expand(bindSum(t, e), []string{"1|2|3"}))
	require.NoError(t, err)
	assert.Equal(t, "checkSum[0]: 3 from expand_test", cases[0].Name)

	e = newExpander(t, options.WithFormat("%a[5]"))

	cases, err = collect(e.Expand(bindSum(t, e), []string{"1|2|3"}))
	require.NoError(t, err)

	var formatErr *expand.FormatError
	require.ErrorAs(t, cases[0].Err(), &formatErr)
	assert.ErrorIs(t, formatErr, expand.ErrSubscriptOutOfRange)
	assert.Equal(t, "[0] 1, 2, 3", cases[0].Name)
}

func TestExpand_Placeholder(t *testing.T) {
	t.Parallel()

	e, err := expand.NewExpander(options.New(options.WithFormat("%m with %argc args")),
		expand.WithPlaceholder("argc", func(ctx expand.Context) string { return fmt.Sprint(len(ctx.Args)) }))
	require.NoError(t, err)

	cases, err := collect(e.Expand(bindSum(t, e), []string{"1|2|3"}))
	require.NoError(t, err)
	assert.Equal(t, "checkSum with 3 args", cases[0].Name)
}

func TestExpand_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	e, err := expand.NewExpander(options.Default(), expand.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = collect(e.Expand(bindSum(t, e), []string{"1|2|3", "1|x|3"}))
	require.NoError(t, err)

	staged := logs.FilterMessage("Row staged with error").All()
	require.Len(t, staged, 1)
	assert.Equal(t, int64(1), staged[0].ContextMap()["row"])
	assert.Equal(t, int64(1), staged[0].ContextMap()["column"])

	_, err = collect(e.Expand(bindSum(t, e), []string{}))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Data source is empty").Len())
}

func TestNewExpander_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := expand.NewExpander(options.New(options.WithSeparator("")))
	require.ErrorIs(t, err, options.ErrEmptySeparator)
}
