package expand

import (
	"errors"
	"iter"

	"go.uber.org/zap"

	"dataprovider/convert"
	"dataprovider/options"
	"dataprovider/source"
)

// TestCase is one expanded invocation of a parametrized test.
type TestCase struct {
	// Index is the zero-based, gap-free position of the row in its source.
	Index    int
	Name     string
	Callable *Callable
	Args     convert.Arguments
	Row      source.Row

	err error
}

// Err returns the error staged while expanding the row: an arity, conversion
// or naming failure. A case with a staged error must not be invoked.
func (tc *TestCase) Err() error { return tc.err }

// Invoke runs the callable with the converted arguments, or returns the staged error.
func (tc *TestCase) Invoke(leading ...any) error {
	if tc.err != nil {
		return tc.err
	}

	return tc.Callable.Invoke(tc.Args, leading...)
}

// Expander pairs data rows with a callable.
type Expander struct {
	cfg          options.Config
	registry     *convert.Registry
	placeholders []Placeholder
	logger       *zap.Logger

	coercer    *convert.Coercer
	normalizer *source.Normalizer
	converter  *convert.RowConverter
	formatter  *Formatter
}

type Option func(*Expander)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Expander) { e.logger = logger }
}

// WithRegistry sets the converter registry; convert.DefaultRegistry otherwise.
func WithRegistry(registry *convert.Registry) Option {
	return func(e *Expander) { e.registry = registry }
}

// WithPlaceholder adds a custom %token to the name pattern.
func WithPlaceholder(token string, render func(ctx Context) string) Option {
	return func(e *Expander) {
		e.placeholders = append(e.placeholders, Placeholder{Token: token, Render: render})
	}
}

func NewExpander(cfg options.Config, opts ...Option) (*Expander, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Expander{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	e.coercer = convert.NewCoercer(cfg, e.registry)
	e.normalizer = source.NewNormalizer(cfg)
	e.converter = convert.NewRowConverter(e.coercer)
	e.formatter = NewFormatter(cfg.Format, e.placeholders...)

	return e, nil
}

// Coercer returns the coercer rows are converted with.
func (e *Expander) Coercer() *convert.Coercer { return e.coercer }

// Bind validates fn against this expander's coercion rules and binds it.
// Warnings are logged; errors are returned.
func (e *Expander) Bind(fn any, leading int) (*Callable, error) {
	diags := Validate(fn, leading, e.coercer)

	for _, w := range diags.Warnings {
		e.logger.Warn("Parameter needs typed rows", zap.String("diagnostic", w.String()))
	}

	for _, i := range diags.Infos {
		e.logger.Debug("Parameter coercion", zap.String("diagnostic", i.String()))
	}

	if err := diags.Err(); err != nil {
		return nil, err
	}

	return bind(fn, leading), nil
}

// Expand lazily yields one TestCase per row of data, in source order.
//
// A structurally invalid source yields a *source.MalformedDataSourceError and
// a source without rows an *EmptyDataSourceError; either ends the sequence.
// Rows that fail to convert are yielded with a staged error. Every iteration
// reads data again; nothing is cached between iterations.
func (e *Expander) Expand(c *Callable, data any) iter.Seq2[*TestCase, error] {
	sig := c.Signature()
	sig.NameColumn = e.cfg.NameColumn

	return func(yield func(*TestCase, error) bool) {
		count := 0

		for row, err := range e.normalizer.Rows(data) {
			if err != nil {
				e.logger.Warn("Data source rejected", zap.String("test", c.Name()), zap.Error(err))
				yield(nil, err)
				return
			}

			count++
			if !yield(e.newCase(c, sig, row), nil) {
				return
			}
		}

		if count == 0 {
			err := &EmptyDataSourceError{Callable: c.Name()}
			e.logger.Warn("Data source is empty", zap.String("test", c.Name()))
			yield(nil, err)
		}
	}
}

func (e *Expander) newCase(c *Callable, sig convert.Signature, row source.Row) *TestCase {
	tc := &TestCase{Index: row.Index, Callable: c, Row: row}

	args, err := e.converter.Convert(row, sig)
	if err != nil {
		e.logger.Debug("Row staged with error",
			zap.String("test", c.Name()),
			zap.Int("row", row.Index),
			zap.Int("column", columnOf(err)),
			zap.Error(err))

		tc.err = err
		tc.Name = e.fallbackName(c, row)

		return tc
	}

	tc.Args = args
	if args.Named {
		tc.Name = args.Name
		return tc
	}

	name, err := e.formatter.Format(Context{Callable: c, Index: row.Index, Args: args.Interfaces()})
	if err != nil {
		e.logger.Debug("Row name failed", zap.Int("row", row.Index), zap.Error(err))

		tc.err = err
		tc.Name = e.fallbackName(c, row)

		return tc
	}

	tc.Name = name

	return tc
}

// fallbackName names a row that could not be converted from its raw columns.
// A pattern that cannot render them falls back to the default pattern.
func (e *Expander) fallbackName(c *Callable, row source.Row) string {
	ctx := Context{Callable: c, Index: row.Index, Args: row.Columns}

	if name, err := e.formatter.Format(ctx); err == nil {
		return name
	}

	name, _ := NewFormatter(options.DefaultFormat).Format(ctx)

	return name
}

func columnOf(err error) int {
	var rowErr *convert.RowConversionError
	if errors.As(err, &rowErr) {
		return rowErr.Column
	}

	return -1
}
