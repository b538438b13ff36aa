package dptest

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"dataprovider/convert"
	"dataprovider/expand"
	"dataprovider/options"
	"dataprovider/report"
)

var (
	typeT  = reflect.TypeFor[*testing.T]()
	typeTB = reflect.TypeFor[testing.TB]()
)

type settings struct {
	cfg      options.Config
	registry *convert.Registry
	logger   *zap.Logger
	sinks    []report.Sink
	parallel bool
}

type Option func(*settings)

// WithConfig applies configuration options on top of options.Default.
func WithConfig(opts ...options.Option) Option {
	return func(s *settings) { s.cfg.Apply(opts...) }
}

func WithRegistry(registry *convert.Registry) Option {
	return func(s *settings) { s.registry = registry }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithSink forwards every outcome to sinks. Flushers are flushed once all
// subtests, parallel ones included, are done.
func WithSink(sinks ...report.Sink) Option {
	return func(s *settings) { s.sinks = append(s.sinks, sinks...) }
}

// Parallel marks every subtest with t.Parallel.
func Parallel() Option {
	return func(s *settings) { s.parallel = true }
}

// Run expands fn over data and runs one subtest per case.
//
// An invalid declaration or a malformed or empty data source fails t
// immediately. Rows are read lazily, so a malformed row in the middle of the
// source fails t only after the subtests of the rows before it have run. A
// case that fails to convert, returns an error or panics fails its own
// subtest only.
func Run(t *testing.T, fn any, data any, opts ...Option) {
	t.Helper()

	s := settings{cfg: options.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	expandOpts := []expand.Option{expand.WithLogger(s.logger)}
	if s.registry != nil {
		expandOpts = append(expandOpts, expand.WithRegistry(s.registry))
	}

	e, err := expand.NewExpander(s.cfg, expandOpts...)
	if err != nil {
		t.Fatalf("dataprovider: %v", err)
	}

	leading := leadingParams(fn)

	c, err := e.Bind(fn, leading)
	if err != nil {
		t.Fatalf("dataprovider: %v", err)
	}

	r := report.New(report.WithSink(s.sinks...), report.WithLogger(s.logger))
	t.Cleanup(func() {
		if err := r.Flush(); err != nil {
			t.Errorf("dataprovider: flush: %v", err)
		}
	})

	for tc, err := range e.Expand(c, data) {
		if err != nil {
			t.Fatalf("dataprovider: %v", err)
		}

		t.Run(tc.Name, func(t *testing.T) {
			if s.parallel {
				t.Parallel()
			}

			var args []any
			if leading == 1 {
				args = []any{t}
			}

			settle(t, r.RunWith(tc, t, args...))
		})
	}
}

// leadingParams reports whether fn takes the subtest's T as first parameter.
func leadingParams(fn any) int {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func || ft.NumIn() == 0 {
		return 0
	}

	if in := ft.In(0); in == typeT || in == typeTB {
		return 1
	}

	return 0
}

// settle reflects an outcome on the subtest running it.
func settle(t *testing.T, o report.Outcome) {
	t.Helper()

	switch o.Status {
	case report.StatusFailed:
		if !t.Failed() {
			t.Error(o.Err)
		}
	case report.StatusErrored:
		var p *report.PanicError
		if errors.As(o.Err, &p) {
			t.Errorf("%v\n%s", p, p.Stack)
			return
		}

		t.Errorf("errored: %v", o.Err)
	case report.StatusSkipped:
		if !t.Skipped() {
			t.Skip(o.Err)
		}
	}
}
