package report

import (
	"errors"
	"iter"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dataprovider/expand"
)

// Host is the host framework's view of a running case. *testing.T implements it.
type Host interface {
	Failed() bool
	Skipped() bool
}

// Sink receives outcomes as soon as they are produced.
type Sink interface {
	Report(o Outcome)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(o Outcome)

func (f SinkFunc) Report(o Outcome) { f(o) }

// Flusher is implemented by sinks that render something once a run is over.
type Flusher interface {
	Flush() error
}

// Reporter invokes test cases and forwards their outcomes. Cases share no
// state through the Reporter, so hosts may run them concurrently.
type Reporter struct {
	runID  uuid.UUID
	sinks  []Sink
	logger *zap.Logger

	mu sync.Mutex // serializes sink calls
}

type Option func(*Reporter)

func WithSink(sinks ...Sink) Option {
	return func(r *Reporter) { r.sinks = append(r.sinks, sinks...) }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Reporter) { r.logger = logger }
}

// WithRunID overrides the random run id stamped on every outcome.
func WithRunID(id uuid.UUID) Option {
	return func(r *Reporter) { r.runID = id }
}

func New(opts ...Option) *Reporter {
	r := &Reporter{runID: uuid.New(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Reporter) RunID() uuid.UUID { return r.runID }

// Run invokes tc without a host.
func (r *Reporter) Run(tc *expand.TestCase, leading ...any) Outcome {
	return r.RunWith(tc, nil, leading...)
}

// RunWith invokes tc with the host-supplied leading arguments and classifies it:
//
//   - a staged expansion error: errored
//   - a returned *SkipError, or a *SkipError panic: skipped
//   - any other returned error, or an *AssertionError panic: failed
//   - any other panic: errored with a *PanicError
//   - otherwise passed
//
// A host reporting Failed or Skipped turns a passed case into a failed or
// skipped one. When the callable ends its goroutine (t.FailNow, t.SkipNow)
// the outcome is still emitted, from the host's view, before the goroutine exits.
func (r *Reporter) RunWith(tc *expand.TestCase, host Host, leading ...any) (o Outcome) {
	o = Outcome{RunID: r.runID, Case: tc}

	if staged := tc.Err(); staged != nil {
		o.Status, o.Err = StatusErrored, staged
		r.emit(o)

		return o
	}

	start := time.Now()
	returned := false

	defer func() {
		o.Duration = time.Since(start)

		if v := recover(); v != nil {
			o.Status, o.Err = classifyPanic(v)
		} else if !returned {
			o.Status, o.Err = StatusFailed, ErrGoexit
		}

		applyHost(host, &o)
		r.emit(o)
	}()

	err := tc.Invoke(leading...)
	returned = true
	o.Status, o.Err = classifyReturn(err)

	return o
}

// RunAll runs every case of seq in order. A structural expansion error stops
// the run and is returned with the outcomes produced so far.
func (r *Reporter) RunAll(seq iter.Seq2[*expand.TestCase, error], leading ...any) ([]Outcome, error) {
	var outcomes []Outcome

	for tc, err := range seq {
		if err != nil {
			r.logger.Warn("Expansion aborted", zap.String("run_id", r.runID.String()), zap.Error(err))
			return outcomes, err
		}

		outcomes = append(outcomes, r.Run(tc, leading...))
	}

	return outcomes, nil
}

// Flush lets every Flusher sink render its summary.
func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, s := range r.sinks {
		if f, ok := s.(Flusher); ok {
			errs = append(errs, f.Flush())
		}
	}

	return errors.Join(errs...)
}

func (r *Reporter) emit(o Outcome) {
	r.logger.Debug("Case finished",
		zap.String("run_id", o.RunID.String()),
		zap.String("case", o.Name()),
		zap.Stringer("status", o.Status),
		zap.Duration("duration", o.Duration),
		zap.Error(o.Err))

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sinks {
		s.Report(o)
	}
}

func classifyReturn(err error) (Status, error) {
	var skip *SkipError

	switch {
	case err == nil:
		return StatusPassed, nil
	case errors.As(err, &skip):
		return StatusSkipped, err
	default:
		return StatusFailed, err
	}
}

func classifyPanic(v any) (Status, error) {
	if err, ok := v.(error); ok {
		var (
			assertion *AssertionError
			skip      *SkipError
		)

		switch {
		case errors.As(err, &assertion):
			return StatusFailed, err
		case errors.As(err, &skip):
			return StatusSkipped, err
		}
	}

	return StatusErrored, &PanicError{Value: v, Stack: debug.Stack()}
}

func applyHost(host Host, o *Outcome) {
	if host == nil {
		return
	}

	overridable := o.Status == StatusPassed || errors.Is(o.Err, ErrGoexit)

	switch {
	case overridable && host.Failed():
		o.Status, o.Err = StatusFailed, ErrHostFailed
	case overridable && host.Skipped():
		o.Status, o.Err = StatusSkipped, nil
	}
}
