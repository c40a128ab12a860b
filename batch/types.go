package batch

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNilSolver is returned when Sum is called without a solve function.
	ErrNilSolver = errors.New("batch: solve function is nil")

	// ErrOverflow indicates that the sum of the results does not fit in a uint64.
	ErrOverflow = errors.New("batch: total overflows uint64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
)

// Option configures a batch run.
type Option func(*Options)

// Options holds the runner settings.
type Options struct {
	// Workers bounds the number of instances solved at once.
	Workers int

	// Logger receives one debug entry per instance and a run summary.
	Logger logrus.FieldLogger

	// Tracer opens one span for the run and one child span per instance.
	Tracer trace.Tracer

	// Name labels the run in logs and span names.
	Name string

	err error
}

// DefaultOptions returns Options with:
//   - Workers = GOMAXPROCS
//   - a logger that discards everything
//   - the global otel tracer (a no-op until a provider is installed)
//   - Name "batch"
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  silent,
		Tracer:  otel.Tracer("github.com/katalvlaran/bitsearch/batch"),
		Name:    "batch",
	}
}

// WithWorkers sets the pool size. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer. nil keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithName labels the run. An empty name keeps the default.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// Report is the outcome of a successful run.
type Report struct {
	// RunID identifies the run in logs and spans.
	RunID string

	// Name is the run label.
	Name string

	// Total is the sum of Results.
	Total uint64

	// Results holds each instance's value at its input index.
	Results []uint64

	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}
