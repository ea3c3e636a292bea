package usecase

import (
	"context"

	"github.com/TheFahmi/argon-lang/internal/domain"
	"github.com/TheFahmi/argon-lang/internal/ports"
)

// RunBenchmark performs one timed Fib invocation: timestamp, a single call,
// timestamp. No warmup and no repetition; a second trial would measure a
// different thing than the other language entries do.
type RunBenchmark struct {
	clock ports.Clock
	store ports.ResultStore // nil: do not persist

	fib func(int) int
}

type Option func(*RunBenchmark)

// WithWorkload replaces the measured function. Useful for tests; production
// wiring always measures domain.Fib.
func WithWorkload(fn func(int) int) Option {
	return func(uc *RunBenchmark) { uc.fib = fn }
}

func NewRunBenchmark(clock ports.Clock, store ports.ResultStore, opts ...Option) *RunBenchmark {
	uc := &RunBenchmark{
		clock: clock,
		store: store,
		fib:   domain.Fib,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the measurement described by spec and returns it, plus the
// artifact path when a store is configured. Cancellation is honored only
// before the call starts: interrupting the recursion mid-flight would
// invalidate the measurement.
func (uc *RunBenchmark) Execute(ctx context.Context, spec domain.BenchSpec) (domain.Measurement, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Measurement{}, "", err
	}

	start := uc.clock.Now()
	res := uc.fib(spec.N)
	end := uc.clock.Now()

	m := domain.Measurement{
		Label:      spec.Label,
		N:          spec.N,
		Result:     res,
		StartedAt:  start,
		FinishedAt: end,
	}

	if uc.store == nil {
		return m, "", nil
	}

	path, err := uc.store.SaveMeasurement(m)
	if err != nil {
		// The measurement itself succeeded; hand it back alongside the error.
		return m, "", err
	}
	return m, path, nil
}
