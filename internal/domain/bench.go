package domain

import (
	"fmt"
	"time"
)

// DefaultN is the canonical input of the cross-runtime comparison.
const DefaultN = 25

// DefaultLabel names this runtime in the comparison output.
const DefaultLabel = "Go"

// BenchSpec is the fully resolved input of a single measurement.
type BenchSpec struct {
	Label string
	N     int
}

// Measurement is the outcome of one timed Fib invocation.
// Single-shot on purpose: no trials, no aggregation.
type Measurement struct {
	Label  string
	N      int
	Result int

	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns the wall-clock duration of the invocation.
func (m Measurement) Elapsed() time.Duration {
	return m.FinishedAt.Sub(m.StartedAt)
}

// ElapsedMS returns the elapsed time in milliseconds.
func (m Measurement) ElapsedMS() float64 {
	return float64(m.Elapsed().Nanoseconds()) / 1e6
}

// FormatMS renders a millisecond value with exactly two decimals, the
// format shared by every language entry of the comparison suite.
func FormatMS(ms float64) string {
	return fmt.Sprintf("%.2f", ms)
}
