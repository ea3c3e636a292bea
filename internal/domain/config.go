package domain

import "strings"

const defaultRunsDir = "runs"

// ConfigPaths groups filesystem locations the tool may write to.
type ConfigPaths struct {
	RunsDir string
}

// Config is the resolved tool configuration. The zero value plus
// Normalize yields the canonical comparison run: Go, n=25.
type Config struct {
	Label string
	N     int

	Paths ConfigPaths
}

// DefaultConfig returns the configuration of the canonical invocation.
func DefaultConfig() Config {
	c := Config{N: DefaultN}
	c.Normalize()
	return c
}

// Normalize fills unset fields with defaults. N is left alone: zero is a
// valid input, so "unset" is handled at the mapping boundary, not here.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Label) == "" {
		c.Label = DefaultLabel
	}
	if strings.TrimSpace(c.Paths.RunsDir) == "" {
		c.Paths.RunsDir = defaultRunsDir
	}
}

// Validate reports whether the configuration describes a runnable
// measurement.
func (c Config) Validate() error {
	if c.N < 0 {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  ErrInvalidConfig,
		}
	}
	return nil
}

// Spec projects the configuration onto a benchmark input.
func (c Config) Spec() BenchSpec {
	return BenchSpec{Label: c.Label, N: c.N}
}
