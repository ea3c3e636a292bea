package domain

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Label != "Go" {
		t.Errorf("Label = %q, want %q", cfg.Label, "Go")
	}
	if cfg.N != 25 {
		t.Errorf("N = %d, want 25", cfg.N)
	}
	if cfg.Paths.RunsDir != "runs" {
		t.Errorf("Paths.RunsDir = %q, want %q", cfg.Paths.RunsDir, "runs")
	}
}

func TestConfig_NormalizeKeepsExplicitValues(t *testing.T) {
	cfg := Config{Label: "Go (tinygo)", N: 35}
	cfg.Paths.RunsDir = "out"
	cfg.Normalize()

	if cfg.Label != "Go (tinygo)" || cfg.N != 35 || cfg.Paths.RunsDir != "out" {
		t.Errorf("Normalize() clobbered explicit values: %+v", cfg)
	}
}

func TestConfig_NormalizeFillsBlanks(t *testing.T) {
	cfg := Config{Label: "  ", N: 10}
	cfg.Normalize()

	if cfg.Label != "Go" {
		t.Errorf("Label = %q, want default", cfg.Label)
	}
	if cfg.Paths.RunsDir != "runs" {
		t.Errorf("Paths.RunsDir = %q, want default", cfg.Paths.RunsDir)
	}
}

func TestConfig_ValidateRejectsNegativeN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Errorf("Validate() kind = %v, want invalid_config", err)
	}
}

func TestConfig_ValidateAllowsZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfig_Spec(t *testing.T) {
	cfg := Config{Label: "Go", N: 25}
	spec := cfg.Spec()
	if spec.Label != "Go" || spec.N != 25 {
		t.Errorf("Spec() = %+v", spec)
	}
}
