package config

import (
	"fmt"

	"github.com/TheFahmi/argon-lang/internal/domain"
)

// MapBench maps the DTO onto the domain config, applying defaults for unset
// fields and validating the result.
func MapBench(path string, dto YAMLBench) (domain.Config, error) {
	cfg := domain.Config{
		Label: dto.Label,
		N:     domain.DefaultN,
	}
	if dto.N != nil {
		cfg.N = *dto.N
	}
	cfg.Paths.RunsDir = dto.Paths.RunsDir
	cfg.Normalize()

	if cfg.N < 0 {
		return domain.Config{}, &domain.OpError{
			Op:   "config.map_bench",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: n must be >= 0, got %d", domain.ErrInvalidConfig, cfg.N),
		}
	}
	return cfg, nil
}
