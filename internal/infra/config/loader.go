// Package config loads the optional fibbench.yml. A missing file is not an
// error at the discovery layer: the tool runs on pure defaults so the
// canonical invocation involves no files.
package config

import (
	"os"

	"github.com/TheFahmi/argon-lang/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is probed in the working directory when no explicit
// --config path is given.
const DefaultFileName = "fibbench.yml"

func LoadBench(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_bench",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLBench
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_bench",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapBench(path, dto)
}
