package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheFahmi/argon-lang/internal/domain"
	"github.com/TheFahmi/argon-lang/internal/infra/benchstore"
	"github.com/TheFahmi/argon-lang/internal/infra/config"
	"github.com/TheFahmi/argon-lang/internal/infra/logger"
	"github.com/TheFahmi/argon-lang/internal/infra/sysclock"
	"github.com/TheFahmi/argon-lang/internal/ports"
	"github.com/TheFahmi/argon-lang/internal/usecase"
)

// resolveConfig loads the explicit config path, else ./fibbench.yml when it
// exists, else pure defaults. Only the explicit path turns "missing file"
// into an error.
func resolveConfig(explicitPath string) (domain.Config, error) {
	if explicitPath != "" {
		return config.LoadBench(explicitPath)
	}
	if fileExists(config.DefaultFileName) {
		return config.LoadBench(config.DefaultFileName)
	}
	return domain.DefaultConfig(), nil
}

func runBench(cmd *cobra.Command, cfg domain.Config, save bool) error {
	w := cmd.OutOrStdout()

	var store ports.ResultStore
	if save {
		store = benchstore.NewJSONStore(".", cfg)
	}

	uc := usecase.NewRunBenchmark(sysclock.New(), store)

	spec := cfg.Spec()
	printStart(w, spec)

	m, path, err := uc.Execute(cmd.Context(), spec)
	if err != nil {
		// A store failure does not void the measurement; print what we have.
		if !m.StartedAt.IsZero() {
			printOutcome(w, m)
		}
		return err
	}

	printOutcome(w, m)

	logger.L().Info("bench.completed",
		"n", m.N, "result", m.Result, "elapsed_ms", m.ElapsedMS())
	if path != "" {
		logger.L().Info("benchstore.saved", "path", path)
	}
	return nil
}

func printStart(w io.Writer, spec domain.BenchSpec) {
	fmt.Fprintf(w, "%s: Starting Fib(%d)...\n", spec.Label, spec.N)
}

func printOutcome(w io.Writer, m domain.Measurement) {
	fmt.Fprintf(w, "%s: Result = %d\n", m.Label, m.Result)
	fmt.Fprintf(w, "%s: Time = %sms\n", m.Label, domain.FormatMS(m.ElapsedMS()))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
