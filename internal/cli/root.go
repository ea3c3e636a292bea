package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/TheFahmi/argon-lang/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug      bool
		save       bool
		configPath string
		label      string
		n          int
	)

	cmd := &cobra.Command{
		Use:          "fibbench",
		Short:        "fibbench — naive-recursion Fibonacci timing, one entry of the cross-runtime comparison",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				cleanup, _ := logger.Setup(logger.Config{Root: ".", Debug: true})
				if cleanup != nil {
					defer func() { _ = cleanup() }()
				}
			}

			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("label") {
				cfg.Label = label
			}
			if cmd.Flags().Changed("n") {
				cfg.N = n
			}
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBench(cmd, cfg, save)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .fibbench/logs/fibbench.log")
	cmd.Flags().BoolVar(&save, "save", false, "persist the measurement as a JSON artifact under runs/")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (optional; defaults to ./fibbench.yml when present)")
	cmd.Flags().StringVar(&label, "label", "", "runtime label in the output (default \"Go\")")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "Fibonacci input (default 25, the canonical comparison point)")

	cmd.AddCommand(versionCmd())
	return cmd
}
